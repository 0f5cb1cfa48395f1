// Package editor models the external text-editing capability as an opaque
// widget: get/set value plus a change notification. The client never
// depends on the widget's internals.
package editor

import "sync"

// Editor is the opaque text-editing capability.
type Editor interface {
	Value() string
	SetValue(s string)
	OnChange(fn func(s string))
}

// Buffer is an in-memory Editor. It backs the CLI, where "editing" means
// loading source from a file or stdin.
type Buffer struct {
	mu        sync.Mutex
	value     string
	listeners []func(string)
}

func NewBuffer() *Buffer { return &Buffer{} }

func (b *Buffer) Value() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.value
}

func (b *Buffer) SetValue(s string) {
	b.mu.Lock()
	b.value = s
	listeners := make([]func(string), len(b.listeners))
	copy(listeners, b.listeners)
	b.mu.Unlock()

	for _, fn := range listeners {
		fn(s)
	}
}

func (b *Buffer) OnChange(fn func(string)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners = append(b.listeners, fn)
}
