// Package session owns the single mutable editing session: selected
// language, current source text, custom stdin and the selected problem.
// There is exactly one Session per client process; every core operation
// receives it explicitly instead of reaching for globals.
package session

import (
	"strings"
	"sync"

	"github.com/mashrafi141/my-judge-webapp2/api"
	"github.com/mashrafi141/my-judge-webapp2/internal/editor"
)

// Session bridges the core to the external text-editing widget without
// losing user edits across language switches. The session keeps its own
// authoritative copy of the text; pushing it to the widget is best-effort.
type Session struct {
	ed editor.Editor

	mu       sync.Mutex
	language editor.Language
	source   string
	stdin    string
	selected *api.Problem
}

// New creates the session, seeds the editor with the language's template
// and subscribes to widget changes.
func New(ed editor.Editor, lang editor.Language) *Session {
	s := &Session{ed: ed, language: lang}
	s.source = editor.Template(lang)
	ed.SetValue(s.source)
	ed.OnChange(func(text string) {
		s.mu.Lock()
		s.source = text
		s.mu.Unlock()
	})
	return s
}

// Text returns the current source text.
func (s *Session) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.source
}

// SetText replaces the source text and pushes it to the widget.
func (s *Session) SetText(text string) {
	s.mu.Lock()
	s.source = text
	s.mu.Unlock()
	s.ed.SetValue(text)
}

// Language returns the selected language.
func (s *Session) Language() editor.Language {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.language
}

// SetLanguage switches the selected language. The buffer is replaced with
// the new language's template only when the current text is blank or still
// a recognized placeholder template; user-authored text is never discarded.
func (s *Session) SetLanguage(lang editor.Language) {
	s.mu.Lock()
	replace := strings.TrimSpace(s.source) == "" || editor.IsPlaceholder(s.source)
	s.language = lang
	if replace {
		s.source = editor.Template(lang)
	}
	text := s.source
	s.mu.Unlock()

	if replace {
		s.ed.SetValue(text)
	}
}

// Stdin returns the custom input text for immediate runs.
func (s *Session) Stdin() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stdin
}

// SetStdin replaces the custom input text.
func (s *Session) SetStdin(text string) {
	s.mu.Lock()
	s.stdin = text
	s.mu.Unlock()
}

// Selected returns the currently selected problem, or nil.
func (s *Session) Selected() *api.Problem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

// Select sets the currently selected problem. The session holds a
// non-owning reference into the catalog.
func (s *Session) Select(p *api.Problem) {
	s.mu.Lock()
	s.selected = p
	s.mu.Unlock()
}
