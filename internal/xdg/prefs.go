package xdg

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const prefsFileName = "prefs.toml"

// DefaultTheme is used when no preference was persisted yet.
const DefaultTheme = "light"

type prefsFile struct {
	Theme string `toml:"theme"`
}

// Prefs is the client-local preference store. The only persisted key is
// the display theme.
type Prefs struct {
	path  string
	theme string
}

// OpenPrefs loads the preference file from the app state dir, creating
// the directory if needed. A missing file yields defaults.
func OpenPrefs(dirs *XDGDirs, appName string) (*Prefs, error) {
	dir := dirs.AppStateDir(appName)
	if err := dirs.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("failed to create state dir %s: %w", dir, err)
	}

	p := &Prefs{
		path:  filepath.Join(dir, prefsFileName),
		theme: DefaultTheme,
	}

	data, err := os.ReadFile(p.path)
	if errors.Is(err, os.ErrNotExist) {
		return p, nil
	}
	if err != nil {
		return nil, err
	}

	var f prefsFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", p.path, err)
	}
	if f.Theme != "" {
		p.theme = f.Theme
	}
	return p, nil
}

// Theme returns the persisted display theme.
func (p *Prefs) Theme() string { return p.theme }

// SetTheme persists a new display theme.
func (p *Prefs) SetTheme(theme string) error {
	data, err := toml.Marshal(prefsFile{Theme: theme})
	if err != nil {
		return err
	}
	if err := os.WriteFile(p.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", p.path, err)
	}
	p.theme = theme
	return nil
}
