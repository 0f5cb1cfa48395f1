package xdg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mashrafi141/my-judge-webapp2/internal/xdg"
)

func TestPrefsDefaultTheme(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	prefs, err := xdg.OpenPrefs(xdg.NewXDGDirs(), "judgecli")
	require.NoError(t, err)
	require.Equal(t, xdg.DefaultTheme, prefs.Theme())
}

func TestPrefsThemeRoundTrip(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	dirs := xdg.NewXDGDirs()

	prefs, err := xdg.OpenPrefs(dirs, "judgecli")
	require.NoError(t, err)
	require.NoError(t, prefs.SetTheme("dark"))

	reopened, err := xdg.OpenPrefs(dirs, "judgecli")
	require.NoError(t, err)
	require.Equal(t, "dark", reopened.Theme())
}
