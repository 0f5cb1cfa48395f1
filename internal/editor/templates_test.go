package editor_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mashrafi141/my-judge-webapp2/internal/editor"
)

func TestLanguageLabels(t *testing.T) {
	require.Equal(t, "C++", editor.LangCpp.Label())
	require.Equal(t, "C", editor.LangC.Label())
	require.Equal(t, "Python", editor.LangPy.Label())
	require.Equal(t, "JavaScript", editor.LangJS.Label())
}

func TestLanguageValid(t *testing.T) {
	for _, l := range editor.Languages() {
		require.True(t, l.Valid())
	}
	require.False(t, editor.Language("rust").Valid())
}

func TestIsPlaceholder(t *testing.T) {
	require.True(t, editor.IsPlaceholder(""))
	require.True(t, editor.IsPlaceholder("  \n\t"))
	for _, l := range editor.Languages() {
		require.True(t, editor.IsPlaceholder(editor.Template(l)))
		require.True(t, editor.IsPlaceholder(editor.Template(l)+"\n\n"))
	}
	require.False(t, editor.IsPlaceholder("print('hello')"))
}

func TestBufferNotifiesListeners(t *testing.T) {
	buf := editor.NewBuffer()
	var seen []string
	buf.OnChange(func(s string) { seen = append(seen, s) })

	buf.SetValue("a")
	buf.SetValue("b")
	require.Equal(t, []string{"a", "b"}, seen)
	require.Equal(t, "b", buf.Value())
}
