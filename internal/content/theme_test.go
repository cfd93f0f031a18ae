package content

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestThemeCatalog(t *testing.T) {
	all := Themes()
	require.Len(t, all, 3)

	seen := map[string]bool{}
	for _, th := range all {
		require.NotEmpty(t, th.ID)
		require.NotEmpty(t, th.Name)
		require.NotEmpty(t, th.Layout.BackgroundColor)
		require.NotEmpty(t, th.Layout.FontFamily)
		require.False(t, seen[th.ID], "duplicate theme id %s", th.ID)
		seen[th.ID] = true

		got, ok := ThemeByID(th.ID)
		require.True(t, ok)
		require.Equal(t, th, got)
	}

	_, ok := ThemeByID("no-such-theme")
	require.False(t, ok)
}

func TestResolveStyleClampsSliders(t *testing.T) {
	theme, _ := ThemeByID("meadow")
	style := ResolveStyle(theme, Customization{FontSize: 100, Spacing: -1, BorderRadius: 16})

	require.Equal(t, MaxFontSize, style.FontSize)
	require.Equal(t, MinSpacing, style.Spacing)
	require.Equal(t, 16, style.BorderRadius)
	require.Equal(t, theme.Layout.AccentColor, style.AccentColor)
}
