package content

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func readyAggregate(t *testing.T) *OrderContent {
	t.Helper()
	oc := NewOrderContent(42)
	for _, p := range makePhotos(7) {
		oc.AddItem(p)
	}
	oc.AddItem(NewNote("note", "remember this"))
	oc.AddItem(NewVideo("clip", "/static/uploads/clip.mp4", "/static/uploads/clip.jpg"))
	require.NoError(t, oc.SelectTheme("midnight"))
	require.NoError(t, oc.SetCover(oc.Items[0].ID))
	return oc
}

func TestBuildPageRequiresTheme(t *testing.T) {
	oc := NewOrderContent(1)
	oc.AddItem(NewNote("n", "b"))

	_, err := BuildPage(oc)
	require.ErrorIs(t, err, ErrNoTheme)
}

func TestBuildPageEmptyAggregate(t *testing.T) {
	oc := NewOrderContent(1)
	require.NoError(t, oc.SelectTheme("meadow"))

	page, err := BuildPage(oc)
	require.NoError(t, err)
	require.True(t, page.Empty)
	require.Nil(t, page.Cover)
	require.Empty(t, page.Sections)
}

func TestBuildPageCoverAndSections(t *testing.T) {
	oc := readyAggregate(t)

	page, err := BuildPage(oc)
	require.NoError(t, err)
	require.NotNil(t, page.Cover)
	require.Equal(t, oc.CoverID, page.Cover.ID)

	// The cover is hero-only: it never reappears inside an images section.
	for _, s := range page.Sections {
		for _, it := range s.Items {
			require.NotEqual(t, oc.CoverID, it.ID)
		}
	}
	// 6 remaining photos fit a single images section.
	require.Equal(t, []string{"images(6)", "texts(1)", "video(1)"}, kinds(page.Sections))
}

// The preview and the public page construct their render input through the
// same BuildPage call, so two builds of the same aggregate must be
// indistinguishable.
func TestBuildPageParity(t *testing.T) {
	oc := readyAggregate(t)

	preview, err := BuildPage(oc)
	require.NoError(t, err)
	public, err := BuildPage(oc)
	require.NoError(t, err)
	require.Equal(t, preview, public)
}

func TestBuildPageStyleMerge(t *testing.T) {
	oc := readyAggregate(t)
	oc.SetCustomization(Customization{FontSize: 20, Spacing: 40, BorderRadius: 4})

	page, err := BuildPage(oc)
	require.NoError(t, err)

	theme, _ := ThemeByID("midnight")
	require.Equal(t, theme.Layout.BackgroundColor, page.Style.BackgroundColor)
	require.Equal(t, theme.Layout.FontFamily, page.Style.FontFamily)
	require.Equal(t, 20, page.Style.FontSize)
	require.Equal(t, 40, page.Style.Spacing)
	require.Equal(t, 4, page.Style.BorderRadius)
}

func TestDisplayURLPlaceholder(t *testing.T) {
	tests := []struct {
		name string
		item MediaItem
		want string
	}{
		{"photo with path", NewPhoto("p", "/static/uploads/a.jpg", ""), "/static/uploads/a.jpg"},
		{"photo with absolute url", NewPhoto("p", "https://cdn.example.com/a.jpg", ""), "https://cdn.example.com/a.jpg"},
		{"photo with empty ref", NewPhoto("p", "", ""), PlaceholderAsset},
		{"photo with garbage ref", NewPhoto("p", "not a url at all", ""), PlaceholderAsset},
		{"video with broken ref", NewVideo("v", "://bad", ""), PlaceholderAsset},
		{"note has no url", NewNote("n", "body"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, DisplayURL(tt.item))
		})
	}
}

func TestDisplayThumbnailFallsBack(t *testing.T) {
	v := NewVideo("v", "/static/uploads/v.mp4", "")
	require.Equal(t, PlaceholderAsset, DisplayThumbnail(v))

	p := NewPhoto("p", "/static/uploads/p.jpg", "/static/uploads/p_thumb.jpg")
	require.Equal(t, "/static/uploads/p_thumb.jpg", DisplayThumbnail(p))

	noThumb := NewPhoto("p", "/static/uploads/p.jpg", "")
	require.Equal(t, "/static/uploads/p.jpg", DisplayThumbnail(noThumb))
}

func TestEmbedURL(t *testing.T) {
	yt := NewYouTubeLink("y", "https://www.youtube.com/watch?v=dQw4w9WgXcQ")
	require.Equal(t, "https://www.youtube-nocookie.com/embed/dQw4w9WgXcQ", EmbedURL(yt))

	other := NewYouTubeLink("y", "https://vimeo.com/12345")
	require.Empty(t, EmbedURL(other))

	require.Empty(t, EmbedURL(NewNote("n", "b")))
}
