package store

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/teberizm/nfc-bracelet-ecommerce-sub000/internal/content"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.DB.Close() })
	require.NoError(t, s.InitSchema())
	return s
}

func TestGetOrderContentMissing(t *testing.T) {
	s := newTestStore(t)

	oc, err := s.GetOrderContent(404)
	require.NoError(t, err)
	require.Nil(t, oc)
}

func TestEnsureOrderContentIdempotent(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.EnsureOrderContent(1))
	oc, err := s.GetOrderContent(1)
	require.NoError(t, err)
	require.NotNil(t, oc)
	require.Equal(t, content.DefaultCustomization(), oc.Customization)
	require.False(t, oc.Published)
	require.Empty(t, oc.Items)

	// A second ensure must not reset accumulated edits.
	oc.AddItem(content.NewNote("note", "hello"))
	require.NoError(t, oc.SelectTheme("meadow"))
	require.NoError(t, s.SaveOrderContent(oc))
	require.NoError(t, s.EnsureOrderContent(1))

	again, err := s.GetOrderContent(1)
	require.NoError(t, err)
	require.Equal(t, "meadow", again.ThemeID)
	require.Len(t, again.Items, 1)
}

func TestOrderContentRoundTrip(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.EnsureOrderContent(7))

	oc, err := s.GetOrderContent(7)
	require.NoError(t, err)

	photo := content.NewPhoto("lake", "/static/uploads/lake.jpg", "/static/uploads/lake_thumb.jpg")
	oc.AddItem(photo)
	oc.AddItem(content.NewNote("dear you", "we were here"))
	oc.AddItem(content.NewAudio("voicemail", "/static/uploads/vm.mp3", 42))
	oc.AddItem(content.NewYouTubeLink("our song", "https://youtu.be/abc123"))
	require.NoError(t, oc.SelectTheme("golden-hour"))
	require.NoError(t, oc.SetCover(photo.ID))
	oc.SetCustomization(content.Customization{FontSize: 20, Spacing: 40, BorderRadius: 6})
	require.NoError(t, oc.Publish())
	require.NoError(t, s.SaveOrderContent(oc))

	back, err := s.GetOrderContent(7)
	require.NoError(t, err)
	require.Equal(t, oc.ThemeID, back.ThemeID)
	require.Equal(t, oc.CoverID, back.CoverID)
	require.Equal(t, oc.Customization, back.Customization)
	require.True(t, back.Published)

	// Cover hoisting and insertion order survive the reload.
	require.Len(t, back.Items, 4)
	require.Equal(t, photo.ID, back.Items[0].ID)
	for i, want := range oc.Items {
		require.Equal(t, want.ID, back.Items[i].ID)
		require.Equal(t, want.Type(), back.Items[i].Type())
		require.Equal(t, want.Title, back.Items[i].Title)
		require.Equal(t, want.Content, back.Items[i].Content)
	}
}

func TestSaveOrderContentRemovesDeletedItems(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.EnsureOrderContent(3))

	oc, err := s.GetOrderContent(3)
	require.NoError(t, err)
	keep := content.NewNote("keep", "a")
	drop := content.NewNote("drop", "b")
	oc.AddItem(keep)
	oc.AddItem(drop)
	require.NoError(t, s.SaveOrderContent(oc))

	require.NoError(t, oc.RemoveItem(drop.ID))
	require.NoError(t, s.SaveOrderContent(oc))

	back, err := s.GetOrderContent(3)
	require.NoError(t, err)
	require.Len(t, back.Items, 1)
	require.Equal(t, keep.ID, back.Items[0].ID)
	require.Equal(t, uuid.Nil, back.CoverID)
}
