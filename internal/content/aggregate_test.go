package content

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPublishGuard(t *testing.T) {
	oc := NewOrderContent(7)
	photo := NewPhoto("us at the lake", "/static/uploads/lake.jpg", "")
	oc.AddItem(photo)
	require.NoError(t, oc.SelectTheme("golden-hour"))

	// A photo exists but no cover has been designated.
	err := oc.Publish()
	var nre *NotReadyError
	require.ErrorAs(t, err, &nre)
	require.Equal(t, []string{MissingCover}, nre.Missing)
	require.False(t, oc.Published)

	require.NoError(t, oc.SetCover(photo.ID))
	require.NoError(t, oc.Publish())
	require.True(t, oc.Published)
}

func TestPublishEmptyAggregate(t *testing.T) {
	oc := NewOrderContent(1)

	err := oc.Publish()
	var nre *NotReadyError
	require.ErrorAs(t, err, &nre)
	require.Equal(t, []string{MissingMedia, MissingTheme}, nre.Missing)
}

func TestPublishWithoutPhotosNeedsNoCover(t *testing.T) {
	oc := NewOrderContent(2)
	oc.AddItem(NewNote("first note", "hello"))
	require.NoError(t, oc.SelectTheme("meadow"))

	require.NoError(t, oc.Publish())
	require.True(t, oc.Published)
}

func TestSetCoverHoistsToFront(t *testing.T) {
	oc := NewOrderContent(3)
	oc.AddItem(NewNote("note", "body"))
	first := NewPhoto("first", "/1.jpg", "")
	second := NewPhoto("second", "/2.jpg", "")
	oc.AddItem(first)
	oc.AddItem(second)

	require.NoError(t, oc.SetCover(second.ID))
	require.Equal(t, second.ID, oc.CoverID)
	require.Equal(t, second.ID, oc.Items[0].ID)
	require.Len(t, oc.Items, 3)

	// Re-selecting swaps the designation; nothing is lost or duplicated.
	require.NoError(t, oc.SetCover(first.ID))
	require.Equal(t, first.ID, oc.CoverID)
	require.Equal(t, first.ID, oc.Items[0].ID)
	require.Len(t, oc.Items, 3)
}

func TestSetCoverRejectsNonPhoto(t *testing.T) {
	oc := NewOrderContent(4)
	note := NewNote("note", "body")
	oc.AddItem(note)

	require.ErrorIs(t, oc.SetCover(note.ID), ErrCoverNotPhoto)
	require.ErrorIs(t, oc.SetCover(uuid.New()), ErrMediaNotFound)
}

func TestRemoveItemClearsCover(t *testing.T) {
	oc := NewOrderContent(5)
	photo := NewPhoto("p", "/p.jpg", "")
	oc.AddItem(photo)
	require.NoError(t, oc.SetCover(photo.ID))

	require.NoError(t, oc.RemoveItem(photo.ID))
	require.Equal(t, uuid.Nil, oc.CoverID)
	require.Empty(t, oc.Items)

	require.ErrorIs(t, oc.RemoveItem(photo.ID), ErrMediaNotFound)
}

func TestSelectThemeUnknown(t *testing.T) {
	oc := NewOrderContent(6)
	require.ErrorIs(t, oc.SelectTheme("vaporwave"), ErrUnknownTheme)
	require.Empty(t, oc.ThemeID)
}

func TestSetCustomizationClamps(t *testing.T) {
	tests := []struct {
		name string
		in   Customization
		want Customization
	}{
		{
			name: "in range is kept",
			in:   Customization{FontSize: 18, Spacing: 32, BorderRadius: 8},
			want: Customization{FontSize: 18, Spacing: 32, BorderRadius: 8},
		},
		{
			name: "below range is raised",
			in:   Customization{FontSize: 4, Spacing: 0, BorderRadius: -3},
			want: Customization{FontSize: MinFontSize, Spacing: MinSpacing, BorderRadius: MinBorderRadius},
		},
		{
			name: "above range is lowered",
			in:   Customization{FontSize: 99, Spacing: 500, BorderRadius: 64},
			want: Customization{FontSize: MaxFontSize, Spacing: MaxSpacing, BorderRadius: MaxBorderRadius},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oc := NewOrderContent(1)
			oc.SetCustomization(tt.in)
			require.Equal(t, tt.want, oc.Customization)
		})
	}
}
