package content

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func makePhotos(n int) []MediaItem {
	items := make([]MediaItem, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, NewPhoto(fmt.Sprintf("photo %d", i), fmt.Sprintf("/static/uploads/p%d.jpg", i), ""))
	}
	return items
}

func makeNotes(n int) []MediaItem {
	items := make([]MediaItem, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, NewNote(fmt.Sprintf("note %d", i), "dear you"))
	}
	return items
}

func kinds(sections []Section) []string {
	out := make([]string, 0, len(sections))
	for _, s := range sections {
		out = append(out, fmt.Sprintf("%s(%d)", s.Kind, len(s.Items)))
	}
	return out
}

func TestPlanLayoutInterleaving(t *testing.T) {
	// 13 images, 3 texts, 1 video, 0 audio, 2 youtube links: the audio
	// category is exhausted from the start and contributes nothing in any
	// round.
	var items []MediaItem
	items = append(items, makePhotos(13)...)
	items = append(items, makeNotes(3)...)
	items = append(items, NewVideo("clip", "/static/uploads/v.mp4", "/static/uploads/v.jpg"))
	items = append(items, NewYouTubeLink("song", "https://www.youtube.com/watch?v=abc123"))
	items = append(items, NewYouTubeLink("speech", "https://youtu.be/def456"))

	sections := PlanLayout(items, uuid.Nil)

	require.Equal(t, []string{
		"images(6)", "texts(2)", "video(1)", "youtube(1)",
		"images(6)", "texts(1)", "youtube(1)",
		"images(1)",
	}, kinds(sections))
}

func TestPlanLayoutSingleCategory(t *testing.T) {
	sections := PlanLayout(makeNotes(5), uuid.Nil)
	require.Equal(t, []string{"texts(2)", "texts(2)", "texts(1)"}, kinds(sections))
}

func TestPlanLayoutEmptyInput(t *testing.T) {
	require.Empty(t, PlanLayout(nil, uuid.Nil))
	require.Empty(t, PlanLayout([]MediaItem{}, uuid.Nil))
}

func TestPlanLayoutDeterministic(t *testing.T) {
	var items []MediaItem
	items = append(items, makePhotos(9)...)
	items = append(items, makeNotes(4)...)
	items = append(items, NewAudio("voicemail", "/static/uploads/a.mp3", 42))

	first := PlanLayout(items, uuid.Nil)
	second := PlanLayout(items, uuid.Nil)
	require.Equal(t, first, second)
}

func TestPlanLayoutSectionBounds(t *testing.T) {
	var items []MediaItem
	items = append(items, makePhotos(20)...)
	items = append(items, makeNotes(7)...)
	for i := 0; i < 3; i++ {
		items = append(items, NewVideo("v", "/v.mp4", ""))
		items = append(items, NewAudio("a", "/a.mp3", 10))
		items = append(items, NewYouTubeLink("y", "https://youtu.be/x"))
	}

	for _, s := range PlanLayout(items, uuid.Nil) {
		switch s.Kind {
		case SectionImages:
			require.GreaterOrEqual(t, len(s.Items), 1)
			require.LessOrEqual(t, len(s.Items), maxImagesPerSection)
		case SectionTexts:
			require.GreaterOrEqual(t, len(s.Items), 1)
			require.LessOrEqual(t, len(s.Items), maxTextsPerSection)
		default:
			require.Len(t, s.Items, 1)
		}
	}
}

func TestPlanLayoutConservationAndOrder(t *testing.T) {
	var items []MediaItem
	items = append(items, makePhotos(14)...)
	items = append(items, makeNotes(5)...)
	items = append(items, NewVideo("v1", "/v1.mp4", ""))
	items = append(items, NewVideo("v2", "/v2.mp4", ""))
	items = append(items, NewAudio("a1", "/a1.mp3", 5))
	items = append(items, NewYouTubeLink("y1", "https://youtu.be/one"))

	perType := map[MediaType][]uuid.UUID{}
	for _, it := range items {
		perType[it.Type()] = append(perType[it.Type()], it.ID)
	}

	emitted := map[MediaType][]uuid.UUID{}
	for _, s := range PlanLayout(items, uuid.Nil) {
		for _, it := range s.Items {
			emitted[it.Type()] = append(emitted[it.Type()], it.ID)
		}
	}

	// Nothing dropped, nothing duplicated, relative order intact.
	require.Equal(t, perType, emitted)
}

func TestPlanLayoutExcludesCover(t *testing.T) {
	photos := makePhotos(8)
	cover := photos[3]

	sections := PlanLayout(photos, cover.ID)

	total := 0
	for _, s := range sections {
		require.Equal(t, SectionImages, s.Kind)
		for _, it := range s.Items {
			require.NotEqual(t, cover.ID, it.ID)
			total++
		}
	}
	require.Equal(t, len(photos)-1, total)
}
