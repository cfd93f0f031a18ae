package content

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMediaItemJSONRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		item MediaItem
		typ  MediaType
	}{
		{"photo", NewPhoto("lake", "/static/uploads/lake.jpg", "/static/uploads/lake_thumb.jpg"), TypeImage},
		{"video", NewVideo("clip", "/static/uploads/clip.mp4", "/static/uploads/clip.jpg"), TypeVideo},
		{"audio", NewAudio("voicemail", "/static/uploads/vm.mp3", 37), TypeAudio},
		{"note", NewNote("dear you", "we were here"), TypeText},
		{"youtube", NewYouTubeLink("our song", "https://www.youtube.com/watch?v=abc123"), TypeYouTube},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.item)
			require.NoError(t, err)

			// The type tag must round-trip exactly.
			var wire map[string]any
			require.NoError(t, json.Unmarshal(data, &wire))
			require.Equal(t, string(tt.typ), wire["type"])

			var back MediaItem
			require.NoError(t, json.Unmarshal(data, &back))
			require.Equal(t, tt.item.ID, back.ID)
			require.Equal(t, tt.item.Title, back.Title)
			require.Equal(t, tt.item.Content, back.Content)
			require.True(t, tt.item.CreatedAt.Equal(back.CreatedAt))
		})
	}
}

func TestMediaItemUnmarshalUnknownType(t *testing.T) {
	var item MediaItem
	err := json.Unmarshal([]byte(`{"id":"6a2f9c2e-47d1-4b2a-9a65-2f3c8d1e0b11","type":"hologram","title":"x","content":"y"}`), &item)
	require.Error(t, err)
}

func TestAudioDurationSurvivesWire(t *testing.T) {
	item := NewAudio("vm", "/vm.mp3", 125)
	data, err := json.Marshal(item)
	require.NoError(t, err)

	var back MediaItem
	require.NoError(t, json.Unmarshal(data, &back))
	audio, ok := back.Content.(Audio)
	require.True(t, ok)
	require.Equal(t, 125, audio.Duration)
}

func TestYouTubeVideoID(t *testing.T) {
	tests := []struct {
		link string
		want string
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://youtube.com/watch?v=abc_123-XY", "abc_123-XY"},
		{"https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/shorts/xyz987", "xyz987"},
		{"https://www.youtube.com/embed/xyz987", "xyz987"},
		{"https://m.youtube.com/watch?v=mobile1", "mobile1"},
		{"https://vimeo.com/12345", ""},
		{"not a link", ""},
		{"", ""},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, YouTubeVideoID(tt.link), "link %q", tt.link)
	}
}

func TestRestoreMediaItemRejectsUnknownType(t *testing.T) {
	item := NewPhoto("p", "/p.jpg", "")
	content, thumb, dur := item.WireParts()

	restored, err := RestoreMediaItem(item.ID, TypeImage, item.Title, content, thumb, dur, item.CreatedAt)
	require.NoError(t, err)
	require.Equal(t, item, restored)

	_, err = RestoreMediaItem(item.ID, "hologram", item.Title, content, thumb, dur, item.CreatedAt)
	require.Error(t, err)
}
