package content

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MediaType tags the five kinds of content an owner can put on a memory page.
type MediaType string

const (
	TypeImage   MediaType = "image"
	TypeVideo   MediaType = "video"
	TypeAudio   MediaType = "audio"
	TypeText    MediaType = "text"
	TypeYouTube MediaType = "youtube"
)

// MediaContent is the payload of a MediaItem. It is a sealed union: the
// concrete type carries exactly the fields that are meaningful for its kind,
// so the type tag and the payload shape cannot drift apart.
type MediaContent interface {
	mediaType() MediaType
}

// Photo is an uploaded image, referenced by its stored URL.
type Photo struct {
	URL          string
	ThumbnailURL string
}

// Video is an uploaded video clip.
type Video struct {
	URL          string
	ThumbnailURL string
}

// Audio is an uploaded voice recording. Duration is in seconds.
type Audio struct {
	URL      string
	Duration int
}

// Note is a written memory, stored inline.
type Note struct {
	Body string
}

// YouTubeLink embeds an external YouTube video.
type YouTubeLink struct {
	URL          string
	ThumbnailURL string
}

func (Photo) mediaType() MediaType       { return TypeImage }
func (Video) mediaType() MediaType       { return TypeVideo }
func (Audio) mediaType() MediaType       { return TypeAudio }
func (Note) mediaType() MediaType        { return TypeText }
func (YouTubeLink) mediaType() MediaType { return TypeYouTube }

// MediaItem is one unit of uploaded content belonging to an order's memory
// page. ID and CreatedAt are assigned once at creation and never change.
type MediaItem struct {
	ID        uuid.UUID
	Title     string
	CreatedAt time.Time
	Content   MediaContent
}

// Type returns the tag derived from the payload.
func (m MediaItem) Type() MediaType {
	if m.Content == nil {
		return ""
	}
	return m.Content.mediaType()
}

func newItem(title string, c MediaContent) MediaItem {
	return MediaItem{
		ID:        uuid.New(),
		Title:     title,
		CreatedAt: time.Now().UTC(),
		Content:   c,
	}
}

func NewPhoto(title, url, thumbnailURL string) MediaItem {
	return newItem(title, Photo{URL: url, ThumbnailURL: thumbnailURL})
}

func NewVideo(title, url, thumbnailURL string) MediaItem {
	return newItem(title, Video{URL: url, ThumbnailURL: thumbnailURL})
}

func NewAudio(title, url string, duration int) MediaItem {
	return newItem(title, Audio{URL: url, Duration: duration})
}

func NewNote(title, body string) MediaItem {
	return newItem(title, Note{Body: body})
}

// NewYouTubeLink derives the thumbnail from the video id when the link is a
// recognizable YouTube URL; otherwise the thumbnail is left empty and the
// renderer falls back to a placeholder.
func NewYouTubeLink(title, link string) MediaItem {
	thumb := ""
	if id := YouTubeVideoID(link); id != "" {
		thumb = "https://img.youtube.com/vi/" + id + "/hqdefault.jpg"
	}
	return newItem(title, YouTubeLink{URL: link, ThumbnailURL: thumb})
}

// YouTubeVideoID extracts the video id from the common YouTube URL forms
// (watch?v=, youtu.be/, shorts/, embed/). Returns "" if none is found.
func YouTubeVideoID(link string) string {
	u, err := url.Parse(strings.TrimSpace(link))
	if err != nil || u.Host == "" {
		return ""
	}
	host := strings.TrimPrefix(u.Host, "www.")
	switch host {
	case "youtube.com", "m.youtube.com":
		if v := u.Query().Get("v"); v != "" {
			return v
		}
		for _, prefix := range []string{"/shorts/", "/embed/"} {
			if rest, ok := strings.CutPrefix(u.Path, prefix); ok {
				return strings.SplitN(rest, "/", 2)[0]
			}
		}
	case "youtu.be":
		return strings.SplitN(strings.TrimPrefix(u.Path, "/"), "/", 2)[0]
	}
	return ""
}

// RestoreMediaItem rebuilds an item from stored columns. Used by the store
// layer; the same decoding path backs the JSON codec below.
func RestoreMediaItem(id uuid.UUID, t MediaType, title, content, thumbnail string, duration int, createdAt time.Time) (MediaItem, error) {
	c, err := contentFromWire(t, content, thumbnail, duration)
	if err != nil {
		return MediaItem{}, err
	}
	return MediaItem{ID: id, Title: title, CreatedAt: createdAt, Content: c}, nil
}

// WireParts flattens the payload into the stored column triple
// (content, thumbnail, duration).
func (m MediaItem) WireParts() (content, thumbnail string, duration int) {
	switch c := m.Content.(type) {
	case Photo:
		return c.URL, c.ThumbnailURL, 0
	case Video:
		return c.URL, c.ThumbnailURL, 0
	case Audio:
		return c.URL, "", c.Duration
	case Note:
		return c.Body, "", 0
	case YouTubeLink:
		return c.URL, c.ThumbnailURL, 0
	}
	return "", "", 0
}

// Wire form: a single content string per item regardless of kind, plus
// optional thumbnail/duration. The type tag must round-trip exactly.
type mediaItemJSON struct {
	ID        uuid.UUID `json:"id"`
	Type      MediaType `json:"type"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Thumbnail string    `json:"thumbnail,omitempty"`
	Duration  int       `json:"duration,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (m MediaItem) MarshalJSON() ([]byte, error) {
	if m.Content == nil {
		return nil, fmt.Errorf("media item %s has no content", m.ID)
	}
	content, thumbnail, duration := m.WireParts()
	return json.Marshal(mediaItemJSON{
		ID:        m.ID,
		Type:      m.Type(),
		Title:     m.Title,
		Content:   content,
		Thumbnail: thumbnail,
		Duration:  duration,
		CreatedAt: m.CreatedAt,
	})
}

func (m *MediaItem) UnmarshalJSON(data []byte) error {
	var w mediaItemJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	content, err := contentFromWire(w.Type, w.Content, w.Thumbnail, w.Duration)
	if err != nil {
		return err
	}
	m.ID = w.ID
	m.Title = w.Title
	m.CreatedAt = w.CreatedAt
	m.Content = content
	return nil
}

func contentFromWire(t MediaType, content, thumbnail string, duration int) (MediaContent, error) {
	switch t {
	case TypeImage:
		return Photo{URL: content, ThumbnailURL: thumbnail}, nil
	case TypeVideo:
		return Video{URL: content, ThumbnailURL: thumbnail}, nil
	case TypeAudio:
		return Audio{URL: content, Duration: duration}, nil
	case TypeText:
		return Note{Body: content}, nil
	case TypeYouTube:
		return YouTubeLink{URL: content, ThumbnailURL: thumbnail}, nil
	default:
		return nil, fmt.Errorf("unknown media type %q", t)
	}
}
