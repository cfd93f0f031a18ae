package content

import (
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// PlaceholderAsset is substituted for media whose stored reference is
// unusable. A single broken item never aborts the rest of the page.
const PlaceholderAsset = "/static/placeholder.svg"

// Page is the complete render input for a memory page: cover, ordered
// sections and resolved style. Both the editor preview and the public NFC
// scan page are built from this one structure by the same code path, which
// is what guarantees they never diverge.
type Page struct {
	OrderID  int
	Theme    Theme
	Style    ResolvedStyle
	Cover    *MediaItem
	Sections []Section
	Empty    bool
}

// BuildPage computes the page for an aggregate. It is a pure function of
// the aggregate's current state; no hidden inputs, no randomness. An
// aggregate without a theme cannot be rendered and returns ErrNoTheme so
// callers show a distinct "not ready" state instead of a partial page.
func BuildPage(oc *OrderContent) (*Page, error) {
	if oc.ThemeID == "" {
		return nil, ErrNoTheme
	}
	theme, ok := ThemeByID(oc.ThemeID)
	if !ok {
		return nil, ErrUnknownTheme
	}

	var cover *MediaItem
	if oc.CoverID != uuid.Nil {
		if item, found := oc.item(oc.CoverID); found {
			cover = &item
		}
	}

	sections := PlanLayout(oc.Items, oc.CoverID)
	return &Page{
		OrderID:  oc.OrderID,
		Theme:    theme,
		Style:    ResolveStyle(theme, oc.Customization),
		Cover:    cover,
		Sections: sections,
		Empty:    cover == nil && len(sections) == 0,
	}, nil
}

// DisplayURL returns the reference the template should render for an item,
// falling back to the placeholder when the stored reference is unusable.
// Text notes have no URL and return "".
func DisplayURL(item MediaItem) string {
	switch c := item.Content.(type) {
	case Photo:
		return usableOr(c.URL, PlaceholderAsset)
	case Video:
		return usableOr(c.URL, PlaceholderAsset)
	case Audio:
		return usableOr(c.URL, PlaceholderAsset)
	case YouTubeLink:
		return usableOr(c.URL, PlaceholderAsset)
	}
	return ""
}

// DisplayThumbnail returns the preview image for an item, with the same
// placeholder fallback. Notes and audio have no thumbnail.
func DisplayThumbnail(item MediaItem) string {
	switch c := item.Content.(type) {
	case Photo:
		if usable(c.ThumbnailURL) {
			return c.ThumbnailURL
		}
		return usableOr(c.URL, PlaceholderAsset)
	case Video:
		return usableOr(c.ThumbnailURL, PlaceholderAsset)
	case YouTubeLink:
		return usableOr(c.ThumbnailURL, PlaceholderAsset)
	}
	return ""
}

// EmbedURL returns the iframe src for a youtube item, or "" when the link
// is not a recognizable YouTube URL (the template then renders a plain
// link with the placeholder thumbnail).
func EmbedURL(item MediaItem) string {
	if c, ok := item.Content.(YouTubeLink); ok {
		if id := YouTubeVideoID(c.URL); id != "" {
			return "https://www.youtube-nocookie.com/embed/" + id
		}
	}
	return ""
}

func usableOr(ref, fallback string) string {
	if usable(ref) {
		return ref
	}
	return fallback
}

// usable accepts absolute http(s) URLs and site-relative paths.
func usable(ref string) bool {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return false
	}
	if strings.HasPrefix(ref, "/") {
		return !strings.Contains(ref, " ")
	}
	u, err := url.Parse(ref)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
