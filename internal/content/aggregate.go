package content

import (
	"errors"
	"slices"
	"strings"

	"github.com/google/uuid"
)

var (
	// ErrContentNotFound means the referenced order has no content
	// aggregate. Nothing is fabricated for unknown orders.
	ErrContentNotFound = errors.New("order content not found")

	// ErrMediaNotFound means the referenced media item is not in the
	// aggregate.
	ErrMediaNotFound = errors.New("media item not found")

	// ErrNoTheme means the aggregate cannot be rendered because the owner
	// has not picked a theme yet.
	ErrNoTheme = errors.New("no theme selected")

	// ErrUnknownTheme means the theme id is not in the catalog.
	ErrUnknownTheme = errors.New("unknown theme")

	// ErrCoverNotPhoto means the chosen cover item is not an image.
	ErrCoverNotPhoto = errors.New("cover must be a photo")
)

// Publish preconditions, reported by name so the UI can tell the owner
// exactly what is missing.
const (
	MissingMedia = "at least one memory"
	MissingTheme = "a selected theme"
	MissingCover = "a cover photo"
)

// NotReadyError blocks publishing and lists every failed precondition.
type NotReadyError struct {
	Missing []string
}

func (e *NotReadyError) Error() string {
	return "page is not ready to publish: missing " + strings.Join(e.Missing, ", ")
}

// OrderContent is the per-order bundle of media, theme choice, sliders and
// the publish flag. It is created empty when the order becomes
// content-ready and mutated by the owner through the upload and theme
// steps. There is no publish snapshot: once published, edits are live on
// the public page immediately.
type OrderContent struct {
	OrderID       int
	Items         []MediaItem
	ThemeID       string
	CoverID       uuid.UUID
	Customization Customization
	Published     bool
}

// NewOrderContent returns an empty aggregate with default sliders.
func NewOrderContent(orderID int) *OrderContent {
	return &OrderContent{
		OrderID:       orderID,
		Customization: DefaultCustomization(),
	}
}

func (oc *OrderContent) item(id uuid.UUID) (MediaItem, bool) {
	for _, it := range oc.Items {
		if it.ID == id {
			return it, true
		}
	}
	return MediaItem{}, false
}

// AddItem appends a media item. Insertion order is preserved; it is the
// order the page layout is planned from.
func (oc *OrderContent) AddItem(item MediaItem) {
	oc.Items = append(oc.Items, item)
}

// RemoveItem deletes the item with the given id. Removing the current
// cover clears the cover designation.
func (oc *OrderContent) RemoveItem(id uuid.UUID) error {
	for i, it := range oc.Items {
		if it.ID == id {
			oc.Items = slices.Delete(oc.Items, i, i+1)
			if oc.CoverID == id {
				oc.CoverID = uuid.Nil
			}
			return nil
		}
	}
	return ErrMediaNotFound
}

// SelectTheme records the owner's theme choice.
func (oc *OrderContent) SelectTheme(themeID string) error {
	if _, ok := ThemeByID(themeID); !ok {
		return ErrUnknownTheme
	}
	oc.ThemeID = themeID
	return nil
}

// SetCover designates the page's hero image and hoists it to the front of
// the store, independent of when it was uploaded. Re-selecting swaps the
// designation without deleting or duplicating anything.
func (oc *OrderContent) SetCover(id uuid.UUID) error {
	item, ok := oc.item(id)
	if !ok {
		return ErrMediaNotFound
	}
	if item.Type() != TypeImage {
		return ErrCoverNotPhoto
	}
	idx := slices.IndexFunc(oc.Items, func(it MediaItem) bool { return it.ID == id })
	oc.Items = slices.Delete(oc.Items, idx, idx+1)
	oc.Items = slices.Insert(oc.Items, 0, item)
	oc.CoverID = id
	return nil
}

// SetCustomization stores the sliders, clamped to their declared bounds.
func (oc *OrderContent) SetCustomization(c Customization) {
	oc.Customization = c.Clamp()
}

// HasPhotos reports whether any image-type item exists.
func (oc *OrderContent) HasPhotos() bool {
	for _, it := range oc.Items {
		if it.Type() == TypeImage {
			return true
		}
	}
	return false
}

// Publish flips the aggregate live. It refuses with a NotReadyError naming
// every failed precondition: there must be at least one item, a theme must
// be selected, and if any photo exists a cover must have been designated.
func (oc *OrderContent) Publish() error {
	var missing []string
	if len(oc.Items) == 0 {
		missing = append(missing, MissingMedia)
	}
	if oc.ThemeID == "" {
		missing = append(missing, MissingTheme)
	}
	if oc.HasPhotos() && oc.CoverID == uuid.Nil {
		missing = append(missing, MissingCover)
	}
	if len(missing) > 0 {
		return &NotReadyError{Missing: missing}
	}
	oc.Published = true
	return nil
}
