package content

import (
	"github.com/google/uuid"
)

// Repository persists order content aggregates. Implemented by the sqlite
// store; tests use an in-memory fake. Get returns (nil, nil) when the order
// has no aggregate.
type Repository interface {
	GetOrderContent(orderID int) (*OrderContent, error)
	SaveOrderContent(oc *OrderContent) error
}

// Service exposes the content mutation and query operations to the editing
// UI and the public page. Every operation on an order without an aggregate
// reports ErrContentNotFound; nothing is ever fabricated or crashed on.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get loads the aggregate for an order.
func (s *Service) Get(orderID int) (*OrderContent, error) {
	oc, err := s.repo.GetOrderContent(orderID)
	if err != nil {
		return nil, err
	}
	if oc == nil {
		return nil, ErrContentNotFound
	}
	return oc, nil
}

func (s *Service) mutate(orderID int, fn func(oc *OrderContent) error) error {
	oc, err := s.Get(orderID)
	if err != nil {
		return err
	}
	if err := fn(oc); err != nil {
		return err
	}
	return s.repo.SaveOrderContent(oc)
}

// AddMediaItem appends an item to the order's media store.
func (s *Service) AddMediaItem(orderID int, item MediaItem) error {
	return s.mutate(orderID, func(oc *OrderContent) error {
		oc.AddItem(item)
		return nil
	})
}

// RemoveMediaItem deletes an item from the order's media store.
func (s *Service) RemoveMediaItem(orderID int, itemID uuid.UUID) error {
	return s.mutate(orderID, func(oc *OrderContent) error {
		return oc.RemoveItem(itemID)
	})
}

// SelectTheme records the owner's theme choice.
func (s *Service) SelectTheme(orderID int, themeID string) error {
	return s.mutate(orderID, func(oc *OrderContent) error {
		return oc.SelectTheme(themeID)
	})
}

// SetCoverPhoto designates the page's hero image.
func (s *Service) SetCoverPhoto(orderID int, itemID uuid.UUID) error {
	return s.mutate(orderID, func(oc *OrderContent) error {
		return oc.SetCover(itemID)
	})
}

// UpdateCustomization stores the sliders, clamped to bounds.
func (s *Service) UpdateCustomization(orderID int, c Customization) error {
	return s.mutate(orderID, func(oc *OrderContent) error {
		oc.SetCustomization(c)
		return nil
	})
}

// Publish flips the page live if its preconditions hold; otherwise the
// returned NotReadyError names each failed precondition.
func (s *Service) Publish(orderID int) error {
	return s.mutate(orderID, func(oc *OrderContent) error {
		return oc.Publish()
	})
}

// RenderPage builds the render input for an order's memory page. The editor
// preview and the public scan page both go through here, so they always see
// the same cover, section order and resolved style.
func (s *Service) RenderPage(orderID int) (*Page, error) {
	oc, err := s.Get(orderID)
	if err != nil {
		return nil, err
	}
	return BuildPage(oc)
}
