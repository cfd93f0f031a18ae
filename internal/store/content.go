package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/teberizm/nfc-bracelet-ecommerce-sub000/internal/content"
)

// EnsureOrderContent creates an empty aggregate for a content-ready order.
// Idempotent: an existing aggregate is left untouched.
func (s *Store) EnsureOrderContent(orderID int) error {
	defaults := content.DefaultCustomization()
	query := `
		INSERT INTO order_content (order_id, theme_id, cover_id, font_size, spacing, border_radius, published)
		VALUES (?, '', '', ?, ?, ?, 0)
		ON CONFLICT(order_id) DO NOTHING
	`
	_, err := s.DB.Exec(query, orderID, defaults.FontSize, defaults.Spacing, defaults.BorderRadius)
	return err
}

// GetOrderContent implements content.Repository. Returns (nil, nil) when
// the order has no aggregate.
func (s *Store) GetOrderContent(orderID int) (*content.OrderContent, error) {
	query := `SELECT theme_id, cover_id, font_size, spacing, border_radius, published FROM order_content WHERE order_id = ?`

	var (
		themeID    string
		coverIDStr string
		cust       content.Customization
		published  bool
	)
	err := s.DB.QueryRow(query, orderID).Scan(&themeID, &coverIDStr, &cust.FontSize, &cust.Spacing, &cust.BorderRadius, &published)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	coverID := uuid.Nil
	if coverIDStr != "" {
		coverID, err = uuid.Parse(coverIDStr)
		if err != nil {
			return nil, fmt.Errorf("order %d has malformed cover id %q: %w", orderID, coverIDStr, err)
		}
	}

	items, err := s.getMediaItems(orderID)
	if err != nil {
		return nil, err
	}

	return &content.OrderContent{
		OrderID:       orderID,
		Items:         items,
		ThemeID:       themeID,
		CoverID:       coverID,
		Customization: cust,
		Published:     published,
	}, nil
}

func (s *Store) getMediaItems(orderID int) ([]content.MediaItem, error) {
	query := `SELECT id, type, title, content, thumbnail, duration, created_at FROM media_items WHERE order_id = ? ORDER BY position`
	rows, err := s.DB.Query(query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []content.MediaItem
	for rows.Next() {
		var (
			idStr, typeStr, title, body, thumbnail string
			duration                               int
			createdAt                              time.Time
		)
		if err := rows.Scan(&idStr, &typeStr, &title, &body, &thumbnail, &duration, &createdAt); err != nil {
			return nil, err
		}
		id, err := uuid.Parse(idStr)
		if err != nil {
			return nil, fmt.Errorf("media item has malformed id %q: %w", idStr, err)
		}
		item, err := content.RestoreMediaItem(id, content.MediaType(typeStr), title, body, thumbnail, duration, createdAt)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// SaveOrderContent implements content.Repository. The aggregate is written
// whole in one transaction: the order_content row is updated and the media
// rows are rewritten with their current positions, which is how cover
// hoisting and insertion order survive reloads.
func (s *Store) SaveOrderContent(oc *content.OrderContent) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	coverIDStr := ""
	if oc.CoverID != uuid.Nil {
		coverIDStr = oc.CoverID.String()
	}

	query := `
		INSERT INTO order_content (order_id, theme_id, cover_id, font_size, spacing, border_radius, published)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(order_id) DO UPDATE SET
			theme_id = excluded.theme_id,
			cover_id = excluded.cover_id,
			font_size = excluded.font_size,
			spacing = excluded.spacing,
			border_radius = excluded.border_radius,
			published = excluded.published
	`
	if _, err := tx.Exec(query, oc.OrderID, oc.ThemeID, coverIDStr, oc.Customization.FontSize, oc.Customization.Spacing, oc.Customization.BorderRadius, oc.Published); err != nil {
		return err
	}

	if _, err := tx.Exec(`DELETE FROM media_items WHERE order_id = ?`, oc.OrderID); err != nil {
		return err
	}
	insert := `INSERT INTO media_items (id, order_id, type, title, content, thumbnail, duration, position, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for pos, item := range oc.Items {
		body, thumbnail, duration := item.WireParts()
		if _, err := tx.Exec(insert, item.ID.String(), oc.OrderID, string(item.Type()), item.Title, body, thumbnail, duration, pos, item.CreatedAt); err != nil {
			return err
		}
	}

	return tx.Commit()
}
