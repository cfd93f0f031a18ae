package store

import (
	"database/sql"

	"github.com/teberizm/nfc-bracelet-ecommerce-sub000/internal/models"
)

func (s *Store) CreateOrder(order *models.Order) error {
	query := `
		INSERT INTO orders (product_id, order_ref, quantity, customer_name, customer_email, customer_address, status, notes, magic_token, magic_token_expiry, nfc_token, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`
	_, err := s.DB.Exec(query, order.ProductID, order.OrderRef, order.Quantity, order.CustomerName, order.CustomerEmail, order.CustomerAddress, order.Status, order.Notes, order.MagicToken, order.MagicTokenExpiry, order.NFCToken)
	return err
}

func (s *Store) GetAllOrders(limit, offset int) ([]models.Order, error) {
	query := `
		SELECT o.id, COALESCE(o.order_ref, CAST(o.id AS TEXT)) as order_ref, o.product_id, p.title, p.image_url, COALESCE(o.quantity, 1) as quantity, o.customer_name, o.customer_email, o.customer_address, o.status, o.notes, COALESCE(o.nfc_token, '') as nfc_token, o.created_at
		FROM orders o
		JOIN products p ON o.product_id = p.id
		ORDER BY o.created_at DESC
		LIMIT ? OFFSET ?
	`
	rows, err := s.DB.Query(query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.OrderRef, &o.ProductID, &o.ProductTitle, &o.ProductImageURL, &o.Quantity, &o.CustomerName, &o.CustomerEmail, &o.CustomerAddress, &o.Status, &o.Notes, &o.NFCToken, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (s *Store) GetTotalOrdersCount() (int, error) {
	var count int
	err := s.DB.QueryRow("SELECT COUNT(*) FROM orders").Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (s *Store) GetOrderByID(id int) (*models.Order, error) {
	query := `
		SELECT o.id, COALESCE(o.order_ref, CAST(o.id AS TEXT)) as order_ref, o.product_id, p.title, p.image_url, COALESCE(o.quantity, 1) as quantity, o.customer_name, o.customer_email, o.customer_address, o.status, o.notes, COALESCE(o.magic_token, '') as magic_token, COALESCE(o.nfc_token, '') as nfc_token, o.created_at
		FROM orders o
		JOIN products p ON o.product_id = p.id
		WHERE o.id = ?
	`
	var o models.Order
	err := s.DB.QueryRow(query, id).Scan(&o.ID, &o.OrderRef, &o.ProductID, &o.ProductTitle, &o.ProductImageURL, &o.Quantity, &o.CustomerName, &o.CustomerEmail, &o.CustomerAddress, &o.Status, &o.Notes, &o.MagicToken, &o.NFCToken, &o.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

// GetOrderByNFCToken resolves the order behind a scanned tag. Returns
// (nil, nil) for an unknown token.
func (s *Store) GetOrderByNFCToken(token string) (*models.Order, error) {
	query := `
		SELECT o.id, COALESCE(o.order_ref, CAST(o.id AS TEXT)) as order_ref, o.product_id, p.title, p.image_url, COALESCE(o.quantity, 1) as quantity, o.customer_name, o.customer_email, o.customer_address, o.status, o.notes, COALESCE(o.nfc_token, '') as nfc_token, o.created_at
		FROM orders o
		JOIN products p ON o.product_id = p.id
		WHERE o.nfc_token = ?
	`
	var o models.Order
	err := s.DB.QueryRow(query, token).Scan(&o.ID, &o.OrderRef, &o.ProductID, &o.ProductTitle, &o.ProductImageURL, &o.Quantity, &o.CustomerName, &o.CustomerEmail, &o.CustomerAddress, &o.Status, &o.Notes, &o.NFCToken, &o.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (s *Store) UpdateOrderStatus(id int, status, adminComments string) error {
	query := `UPDATE orders SET status = ?, admin_comments = ? WHERE id = ?`
	_, err := s.DB.Exec(query, status, adminComments, id)
	return err
}

func (s *Store) UpdateOrderDetails(order *models.Order) error {
	query := `UPDATE orders SET quantity = ?, customer_name = ?, customer_email = ?, customer_address = ?, notes = ? WHERE id = ?`
	_, err := s.DB.Exec(query, order.Quantity, order.CustomerName, order.CustomerEmail, order.CustomerAddress, order.Notes, order.ID)
	return err
}

func (s *Store) CancelOrder(id int) error {
	query := `UPDATE orders SET status = 'Cancelled' WHERE id = ?`
	_, err := s.DB.Exec(query, id)
	return err
}
