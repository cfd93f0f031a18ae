package store

import (
	"github.com/teberizm/nfc-bracelet-ecommerce-sub000/internal/models"
)

func (s *Store) CreateProduct(p *models.Product) error {
	query := `
		INSERT INTO products (title, description, price, image_url, status, created_at)
		VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`
	_, err := s.DB.Exec(query, p.Title, p.Description, p.Price, p.ImageURL, p.Status)
	return err
}

// GetAllProducts returns every product including archived ones, for the
// admin screens.
func (s *Store) GetAllProducts() ([]models.Product, error) {
	query := `SELECT id, title, description, price, image_url, COALESCE(status, 'available') as status, created_at FROM products ORDER BY created_at DESC`
	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Price, &p.ImageURL, &p.Status, &p.CreatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

// GetPublicProducts excludes archived products from the storefront.
func (s *Store) GetPublicProducts() ([]models.Product, error) {
	query := `SELECT id, title, description, price, image_url, COALESCE(status, 'available') as status, created_at
	          FROM products
	          WHERE status != 'archived' OR status IS NULL
	          ORDER BY created_at DESC`
	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Price, &p.ImageURL, &p.Status, &p.CreatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

func (s *Store) GetProductByID(id int) (*models.Product, error) {
	query := `SELECT id, title, description, price, image_url, COALESCE(status, 'available') as status, created_at FROM products WHERE id = ?`
	var p models.Product
	err := s.DB.QueryRow(query, id).Scan(&p.ID, &p.Title, &p.Description, &p.Price, &p.ImageURL, &p.Status, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) UpdateProduct(p *models.Product) error {
	query := `
		UPDATE products
		SET title = ?, description = ?, price = ?, status = ?
		WHERE id = ?
	`
	_, err := s.DB.Exec(query, p.Title, p.Description, p.Price, p.Status, p.ID)
	return err
}

func (s *Store) UpdateProductImage(id int, imageURL string) error {
	query := `UPDATE products SET image_url = ? WHERE id = ?`
	_, err := s.DB.Exec(query, imageURL, id)
	return err
}

func (s *Store) DeleteProduct(id int) error {
	query := `DELETE FROM products WHERE id = ?`
	_, err := s.DB.Exec(query, id)
	return err
}
