package store

import "database/sql"

type DashboardStats struct {
	TotalProducts      int
	TotalOrders        int
	PublishedPages     int
	OrdersByStatus     map[string]int
	ProductOrderCounts []ProductOrderCount
}

type ProductOrderCount struct {
	ProductID  int
	Title      string
	OrderCount int
}

func (s *Store) GetDashboardStats() (*DashboardStats, error) {
	stats := &DashboardStats{
		OrdersByStatus: make(map[string]int),
	}

	err := s.DB.QueryRow("SELECT COUNT(*) FROM products").Scan(&stats.TotalProducts)
	if err != nil && err != sql.ErrNoRows {
		return nil, err
	}

	err = s.DB.QueryRow("SELECT COUNT(*) FROM orders").Scan(&stats.TotalOrders)
	if err != nil && err != sql.ErrNoRows {
		return nil, err
	}

	err = s.DB.QueryRow("SELECT COUNT(*) FROM order_content WHERE published = 1").Scan(&stats.PublishedPages)
	if err != nil && err != sql.ErrNoRows {
		return nil, err
	}

	rows, err := s.DB.Query("SELECT status, COUNT(*) FROM orders GROUP BY status")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		stats.OrdersByStatus[status] = count
	}

	productRows, err := s.DB.Query(`
		SELECT p.id, p.title, COUNT(o.id) as order_count
		FROM products p
		LEFT JOIN orders o ON p.id = o.product_id
		GROUP BY p.id
		ORDER BY order_count DESC
	`)
	if err != nil {
		return nil, err
	}
	defer productRows.Close()
	for productRows.Next() {
		var poc ProductOrderCount
		if err := productRows.Scan(&poc.ProductID, &poc.Title, &poc.OrderCount); err != nil {
			return nil, err
		}
		stats.ProductOrderCounts = append(stats.ProductOrderCounts, poc)
	}

	return stats, nil
}
