package store

import (
	"database/sql"
	"log/slog"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

type Store struct {
	DB *sql.DB
}

func NewStore(dataSourceName string) (*Store, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return &Store{DB: db}, nil
}

// InitSchema creates the full schema in one shot. Used by the CLI and by
// tests; the server applies the migrations directory instead.
func (s *Store) InitSchema() error {
	query := `
	CREATE TABLE IF NOT EXISTS products (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		description TEXT,
		price REAL,
		image_url TEXT,
		status TEXT DEFAULT 'available',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS orders (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		order_ref TEXT,
		product_id INTEGER NOT NULL,
		quantity INTEGER DEFAULT 1,
		customer_name TEXT NOT NULL,
		customer_email TEXT NOT NULL,
		customer_address TEXT NOT NULL,
		status TEXT DEFAULT 'Ordered',
		notes TEXT,
		admin_comments TEXT DEFAULT '',
		magic_token TEXT,
		magic_token_expiry DATETIME,
		nfc_token TEXT UNIQUE,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS login_tokens (
		token TEXT PRIMARY KEY,
		email TEXT NOT NULL,
		expires_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS order_content (
		order_id INTEGER PRIMARY KEY,
		theme_id TEXT DEFAULT '',
		cover_id TEXT DEFAULT '',
		font_size INTEGER NOT NULL,
		spacing INTEGER NOT NULL,
		border_radius INTEGER NOT NULL,
		published INTEGER DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS media_items (
		id TEXT PRIMARY KEY,
		order_id INTEGER NOT NULL,
		type TEXT NOT NULL,
		title TEXT,
		content TEXT NOT NULL,
		thumbnail TEXT DEFAULT '',
		duration INTEGER DEFAULT 0,
		position INTEGER NOT NULL,
		created_at DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_media_items_order ON media_items(order_id, position);
	`
	_, err := s.DB.Exec(query)
	if err != nil {
		slog.Error("Error creating schema", "error", err)
		return err
	}
	return nil
}
