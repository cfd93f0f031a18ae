package models

import (
	"time"
)

// Order status lifecycle. An order becomes content-ready when it reaches
// StatusDelivered: that is when its memory page aggregate is created and
// the owner can start uploading.
const (
	StatusOrdered   = "Ordered"
	StatusPreparing = "Preparing"
	StatusShipped   = "Shipped"
	StatusDelivered = "Delivered"
	StatusCancelled = "Cancelled"
)

type Product struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"image_url"`
	Status      string    `json:"status"` // "available", "out_of_stock", "archived"
	CreatedAt   time.Time `json:"created_at"`
}

type Order struct {
	ID               int       `json:"id"`
	OrderRef         string    `json:"order_ref"` // Public "A7X9..." ID
	ProductID        int       `json:"product_id"`
	ProductTitle     string    `json:"product_title"` // For display convenience
	ProductImageURL  string    `json:"product_image_url"`
	Quantity         int       `json:"quantity"`
	CustomerName     string    `json:"customer_name"`
	CustomerEmail    string    `json:"customer_email"`
	CustomerAddress  string    `json:"customer_address"`
	Status           string    `json:"status"`
	Notes            string    `json:"notes"`
	AdminComments    string    `json:"admin_comments"`
	MagicToken       string    `json:"magic_token"`
	MagicTokenExpiry time.Time `json:"magic_token_expiry"`
	// NFCToken is minted at order creation and written to the physical
	// tag. The public memory page is served at /memory/{nfc_token}.
	NFCToken  string    `json:"nfc_token"`
	CreatedAt time.Time `json:"created_at"`
}

// ContentReady reports whether the memory page editor is open for this
// order.
func (o *Order) ContentReady() bool {
	return o.Status == StatusDelivered
}

type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"` // Store hashed password
}
