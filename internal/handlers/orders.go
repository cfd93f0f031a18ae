package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/csrf"
	"github.com/gorilla/sessions"
	"github.com/teberizm/nfc-bracelet-ecommerce-sub000/internal/models"
	"github.com/teberizm/nfc-bracelet-ecommerce-sub000/internal/store"
)

type OrderHandler struct {
	Store        *store.Store
	Templates    *TemplateCache
	SessionStore *sessions.CookieStore
	BaseURL      string
}

func (h *OrderHandler) OrderForm(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid Product ID", http.StatusBadRequest)
		return
	}

	product, err := h.Store.GetProductByID(id)
	if err != nil {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	tmpl := h.Templates.Get("order.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	session, _ := h.SessionStore.Get(r, "order-session")
	data := map[string]interface{}{
		"Product":   product,
		"CsrfField": csrf.TemplateField(r),
		"Flashes":   GetFlash(session),
	}
	session.Save(r, w)
	tmpl.Execute(w, data)
}

func generateToken() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "fallback-token-" + strconv.FormatInt(time.Now().Unix(), 10)
	}
	return hex.EncodeToString(b)
}

func generateOrderRef() string {
	// 8 chars alphanumeric (uppercase); I, O, 1, 0 removed to avoid confusion
	const charset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return "ORD" + strconv.FormatInt(time.Now().Unix(), 10)
	}
	for i := range b {
		b[i] = charset[int(b[i])%len(charset)]
	}
	return string(b)
}

func (h *OrderHandler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, "order-session")
	defer session.Save(r, w)

	if err := r.ParseForm(); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Invalid form data."})
		http.Redirect(w, r, r.Referer(), http.StatusSeeOther)
		return
	}

	productID, err := strconv.Atoi(r.FormValue("product_id"))
	if err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Invalid product ID."})
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	name := r.FormValue("name")
	email := r.FormValue("email")
	address := r.FormValue("address")
	notes := r.FormValue("notes")
	qtyStr := r.FormValue("quantity")
	quantity := 1
	if qtyStr != "" {
		if q, err := strconv.Atoi(qtyStr); err == nil && q > 0 {
			quantity = q
		}
	}

	// Validation
	errors := make(map[string]string)
	if name == "" {
		errors["name"] = "Your name is required."
	}
	if email == "" {
		errors["email"] = "Email address is required."
	} else if !isValidEmail(email) {
		errors["email"] = "Please enter a valid email address."
	}
	if address == "" {
		errors["address"] = "Shipping address is required."
	}

	if len(errors) > 0 {
		for _, msg := range errors {
			session.AddFlash(FlashMessage{Type: "error", Message: msg})
		}
		http.Redirect(w, r, r.Referer(), http.StatusSeeOther)
		return
	}

	token := generateToken()
	orderRef := generateOrderRef()

	order := &models.Order{
		ProductID:        productID,
		OrderRef:         orderRef,
		Quantity:         quantity,
		CustomerName:     name,
		CustomerEmail:    email,
		CustomerAddress:  address,
		Status:           models.StatusOrdered,
		Notes:            notes,
		MagicToken:       token,
		MagicTokenExpiry: time.Now().Add(30 * 24 * time.Hour),
		// The NFC token is minted now and engraved into the bracelet's
		// tag during fulfillment. It is the key of the public memory page.
		NFCToken: uuid.NewString(),
	}

	if err := h.Store.CreateOrder(order); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Failed to place order. Please try again."})
		http.Redirect(w, r, r.Referer(), http.StatusSeeOther)
		return
	}

	// MOCK EMAIL SENDING
	slog.Info("==========================================")
	slog.Info("EMAIL SENT TO: " + email)
	slog.Info("Subject: Order Confirmation - Everlink Bracelets")
	slog.Info("Order Reference: " + orderRef)
	slog.Info("Your Magic Link: " + h.BaseURL + "/order/status/" + token)
	slog.Info("==========================================")

	session.AddFlash(FlashMessage{Type: "success", Message: "Order placed successfully! Check your email for details."})
	http.Redirect(w, r, "/order/status/"+token, http.StatusSeeOther)
}

// Basic email validation regex
var emailRegex = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`)

func isValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}
