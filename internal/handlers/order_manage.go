package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/csrf"
	"github.com/teberizm/nfc-bracelet-ecommerce-sub000/internal/models"
)

// EditOrderForm lets the customer adjust shipping details while the order
// has not shipped yet.
func (h *OrderHandler) EditOrderForm(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, "order-session")
	defer session.Save(r, w)

	token := r.PathValue("token")
	order, err := h.Store.GetOrderByToken(token)
	if err != nil || time.Now().After(order.MagicTokenExpiry) {
		session.AddFlash(FlashMessage{Type: "error", Message: "Order not found or link is invalid."})
		http.Redirect(w, r, "/status-request", http.StatusSeeOther)
		return
	}

	if !orderEditable(order) {
		session.AddFlash(FlashMessage{Type: "error", Message: "This order can no longer be changed."})
		http.Redirect(w, r, "/order/status/"+token, http.StatusSeeOther)
		return
	}

	tmpl := h.Templates.Get("order_edit.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	data := map[string]interface{}{
		"Order":     order,
		"CsrfField": csrf.TemplateField(r),
		"Flashes":   GetFlash(session),
	}
	tmpl.Execute(w, data)
}

func (h *OrderHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, "order-session")
	defer session.Save(r, w)

	token := r.FormValue("token")
	order, err := h.Store.GetOrderByToken(token)
	if err != nil || time.Now().After(order.MagicTokenExpiry) {
		session.AddFlash(FlashMessage{Type: "error", Message: "Order not found or link is invalid."})
		http.Redirect(w, r, "/status-request", http.StatusSeeOther)
		return
	}

	if !orderEditable(order) {
		session.AddFlash(FlashMessage{Type: "error", Message: "This order can no longer be changed."})
		http.Redirect(w, r, "/order/status/"+token, http.StatusSeeOther)
		return
	}

	quantity := order.Quantity
	if q, err := strconv.Atoi(r.FormValue("quantity")); err == nil && q > 0 {
		quantity = q
	}
	name := r.FormValue("name")
	email := r.FormValue("email")
	address := r.FormValue("address")
	if name == "" || email == "" || address == "" {
		session.AddFlash(FlashMessage{Type: "error", Message: "Name, email and address are required."})
		http.Redirect(w, r, "/order/edit/"+token, http.StatusSeeOther)
		return
	}

	order.Quantity = quantity
	order.CustomerName = name
	order.CustomerEmail = email
	order.CustomerAddress = address
	order.Notes = r.FormValue("notes")

	if err := h.Store.UpdateOrderDetails(order); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Failed to update your order."})
		http.Redirect(w, r, "/order/edit/"+token, http.StatusSeeOther)
		return
	}

	session.AddFlash(FlashMessage{Type: "success", Message: "Order updated!"})
	http.Redirect(w, r, "/order/status/"+token, http.StatusSeeOther)
}

func (h *OrderHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, "order-session")
	defer session.Save(r, w)

	token := r.FormValue("token")
	order, err := h.Store.GetOrderByToken(token)
	if err != nil || time.Now().After(order.MagicTokenExpiry) {
		session.AddFlash(FlashMessage{Type: "error", Message: "Order not found or link is invalid."})
		http.Redirect(w, r, "/status-request", http.StatusSeeOther)
		return
	}

	if !orderEditable(order) {
		session.AddFlash(FlashMessage{Type: "error", Message: "This order can no longer be cancelled."})
		http.Redirect(w, r, "/order/status/"+token, http.StatusSeeOther)
		return
	}

	if err := h.Store.CancelOrder(order.ID); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Failed to cancel your order."})
		http.Redirect(w, r, "/order/status/"+token, http.StatusSeeOther)
		return
	}

	session.AddFlash(FlashMessage{Type: "success", Message: "Order cancelled."})
	http.Redirect(w, r, "/order/status/"+token, http.StatusSeeOther)
}

// Orders can be edited or cancelled until they ship.
func orderEditable(order *models.Order) bool {
	return order.Status == models.StatusOrdered || order.Status == models.StatusPreparing
}
