package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/csrf"
	"github.com/teberizm/nfc-bracelet-ecommerce-sub000/internal/models"
)

func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	pageStr := r.URL.Query().Get("page")
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = 1
	}

	limitStr := r.URL.Query().Get("limit")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		limit = 10 // Default limit
	}

	offset := (page - 1) * limit

	orders, err := h.Store.GetAllOrders(limit, offset)
	if err != nil {
		http.Error(w, "Error fetching orders", http.StatusInternalServerError)
		return
	}

	totalOrders, err := h.Store.GetTotalOrdersCount()
	if err != nil {
		http.Error(w, "Error fetching total order count", http.StatusInternalServerError)
		return
	}

	totalPages := (totalOrders + limit - 1) / limit
	if totalPages == 0 {
		totalPages = 1
	}

	tmpl := h.Templates.Get("admin_orders.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}

	session, _ := h.SessionStore.Get(r, "admin-session")
	data := map[string]interface{}{
		"Orders":      orders,
		"CsrfField":   csrf.TemplateField(r),
		"Flashes":     GetFlash(session),
		"CurrentPage": page,
		"TotalPages":  totalPages,
		"Limit":       limit,
	}
	session.Save(r, w)
	tmpl.Execute(w, data)
}

func (h *AdminHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	idStr := r.FormValue("id")
	status := r.FormValue("status")
	adminComments := r.FormValue("admin_comments")

	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}

	if err := h.Store.UpdateOrderStatus(id, status, adminComments); err != nil {
		http.Error(w, "Error updating status", http.StatusInternalServerError)
		return
	}

	// Delivery is the content-ready transition: the order's memory page
	// aggregate is created (empty) and the owner can start uploading.
	if status == models.StatusDelivered {
		if err := h.Store.EnsureOrderContent(id); err != nil {
			slog.Error("Failed to create order content", "order_id", id, "error", err)
			http.Error(w, "Error preparing memory page", http.StatusInternalServerError)
			return
		}
		if order, err := h.Store.GetOrderByID(id); err == nil && order != nil {
			// MOCK EMAIL
			slog.Info("==========================================")
			slog.Info("EMAIL SENT TO: " + order.CustomerEmail)
			slog.Info("Subject: Your bracelet has arrived - build its memory page!")
			slog.Info("Editor Link: " + h.BaseURL + "/memory-editor/" + order.MagicToken)
			slog.Info("==========================================")
		}
	}

	session, _ := h.SessionStore.Get(r, "admin-session")
	session.AddFlash(FlashMessage{Type: "success", Message: "Order updated!"})
	session.Save(r, w)
	http.Redirect(w, r, "/admin/orders", http.StatusSeeOther)
}
