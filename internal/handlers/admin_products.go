package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/csrf"
	"github.com/teberizm/nfc-bracelet-ecommerce-sub000/internal/models"
)

func (h *AdminHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	// Admin sees ALL products including archived
	products, err := h.Store.GetAllProducts()
	if err != nil {
		http.Error(w, "Error fetching products", http.StatusInternalServerError)
		return
	}

	tmpl := h.Templates.Get("admin_products.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	session, _ := h.SessionStore.Get(r, "admin-session")
	data := map[string]interface{}{
		"Products":  products,
		"Flashes":   GetFlash(session),
		"CsrfField": csrf.TemplateField(r),
	}
	session.Save(r, w)
	tmpl.Execute(w, data)
}

func (h *AdminHandler) EditProductForm(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}

	product, err := h.Store.GetProductByID(id)
	if err != nil {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	tmpl := h.Templates.Get("admin_edit_product.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	session, _ := h.SessionStore.Get(r, "admin-session")
	data := map[string]interface{}{
		"CsrfField": csrf.TemplateField(r),
		"Flashes":   GetFlash(session),
		"Product":   product,
	}
	session.Save(r, w)
	tmpl.Execute(w, data)
}

func (h *AdminHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, "admin-session")
	defer session.Save(r, w)

	err := r.ParseMultipartForm(10 << 20) // 10MB
	if err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "File too large."})
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	idStr := r.FormValue("id")
	id, _ := strconv.Atoi(idStr)
	price, _ := strconv.ParseFloat(r.FormValue("price"), 64)

	product := &models.Product{
		ID:          id,
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Price:       price,
		Status:      r.FormValue("status"),
	}

	if err := h.Store.UpdateProduct(product); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Error updating product."})
		http.Redirect(w, r, fmt.Sprintf("/admin/products/edit?id=%d", id), http.StatusSeeOther)
		return
	}

	// Handle optional image update
	if file, header, err := r.FormFile("image"); err == nil {
		defer file.Close()

		imageURL, err := saveProductImage(file, header)
		if err != nil {
			slog.Error("Product image update failed", "error", err)
			session.AddFlash(FlashMessage{Type: "error", Message: "Product saved, but image update failed."})
			http.Redirect(w, r, fmt.Sprintf("/admin/products/edit?id=%d", id), http.StatusSeeOther)
			return
		}
		if err := h.Store.UpdateProductImage(id, imageURL); err != nil {
			slog.Error("Failed to store product image url", "error", err)
		}
	}

	session.AddFlash(FlashMessage{Type: "success", Message: "Product updated successfully!"})
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}
