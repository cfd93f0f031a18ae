package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/teberizm/nfc-bracelet-ecommerce-sub000/internal/content"
	"github.com/teberizm/nfc-bracelet-ecommerce-sub000/internal/store"
)

// PublicHandler serves the page a scanner of the physical bracelet sees.
// It is read-only and keyed by the order's NFC token.
type PublicHandler struct {
	Store     *store.Store
	Content   *content.Service
	Templates *TemplateCache
}

// MemoryPage renders the published memory page for a scanned tag. The
// render input is built by the same content.BuildPage the editor preview
// uses; only the outer chrome differs.
func (h *PublicHandler) MemoryPage(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")

	order, err := h.Store.GetOrderByNFCToken(token)
	if err != nil {
		slog.Error("Failed to look up NFC token", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if order == nil {
		http.NotFound(w, r)
		return
	}

	oc, err := h.Content.Get(order.ID)
	if err != nil {
		if errors.Is(err, content.ErrContentNotFound) {
			h.notReady(w)
			return
		}
		slog.Error("Failed to load order content", "order_id", order.ID, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	// Unpublished pages stay private: the scanner sees the same
	// not-ready state as a page that was never set up.
	if !oc.Published {
		h.notReady(w)
		return
	}

	page, err := content.BuildPage(oc)
	if err != nil {
		if errors.Is(err, content.ErrNoTheme) {
			h.notReady(w)
			return
		}
		slog.Error("Failed to build memory page", "order_id", order.ID, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	tmpl := h.Templates.Get("memory_public.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	tmpl.Execute(w, map[string]interface{}{
		"Page": page,
	})
}

func (h *PublicHandler) notReady(w http.ResponseWriter) {
	tmpl := h.Templates.Get("memory_not_ready.html")
	if tmpl == nil {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("This memory page is not ready yet."))
		return
	}
	tmpl.Execute(w, nil)
}
