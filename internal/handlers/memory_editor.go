package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/csrf"
	"github.com/gorilla/sessions"
	"github.com/teberizm/nfc-bracelet-ecommerce-sub000/internal/content"
	"github.com/teberizm/nfc-bracelet-ecommerce-sub000/internal/models"
	"github.com/teberizm/nfc-bracelet-ecommerce-sub000/internal/store"
)

// EditorHandler serves the owner-facing memory page editor: the content
// step (uploads), the theme step (theme, cover, sliders) and the live
// preview. Access is gated by the order's magic token; the editor opens
// once the order is delivered.
type EditorHandler struct {
	Store        *store.Store
	Content      *content.Service
	Templates    *TemplateCache
	SessionStore *sessions.CookieStore
	UploadDir    string
}

// resolveOrder authenticates the magic token and checks the editor is
// open for the order. Returns nil after writing the redirect when access
// is denied.
func (h *EditorHandler) resolveOrder(w http.ResponseWriter, r *http.Request, session *sessions.Session) *models.Order {
	token := r.PathValue("token")
	order, err := h.Store.GetOrderByToken(token)
	if err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Order not found or link is invalid."})
		session.Save(r, w)
		http.Redirect(w, r, "/status-request", http.StatusSeeOther)
		return nil
	}
	if time.Now().After(order.MagicTokenExpiry) {
		session.AddFlash(FlashMessage{Type: "error", Message: "Link Expired. Please request a new one."})
		session.Save(r, w)
		http.Redirect(w, r, "/status-request", http.StatusSeeOther)
		return nil
	}
	if !order.ContentReady() {
		session.AddFlash(FlashMessage{Type: "error", Message: "The memory page editor opens once your bracelet is delivered."})
		session.Save(r, w)
		http.Redirect(w, r, "/order/status/"+token, http.StatusSeeOther)
		return nil
	}
	return order
}

func (h *EditorHandler) editorURL(r *http.Request, suffix string) string {
	return "/memory-editor/" + r.PathValue("token") + suffix
}

// ContentStep lists the uploaded media and hosts the upload forms.
func (h *EditorHandler) ContentStep(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, "order-session")
	order := h.resolveOrder(w, r, session)
	if order == nil {
		return
	}

	oc, err := h.Content.Get(order.ID)
	if err != nil {
		h.contentError(w, r, session, err)
		return
	}

	tmpl := h.Templates.Get("editor_content.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	data := map[string]interface{}{
		"Order":     order,
		"Items":     oc.Items,
		"Published": oc.Published,
		"Token":     r.PathValue("token"),
		"CsrfField": csrf.TemplateField(r),
		"Flashes":   GetFlash(session),
	}
	session.Save(r, w)
	tmpl.Execute(w, data)
}

// ThemeStep hosts theme cards, the cover picker, the customization sliders
// and an inline preview of the full page.
func (h *EditorHandler) ThemeStep(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, "order-session")
	order := h.resolveOrder(w, r, session)
	if order == nil {
		return
	}

	oc, err := h.Content.Get(order.ID)
	if err != nil {
		h.contentError(w, r, session, err)
		return
	}

	var photos []content.MediaItem
	for _, item := range oc.Items {
		if item.Type() == content.TypeImage {
			photos = append(photos, item)
		}
	}

	// The inline preview is the same full render the public page gets.
	// A missing theme is fine here: the page card simply shows the
	// not-ready state until one is picked.
	var page *content.Page
	if p, err := content.BuildPage(oc); err == nil {
		page = p
	}

	tmpl := h.Templates.Get("editor_theme.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	data := map[string]interface{}{
		"Order":         order,
		"Themes":        content.Themes(),
		"SelectedTheme": oc.ThemeID,
		"Photos":        photos,
		"CoverID":       oc.CoverID,
		"Customization": oc.Customization,
		"Published":     oc.Published,
		"Page":          page,
		"Token":         r.PathValue("token"),
		"CsrfField":     csrf.TemplateField(r),
		"Flashes":       GetFlash(session),
	}
	session.Save(r, w)
	tmpl.Execute(w, data)
}

// Preview renders the full page inside a device frame. Same BuildPage,
// same template partial as the public scan page.
func (h *EditorHandler) Preview(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, "order-session")
	order := h.resolveOrder(w, r, session)
	if order == nil {
		return
	}

	page, err := h.Content.RenderPage(order.ID)
	if err != nil {
		if errors.Is(err, content.ErrNoTheme) {
			session.AddFlash(FlashMessage{Type: "error", Message: "Pick a theme before previewing your page."})
			session.Save(r, w)
			http.Redirect(w, r, h.editorURL(r, "/theme"), http.StatusSeeOther)
			return
		}
		h.contentError(w, r, session, err)
		return
	}

	tmpl := h.Templates.Get("editor_preview.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	session.Save(r, w)
	tmpl.Execute(w, map[string]interface{}{
		"Order": order,
		"Page":  page,
		"Token": r.PathValue("token"),
	})
}

// DeleteMedia removes one item from the page.
func (h *EditorHandler) DeleteMedia(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, "order-session")
	order := h.resolveOrder(w, r, session)
	if order == nil {
		return
	}
	defer session.Save(r, w)

	itemID, err := uuid.Parse(r.FormValue("item_id"))
	if err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Invalid item."})
		http.Redirect(w, r, h.editorURL(r, ""), http.StatusSeeOther)
		return
	}

	if err := h.Content.RemoveMediaItem(order.ID, itemID); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Could not remove that item."})
	} else {
		session.AddFlash(FlashMessage{Type: "success", Message: "Removed."})
	}
	http.Redirect(w, r, h.editorURL(r, ""), http.StatusSeeOther)
}

// SelectTheme records the owner's theme choice.
func (h *EditorHandler) SelectTheme(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, "order-session")
	order := h.resolveOrder(w, r, session)
	if order == nil {
		return
	}
	defer session.Save(r, w)

	themeID := r.FormValue("theme_id")
	if err := h.Content.SelectTheme(order.ID, themeID); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "That theme is not available."})
	} else {
		session.AddFlash(FlashMessage{Type: "success", Message: "Theme selected!"})
	}
	http.Redirect(w, r, h.editorURL(r, "/theme"), http.StatusSeeOther)
}

// SetCover designates the hero photo.
func (h *EditorHandler) SetCover(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, "order-session")
	order := h.resolveOrder(w, r, session)
	if order == nil {
		return
	}
	defer session.Save(r, w)

	itemID, err := uuid.Parse(r.FormValue("item_id"))
	if err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Invalid photo."})
		http.Redirect(w, r, h.editorURL(r, "/theme"), http.StatusSeeOther)
		return
	}

	if err := h.Content.SetCoverPhoto(order.ID, itemID); err != nil {
		if errors.Is(err, content.ErrCoverNotPhoto) {
			session.AddFlash(FlashMessage{Type: "error", Message: "Only a photo can be the cover."})
		} else {
			session.AddFlash(FlashMessage{Type: "error", Message: "Could not set the cover photo."})
		}
	} else {
		session.AddFlash(FlashMessage{Type: "success", Message: "Cover photo set!"})
	}
	http.Redirect(w, r, h.editorURL(r, "/theme"), http.StatusSeeOther)
}

// Customize stores the slider values. Out-of-range values are clamped at
// this boundary, never stored as-is.
func (h *EditorHandler) Customize(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, "order-session")
	order := h.resolveOrder(w, r, session)
	if order == nil {
		return
	}
	defer session.Save(r, w)

	fontSize, _ := strconv.Atoi(r.FormValue("font_size"))
	spacing, _ := strconv.Atoi(r.FormValue("spacing"))
	borderRadius, _ := strconv.Atoi(r.FormValue("border_radius"))

	cust := content.Customization{FontSize: fontSize, Spacing: spacing, BorderRadius: borderRadius}
	if err := h.Content.UpdateCustomization(order.ID, cust); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Could not save your customization."})
	} else {
		session.AddFlash(FlashMessage{Type: "success", Message: "Customization saved."})
	}
	http.Redirect(w, r, h.editorURL(r, "/theme"), http.StatusSeeOther)
}

// Publish flips the page live. Not-ready errors name what is missing.
func (h *EditorHandler) Publish(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, "order-session")
	order := h.resolveOrder(w, r, session)
	if order == nil {
		return
	}
	defer session.Save(r, w)

	if err := h.Content.Publish(order.ID); err != nil {
		var notReady *content.NotReadyError
		if errors.As(err, &notReady) {
			for _, missing := range notReady.Missing {
				session.AddFlash(FlashMessage{Type: "error", Message: "Your page still needs " + missing + "."})
			}
		} else {
			session.AddFlash(FlashMessage{Type: "error", Message: "Could not publish your page."})
		}
		http.Redirect(w, r, h.editorURL(r, "/theme"), http.StatusSeeOther)
		return
	}

	slog.Info("Memory page published", "order_id", order.ID, "nfc_token", order.NFCToken)
	session.AddFlash(FlashMessage{Type: "success", Message: "Your memory page is live! Scanning the bracelet now opens it."})
	http.Redirect(w, r, h.editorURL(r, "/theme"), http.StatusSeeOther)
}

func (h *EditorHandler) contentError(w http.ResponseWriter, r *http.Request, session *sessions.Session, err error) {
	if errors.Is(err, content.ErrContentNotFound) {
		session.AddFlash(FlashMessage{Type: "error", Message: "Your memory page is not set up yet. Please contact support."})
		session.Save(r, w)
		http.Redirect(w, r, "/order/status/"+r.PathValue("token"), http.StatusSeeOther)
		return
	}
	slog.Error("Editor failure", "error", err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}
