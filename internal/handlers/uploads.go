package handlers

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/nfnt/resize"
	"github.com/teberizm/nfc-bracelet-ecommerce-sub000/internal/content"
)

const maxUploadBytes = 100 << 20 // whole batch

var (
	videoExts = map[string]bool{".mp4": true, ".mov": true, ".webm": true}
	audioExts = map[string]bool{".mp3": true, ".m4a": true, ".wav": true, ".ogg": true}
)

// UploadMedia ingests one batch of content from the editor's content step.
// The "kind" field selects the pipeline. Files are processed sequentially
// in submission order and each file is all-or-nothing: the media row is
// only inserted after its file is fully written and renamed into place,
// and an abort mid-file leaves neither the file nor the row behind.
func (h *EditorHandler) UploadMedia(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, "order-session")
	order := h.resolveOrder(w, r, session)
	if order == nil {
		return
	}
	defer session.Save(r, w)

	redirect := h.editorURL(r, "")

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Upload too large."})
		http.Redirect(w, r, redirect, http.StatusSeeOther)
		return
	}

	var err error
	switch kind := r.FormValue("kind"); kind {
	case "photo":
		err = h.ingestPhotos(r, order.ID)
	case "video":
		err = h.ingestBlob(r, order.ID, content.TypeVideo)
	case "audio":
		err = h.ingestBlob(r, order.ID, content.TypeAudio)
	case "note":
		err = h.ingestNote(r, order.ID)
	case "youtube":
		err = h.ingestYouTube(r, order.ID)
	default:
		err = fmt.Errorf("unknown upload kind %q", kind)
	}

	if err != nil {
		slog.Error("Media upload failed", "order_id", order.ID, "error", err)
		session.AddFlash(FlashMessage{Type: "error", Message: "Upload failed: " + err.Error()})
	} else {
		session.AddFlash(FlashMessage{Type: "success", Message: "Added to your memory page!"})
	}
	http.Redirect(w, r, redirect, http.StatusSeeOther)
}

// ingestPhotos handles a multi-file photo upload. Files land on the page
// in submission order; a failure stops the batch but keeps the photos
// already inserted.
func (h *EditorHandler) ingestPhotos(r *http.Request, orderID int) error {
	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		return fmt.Errorf("no photos selected")
	}

	for _, header := range files {
		if err := r.Context().Err(); err != nil {
			return err
		}
		file, err := header.Open()
		if err != nil {
			return err
		}
		item, err := h.savePhoto(file, header)
		file.Close()
		if err != nil {
			return err
		}
		if err := h.addItem(orderID, item); err != nil {
			return err
		}
	}
	return nil
}

// savePhoto decodes, resizes and stores one photo plus its thumbnail, then
// returns the media item to insert. Written via temp file + rename so a
// failure never leaves a half-written upload visible.
func (h *EditorHandler) savePhoto(file multipart.File, header *multipart.FileHeader) (content.MediaItem, error) {
	var img image.Image
	var err error
	switch strings.ToLower(filepath.Ext(header.Filename)) {
	case ".png":
		img, err = png.Decode(file)
	case ".jpeg", ".jpg":
		img, err = jpeg.Decode(file)
	default:
		return content.MediaItem{}, fmt.Errorf("unsupported image format %q", filepath.Ext(header.Filename))
	}
	if err != nil {
		return content.MediaItem{}, fmt.Errorf("failed to decode %s: %w", header.Filename, err)
	}

	id := uuid.New()
	full := resize.Thumbnail(1600, 8000, img, resize.Lanczos3)
	fullURL, err := h.writeJPEG(full, id.String()+".jpg")
	if err != nil {
		return content.MediaItem{}, err
	}

	thumb := resize.Thumbnail(480, 2400, img, resize.Lanczos3)
	thumbURL, err := h.writeJPEG(thumb, id.String()+"_thumb.jpg")
	if err != nil {
		os.Remove(filepath.Join(h.UploadDir, id.String()+".jpg"))
		return content.MediaItem{}, err
	}

	item := content.NewPhoto(titleOrFilename(header), fullURL, thumbURL)
	item.ID = id
	return item, nil
}

func (h *EditorHandler) writeJPEG(img image.Image, filename string) (string, error) {
	tmp, err := os.CreateTemp(h.UploadDir, "tmp-*")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	if err := jpeg.Encode(tmp, img, &jpeg.Options{Quality: 80}); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}
	if err := os.Rename(tmp.Name(), filepath.Join(h.UploadDir, filename)); err != nil {
		return "", err
	}
	return "/" + path.Join(h.UploadDir, filename), nil
}

// ingestBlob stores a video or audio file as-is (no transcoding).
func (h *EditorHandler) ingestBlob(r *http.Request, orderID int, mediaType content.MediaType) error {
	file, header, err := r.FormFile("file")
	if err != nil {
		return fmt.Errorf("no file selected")
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	allowed := videoExts
	if mediaType == content.TypeAudio {
		allowed = audioExts
	}
	if !allowed[ext] {
		return fmt.Errorf("unsupported file format %q", ext)
	}

	id := uuid.New()
	filename := id.String() + ext

	tmp, err := os.CreateTemp(h.UploadDir, "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	// A cancelled request must not insert the item.
	if err := r.Context().Err(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), filepath.Join(h.UploadDir, filename)); err != nil {
		return err
	}
	url := "/" + path.Join(h.UploadDir, filename)

	var item content.MediaItem
	if mediaType == content.TypeVideo {
		item = content.NewVideo(titleOrFilename(header), url, "")
	} else {
		duration, _ := strconv.Atoi(r.FormValue("duration"))
		item = content.NewAudio(titleOrFilename(header), url, duration)
	}
	item.ID = id

	if err := h.addItem(orderID, item); err != nil {
		os.Remove(filepath.Join(h.UploadDir, filename))
		return err
	}
	return nil
}

func (h *EditorHandler) ingestNote(r *http.Request, orderID int) error {
	body := strings.TrimSpace(r.FormValue("body"))
	if body == "" {
		return fmt.Errorf("the note is empty")
	}
	title := strings.TrimSpace(r.FormValue("title"))
	if title == "" {
		title = "A note"
	}
	return h.addItem(orderID, content.NewNote(title, body))
}

func (h *EditorHandler) ingestYouTube(r *http.Request, orderID int) error {
	link := strings.TrimSpace(r.FormValue("url"))
	if content.YouTubeVideoID(link) == "" {
		return fmt.Errorf("that doesn't look like a YouTube link")
	}
	title := strings.TrimSpace(r.FormValue("title"))
	if title == "" {
		title = "A video"
	}
	return h.addItem(orderID, content.NewYouTubeLink(title, link))
}

func (h *EditorHandler) addItem(orderID int, item content.MediaItem) error {
	return h.Content.AddMediaItem(orderID, item)
}

func titleOrFilename(header *multipart.FileHeader) string {
	name := strings.TrimSuffix(filepath.Base(header.Filename), filepath.Ext(header.Filename))
	name = strings.ReplaceAll(name, "_", " ")
	name = strings.ReplaceAll(name, "-", " ")
	name = strings.TrimSpace(name)
	if name == "" {
		return "Untitled"
	}
	return name
}
