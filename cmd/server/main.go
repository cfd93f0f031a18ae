package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/csrf"
	"github.com/gorilla/sessions"
	"github.com/teberizm/nfc-bracelet-ecommerce-sub000/internal/config"
	"github.com/teberizm/nfc-bracelet-ecommerce-sub000/internal/content"
	"github.com/teberizm/nfc-bracelet-ecommerce-sub000/internal/handlers"
	"github.com/teberizm/nfc-bracelet-ecommerce-sub000/internal/store"
)

func main() {
	// Configure slog as early as possible in main.
	handlerOpts := &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}
	// TextHandler for console readability; for production JSONHandler might be preferred.
	logger := slog.New(slog.NewTextHandler(os.Stdout, handlerOpts))
	slog.SetDefault(logger)

	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Init DB
	db, err := store.NewStore(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize store", "error", err)
		os.Exit(1)
	}

	// Run Migrations
	if err := db.Migrate("migrations"); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Media uploads land here; the directory must exist before the first one.
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		slog.Error("Failed to create upload directory", "dir", cfg.UploadDir, "error", err)
		os.Exit(1)
	}

	// 3. Session Setup
	sessionStore := sessions.NewCookieStore(cfg.SessionKey)
	sessionStore.Options.HttpOnly = true
	sessionStore.Options.Secure = cfg.CookieSecure
	sessionStore.Options.SameSite = http.SameSiteLaxMode
	sessionStore.Options.Path = "/"
	if cfg.CookieDomain != "" {
		sessionStore.Options.Domain = cfg.CookieDomain
	}

	// 4. Init Templates
	templates := handlers.NewTemplateCache()
	if err := templates.Load("templates"); err != nil {
		slog.Error("Failed to load templates", "error", err)
		os.Exit(1)
	}

	// 5. Setup Handlers
	contentService := content.NewService(db)

	adminHandler := &handlers.AdminHandler{
		Store:        db,
		SessionStore: sessionStore,
		Templates:    templates,
		BaseURL:      cfg.BaseURL,
	}
	homeHandler := &handlers.HomeHandler{
		Store:        db,
		Templates:    templates,
		SessionStore: sessionStore,
	}
	orderHandler := &handlers.OrderHandler{
		Store:        db,
		Templates:    templates,
		SessionStore: sessionStore,
		BaseURL:      cfg.BaseURL,
	}
	editorHandler := &handlers.EditorHandler{
		Store:        db,
		Content:      contentService,
		Templates:    templates,
		SessionStore: sessionStore,
		UploadDir:    cfg.UploadDir,
	}
	publicHandler := &handlers.PublicHandler{
		Store:     db,
		Content:   contentService,
		Templates: templates,
	}

	mux := http.NewServeMux()

	// Static Files
	fileServer := http.FileServer(http.Dir("./static"))
	mux.Handle("/static/", http.StripPrefix("/static", fileServer))

	// Rate Limiter (1 request per minute)
	rateLimiter := handlers.NewRateLimiter(1 * time.Minute)

	// Public Routes
	mux.HandleFunc("/", homeHandler.Index)
	mux.HandleFunc("/order", orderHandler.OrderForm)
	mux.HandleFunc("POST /order", rateLimiter.Middleware(orderHandler.SubmitOrder))

	// Order Status (Magic Link)
	mux.HandleFunc("/status-request", orderHandler.RequestStatusLink)
	mux.HandleFunc("POST /status-request", rateLimiter.Middleware(orderHandler.SendStatusLink))
	mux.HandleFunc("/my-orders", orderHandler.MyOrders)
	mux.HandleFunc("/order/status/{token}", orderHandler.ViewOrderStatus)

	// Order Management (Edit/Cancel)
	mux.HandleFunc("/order/edit/{token}", orderHandler.EditOrderForm)
	mux.HandleFunc("POST /order/update", rateLimiter.Middleware(orderHandler.UpdateOrder))
	mux.HandleFunc("POST /order/cancel", rateLimiter.Middleware(orderHandler.CancelOrder))

	// Memory Page Editor (Magic Link, opens on delivery)
	mux.HandleFunc("/memory-editor/{token}", editorHandler.ContentStep)
	mux.HandleFunc("/memory-editor/{token}/theme", editorHandler.ThemeStep)
	mux.HandleFunc("/memory-editor/{token}/preview", editorHandler.Preview)
	mux.HandleFunc("POST /memory-editor/{token}/media", editorHandler.UploadMedia)
	mux.HandleFunc("POST /memory-editor/{token}/media/delete", editorHandler.DeleteMedia)
	mux.HandleFunc("POST /memory-editor/{token}/theme", editorHandler.SelectTheme)
	mux.HandleFunc("POST /memory-editor/{token}/cover", editorHandler.SetCover)
	mux.HandleFunc("POST /memory-editor/{token}/customize", editorHandler.Customize)
	mux.HandleFunc("POST /memory-editor/{token}/publish", editorHandler.Publish)

	// Public Memory Page (what a scanned bracelet opens)
	mux.HandleFunc("/memory/{token}", publicHandler.MemoryPage)

	mux.HandleFunc("/login", adminHandler.LoginGet)
	mux.HandleFunc("POST /login", adminHandler.LoginPost)
	mux.HandleFunc("/logout", adminHandler.Logout)

	// Protected Routes
	mux.HandleFunc("/admin", adminHandler.AuthMiddleware(adminHandler.Dashboard))
	mux.HandleFunc("/admin/orders", adminHandler.AuthMiddleware(adminHandler.ListOrders))
	mux.HandleFunc("POST /admin/orders/update", adminHandler.AuthMiddleware(adminHandler.UpdateOrderStatus))

	mux.HandleFunc("/admin/products", adminHandler.AuthMiddleware(adminHandler.ListProducts))
	mux.HandleFunc("/admin/products/new", adminHandler.AuthMiddleware(adminHandler.AddProductForm))
	mux.HandleFunc("POST /admin/products", adminHandler.AuthMiddleware(adminHandler.CreateProduct))
	mux.HandleFunc("POST /admin/products/delete", adminHandler.AuthMiddleware(adminHandler.DeleteProduct))
	mux.HandleFunc("/admin/products/edit", adminHandler.AuthMiddleware(adminHandler.EditProductForm))
	mux.HandleFunc("POST /admin/products/update", adminHandler.AuthMiddleware(adminHandler.UpdateProduct))

	// 6. Middleware Setup
	CSRF := csrf.Protect(
		cfg.CSRFKey,
		csrf.Secure(cfg.CookieSecure),
		csrf.TrustedOrigins([]string{"localhost:" + cfg.Port, "127.0.0.1:" + cfg.Port, "localhost", "127.0.0.1"}),
	)

	// Chain: Logger -> Security Headers -> CSRF -> Mux
	handler := handlers.LoggingMiddleware(
		handlers.SecurityHeadersMiddleware(
			CSRF(mux),
		),
	)

	// 7. Start Server with Graceful Shutdown
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("Server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to listen and serve", "error", err)
			os.Exit(1)
		}
	}()

	<-stop

	slog.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited gracefully.")
}
