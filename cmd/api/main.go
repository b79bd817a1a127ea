package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"scrap-pickup/internal/api"
	"scrap-pickup/internal/config"
	"scrap-pickup/internal/modules/bookings"
	"scrap-pickup/internal/modules/categories"
	"scrap-pickup/internal/modules/invoices"
	"scrap-pickup/internal/modules/settings"
	"scrap-pickup/internal/modules/users"
	"scrap-pickup/internal/modules/vendors"
	"scrap-pickup/pkg/email"
	"scrap-pickup/pkg/pdf"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func main() {
	// 1. --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	e := echo.New()

	// 2. --- Middleware ---
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:5173", cfg.ClientOrigin},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// 3. --- Database Connection ---
	dbConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Unable to parse database configuration: %v", err)
	}

	dbPool, err := pgxpool.NewWithConfig(context.Background(), dbConfig)
	if err != nil {
		log.Fatalf("Unable to create connection pool: %v", err)
	}
	defer dbPool.Close()

	if err := dbPool.Ping(context.Background()); err != nil {
		log.Fatalf("Unable to ping database: %v", err)
	}
	e.Logger.Info("Successfully connected to the database!")

	// 4. --- Notification Sink & Invoice Renderer ---
	templates, err := email.NewTemplateManager()
	if err != nil {
		log.Fatalf("Failed to parse email templates: %v", err)
	}

	var sender email.SenderInterface
	if cfg.NotifyEmail != "" {
		sesSender, err := email.NewSESV2Sender(context.Background(), cfg.AWSRegion, cfg.EmailFrom)
		if err != nil {
			log.Fatalf("Failed to initialize email sender: %v", err)
		}
		sender = sesSender
	}
	notifier := email.NewBookingNotifier(sender, templates, cfg.NotifyEmail)

	invoiceRenderer := pdf.NewInvoiceRenderer()

	// 5. --- Dependency Injection (Wiring everything up) ---
	// --- Users Module ---
	userRepo := users.NewRepository(dbPool)
	userService := users.NewService(userRepo)
	userHandler := users.NewHandler(userService)

	// --- Vendors Module ---
	vendorRepo := vendors.NewRepository(dbPool)
	vendorService := vendors.NewService(vendorRepo, userRepo)
	vendorHandler := vendors.NewHandler(vendorService)

	// --- Categories Module ---
	categoryRepo := categories.NewRepository(dbPool)
	categoryService := categories.NewService(categoryRepo)
	categoryHandler := categories.NewHandler(categoryService)

	// --- Settings Module ---
	settingsRepo := settings.NewRepository(dbPool)
	settingsService := settings.NewService(settingsRepo)
	settingsHandler := settings.NewHandler(settingsService)

	// --- Invoices Module ---
	bookingRepo := bookings.NewRepository(dbPool)
	invoiceRepo := invoices.NewRepository(dbPool)
	invoiceService := invoices.NewService(invoiceRepo, bookingRepo, vendorRepo, userRepo, settingsService, invoiceRenderer)
	invoiceHandler := invoices.NewHandler(invoiceService)

	// --- Bookings Module ---
	bookingService := bookings.NewService(bookingRepo, vendorService, invoiceService, notifier)
	bookingHandler := bookings.NewHandler(bookingService)

	// 6. --- Startup Seeding ---
	if cfg.AdminPhone != "" {
		if err := userService.SeedAdmin(context.Background(), cfg.AdminPhone); err != nil {
			log.Fatalf("Failed to seed admin user: %v", err)
		}
	}
	if err := categoryService.SeedDefaults(context.Background()); err != nil {
		log.Fatalf("Failed to seed scrap categories: %v", err)
	}

	// 7. --- Initialize Router ---
	api.SetupRoutes(e,
		userHandler,
		vendorHandler,
		categoryHandler,
		bookingHandler,
		invoiceHandler,
		settingsHandler,
		userService,
		cfg.JWTSecret,
	)

	// 8. --- Start Server with graceful shutdown logic ---
	go func() {
		if err := e.Start(":" + cfg.ServerPort); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal("shutting down the server an error occurred:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Fatal("Server forced to shutdown:", err)
	}
	log.Println("Server exiting")
}
