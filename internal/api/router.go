package api

import (
	"net/http"

	"scrap-pickup/internal/api/middleware"
	"scrap-pickup/internal/models"
	"scrap-pickup/internal/modules/bookings"
	"scrap-pickup/internal/modules/categories"
	"scrap-pickup/internal/modules/invoices"
	"scrap-pickup/internal/modules/settings"
	"scrap-pickup/internal/modules/users"
	"scrap-pickup/internal/modules/vendors"

	"github.com/labstack/echo/v4"
)

// SetupRoutes sets up all the API endpoints for the application.
func SetupRoutes(
	e *echo.Echo,
	userHandler *users.Handler,
	vendorHandler *vendors.Handler,
	categoryHandler *categories.Handler,
	bookingHandler *bookings.Handler,
	invoiceHandler *invoices.Handler,
	settingsHandler *settings.Handler,
	resolver middleware.IdentityResolver,
	jwtSecret string,
) {
	// Token verification followed by phone-to-user resolution. Every
	// authenticated route runs both.
	authMiddleware := middleware.JWTAuth(jwtSecret)
	identityMiddleware := middleware.ResolveIdentity(resolver)
	adminRequired := middleware.AdminRequired()
	vendorRequired := middleware.RoleRequired(models.RoleVendor)

	// --- Public Routes ---
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "Welcome to Scrap Pickup!"})
	})
	e.GET("/categories", categoryHandler.ListCategories)

	// --- Profile Routes ---
	profileGroup := e.Group("/profile", authMiddleware, identityMiddleware)
	{
		profileGroup.GET("", userHandler.GetMyProfile)
		profileGroup.PUT("", userHandler.UpdateMyProfile)
	}

	// --- Booking Routes (customer-facing) ---
	bookingGroup := e.Group("/bookings", authMiddleware, identityMiddleware)
	{
		bookingGroup.POST("", bookingHandler.CreateBooking)
		bookingGroup.GET("", bookingHandler.ListMyBookings)
		bookingGroup.GET("/:bookingId", bookingHandler.GetBooking)
		bookingGroup.PUT("/:bookingId", bookingHandler.UpdateBooking)
		bookingGroup.DELETE("/:bookingId", bookingHandler.DeleteBooking)
		bookingGroup.PUT("/:bookingId/cancel", bookingHandler.CancelBooking)
		bookingGroup.PUT("/:bookingId/reject", bookingHandler.RejectBooking)
		bookingGroup.PATCH("/:bookingId/status", bookingHandler.UpdateStatus)
		bookingGroup.POST("/:bookingId/review", bookingHandler.CreateReview)
		bookingGroup.GET("/:bookingId/invoice", invoiceHandler.GetBookingInvoice)
		bookingGroup.GET("/:bookingId/invoice/download", invoiceHandler.DownloadBookingInvoice)
	}

	// --- Vendor Routes ---
	vendorGroup := e.Group("/vendor", authMiddleware, identityMiddleware, vendorRequired)
	{
		vendorGroup.GET("/profile", vendorHandler.GetMyVendorProfile)
		vendorGroup.GET("/bookings", bookingHandler.ListAssignedBookings)
		vendorGroup.PUT("/location", vendorHandler.UpdateLocation)
	}

	// --- Admin Routes ---
	adminGroup := e.Group("/admin", authMiddleware, identityMiddleware, adminRequired)
	{
		// User Management
		adminGroup.GET("/users", userHandler.ListUsers)
		adminGroup.PUT("/users/:userId/role", userHandler.UpdateUserRole)

		// Vendor Management
		adminGroup.POST("/vendors", vendorHandler.Onboard)
		adminGroup.GET("/vendors", vendorHandler.ListVendors)
		adminGroup.PUT("/vendors/:vendorId/active", vendorHandler.SetVendorActive)

		// Booking Management
		adminGroup.GET("/bookings", bookingHandler.ListAllBookings)
		adminGroup.PUT("/bookings/:bookingId/assign", bookingHandler.AssignVendor)

		// Category Management
		adminGroup.POST("/categories", categoryHandler.CreateCategory)
		adminGroup.PUT("/categories/:categoryId", categoryHandler.UpdateCategory)
		adminGroup.DELETE("/categories/:categoryId", categoryHandler.DeleteCategory)

		// Invoices & Settings
		adminGroup.GET("/invoices", invoiceHandler.ListInvoices)
		adminGroup.GET("/settings", settingsHandler.ListSettings)
		adminGroup.PUT("/settings", settingsHandler.UpsertSetting)
	}
}
