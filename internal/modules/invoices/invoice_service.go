package invoices

import (
	"context"
	"errors"
	"fmt"

	"scrap-pickup/internal/models"
	"scrap-pickup/pkg/utils"

	"github.com/shopspring/decimal"
)

// BookingSource resolves bookings without importing the bookings package;
// the bookings repository satisfies it.
type BookingSource interface {
	FindByID(ctx context.Context, bookingID string) (*models.Booking, error)
}

// VendorSource resolves vendor profiles; the vendors repository satisfies it.
type VendorSource interface {
	FindByID(ctx context.Context, vendorID string) (*models.Vendor, error)
	FindByUserID(ctx context.Context, userID string) (*models.Vendor, error)
}

// UserSource resolves users for the vendor identity snapshot.
type UserSource interface {
	FindByID(ctx context.Context, userID string) (*models.User, error)
}

// FeeSource exposes the platform fee percent tunable; the settings service
// satisfies it, defaulting to 0 when the key is unset.
type FeeSource interface {
	PlatformFeePercent(ctx context.Context) (float64, error)
}

// Renderer turns an invoice plus its booking into a downloadable byte
// stream. Purely presentational.
type Renderer interface {
	RenderInvoice(invoice *models.Invoice, booking *models.Booking) ([]byte, error)
}

// ServiceInterface defines the contract for invoice derivation and retrieval.
type ServiceInterface interface {
	GenerateForBooking(ctx context.Context, bookingID string) (*models.Invoice, error)
	GetForBooking(ctx context.Context, bookingID, userID, role string) (*models.Invoice, error)
	DownloadForBooking(ctx context.Context, bookingID, userID, role string) ([]byte, string, error)
	ListInvoices(ctx context.Context, page, limit int) ([]*models.Invoice, int, error)
}

type Service struct {
	repo     RepositoryInterface
	bookings BookingSource
	vendors  VendorSource
	userRepo UserSource
	fees     FeeSource
	renderer Renderer
}

func NewService(repo RepositoryInterface, bookings BookingSource, vendors VendorSource, userRepo UserSource, fees FeeSource, renderer Renderer) *Service {
	return &Service{
		repo:     repo,
		bookings: bookings,
		vendors:  vendors,
		userRepo: userRepo,
		fees:     fees,
		renderer: renderer,
	}
}

// GenerateForBooking derives and persists the booking's invoice. Idempotent:
// an existing invoice is returned unchanged, with the same id and values.
func (s *Service) GenerateForBooking(ctx context.Context, bookingID string) (*models.Invoice, error) {
	existing, err := s.repo.FindByBookingID(ctx, bookingID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		return nil, fmt.Errorf("service.GenerateInvoice.FindExisting: %w", err)
	}

	booking, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("service.GenerateInvoice.FindBooking: %w", err)
	}
	if !booking.VendorID.Valid {
		return nil, models.ErrInvoiceVendorMissing
	}
	if booking.Status != models.StatusCompleted {
		return nil, models.ErrBookingNotCompleted
	}

	vendor, err := s.vendors.FindByID(ctx, booking.VendorID.String)
	if err != nil {
		return nil, fmt.Errorf("service.GenerateInvoice.FindVendor: %w", err)
	}
	vendorUser, err := s.userRepo.FindByID(ctx, vendor.UserID)
	if err != nil {
		return nil, fmt.Errorf("service.GenerateInvoice.FindVendorUser: %w", err)
	}

	percent, err := s.fees.PlatformFeePercent(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.GenerateInvoice.FeePercent: %w", err)
	}

	total := decimal.NewFromFloat(booking.TotalValue)
	platformFee := total.Mul(decimal.NewFromFloat(percent)).Div(decimal.NewFromInt(100)).Round(2)
	netAmount := total.Sub(platformFee).Round(2)

	invoice := &models.Invoice{
		InvoiceNumber: utils.InvoiceNumberFromReference(booking.ReferenceID),
		BookingID:     booking.ID,
		CustomerName:  booking.CustomerName,
		CustomerPhone: booking.CustomerPhone,
		VendorName:    vendorUser.Name,
		VendorPhone:   vendorUser.Phone,
		TotalValue:    total.StringFixed(2),
		PlatformFee:   platformFee.StringFixed(2),
		NetAmount:     netAmount.StringFixed(2),
		PaymentMode:   booking.PaymentMode.String,
	}

	created, err := s.repo.Create(ctx, invoice)
	if err != nil {
		// Concurrent completion calls can race past the existence check;
		// the unique booking_id constraint decides, and the winner's row
		// is the invoice.
		if winner, findErr := s.repo.FindByBookingID(ctx, bookingID); findErr == nil {
			return winner, nil
		}
		return nil, fmt.Errorf("service.GenerateInvoice.Create: %w", err)
	}
	return created, nil
}

// GetForBooking returns (generating on demand) the invoice for a booking
// the caller is allowed to see: the owning customer, the assigned vendor,
// or an admin.
func (s *Service) GetForBooking(ctx context.Context, bookingID, userID, role string) (*models.Invoice, error) {
	booking, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("service.GetInvoice.FindBooking: %w", err)
	}
	if err := s.authorizeView(ctx, booking, userID, role); err != nil {
		return nil, err
	}

	return s.GenerateForBooking(ctx, bookingID)
}

func (s *Service) authorizeView(ctx context.Context, booking *models.Booking, userID, role string) error {
	switch {
	case role == models.RoleAdmin:
		return nil
	case booking.CustomerID == userID:
		return nil
	case role == models.RoleVendor && booking.VendorID.Valid:
		vendor, err := s.vendors.FindByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				return models.ErrForbidden
			}
			return fmt.Errorf("service.authorizeInvoiceView: %w", err)
		}
		if vendor.ID == booking.VendorID.String {
			return nil
		}
	}
	return models.ErrForbidden
}

// DownloadForBooking renders the invoice as a byte stream plus a suggested
// filename.
func (s *Service) DownloadForBooking(ctx context.Context, bookingID, userID, role string) ([]byte, string, error) {
	invoice, err := s.GetForBooking(ctx, bookingID, userID, role)
	if err != nil {
		return nil, "", err
	}

	booking, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, "", fmt.Errorf("service.DownloadInvoice.FindBooking: %w", err)
	}

	data, err := s.renderer.RenderInvoice(invoice, booking)
	if err != nil {
		return nil, "", fmt.Errorf("service.DownloadInvoice.Render: %w", err)
	}
	return data, invoice.InvoiceNumber + ".pdf", nil
}

func (s *Service) ListInvoices(ctx context.Context, page, limit int) ([]*models.Invoice, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.repo.ListAll(ctx, page, limit)
}
