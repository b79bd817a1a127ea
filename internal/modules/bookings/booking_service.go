package bookings

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"scrap-pickup/internal/models"
	"scrap-pickup/pkg/utils"

	"github.com/shopspring/decimal"
)

// VendorDirectory is the slice of the vendors service the booking lifecycle
// needs: resolving profiles and keeping the in-progress pickup counter honest.
type VendorDirectory interface {
	GetByID(ctx context.Context, vendorID string) (*models.Vendor, error)
	GetMine(ctx context.Context, userID string) (*models.Vendor, error)
	AdjustActivePickups(ctx context.Context, vendorID string, delta int) error
}

// InvoiceGenerator is implemented by the invoices service. Generation is
// idempotent: an existing invoice for the booking is returned unchanged.
type InvoiceGenerator interface {
	GenerateForBooking(ctx context.Context, bookingID string) (*models.Invoice, error)
}

// Notifier is the best-effort notification sink. Failures are logged by the
// caller and never surface to the customer.
type Notifier interface {
	NotifyBookingCreated(ctx context.Context, booking *models.Booking) error
}

// ServiceInterface defines the contract for the booking lifecycle.
type ServiceInterface interface {
	CreateBooking(ctx context.Context, customerID string, req models.CreateBookingRequest) (*models.Booking, error)
	GetBooking(ctx context.Context, bookingID, userID, role string) (*models.Booking, error)
	ListMyBookings(ctx context.Context, customerID string, page, limit int) ([]*models.Booking, int, error)
	ListVendorBookings(ctx context.Context, userID string, page, limit int) ([]*models.Booking, int, error)
	ListAllBookings(ctx context.Context, page, limit int) ([]*models.Booking, int, error)

	AssignVendor(ctx context.Context, bookingID, vendorID string) (*models.Booking, error)
	CancelBooking(ctx context.Context, bookingID, customerID string) (*models.Booking, error)
	RejectBooking(ctx context.Context, bookingID, userID, role, reason string) (*models.Booking, error)
	UpdateStatus(ctx context.Context, bookingID, userID, role string, req models.UpdateStatusRequest) (*models.Booking, error)
	UpdateBooking(ctx context.Context, bookingID, customerID string, req models.UpdateBookingRequest) (*models.Booking, error)
	DeleteBooking(ctx context.Context, bookingID, userID, role string) error

	CreateReview(ctx context.Context, bookingID, customerID string, req models.CreateReviewRequest) (*models.Review, error)
}

// statusTransitions is the lifecycle graph. Anything not listed here is a
// conflict. Rejected and completed are terminal; cancellation reverts an
// assigned booking to pending rather than parking it.
var statusTransitions = map[string][]string{
	models.StatusPending:  {models.StatusAssigned},
	models.StatusAssigned: {models.StatusPending, models.StatusRejected, models.StatusCompleted},
}

func canTransition(from, to string) bool {
	for _, allowed := range statusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

type Service struct {
	repo     RepositoryInterface
	vendors  VendorDirectory
	invoices InvoiceGenerator
	notifier Notifier
}

func NewService(repo RepositoryInterface, vendors VendorDirectory, invoices InvoiceGenerator, notifier Notifier) *Service {
	return &Service{
		repo:     repo,
		vendors:  vendors,
		invoices: invoices,
		notifier: notifier,
	}
}

// lineValue derives a line item's value from rate and quantity, fixed to
// two decimal places. The caller-supplied value is never trusted.
func lineValue(rate, quantity float64) float64 {
	v, _ := decimal.NewFromFloat(rate).Mul(decimal.NewFromFloat(quantity)).Round(2).Float64()
	return v
}

// buildItems re-derives every item value and the booking total server-side.
func buildItems(reqItems []models.BookingItemRequest) ([]models.BookingItem, float64) {
	items := make([]models.BookingItem, 0, len(reqItems))
	total := decimal.Zero
	for _, it := range reqItems {
		value := lineValue(it.Rate, it.Quantity)
		items = append(items, models.BookingItem{
			CategoryID:   it.CategoryID,
			CategoryName: it.CategoryName,
			Quantity:     it.Quantity,
			Rate:         it.Rate,
			Value:        value,
		})
		total = total.Add(decimal.NewFromFloat(value))
	}
	totalValue, _ := total.Round(2).Float64()
	return items, totalValue
}

func (s *Service) CreateBooking(ctx context.Context, customerID string, req models.CreateBookingRequest) (*models.Booking, error) {
	items, totalValue := buildItems(req.Items)

	booking := &models.Booking{
		ReferenceID:   utils.NewBookingReference(),
		CustomerID:    customerID,
		CustomerName:  req.Name,
		CustomerPhone: req.Phone,
		Address:       req.Address,
		Pincode:       req.Pincode,
		District:      req.District,
		State:         req.State,
		TotalValue:    totalValue,
		Items:         items,
	}

	created, err := s.repo.Create(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("service.CreateBooking: %w", err)
	}

	// Fire-and-forget: the booking response never waits for, or fails on,
	// the notification sink.
	go func() {
		if err := s.notifier.NotifyBookingCreated(context.Background(), created); err != nil {
			log.Printf("failed to send booking notification for %s: %v", created.ReferenceID, err)
		}
	}()

	return created, nil
}

// GetBooking enforces the read rule: the owning customer, the assigned
// vendor, and admins may see a booking.
func (s *Service) GetBooking(ctx context.Context, bookingID, userID, role string) (*models.Booking, error) {
	booking, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("service.GetBooking: %w", err)
	}

	if err := s.authorizeView(ctx, booking, userID, role); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *Service) authorizeView(ctx context.Context, booking *models.Booking, userID, role string) error {
	switch {
	case role == models.RoleAdmin:
		return nil
	case booking.CustomerID == userID:
		return nil
	case role == models.RoleVendor:
		ok, err := s.isAssignedVendor(ctx, booking, userID)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
	}
	return models.ErrForbidden
}

// isAssignedVendor reports whether the calling user owns the vendor profile
// currently assigned to the booking.
func (s *Service) isAssignedVendor(ctx context.Context, booking *models.Booking, userID string) (bool, error) {
	if !booking.VendorID.Valid {
		return false, nil
	}
	vendor, err := s.vendors.GetMine(ctx, userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("service.isAssignedVendor: %w", err)
	}
	return vendor.ID == booking.VendorID.String, nil
}

func (s *Service) ListMyBookings(ctx context.Context, customerID string, page, limit int) ([]*models.Booking, int, error) {
	return s.repo.ListByCustomer(ctx, customerID, clampPage(page), clampLimit(limit))
}

func (s *Service) ListVendorBookings(ctx context.Context, userID string, page, limit int) ([]*models.Booking, int, error) {
	vendor, err := s.vendors.GetMine(ctx, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("service.ListVendorBookings: %w", err)
	}
	return s.repo.ListByVendor(ctx, vendor.ID, clampPage(page), clampLimit(limit))
}

func (s *Service) ListAllBookings(ctx context.Context, page, limit int) ([]*models.Booking, int, error) {
	return s.repo.ListAll(ctx, clampPage(page), clampLimit(limit))
}

func clampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func clampLimit(limit int) int {
	if limit < 1 || limit > 100 {
		return 20
	}
	return limit
}

// AssignVendor puts a vendor on a booking. Assignment is accepted from
// pending and, as a re-assignment, from assigned; a completed or rejected
// booking is closed to it.
func (s *Service) AssignVendor(ctx context.Context, bookingID, vendorID string) (*models.Booking, error) {
	booking, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("service.AssignVendor: %w", err)
	}

	if booking.Status != models.StatusPending && booking.Status != models.StatusAssigned {
		return nil, models.ErrBookingNotAssignable
	}

	vendor, err := s.vendors.GetByID(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("service.AssignVendor.GetVendor: %w", err)
	}
	if !vendor.IsActive {
		return nil, models.ErrVendorInactive
	}

	// Re-assignment releases the previous vendor's pickup slot.
	if booking.Status == models.StatusAssigned && booking.VendorID.Valid && booking.VendorID.String != vendorID {
		if err := s.vendors.AdjustActivePickups(ctx, booking.VendorID.String, -1); err != nil {
			return nil, fmt.Errorf("service.AssignVendor.ReleaseOld: %w", err)
		}
	}

	if err := s.repo.AssignVendor(ctx, bookingID, vendorID); err != nil {
		return nil, fmt.Errorf("service.AssignVendor.Assign: %w", err)
	}

	if !booking.VendorID.Valid || booking.VendorID.String != vendorID {
		if err := s.vendors.AdjustActivePickups(ctx, vendorID, 1); err != nil {
			log.Printf("failed to bump pickup count for vendor %s: %v", vendorID, err)
		}
	}

	return s.repo.FindByID(ctx, bookingID)
}

// CancelBooking lets the owning customer back out before pickup happens.
// The booking record survives: vendor cleared, status back to pending.
func (s *Service) CancelBooking(ctx context.Context, bookingID, customerID string) (*models.Booking, error) {
	booking, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("service.CancelBooking: %w", err)
	}
	if booking.CustomerID != customerID {
		return nil, models.ErrForbidden
	}
	if booking.Status != models.StatusAssigned {
		return nil, models.ErrBookingNotAssigned
	}

	if err := s.repo.ClearVendor(ctx, bookingID); err != nil {
		return nil, fmt.Errorf("service.CancelBooking.ClearVendor: %w", err)
	}

	if booking.VendorID.Valid {
		if err := s.vendors.AdjustActivePickups(ctx, booking.VendorID.String, -1); err != nil {
			log.Printf("failed to release pickup count for vendor %s: %v", booking.VendorID.String, err)
		}
	}

	return s.repo.FindByID(ctx, bookingID)
}

// RejectBooking is terminal and requires a reason. Allowed to the assigned
// vendor or an admin.
func (s *Service) RejectBooking(ctx context.Context, bookingID, userID, role, reason string) (*models.Booking, error) {
	if reason == "" {
		return nil, models.ErrRejectionReasonRequired
	}

	booking, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("service.RejectBooking: %w", err)
	}

	if err := s.authorizeLifecycleActor(ctx, booking, userID, role); err != nil {
		return nil, err
	}
	if !canTransition(booking.Status, models.StatusRejected) {
		return nil, models.ErrInvalidTransition
	}

	if err := s.repo.Reject(ctx, bookingID, reason); err != nil {
		return nil, fmt.Errorf("service.RejectBooking.Reject: %w", err)
	}

	if booking.VendorID.Valid {
		if err := s.vendors.AdjustActivePickups(ctx, booking.VendorID.String, -1); err != nil {
			log.Printf("failed to release pickup count for vendor %s: %v", booking.VendorID.String, err)
		}
	}

	return s.repo.FindByID(ctx, bookingID)
}

// authorizeLifecycleActor allows admins and the assigned vendor to move a
// booking along its lifecycle.
func (s *Service) authorizeLifecycleActor(ctx context.Context, booking *models.Booking, userID, role string) error {
	if role == models.RoleAdmin {
		return nil
	}
	if role == models.RoleVendor {
		ok, err := s.isAssignedVendor(ctx, booking, userID)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
	}
	return models.ErrForbidden
}

// UpdateStatus is the generic transition endpoint. Payment mode is mandatory
// precisely when the target status is completed, and rejected otherwise.
// Completion stamps completed_at and triggers idempotent invoice generation.
func (s *Service) UpdateStatus(ctx context.Context, bookingID, userID, role string, req models.UpdateStatusRequest) (*models.Booking, error) {
	booking, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("service.UpdateStatus: %w", err)
	}

	if err := s.authorizeLifecycleActor(ctx, booking, userID, role); err != nil {
		return nil, err
	}

	if req.Status == models.StatusCompleted && req.PaymentMode == "" {
		return nil, models.ErrPaymentModeRequired
	}
	if req.Status != models.StatusCompleted && req.PaymentMode != "" {
		return nil, models.ErrPaymentModeNotAllowed
	}

	if !canTransition(booking.Status, req.Status) {
		return nil, models.ErrInvalidTransition
	}

	switch req.Status {
	case models.StatusCompleted:
		if err := s.repo.Complete(ctx, bookingID, req.PaymentMode, time.Now()); err != nil {
			return nil, fmt.Errorf("service.UpdateStatus.Complete: %w", err)
		}
		if booking.VendorID.Valid {
			if err := s.vendors.AdjustActivePickups(ctx, booking.VendorID.String, -1); err != nil {
				log.Printf("failed to release pickup count for vendor %s: %v", booking.VendorID.String, err)
			}
		}
		// The status write is already committed; an invoice failure here is
		// recoverable through the explicit invoice endpoint, so log it
		// rather than failing the transition.
		if _, err := s.invoices.GenerateForBooking(ctx, bookingID); err != nil {
			log.Printf("failed to generate invoice for booking %s: %v", bookingID, err)
		}

	case models.StatusRejected:
		// The dedicated reject endpoint carries the mandatory reason.
		return nil, models.ErrRejectionReasonRequired

	case models.StatusPending:
		// Reverting an assigned booking is the admin's escape hatch; vendors
		// must reject with a reason instead.
		if role != models.RoleAdmin {
			return nil, models.ErrForbidden
		}
		if err := s.repo.ClearVendor(ctx, bookingID); err != nil {
			return nil, fmt.Errorf("service.UpdateStatus.ClearVendor: %w", err)
		}
		if booking.VendorID.Valid {
			if err := s.vendors.AdjustActivePickups(ctx, booking.VendorID.String, -1); err != nil {
				log.Printf("failed to release pickup count for vendor %s: %v", booking.VendorID.String, err)
			}
		}

	default:
		// assigned (needs a vendor id, use the assign endpoint) and
		// cancelled (customer cancel reverts to pending instead)
		return nil, models.ErrInvalidTransition
	}

	return s.repo.FindByID(ctx, bookingID)
}

// UpdateBooking replaces contact fields and the whole item list while the
// booking is still pending. Totals are recomputed, never trusted.
func (s *Service) UpdateBooking(ctx context.Context, bookingID, customerID string, req models.UpdateBookingRequest) (*models.Booking, error) {
	booking, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("service.UpdateBooking: %w", err)
	}
	if booking.CustomerID != customerID {
		return nil, models.ErrForbidden
	}
	if booking.Status != models.StatusPending {
		return nil, models.ErrBookingNotPending
	}

	items, totalValue := buildItems(req.Items)
	booking.CustomerName = req.Name
	booking.CustomerPhone = req.Phone
	booking.Address = req.Address
	booking.Pincode = req.Pincode
	booking.District = req.District
	booking.State = req.State
	booking.TotalValue = totalValue
	booking.Items = items

	updated, err := s.repo.Update(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("service.UpdateBooking.Update: %w", err)
	}
	return updated, nil
}

// DeleteBooking is allowed to the owning customer or an admin while the
// booking is pending. Items cascade with it.
func (s *Service) DeleteBooking(ctx context.Context, bookingID, userID, role string) error {
	booking, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("service.DeleteBooking: %w", err)
	}
	if role != models.RoleAdmin && booking.CustomerID != userID {
		return models.ErrForbidden
	}
	if booking.Status != models.StatusPending {
		return models.ErrBookingNotPending
	}

	if err := s.repo.Delete(ctx, bookingID); err != nil {
		return fmt.Errorf("service.DeleteBooking.Delete: %w", err)
	}
	return nil
}

// CreateReview records the one allowed review for a completed booking. The
// existence pre-check gives a friendly conflict; the unique constraint on
// reviews.booking_id is the real guarantee under concurrency.
func (s *Service) CreateReview(ctx context.Context, bookingID, customerID string, req models.CreateReviewRequest) (*models.Review, error) {
	booking, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("service.CreateReview: %w", err)
	}
	if booking.CustomerID != customerID {
		return nil, models.ErrForbidden
	}
	if booking.Status != models.StatusCompleted {
		return nil, models.ErrBookingNotCompleted
	}

	if _, err := s.repo.FindReviewByBookingID(ctx, bookingID); err == nil {
		return nil, models.ErrReviewExists
	} else if !errors.Is(err, models.ErrNotFound) {
		return nil, fmt.Errorf("service.CreateReview.FindReview: %w", err)
	}

	review := &models.Review{
		BookingID:  bookingID,
		CustomerID: customerID,
		VendorID:   booking.VendorID.String,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}
	created, err := s.repo.CreateReview(ctx, review)
	if err != nil {
		if errors.Is(err, models.ErrReviewExists) {
			return nil, models.ErrReviewExists
		}
		return nil, fmt.Errorf("service.CreateReview.Insert: %w", err)
	}
	return created, nil
}
