package bookings

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"
	"time"

	"scrap-pickup/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBookingRepo is an in-memory stand-in for the Postgres repository,
// mimicking its semantics closely enough for lifecycle tests.
type fakeBookingRepo struct {
	bookings map[string]*models.Booking
	reviews  map[string]*models.Review
	nextID   int

	// hideReviews makes the pre-insert lookup miss while the insert itself
	// still sees existing rows, like a review committed between the two.
	hideReviews bool
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{
		bookings: make(map[string]*models.Booking),
		reviews:  make(map[string]*models.Review),
	}
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *models.Booking) (*models.Booking, error) {
	f.nextID++
	b := *booking
	b.ID = fmt.Sprintf("booking-%d", f.nextID)
	b.Status = models.StatusPending
	b.CreatedAt = time.Now()
	f.bookings[b.ID] = &b
	return f.copyOf(b.ID), nil
}

func (f *fakeBookingRepo) FindByID(_ context.Context, bookingID string) (*models.Booking, error) {
	if _, ok := f.bookings[bookingID]; !ok {
		return nil, models.ErrNotFound
	}
	return f.copyOf(bookingID), nil
}

func (f *fakeBookingRepo) copyOf(bookingID string) *models.Booking {
	b := *f.bookings[bookingID]
	b.Items = append([]models.BookingItem(nil), f.bookings[bookingID].Items...)
	return &b
}

func (f *fakeBookingRepo) ListByCustomer(_ context.Context, customerID string, _, _ int) ([]*models.Booking, int, error) {
	var out []*models.Booking
	for id, b := range f.bookings {
		if b.CustomerID == customerID {
			out = append(out, f.copyOf(id))
		}
	}
	return out, len(out), nil
}

func (f *fakeBookingRepo) ListByVendor(_ context.Context, vendorID string, _, _ int) ([]*models.Booking, int, error) {
	var out []*models.Booking
	for id, b := range f.bookings {
		if b.VendorID.Valid && b.VendorID.String == vendorID {
			out = append(out, f.copyOf(id))
		}
	}
	return out, len(out), nil
}

func (f *fakeBookingRepo) ListAll(_ context.Context, _, _ int) ([]*models.Booking, int, error) {
	var out []*models.Booking
	for id := range f.bookings {
		out = append(out, f.copyOf(id))
	}
	return out, len(out), nil
}

func (f *fakeBookingRepo) AssignVendor(_ context.Context, bookingID, vendorID string) error {
	b, ok := f.bookings[bookingID]
	if !ok {
		return models.ErrNotFound
	}
	b.Status = models.StatusAssigned
	b.VendorID = sql.NullString{String: vendorID, Valid: true}
	b.VendorLatitude = sql.NullFloat64{}
	b.VendorLongitude = sql.NullFloat64{}
	return nil
}

func (f *fakeBookingRepo) ClearVendor(_ context.Context, bookingID string) error {
	b, ok := f.bookings[bookingID]
	if !ok {
		return models.ErrNotFound
	}
	b.Status = models.StatusPending
	b.VendorID = sql.NullString{}
	b.VendorLatitude = sql.NullFloat64{}
	b.VendorLongitude = sql.NullFloat64{}
	return nil
}

func (f *fakeBookingRepo) Reject(_ context.Context, bookingID, reason string) error {
	b, ok := f.bookings[bookingID]
	if !ok {
		return models.ErrNotFound
	}
	b.Status = models.StatusRejected
	b.RejectionReason = sql.NullString{String: reason, Valid: true}
	return nil
}

func (f *fakeBookingRepo) Complete(_ context.Context, bookingID, paymentMode string, completedAt time.Time) error {
	b, ok := f.bookings[bookingID]
	if !ok {
		return models.ErrNotFound
	}
	b.Status = models.StatusCompleted
	b.PaymentMode = sql.NullString{String: paymentMode, Valid: true}
	b.CompletedAt = sql.NullTime{Time: completedAt, Valid: true}
	return nil
}

func (f *fakeBookingRepo) Update(_ context.Context, booking *models.Booking) (*models.Booking, error) {
	if _, ok := f.bookings[booking.ID]; !ok {
		return nil, models.ErrNotFound
	}
	b := *booking
	f.bookings[b.ID] = &b
	return f.copyOf(b.ID), nil
}

func (f *fakeBookingRepo) Delete(_ context.Context, bookingID string) error {
	if _, ok := f.bookings[bookingID]; !ok {
		return models.ErrNotFound
	}
	delete(f.bookings, bookingID)
	return nil
}

func (f *fakeBookingRepo) CreateReview(_ context.Context, review *models.Review) (*models.Review, error) {
	if _, ok := f.reviews[review.BookingID]; ok {
		return nil, models.ErrReviewExists
	}
	r := *review
	r.ID = "review-" + review.BookingID
	r.CreatedAt = time.Now()
	f.reviews[r.BookingID] = &r
	return &r, nil
}

func (f *fakeBookingRepo) FindReviewByBookingID(_ context.Context, bookingID string) (*models.Review, error) {
	r, ok := f.reviews[bookingID]
	if !ok || f.hideReviews {
		return nil, models.ErrNotFound
	}
	return r, nil
}

// fakeVendorDirectory tracks the active pickup counter per vendor.
type fakeVendorDirectory struct {
	vendors map[string]*models.Vendor
	pickups map[string]int
}

func newFakeVendorDirectory() *fakeVendorDirectory {
	return &fakeVendorDirectory{
		vendors: make(map[string]*models.Vendor),
		pickups: make(map[string]int),
	}
}

func (f *fakeVendorDirectory) add(id, userID string, active bool) {
	f.vendors[id] = &models.Vendor{ID: id, UserID: userID, IsActive: active}
}

func (f *fakeVendorDirectory) GetByID(_ context.Context, vendorID string) (*models.Vendor, error) {
	v, ok := f.vendors[vendorID]
	if !ok {
		return nil, models.ErrNotFound
	}
	return v, nil
}

func (f *fakeVendorDirectory) GetMine(_ context.Context, userID string) (*models.Vendor, error) {
	for _, v := range f.vendors {
		if v.UserID == userID {
			return v, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeVendorDirectory) AdjustActivePickups(_ context.Context, vendorID string, delta int) error {
	f.pickups[vendorID] += delta
	return nil
}

type fakeInvoiceGenerator struct {
	calls []string
	err   error
}

func (f *fakeInvoiceGenerator) GenerateForBooking(_ context.Context, bookingID string) (*models.Invoice, error) {
	f.calls = append(f.calls, bookingID)
	if f.err != nil {
		return nil, f.err
	}
	return &models.Invoice{BookingID: bookingID}, nil
}

type fakeNotifier struct {
	notified chan string
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{notified: make(chan string, 1)}
}

func (f *fakeNotifier) NotifyBookingCreated(_ context.Context, booking *models.Booking) error {
	f.notified <- booking.ReferenceID
	return nil
}

func newTestService() (*Service, *fakeBookingRepo, *fakeVendorDirectory, *fakeInvoiceGenerator, *fakeNotifier) {
	repo := newFakeBookingRepo()
	vendors := newFakeVendorDirectory()
	invoices := &fakeInvoiceGenerator{}
	notifier := newFakeNotifier()
	return NewService(repo, vendors, invoices, notifier), repo, vendors, invoices, notifier
}

func sampleCreateRequest() models.CreateBookingRequest {
	return models.CreateBookingRequest{
		Name:     "Asha Kumari",
		Phone:    "9876543210",
		Address:  "12 MG Road",
		Pincode:  "560001",
		District: "Bengaluru Urban",
		State:    "Karnataka",
		Items: []models.BookingItemRequest{
			{CategoryID: "cat-paper", CategoryName: "Newspaper", Quantity: 10, Rate: 14},
			{CategoryID: "cat-metal", CategoryName: "Iron", Quantity: 5, Rate: 27},
		},
	}
}

func TestCreateBookingRecomputesTotals(t *testing.T) {
	svc, _, _, _, notifier := newTestService()

	req := sampleCreateRequest()
	// Caller-supplied values must be ignored.
	req.TotalValue = 99999
	req.Items[0].Value = 1

	booking, err := svc.CreateBooking(context.Background(), "cust-1", req)
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, booking.Status)
	assert.True(t, strings.HasPrefix(booking.ReferenceID, "SCRP-"))
	require.Len(t, booking.Items, 2)
	assert.Equal(t, 140.0, booking.Items[0].Value)
	assert.Equal(t, 135.0, booking.Items[1].Value)
	assert.Equal(t, 275.0, booking.TotalValue)

	select {
	case ref := <-notifier.notified:
		assert.Equal(t, booking.ReferenceID, ref)
	case <-time.After(time.Second):
		t.Fatal("notification was never dispatched")
	}
}

func TestGetBookingAuthorization(t *testing.T) {
	svc, _, vendors, _, _ := newTestService()
	vendors.add("vendor-1", "vendor-user-1", true)
	vendors.add("vendor-2", "vendor-user-2", true)

	booking, err := svc.CreateBooking(context.Background(), "cust-1", sampleCreateRequest())
	require.NoError(t, err)
	_, err = svc.AssignVendor(context.Background(), booking.ID, "vendor-1")
	require.NoError(t, err)

	_, err = svc.GetBooking(context.Background(), booking.ID, "cust-1", models.RoleCustomer)
	assert.NoError(t, err, "owner can read")

	_, err = svc.GetBooking(context.Background(), booking.ID, "admin-1", models.RoleAdmin)
	assert.NoError(t, err, "admin can read")

	_, err = svc.GetBooking(context.Background(), booking.ID, "vendor-user-1", models.RoleVendor)
	assert.NoError(t, err, "assigned vendor can read")

	_, err = svc.GetBooking(context.Background(), booking.ID, "vendor-user-2", models.RoleVendor)
	assert.ErrorIs(t, err, models.ErrForbidden, "other vendors cannot read")

	_, err = svc.GetBooking(context.Background(), booking.ID, "cust-2", models.RoleCustomer)
	assert.ErrorIs(t, err, models.ErrForbidden, "other customers cannot read")
}

func TestAssignVendor(t *testing.T) {
	svc, repo, vendors, _, _ := newTestService()
	vendors.add("vendor-1", "vendor-user-1", true)
	vendors.add("vendor-2", "vendor-user-2", true)
	vendors.add("vendor-idle", "vendor-user-3", false)

	booking, err := svc.CreateBooking(context.Background(), "cust-1", sampleCreateRequest())
	require.NoError(t, err)

	_, err = svc.AssignVendor(context.Background(), booking.ID, "vendor-idle")
	assert.ErrorIs(t, err, models.ErrVendorInactive)

	updated, err := svc.AssignVendor(context.Background(), booking.ID, "vendor-1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusAssigned, updated.Status)
	assert.Equal(t, "vendor-1", updated.VendorID.String)
	assert.Equal(t, 1, vendors.pickups["vendor-1"])

	// Re-assignment releases the first vendor's slot.
	updated, err = svc.AssignVendor(context.Background(), booking.ID, "vendor-2")
	require.NoError(t, err)
	assert.Equal(t, "vendor-2", updated.VendorID.String)
	assert.Equal(t, 0, vendors.pickups["vendor-1"])
	assert.Equal(t, 1, vendors.pickups["vendor-2"])

	// Closed statuses refuse assignment.
	require.NoError(t, repo.Complete(context.Background(), booking.ID, models.PaymentCash, time.Now()))
	_, err = svc.AssignVendor(context.Background(), booking.ID, "vendor-1")
	assert.ErrorIs(t, err, models.ErrBookingNotAssignable)
}

func TestCancelBookingRevertsToPending(t *testing.T) {
	svc, _, vendors, _, _ := newTestService()
	vendors.add("vendor-1", "vendor-user-1", true)

	booking, err := svc.CreateBooking(context.Background(), "cust-1", sampleCreateRequest())
	require.NoError(t, err)

	// Cancel on a pending booking is a conflict; there is nothing to back out of.
	_, err = svc.CancelBooking(context.Background(), booking.ID, "cust-1")
	assert.ErrorIs(t, err, models.ErrBookingNotAssigned)

	_, err = svc.AssignVendor(context.Background(), booking.ID, "vendor-1")
	require.NoError(t, err)

	_, err = svc.CancelBooking(context.Background(), booking.ID, "cust-2")
	assert.ErrorIs(t, err, models.ErrForbidden)

	cancelled, err := svc.CancelBooking(context.Background(), booking.ID, "cust-1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, cancelled.Status)
	assert.False(t, cancelled.VendorID.Valid, "vendor link cleared")
	assert.Equal(t, 0, vendors.pickups["vendor-1"], "pickup slot released")
}

func TestRejectBooking(t *testing.T) {
	svc, _, vendors, _, _ := newTestService()
	vendors.add("vendor-1", "vendor-user-1", true)
	vendors.add("vendor-2", "vendor-user-2", true)

	booking, err := svc.CreateBooking(context.Background(), "cust-1", sampleCreateRequest())
	require.NoError(t, err)

	// Pending bookings cannot be rejected, only assigned ones.
	_, err = svc.RejectBooking(context.Background(), booking.ID, "admin-1", models.RoleAdmin, "too far")
	assert.ErrorIs(t, err, models.ErrInvalidTransition)

	_, err = svc.AssignVendor(context.Background(), booking.ID, "vendor-1")
	require.NoError(t, err)

	_, err = svc.RejectBooking(context.Background(), booking.ID, "vendor-user-1", models.RoleVendor, "")
	assert.ErrorIs(t, err, models.ErrRejectionReasonRequired)

	_, err = svc.RejectBooking(context.Background(), booking.ID, "vendor-user-2", models.RoleVendor, "too far")
	assert.ErrorIs(t, err, models.ErrForbidden, "only the assigned vendor may reject")

	_, err = svc.RejectBooking(context.Background(), booking.ID, "cust-1", models.RoleCustomer, "changed my mind")
	assert.ErrorIs(t, err, models.ErrForbidden, "customers cancel, they do not reject")

	rejected, err := svc.RejectBooking(context.Background(), booking.ID, "vendor-user-1", models.RoleVendor, "address unreachable")
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, rejected.Status)
	assert.Equal(t, "address unreachable", rejected.RejectionReason.String)
	assert.Equal(t, 0, vendors.pickups["vendor-1"])

	// Terminal: no further transitions.
	_, err = svc.UpdateStatus(context.Background(), booking.ID, "admin-1", models.RoleAdmin,
		models.UpdateStatusRequest{Status: models.StatusCompleted, PaymentMode: models.PaymentCash})
	assert.ErrorIs(t, err, models.ErrInvalidTransition)
}

func TestUpdateStatusCompletion(t *testing.T) {
	svc, _, vendors, invoices, _ := newTestService()
	vendors.add("vendor-1", "vendor-user-1", true)

	booking, err := svc.CreateBooking(context.Background(), "cust-1", sampleCreateRequest())
	require.NoError(t, err)

	// Completing straight from pending skips the lifecycle.
	_, err = svc.UpdateStatus(context.Background(), booking.ID, "admin-1", models.RoleAdmin,
		models.UpdateStatusRequest{Status: models.StatusCompleted, PaymentMode: models.PaymentCash})
	assert.ErrorIs(t, err, models.ErrInvalidTransition)

	_, err = svc.AssignVendor(context.Background(), booking.ID, "vendor-1")
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), booking.ID, "vendor-user-1", models.RoleVendor,
		models.UpdateStatusRequest{Status: models.StatusCompleted})
	assert.ErrorIs(t, err, models.ErrPaymentModeRequired)

	_, err = svc.UpdateStatus(context.Background(), booking.ID, "vendor-user-1", models.RoleVendor,
		models.UpdateStatusRequest{Status: models.StatusPending, PaymentMode: models.PaymentUPI})
	assert.ErrorIs(t, err, models.ErrPaymentModeNotAllowed)

	completed, err := svc.UpdateStatus(context.Background(), booking.ID, "vendor-user-1", models.RoleVendor,
		models.UpdateStatusRequest{Status: models.StatusCompleted, PaymentMode: models.PaymentUPI})
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, completed.Status)
	assert.Equal(t, models.PaymentUPI, completed.PaymentMode.String)
	assert.True(t, completed.CompletedAt.Valid)
	assert.Equal(t, 0, vendors.pickups["vendor-1"], "pickup slot released on completion")
	assert.Equal(t, []string{booking.ID}, invoices.calls, "completion triggers invoice generation")
}

func TestUpdateStatusCompletionSurvivesInvoiceFailure(t *testing.T) {
	svc, _, vendors, invoices, _ := newTestService()
	vendors.add("vendor-1", "vendor-user-1", true)
	invoices.err = fmt.Errorf("settings table unavailable")

	booking, err := svc.CreateBooking(context.Background(), "cust-1", sampleCreateRequest())
	require.NoError(t, err)
	_, err = svc.AssignVendor(context.Background(), booking.ID, "vendor-1")
	require.NoError(t, err)

	completed, err := svc.UpdateStatus(context.Background(), booking.ID, "admin-1", models.RoleAdmin,
		models.UpdateStatusRequest{Status: models.StatusCompleted, PaymentMode: models.PaymentCash})
	require.NoError(t, err, "invoice failure must not roll back completion")
	assert.Equal(t, models.StatusCompleted, completed.Status)
}

func TestUpdateStatusUnassign(t *testing.T) {
	svc, _, vendors, _, _ := newTestService()
	vendors.add("vendor-1", "vendor-user-1", true)

	booking, err := svc.CreateBooking(context.Background(), "cust-1", sampleCreateRequest())
	require.NoError(t, err)
	_, err = svc.AssignVendor(context.Background(), booking.ID, "vendor-1")
	require.NoError(t, err)

	// Vendors use the reject endpoint; reverting to pending is admin-only.
	_, err = svc.UpdateStatus(context.Background(), booking.ID, "vendor-user-1", models.RoleVendor,
		models.UpdateStatusRequest{Status: models.StatusPending})
	assert.ErrorIs(t, err, models.ErrForbidden)

	reverted, err := svc.UpdateStatus(context.Background(), booking.ID, "admin-1", models.RoleAdmin,
		models.UpdateStatusRequest{Status: models.StatusPending})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, reverted.Status)
	assert.False(t, reverted.VendorID.Valid)
	assert.Equal(t, 0, vendors.pickups["vendor-1"])
}

func TestUpdateStatusRejectedNeedsDedicatedEndpoint(t *testing.T) {
	svc, _, vendors, _, _ := newTestService()
	vendors.add("vendor-1", "vendor-user-1", true)

	booking, err := svc.CreateBooking(context.Background(), "cust-1", sampleCreateRequest())
	require.NoError(t, err)
	_, err = svc.AssignVendor(context.Background(), booking.ID, "vendor-1")
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), booking.ID, "admin-1", models.RoleAdmin,
		models.UpdateStatusRequest{Status: models.StatusRejected})
	assert.ErrorIs(t, err, models.ErrRejectionReasonRequired)
}

func TestUpdateBookingOnlyWhilePending(t *testing.T) {
	svc, _, vendors, _, _ := newTestService()
	vendors.add("vendor-1", "vendor-user-1", true)

	booking, err := svc.CreateBooking(context.Background(), "cust-1", sampleCreateRequest())
	require.NoError(t, err)

	edit := sampleCreateRequest()
	edit.Items = []models.BookingItemRequest{
		{CategoryID: "cat-paper", CategoryName: "Newspaper", Quantity: 2.5, Rate: 14},
	}

	_, err = svc.UpdateBooking(context.Background(), booking.ID, "cust-2", edit)
	assert.ErrorIs(t, err, models.ErrForbidden)

	updated, err := svc.UpdateBooking(context.Background(), booking.ID, "cust-1", edit)
	require.NoError(t, err)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, 35.0, updated.TotalValue)

	_, err = svc.AssignVendor(context.Background(), booking.ID, "vendor-1")
	require.NoError(t, err)

	_, err = svc.UpdateBooking(context.Background(), booking.ID, "cust-1", edit)
	assert.ErrorIs(t, err, models.ErrBookingNotPending)
}

func TestDeleteBookingOnlyWhilePending(t *testing.T) {
	svc, _, vendors, _, _ := newTestService()
	vendors.add("vendor-1", "vendor-user-1", true)

	booking, err := svc.CreateBooking(context.Background(), "cust-1", sampleCreateRequest())
	require.NoError(t, err)

	err = svc.DeleteBooking(context.Background(), booking.ID, "cust-2", models.RoleCustomer)
	assert.ErrorIs(t, err, models.ErrForbidden)

	_, err = svc.AssignVendor(context.Background(), booking.ID, "vendor-1")
	require.NoError(t, err)
	err = svc.DeleteBooking(context.Background(), booking.ID, "cust-1", models.RoleCustomer)
	assert.ErrorIs(t, err, models.ErrBookingNotPending)

	_, err = svc.CancelBooking(context.Background(), booking.ID, "cust-1")
	require.NoError(t, err)
	err = svc.DeleteBooking(context.Background(), booking.ID, "cust-1", models.RoleCustomer)
	require.NoError(t, err)

	_, err = svc.GetBooking(context.Background(), booking.ID, "cust-1", models.RoleCustomer)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestCreateReview(t *testing.T) {
	svc, repo, vendors, _, _ := newTestService()
	vendors.add("vendor-1", "vendor-user-1", true)

	booking, err := svc.CreateBooking(context.Background(), "cust-1", sampleCreateRequest())
	require.NoError(t, err)

	req := models.CreateReviewRequest{Rating: 5, Comment: "prompt pickup"}

	_, err = svc.CreateReview(context.Background(), booking.ID, "cust-1", req)
	assert.ErrorIs(t, err, models.ErrBookingNotCompleted)

	_, err = svc.AssignVendor(context.Background(), booking.ID, "vendor-1")
	require.NoError(t, err)
	require.NoError(t, repo.Complete(context.Background(), booking.ID, models.PaymentCash, time.Now()))

	_, err = svc.CreateReview(context.Background(), booking.ID, "cust-2", req)
	assert.ErrorIs(t, err, models.ErrForbidden)

	review, err := svc.CreateReview(context.Background(), booking.ID, "cust-1", req)
	require.NoError(t, err)
	assert.Equal(t, "vendor-1", review.VendorID)
	assert.Equal(t, 5, review.Rating)

	_, err = svc.CreateReview(context.Background(), booking.ID, "cust-1", req)
	assert.ErrorIs(t, err, models.ErrReviewExists)
}

// A review committed between the existence pre-check and the insert surfaces
// as a unique violation from the store. That must map onto ErrReviewExists,
// not an internal error.
func TestCreateReviewDuplicateRaceConflicts(t *testing.T) {
	svc, repo, vendors, _, _ := newTestService()
	vendors.add("vendor-1", "vendor-user-1", true)

	booking, err := svc.CreateBooking(context.Background(), "cust-1", sampleCreateRequest())
	require.NoError(t, err)
	_, err = svc.AssignVendor(context.Background(), booking.ID, "vendor-1")
	require.NoError(t, err)
	require.NoError(t, repo.Complete(context.Background(), booking.ID, models.PaymentCash, time.Now()))

	req := models.CreateReviewRequest{Rating: 4, Comment: "on time"}
	_, err = svc.CreateReview(context.Background(), booking.ID, "cust-1", req)
	require.NoError(t, err)

	repo.hideReviews = true
	_, err = svc.CreateReview(context.Background(), booking.ID, "cust-1", req)
	assert.ErrorIs(t, err, models.ErrReviewExists)
}

func TestStatusTransitionGraph(t *testing.T) {
	cases := []struct {
		from, to string
		allowed  bool
	}{
		{models.StatusPending, models.StatusAssigned, true},
		{models.StatusPending, models.StatusCompleted, false},
		{models.StatusPending, models.StatusRejected, false},
		{models.StatusAssigned, models.StatusPending, true},
		{models.StatusAssigned, models.StatusRejected, true},
		{models.StatusAssigned, models.StatusCompleted, true},
		{models.StatusCompleted, models.StatusAssigned, false},
		{models.StatusCompleted, models.StatusPending, false},
		{models.StatusRejected, models.StatusAssigned, false},
		{models.StatusRejected, models.StatusPending, false},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.allowed, canTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}
