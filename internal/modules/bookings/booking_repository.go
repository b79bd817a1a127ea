package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"scrap-pickup/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RepositoryInterface defines the contract for booking storage, including
// line items and the one-per-booking reviews.
type RepositoryInterface interface {
	Create(ctx context.Context, booking *models.Booking) (*models.Booking, error)
	FindByID(ctx context.Context, bookingID string) (*models.Booking, error)
	ListByCustomer(ctx context.Context, customerID string, page, limit int) ([]*models.Booking, int, error)
	ListByVendor(ctx context.Context, vendorID string, page, limit int) ([]*models.Booking, int, error)
	ListAll(ctx context.Context, page, limit int) ([]*models.Booking, int, error)

	AssignVendor(ctx context.Context, bookingID, vendorID string) error
	ClearVendor(ctx context.Context, bookingID string) error
	Reject(ctx context.Context, bookingID, reason string) error
	Complete(ctx context.Context, bookingID, paymentMode string, completedAt time.Time) error
	Update(ctx context.Context, booking *models.Booking) (*models.Booking, error)
	Delete(ctx context.Context, bookingID string) error

	CreateReview(ctx context.Context, review *models.Review) (*models.Review, error)
	FindReviewByBookingID(ctx context.Context, bookingID string) (*models.Review, error)
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) RepositoryInterface {
	return &Repository{db: db}
}

const bookingColumns = `id, reference_id, customer_id, customer_name, customer_phone, address, pincode, district, state, total_value, payment_mode, status, rejection_reason, vendor_id, vendor_latitude, vendor_longitude, created_at, completed_at`

func scanBooking(row pgx.Row) (*models.Booking, error) {
	b := &models.Booking{}
	err := row.Scan(
		&b.ID, &b.ReferenceID, &b.CustomerID, &b.CustomerName, &b.CustomerPhone,
		&b.Address, &b.Pincode, &b.District, &b.State, &b.TotalValue,
		&b.PaymentMode, &b.Status, &b.RejectionReason, &b.VendorID,
		&b.VendorLatitude, &b.VendorLongitude, &b.CreatedAt, &b.CompletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan booking: %w", err)
	}
	return b, nil
}

// Create inserts the booking and its line items in one transaction.
func (r *Repository) Create(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("repository.CreateBooking.Begin: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO bookings (reference_id, customer_id, customer_name, customer_phone, address, pincode, district, state, total_value, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 'pending')
		RETURNING ` + bookingColumns

	created, err := scanBooking(tx.QueryRow(ctx, query,
		booking.ReferenceID, booking.CustomerID, booking.CustomerName, booking.CustomerPhone,
		booking.Address, booking.Pincode, booking.District, booking.State, booking.TotalValue,
	))
	if err != nil {
		return nil, fmt.Errorf("repository.CreateBooking: %w", err)
	}

	created.Items, err = insertItems(ctx, tx, created.ID, booking.Items)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("repository.CreateBooking.Commit: %w", err)
	}
	return created, nil
}

func insertItems(ctx context.Context, tx pgx.Tx, bookingID string, items []models.BookingItem) ([]models.BookingItem, error) {
	query := `
		INSERT INTO booking_items (booking_id, category_id, category_name, quantity, rate, value)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	inserted := make([]models.BookingItem, 0, len(items))
	for _, item := range items {
		item.BookingID = bookingID
		err := tx.QueryRow(ctx, query,
			bookingID, item.CategoryID, item.CategoryName, item.Quantity, item.Rate, item.Value,
		).Scan(&item.ID)
		if err != nil {
			return nil, fmt.Errorf("repository.InsertBookingItem: %w", err)
		}
		inserted = append(inserted, item)
	}
	return inserted, nil
}

func (r *Repository) FindByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	booking, err := scanBooking(r.db.QueryRow(ctx, query, bookingID))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("repository.FindBookingByID: %w", err)
	}

	itemsQuery := `
		SELECT id, booking_id, category_id, category_name, quantity, rate, value
		FROM booking_items
		WHERE booking_id = $1
		ORDER BY id`
	rows, err := r.db.Query(ctx, itemsQuery, bookingID)
	if err != nil {
		return nil, fmt.Errorf("repository.FindBookingItems: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.BookingItem
		if err := rows.Scan(&item.ID, &item.BookingID, &item.CategoryID, &item.CategoryName, &item.Quantity, &item.Rate, &item.Value); err != nil {
			return nil, fmt.Errorf("repository.ScanBookingItem: %w", err)
		}
		booking.Items = append(booking.Items, item)
	}
	return booking, nil
}

func (r *Repository) list(ctx context.Context, where string, whereArgs []interface{}, page, limit int) ([]*models.Booking, int, error) {
	offset := (page - 1) * limit
	args := append(whereArgs, limit, offset)
	query := fmt.Sprintf(`
		SELECT `+bookingColumns+`
		FROM bookings
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d`, where, len(whereArgs)+1, len(whereArgs)+2)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("repository.ListBookings.Query: %w", err)
	}
	defer rows.Close()

	var list []*models.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repository.ListBookings.Scan: %w", err)
		}
		list = append(list, booking)
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM bookings " + where
	if err := r.db.QueryRow(ctx, countQuery, whereArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repository.ListBookings.Count: %w", err)
	}
	return list, total, nil
}

func (r *Repository) ListByCustomer(ctx context.Context, customerID string, page, limit int) ([]*models.Booking, int, error) {
	return r.list(ctx, "WHERE customer_id = $1", []interface{}{customerID}, page, limit)
}

func (r *Repository) ListByVendor(ctx context.Context, vendorID string, page, limit int) ([]*models.Booking, int, error) {
	return r.list(ctx, "WHERE vendor_id = $1", []interface{}{vendorID}, page, limit)
}

func (r *Repository) ListAll(ctx context.Context, page, limit int) ([]*models.Booking, int, error) {
	return r.list(ctx, "", nil, page, limit)
}

func (r *Repository) AssignVendor(ctx context.Context, bookingID, vendorID string) error {
	query := `
		UPDATE bookings
		SET vendor_id = $1, status = 'assigned', vendor_latitude = NULL, vendor_longitude = NULL
		WHERE id = $2`
	cmdTag, err := r.db.Exec(ctx, query, vendorID, bookingID)
	if err != nil {
		return fmt.Errorf("repository.AssignVendor: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

// ClearVendor reverts an assigned booking to pending; re-assignment starts fresh.
func (r *Repository) ClearVendor(ctx context.Context, bookingID string) error {
	query := `
		UPDATE bookings
		SET vendor_id = NULL, status = 'pending', vendor_latitude = NULL, vendor_longitude = NULL
		WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, query, bookingID)
	if err != nil {
		return fmt.Errorf("repository.ClearVendor: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *Repository) Reject(ctx context.Context, bookingID, reason string) error {
	query := `UPDATE bookings SET status = 'rejected', rejection_reason = $1 WHERE id = $2`
	cmdTag, err := r.db.Exec(ctx, query, reason, bookingID)
	if err != nil {
		return fmt.Errorf("repository.RejectBooking: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *Repository) Complete(ctx context.Context, bookingID, paymentMode string, completedAt time.Time) error {
	query := `UPDATE bookings SET status = 'completed', payment_mode = $1, completed_at = $2 WHERE id = $3`
	cmdTag, err := r.db.Exec(ctx, query, paymentMode, completedAt, bookingID)
	if err != nil {
		return fmt.Errorf("repository.CompleteBooking: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

// Update replaces the contact snapshot and the entire item list in one
// transaction. Old items are deleted, new ones inserted.
func (r *Repository) Update(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("repository.UpdateBooking.Begin: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE bookings
		SET customer_name = $1, customer_phone = $2, address = $3, pincode = $4, district = $5, state = $6, total_value = $7
		WHERE id = $8
		RETURNING ` + bookingColumns

	updated, err := scanBooking(tx.QueryRow(ctx, query,
		booking.CustomerName, booking.CustomerPhone, booking.Address, booking.Pincode,
		booking.District, booking.State, booking.TotalValue, booking.ID,
	))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("repository.UpdateBooking: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM booking_items WHERE booking_id = $1`, booking.ID); err != nil {
		return nil, fmt.Errorf("repository.UpdateBooking.DeleteItems: %w", err)
	}

	updated.Items, err = insertItems(ctx, tx, booking.ID, booking.Items)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("repository.UpdateBooking.Commit: %w", err)
	}
	return updated, nil
}

// Delete removes the booking; items go with it via ON DELETE CASCADE.
func (r *Repository) Delete(ctx context.Context, bookingID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, bookingID)
	if err != nil {
		return fmt.Errorf("repository.DeleteBooking: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *Repository) CreateReview(ctx context.Context, review *models.Review) (*models.Review, error) {
	query := `
		INSERT INTO reviews (booking_id, customer_id, vendor_id, rating, comment)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`
	err := r.db.QueryRow(ctx, query,
		review.BookingID, review.CustomerID, review.VendorID, review.Rating, review.Comment,
	).Scan(&review.ID, &review.CreatedAt)
	if err != nil {
		// reviews.booking_id is UNIQUE; a concurrent insert can slip past the
		// service pre-check and surface here as a unique violation.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, models.ErrReviewExists
		}
		return nil, fmt.Errorf("repository.CreateReview: %w", err)
	}
	return review, nil
}

func (r *Repository) FindReviewByBookingID(ctx context.Context, bookingID string) (*models.Review, error) {
	review := &models.Review{}
	query := `SELECT id, booking_id, customer_id, vendor_id, rating, comment, created_at FROM reviews WHERE booking_id = $1`
	err := r.db.QueryRow(ctx, query, bookingID).Scan(
		&review.ID, &review.BookingID, &review.CustomerID, &review.VendorID,
		&review.Rating, &review.Comment, &review.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("repository.FindReviewByBookingID: %w", err)
	}
	return review, nil
}
