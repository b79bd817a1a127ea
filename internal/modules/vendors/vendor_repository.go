package vendors

import (
	"context"
	"errors"
	"fmt"

	"scrap-pickup/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type dbtx interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// RepositoryInterface defines methods for interacting with vendor storage.
type RepositoryInterface interface {
	WithTx(tx pgx.Tx) RepositoryInterface

	Create(ctx context.Context, req models.OnboardVendorRequest) (*models.Vendor, error)
	FindByID(ctx context.Context, vendorID string) (*models.Vendor, error)
	FindByUserID(ctx context.Context, userID string) (*models.Vendor, error)
	ListAll(ctx context.Context, activeOnly bool, page, limit int) ([]*models.Vendor, int, error)
	SetActive(ctx context.Context, vendorID string, active bool) error
	AdjustActivePickups(ctx context.Context, vendorID string, delta int) error
	UpdateLiveLocation(ctx context.Context, vendorID string, lat, lng float64) error
}

type Repository struct {
	db dbtx
}

func NewRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &Repository{db: pool}
}

func (r *Repository) WithTx(tx pgx.Tx) RepositoryInterface {
	return &Repository{db: tx}
}

const vendorColumns = `id, user_id, location, pincode, district, state, aadhaar_number, pan_number, is_active, active_pickups, created_at, updated_at`

func scanVendor(row pgx.Row) (*models.Vendor, error) {
	v := &models.Vendor{}
	err := row.Scan(
		&v.ID, &v.UserID, &v.Location, &v.Pincode, &v.District, &v.State,
		&v.AadhaarNumber, &v.PanNumber, &v.IsActive, &v.ActivePickups,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan vendor: %w", err)
	}
	return v, nil
}

func (r *Repository) Create(ctx context.Context, req models.OnboardVendorRequest) (*models.Vendor, error) {
	query := `
		INSERT INTO vendors (user_id, location, pincode, district, state, aadhaar_number, pan_number)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + vendorColumns
	vendor, err := scanVendor(r.db.QueryRow(ctx, query,
		req.UserID, req.Location, req.Pincode, req.District, req.State,
		req.AadhaarNumber, req.PanNumber,
	))
	if err != nil {
		return nil, fmt.Errorf("repository.CreateVendor: %w", err)
	}
	return vendor, nil
}

func (r *Repository) FindByID(ctx context.Context, vendorID string) (*models.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors WHERE id = $1`
	vendor, err := scanVendor(r.db.QueryRow(ctx, query, vendorID))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("repository.FindVendorByID: %w", err)
	}
	return vendor, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID string) (*models.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors WHERE user_id = $1`
	vendor, err := scanVendor(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("repository.FindVendorByUserID: %w", err)
	}
	return vendor, nil
}

// ListAll attaches the owning user's name and phone plus the vendor's
// average review rating.
func (r *Repository) ListAll(ctx context.Context, activeOnly bool, page, limit int) ([]*models.Vendor, int, error) {
	offset := (page - 1) * limit
	filter := ""
	if activeOnly {
		filter = "WHERE v.is_active = TRUE"
	}

	query := fmt.Sprintf(`
		SELECT v.id, v.user_id, v.location, v.pincode, v.district, v.state,
		       v.aadhaar_number, v.pan_number, v.is_active, v.active_pickups,
		       v.created_at, v.updated_at,
		       u.name, u.phone,
		       COALESCE(AVG(rv.rating), 0)
		FROM vendors v
		JOIN users u ON u.id = v.user_id
		LEFT JOIN reviews rv ON rv.vendor_id = v.id
		%s
		GROUP BY v.id, u.name, u.phone
		ORDER BY v.created_at DESC
		LIMIT $1 OFFSET $2`, filter)

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("repository.ListVendors.Query: %w", err)
	}
	defer rows.Close()

	var vendorList []*models.Vendor
	for rows.Next() {
		v := &models.Vendor{}
		err := rows.Scan(
			&v.ID, &v.UserID, &v.Location, &v.Pincode, &v.District, &v.State,
			&v.AadhaarNumber, &v.PanNumber, &v.IsActive, &v.ActivePickups,
			&v.CreatedAt, &v.UpdatedAt,
			&v.Name, &v.Phone, &v.AverageRating,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("repository.ListVendors.Scan: %w", err)
		}
		vendorList = append(vendorList, v)
	}

	countQuery := `SELECT COUNT(*) FROM vendors`
	if activeOnly {
		countQuery += ` WHERE is_active = TRUE`
	}
	var total int
	if err := r.db.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repository.ListVendors.Count: %w", err)
	}

	return vendorList, total, nil
}

func (r *Repository) SetActive(ctx context.Context, vendorID string, active bool) error {
	query := `UPDATE vendors SET is_active = $1, updated_at = NOW() WHERE id = $2`
	cmdTag, err := r.db.Exec(ctx, query, active, vendorID)
	if err != nil {
		return fmt.Errorf("repository.SetVendorActive: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

// AdjustActivePickups moves the in-progress pickup counter by delta,
// clamped at zero.
func (r *Repository) AdjustActivePickups(ctx context.Context, vendorID string, delta int) error {
	query := `
		UPDATE vendors
		SET active_pickups = GREATEST(active_pickups + $1, 0), updated_at = NOW()
		WHERE id = $2`
	cmdTag, err := r.db.Exec(ctx, query, delta, vendorID)
	if err != nil {
		return fmt.Errorf("repository.AdjustActivePickups: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

// UpdateLiveLocation mirrors the vendor's coordinates onto every booking
// currently assigned to them.
func (r *Repository) UpdateLiveLocation(ctx context.Context, vendorID string, lat, lng float64) error {
	query := `
		UPDATE bookings
		SET vendor_latitude = $1, vendor_longitude = $2
		WHERE vendor_id = $3 AND status = 'assigned'`
	if _, err := r.db.Exec(ctx, query, lat, lng, vendorID); err != nil {
		return fmt.Errorf("repository.UpdateLiveLocation: %w", err)
	}
	return nil
}
