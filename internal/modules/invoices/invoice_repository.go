package invoices

import (
	"context"
	"errors"
	"fmt"

	"scrap-pickup/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RepositoryInterface defines the contract for invoice storage.
type RepositoryInterface interface {
	Create(ctx context.Context, invoice *models.Invoice) (*models.Invoice, error)
	FindByBookingID(ctx context.Context, bookingID string) (*models.Invoice, error)
	ListAll(ctx context.Context, page, limit int) ([]*models.Invoice, int, error)
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) RepositoryInterface {
	return &Repository{db: db}
}

// The amount columns are NUMERIC; pgx cannot scan numeric into *string over the
// binary protocol, so they are cast to text in every SELECT and RETURNING list.
const invoiceColumns = `id, invoice_number, booking_id, customer_name, customer_phone, vendor_name, vendor_phone, total_value::text, platform_fee::text, net_amount::text, payment_mode, created_at`

func scanInvoice(row pgx.Row) (*models.Invoice, error) {
	inv := &models.Invoice{}
	err := row.Scan(
		&inv.ID, &inv.InvoiceNumber, &inv.BookingID, &inv.CustomerName, &inv.CustomerPhone,
		&inv.VendorName, &inv.VendorPhone, &inv.TotalValue, &inv.PlatformFee, &inv.NetAmount,
		&inv.PaymentMode, &inv.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan invoice: %w", err)
	}
	return inv, nil
}

func (r *Repository) Create(ctx context.Context, invoice *models.Invoice) (*models.Invoice, error) {
	query := `
		INSERT INTO invoices (invoice_number, booking_id, customer_name, customer_phone, vendor_name, vendor_phone, total_value, platform_fee, net_amount, payment_mode)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + invoiceColumns
	created, err := scanInvoice(r.db.QueryRow(ctx, query,
		invoice.InvoiceNumber, invoice.BookingID, invoice.CustomerName, invoice.CustomerPhone,
		invoice.VendorName, invoice.VendorPhone, invoice.TotalValue, invoice.PlatformFee,
		invoice.NetAmount, invoice.PaymentMode,
	))
	if err != nil {
		return nil, fmt.Errorf("repository.CreateInvoice: %w", err)
	}
	return created, nil
}

func (r *Repository) FindByBookingID(ctx context.Context, bookingID string) (*models.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE booking_id = $1`
	inv, err := scanInvoice(r.db.QueryRow(ctx, query, bookingID))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("repository.FindInvoiceByBookingID: %w", err)
	}
	return inv, nil
}

func (r *Repository) ListAll(ctx context.Context, page, limit int) ([]*models.Invoice, int, error) {
	offset := (page - 1) * limit
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("repository.ListInvoices.Query: %w", err)
	}
	defer rows.Close()

	var list []*models.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repository.ListInvoices.Scan: %w", err)
		}
		list = append(list, inv)
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM invoices`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repository.ListInvoices.Count: %w", err)
	}
	return list, total, nil
}
