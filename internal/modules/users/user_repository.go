package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"scrap-pickup/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// dbtx is satisfied by both *pgxpool.Pool and pgx.Tx, so the same queries
// run inside or outside a transaction.
type dbtx interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// RepositoryInterface defines methods for interacting with user storage.
type RepositoryInterface interface {
	BeginTx(ctx context.Context) (pgx.Tx, error)
	WithTx(tx pgx.Tx) RepositoryInterface

	FindByID(ctx context.Context, userID string) (*models.User, error)
	FindByPhone(ctx context.Context, phone string) (*models.User, error)
	Create(ctx context.Context, phone, role string) (*models.User, error)
	Update(ctx context.Context, userID string, data models.UpdateProfileRequest) (*models.User, error)
	UpdateRole(ctx context.Context, userID, role string) error
	ListAll(ctx context.Context, page, limit int) ([]*models.User, int, error)
	CountByRole(ctx context.Context, role string) (int, error)
}

type Repository struct {
	db   dbtx
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &Repository{db: pool, pool: pool}
}

// BeginTx starts a transaction on the underlying pool.
func (r *Repository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	return r.pool.Begin(ctx)
}

// WithTx returns a repository whose queries run inside the given transaction.
func (r *Repository) WithTx(tx pgx.Tx) RepositoryInterface {
	return &Repository{db: tx, pool: r.pool}
}

const userColumns = `id, phone, name, address, pincode, district, state, role, created_at, updated_at`

func scanUser(row pgx.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID, &user.Phone, &user.Name, &user.Address, &user.Pincode,
		&user.District, &user.State, &user.Role, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	return user, nil
}

func (r *Repository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	user, err := scanUser(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("repository.FindByID: %w", err)
	}
	return user, nil
}

func (r *Repository) FindByPhone(ctx context.Context, phone string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE phone = $1`
	user, err := scanUser(r.db.QueryRow(ctx, query, phone))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("repository.FindByPhone: %w", err)
	}
	return user, nil
}

// Create inserts a user with empty profile fields. Used by the identity
// resolver on first contact with a phone number.
func (r *Repository) Create(ctx context.Context, phone, role string) (*models.User, error) {
	query := `
		INSERT INTO users (phone, role)
		VALUES ($1, $2)
		RETURNING ` + userColumns
	user, err := scanUser(r.db.QueryRow(ctx, query, phone, role))
	if err != nil {
		return nil, fmt.Errorf("repository.CreateUser: %w", err)
	}
	return user, nil
}

func (r *Repository) Update(ctx context.Context, userID string, data models.UpdateProfileRequest) (*models.User, error) {
	var setClauses []string
	var args []interface{}
	argIdx := 1

	addClause := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if data.Name != nil {
		addClause("name", *data.Name)
	}
	if data.Address != nil {
		addClause("address", *data.Address)
	}
	if data.Pincode != nil {
		addClause("pincode", *data.Pincode)
	}
	if data.District != nil {
		addClause("district", *data.District)
	}
	if data.State != nil {
		addClause("state", *data.State)
	}

	if len(setClauses) == 0 {
		return r.FindByID(ctx, userID) // No fields to update, return current user
	}

	addClause("updated_at", time.Now())
	args = append(args, userID) // For WHERE clause

	query := fmt.Sprintf(`UPDATE users SET %s WHERE id = $%d RETURNING `+userColumns,
		strings.Join(setClauses, ", "), argIdx)

	user, err := scanUser(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("repository.UpdateUser: %w", err)
	}
	return user, nil
}

func (r *Repository) UpdateRole(ctx context.Context, userID, role string) error {
	query := `UPDATE users SET role = $1, updated_at = NOW() WHERE id = $2`
	cmdTag, err := r.db.Exec(ctx, query, role, userID)
	if err != nil {
		return fmt.Errorf("repository.UpdateRole: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *Repository) ListAll(ctx context.Context, page, limit int) ([]*models.User, int, error) {
	offset := (page - 1) * limit
	query := `
		SELECT ` + userColumns + `
		FROM users
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("repository.ListAll.Query: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repository.ListAll.Scan: %w", err)
		}
		users = append(users, user)
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repository.ListAll.Count: %w", err)
	}

	return users, total, nil
}

func (r *Repository) CountByRole(ctx context.Context, role string) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE role = $1`, role).Scan(&count); err != nil {
		return 0, fmt.Errorf("repository.CountByRole: %w", err)
	}
	return count, nil
}
