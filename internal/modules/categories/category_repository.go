package categories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"scrap-pickup/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RepositoryInterface defines methods for interacting with category storage.
type RepositoryInterface interface {
	Create(ctx context.Context, req models.CreateCategoryRequest) (*models.Category, error)
	FindByID(ctx context.Context, categoryID string) (*models.Category, error)
	ListAll(ctx context.Context) ([]*models.Category, error)
	Update(ctx context.Context, categoryID string, req models.UpdateCategoryRequest) (*models.Category, error)
	Delete(ctx context.Context, categoryID string) error
	Count(ctx context.Context) (int, error)
	CountBookingItems(ctx context.Context, categoryID string) (int, error)
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) RepositoryInterface {
	return &Repository{db: db}
}

const categoryColumns = `id, name, unit, min_rate, max_rate, icon, created_at, updated_at`

func scanCategory(row pgx.Row) (*models.Category, error) {
	cat := &models.Category{}
	err := row.Scan(
		&cat.ID, &cat.Name, &cat.Unit, &cat.MinRate, &cat.MaxRate, &cat.Icon,
		&cat.CreatedAt, &cat.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan category: %w", err)
	}
	return cat, nil
}

func (r *Repository) Create(ctx context.Context, req models.CreateCategoryRequest) (*models.Category, error) {
	query := `
		INSERT INTO categories (name, unit, min_rate, max_rate, icon)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + categoryColumns
	cat, err := scanCategory(r.db.QueryRow(ctx, query, req.Name, req.Unit, req.MinRate, req.MaxRate, req.Icon))
	if err != nil {
		return nil, fmt.Errorf("repository.CreateCategory: %w", err)
	}
	return cat, nil
}

func (r *Repository) FindByID(ctx context.Context, categoryID string) (*models.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`
	cat, err := scanCategory(r.db.QueryRow(ctx, query, categoryID))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("repository.FindCategoryByID: %w", err)
	}
	return cat, nil
}

func (r *Repository) ListAll(ctx context.Context) ([]*models.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories ORDER BY name`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("repository.ListCategories.Query: %w", err)
	}
	defer rows.Close()

	var cats []*models.Category
	for rows.Next() {
		cat, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("repository.ListCategories.Scan: %w", err)
		}
		cats = append(cats, cat)
	}
	return cats, nil
}

func (r *Repository) Update(ctx context.Context, categoryID string, req models.UpdateCategoryRequest) (*models.Category, error) {
	var setClauses []string
	var args []interface{}
	argIdx := 1

	addClause := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if req.Name != nil {
		addClause("name", *req.Name)
	}
	if req.Unit != nil {
		addClause("unit", *req.Unit)
	}
	if req.MinRate != nil {
		addClause("min_rate", *req.MinRate)
	}
	if req.MaxRate != nil {
		addClause("max_rate", *req.MaxRate)
	}
	if req.Icon != nil {
		addClause("icon", *req.Icon)
	}

	if len(setClauses) == 0 {
		return r.FindByID(ctx, categoryID)
	}

	addClause("updated_at", time.Now())
	args = append(args, categoryID)

	query := fmt.Sprintf(`UPDATE categories SET %s WHERE id = $%d RETURNING `+categoryColumns,
		strings.Join(setClauses, ", "), argIdx)

	cat, err := scanCategory(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("repository.UpdateCategory: %w", err)
	}
	return cat, nil
}

func (r *Repository) Delete(ctx context.Context, categoryID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, categoryID)
	if err != nil {
		return fmt.Errorf("repository.DeleteCategory: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM categories`).Scan(&count); err != nil {
		return 0, fmt.Errorf("repository.CountCategories: %w", err)
	}
	return count, nil
}

func (r *Repository) CountBookingItems(ctx context.Context, categoryID string) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM booking_items WHERE category_id = $1`, categoryID).Scan(&count); err != nil {
		return 0, fmt.Errorf("repository.CountBookingItems: %w", err)
	}
	return count, nil
}
