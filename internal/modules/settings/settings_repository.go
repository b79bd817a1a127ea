package settings

import (
	"context"
	"errors"
	"fmt"

	"scrap-pickup/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RepositoryInterface defines the contract for the key/value settings store.
type RepositoryInterface interface {
	Get(ctx context.Context, key string) (*models.Setting, error)
	Upsert(ctx context.Context, key, value string) (*models.Setting, error)
	ListAll(ctx context.Context) ([]*models.Setting, error)
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) RepositoryInterface {
	return &Repository{db: db}
}

func (r *Repository) Get(ctx context.Context, key string) (*models.Setting, error) {
	setting := &models.Setting{}
	query := `SELECT key, value, updated_at FROM settings WHERE key = $1`
	err := r.db.QueryRow(ctx, query, key).Scan(&setting.Key, &setting.Value, &setting.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("repository.GetSetting: %w", err)
	}
	return setting, nil
}

func (r *Repository) Upsert(ctx context.Context, key, value string) (*models.Setting, error) {
	setting := &models.Setting{}
	query := `
		INSERT INTO settings (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
		RETURNING key, value, updated_at`
	err := r.db.QueryRow(ctx, query, key, value).Scan(&setting.Key, &setting.Value, &setting.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("repository.UpsertSetting: %w", err)
	}
	return setting, nil
}

func (r *Repository) ListAll(ctx context.Context) ([]*models.Setting, error) {
	rows, err := r.db.Query(ctx, `SELECT key, value, updated_at FROM settings ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("repository.ListSettings.Query: %w", err)
	}
	defer rows.Close()

	var list []*models.Setting
	for rows.Next() {
		setting := &models.Setting{}
		if err := rows.Scan(&setting.Key, &setting.Value, &setting.UpdatedAt); err != nil {
			return nil, fmt.Errorf("repository.ListSettings.Scan: %w", err)
		}
		list = append(list, setting)
	}
	return list, nil
}
