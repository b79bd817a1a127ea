package categories

import (
	"context"
	"fmt"
	"testing"

	"scrap-pickup/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCategoryRepo struct {
	byID      map[string]*models.Category
	itemRefs  map[string]int
	nextID    int
	createErr error
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{
		byID:     make(map[string]*models.Category),
		itemRefs: make(map[string]int),
	}
}

func (f *fakeCategoryRepo) Create(_ context.Context, req models.CreateCategoryRequest) (*models.Category, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	cat := &models.Category{
		ID:      fmt.Sprintf("cat-%d", f.nextID),
		Name:    req.Name,
		Unit:    req.Unit,
		MinRate: req.MinRate,
		MaxRate: req.MaxRate,
		Icon:    req.Icon,
	}
	f.byID[cat.ID] = cat
	return cat, nil
}

func (f *fakeCategoryRepo) FindByID(_ context.Context, categoryID string) (*models.Category, error) {
	cat, ok := f.byID[categoryID]
	if !ok {
		return nil, models.ErrNotFound
	}
	return cat, nil
}

func (f *fakeCategoryRepo) ListAll(_ context.Context) ([]*models.Category, error) {
	var out []*models.Category
	for _, cat := range f.byID {
		out = append(out, cat)
	}
	return out, nil
}

func (f *fakeCategoryRepo) Update(_ context.Context, categoryID string, req models.UpdateCategoryRequest) (*models.Category, error) {
	cat, ok := f.byID[categoryID]
	if !ok {
		return nil, models.ErrNotFound
	}
	if req.Name != nil {
		cat.Name = *req.Name
	}
	if req.MinRate != nil {
		cat.MinRate = *req.MinRate
	}
	if req.MaxRate != nil {
		cat.MaxRate = *req.MaxRate
	}
	return cat, nil
}

func (f *fakeCategoryRepo) Delete(_ context.Context, categoryID string) error {
	if _, ok := f.byID[categoryID]; !ok {
		return models.ErrNotFound
	}
	delete(f.byID, categoryID)
	return nil
}

func (f *fakeCategoryRepo) Count(_ context.Context) (int, error) {
	return len(f.byID), nil
}

func (f *fakeCategoryRepo) CountBookingItems(_ context.Context, categoryID string) (int, error) {
	return f.itemRefs[categoryID], nil
}

func TestSeedDefaults(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := NewService(repo)

	require.NoError(t, svc.SeedDefaults(context.Background()))
	seeded, _ := repo.Count(context.Background())
	assert.Equal(t, len(defaultCatalog), seeded)

	// A populated table is owned by admin CRUD, never reseeded.
	require.NoError(t, repo.Delete(context.Background(), "cat-1"))
	require.NoError(t, svc.SeedDefaults(context.Background()))
	after, _ := repo.Count(context.Background())
	assert.Equal(t, seeded-1, after)
}

func TestSeedDefaultsCatalogIsSane(t *testing.T) {
	seen := make(map[string]bool)
	for _, cat := range defaultCatalog {
		assert.Falsef(t, seen[cat.Name], "duplicate catalog entry %q", cat.Name)
		seen[cat.Name] = true
		assert.Greaterf(t, cat.MinRate, 0.0, "%s min rate", cat.Name)
		assert.GreaterOrEqualf(t, cat.MaxRate, cat.MinRate, "%s rate band", cat.Name)
		assert.Contains(t, []string{models.UnitKg, models.UnitPiece}, cat.Unit)
	}
}

func TestDeleteCategoryGuardsReferencedRows(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := NewService(repo)

	cat, err := svc.CreateCategory(context.Background(), models.CreateCategoryRequest{
		Name: "Glass", Unit: models.UnitKg, MinRate: 2, MaxRate: 5,
	})
	require.NoError(t, err)

	repo.itemRefs[cat.ID] = 3
	err = svc.DeleteCategory(context.Background(), cat.ID)
	assert.ErrorIs(t, err, models.ErrCategoryInUse)

	repo.itemRefs[cat.ID] = 0
	require.NoError(t, svc.DeleteCategory(context.Background(), cat.ID))
	_, err = repo.FindByID(context.Background(), cat.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}
