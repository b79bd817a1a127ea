package categories

import (
	"context"
	"fmt"
	"log"

	"scrap-pickup/internal/models"
)

// ServiceInterface defines methods for category business logic.
type ServiceInterface interface {
	SeedDefaults(ctx context.Context) error
	ListCategories(ctx context.Context) ([]*models.Category, error)
	CreateCategory(ctx context.Context, req models.CreateCategoryRequest) (*models.Category, error)
	UpdateCategory(ctx context.Context, categoryID string, req models.UpdateCategoryRequest) (*models.Category, error)
	DeleteCategory(ctx context.Context, categoryID string) error
}

type Service struct {
	repo RepositoryInterface
}

func NewService(repo RepositoryInterface) ServiceInterface {
	return &Service{repo: repo}
}

// defaultCatalog is the scrap catalog seeded into an empty categories table.
var defaultCatalog = []models.CreateCategoryRequest{
	{Name: "Newspaper", Unit: models.UnitKg, MinRate: 10, MaxRate: 15, Icon: "newspaper"},
	{Name: "Cardboard", Unit: models.UnitKg, MinRate: 5, MaxRate: 10, Icon: "cardboard"},
	{Name: "Plastic", Unit: models.UnitKg, MinRate: 10, MaxRate: 20, Icon: "plastic"},
	{Name: "Iron", Unit: models.UnitKg, MinRate: 25, MaxRate: 35, Icon: "iron"},
	{Name: "Copper", Unit: models.UnitKg, MinRate: 400, MaxRate: 600, Icon: "copper"},
	{Name: "Aluminium", Unit: models.UnitKg, MinRate: 100, MaxRate: 150, Icon: "aluminium"},
	{Name: "Brass", Unit: models.UnitKg, MinRate: 300, MaxRate: 400, Icon: "brass"},
	{Name: "E-Waste", Unit: models.UnitKg, MinRate: 20, MaxRate: 60, Icon: "ewaste"},
	{Name: "Air Conditioner", Unit: models.UnitPiece, MinRate: 2000, MaxRate: 5000, Icon: "ac"},
	{Name: "Refrigerator", Unit: models.UnitPiece, MinRate: 1000, MaxRate: 3000, Icon: "fridge"},
	{Name: "Washing Machine", Unit: models.UnitPiece, MinRate: 800, MaxRate: 2000, Icon: "washing-machine"},
}

// SeedDefaults populates the catalog once at process start if the table is
// empty; a populated table is left to admin CRUD.
func (s *Service) SeedDefaults(ctx context.Context) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("service.SeedDefaults.Count: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, cat := range defaultCatalog {
		if _, err := s.repo.Create(ctx, cat); err != nil {
			return fmt.Errorf("service.SeedDefaults.Create %q: %w", cat.Name, err)
		}
	}
	log.Printf("seeded %d default categories", len(defaultCatalog))
	return nil
}

func (s *Service) ListCategories(ctx context.Context) ([]*models.Category, error) {
	cats, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ListCategories: %w", err)
	}
	return cats, nil
}

func (s *Service) CreateCategory(ctx context.Context, req models.CreateCategoryRequest) (*models.Category, error) {
	cat, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("service.CreateCategory: %w", err)
	}
	return cat, nil
}

func (s *Service) UpdateCategory(ctx context.Context, categoryID string, req models.UpdateCategoryRequest) (*models.Category, error) {
	cat, err := s.repo.Update(ctx, categoryID, req)
	if err != nil {
		return nil, fmt.Errorf("service.UpdateCategory: %w", err)
	}
	return cat, nil
}

// DeleteCategory refuses to delete a category that booking line items still
// reference; the item rows carry a name snapshot but keep the FK for
// reporting.
func (s *Service) DeleteCategory(ctx context.Context, categoryID string) error {
	inUse, err := s.repo.CountBookingItems(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("service.DeleteCategory.CountItems: %w", err)
	}
	if inUse > 0 {
		return models.ErrCategoryInUse
	}

	if err := s.repo.Delete(ctx, categoryID); err != nil {
		return fmt.Errorf("service.DeleteCategory: %w", err)
	}
	return nil
}
