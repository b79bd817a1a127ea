package vendors

import (
	"context"
	"errors"
	"fmt"

	"scrap-pickup/internal/models"
	"scrap-pickup/internal/modules/users"
)

// ServiceInterface defines methods for vendor business logic.
type ServiceInterface interface {
	Onboard(ctx context.Context, req models.OnboardVendorRequest) (*models.Vendor, error)
	ListVendors(ctx context.Context, activeOnly bool, page, limit int) ([]*models.Vendor, int, error)
	GetByID(ctx context.Context, vendorID string) (*models.Vendor, error)
	GetMine(ctx context.Context, userID string) (*models.Vendor, error)
	SetActive(ctx context.Context, vendorID string, active bool) error
	UpdateLocation(ctx context.Context, userID string, req models.UpdateVendorLocationRequest) error
	AdjustActivePickups(ctx context.Context, vendorID string, delta int) error
}

type Service struct {
	vendorRepo RepositoryInterface
	userRepo   users.RepositoryInterface
}

func NewService(vendorRepo RepositoryInterface, userRepo users.RepositoryInterface) ServiceInterface {
	return &Service{vendorRepo: vendorRepo, userRepo: userRepo}
}

// Onboard promotes a user to the vendor role and creates their profile in a
// single transaction. Both writes succeed or both are rolled back.
func (s *Service) Onboard(ctx context.Context, req models.OnboardVendorRequest) (*models.Vendor, error) {
	if _, err := s.userRepo.FindByID(ctx, req.UserID); err != nil {
		return nil, fmt.Errorf("service.Onboard.FindUser: %w", err)
	}

	_, err := s.vendorRepo.FindByUserID(ctx, req.UserID)
	if err == nil {
		return nil, models.ErrVendorExists
	}
	if !errors.Is(err, models.ErrNotFound) {
		return nil, fmt.Errorf("service.Onboard.FindVendor: %w", err)
	}

	tx, err := s.userRepo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.Onboard.BeginTx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := s.userRepo.WithTx(tx).UpdateRole(ctx, req.UserID, models.RoleVendor); err != nil {
		return nil, fmt.Errorf("service.Onboard.UpdateRole: %w", err)
	}

	vendor, err := s.vendorRepo.WithTx(tx).Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("service.Onboard.CreateVendor: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("service.Onboard.Commit: %w", err)
	}
	return vendor, nil
}

func (s *Service) ListVendors(ctx context.Context, activeOnly bool, page, limit int) ([]*models.Vendor, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.vendorRepo.ListAll(ctx, activeOnly, page, limit)
}

func (s *Service) GetByID(ctx context.Context, vendorID string) (*models.Vendor, error) {
	vendor, err := s.vendorRepo.FindByID(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("service.GetVendor: %w", err)
	}
	return vendor, nil
}

func (s *Service) GetMine(ctx context.Context, userID string) (*models.Vendor, error) {
	vendor, err := s.vendorRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service.GetMyVendorProfile: %w", err)
	}
	return vendor, nil
}

func (s *Service) SetActive(ctx context.Context, vendorID string, active bool) error {
	if err := s.vendorRepo.SetActive(ctx, vendorID, active); err != nil {
		return fmt.Errorf("service.SetVendorActive: %w", err)
	}
	return nil
}

// UpdateLocation pushes the calling vendor's live coordinates onto their
// assigned bookings.
func (s *Service) UpdateLocation(ctx context.Context, userID string, req models.UpdateVendorLocationRequest) error {
	vendor, err := s.vendorRepo.FindByUserID(ctx, userID)
	if err != nil {
		return fmt.Errorf("service.UpdateLocation.FindVendor: %w", err)
	}

	if err := s.vendorRepo.UpdateLiveLocation(ctx, vendor.ID, req.Latitude, req.Longitude); err != nil {
		return fmt.Errorf("service.UpdateLocation: %w", err)
	}
	return nil
}

func (s *Service) AdjustActivePickups(ctx context.Context, vendorID string, delta int) error {
	return s.vendorRepo.AdjustActivePickups(ctx, vendorID, delta)
}
