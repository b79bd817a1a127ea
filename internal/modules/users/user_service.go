package users

import (
	"context"
	"errors"
	"fmt"
	"log"

	"scrap-pickup/internal/models"
)

// ServiceInterface defines methods for user business logic.
type ServiceInterface interface {
	// ResolveByPhone is the identity resolver contract: it maps a verified
	// phone number to a user record, creating a customer row on first contact.
	ResolveByPhone(ctx context.Context, phone string) (*models.User, error)

	GetProfile(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, data models.UpdateProfileRequest) (*models.User, error)

	ListUsers(ctx context.Context, page, limit int) ([]*models.User, int, error)
	UpdateRole(ctx context.Context, userID, role string) error

	SeedAdmin(ctx context.Context, phone string) error
}

type Service struct {
	userRepo RepositoryInterface
}

func NewService(userRepo RepositoryInterface) ServiceInterface {
	return &Service{userRepo: userRepo}
}

func (s *Service) ResolveByPhone(ctx context.Context, phone string) (*models.User, error) {
	user, err := s.userRepo.FindByPhone(ctx, phone)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		return nil, fmt.Errorf("service.ResolveByPhone: %w", err)
	}

	// First contact with this phone number: auto-create a customer account.
	created, err := s.userRepo.Create(ctx, phone, models.RoleCustomer)
	if err != nil {
		// A concurrent first request may have won the unique-phone race.
		if existing, findErr := s.userRepo.FindByPhone(ctx, phone); findErr == nil {
			return existing, nil
		}
		return nil, fmt.Errorf("service.ResolveByPhone.Create: %w", err)
	}
	return created, nil
}

func (s *Service) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service.GetProfile: %w", err)
	}
	return user, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID string, data models.UpdateProfileRequest) (*models.User, error) {
	user, err := s.userRepo.Update(ctx, userID, data)
	if err != nil {
		return nil, fmt.Errorf("service.UpdateProfile: %w", err)
	}
	return user, nil
}

func (s *Service) ListUsers(ctx context.Context, page, limit int) ([]*models.User, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.userRepo.ListAll(ctx, page, limit)
}

func (s *Service) UpdateRole(ctx context.Context, userID, role string) error {
	if err := s.userRepo.UpdateRole(ctx, userID, role); err != nil {
		return fmt.Errorf("service.UpdateRole: %w", err)
	}
	return nil
}

// SeedAdmin promotes (or creates) the configured admin phone number on
// startup when no admin exists yet.
func (s *Service) SeedAdmin(ctx context.Context, phone string) error {
	if phone == "" {
		log.Println("skip seeding admin: ADMIN_PHONE not set")
		return nil
	}

	count, err := s.userRepo.CountByRole(ctx, models.RoleAdmin)
	if err != nil {
		return fmt.Errorf("service.SeedAdmin: %w", err)
	}
	if count > 0 {
		return nil
	}

	user, err := s.userRepo.FindByPhone(ctx, phone)
	if errors.Is(err, models.ErrNotFound) {
		user, err = s.userRepo.Create(ctx, phone, models.RoleAdmin)
		if err != nil {
			return fmt.Errorf("service.SeedAdmin.Create: %w", err)
		}
		log.Printf("seeded admin user %s", user.ID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("service.SeedAdmin.FindByPhone: %w", err)
	}

	if err := s.userRepo.UpdateRole(ctx, user.ID, models.RoleAdmin); err != nil {
		return fmt.Errorf("service.SeedAdmin.UpdateRole: %w", err)
	}
	log.Printf("promoted existing user %s to admin", user.ID)
	return nil
}
