package settings

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"

	"scrap-pickup/internal/models"
)

// ServiceInterface defines methods for the admin-tunable settings.
type ServiceInterface interface {
	// PlatformFeePercent returns the configured fee percent, defaulting to
	// 0 when the key is unset or unparseable. Parsing lives here so call
	// sites never touch the raw string.
	PlatformFeePercent(ctx context.Context) (float64, error)

	ListSettings(ctx context.Context) ([]*models.Setting, error)
	UpsertSetting(ctx context.Context, key, value string) (*models.Setting, error)
}

type Service struct {
	repo RepositoryInterface
}

func NewService(repo RepositoryInterface) *Service {
	return &Service{repo: repo}
}

func (s *Service) PlatformFeePercent(ctx context.Context) (float64, error) {
	setting, err := s.repo.Get(ctx, models.SettingPlatformFeePercent)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("service.PlatformFeePercent: %w", err)
	}

	// A fee over 100% would push invoice net amounts negative.
	percent, err := strconv.ParseFloat(setting.Value, 64)
	if err != nil || percent < 0 || percent > 100 {
		log.Printf("invalid %s value %q, falling back to 0", models.SettingPlatformFeePercent, setting.Value)
		return 0, nil
	}
	return percent, nil
}

func (s *Service) ListSettings(ctx context.Context) ([]*models.Setting, error) {
	list, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ListSettings: %w", err)
	}
	return list, nil
}

func (s *Service) UpsertSetting(ctx context.Context, key, value string) (*models.Setting, error) {
	setting, err := s.repo.Upsert(ctx, key, value)
	if err != nil {
		return nil, fmt.Errorf("service.UpsertSetting: %w", err)
	}
	return setting, nil
}
