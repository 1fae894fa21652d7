package settings

import (
	"context"
	"encoding/json"

	"github.com/attendly-app/attendly-lambda/internal/config"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Service interface {
	Get(ctx context.Context, professorID uuid.UUID) (*ProfessorSettings, error)
	Update(ctx context.Context, professorID uuid.UUID, dto UpdateSettingsDTO) (*ProfessorSettings, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Get returns the professor's settings, creating the default row on first
// access so callers never see a missing-settings state.
func (s *service) Get(ctx context.Context, professorID uuid.UUID) (*ProfessorSettings, error) {
	log := config.WithContext(ctx)

	existing, err := s.repo.FindByProfessorID(professorID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	defaults := defaultSettings(professorID)
	if err := s.repo.Create(defaults); err != nil {
		// Lost a create race; the row exists now.
		if again, findErr := s.repo.FindByProfessorID(professorID); findErr == nil && again != nil {
			return again, nil
		}
		log.WithError(err).Error("Failed to create default settings")
		return nil, err
	}
	return defaults, nil
}

func (s *service) Update(ctx context.Context, professorID uuid.UUID, dto UpdateSettingsDTO) (*ProfessorSettings, error) {
	log := config.WithContext(ctx)

	current, err := s.Get(ctx, professorID)
	if err != nil {
		return nil, err
	}

	if dto.DefaultGracePeriod != nil {
		current.DefaultGracePeriod = *dto.DefaultGracePeriod
	}
	if dto.DefaultMaxAttempts != nil {
		current.DefaultMaxAttempts = *dto.DefaultMaxAttempts
	}
	if dto.Notifications != nil {
		raw, err := json.Marshal(dto.Notifications)
		if err != nil {
			return nil, err
		}
		current.Notifications = datatypes.JSON(raw)
	}
	if dto.PushToken != nil {
		encrypted, err := config.Encrypt(*dto.PushToken)
		if err != nil {
			log.WithError(err).Error("Failed to encrypt push token")
			return nil, err
		}
		current.PushToken = &encrypted
	}

	if err := s.repo.Update(current); err != nil {
		log.WithError(err).Error("Failed to update settings")
		return nil, err
	}
	return current, nil
}

func defaultSettings(professorID uuid.UUID) *ProfessorSettings {
	raw, _ := json.Marshal(NotificationPreferences{
		EnableEmailNotifications: true,
		EnablePushNotifications:  false,
		NotifyOnFraudDetection:   true,
	})
	return &ProfessorSettings{
		ID:                 uuid.New(),
		ProfessorID:        professorID,
		DefaultGracePeriod: 15,
		DefaultMaxAttempts: 3,
		Notifications:      datatypes.JSON(raw),
	}
}
