package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/volunteer-hub/internal/domain"
	"github.com/spec-kit/volunteer-hub/internal/repository"
)

// Volunteer form failures surfaced as plain text by the handler. Datastore
// details stay in the server log only.
var (
	ErrVolunteerFields = errors.New("Заполните имя, фамилию и email.")
	ErrVolunteerSave   = errors.New("Ошибка при сохранении данных")
)

// VolunteerService handles the standalone volunteers write path.
type VolunteerService struct {
	repo   repository.VolunteerRepository
	logger *zap.Logger
}

// NewVolunteerService builds the service.
func NewVolunteerService(repo repository.VolunteerRepository, logger *zap.Logger) *VolunteerService {
	return &VolunteerService{repo: repo, logger: logger}
}

// VolunteerForm is the submitted sign-up form.
type VolunteerForm struct {
	FirstName string
	LastName  string
	Email     string
	City      string
}

// Save validates the form and inserts one volunteers row. First name, last
// name and email are required after trimming; city is optional.
func (s *VolunteerService) Save(ctx context.Context, form VolunteerForm) (*domain.Volunteer, error) {
	volunteer := &domain.Volunteer{
		FirstName: strings.TrimSpace(form.FirstName),
		LastName:  strings.TrimSpace(form.LastName),
		Email:     strings.TrimSpace(form.Email),
		City:      strings.TrimSpace(form.City),
	}
	if volunteer.FirstName == "" || volunteer.LastName == "" || volunteer.Email == "" {
		return nil, ErrVolunteerFields
	}

	if err := s.repo.Create(ctx, volunteer); err != nil {
		s.logger.Error("volunteer insert failed", zap.Error(err))
		return nil, ErrVolunteerSave
	}
	return volunteer, nil
}
