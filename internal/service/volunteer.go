package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/YoussefElshafei/BridgeAid-Project/internal/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// VolunteerRepository определяет контракт для работы с бд волонтеров
type VolunteerRepository interface {
	CreateVolunteer(ctx context.Context, volunteer *models.Volunteer) error
	ListVolunteers(ctx context.Context) ([]*models.Volunteer, error)
}

// VolunteerService определяет контракт регистрации волонтеров
type VolunteerService interface {
	RegisterVolunteer(ctx context.Context, userID uuid.UUID, email, legalName, location, category string) (*models.Volunteer, error)
	ListVolunteers(ctx context.Context) ([]*models.Volunteer, error)
}

type volunteerService struct {
	repo   VolunteerRepository
	logger *logrus.Logger
}

func NewVolunteerService(repo VolunteerRepository, logger *logrus.Logger) VolunteerService {
	return &volunteerService{
		repo:   repo,
		logger: logger,
	}
}

// RegisterVolunteer регистрирует пользователя волонтером, не более одного раза
func (s *volunteerService) RegisterVolunteer(ctx context.Context, userID uuid.UUID, email, legalName, location, category string) (*models.Volunteer, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "volunteer",
		"method":  "RegisterVolunteer",
		"user_id": userID,
	})

	category = strings.TrimSpace(category)
	if !models.IsValidVolunteerCategory(category) {
		return nil, ErrInvalidVolunteerCategory
	}

	volunteer := &models.Volunteer{
		ID:        uuid.New(),
		UserID:    userID,
		Email:     email,
		LegalName: strings.TrimSpace(legalName),
		Location:  strings.TrimSpace(location),
		Category:  category,
	}
	if err := s.repo.CreateVolunteer(ctx, volunteer); err != nil {
		if errors.Is(err, ErrVolunteerExists) {
			log.Warn("Duplicate volunteer registration attempt")
			return nil, ErrVolunteerExists
		}
		log.WithError(err).Error("Failed to create volunteer in repository")
		return nil, fmt.Errorf("service: could not register volunteer: %w", err)
	}

	log.WithField("volunteer_id", volunteer.ID).Info("Volunteer registered successfully")
	return volunteer, nil
}

// ListVolunteers возвращает всех зарегистрированных волонтеров
func (s *volunteerService) ListVolunteers(ctx context.Context) ([]*models.Volunteer, error) {
	volunteers, err := s.repo.ListVolunteers(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list volunteers from repository")
		return nil, fmt.Errorf("service: could not list volunteers: %w", err)
	}
	return volunteers, nil
}
