package service

import (
	"context"
	"fmt"

	"github.com/YoussefElshafei/BridgeAid-Project/internal/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// AidRepository определяет контракт для работы с бд запросов помощи
type AidRepository interface {
	CreateAidRequest(ctx context.Context, request *models.AidRequest) error
	ListAidRequests(ctx context.Context) ([]*models.AidRequest, error)
}

// AidService определяет контракт приема запросов помощи
type AidService interface {
	SubmitAidRequest(ctx context.Context, request *models.AidRequest) error
	ListAidRequests(ctx context.Context) ([]*models.AidRequest, error)
}

type aidService struct {
	repo   AidRepository
	logger *logrus.Logger
}

func NewAidService(repo AidRepository, logger *logrus.Logger) AidService {
	return &aidService{
		repo:   repo,
		logger: logger,
	}
}

// SubmitAidRequest сохраняет запрос помощи; срочность по умолчанию - medium
func (s *aidService) SubmitAidRequest(ctx context.Context, request *models.AidRequest) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "aid",
		"method":  "SubmitAidRequest",
		"user_id": request.UserID,
	})

	if request.Urgency == "" {
		request.Urgency = "medium"
	}
	if !models.IsValidAidUrgency(request.Urgency) {
		return ErrInvalidAidUrgency
	}

	request.ID = uuid.New()
	if err := s.repo.CreateAidRequest(ctx, request); err != nil {
		log.WithError(err).Error("Failed to create aid request in repository")
		return fmt.Errorf("service: could not submit aid request: %w", err)
	}

	log.WithFields(logrus.Fields{
		"request_id": request.ID,
		"urgency":    request.Urgency,
	}).Info("Aid request submitted successfully")
	return nil
}

// ListAidRequests возвращает все запросы помощи для координаторов
func (s *aidService) ListAidRequests(ctx context.Context) ([]*models.AidRequest, error) {
	requests, err := s.repo.ListAidRequests(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list aid requests from repository")
		return nil, fmt.Errorf("service: could not list aid requests: %w", err)
	}
	return requests, nil
}
