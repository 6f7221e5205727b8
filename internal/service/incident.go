package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/YoussefElshafei/BridgeAid-Project/internal/config"
	"github.com/YoussefElshafei/BridgeAid-Project/internal/models"
	"github.com/YoussefElshafei/BridgeAid-Project/internal/observability"
	"github.com/YoussefElshafei/BridgeAid-Project/internal/webhook"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
)

// GeocodeResult - результат прямого геокодирования адреса
type GeocodeResult struct {
	Latitude    float64
	Longitude   float64
	DisplayName string
	Found       bool
}

// Geocoder определяет контракт внешнего геокодера (OSM Nominatim)
type Geocoder interface {
	Geocode(ctx context.Context, address string) (GeocodeResult, error)
}

// ReportRepository определяет контракт для работы с бд сообщений и кластеров.
// Методы, вызванные внутри WithTx, выполняются в одной транзакции.
type ReportRepository interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	AcquireIngestLock(ctx context.Context, incidentType string) error
	IsReporterThrottled(ctx context.Context, reporterID uuid.UUID, incidentType, bucket string) (bool, error)
	UpsertRateLimit(ctx context.Context, entry *models.RateLimitEntry) error
	CreateReport(ctx context.Context, report *models.Report) error
	FindClustersNear(ctx context.Context, incidentType string, lat, lng float64, radiusMeters int) ([]*models.ClusterCandidate, error)
	CreateCluster(ctx context.Context, cluster *models.IncidentCluster) error
	AddClusterMember(ctx context.Context, clusterID, reporterID uuid.UUID, reportedAt time.Time) (int, error)
	ConfirmCluster(ctx context.Context, clusterID uuid.UUID) error
	ListConfirmed(ctx context.Context) ([]*models.IncidentCluster, error)
	CountReports(ctx context.Context) (int, error)
	GetStats(ctx context.Context, windowMinutes int) (*models.IncidentStats, error)
	GetConfirmedFromCache(ctx context.Context) ([]*models.IncidentCluster, error)
	SetConfirmedCache(ctx context.Context, clusters []*models.IncidentCluster) error
	InvalidateConfirmedCache(ctx context.Context) error
}

// SubmitResult - итог приема сообщения: сам отчет, кластер, в который он
// попал, и признак того, что кластер подтвердился именно этим сообщением
type SubmitResult struct {
	Report         *models.Report
	Cluster        *models.IncidentCluster
	NewlyConfirmed bool
}

// ConfirmedFeed - публичная лента подтвержденных инцидентов с итогами
type ConfirmedFeed struct {
	Confirmed    []*models.IncidentCluster
	TotalReports int
}

// IncidentService определяет контракт бизнес-логики приема и подтверждения сообщений
type IncidentService interface {
	SubmitReport(ctx context.Context, reporterID uuid.UUID, incidentType, address string) (*SubmitResult, error)
	ListConfirmed(ctx context.Context) (*ConfirmedFeed, error)
	ListIncidentTypes() []string
	GetStats(ctx context.Context) (*models.IncidentStats, error)
}

type incidentService struct {
	repo      ReportRepository
	geocoder  Geocoder
	logger    *logrus.Logger
	cfg       *config.Config
	publisher webhook.ConfirmationPublisher
	clock     clockwork.Clock
}

func NewIncidentService(repo ReportRepository, geocoder Geocoder, logger *logrus.Logger, cfg *config.Config, publisher webhook.ConfirmationPublisher, clock clockwork.Clock) IncidentService {
	return &incidentService{
		repo:      repo,
		geocoder:  geocoder,
		logger:    logger,
		cfg:       cfg,
		publisher: publisher,
		clock:     clock,
	}
}

// rateLimitBucket квантует координаты для ключа кулдауна: три знака после
// запятой дают ячейку ~110 м, сопоставимую с радиусом кластеризации
func rateLimitBucket(lat, lng float64) string {
	return fmt.Sprintf("%.3f:%.3f", lat, lng)
}

// SubmitReport принимает сырое сообщение: валидация типа, геокодирование
// адреса, затем в одной транзакции - проверка кулдауна, сохранение отчета,
// поиск или создание кластера и проверка порога подтверждения
func (s *incidentService) SubmitReport(ctx context.Context, reporterID uuid.UUID, incidentType, address string) (*SubmitResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "incident",
		"method":        "SubmitReport",
		"reporter_id":   reporterID,
		"incident_type": incidentType,
	})
	log.Info("Accepting incident report")

	incidentType = strings.TrimSpace(incidentType)
	address = strings.TrimSpace(address)

	if !models.IsValidIncidentType(incidentType) {
		observability.ReportsRejected.WithLabelValues("invalid_type").Inc()
		return nil, ErrInvalidIncidentType
	}
	if address == "" {
		observability.ReportsRejected.WithLabelValues("missing_address").Inc()
		return nil, ErrAddressRequired
	}

	geo, err := s.geocoder.Geocode(ctx, address)
	if err != nil {
		log.WithError(err).Error("Geocoder request failed")
		return nil, fmt.Errorf("service: could not geocode address: %w", err)
	}
	if !geo.Found {
		log.WithField("address", address).Warn("Address could not be resolved")
		observability.ReportsRejected.WithLabelValues("unresolvable_address").Inc()
		return nil, ErrUnresolvableAddress
	}

	resolvedAddress := geo.DisplayName
	if resolvedAddress == "" {
		resolvedAddress = address
	}

	now := s.clock.Now().UTC()
	bucket := rateLimitBucket(geo.Latitude, geo.Longitude)

	result := &SubmitResult{}

	txErr := s.repo.WithTx(ctx, func(ctx context.Context) error {
		// Сериализуем find-or-create по типу инцидента; лок снимается на коммите
		if err := s.repo.AcquireIngestLock(ctx, incidentType); err != nil {
			return fmt.Errorf("acquire ingest lock: %w", err)
		}

		throttled, err := s.repo.IsReporterThrottled(ctx, reporterID, incidentType, bucket)
		if err != nil {
			return fmt.Errorf("check rate limit: %w", err)
		}
		if throttled {
			return ErrReportThrottled
		}

		report := &models.Report{
			ID:           uuid.New(),
			ReporterID:   reporterID,
			IncidentType: incidentType,
			Address:      resolvedAddress,
			Latitude:     geo.Latitude,
			Longitude:    geo.Longitude,
			SubmittedAt:  now,
		}
		if err := s.repo.CreateReport(ctx, report); err != nil {
			return fmt.Errorf("create report: %w", err)
		}
		result.Report = report

		cluster, err := s.findOrCreateCluster(ctx, report)
		if err != nil {
			return err
		}

		distinct, err := s.repo.AddClusterMember(ctx, cluster.ID, reporterID, now)
		if err != nil {
			return fmt.Errorf("add cluster member: %w", err)
		}
		cluster.ReportCount = distinct
		cluster.LastReportAt = now

		// Переход Unconfirmed -> Confirmed терминален и срабатывает ровно
		// на пороговом уникальном репортере
		if !cluster.Confirmed && distinct >= s.cfg.ConfirmThreshold {
			if err := s.repo.ConfirmCluster(ctx, cluster.ID); err != nil {
				return fmt.Errorf("confirm cluster: %w", err)
			}
			cluster.Confirmed = true
			result.NewlyConfirmed = true
		}
		result.Cluster = cluster

		// Кулдаун фиксируется той же транзакцией, что и принятый отчет
		return s.repo.UpsertRateLimit(ctx, &models.RateLimitEntry{
			ReporterID:   reporterID,
			IncidentType: incidentType,
			Bucket:       bucket,
			ExpiresAt:    now.Add(s.cfg.ReportCooldown),
		})
	})
	if txErr != nil {
		if errors.Is(txErr, ErrReportThrottled) {
			log.Warn("Report throttled by cooldown")
			observability.ReportsThrottled.Inc()
			return nil, ErrReportThrottled
		}
		log.WithError(txErr).Error("Failed to ingest report")
		return nil, fmt.Errorf("service: could not ingest report: %w", txErr)
	}

	observability.ReportsAccepted.WithLabelValues(incidentType).Inc()

	// Производное состояние обновляется после коммита: его потеря не
	// нарушает атомарность, кэш пересоберется на следующем чтении
	if result.Cluster.Confirmed {
		if err := s.repo.InvalidateConfirmedCache(ctx); err != nil {
			log.WithError(err).Warn("Failed to invalidate confirmed incidents cache")
		}
	}
	if result.NewlyConfirmed {
		observability.ClustersConfirmed.Inc()
		log.WithFields(logrus.Fields{
			"cluster_id":   result.Cluster.ID,
			"report_count": result.Cluster.ReportCount,
		}).Info("Incident cluster confirmed")

		if err := s.publisher.Publish(ctx, webhook.ConfirmationEvent{
			ClusterID:    result.Cluster.ID,
			IncidentType: result.Cluster.IncidentType,
			Latitude:     result.Cluster.Latitude,
			Longitude:    result.Cluster.Longitude,
			ReportCount:  result.Cluster.ReportCount,
			ConfirmedAt:  now,
		}); err != nil {
			log.WithError(err).Warn("Failed to enqueue confirmation webhook")
		}
	}

	log.WithFields(logrus.Fields{
		"report_id":  result.Report.ID,
		"cluster_id": result.Cluster.ID,
		"confirmed":  result.Cluster.Confirmed,
	}).Info("Report accepted")
	return result, nil
}

// findOrCreateCluster присоединяет отчет к ближайшему кластеру того же типа
// в пределах радиуса (при равных расстояниях - к более раннему) или создает
// новый кластер с центроидом в точке отчета
func (s *incidentService) findOrCreateCluster(ctx context.Context, report *models.Report) (*models.IncidentCluster, error) {
	candidates, err := s.repo.FindClustersNear(ctx, report.IncidentType, report.Latitude, report.Longitude, s.cfg.ClusterRadiusMeters)
	if err != nil {
		return nil, fmt.Errorf("find clusters near: %w", err)
	}
	if len(candidates) > 0 {
		return candidates[0].Cluster, nil
	}

	cluster := &models.IncidentCluster{
		IncidentType: report.IncidentType,
		Latitude:     report.Latitude,
		Longitude:    report.Longitude,
	}
	if err := s.repo.CreateCluster(ctx, cluster); err != nil {
		return nil, fmt.Errorf("create cluster: %w", err)
	}
	return cluster, nil
}

// ListConfirmed возвращает только подтвержденные кластеры, упорядоченные по
// last_report_at по убыванию; неподтвержденный кластер наружу не попадает никогда
func (s *incidentService) ListConfirmed(ctx context.Context) (*ConfirmedFeed, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ListConfirmed",
	})

	clusters, err := s.repo.GetConfirmedFromCache(ctx)
	if err != nil {
		log.WithError(err).Warn("Failed to read confirmed incidents cache")
	}
	if clusters == nil {
		clusters, err = s.repo.ListConfirmed(ctx)
		if err != nil {
			log.WithError(err).Error("Failed to list confirmed incidents from repository")
			return nil, fmt.Errorf("service: could not list confirmed incidents: %w", err)
		}
		if err := s.repo.SetConfirmedCache(ctx, clusters); err != nil {
			log.WithError(err).Warn("Failed to cache confirmed incidents")
		}
	}

	total, err := s.repo.CountReports(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to count reports")
		return nil, fmt.Errorf("service: could not count reports: %w", err)
	}

	return &ConfirmedFeed{Confirmed: clusters, TotalReports: total}, nil
}

// ListIncidentTypes возвращает фиксированный набор типов для клиента
func (s *incidentService) ListIncidentTypes() []string {
	return models.IncidentTypes
}

// GetStats возвращает агрегированную статистику за настроенное окно
func (s *incidentService) GetStats(ctx context.Context) (*models.IncidentStats, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "GetStats",
	})

	stats, err := s.repo.GetStats(ctx, s.cfg.StatsTimeWindowMinutes)
	if err != nil {
		log.WithError(err).Error("Failed to get stats from repository")
		return nil, fmt.Errorf("service: could not get stats: %w", err)
	}
	return stats, nil
}
