package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/YoussefElshafei/BridgeAid-Project/internal/models"
	"github.com/YoussefElshafei/BridgeAid-Project/internal/service"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

const confirmedCacheKey = "incidents:confirmed"

type ReportRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewReportRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.ReportRepository {
	return &ReportRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// WithTx выполняет fn в одной транзакции бд
func (r *ReportRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return runInTx(ctx, r.db, fn)
}

// AcquireIngestLock берет advisory-лок на тип инцидента до конца транзакции.
// Сериализует find-or-create кластера между конкурентными сообщениями.
func (r *ReportRepository) AcquireIngestLock(ctx context.Context, incidentType string) error {
	_, err := conn(ctx, r.db).Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1));`, incidentType)
	if err != nil {
		return fmt.Errorf("failed to acquire ingest lock: %w", err)
	}
	return nil
}

// IsReporterThrottled проверяет, есть ли неистекший маркер кулдауна
func (r *ReportRepository) IsReporterThrottled(ctx context.Context, reporterID uuid.UUID, incidentType, bucket string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM rate_limits
			WHERE reporter_id = $1 AND incident_type = $2 AND bucket = $3 AND expires_at > NOW()
		);
	`
	var throttled bool
	err := conn(ctx, r.db).QueryRow(ctx, query, reporterID, incidentType, bucket).Scan(&throttled)
	if err != nil {
		return false, fmt.Errorf("failed to check rate limit: %w", err)
	}
	return throttled, nil
}

// UpsertRateLimit создает или продлевает маркер кулдауна
func (r *ReportRepository) UpsertRateLimit(ctx context.Context, entry *models.RateLimitEntry) error {
	query := `
		INSERT INTO rate_limits (reporter_id, incident_type, bucket, expires_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (reporter_id, incident_type, bucket) DO UPDATE SET expires_at = EXCLUDED.expires_at;
	`
	_, err := conn(ctx, r.db).Exec(ctx, query, entry.ReporterID, entry.IncidentType, entry.Bucket, entry.ExpiresAt)
	if err != nil {
		return fmt.Errorf("failed to upsert rate limit entry: %w", err)
	}
	return nil
}

// CreateReport сохраняет неизменяемую запись сообщения
func (r *ReportRepository) CreateReport(ctx context.Context, report *models.Report) error {
	query := `
		INSERT INTO reports (id, reporter_id, incident_type, address, location, submitted_at)
		VALUES ($1, $2, $3, $4, ST_SetSRID(ST_MakePoint($5, $6), 4326), $7);
	`
	_, err := conn(ctx, r.db).Exec(ctx, query,
		report.ID,
		report.ReporterID,
		report.IncidentType,
		report.Address,
		report.Longitude,
		report.Latitude,
		report.SubmittedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	return nil
}

// FindClustersNear находит кластеры того же типа, чей центроид лежит в радиусе
// от точки, упорядоченные по расстоянию, затем по времени создания
func (r *ReportRepository) FindClustersNear(ctx context.Context, incidentType string, lat, lng float64, radiusMeters int) ([]*models.ClusterCandidate, error) {
	query := `
		SELECT
			id,
			incident_type,
			ST_Y(centroid::geometry) as latitude,
			ST_X(centroid::geometry) as longitude,
			report_count,
			confirmed,
			created_at,
			last_report_at,
			ST_Distance(centroid, ST_SetSRID(ST_MakePoint($2, $3), 4326)::geography) as distance_meters
		FROM incident_clusters
		WHERE
			incident_type = $1
			AND ST_DWithin(
				centroid,
				ST_SetSRID(ST_MakePoint($2, $3), 4326)::geography,
				$4
			)
		ORDER BY distance_meters, created_at;
	`
	rows, err := conn(ctx, r.db).Query(ctx, query, incidentType, lng, lat, radiusMeters)
	if err != nil {
		return nil, fmt.Errorf("failed to find clusters near point: %w", err)
	}
	defer rows.Close()

	candidates := make([]*models.ClusterCandidate, 0)
	for rows.Next() {
		candidate := &models.ClusterCandidate{Cluster: &models.IncidentCluster{}}
		err := rows.Scan(
			&candidate.Cluster.ID,
			&candidate.Cluster.IncidentType,
			&candidate.Cluster.Latitude,
			&candidate.Cluster.Longitude,
			&candidate.Cluster.ReportCount,
			&candidate.Cluster.Confirmed,
			&candidate.Cluster.CreatedAt,
			&candidate.Cluster.LastReportAt,
			&candidate.DistanceMeters,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cluster candidate row: %w", err)
		}
		candidates = append(candidates, candidate)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error cluster candidates iteration: %w", err)
	}
	return candidates, nil
}

// CreateCluster создает новый кластер с центроидом в точке первого сообщения
func (r *ReportRepository) CreateCluster(ctx context.Context, cluster *models.IncidentCluster) error {
	query := `
		INSERT INTO incident_clusters (incident_type, centroid, last_report_at)
		VALUES ($1, ST_SetSRID(ST_MakePoint($2, $3), 4326), NOW())
		RETURNING id, report_count, confirmed, created_at, last_report_at;
	`
	err := conn(ctx, r.db).QueryRow(ctx, query,
		cluster.IncidentType,
		cluster.Longitude,
		cluster.Latitude,
	).Scan(&cluster.ID, &cluster.ReportCount, &cluster.Confirmed, &cluster.CreatedAt, &cluster.LastReportAt)
	if err != nil {
		return fmt.Errorf("failed to create cluster: %w", err)
	}
	return nil
}

// AddClusterMember добавляет репортера в кластер (повтор того же репортера не
// меняет уникальный счетчик) и возвращает число уникальных репортеров
func (r *ReportRepository) AddClusterMember(ctx context.Context, clusterID, reporterID uuid.UUID, reportedAt time.Time) (int, error) {
	q := conn(ctx, r.db)

	insertQuery := `
		INSERT INTO cluster_members (cluster_id, reporter_id, first_reported_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (cluster_id, reporter_id) DO NOTHING;
	`
	if _, err := q.Exec(ctx, insertQuery, clusterID, reporterID, reportedAt); err != nil {
		return 0, fmt.Errorf("failed to add cluster member: %w", err)
	}

	updateQuery := `
		UPDATE incident_clusters SET
			report_count = (SELECT COUNT(*) FROM cluster_members WHERE cluster_id = $1),
			last_report_at = $2
		WHERE id = $1
		RETURNING report_count;
	`
	var distinct int
	if err := q.QueryRow(ctx, updateQuery, clusterID, reportedAt).Scan(&distinct); err != nil {
		return 0, fmt.Errorf("failed to update cluster counters: %w", err)
	}
	return distinct, nil
}

// ConfirmCluster помечает кластер подтвержденным; переход необратим
func (r *ReportRepository) ConfirmCluster(ctx context.Context, clusterID uuid.UUID) error {
	cmdTag, err := conn(ctx, r.db).Exec(ctx, `UPDATE incident_clusters SET confirmed = TRUE WHERE id = $1;`, clusterID)
	if err != nil {
		return fmt.Errorf("failed to confirm cluster: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("cluster with id %s not found for confirm", clusterID)
	}
	return nil
}

// ListConfirmed возвращает подтвержденные кластеры, самые свежие первыми.
// Вторичная сортировка по id делает порядок детерминированным.
func (r *ReportRepository) ListConfirmed(ctx context.Context) ([]*models.IncidentCluster, error) {
	query := `
		SELECT
			id,
			incident_type,
			ST_Y(centroid::geometry) as latitude,
			ST_X(centroid::geometry) as longitude,
			report_count,
			confirmed,
			created_at,
			last_report_at
		FROM incident_clusters
		WHERE confirmed = TRUE
		ORDER BY last_report_at DESC, id;
	`
	rows, err := conn(ctx, r.db).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list confirmed clusters: %w", err)
	}
	defer rows.Close()

	clusters := make([]*models.IncidentCluster, 0)
	for rows.Next() {
		cluster := &models.IncidentCluster{}
		err := rows.Scan(
			&cluster.ID,
			&cluster.IncidentType,
			&cluster.Latitude,
			&cluster.Longitude,
			&cluster.ReportCount,
			&cluster.Confirmed,
			&cluster.CreatedAt,
			&cluster.LastReportAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan confirmed cluster row: %w", err)
		}
		clusters = append(clusters, cluster)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error confirmed clusters iteration: %w", err)
	}
	return clusters, nil
}

// CountReports возвращает общее число принятых сообщений
func (r *ReportRepository) CountReports(ctx context.Context) (int, error) {
	var count int
	err := conn(ctx, r.db).QueryRow(ctx, `SELECT COUNT(*) FROM reports;`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count reports: %w", err)
	}
	return count, nil
}

// GetStats возвращает агрегаты: все отчеты, подтвержденные кластеры и
// уникальных репортеров за последние minutes минут
func (r *ReportRepository) GetStats(ctx context.Context, minutes int) (*models.IncidentStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM reports),
			(SELECT COUNT(*) FROM incident_clusters WHERE confirmed = TRUE),
			(SELECT COUNT(DISTINCT reporter_id) FROM reports WHERE submitted_at >= NOW() - ($1 * INTERVAL '1 minute'));
	`
	stats := &models.IncidentStats{}
	err := conn(ctx, r.db).QueryRow(ctx, query, minutes).Scan(&stats.ReportCount, &stats.ConfirmedCount, &stats.ReporterCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return stats, nil
		}
		return nil, fmt.Errorf("failed to get incident stats: %w", err)
	}
	return stats, nil
}

// GetConfirmedFromCache пытается получить ленту подтвержденных из Redis
func (r *ReportRepository) GetConfirmedFromCache(ctx context.Context) ([]*models.IncidentCluster, error) {
	val, err := r.redisClient.Get(ctx, confirmedCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get confirmed clusters from cache: %w", err)
	}

	clusters := make([]*models.IncidentCluster, 0)
	if err := json.Unmarshal(val, &clusters); err != nil {
		return nil, fmt.Errorf("failed to unmarshal confirmed clusters from cache: %w", err)
	}
	return clusters, nil
}

// SetConfirmedCache сохраняет уже упорядоченную ленту подтвержденных в Redis
func (r *ReportRepository) SetConfirmedCache(ctx context.Context, clusters []*models.IncidentCluster) error {
	val, err := json.Marshal(clusters)
	if err != nil {
		return fmt.Errorf("failed to marshal confirmed clusters for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, confirmedCacheKey, val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set confirmed clusters in cache: %w", err)
	}
	return nil
}

// InvalidateConfirmedCache удаляет ленту подтвержденных из Redis кэша
func (r *ReportRepository) InvalidateConfirmedCache(ctx context.Context) error {
	if err := r.redisClient.Del(ctx, confirmedCacheKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate confirmed clusters cache: %w", err)
	}
	return nil
}
