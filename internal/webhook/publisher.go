package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	confirmationQueueKey = "confirmation_events"
)

// ConfirmationEvent - полезная нагрузка вебхука о подтверждении кластера
type ConfirmationEvent struct {
	ClusterID    uuid.UUID `json:"cluster_id"`
	IncidentType string    `json:"incident_type"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	ReportCount  int       `json:"report_count"`
	ConfirmedAt  time.Time `json:"confirmed_at"`
}

// ConfirmationPublisher - интерфейс для публикации событий подтверждения
type ConfirmationPublisher interface {
	Publish(ctx context.Context, event ConfirmationEvent) error
}

// RedisConfirmationPublisher - реализация ConfirmationPublisher, использующая Redis
type RedisConfirmationPublisher struct {
	redisClient *redis.Client
}

// NewRedisConfirmationPublisher создает новый RedisConfirmationPublisher
func NewRedisConfirmationPublisher(client *redis.Client) *RedisConfirmationPublisher {
	return &RedisConfirmationPublisher{
		redisClient: client,
	}
}

// Publish публикует событие подтверждения в очередь Redis
func (p *RedisConfirmationPublisher) Publish(ctx context.Context, event ConfirmationEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal confirmation event: %w", err)
	}

	// Используем LPUSH для добавления события в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, confirmationQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish confirmation event to Redis: %w", err)
	}
	return nil
}
