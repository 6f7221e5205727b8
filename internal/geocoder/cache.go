package geocoder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/YoussefElshafei/BridgeAid-Project/internal/observability"
	"github.com/YoussefElshafei/BridgeAid-Project/internal/service"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// CachedGeocoder оборачивает Geocoder кэшем в Redis, чтобы не упираться
// в лимиты Nominatim на повторных адресах
type CachedGeocoder struct {
	inner       service.Geocoder
	redisClient *redis.Client
	ttl         time.Duration
	logger      *logrus.Logger
}

// NewCachedGeocoder создает кэширующий декоратор вокруг геокодера
func NewCachedGeocoder(inner service.Geocoder, redisClient *redis.Client, ttl time.Duration, logger *logrus.Logger) *CachedGeocoder {
	return &CachedGeocoder{
		inner:       inner,
		redisClient: redisClient,
		ttl:         ttl,
		logger:      logger,
	}
}

// Geocode отдает результат из кэша или спрашивает провайдера.
// Пустые результаты не кэшируются, чтобы временные промахи можно было повторить.
func (c *CachedGeocoder) Geocode(ctx context.Context, address string) (service.GeocodeResult, error) {
	key := cacheKey(address)

	val, err := c.redisClient.Get(ctx, key).Bytes()
	if err == nil {
		var result service.GeocodeResult
		if err := json.Unmarshal(val, &result); err == nil {
			observability.GeocodeCache.WithLabelValues("hit").Inc()
			return result, nil
		}
		c.logger.WithField("key", key).Warn("Failed to unmarshal cached geocode result")
	} else if !errors.Is(err, redis.Nil) {
		c.logger.WithError(err).Warn("Failed to read geocode cache")
	}
	observability.GeocodeCache.WithLabelValues("miss").Inc()

	result, err := c.inner.Geocode(ctx, address)
	if err != nil {
		return result, err
	}

	if result.Found {
		payload, err := json.Marshal(result)
		if err == nil {
			if err := c.redisClient.Set(ctx, key, payload, c.ttl).Err(); err != nil {
				c.logger.WithError(err).Warn("Failed to write geocode cache")
			}
		}
	}
	return result, nil
}

// cacheKey нормализует адрес: нижний регистр, схлопнутые пробелы
func cacheKey(address string) string {
	normalized := strings.Join(strings.Fields(strings.ToLower(address)), " ")
	return fmt.Sprintf("geocode:%s", normalized)
}
