package geocoder

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/YoussefElshafei/BridgeAid-Project/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient поднимает httptest-сервер вместо Nominatim
func newTestClient(t *testing.T, handler http.HandlerFunc) (*NominatimClient, *httptest.Server) {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		GeocoderBaseURL:      server.URL,
		GeocoderCountryCodes: "ca",
		GeocoderUserAgent:    "BridgeAid/1.0",
		GeocoderTimeout:      5 * time.Second,
	}
	return NewNominatimClient(cfg, logger), server
}

func TestGeocode_Success(t *testing.T) {
	// Подготовка
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		// Проверяем параметры запроса и обязательный User-Agent
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "123 Main St", r.URL.Query().Get("q"))
		assert.Equal(t, "jsonv2", r.URL.Query().Get("format"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		assert.Equal(t, "ca", r.URL.Query().Get("countrycodes"))
		assert.Equal(t, "BridgeAid/1.0", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat":"43.6532", "lon":"-79.3832", "display_name":"123 Main St, Toronto, Ontario, Canada"}]`))
	})

	// Действие
	result, err := client.Geocode(context.Background(), "123 Main St")

	// Проверки
	require.NoError(t, err)
	assert.True(t, result.Found)
	assert.Equal(t, 43.6532, result.Latitude)
	assert.Equal(t, -79.3832, result.Longitude)
	assert.Equal(t, "123 Main St, Toronto, Ontario, Canada", result.DisplayName)
}

func TestGeocode_EmptyResult(t *testing.T) {
	// Подготовка
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})

	// Действие
	result, err := client.Geocode(context.Background(), "nowhere at all")

	// Проверки: пустой ответ - не ошибка транспорта
	require.NoError(t, err)
	assert.False(t, result.Found)
}

func TestGeocode_RetriesAfterTooManyRequests(t *testing.T) {
	// Подготовка: первый запрос троттлится, второй проходит
	var calls atomic.Int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat":"43.6532", "lon":"-79.3832", "display_name":"123 Main St"}]`))
	})

	// Действие
	result, err := client.Geocode(context.Background(), "123 Main St")

	// Проверки
	require.NoError(t, err)
	assert.True(t, result.Found)
	assert.Equal(t, int32(2), calls.Load())
}

func TestGeocode_ServerError(t *testing.T) {
	// Подготовка
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	// Действие
	result, err := client.Geocode(context.Background(), "123 Main St")

	// Проверки
	require.Error(t, err)
	assert.False(t, result.Found)
	assert.ErrorContains(t, err, "nominatim API error")
}

func TestGeocode_MalformedCoordinates(t *testing.T) {
	// Подготовка
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat":"not-a-number", "lon":"-79.3832"}]`))
	})

	// Действие
	_, err := client.Geocode(context.Background(), "123 Main St")

	// Проверки
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to parse nominatim latitude")
}

func TestGeocodeCacheKey_Normalization(t *testing.T) {
	// Регистр и лишние пробелы не плодят отдельных ключей
	assert.Equal(t, cacheKey("123 Main St"), cacheKey("  123   MAIN st "))
	assert.Equal(t, "geocode:123 main st", cacheKey("123 Main St"))
}
