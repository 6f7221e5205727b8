package geocoder

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/YoussefElshafei/BridgeAid-Project/internal/config"
	"github.com/YoussefElshafei/BridgeAid-Project/internal/observability"
	"github.com/YoussefElshafei/BridgeAid-Project/internal/service"
	"github.com/sirupsen/logrus"
)

// NominatimClient реализует service.Geocoder поверх OSM Nominatim
type NominatimClient struct {
	baseURL      string
	countryCodes string
	userAgent    string
	httpClient   *http.Client
	logger       *logrus.Logger
}

// NewNominatimClient создает клиент геокодера из конфигурации приложения
func NewNominatimClient(cfg *config.Config, logger *logrus.Logger) *NominatimClient {
	return &NominatimClient{
		baseURL:      cfg.GeocoderBaseURL,
		countryCodes: cfg.GeocoderCountryCodes,
		userAgent:    cfg.GeocoderUserAgent,
		httpClient: &http.Client{
			Timeout: cfg.GeocoderTimeout,
		},
		logger: logger,
	}
}

// Geocode преобразует свободный адрес в координаты. Пустой результат
// означает, что провайдер не нашел адрес (не ошибка транспорта).
func (c *NominatimClient) Geocode(ctx context.Context, address string) (service.GeocodeResult, error) {
	params := url.Values{
		"q":              {address},
		"format":         {"jsonv2"},
		"limit":          {"1"},
		"addressdetails": {"0"},
		"accept-language": {"en"},
	}
	if c.countryCodes != "" {
		params.Set("countrycodes", c.countryCodes)
	}

	fullURL := fmt.Sprintf("%s/search?%s", c.baseURL, params.Encode())

	resp, err := c.doRequest(ctx, fullURL)
	if err != nil {
		observability.GeocodeRequests.WithLabelValues("error").Inc()
		return service.GeocodeResult{}, err
	}
	defer resp.Body.Close()

	// Nominatim троттлит анонимных клиентов; одна повторная попытка после паузы
	if resp.StatusCode == http.StatusTooManyRequests {
		resp.Body.Close()
		select {
		case <-ctx.Done():
			return service.GeocodeResult{}, ctx.Err()
		case <-time.After(1200 * time.Millisecond):
		}
		resp, err = c.doRequest(ctx, fullURL)
		if err != nil {
			observability.GeocodeRequests.WithLabelValues("error").Inc()
			return service.GeocodeResult{}, err
		}
		defer resp.Body.Close()
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		observability.GeocodeRequests.WithLabelValues("error").Inc()
		return service.GeocodeResult{}, fmt.Errorf("nominatim API error: status %d: %s", resp.StatusCode, body)
	}

	var places []place
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		observability.GeocodeRequests.WithLabelValues("error").Inc()
		return service.GeocodeResult{}, fmt.Errorf("failed to decode nominatim response: %w", err)
	}

	if len(places) == 0 {
		observability.GeocodeRequests.WithLabelValues("empty").Inc()
		return service.GeocodeResult{}, nil
	}

	lat, err := strconv.ParseFloat(places[0].Lat, 64)
	if err != nil {
		return service.GeocodeResult{}, fmt.Errorf("failed to parse nominatim latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(places[0].Lon, 64)
	if err != nil {
		return service.GeocodeResult{}, fmt.Errorf("failed to parse nominatim longitude: %w", err)
	}

	observability.GeocodeRequests.WithLabelValues("success").Inc()
	return service.GeocodeResult{
		Latitude:    roundCoord(lat),
		Longitude:   roundCoord(lng),
		DisplayName: places[0].DisplayName,
		Found:       true,
	}, nil
}

func (c *NominatimClient) doRequest(ctx context.Context, fullURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create geocode request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode request failed: %w", err)
	}
	return resp, nil
}

// roundCoord округляет координату до 6 знаков, как отдает провайдер
func roundCoord(v float64) float64 {
	f, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 6, 64), 64)
	return f
}

// Типы ответа Nominatim. Координаты приходят строками.
type place struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}
