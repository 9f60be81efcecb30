package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// WeatherService calls the forecast API keyed by prefecture city code.
// Callers treat every failure the same way (degrade to a placeholder),
// so errors here only need to be distinguishable in logs.
type WeatherService struct {
	baseURL    string
	httpClient *http.Client
}

func NewWeatherService(baseURL string) *WeatherService {
	return &WeatherService{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

type forecastResponse struct {
	Forecasts []struct {
		Telop string `json:"telop"`
	} `json:"forecasts"`
}

// Fetch returns today's short weather description (telop) for a city
// code. No retries; the call is bounded by the client timeout and the
// request context.
func (s *WeatherService) Fetch(ctx context.Context, cityCode string) (string, error) {
	url := fmt.Sprintf("%s/api/forecast?city=%s", s.baseURL, cityCode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("weather API error (status %d)", resp.StatusCode)
	}

	var forecast forecastResponse
	if err := json.Unmarshal(body, &forecast); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	if len(forecast.Forecasts) == 0 {
		return "", fmt.Errorf("weather API returned no forecasts")
	}

	return forecast.Forecasts[0].Telop, nil
}
