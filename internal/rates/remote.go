// Package rates implements exchange rate resolution: a live HTTP source with
// an optional Redis cache in front, degrading to a static reference table.
package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

var _ RateSource = (*RemoteSource)(nil)

// RemoteSource fetches rates from the convert-rate HTTP API.
type RemoteSource struct {
	baseURL string
	client  *http.Client
}

// NewRemoteSource creates a new RemoteSource.
func NewRemoteSource(baseURL string, timeoutSec int) *RemoteSource {
	if timeoutSec <= 0 {
		timeoutSec = 5
	}
	return &RemoteSource{
		baseURL: baseURL,
		client:  &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
	}
}

type convertRateResponse struct {
	Rate decimal.Decimal `json:"rate"`
}

// GetRate retrieves the exchange rate for the given currency pair.
// One request per call, no retry.
func (s *RemoteSource) GetRate(ctx context.Context, from, to string) (decimal.Decimal, time.Time, error) {
	reqURL := fmt.Sprintf("%s/convert-rate?from=%s&to=%s&amount=1", s.baseURL, from, to)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return decimal.Decimal{}, time.Time{}, fmt.Errorf("rate API request creation failed: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return decimal.Decimal{}, time.Time{}, fmt.Errorf("rate API request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return decimal.Decimal{}, time.Time{}, fmt.Errorf("rate API returned status %d: %s", resp.StatusCode, string(body))
	}

	var result convertRateResponse
	if err = json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return decimal.Decimal{}, time.Time{}, fmt.Errorf("failed to decode rate API response: %w", err)
	}

	if !result.Rate.IsPositive() {
		return decimal.Decimal{}, time.Time{}, fmt.Errorf("rate API returned non-positive rate %s for %s/%s", result.Rate, from, to)
	}

	return result.Rate, time.Now().UTC(), nil
}
