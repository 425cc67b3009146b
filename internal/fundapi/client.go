package fundapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fondpulse/fondpulse/internal/domain/models"
)

// ErrFundNotFound is returned when the upstream API reports no such fund.
var ErrFundNotFound = errors.New("fund not found")

// Client defines the contract for fetching raw daily price records from the
// upstream fund API. The service layer depends on this interface so tests can
// substitute a stub without network access.
type Client interface {
	// FetchDailyRecords retrieves every available daily record for a fund.
	// Individual malformed records are NOT an error here; the normalizer
	// decides record-by-record what is usable.
	FetchDailyRecords(ctx context.Context, fundID int) ([]models.RawRecord, error)

	// Ping checks upstream reachability for the readiness probe.
	Ping(ctx context.Context) error
}

// HTTPClient is the production Client backed by net/http.
//
// The upstream endpoint is GET {baseURL}/funds/{id}/prices. Two response
// shapes are in the wild and both are accepted:
//   - a bare JSON array of records
//   - a JSON:API style envelope {"data": [ ... ]}
//
// Records themselves are decoded as loose maps; unknown fields never fail
// the fetch.
type HTTPClient struct {
	baseURL string
	httpc   *http.Client
}

// NewHTTPClient builds an HTTPClient for the given base URL. The timeout
// bounds the whole request (connect, redirect, body read).
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: timeout},
	}
}

// FetchDailyRecords implements Client.
//
// Errors:
//   - transport failures and non-2xx statuses are returned wrapped.
//   - a 404 maps to ErrFundNotFound so handlers can answer precisely.
//   - a body that is neither a record array nor a data envelope is an error;
//     this is a broken upstream, not a malformed record.
func (c *HTTPClient) FetchDailyRecords(ctx context.Context, fundID int) ([]models.RawRecord, error) {
	url := fmt.Sprintf("%s/funds/%d/prices", c.baseURL, fundID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch fund %d: %w", fundID, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("fund %d: %w", fundID, ErrFundNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch fund %d: unexpected status %d", fundID, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response for fund %d: %w", fundID, err)
	}

	records, err := decodeRecords(body)
	if err != nil {
		return nil, fmt.Errorf("decode response for fund %d: %w", fundID, err)
	}
	return records, nil
}

// Ping implements Client. Any response from the upstream root counts as
// reachable; only transport errors and 5xx statuses degrade readiness.
func (c *HTTPClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return fmt.Errorf("build ping request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("ping fund api: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("ping fund api: status %d", resp.StatusCode)
	}
	return nil
}

// CloseIdle releases idle keep-alive connections. Used as the app cleanup
// hook on shutdown.
func (c *HTTPClient) CloseIdle() {
	c.httpc.CloseIdleConnections()
}

// decodeRecords accepts either a bare record array or a {"data": [...]}
// envelope and returns the raw records.
func decodeRecords(body []byte) ([]models.RawRecord, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var records []models.RawRecord
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, err
		}
		return records, nil
	}

	var envelope struct {
		Data []models.RawRecord `json:"data"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, err
	}
	if envelope.Data == nil {
		return nil, errors.New("response has no data array")
	}
	return envelope.Data, nil
}
