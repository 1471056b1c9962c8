package marketplace

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"shujia/models"

	"go.uber.org/zap"
)

// Client is the remote marketplace API consumed by the booking flow. Every
// call is attempted exactly once; retries are the caller's decision.
type Client interface {
	ServiceBySlug(ctx context.Context, slug string) (*models.HomeService, error)
	SubmitBookingTransaction(ctx context.Context, tx BookingTransaction) (*models.TransactionReceipt, error)
}

// HTTPClient implements Client over the marketplace REST API.
type HTTPClient struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

func NewHTTPClient(baseURL string, timeout time.Duration, logger *zap.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

type serviceEnvelope struct {
	Data models.HomeService `json:"data"`
}

// ServiceBySlug fetches one priced service record via GET /service/{slug}.
func (c *HTTPClient) ServiceBySlug(ctx context.Context, slug string) (*models.HomeService, error) {
	u := c.baseURL + "/service/" + url.PathEscape(slug)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("marketplace: failed to build service request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("marketplace: service %q lookup failed: %w", slug, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("marketplace: service %q lookup: status=%d body=%s", slug, resp.StatusCode, string(body))
	}

	var envelope serviceEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("marketplace: failed to decode service %q: %w", slug, err)
	}
	return &envelope.Data, nil
}
