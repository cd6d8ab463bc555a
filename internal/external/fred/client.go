package fred

import (
	"context"
	"time"

	"github.com/solonmacro/solonmacro.github.io/pkg/config"
	"github.com/solonmacro/solonmacro.github.io/pkg/httputil"
	"github.com/solonmacro/solonmacro.github.io/pkg/logger"
)

// MissingValueSentinel is the marker FRED returns for observations that
// exist but carry no value.
const MissingValueSentinel = "."

// Client handles communication with the FRED (Federal Reserve Economic
// Data) observations API. FRED API calls go through this client only.
// The credential is injected at construction; nothing here reads the
// process environment.
type Client struct {
	http        *httputil.Client
	logger      *logger.Logger
	apiKey      string
	baseURL     string
	maxAttempts int

	// sleep is replaceable in tests so backoff schedules can be asserted
	// without waiting them out.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewClient creates a new FRED API client from config.
func NewClient(cfg *config.Config, log *logger.Logger) *Client {
	httpc := httputil.NewWithTimeout(log, cfg.FRED.Timeout).
		WithRateLimit(cfg.FRED.RatePerSec, 1)

	return &Client{
		http:        httpc,
		logger:      log,
		apiKey:      cfg.FRED.APIKey,
		baseURL:     cfg.FRED.BaseURL,
		maxAttempts: cfg.FRED.MaxAttempts,
		sleep:       sleepContext,
	}
}

// observationsResponse is the FRED series/observations response envelope.
type observationsResponse struct {
	Count        int           `json:"count"`
	Observations []Observation `json:"observations"`
}

// Observation is one (date, value) record as FRED returns it. Value is a
// string on the wire; "." marks a missing value.
type Observation struct {
	Date  string `json:"date"`
	Value string `json:"value"`
}

// sleepContext waits for d or until the context is done.
func sleepContext(ctx context.Context, d time.Duration) error {
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
