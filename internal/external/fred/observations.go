package fred

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/solonmacro/solonmacro.github.io/pkg/httputil"
)

// FetchLatest fetches the most recent observation for a series and returns
// its numeric value and source-provided date. Failures come back as *Error
// with a kind from the taxonomy in errors.go; retryable kinds are retried
// up to the configured attempt budget with the schedule in backoffDelay.
func (c *Client) FetchLatest(ctx context.Context, seriesID string) (*float64, string, error) {
	if c.apiKey == "" {
		return nil, "", newError(KindConfiguration, "credential not configured")
	}

	var lastErr *Error

	for attempt := 0; attempt < c.maxAttempts; attempt++ {
		value, date, err := c.fetchOnce(ctx, seriesID)
		if err == nil {
			return value, date, nil
		}

		var ferr *Error
		if !errors.As(err, &ferr) {
			ferr = newError(KindTransient, "%s", err.Error())
		}
		lastErr = ferr

		if !ferr.Retryable() {
			return nil, "", ferr
		}

		// Last attempt failed - don't retry
		if attempt == c.maxAttempts-1 {
			break
		}

		backoff := backoffDelay(ferr.Kind, attempt)
		c.logger.WithError(ferr).WithFields(map[string]interface{}{
			"series_id": seriesID,
			"attempt":   attempt + 1,
			"max":       c.maxAttempts,
			"backoff":   backoff,
		}).Debug("Retrying FRED API call")

		if err := c.sleep(ctx, backoff); err != nil {
			return nil, "", newError(KindTransient, "fetch canceled: %s", err.Error())
		}
	}

	return nil, "", &Error{
		Kind:    lastErr.Kind,
		Message: fmt.Sprintf("%s (after %d attempts)", lastErr.Message, c.maxAttempts),
	}
}

// fetchOnce performs a single GET for the newest observation of a series.
func (c *Client) fetchOnce(ctx context.Context, seriesID string) (*float64, string, error) {
	q := url.Values{}
	q.Set("series_id", seriesID)
	q.Set("api_key", c.apiKey)
	q.Set("file_type", "json")
	q.Set("units", "lin")
	q.Set("limit", "1")
	q.Set("sort_order", "desc")

	reqURL := fmt.Sprintf("%s/fred/series/observations?%s", c.baseURL, q.Encode())

	resp, err := c.http.Get(ctx, reqURL)
	if err != nil {
		// Timeouts and connection failures are worth another attempt.
		return nil, "", newError(KindTransient, "request failed: %s", err.Error())
	}
	defer resp.Body.Close()

	if err := classifyStatus(resp.StatusCode); err != nil {
		return nil, "", err
	}

	var result observationsResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, "", newError(KindMalformed, "malformed response body: %s", err.Error())
	}

	// A clean response with no observations is terminal for the series;
	// it does not consume a retry because the parse already succeeded.
	if len(result.Observations) == 0 {
		return nil, "", newError(KindDataAbsent, "no observations returned for %s", seriesID)
	}

	obs := result.Observations[0]
	if obs.Value == MissingValueSentinel || obs.Value == "" {
		return nil, "", newError(KindDataAbsent, "missing/NA value for %s on %s", seriesID, obs.Date)
	}

	value, err := strconv.ParseFloat(obs.Value, 64)
	if err != nil {
		return nil, "", newError(KindDataAbsent, "could not parse value %q for %s", obs.Value, seriesID)
	}

	return &value, obs.Date, nil
}

// classifyStatus maps a non-200 HTTP status to a tagged error.
func classifyStatus(code int) *Error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusBadRequest:
		return newError(KindPermanent, "bad request (HTTP 400)")
	case code == http.StatusUnauthorized:
		return newError(KindPermanent, "invalid API key (HTTP 401)")
	case code == http.StatusTooManyRequests:
		return newError(KindRateLimited, "rate limited (HTTP 429)")
	case httputil.IsRetryableStatus(code):
		return newError(KindTransient, "server error (HTTP %d)", code)
	default:
		return newError(KindPermanent, "unexpected status (HTTP %d)", code)
	}
}

// backoffDelay returns the wait before retrying after 0-based attempt i:
// 2^(i+2) seconds after a rate limit, a flat second after an undecodable
// body, 2^i seconds after any other retryable failure.
func backoffDelay(kind ErrorKind, attempt int) time.Duration {
	switch kind {
	case KindRateLimited:
		return time.Duration(1<<(attempt+2)) * time.Second
	case KindMalformed:
		return time.Second
	default:
		return time.Duration(1<<attempt) * time.Second
	}
}
