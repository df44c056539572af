package ai

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/papervault/papervault/internal/common"
)

// HTTPStatusError carries a non-200 provider response.
type HTTPStatusError struct {
	Operation  string
	StatusCode int
	Status     string
	Body       string
}

func (e *HTTPStatusError) Error() string {
	if strings.TrimSpace(e.Body) == "" {
		return fmt.Sprintf("provider %s: %s", e.Operation, e.Status)
	}
	return fmt.Sprintf("provider %s: %s: %s", e.Operation, e.Status, e.Body)
}

func isRetryableHTTPStatus(code int) bool {
	switch code {
	case http.StatusRequestTimeout, http.StatusTooManyRequests:
		return true
	}
	return code >= 500
}

// classifyProviderError collapses whatever went wrong into the pipeline's
// single tagged error value. Timeouts, rate limits, 5xx and an open breaker
// are transient; everything else from the provider is terminal.
func classifyProviderError(op string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return common.NewTransientError(op+" timed out", err)
	}
	if IsCircuitOpen(err) {
		return common.NewTransientError(op+" rejected by open circuit", err)
	}

	var statusErr *HTTPStatusError
	if errors.As(err, &statusErr) {
		if isRetryableHTTPStatus(statusErr.StatusCode) {
			return common.NewTransientError(op+" provider unavailable", err)
		}
		return common.NewInternalError(op+" provider rejected request", err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return common.NewTransientError(op+" network timeout", err)
	}

	// Connection resets and refused dials surface as *url.Error wrapping an
	// *net.OpError; treat any network-layer failure as transient.
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return common.NewTransientError(op+" network failure", err)
	}

	return common.NewInternalError(op+" failed", err)
}
