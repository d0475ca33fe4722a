package llm

import (
	"context"
	"errors"
	"net"
	"net/http"
	"syscall"

	anthropic "github.com/anthropics/anthropic-sdk-go"

	"github.com/heartmarshall/cerego-backend/internal/domain"
)

// IsTransient reports whether err is a transport-level failure worth
// retrying: connection establishment, read/write timeouts, rate limits
// and provider-side 5xx. Schema violations are never transient — the
// provider answered, just wrongly.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, domain.ErrSchemaViolation) {
		return false
	}

	var apierr *anthropic.Error
	if errors.As(err, &apierr) {
		switch {
		case apierr.StatusCode == http.StatusRequestTimeout,
			apierr.StatusCode == http.StatusTooManyRequests,
			apierr.StatusCode >= http.StatusInternalServerError:
			return true
		}
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	if errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.EPIPE) {
		return true
	}

	// Per-request timeouts surface as a deadline error from the SDK.
	return errors.Is(err, context.DeadlineExceeded)
}
