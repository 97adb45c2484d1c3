package repositories

import (
	"context"
	"errors"

	"github.com/delsur-bakery/delsur-store/remote"
)

// fallbackEligible reports whether a remote failure permits degrading
// to a local-only operation: connectivity-class errors and 5xx
// responses qualify, 4xx responses are authoritative rejections and
// never do. Cancellation is not a remote failure and propagates.
func fallbackEligible(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var apiErr *remote.APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500
	}
	return true
}
