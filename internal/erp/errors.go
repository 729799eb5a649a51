package erp

import (
	"fmt"

	"github.com/pragavigithub/EmeraldBarcode20260113/internal/apperrors"
)

// newRejectedError wraps a non-success service layer response so callers can
// match it with errors.Is(err, apperrors.ErrERPRejected).
func newRejectedError(status int, body []byte) error {
	msg := string(body)
	if len(msg) > 512 {
		msg = msg[:512]
	}
	return fmt.Errorf("%w: status %d: %s", apperrors.ErrERPRejected, status, msg)
}
