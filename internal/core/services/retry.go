package services

import (
	"context"
	"errors"
	"time"

	"github.com/SscSPs/advisor_client_app/internal/apperrors"
	"github.com/sethvargo/go-retry"
)

// rerollDelay is the pause between identifier attempts. go-retry rejects a zero delay.
const rerollDelay = time.Millisecond

// errReroll marks an attempt whose generated value was already taken.
var errReroll = errors.New("generated value collided")

// rerollBackoff allows exactly maxAttempts calls of the attempt function.
func rerollBackoff(maxAttempts uint64) retry.Backoff {
	if maxAttempts == 0 {
		maxAttempts = 1
	}
	return retry.WithMaxRetries(maxAttempts-1, retry.NewConstant(rerollDelay))
}

// reroll calls attempt until it succeeds, fails with a non-collision error, or maxAttempts
// collisions have been seen. Exhaustion is reported as apperrors.ErrIdentifierExhausted.
func reroll(ctx context.Context, maxAttempts uint64, attempt func(ctx context.Context) error) error {
	err := retry.Do(ctx, rerollBackoff(maxAttempts), func(ctx context.Context) error {
		err := attempt(ctx)
		if errors.Is(err, errReroll) || errors.Is(err, apperrors.ErrIdentifierConflict) {
			return retry.RetryableError(err)
		}
		return err
	})
	if errors.Is(err, errReroll) || errors.Is(err, apperrors.ErrIdentifierConflict) {
		return apperrors.ErrIdentifierExhausted
	}
	return err
}
