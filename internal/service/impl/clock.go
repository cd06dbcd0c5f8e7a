package impl

import (
	"context"
	"math/rand/v2"
	"time"
)

// sleepContext waits for d or until the context is done. Services take it as
// an injectable field so tests can simulate time instead of waiting it out.
func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func randomFloat() float64 { return rand.Float64() }
