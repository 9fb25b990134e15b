package webclient

import (
	"context"
	"math/rand"
	"time"
)

// Pacer inserts a randomized politeness pause between independent lookups,
// keeping the aggregate request rate low. Retries within one lookup are
// delayed by the backoff policy instead.
type Pacer struct {
	min, max time.Duration

	sleep func(context.Context, time.Duration) error
	rnd   func() float64
}

func NewPacer(min, max time.Duration) *Pacer {
	return &Pacer{min: min, max: max, sleep: sleepContext, rnd: rand.Float64}
}

// Wait blocks for a uniformly random duration within the configured range,
// or until the context is canceled.
func (p *Pacer) Wait(ctx context.Context) error {
	if p == nil || p.max <= 0 {
		return nil
	}
	d := p.min
	if p.max > p.min {
		d += time.Duration(p.rnd() * float64(p.max-p.min))
	}
	return p.sleep(ctx, d)
}

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
