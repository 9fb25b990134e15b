package webclient

import "time"

// uniformBackOff waits a uniformly random interval within [min, max]
// between attempts. Unlike an exponential policy it never grows, which
// keeps the worst-case lookup time bounded.
type uniformBackOff struct {
	min, max time.Duration
	rnd      func() float64
}

func (b *uniformBackOff) NextBackOff() time.Duration {
	if b.max <= b.min {
		return b.min
	}
	return b.min + time.Duration(b.rnd()*float64(b.max-b.min))
}

func (b *uniformBackOff) Reset() {}
