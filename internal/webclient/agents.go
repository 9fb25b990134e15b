package webclient

import (
	"math/rand"
	"time"
)

// defaultAgents is the pool rotated across outgoing requests so the
// aggregate traffic does not look like a single scripted client.
var defaultAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64)",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7)",
	"Mozilla/5.0 (X11; Linux x86_64)",
	"Mozilla/5.0 (iPhone; CPU iPhone OS 14_0 like Mac OS X)",
}

// AgentProvider supplies the User-Agent header for a single request attempt.
type AgentProvider interface {
	UserAgent() string
}

type rotatingAgents struct {
	pool []string
	rnd  *rand.Rand
}

// NewRotatingAgents picks a random agent from the pool on every call.
// An empty pool falls back to the built-in one.
func NewRotatingAgents(pool []string) AgentProvider {
	if len(pool) == 0 {
		pool = defaultAgents
	}
	return &rotatingAgents{
		pool: pool,
		rnd:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *rotatingAgents) UserAgent() string {
	return r.pool[r.rnd.Intn(len(r.pool))]
}

// StaticAgent always reports the same User-Agent. Used in tests.
type StaticAgent string

func (a StaticAgent) UserAgent() string { return string(a) }
