package webclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Client is the shared rate-limited HTTP client behind every outgoing
// request: page scrapes, ticker searches and quote fetches. Each logical
// Get is paced by the politeness delay, retried on transient failures with
// a randomized backoff, and sends a rotating User-Agent per attempt.
type Client struct {
	http       *http.Client
	agents     AgentProvider
	pacer      *Pacer
	maxRetries int
	backoffMin time.Duration
	backoffMax time.Duration

	timer backoff.Timer // nil outside tests
	rnd   func() float64
}

type Options struct {
	Timeout       time.Duration
	MaxRetries    int // attempts per lookup before giving up
	BackoffMin    time.Duration
	BackoffMax    time.Duration
	PolitenessMin time.Duration
	PolitenessMax time.Duration
	Agents        AgentProvider
}

func New(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.MaxRetries < 1 {
		opts.MaxRetries = 3
	}
	if opts.Agents == nil {
		opts.Agents = NewRotatingAgents(nil)
	}
	return &Client{
		http:       &http.Client{Timeout: opts.Timeout},
		agents:     opts.Agents,
		pacer:      NewPacer(opts.PolitenessMin, opts.PolitenessMax),
		maxRetries: opts.MaxRetries,
		backoffMin: opts.BackoffMin,
		backoffMax: opts.BackoffMax,
		rnd:        rand.Float64,
	}
}

// Get performs one paced, retried GET and returns the response body.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	if err := c.pacer.Wait(ctx); err != nil {
		return nil, err
	}

	var body []byte
	attempt := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("User-Agent", c.agents.UserAgent())

		resp, err := c.http.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if isTransientStatus(resp.StatusCode) {
			return fmt.Errorf("upstream returned %s", resp.Status)
		}
		if resp.StatusCode != http.StatusOK {
			return backoff.Permanent(fmt.Errorf("unexpected status %s", resp.Status))
		}

		body, err = io.ReadAll(resp.Body)
		return err
	}

	notify := func(err error, wait time.Duration) {
		log.Printf("Request to %s failed: %v, retrying in %s", url, err, wait.Round(time.Millisecond))
	}
	policy := backoff.WithContext(
		backoff.WithMaxRetries(
			&uniformBackOff{min: c.backoffMin, max: c.backoffMax, rnd: c.rnd},
			uint64(c.maxRetries-1),
		),
		ctx,
	)
	if err := backoff.RetryNotifyWithTimer(attempt, policy, notify, c.timer); err != nil {
		return nil, err
	}
	return body, nil
}

// GetJSON performs Get and decodes the body into out.
func (c *Client) GetJSON(ctx context.Context, url string, out any) error {
	body, err := c.Get(ctx, url)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, out)
}

// Rate limiting and server hiccups are worth retrying; other client
// errors are not.
func isTransientStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}
