// Package marketdata resolves company names to tickers and fetches quote
// snapshots from the Yahoo Finance public endpoints.
package marketdata

import (
	"context"
	"fmt"
	"net/url"

	"github.com/mgrube/employerstocks/internal/models"
)

const searchBaseURL = "https://query2.finance.yahoo.com/v1/finance/search"

type jsonGetter interface {
	GetJSON(ctx context.Context, url string, out any) error
}

// Resolver looks up the ticker symbol for a free-text company name.
type Resolver struct {
	client  jsonGetter
	baseURL string
}

func NewResolver(client jsonGetter) *Resolver {
	return &Resolver{client: client, baseURL: searchBaseURL}
}

// Resolve returns the first equity match for the name. No equity match is a
// normal Unresolved outcome; only an exhausted lookup is a failure. Either
// way the caller keeps going.
func (r *Resolver) Resolve(ctx context.Context, name string) models.Resolution {
	lookupURL := fmt.Sprintf("%s?q=%s", r.baseURL, url.QueryEscape(name))

	var result struct {
		Quotes []struct {
			Symbol    string `json:"symbol"`
			QuoteType string `json:"quoteType"`
		} `json:"quotes"`
	}
	if err := r.client.GetJSON(ctx, lookupURL, &result); err != nil {
		return models.FailedResolution(fmt.Errorf("ticker search for %q: %w", name, err))
	}

	for _, q := range result.Quotes {
		if q.QuoteType == "EQUITY" && q.Symbol != "" {
			return models.ResolvedAs(q.Symbol)
		}
	}
	return models.NoMatch()
}
