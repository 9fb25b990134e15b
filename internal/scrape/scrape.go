// Package scrape extracts ordered company-name lists from the two public
// "best employer" rankings.
package scrape

import (
	"context"
	"strings"
)

// Extractor produces the ordered company names of one source list.
type Extractor interface {
	Name() string
	Extract(ctx context.Context) ([]string, error)
}

type pageGetter interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

func dedupe(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
