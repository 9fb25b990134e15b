package scrape

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const forbesURL = "https://www.forbes.com/sites/rachelpeachman/2025/03/19/the-top-100-americas-best-large-employers-of--2025/"

// Entries matching these are page furniture picked up by the selector,
// not company names.
var forbesExcludeKeywords = []string{
	"contributor", "editor", "subscribe", "photo", "watch", "video", "2025",
}

// ForbesExtractor scrapes "America's Best Large Employers" from Forbes.
// Company names live in strong[data-ga-track] tags on that page.
type ForbesExtractor struct {
	client pageGetter
	url    string
}

func NewForbesExtractor(client pageGetter) *ForbesExtractor {
	return &ForbesExtractor{client: client, url: forbesURL}
}

func (e *ForbesExtractor) Name() string { return "Forbes Employers" }

func (e *ForbesExtractor) Extract(ctx context.Context) ([]string, error) {
	body, err := e.client.Get(ctx, e.url)
	if err != nil {
		return nil, fmt.Errorf("fetching Forbes list: %w", err)
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing Forbes page: %w", err)
	}

	var raw []string
	doc.Find("strong[data-ga-track]").Each(func(_ int, s *goquery.Selection) {
		raw = append(raw, strings.TrimSpace(s.Text()))
	})

	names := mergeApostropheFragments(dedupe(filterForbesNames(raw)))
	if len(names) > 100 {
		names = names[:100]
	}
	return names, nil
}

func filterForbesNames(raw []string) []string {
	var out []string
	for _, name := range raw {
		if name == "" || len(name) >= 60 {
			continue
		}
		lower := strings.ToLower(name)
		if containsAny(lower, forbesExcludeKeywords) {
			continue
		}
		if isNumeric(name) {
			continue
		}
		if strings.HasPrefix(lower, "by ") {
			continue
		}
		out = append(out, name)
	}
	return out
}

// The page markup splits possessive names ("McDonald's") into the name and
// a trailing apostrophe fragment; glue them back together.
func mergeApostropheFragments(names []string) []string {
	out := make([]string, 0, len(names))
	for i := 0; i < len(names); i++ {
		name := names[i]
		if i+1 < len(names) {
			switch strings.ToLower(names[i+1]) {
			case "s", "'s", "’s":
				name += "'s"
				i++
			}
		}
		out = append(out, name)
	}
	return out
}

// isNumeric reports whether the entry is a bare rank number like "7" or "7.".
func isNumeric(s string) bool {
	s = strings.Replace(s, ".", "", 1)
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
