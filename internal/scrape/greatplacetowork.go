package scrape

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const greatPlaceToWorkURL = "https://www.greatplacetowork.com/best-workplaces/100-best/2025"

// GreatPlaceToWorkExtractor scrapes the "100 Best Companies to Work For"
// ranking. Company names live in a.link.h5 anchors on that page.
type GreatPlaceToWorkExtractor struct {
	client pageGetter
	url    string
}

func NewGreatPlaceToWorkExtractor(client pageGetter) *GreatPlaceToWorkExtractor {
	return &GreatPlaceToWorkExtractor{client: client, url: greatPlaceToWorkURL}
}

func (e *GreatPlaceToWorkExtractor) Name() string { return "Great Place To Work" }

func (e *GreatPlaceToWorkExtractor) Extract(ctx context.Context) ([]string, error) {
	body, err := e.client.Get(ctx, e.url)
	if err != nil {
		return nil, fmt.Errorf("fetching Great Place To Work list: %w", err)
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing Great Place To Work page: %w", err)
	}

	var names []string
	doc.Find("a.link.h5").Each(func(_ int, s *goquery.Selection) {
		name := strings.TrimSpace(s.Text())
		if name == "" || len(name) >= 100 {
			return
		}
		names = append(names, name)
	})
	return names, nil
}
