// Package pipeline wires the extractors, resolver, quote fetcher,
// aggregator and writer into one sequential run.
package pipeline

import (
	"context"
	"log"

	"github.com/mgrube/employerstocks/internal/analysis"
	"github.com/mgrube/employerstocks/internal/models"
	"github.com/mgrube/employerstocks/internal/report"
)

type Extractor interface {
	Name() string
	Extract(ctx context.Context) ([]string, error)
}

type Resolver interface {
	Resolve(ctx context.Context, name string) models.Resolution
}

type Quotes interface {
	Fetch(ctx context.Context, companyName, ticker string) models.Snapshot
}

type Writer interface {
	Write(path string, sheets ...report.Sheet) error
}

type Service interface {
	Run(ctx context.Context) error
}

// Processing is strictly sequential: the politeness pacing only works if
// requests are spaced out, which parallel lookups would undo.
type service struct {
	sourceA    Extractor
	sourceB    Extractor
	resolver   Resolver
	quotes     Quotes
	writer     Writer
	outputPath string

	cache map[string]models.Snapshot
}

func NewService(sourceA, sourceB Extractor, resolver Resolver, quotes Quotes, writer Writer, outputPath string) Service {
	return &service{
		sourceA:    sourceA,
		sourceB:    sourceB,
		resolver:   resolver,
		quotes:     quotes,
		writer:     writer,
		outputPath: outputPath,
		cache:      make(map[string]models.Snapshot),
	}
}

// Run executes the full pipeline. Per-company failures only degrade the
// affected rows; the one fatal outcome is a workbook that cannot be
// written.
func (s *service) Run(ctx context.Context) error {
	setA := s.collect(ctx, s.sourceA)
	setB := s.collect(ctx, s.sourceB)

	setA, setB, common := analysis.Aggregate(setA, setB)
	log.Printf("Aggregated %d + %d companies, %d on both lists", len(setA), len(setB), len(common))

	return s.writer.Write(s.outputPath,
		report.Sheet{Name: s.sourceA.Name(), Rows: setA},
		report.Sheet{Name: s.sourceB.Name(), Rows: setB},
		report.Sheet{Name: "Common Employers", Rows: common},
	)
}

func (s *service) collect(ctx context.Context, source Extractor) analysis.ResultSet {
	names, err := source.Extract(ctx)
	if err != nil {
		log.Printf("Extracting %s list failed: %v, continuing with empty set", source.Name(), err)
		return nil
	}
	log.Printf("%s: %d companies found", source.Name(), len(names))

	set := make(analysis.ResultSet, 0, len(names))
	for _, name := range names {
		set = append(set, s.snapshot(ctx, name))
	}
	return set
}

// snapshot memoizes by raw name so a company appearing on both lists is
// resolved and fetched only once.
func (s *service) snapshot(ctx context.Context, name string) models.Snapshot {
	if snap, ok := s.cache[name]; ok {
		return snap
	}
	snap := s.lookup(ctx, name)
	s.cache[name] = snap
	return snap
}

func (s *service) lookup(ctx context.Context, name string) models.Snapshot {
	res := s.resolver.Resolve(ctx, name)
	switch res.State {
	case models.Resolved:
		snap := s.quotes.Fetch(ctx, name, res.Ticker)
		log.Printf("%s (%s): %s", name, res.Ticker, snap.Status)
		return snap
	case models.ResolutionFailed:
		log.Printf("Ticker lookup for %s gave up: %v", name, res.Err)
	default:
		log.Printf("No ticker found for %s", name)
	}
	return models.NoTickerSnapshot(name)
}
