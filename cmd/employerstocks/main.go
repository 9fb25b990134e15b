package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"github.com/mgrube/employerstocks/internal/config"
	"github.com/mgrube/employerstocks/internal/marketdata"
	"github.com/mgrube/employerstocks/internal/pipeline"
	"github.com/mgrube/employerstocks/internal/report"
	"github.com/mgrube/employerstocks/internal/scrape"
	"github.com/mgrube/employerstocks/internal/webclient"
)

func main() {
	outputFlag := flag.String("output", "", "destination path for the workbook (overrides OUTPUT_PATH)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if *outputFlag != "" {
		cfg.OutputPath = *outputFlag
	}

	client := webclient.New(webclient.Options{
		Timeout:       cfg.HTTPTimeout,
		MaxRetries:    cfg.MaxRetries,
		BackoffMin:    cfg.BackoffMin,
		BackoffMax:    cfg.BackoffMax,
		PolitenessMin: cfg.PolitenessMin,
		PolitenessMax: cfg.PolitenessMax,
	})

	svc := pipeline.NewService(
		scrape.NewForbesExtractor(client),
		scrape.NewGreatPlaceToWorkExtractor(client),
		marketdata.NewResolver(client),
		marketdata.NewQuotes(client),
		report.NewWriter(),
		cfg.OutputPath,
	)

	if err := svc.Run(context.Background()); err != nil {
		var writeErr *report.WriteError
		if errors.As(err, &writeErr) {
			log.Fatalf("Could not write workbook: %v", writeErr)
		}
		log.Fatalf("Run failed: %v", err)
	}
	log.Printf("Workbook written to %s", cfg.OutputPath)
}
