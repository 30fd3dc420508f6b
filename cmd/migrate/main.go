// Command migrate applies the declarative schema in migrations/ to the
// configured database using the atlas CLI.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"salon-reserve/internal/handler/middleware"
	"salon-reserve/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

func main() {
	var (
		schemaFile = flag.String("schema", "file://migrations/001_initial_schema.sql", "desired schema URL")
		devURL     = flag.String("dev-url", "docker://postgres/16/dev?search_path=public", "dev database used to normalize the schema")
		atlasBin   = flag.String("atlas", "atlas", "path to the atlas binary")
		dryRun     = flag.Bool("dry-run", false, "print the plan without applying it")
		timeout    = flag.Duration("timeout", 2*time.Minute, "overall timeout")
	)
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	wd, err := os.Getwd()
	if err != nil {
		logger.Error("failed to resolve working directory", "error", err)
		os.Exit(1)
	}
	client, err := atlasexec.NewClient(wd, *atlasBin)
	if err != nil {
		logger.Error("failed to initialize atlas client", "error", err)
		os.Exit(1)
	}

	res, err := client.SchemaApply(ctx, &atlasexec.SchemaApplyParams{
		URL:         cfg.DB.BuildDSN(),
		To:          *schemaFile,
		DevURL:      *devURL,
		DryRun:      *dryRun,
		AutoApprove: true,
	})
	if err != nil {
		logger.Error("schema apply failed", "error", err)
		os.Exit(1)
	}

	for _, stmt := range res.Changes.Pending {
		logger.Info("planned", "statement", stmt)
	}
	logger.Info("schema applied",
		"applied", len(res.Changes.Applied),
		"pending", len(res.Changes.Pending),
		"dry_run", *dryRun,
	)
}
