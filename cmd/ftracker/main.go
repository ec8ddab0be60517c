package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/meltforce/ftracker/internal/config"
	"github.com/meltforce/ftracker/internal/ingest"
	"github.com/meltforce/ftracker/internal/tracker"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "", "path to config file (optional)")
	inputPath := flag.String("input", "", "path to a package file, one CODE;field;... per line")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ftracker: %v\n", err)
		os.Exit(1)
	}
	if *inputPath != "" {
		cfg.Input = *inputPath
	}

	log := cfg.Log.NewLogger(os.Stderr)
	log.Debug("ftracker starting", "version", Version)

	pkgs, err := loadPackages(cfg)
	if err != nil {
		log.Error("failed to load packages", "error", err)
		os.Exit(1)
	}

	stats, err := tracker.New(os.Stdout, log).Run(pkgs)
	if err != nil {
		log.Error("run failed", "error", err)
		printStats(log, stats)
		os.Exit(1)
	}
	printStats(log, stats)
}

// loadPackages picks the package source: input file, then inline config
// packages, then the built-in samples.
func loadPackages(cfg *config.Config) ([]ingest.Package, error) {
	if cfg.Input != "" {
		f, err := os.Open(cfg.Input)
		if err != nil {
			return nil, fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()

		pkgs, err := ingest.Parse(f)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", cfg.Input, err)
		}
		return pkgs, nil
	}
	if len(cfg.Packages) > 0 {
		return cfg.PackageList(), nil
	}
	return tracker.Samples(), nil
}

func printStats(log *slog.Logger, stats *tracker.Stats) {
	log.Debug("run stats",
		"processed", stats.Processed,
		"reported", stats.Reported,
		"unknown_type", stats.UnknownType,
		"invalid_data", stats.InvalidData,
	)
}
