package tracker

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/meltforce/ftracker/internal/ingest"
	"github.com/meltforce/ftracker/internal/report"
)

// Stats tracks the outcome of a run.
type Stats struct {
	Processed   int
	Reported    int
	UnknownType int
	InvalidData int
}

// Tracker dispatches sensor packages and prints a report line for each
// training it could build.
type Tracker struct {
	out io.Writer
	log *slog.Logger
}

// New creates a Tracker writing reports to out. The logger receives
// diagnostics for rejected packages.
func New(out io.Writer, log *slog.Logger) *Tracker {
	return &Tracker{out: out, log: log}
}

// Samples returns the built-in sensor packages.
func Samples() []ingest.Package {
	return []ingest.Package{
		{Code: "SWM", Data: []any{720, 1, 80, 25, 40}},
		{Code: "RUN", Data: []any{15000, 1, 75}},
		{Code: "WLK", Data: []any{9000, 1, 75, 180}},
	}
}

// Run processes packages in order. A package that cannot be dispatched is
// logged and skipped; only write failures abort the run.
func (tr *Tracker) Run(pkgs []ingest.Package) (*Stats, error) {
	stats := &Stats{}
	log := tr.log.With("run_id", uuid.New().String())

	for i, p := range pkgs {
		stats.Processed++

		training, err := ingest.ReadPackage(p.Code, p.Data)
		if err != nil {
			switch {
			case errors.Is(err, ingest.ErrUnknownType):
				stats.UnknownType++
			case errors.Is(err, ingest.ErrInvalidData):
				stats.InvalidData++
			}
			log.Warn("skipping package", "index", i, "code", p.Code, "error", err)
			continue
		}

		info := report.ShowTrainingInfo(training)
		if _, err := fmt.Fprintln(tr.out, info.Message()); err != nil {
			return stats, fmt.Errorf("writing report for %s: %w", p.Code, err)
		}
		stats.Reported++
		log.Debug("package reported", "index", i, "code", p.Code, "training", info.TrainingType)
	}

	return stats, nil
}
