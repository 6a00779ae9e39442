// Package pipeline runs one ingest, aggregate and export pass over the ledger.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aevon-lab/contact-ledger/internal/aggregation"
	v1 "github.com/aevon-lab/contact-ledger/internal/api/v1"
	"github.com/aevon-lab/contact-ledger/internal/core/config"
	"github.com/aevon-lab/contact-ledger/internal/core/storage"
	"github.com/aevon-lab/contact-ledger/internal/export"
	"github.com/aevon-lab/contact-ledger/internal/ingestion"
	"github.com/aevon-lab/contact-ledger/internal/report"
	"github.com/google/uuid"
)

// Pipeline wires the store to its sources and sink. The caller owns Store and
// closes it after the last run.
type Pipeline struct {
	Store      storage.EventStore
	Ingestion  *ingestion.Service
	Sources    []config.Source // processed in order; order fixes insertion sequence
	OutputPath string
	Job        aggregation.JobParameter
}

// Outcome describes a completed run.
type Outcome struct {
	RunID    string
	Ingested []ingestion.Result
	Contacts []v1.Contact
	Summary  report.Summary
}

// Run ingests every source, folds all contacts and writes the ledger. The first
// error halts the run; a rerun is always safe because ingestion is idempotent.
func (p *Pipeline) Run(ctx context.Context) (Outcome, error) {
	out := Outcome{RunID: uuid.NewString()}
	logger := slog.With("run_id", out.RunID)
	started := time.Now()

	logger.Info("[Pipeline] Run started", "sources", len(p.Sources), "output", p.OutputPath)

	svc := p.Ingestion.WithLogger(logger)
	for _, src := range p.Sources {
		result, err := svc.IngestFile(ctx, src.Platform, src.Path)
		if err != nil {
			logger.Error("[Pipeline] Ingestion failed", "platform", src.Platform, "path", src.Path, "error", err)
			return out, fmt.Errorf("ingest %s: %w", src.Platform, err)
		}
		out.Ingested = append(out.Ingested, result)
	}

	job := p.Job
	job.Logger = logger
	contacts, err := aggregation.RunContactAggregation(ctx, p.Store, job)
	if err != nil {
		logger.Error("[Pipeline] Aggregation failed", "error", err)
		return out, fmt.Errorf("aggregate contacts: %w", err)
	}
	out.Contacts = contacts

	if err := export.WriteFile(p.OutputPath, contacts); err != nil {
		logger.Error("[Pipeline] Export failed", "path", p.OutputPath, "error", err)
		return out, fmt.Errorf("export ledger: %w", err)
	}
	logger.Info("[Export] Ledger written", "path", p.OutputPath, "contacts", len(contacts))

	out.Summary = report.Summarize(contacts)
	logger.Info("[Pipeline] Run complete", "summary", out.Summary, "duration", time.Since(started))

	return out, nil
}
