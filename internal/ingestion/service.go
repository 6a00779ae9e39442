package ingestion

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	v1 "github.com/aevon-lab/contact-ledger/internal/api/v1"
	"github.com/aevon-lab/contact-ledger/internal/core/storage"
	"github.com/aevon-lab/contact-ledger/internal/normalize"
	"github.com/gin-gonic/gin"
)

// Result summarizes one ingested source.
type Result struct {
	Platform   string `json:"platform"`
	Source     string `json:"source"`
	Read       int    `json:"read"`
	Inserted   int    `json:"inserted"`
	Duplicates int    `json:"duplicates"`
}

type Service struct {
	registry         *normalize.Registry
	store            storage.EventStore
	maxBodySizeBytes int
	logger           *slog.Logger
}

func NewService(reg *normalize.Registry, repo storage.EventStore, maxBodySizeMB int) *Service {
	if reg == nil {
		panic("ingestion: registry must not be nil")
	}
	if repo == nil {
		panic("ingestion: store must not be nil")
	}
	if maxBodySizeMB <= 0 {
		maxBodySizeMB = 1 // default to 1MB
	}
	return &Service{
		registry:         reg,
		store:            repo,
		maxBodySizeBytes: maxBodySizeMB * 1024 * 1024,
		logger:           slog.Default(),
	}
}

// WithLogger returns a copy of the service that logs through l.
func (s *Service) WithLogger(l *slog.Logger) *Service {
	cp := *s
	cp.logger = l
	return &cp
}

// RegisterRoutes registers the batch import route.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.POST("/v1/imports/:platform", s.ImportHandler)
}

// IngestFile ingests the JSONL file at path as records of platform.
func (s *Service) IngestFile(ctx context.Context, platform, path string) (Result, error) {
	// Resolve first so a config error never touches the filesystem.
	if _, err := s.registry.Lookup(platform); err != nil {
		return Result{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("failed to open %s source: %w", platform, err)
	}
	defer f.Close()

	return s.IngestReader(ctx, platform, path, f)
}

// IngestReader decodes and normalizes every record of r before writing anything, then
// stores the batch in one transaction. Any decode or mapping error aborts the source
// with nothing written. Present but empty values are stored as they are. Records
// already stored are counted as duplicates.
func (s *Service) IngestReader(ctx context.Context, platform, source string, r io.Reader) (Result, error) {
	normalizer, err := s.registry.Lookup(platform)
	if err != nil {
		return Result{}, err
	}
	result := Result{Platform: platform, Source: source}

	lines, err := ReadRecords(r)
	if err != nil {
		return result, fmt.Errorf("%s source %s: %w", platform, source, err)
	}
	result.Read = len(lines)

	events := make([]*v1.Event, 0, len(lines))
	for _, line := range lines {
		evt, err := normalizer.Normalize(line.Record)
		if err != nil {
			var mErr *normalize.MappingError
			if errors.As(err, &mErr) {
				mErr.Line = line.Number
			}
			return result, fmt.Errorf("%s source %s: %w", platform, source, err)
		}
		events = append(events, evt)
	}

	if len(events) > 0 {
		inserted, err := s.store.PutAll(ctx, events)
		if err != nil {
			return result, fmt.Errorf("failed to store %s events: %w", platform, err)
		}
		result.Inserted = inserted
	}
	result.Duplicates = result.Read - result.Inserted

	s.logger.Info("[Ingestion] Source ingested",
		"platform", platform,
		"source", source,
		"read", result.Read,
		"inserted", result.Inserted,
		"duplicates", result.Duplicates)

	return result, nil
}
