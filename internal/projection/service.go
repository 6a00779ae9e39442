package projection

import (
	"context"
	"errors"
	"fmt"

	"github.com/aevon-lab/contact-ledger/internal/aggregation"
	v1 "github.com/aevon-lab/contact-ledger/internal/api/v1"
	coreagg "github.com/aevon-lab/contact-ledger/internal/core/aggregation"
	"github.com/aevon-lab/contact-ledger/internal/core/storage"
	"github.com/aevon-lab/contact-ledger/internal/report"
	"golang.org/x/sync/singleflight"
)

// ErrContactNotFound is returned for an email with no stored events.
var ErrContactNotFound = errors.New("contact not found")

// Service serves read-only views of the ledger. Every read folds the current store
// contents; nothing is cached between requests. Concurrent full reads share one fold.
type Service struct {
	store storage.EventStore
	job   aggregation.JobParameter

	foldGroup singleflight.Group
}

func NewService(store storage.EventStore, job aggregation.JobParameter) *Service {
	if store == nil {
		panic("projection: store must not be nil")
	}
	return &Service{store: store, job: job}
}

// Contacts returns the sorted contacts matching q.
func (s *Service) Contacts(ctx context.Context, q ContactQuery) ([]v1.Contact, error) {
	contacts, err := s.all(ctx)
	if err != nil {
		return nil, err
	}

	// contacts may be shared with other callers; never filter in place
	filtered := make([]v1.Contact, 0, len(contacts))
	for _, c := range contacts {
		if q.matches(c) {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

// Contact folds the history of a single email. The email is normalized first.
func (s *Service) Contact(ctx context.Context, email string) (v1.Contact, error) {
	contact, err := aggregation.ContactFor(ctx, s.store, v1.NormalizeEmail(email))
	if errors.Is(err, coreagg.ErrNoEvents) {
		return v1.Contact{}, ErrContactNotFound
	}
	return contact, err
}

// Report summarizes the whole ledger.
func (s *Service) Report(ctx context.Context) (report.Summary, error) {
	contacts, err := s.all(ctx)
	if err != nil {
		return report.Summary{}, err
	}
	return report.Summarize(contacts), nil
}

// all runs one shared fold per flight. The fold is detached from the caller's
// cancellation since other callers may be waiting on it; each caller still returns
// as soon as its own ctx is done.
func (s *Service) all(ctx context.Context) ([]v1.Contact, error) {
	foldCtx := context.WithoutCancel(ctx)
	ch := s.foldGroup.DoChan("contacts", func() (interface{}, error) {
		return aggregation.RunContactAggregation(foldCtx, s.store, s.job)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, fmt.Errorf("aggregate contacts: %w", res.Err)
		}
		return res.Val.([]v1.Contact), nil
	}
}

func (q ContactQuery) matches(c v1.Contact) bool {
	if q.Replied != nil && c.Replied != *q.Replied {
		return false
	}
	if q.Platform == "" {
		return true
	}
	for _, p := range c.Sources {
		if string(p) == q.Platform {
			return true
		}
	}
	return false
}
