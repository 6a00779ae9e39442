package aggregation

import (
	"context"
	"fmt"
	"log/slog"

	v1 "github.com/aevon-lab/contact-ledger/internal/api/v1"
	"github.com/aevon-lab/contact-ledger/internal/core/aggregation"
	"github.com/aevon-lab/contact-ledger/internal/core/storage"
	"golang.org/x/sync/errgroup"
)

const defaultWorkerCount = 4

// JobParameter controls parallelism of an aggregation run.
type JobParameter struct {
	WorkerCount int
	Logger      *slog.Logger // defaults to slog.Default()
}

// DefaultJobParameter returns the defaults used when nothing is configured.
func DefaultJobParameter() JobParameter {
	return JobParameter{WorkerCount: defaultWorkerCount, Logger: slog.Default()}
}

func (p JobParameter) normalized() JobParameter {
	n := p
	if n.WorkerCount <= 0 {
		n.WorkerCount = defaultWorkerCount
	}
	if n.Logger == nil {
		n.Logger = slog.Default()
	}
	return n
}

// RunContactAggregation folds every email in the store into a Contact and returns the
// contacts sorted by email. Emails are independent, so they are folded in parallel;
// the first error cancels the remaining work.
func RunContactAggregation(
	ctx context.Context,
	store storage.EventStore,
	jobParameter JobParameter,
) ([]v1.Contact, error) {
	jobParameter = jobParameter.normalized()

	emails, err := store.AllEmails(ctx)
	if err != nil {
		return nil, fmt.Errorf("list emails: %w", err)
	}

	jobParameter.Logger.Info("[Aggregation] Starting contact aggregation",
		"emails", len(emails),
		"workers", jobParameter.WorkerCount,
	)

	contacts := make([]v1.Contact, len(emails))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobParameter.WorkerCount)

	for i, email := range emails {
		i, email := i, email
		g.Go(func() error {
			contact, err := ContactFor(gctx, store, email)
			if err != nil {
				return err
			}
			// Each goroutine owns its own index.
			contacts[i] = contact
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	aggregation.SortContacts(contacts)

	jobParameter.Logger.Info("[Aggregation] Contact aggregation complete", "contacts", len(contacts))
	return contacts, nil
}

// ContactFor folds a single email. An email without events yields aggregation.ErrNoEvents.
func ContactFor(ctx context.Context, store storage.EventStore, email string) (v1.Contact, error) {
	events, err := store.EventsFor(ctx, email)
	if err != nil {
		return v1.Contact{}, fmt.Errorf("load events for %s: %w", email, err)
	}

	contact, err := aggregation.Fold(email, events)
	if err != nil {
		return v1.Contact{}, fmt.Errorf("fold %s: %w", email, err)
	}
	return contact, nil
}
