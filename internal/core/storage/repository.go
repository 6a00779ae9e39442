package storage

import (
	"context"
	"errors"

	v1 "github.com/aevon-lab/contact-ledger/internal/api/v1"
)

// ErrDuplicate is returned when an event with the same id already exists.
// The existing row is kept (first write wins), so callers treat it as a no-op.
var ErrDuplicate = errors.New("event already exists")

// EventStore is the durable keyed table of canonical events.
type EventStore interface {
	// Put inserts the event iff no event with the same ID exists.
	// Returns ErrDuplicate otherwise. The caller's event is never modified;
	// IngestSeq is assigned on the stored copy and returned by EventsFor.
	Put(ctx context.Context, event *v1.Event) error

	// PutAll inserts a batch atomically with the same insert-if-absent semantics.
	// Duplicates are skipped; the number of newly inserted events is returned.
	PutAll(ctx context.Context, events []*v1.Event) (int, error)

	// AllEmails returns the distinct normalized emails present, in no particular order.
	AllEmails(ctx context.Context) ([]string, error)

	// EventsFor returns every event for email, ascending by timestamp with ties
	// in insertion order.
	EventsFor(ctx context.Context, email string) ([]*v1.Event, error)

	Ping(ctx context.Context) error
	Close() error
}
