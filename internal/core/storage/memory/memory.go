package memory

import (
	"context"
	"sort"
	"sync"

	v1 "github.com/aevon-lab/contact-ledger/internal/api/v1"
	"github.com/aevon-lab/contact-ledger/internal/core/storage"
)

// Store is an in-memory storage.EventStore. Nothing survives Close.
type Store struct {
	mu      sync.RWMutex
	byID    map[string]*v1.Event
	byEmail map[string][]*v1.Event
	seq     int64
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		byID:    make(map[string]*v1.Event),
		byEmail: make(map[string][]*v1.Event),
	}
}

// Put stores a copy of event unless its ID is already present.
func (s *Store) Put(_ context.Context, event *v1.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.putLocked(event)
}

// PutAll stores a batch under one lock so readers never observe half of it.
func (s *Store) PutAll(_ context.Context, events []*v1.Event) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inserted := 0
	for _, evt := range events {
		if err := s.putLocked(evt); err != nil {
			if err == storage.ErrDuplicate {
				continue
			}
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}

func (s *Store) putLocked(event *v1.Event) error {
	if _, exists := s.byID[event.ID]; exists {
		return storage.ErrDuplicate
	}

	s.seq++
	stored := *event
	stored.IngestSeq = s.seq
	s.byID[stored.ID] = &stored
	s.byEmail[stored.Email] = append(s.byEmail[stored.Email], &stored)
	return nil
}

// AllEmails returns the distinct emails, sorted.
func (s *Store) AllEmails(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	emails := make([]string, 0, len(s.byEmail))
	for email := range s.byEmail {
		emails = append(emails, email)
	}
	sort.Strings(emails)
	return emails, nil
}

// EventsFor returns copies of the events for email ordered by (timestamp, insertion).
func (s *Store) EventsFor(_ context.Context, email string) ([]*v1.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.byEmail[email]
	events := make([]*v1.Event, len(stored))
	for i, evt := range stored {
		cp := *evt
		events[i] = &cp
	}
	// Insertion order is already ascending by IngestSeq; a stable sort keeps it for ties.
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp < events[j].Timestamp
	})
	return events, nil
}

// Len returns the number of stored events.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.byID)
}

func (s *Store) Ping(_ context.Context) error { return nil }

func (s *Store) Close() error { return nil }
