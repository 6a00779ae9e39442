package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	v1 "github.com/aevon-lab/contact-ledger/internal/api/v1"
	"github.com/aevon-lab/contact-ledger/internal/core/storage"
	_ "modernc.org/sqlite" // Register sqlite driver
)

const (
	// INSERT OR IGNORE keeps the existing row on a primary-key conflict.
	queryPutEvent = `
		INSERT OR IGNORE INTO events (
			id, email, name, platform, type,
			occurred_at, reply_text, campaign_name
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	queryAllEmails = `SELECT DISTINCT email FROM events ORDER BY email`

	// rowid grows with every insert, so it doubles as the insertion sequence.
	queryEventsFor = `
		SELECT
			id, email, name, platform, type,
			occurred_at, reply_text, campaign_name, rowid
		FROM events
		WHERE email = ?
		ORDER BY occurred_at ASC, rowid ASC
	`
)

// Store implements storage.EventStore on a SQLite database file.
type Store struct {
	db *sql.DB
}

// Open opens the SQLite database at dsn ("contacts.db", ":memory:", "file:...").
// The pool is pinned to a single connection: SQLite serializes writers anyway,
// and an in-memory database only lives as long as its connection.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	slog.Info("[SQLite] Database opened", "dsn", dsn)
	return db, nil
}

// New wraps a migrated database. The store owns db from here on: Close closes it.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Put inserts an event unless its id exists, in which case storage.ErrDuplicate is returned.
// The event is not modified; the sequence is only visible through EventsFor.
func (s *Store) Put(ctx context.Context, event *v1.Event) error {
	res, err := s.db.ExecContext(ctx, queryPutEvent, eventArgs(event)...)
	if err != nil {
		return fmt.Errorf("failed to save event: %w", err)
	}
	return checkInserted(res)
}

// PutAll inserts the batch in a single transaction. Duplicates are skipped.
func (s *Store) PutAll(ctx context.Context, events []*v1.Event) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	inserted := 0
	for _, evt := range events {
		res, err := tx.ExecContext(ctx, queryPutEvent, eventArgs(evt)...)
		if err != nil {
			return 0, fmt.Errorf("failed to save event %s: %w", evt.ID, err)
		}
		err = checkInserted(res)
		if errors.Is(err, storage.ErrDuplicate) {
			continue
		}
		if err != nil {
			return 0, err
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit events: %w", err)
	}

	slog.Debug("[SQLite] Saved event batch", "events", len(events), "inserted", inserted)
	return inserted, nil
}

func checkInserted(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return storage.ErrDuplicate
	}
	return nil
}

// AllEmails returns the distinct emails in the events table.
func (s *Store) AllEmails(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, queryAllEmails)
	if err != nil {
		return nil, fmt.Errorf("failed to query emails: %w", err)
	}
	defer rows.Close()

	var emails []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, fmt.Errorf("failed to scan email row: %w", err)
		}
		emails = append(emails, email)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating emails: %w", err)
	}
	return emails, nil
}

// EventsFor returns the events for one email ordered by (occurred_at, rowid).
func (s *Store) EventsFor(ctx context.Context, email string) ([]*v1.Event, error) {
	rows, err := s.db.QueryContext(ctx, queryEventsFor, email)
	if err != nil {
		return nil, fmt.Errorf("failed to query events for email: %w", err)
	}
	defer rows.Close()

	var events []*v1.Event
	for rows.Next() {
		var evt v1.Event
		var platform string
		var name, replyText, campaignName sql.NullString

		if err := rows.Scan(
			&evt.ID,
			&evt.Email,
			&name,
			&platform,
			&evt.Type,
			&evt.Timestamp,
			&replyText,
			&campaignName,
			&evt.IngestSeq,
		); err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}

		evt.Platform = v1.Platform(platform)
		evt.Name = name.String
		evt.ReplyText = replyText.String
		evt.CampaignName = campaignName.String
		events = append(events, &evt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}
	return events, nil
}

// Ping verifies the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// DB returns the underlying *sql.DB.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database.
func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	slog.Info("[SQLite] Store closed")
	return nil
}

func eventArgs(event *v1.Event) []interface{} {
	return []interface{}{
		event.ID,
		event.Email,
		event.Name,
		string(event.Platform),
		event.Type,
		event.Timestamp,
		event.ReplyText,
		event.CampaignName,
	}
}
