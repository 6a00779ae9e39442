package postgres

// SQL queries for event storage operations

const (
	// queryPutEvent inserts an event keyed by its canonical id.
	// ON CONFLICT DO NOTHING returns no rows (sql.ErrNoRows) for duplicates,
	// so the first write always wins.
	// RETURNING clause retrieves the auto-generated ingest_seq.
	queryPutEvent = `
		INSERT INTO events (
			id, email, name, platform, type,
			occurred_at, reply_text, campaign_name
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO NOTHING
		RETURNING ingest_seq
	`

	queryAllEmails = `
		SELECT DISTINCT email
		FROM events
		ORDER BY email
	`

	// queryEventsFor returns one email's history in (timestamp, insertion) order.
	// occurred_at is declared COLLATE "C" so ordering is bytewise.
	queryEventsFor = `
		SELECT
			id, email, name, platform, type,
			occurred_at, reply_text, campaign_name, ingest_seq
		FROM events
		WHERE email = $1
		ORDER BY occurred_at ASC, ingest_seq ASC
	`
)
