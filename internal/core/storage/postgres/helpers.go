package postgres

import (
	"database/sql"
	"fmt"

	v1 "github.com/aevon-lab/contact-ledger/internal/api/v1"
)

type scanner interface {
	Scan(dest ...interface{}) error
}

// scanEventRow scans a database row into an Event struct.
// Nullable text columns come back as "".
func scanEventRow(row scanner) (*v1.Event, error) {
	var evt v1.Event
	var platform string
	var name, replyText, campaignName sql.NullString

	err := row.Scan(
		&evt.ID,
		&evt.Email,
		&name,
		&platform,
		&evt.Type,
		&evt.Timestamp,
		&replyText,
		&campaignName,
		&evt.IngestSeq,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan event row: %w", err)
	}

	evt.Platform = v1.Platform(platform)
	evt.Name = name.String
	evt.ReplyText = replyText.String
	evt.CampaignName = campaignName.String

	return &evt, nil
}

// eventArgs returns the insert parameters in queryPutEvent order.
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
