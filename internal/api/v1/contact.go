package v1

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ContactColumns is the fixed column order of the exported ledger.
var ContactColumns = []string{
	"email",
	"full_name",
	"sources",
	"sequence_name",
	"first_outreach_at",
	"last_touch_at",
	"replied",
	"last_reply_at",
	"last_reply_text",
	"source_event_count",
	"updated_at",
}

// Contact is the per-email summary folded from that email's full event history.
// Contacts are recomputed on every run and never persisted.
type Contact struct {
	Email            string     `json:"email"`
	FullName         string     `json:"full_name"`
	Sources          []Platform `json:"sources"`
	SequenceName     string     `json:"sequence_name"`
	FirstOutreachAt  string     `json:"first_outreach_at"`
	LastTouchAt      string     `json:"last_touch_at"`
	Replied          bool       `json:"replied"`
	LastReplyAt      string     `json:"last_reply_at"`
	LastReplyText    string     `json:"last_reply_text"`
	SourceEventCount int        `json:"source_event_count"`
	UpdatedAt        string     `json:"updated_at"`
}

// SourcesJSON renders Sources as a compact JSON array, e.g. ["heyreach","salesforge"].
func (c Contact) SourcesJSON() (string, error) {
	sources := c.Sources
	if sources == nil {
		sources = []Platform{}
	}
	b, err := json.Marshal(sources)
	if err != nil {
		return "", fmt.Errorf("failed to marshal sources: %w", err)
	}
	return string(b), nil
}

// Record returns the contact as export cells in ContactColumns order.
func (c Contact) Record() ([]string, error) {
	sources, err := c.SourcesJSON()
	if err != nil {
		return nil, err
	}

	return []string{
		c.Email,
		c.FullName,
		sources,
		c.SequenceName,
		c.FirstOutreachAt,
		c.LastTouchAt,
		strconv.FormatBool(c.Replied),
		c.LastReplyAt,
		c.LastReplyText,
		strconv.Itoa(c.SourceEventCount),
		c.UpdatedAt,
	}, nil
}
