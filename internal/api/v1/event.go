package v1

import (
	"strings"
)

// Platform identifies the outreach tool that produced an event.
type Platform string

const (
	PlatformHeyreach   Platform = "heyreach"
	PlatformSalesforge Platform = "salesforge"
	PlatformInstantly  Platform = "instantly"
)

// Event types the aggregator treats specially. Any other type is carried through untouched.
const (
	TypeSend  = "send"
	TypeReply = "reply"
)

// Event is one outreach action normalized from a platform record.
// Events are immutable once stored.
type Event struct {
	// ID is "{platform}_{source_event_id}". Re-ingesting the same source record
	// yields the same ID, which is what makes ingestion idempotent.
	ID string `json:"id"`

	// Email is lower-cased and trimmed. It is the join key across platforms.
	Email string `json:"email"`

	// Name is the display name the source reported at the time of the event.
	Name string `json:"name"`

	Platform Platform `json:"platform"`

	// Type is platform-defined ("send", "open", "reply", ...).
	Type string `json:"type"`

	// Timestamp is an ISO-8601 string. Lexicographic order must equal chronological
	// order; it is compared as a string and never parsed.
	Timestamp string `json:"timestamp"`

	ReplyText    string `json:"reply_text"`
	CampaignName string `json:"campaign_name"`

	// IngestSeq is the store's insertion sequence, used to break timestamp ties.
	// Set by the store on read, not part of the canonical shape.
	IngestSeq int64 `json:"-"`
}

// EventID derives the canonical event identity from a platform and its source id.
func EventID(platform Platform, sourceID string) string {
	return string(platform) + "_" + sourceID
}

// NormalizeEmail lower-cases and trims an address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
