package projection

import (
	"fmt"

	v1 "github.com/aevon-lab/contact-ledger/internal/api/v1"
	"github.com/aevon-lab/contact-ledger/internal/normalize"
)

// ContactQuery filters the contact list. Zero values match everything.
type ContactQuery struct {
	Platform string `form:"platform"`
	Replied  *bool  `form:"replied"`
}

// Validate rejects a platform filter naming no known platform.
func (q ContactQuery) Validate() error {
	if q.Platform != "" && !normalize.DefaultRegistry().Supports(q.Platform) {
		return fmt.Errorf("platform %q: %w", q.Platform, normalize.ErrUnknownPlatform)
	}
	return nil
}

// ContactListResponse is the body of GET /v1/contacts.
type ContactListResponse struct {
	Count    int          `json:"count"`
	Contacts []v1.Contact `json:"contacts"`
}
