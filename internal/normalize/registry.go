package normalize

import (
	"fmt"

	v1 "github.com/aevon-lab/contact-ledger/internal/api/v1"
)

// Field maps of the supported platforms.
var (
	Heyreach = FieldMap{
		Source:       v1.PlatformHeyreach,
		ID:           "id",
		Email:        "prospect_email",
		Name:         "prospect_name",
		Type:         "type",
		Timestamp:    "at",
		ReplyText:    "text",
		CampaignName: "campaign",
	}

	Salesforge = FieldMap{
		Source:       v1.PlatformSalesforge,
		ID:           "id",
		Email:        "email",
		Name:         "full_name",
		Type:         "type",
		Timestamp:    "at",
		ReplyText:    "text",
		CampaignName: "sequence",
	}

	Instantly = FieldMap{
		Source:       v1.PlatformInstantly,
		ID:           "id",
		Email:        "contact.email",
		Name:         "contact.name",
		NameRequired: true,
		Type:         "type",
		Timestamp:    "timestamp",
		ReplyText:    "body",
		CampaignName: "campaign_name",
	}
)

// Platforms returns the supported platforms in canonical processing order.
// Ingestion order determines insertion sequence, which breaks timestamp ties.
func Platforms() []v1.Platform {
	return []v1.Platform{v1.PlatformHeyreach, v1.PlatformSalesforge, v1.PlatformInstantly}
}

// Registry is the closed mapping from platform key to normalizer.
type Registry struct {
	normalizers map[v1.Platform]Normalizer
}

// NewRegistry builds a registry from the given normalizers. A later normalizer for the
// same platform replaces an earlier one.
func NewRegistry(normalizers ...Normalizer) *Registry {
	r := &Registry{normalizers: make(map[v1.Platform]Normalizer, len(normalizers))}
	for _, n := range normalizers {
		r.normalizers[n.Platform()] = n
	}
	return r
}

// DefaultRegistry returns the registry of the three supported platforms.
func DefaultRegistry() *Registry {
	return NewRegistry(Heyreach, Salesforge, Instantly)
}

// Lookup returns the normalizer for key, or ErrUnknownPlatform.
func (r *Registry) Lookup(key string) (Normalizer, error) {
	n, ok := r.normalizers[v1.Platform(key)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPlatform, key)
	}
	return n, nil
}

// Supports reports whether a normalizer is registered for key.
func (r *Registry) Supports(key string) bool {
	_, ok := r.normalizers[v1.Platform(key)]
	return ok
}
