package normalize

import (
	v1 "github.com/aevon-lab/contact-ledger/internal/api/v1"
)

// Normalizer maps a platform-native record into the canonical Event shape.
// Implementations must be pure: same record in, same event out.
type Normalizer interface {
	Platform() v1.Platform
	Normalize(rec Record) (*v1.Event, error)
}

// FieldMap is a declarative Normalizer: it names the source path of every canonical field.
// Paths may be nested with dots.
type FieldMap struct {
	Source       v1.Platform
	ID           string
	Email        string
	Name         string
	NameRequired bool
	Type         string
	Timestamp    string
	ReplyText    string
	CampaignName string
}

// Platform returns the platform this map normalizes.
func (m FieldMap) Platform() v1.Platform {
	return m.Source
}

// Normalize builds the canonical event. A missing required field fails the record
// with a *MappingError; null values and missing optional fields become "".
func (m FieldMap) Normalize(rec Record) (*v1.Event, error) {
	platform := string(m.Source)

	id, err := m.required(rec, m.ID)
	if err != nil {
		return nil, err
	}

	rawEmail, ok := rec.Lookup(m.Email)
	if !ok {
		return nil, newMissingFieldError(platform, m.Email, rec)
	}
	email, ok := rawEmail.(string)
	if !ok {
		return nil, newTypeMismatchError(platform, m.Email, "string", rec)
	}

	name := m.optional(rec, m.Name)
	if m.NameRequired {
		if name, err = m.required(rec, m.Name); err != nil {
			return nil, err
		}
	}

	eventType, err := m.required(rec, m.Type)
	if err != nil {
		return nil, err
	}

	timestamp, err := m.required(rec, m.Timestamp)
	if err != nil {
		return nil, err
	}

	return &v1.Event{
		ID:           v1.EventID(m.Source, id),
		Email:        v1.NormalizeEmail(email),
		Name:         name,
		Platform:     m.Source,
		Type:         eventType,
		Timestamp:    timestamp,
		ReplyText:    m.optional(rec, m.ReplyText),
		CampaignName: m.optional(rec, m.CampaignName),
	}, nil
}

func (m FieldMap) required(rec Record, path string) (string, error) {
	v, ok := rec.Lookup(path)
	if !ok {
		return "", newMissingFieldError(string(m.Source), path, rec)
	}
	return scalarString(v), nil
}

func (m FieldMap) optional(rec Record, path string) string {
	if path == "" {
		return ""
	}
	v, _ := rec.Lookup(path)
	return scalarString(v)
}
