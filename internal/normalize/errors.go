package normalize

import (
	"errors"
	"fmt"
)

// ErrUnknownPlatform is returned when no normalizer is registered for a platform key.
// It is a configuration error, never a data error.
var ErrUnknownPlatform = errors.New("unknown platform")

// MappingError reports a record that cannot be mapped to a canonical event.
type MappingError struct {
	Platform string
	Field    string // source field path, e.g. "contact.email"
	Message  string
	Line     int // 1-based input line; 0 when the record did not come from a file
	Record   Record
}

func (e *MappingError) Error() string {
	where := ""
	if e.Line > 0 {
		where = fmt.Sprintf(" (line %d)", e.Line)
	}
	return fmt.Sprintf("%s record%s: field '%s': %s: %s",
		e.Platform, where, e.Field, e.Message, e.Record)
}

// Details returns the structured fields of the failure.
func (e *MappingError) Details() map[string]interface{} {
	d := map[string]interface{}{
		"platform": e.Platform,
		"field":    e.Field,
	}
	if e.Line > 0 {
		d["line"] = e.Line
	}
	return d
}

func newMissingFieldError(platform, field string, rec Record) *MappingError {
	return &MappingError{
		Platform: platform,
		Field:    field,
		Message:  "required field is missing",
		Record:   rec,
	}
}

func newTypeMismatchError(platform, field, expected string, rec Record) *MappingError {
	return &MappingError{
		Platform: platform,
		Field:    field,
		Message:  fmt.Sprintf("expected %s", expected),
		Record:   rec,
	}
}
