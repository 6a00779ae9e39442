// Package aggregation folds an email's event history into a Contact.
package aggregation

import (
	"errors"
	"sort"
	"strings"

	v1 "github.com/aevon-lab/contact-ledger/internal/api/v1"
)

// ErrNoEvents is returned by Fold for an empty history.
var ErrNoEvents = errors.New("no events for contact")

// Fold derives the Contact for email from its events.
//
// Events are ordered by (Timestamp, IngestSeq) with a stable sort, so repeated runs over
// the same store contents pick the same winners. Among events sharing the maximum
// timestamp the last in that order wins; among sends sharing the minimum timestamp the
// first wins.
func Fold(email string, events []*v1.Event) (v1.Contact, error) {
	if len(events) == 0 {
		return v1.Contact{}, ErrNoEvents
	}

	ordered := make([]*v1.Event, len(events))
	copy(ordered, events)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Timestamp != ordered[j].Timestamp {
			return ordered[i].Timestamp < ordered[j].Timestamp
		}
		return ordered[i].IngestSeq < ordered[j].IngestSeq
	})

	var latest, firstSend, lastReply *v1.Event
	platforms := make(map[v1.Platform]struct{})

	for _, evt := range ordered {
		platforms[evt.Platform] = struct{}{}

		if latest == nil || evt.Timestamp >= latest.Timestamp {
			latest = evt
		}

		switch evt.Type {
		case v1.TypeSend:
			if firstSend == nil || evt.Timestamp < firstSend.Timestamp {
				firstSend = evt
			}
		case v1.TypeReply:
			if lastReply == nil || evt.Timestamp >= lastReply.Timestamp {
				lastReply = evt
			}
		}
	}

	// No send logged: first outreach falls back to the earliest event of any type.
	firstOutreach := ordered[0]
	if firstSend != nil {
		firstOutreach = firstSend
	}

	contact := v1.Contact{
		Email:            email,
		FullName:         latest.Name,
		Sources:          sortedPlatforms(platforms),
		SequenceName:     latest.CampaignName,
		FirstOutreachAt:  firstOutreach.Timestamp,
		LastTouchAt:      latest.Timestamp,
		SourceEventCount: len(ordered),
		UpdatedAt:        latest.Timestamp,
	}
	if lastReply != nil {
		contact.Replied = true
		contact.LastReplyAt = lastReply.Timestamp
		contact.LastReplyText = lastReply.ReplyText
	}

	return contact, nil
}

func sortedPlatforms(set map[v1.Platform]struct{}) []v1.Platform {
	out := make([]v1.Platform, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// SortContacts orders contacts by lower-cased email, then first outreach.
func SortContacts(contacts []v1.Contact) {
	sort.SliceStable(contacts, func(i, j int) bool {
		a, b := strings.ToLower(contacts[i].Email), strings.ToLower(contacts[j].Email)
		if a != b {
			return a < b
		}
		return contacts[i].FirstOutreachAt < contacts[j].FirstOutreachAt
	})
}
