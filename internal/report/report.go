// Package report summarizes a contact ledger.
package report

import (
	"log/slog"
	"sort"

	v1 "github.com/aevon-lab/contact-ledger/internal/api/v1"
	"github.com/shopspring/decimal"
)

const rateScale = 4

// PlatformSummary counts the contacts a platform touched.
type PlatformSummary struct {
	Platform v1.Platform `json:"platform"`
	Contacts int         `json:"contacts"`
	Replied  int         `json:"replied"`
}

// Summary is the ledger-wide rollup of one run.
type Summary struct {
	Contacts  int               `json:"contacts"`
	Replied   int               `json:"replied"`
	Events    int               `json:"events"`
	ReplyRate decimal.Decimal   `json:"reply_rate"`
	Platforms []PlatformSummary `json:"platforms"`
}

// Summarize counts contacts and replies overall and per platform. A contact counts
// toward every platform in its sources. ReplyRate is replied/contacts rounded to four
// places, zero for an empty ledger.
func Summarize(contacts []v1.Contact) Summary {
	s := Summary{ReplyRate: decimal.Zero, Platforms: []PlatformSummary{}}
	byPlatform := make(map[v1.Platform]*PlatformSummary)

	for _, c := range contacts {
		s.Contacts++
		s.Events += c.SourceEventCount
		if c.Replied {
			s.Replied++
		}

		for _, p := range c.Sources {
			ps, ok := byPlatform[p]
			if !ok {
				ps = &PlatformSummary{Platform: p}
				byPlatform[p] = ps
			}
			ps.Contacts++
			if c.Replied {
				ps.Replied++
			}
		}
	}

	if s.Contacts > 0 {
		s.ReplyRate = decimal.NewFromInt(int64(s.Replied)).
			DivRound(decimal.NewFromInt(int64(s.Contacts)), rateScale)
	}

	for _, ps := range byPlatform {
		s.Platforms = append(s.Platforms, *ps)
	}
	sort.Slice(s.Platforms, func(i, j int) bool { return s.Platforms[i].Platform < s.Platforms[j].Platform })

	return s
}

// LogValue renders the summary as slog attributes.
func (s Summary) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("contacts", s.Contacts),
		slog.Int("replied", s.Replied),
		slog.Int("events", s.Events),
		slog.String("reply_rate", s.ReplyRate.String()),
	}
	for _, ps := range s.Platforms {
		attrs = append(attrs, slog.Group(string(ps.Platform),
			slog.Int("contacts", ps.Contacts),
			slog.Int("replied", ps.Replied)))
	}
	return slog.GroupValue(attrs...)
}
