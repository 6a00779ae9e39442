package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	v1 "github.com/aevon-lab/contact-ledger/internal/api/v1"
	"github.com/stretchr/testify/require"
)

func alice() v1.Contact {
	return v1.Contact{
		Email:            "a@x.com",
		FullName:         "Alice",
		Sources:          []v1.Platform{v1.PlatformHeyreach, v1.PlatformSalesforge},
		SequenceName:     "",
		FirstOutreachAt:  "2024-01-01T00:00:00Z",
		LastTouchAt:      "2024-01-02T00:00:00Z",
		Replied:          true,
		LastReplyAt:      "2024-01-02T00:00:00Z",
		LastReplyText:    "hi",
		SourceEventCount: 2,
		UpdatedAt:        "2024-01-02T00:00:00Z",
	}
}

func TestWriteCSV_HeaderAndRow(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, []v1.Contact{alice()}))

	want := "email,full_name,sources,sequence_name,first_outreach_at,last_touch_at,replied,last_reply_at,last_reply_text,source_event_count,updated_at\n" +
		`a@x.com,Alice,"[""heyreach"",""salesforge""]",,2024-01-01T00:00:00Z,2024-01-02T00:00:00Z,true,2024-01-02T00:00:00Z,hi,2,2024-01-02T00:00:00Z` + "\n"
	require.Equal(t, want, buf.String())
}

func TestWriteCSV_QuotesDelimitersAndNewlines(t *testing.T) {
	c := alice()
	c.FullName = "Smith, Alice"
	c.LastReplyText = "thanks,\nlet's talk \"soon\""

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, []v1.Contact{c}))

	rows, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "Smith, Alice", rows[1][1])
	require.Equal(t, "thanks,\nlet's talk \"soon\"", rows[1][8])
	require.Equal(t, "true", rows[1][6])
}

func TestWriteCSV_NoContactsWritesHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	require.Equal(t, strings.Join(v1.ContactColumns, ",")+"\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteCSV_WriterError(t *testing.T) {
	err := WriteCSV(failingWriter{}, []v1.Contact{alice()})
	require.ErrorContains(t, err, "disk full")
}

func TestWriteFile_TruncatesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unified.csv")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("stale\n", 100)), 0o644))

	require.NoError(t, WriteFile(path, []v1.Contact{alice()}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotContains(t, string(data), "stale")
	require.Equal(t, 2, strings.Count(string(data), "\n"))
}

func TestWriteFile_UnwritableDestination(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "unified.csv")
	err := WriteFile(path, []v1.Contact{alice()})
	require.ErrorContains(t, err, "failed to create export file")
}
