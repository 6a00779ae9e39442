package pipeline

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aevon-lab/contact-ledger/internal/aggregation"
	v1 "github.com/aevon-lab/contact-ledger/internal/api/v1"
	"github.com/aevon-lab/contact-ledger/internal/core/config"
	"github.com/aevon-lab/contact-ledger/internal/core/storage"
	"github.com/aevon-lab/contact-ledger/internal/core/storage/backend"
	"github.com/aevon-lab/contact-ledger/internal/core/storage/memory"
	"github.com/aevon-lab/contact-ledger/internal/ingestion"
	"github.com/aevon-lab/contact-ledger/internal/normalize"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	dir     string
	sources []config.Source
	output  string
}

func newFixture(t *testing.T, files map[string]string) fixture {
	t.Helper()
	f := fixture{dir: t.TempDir()}
	for _, p := range normalize.Platforms() {
		body, ok := files[string(p)]
		if !ok {
			continue
		}
		path := filepath.Join(f.dir, string(p)+".jsonl")
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
		f.sources = append(f.sources, config.Source{Platform: string(p), Path: path})
	}
	f.output = filepath.Join(f.dir, "unified.csv")
	return f
}

func (f fixture) pipeline(store storage.EventStore) *Pipeline {
	return &Pipeline{
		Store:      store,
		Ingestion:  ingestion.NewService(normalize.DefaultRegistry(), store, 1),
		Sources:    f.sources,
		OutputPath: f.output,
		Job:        aggregation.JobParameter{WorkerCount: 2},
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	fh, err := os.Open(path)
	require.NoError(t, err)
	defer fh.Close()

	rows, err := csv.NewReader(fh).ReadAll()
	require.NoError(t, err)
	return rows
}

var scenario = map[string]string{
	"heyreach":   `{"id":1,"prospect_email":"A@x.com","type":"send","at":"2024-01-01T00:00:00Z","campaign":"C1"}` + "\n",
	"salesforge": `{"id":2,"email":"a@x.com","type":"reply","at":"2024-01-02T00:00:00Z","text":"hi","full_name":"Alice"}` + "\n",
}

func TestRun_EndToEndWithSQLite(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, scenario)

	store, err := backend.Open(ctx, config.DatabaseConfig{
		Driver:      config.DriverSQLite,
		DSN:         filepath.Join(f.dir, "contacts.db"),
		AutoMigrate: true,
	})
	require.NoError(t, err)
	defer store.Close()

	out, err := f.pipeline(store).Run(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, out.RunID)
	require.Len(t, out.Ingested, 2)
	require.Equal(t, 1, out.Summary.Contacts)

	rows := readCSV(t, f.output)
	require.Equal(t, v1.ContactColumns, rows[0])
	require.Equal(t, [][]string{{
		"a@x.com",
		"Alice",
		`["heyreach","salesforge"]`,
		"",
		"2024-01-01T00:00:00Z",
		"2024-01-02T00:00:00Z",
		"true",
		"2024-01-02T00:00:00Z",
		"hi",
		"2",
		"2024-01-02T00:00:00Z",
	}}, rows[1:])
}

func TestRun_ReplayProducesIdenticalLedger(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, scenario)
	store := memory.New()
	p := f.pipeline(store)

	_, err := p.Run(ctx)
	require.NoError(t, err)
	first, err := os.ReadFile(f.output)
	require.NoError(t, err)

	out, err := p.Run(ctx)
	require.NoError(t, err)
	for _, r := range out.Ingested {
		require.Zero(t, r.Inserted, r.Platform)
	}
	require.Equal(t, 2, store.Len())

	second, err := os.ReadFile(f.output)
	require.NoError(t, err)
	require.Equal(t, string(first), string(second))
}

func TestRun_EmailsDifferingInCaseCollapse(t *testing.T) {
	f := newFixture(t, map[string]string{
		"heyreach":  `{"id":1,"prospect_email":"  Bob@X.com","type":"send","at":"2024-01-01T00:00:00Z"}` + "\n",
		"instantly": `{"id":"z","contact":{"email":"bob@x.COM ","name":"Bob"},"type":"open","timestamp":"2024-01-05T00:00:00Z"}` + "\n",
	})

	out, err := f.pipeline(memory.New()).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, out.Contacts, 1)
	require.Equal(t, "bob@x.com", out.Contacts[0].Email)
	require.Equal(t, 2, out.Contacts[0].SourceEventCount)
}

func TestRun_SortedOutput(t *testing.T) {
	f := newFixture(t, map[string]string{
		"salesforge": `{"id":1,"email":"zed@x.com","type":"send","at":"2024-01-01T00:00:00Z"}
{"id":2,"email":"amy@x.com","type":"send","at":"2024-01-02T00:00:00Z"}
{"id":3,"email":"mia@x.com","type":"send","at":"2024-01-03T00:00:00Z"}
`,
	})

	_, err := f.pipeline(memory.New()).Run(context.Background())
	require.NoError(t, err)

	rows := readCSV(t, f.output)
	var emails []string
	for _, row := range rows[1:] {
		emails = append(emails, row[0])
	}
	require.Equal(t, []string{"amy@x.com", "mia@x.com", "zed@x.com"}, emails)
}

func TestRun_IngestionFailureHaltsBeforeExport(t *testing.T) {
	f := newFixture(t, map[string]string{
		"heyreach":   scenario["heyreach"],
		"salesforge": "{broken\n",
	})
	store := memory.New()

	_, err := f.pipeline(store).Run(context.Background())
	require.ErrorContains(t, err, "ingest salesforge")

	var lineErr *ingestion.LineError
	require.ErrorAs(t, err, &lineErr)

	// heyreach was committed before salesforge failed, nothing was exported.
	require.Equal(t, 1, store.Len())
	_, statErr := os.Stat(f.output)
	require.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestRun_UnwritableOutput(t *testing.T) {
	f := newFixture(t, scenario)
	p := f.pipeline(memory.New())
	p.OutputPath = filepath.Join(f.dir, "missing", "unified.csv")

	_, err := p.Run(context.Background())
	require.ErrorContains(t, err, "export ledger")
}

func TestScheduler_RerunsUntilCancelled(t *testing.T) {
	f := newFixture(t, scenario)
	store := memory.New()
	p := f.pipeline(store)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- NewScheduler(10*time.Millisecond, p).Start(ctx) }()

	require.Eventually(t, func() bool {
		_, err := os.Stat(f.output)
		return err == nil
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop")
	}
	require.Equal(t, 2, store.Len())
}
