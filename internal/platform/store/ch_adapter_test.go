package store

import (
	"context"
	"errors"
	"testing"

	"gitwrapped/internal/platform/store/ch"
)

type fakeCHRows struct {
	rows   [][]any
	idx    int
	closed bool
	err    error
}

func (f *fakeCHRows) Next() bool { f.idx++; return f.idx <= len(f.rows) }
func (f *fakeCHRows) Scan(dest ...any) error {
	row := f.rows[f.idx-1]
	for i := range dest {
		if p, ok := dest[i].(*string); ok {
			*p = row[i].(string)
		}
	}
	return nil
}
func (f *fakeCHRows) Err() error        { return f.err }
func (f *fakeCHRows) Close() error      { f.closed = true; return nil }
func (f *fakeCHRows) Columns() []string { return []string{"event"} }

type fakeCHClient struct {
	inserted  map[string][][]any
	queryErr  error
	pings     int
	closed    bool
	lastQuery string
}

func (f *fakeCHClient) Insert(_ context.Context, table string, rows [][]any) error {
	if f.inserted == nil {
		f.inserted = map[string][][]any{}
	}
	f.inserted[table] = append(f.inserted[table], rows...)
	return nil
}

func (f *fakeCHClient) Query(_ context.Context, sql string, _ ...any) (ch.Rows, error) {
	f.lastQuery = sql
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return &fakeCHRows{rows: [][]any{{"wrap_viewed"}}}, nil
}

func (f *fakeCHClient) Ping(_ context.Context) error { f.pings++; return nil }
func (f *fakeCHClient) Close() error                 { f.closed = true; return nil }

func TestCHAdapter_InsertShape(t *testing.T) {
	t.Parallel()

	fc := &fakeCHClient{}
	a := &clickhouseAdapter{inner: fc}

	if err := a.Insert(context.Background(), "events", [][]any{{"wrap_viewed", "octocat"}}); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if got := len(fc.inserted["events"]); got != 1 {
		t.Fatalf("inserted rows = %d, want 1", got)
	}

	// anything other than [][]any is rejected before reaching the client
	if err := a.Insert(context.Background(), "events", struct{}{}); err == nil {
		t.Fatalf("Insert with bad shape expected error")
	}
}

func TestCHAdapter_QueryWrapsRows(t *testing.T) {
	t.Parallel()

	fc := &fakeCHClient{}
	a := &clickhouseAdapter{inner: fc}

	rows, err := a.Query(context.Background(), "SELECT event FROM events")
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	defer rows.Close()

	if cols := rows.Columns(); len(cols) != 1 || cols[0] != "event" {
		t.Fatalf("Columns mismatch: %#v", cols)
	}
	if !rows.Next() {
		t.Fatalf("expected one row")
	}
	var ev string
	if err := rows.Scan(&ev); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if ev != "wrap_viewed" {
		t.Fatalf("scanned %q, want wrap_viewed", ev)
	}
	if rows.Next() {
		t.Fatalf("expected a single row")
	}
}

func TestCHAdapter_QueryPropagatesError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	a := &clickhouseAdapter{inner: &fakeCHClient{queryErr: boom}}

	rows, err := a.Query(context.Background(), "SELECT 1")
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if rows != nil {
		t.Fatalf("expected nil rows on error")
	}
}

func TestCHAdapter_PingAndClose(t *testing.T) {
	t.Parallel()

	fc := &fakeCHClient{}
	a := &clickhouseAdapter{inner: fc}

	if err := a.Ping(context.Background()); err != nil {
		t.Fatalf("Ping: %v", err)
	}
	if fc.pings != 1 {
		t.Fatalf("ping did not delegate")
	}
	if err := a.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !fc.closed {
		t.Fatalf("close did not delegate")
	}

	var nilAdapter *clickhouseAdapter
	if err := nilAdapter.Ping(context.Background()); err == nil {
		t.Fatalf("nil adapter Ping expected error")
	}
}
