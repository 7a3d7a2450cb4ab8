package cache

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	path := filepath.Join(t.TempDir(), "odds-cache.sqlite")
	c, err := Open(path)
	if err != nil {
		t.Fatalf("Open(%q) returned error: %v", path, err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestLookupMissReturnsFalse(t *testing.T) {
	c := openTestCache(t)
	_, found, err := c.Lookup(HashSource("do 1 + 2"))
	if err != nil {
		t.Fatalf("Lookup returned error: %v", err)
	}
	if found {
		t.Fatalf("Lookup found an entry in an empty cache")
	}
}

func TestPutThenLookupRoundTrips(t *testing.T) {
	c := openTestCache(t)
	hash := HashSource("do 1 + 2")
	want := Entry{
		OK:             true,
		DiagnosticCode: "",
		RunID:          "11111111-1111-1111-1111-111111111111",
		AnalyzedAt:     time.Date(2026, 7, 30, 12, 0, 0, 0, time.UTC),
	}
	if err := c.Put(hash, want); err != nil {
		t.Fatalf("Put returned error: %v", err)
	}

	got, found, err := c.Lookup(hash)
	if err != nil {
		t.Fatalf("Lookup returned error: %v", err)
	}
	if !found {
		t.Fatalf("Lookup did not find the entry just Put")
	}
	if got.OK != want.OK || got.RunID != want.RunID || !got.AnalyzedAt.Equal(want.AnalyzedAt) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestPutOverwritesPriorEntry(t *testing.T) {
	c := openTestCache(t)
	hash := HashSource("do 1 + 2")
	first := Entry{OK: false, DiagnosticCode: "A003", RunID: "run-1", AnalyzedAt: time.Unix(0, 0).UTC()}
	second := Entry{OK: true, DiagnosticCode: "", RunID: "run-2", AnalyzedAt: time.Unix(100, 0).UTC()}

	if err := c.Put(hash, first); err != nil {
		t.Fatalf("Put(first) returned error: %v", err)
	}
	if err := c.Put(hash, second); err != nil {
		t.Fatalf("Put(second) returned error: %v", err)
	}

	got, found, err := c.Lookup(hash)
	if err != nil {
		t.Fatalf("Lookup returned error: %v", err)
	}
	if !found || !got.OK || got.RunID != "run-2" {
		t.Errorf("got %+v, want the second Put to win", got)
	}
}
