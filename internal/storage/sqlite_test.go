package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	want := Run{
		Player:   "alice",
		Host:     "ssh",
		Score:    42,
		Coins:    42,
		Jumps:    17,
		Hits:     3,
		Distance: 6600,
		Duration: 30 * time.Second,
	}
	id, err := store.SaveRun(want)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("Expected positive ID, got %d", id)
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected 1 run, got %d", len(runs))
	}

	got := runs[0]
	if got.ID != id || got.Player != "alice" || got.Host != "ssh" {
		t.Errorf("Identity mismatch: %+v", got)
	}
	if got.Score != 42 || got.Coins != 42 || got.Jumps != 17 || got.Hits != 3 {
		t.Errorf("Counters mismatch: %+v", got)
	}
	if got.Distance != 6600 || got.Duration != 30*time.Second {
		t.Errorf("Distance/duration mismatch: %v %v", got.Distance, got.Duration)
	}
}

func TestStoreDefaultsPlayerAndHost(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(Run{Score: 5}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	runs, _ := store.TopRuns(1)
	if len(runs) != 1 || runs[0].Player != "local" || runs[0].Host != "tui" {
		t.Errorf("Expected local/tui defaults, got %+v", runs)
	}
}

func TestStoreTopRunsOrderAndLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(Run{Score: (i + 1) * 10})
	}
	// Same score, longer run ranks first.
	store.SaveRun(Run{Score: 50, Distance: 9000})

	runs, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Score != 50 || runs[0].Distance != 9000 {
		t.Errorf("Tie should go to the longer run, got %+v", runs[0])
	}
	if runs[1].Score != 50 || runs[2].Score != 40 {
		t.Errorf("Runs not in expected order: %+v", runs)
	}
}

func TestStorePlayerRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Player: "alice", Score: 10})
	store.SaveRun(Run{Player: "bob", Score: 99})
	store.SaveRun(Run{Player: "alice", Score: 30})

	runs, err := store.PlayerRuns("alice", 10)
	if err != nil {
		t.Fatalf("PlayerRuns() failed: %v", err)
	}
	if len(runs) != 2 || runs[0].Score != 30 || runs[1].Score != 10 {
		t.Errorf("Unexpected alice runs: %+v", runs)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 3; i++ {
		store.SaveRun(Run{Score: i})
	}

	runs, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 || runs[0].Score != 3 || runs[1].Score != 2 {
		t.Errorf("Unexpected recent runs: %+v", runs)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty table, got %d", high)
	}

	store.SaveRun(Run{Score: 100})
	store.SaveRun(Run{Score: 300})
	store.SaveRun(Run{Score: 200})

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Score: 100})
	store.SaveRun(Run{Score: 200})

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.TopRuns(10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
}

func TestStoreSummary(t *testing.T) {
	store := openTestStore(t)

	sum, err := store.Summary()
	if err != nil {
		t.Fatalf("Summary() on empty table failed: %v", err)
	}
	if sum.Runs != 0 || !sum.LastPlayed.IsZero() {
		t.Errorf("Expected empty summary, got %+v", sum)
	}

	store.SaveRun(Run{Score: 10, Coins: 10, Distance: 1000, Duration: 5 * time.Second})
	store.SaveRun(Run{Score: 30, Coins: 30, Distance: 3000, Duration: 12 * time.Second})

	sum, err = store.Summary()
	if err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}
	if sum.Runs != 2 || sum.HighScore != 30 || sum.AvgScore != 20 {
		t.Errorf("Unexpected counts: %+v", sum)
	}
	if sum.TotalCoins != 40 || sum.TotalDistance != 4000 {
		t.Errorf("Unexpected totals: %+v", sum)
	}
	if sum.LongestRun != 12*time.Second {
		t.Errorf("Expected longest run 12s, got %v", sum.LongestRun)
	}
	if sum.LastPlayed.IsZero() {
		t.Error("Expected LastPlayed to be set")
	}
}
