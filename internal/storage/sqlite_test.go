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
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file and its parent directory were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestBestScoreEmpty(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for an empty database, got %d", best)
	}
}

func TestSaveBestIsMonotonic(t *testing.T) {
	store := openTestStore(t)

	steps := []struct {
		save, want int
	}{
		{5, 5},
		{10, 10},
		{7, 10},
		{10, 10},
		{12, 12},
	}

	for _, step := range steps {
		if err := store.SaveBest(step.save); err != nil {
			t.Fatalf("SaveBest(%d) failed: %v", step.save, err)
		}
		best, err := store.BestScore()
		if err != nil {
			t.Fatalf("BestScore() failed: %v", err)
		}
		if best != step.want {
			t.Errorf("after SaveBest(%d) best = %d, expected %d", step.save, best, step.want)
		}
	}
}

func TestBestScorePersistsAcrossOpen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SaveBest(10); err != nil {
		t.Fatalf("SaveBest() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	if best, _ := store.BestScore(); best != 10 {
		t.Errorf("Best score after reopen = %d, expected 10", best)
	}
}

func TestRecordAndTopRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []struct {
		score int
		d     time.Duration
	}{
		{3, 20 * time.Second},
		{9, 65 * time.Second},
		{1, 5 * time.Second},
		{9, 70 * time.Second},
		{4, 30 * time.Second},
	}
	for _, r := range runs {
		if err := store.RecordRun(r.score, r.d); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(top))
	}

	// Ties go to the most recent run
	if top[0].Score != 9 || top[0].Duration != 70*time.Second {
		t.Errorf("top[0] = %+v, expected the later 9-point run", top[0])
	}
	if top[1].Score != 9 || top[2].Score != 4 {
		t.Errorf("Runs not in expected order: %+v", top)
	}

	recent, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Score != 4 || recent[1].Score != 9 {
		t.Errorf("RecentRuns() = %+v", recent)
	}
}

func TestStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 0 || stats.BestScore != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}

	store.RecordRun(2, 10*time.Second)
	store.RecordRun(6, 30*time.Second)
	store.SaveBest(6)

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.BestScore != 6 || stats.AvgScore != 4 || stats.TotalTime != 40*time.Second {
		t.Errorf("stats = %+v", stats)
	}
}

func TestClear(t *testing.T) {
	store := openTestStore(t)

	store.RecordRun(5, time.Second)
	store.SaveBest(5)

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}

	if best, _ := store.BestScore(); best != 0 {
		t.Errorf("best after Clear = %d", best)
	}
	if runs, _ := store.TopRuns(10); len(runs) != 0 {
		t.Errorf("runs after Clear = %d", len(runs))
	}
}
