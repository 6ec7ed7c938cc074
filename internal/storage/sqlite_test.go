package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
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

func TestStoreOpenCreatesNestedPath(t *testing.T) {
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

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.spinbox/test.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".spinbox", "test.db")); err != nil {
		t.Errorf("Database not created under HOME: %v", err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 50, 200} {
		if _, err := store.SaveScore("spin", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("spin_segment", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("spin", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	expected := []int{200, 100, 50}
	for i, want := range expected {
		if scores[i].Score != want {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, want)
		}
		if scores[i].CreatedAt.IsZero() {
			t.Errorf("scores[%d].CreatedAt not parsed", i)
		}
	}

	other, err := store.TopScores("spin_segment", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("Expected 1 spin_segment score, got %d", len(other))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("spin")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty demo, got %d", high)
	}

	store.SaveScore("spin", 100)
	store.SaveScore("spin", 300)
	store.SaveScore("spin", 200)

	high, err = store.HighScore("spin")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("test", i*10)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("spin")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveScore("spin", 10)
	store.SaveScore("spin", 30)

	stats, err := store.GetGameStats("spin")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 30 || stats.TotalScore != 40 {
		t.Errorf("stats = %+v, expected count 2, high 30, total 40", stats)
	}
	if stats.AvgScore != 20 {
		t.Errorf("AvgScore = %v, expected 20", stats.AvgScore)
	}
}

func TestStoreRuns(t *testing.T) {
	store := openTestStore(t)

	id1, err := store.SaveRun(RunRecord{GameID: "spin", Strategy: "local", Ticks: 600, Bounces: 7, FinalAngle: 300, Speed: 4.6})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := uuid.Parse(id1); err != nil {
		t.Errorf("run ID %q is not a uuid: %v", id1, err)
	}

	id2, err := store.SaveRun(RunRecord{RunID: "fixed-id", GameID: "spin", Strategy: "local", Ticks: 1200, Bounces: 15, SpeedDrift: 1e-12})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id2 != "fixed-id" {
		t.Errorf("SaveRun() = %q, expected caller's run ID", id2)
	}

	if _, err := store.SaveRun(RunRecord{RunID: "fixed-id", GameID: "spin"}); err == nil {
		t.Error("duplicate run ID should fail")
	}

	store.SaveRun(RunRecord{GameID: "spin_segment", Strategy: "segment"})

	runs, err := store.RecentRuns("spin", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}
	if runs[0].RunID != "fixed-id" || runs[1].RunID != id1 {
		t.Errorf("runs not newest first: %q, %q", runs[0].RunID, runs[1].RunID)
	}
	if runs[1].Bounces != 7 || runs[1].FinalAngle != 300 || runs[1].Speed != 4.6 {
		t.Errorf("run fields not round-tripped: %+v", runs[1])
	}

	limited, _ := store.RecentRuns("spin", 1)
	if len(limited) != 1 {
		t.Errorf("Expected 1 run with limit, got %d", len(limited))
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("spin", 100)
	store.SaveScore("spin", 200)
	store.SaveScore("spin_segment", 300)
	store.SaveRun(RunRecord{GameID: "spin", Strategy: "local"})

	if err := store.ClearScores("spin"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("spin", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 spin scores after clear, got %d", len(scores))
	}
	runs, _ := store.RecentRuns("spin", 10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 spin runs after clear, got %d", len(runs))
	}

	other, _ := store.TopScores("spin_segment", 10)
	if len(other) != 1 {
		t.Errorf("spin_segment scores should not be affected by clearing spin")
	}
}
