package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
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
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}

	if err := store.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}
}

func TestStoreReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore("catchcoin", "ann", 7); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("catchcoin")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 7 {
		t.Errorf("Expected score to survive reopen, got %d", high)
	}
}

func TestStoreSaveAndTopScores(t *testing.T) {
	store := openTestStore(t)

	scores := []struct {
		player string
		score  int
	}{
		{"ann", 10},
		{"bob", 30},
		{"ann", 20},
		{"cid", 5},
	}
	for _, s := range scores {
		id, err := store.SaveScore("catchcoin", s.player, s.score)
		if err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
		if id <= 0 {
			t.Errorf("Expected positive ID, got %d", id)
		}
	}
	if _, err := store.SaveScore("other", "dan", 99); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	top, err := store.TopScores("catchcoin", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(top) != 4 {
		t.Fatalf("Expected 4 scores, got %d", len(top))
	}

	want := []struct {
		player string
		score  int
	}{{"bob", 30}, {"ann", 20}, {"ann", 10}, {"cid", 5}}
	for i, w := range want {
		if top[i].Player != w.player || top[i].Score != w.score {
			t.Errorf("top[%d] = %s/%d, expected %s/%d", i, top[i].Player, top[i].Score, w.player, w.score)
		}
		if top[i].GameID != "catchcoin" {
			t.Errorf("top[%d].GameID = %q", i, top[i].GameID)
		}
		if top[i].CreatedAt.IsZero() {
			t.Errorf("top[%d].CreatedAt should be set", i)
		}
	}
}

func TestStoreTopScoresTiesKeepInsertOrder(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("catchcoin", "first", 12)
	store.SaveScore("catchcoin", "second", 12)

	top, err := store.TopScores("catchcoin", 2)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(top) != 2 || top[0].Player != "first" || top[1].Player != "second" {
		t.Errorf("Tied scores should keep insert order, got %+v", top)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("test", "p", (i+1)*100)
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

	// Non-positive limit falls back to 10
	for i := 0; i < 10; i++ {
		store.SaveScore("test", "p", i)
	}
	scores, err = store.TopScores("test", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 10 {
		t.Errorf("Expected default limit of 10, got %d", len(scores))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("catchcoin")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("catchcoin", "ann", 100)
	store.SaveScore("catchcoin", "bob", 300)
	store.SaveScore("catchcoin", "ann", 200)

	high, err = store.HighScore("catchcoin")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("catchcoin", "ann", 100)
	store.SaveScore("catchcoin", "bob", 200)
	store.SaveScore("other", "ann", 300)

	n, err := store.ClearScores("catchcoin")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("Expected 2 cleared rows, got %d", n)
	}

	left, _ := store.TopScores("catchcoin", 10)
	if len(left) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(left))
	}

	other, _ := store.TopScores("other", 10)
	if len(other) != 1 {
		t.Errorf("Other games should not be affected by clearing")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("catchcoin")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected zero stats for empty game, got %+v", empty)
	}

	store.SaveScore("catchcoin", "ann", 4)
	store.SaveScore("catchcoin", "bob", 8)
	store.SaveScore("catchcoin", "ann", 12)

	stats, err := store.Stats("catchcoin")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GameID != "catchcoin" {
		t.Errorf("GameID = %q", stats.GameID)
	}
	if stats.GamesCount != 3 {
		t.Errorf("GamesCount = %d, expected 3", stats.GamesCount)
	}
	if stats.HighScore != 12 {
		t.Errorf("HighScore = %d, expected 12", stats.HighScore)
	}
	if stats.AvgScore != 8 {
		t.Errorf("AvgScore = %v, expected 8", stats.AvgScore)
	}
	if stats.TotalScore != 24 {
		t.Errorf("TotalScore = %d, expected 24", stats.TotalScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
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

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.arcade/scores.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".arcade", "scores.db")); err != nil {
		t.Errorf("Database should be created under HOME: %v", err)
	}
}

func TestStoreOpenErrorsArePrefixed(t *testing.T) {
	// A regular file where a directory is expected
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Open(filepath.Join(blocker, "scores.db"))
	if err == nil {
		t.Fatal("Open() should fail when the parent is a file")
	}
	if !strings.HasPrefix(err.Error(), "storage:") {
		t.Errorf("error %q should carry the storage: prefix", err)
	}
}
