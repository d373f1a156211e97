package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save some scores
	_, err = store.SaveScore("platformer", 1200)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("platformer", 500)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("platformer", 2400)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Endless mode keeps its own board
	_, err = store.SaveScore("platformer_endless", 5000)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Retrieve top scores for the campaign
	scores, err := store.TopScores("platformer", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 2400 {
		t.Errorf("Expected highest score to be 2400, got %d", scores[0].Score)
	}
	if scores[1].Score != 1200 {
		t.Errorf("Expected second score to be 1200, got %d", scores[1].Score)
	}
	if scores[2].Score != 500 {
		t.Errorf("Expected third score to be 500, got %d", scores[2].Score)
	}

	// Retrieve top scores for endless
	endlessScores, err := store.TopScores("platformer_endless", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(endlessScores) != 1 {
		t.Errorf("Expected 1 endless score, got %d", len(endlessScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save 5 scores
	for i := 0; i < 5; i++ {
		store.SaveScore("platformer", (i+1)*100)
	}

	// Request only top 3
	scores, err := store.TopScores("platformer", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No scores yet
	high, err := store.HighScore("platformer")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	// Add scores
	store.SaveScore("platformer", 1000)
	store.SaveScore("platformer", 3000)
	store.SaveScore("platformer", 2000)

	high, err = store.HighScore("platformer")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 3000 {
		t.Errorf("Expected high score of 3000, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("platformer", 100)
	store.SaveScore("platformer", 200)
	store.SaveScore("platformer_endless", 300)

	// Clear only the campaign scores
	err = store.ClearScores("platformer")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	// Campaign should be empty
	campaignScores, _ := store.TopScores("platformer", 10)
	if len(campaignScores) != 0 {
		t.Errorf("Expected 0 campaign scores after clear, got %d", len(campaignScores))
	}

	// Endless should still have scores
	endlessScores, _ := store.TopScores("platformer_endless", 10)
	if len(endlessScores) != 1 {
		t.Errorf("Endless scores should not be affected by clearing the campaign")
	}
}

func TestStoreAllScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Add many scores
	for i := 0; i < 20; i++ {
		store.SaveScore("platformer", i*10)
	}

	scores, err := store.AllScores("platformer")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreSaveGameData(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No save yet
	save, err := store.LatestSave("platformer")
	if err != nil {
		t.Fatalf("LatestSave() failed: %v", err)
	}
	if save != nil {
		t.Error("Expected no save for a fresh database")
	}

	// Store a run, then overwrite it
	if _, err := store.SaveGameData("platformer", []byte("first run")); err != nil {
		t.Fatalf("SaveGameData() failed: %v", err)
	}
	if _, err := store.SaveGameData("platformer", []byte("second run")); err != nil {
		t.Fatalf("SaveGameData() failed: %v", err)
	}

	save, err = store.LatestSave("platformer")
	if err != nil {
		t.Fatalf("LatestSave() failed: %v", err)
	}
	if save == nil {
		t.Fatal("Expected a save after SaveGameData")
	}
	if !bytes.Equal(save.Data, []byte("second run")) {
		t.Errorf("Expected the newest save, got %q", save.Data)
	}
	if save.GameID != "platformer" {
		t.Errorf("Expected game_id 'platformer', got %s", save.GameID)
	}
}

func TestStoreSaveSlotsPerGame(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveGameData("platformer", []byte("campaign run"))
	store.SaveGameData("platformer_endless", []byte("endless run"))

	// Deleting one game's save leaves the other alone
	if err := store.DeleteSaves("platformer"); err != nil {
		t.Fatalf("DeleteSaves() failed: %v", err)
	}

	save, err := store.LatestSave("platformer")
	if err != nil {
		t.Fatalf("LatestSave() failed: %v", err)
	}
	if save != nil {
		t.Error("Expected the campaign save deleted")
	}

	save, err = store.LatestSave("platformer_endless")
	if err != nil {
		t.Fatalf("LatestSave() failed: %v", err)
	}
	if save == nil || !bytes.Equal(save.Data, []byte("endless run")) {
		t.Error("Expected the endless save untouched")
	}
}

func TestStoreGameStats(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("platformer", 100)
	store.SaveScore("platformer", 300)
	store.SaveScore("platformer", 200)

	stats, err := store.GetGameStats("platformer")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}

	if stats.GamesCount != 3 {
		t.Errorf("Expected 3 games played, got %d", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("Expected high score 300, got %d", stats.HighScore)
	}
	if stats.AvgScore != 200.0 {
		t.Errorf("Expected average 200.0, got %f", stats.AvgScore)
	}
	if stats.TotalScore != 600 {
		t.Errorf("Expected total 600, got %d", stats.TotalScore)
	}

	// A game with no plays gets zeroed stats, not an error
	empty, err := store.GetGameStats("platformer_endless")
	if err != nil {
		t.Fatalf("GetGameStats() failed for empty game: %v", err)
	}
	if empty.GamesCount != 0 || empty.HighScore != 0 {
		t.Errorf("Expected empty stats, got %+v", empty)
	}
}

func TestStoreAllGamesStats(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("platformer", 100)
	store.SaveScore("platformer", 200)
	store.SaveScore("platformer_endless", 900)

	stats, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}

	if len(stats) != 2 {
		t.Fatalf("Expected stats for 2 games, got %d", len(stats))
	}
	if stats["platformer"].GamesCount != 2 {
		t.Errorf("Expected 2 campaign plays, got %d", stats["platformer"].GamesCount)
	}
	if stats["platformer_endless"].HighScore != 900 {
		t.Errorf("Expected endless high score 900, got %d", stats["platformer_endless"].HighScore)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	// Test that ~ expansion works (we won't actually write to home)
	// Just verify the function doesn't crash
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
