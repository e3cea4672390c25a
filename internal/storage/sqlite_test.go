package storage

import (
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

	// Save some rounds
	_, err = store.SaveTime("beginner", "alice", 45)
	if err != nil {
		t.Fatalf("SaveTime() failed: %v", err)
	}

	_, err = store.SaveTime("beginner", "bob", 30)
	if err != nil {
		t.Fatalf("SaveTime() failed: %v", err)
	}

	_, err = store.SaveTime("beginner", "carol", 60)
	if err != nil {
		t.Fatalf("SaveTime() failed: %v", err)
	}

	// Different difficulty
	_, err = store.SaveTime("expert", "alice", 300)
	if err != nil {
		t.Fatalf("SaveTime() failed: %v", err)
	}

	// Retrieve top times for beginner
	times, err := store.TopTimes("beginner", 10)
	if err != nil {
		t.Fatalf("TopTimes() failed: %v", err)
	}

	if len(times) != 3 {
		t.Errorf("Expected 3 times, got %d", len(times))
	}

	// Should be sorted ascending, fastest first
	if times[0].Seconds != 30 || times[0].Player != "bob" {
		t.Errorf("Expected fastest round 30s by bob, got %ds by %s", times[0].Seconds, times[0].Player)
	}
	if times[1].Seconds != 45 {
		t.Errorf("Expected second round to be 45s, got %d", times[1].Seconds)
	}
	if times[2].Seconds != 60 {
		t.Errorf("Expected third round to be 60s, got %d", times[2].Seconds)
	}

	// Retrieve top times for expert
	expertTimes, err := store.TopTimes("expert", 10)
	if err != nil {
		t.Fatalf("TopTimes() failed: %v", err)
	}

	if len(expertTimes) != 1 {
		t.Errorf("Expected 1 expert time, got %d", len(expertTimes))
	}
}

func TestStoreTopTimesLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save 5 rounds
	for i := 0; i < 5; i++ {
		store.SaveTime("beginner", "player", (i+1)*10)
	}

	// Request only top 3
	times, err := store.TopTimes("beginner", 3)
	if err != nil {
		t.Fatalf("TopTimes() failed: %v", err)
	}

	if len(times) != 3 {
		t.Errorf("Expected 3 times with limit, got %d", len(times))
	}

	// Should be 10, 20, 30 (fastest 3)
	if times[0].Seconds != 10 || times[1].Seconds != 20 || times[2].Seconds != 30 {
		t.Errorf("Times not in expected order: %v", times)
	}
}

func TestStoreBestTime(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No rounds yet
	best, err := store.BestTime("beginner")
	if err != nil {
		t.Fatalf("BestTime() failed: %v", err)
	}
	if best != nil {
		t.Errorf("Expected no best time for empty difficulty, got %+v", best)
	}

	// Add rounds
	store.SaveTime("beginner", "alice", 50)
	store.SaveTime("beginner", "bob", 25)
	store.SaveTime("beginner", "carol", 40)

	best, err = store.BestTime("beginner")
	if err != nil {
		t.Fatalf("BestTime() failed: %v", err)
	}
	if best == nil {
		t.Fatal("Expected a best time, got nil")
	}
	if best.Seconds != 25 || best.Player != "bob" {
		t.Errorf("Expected best time 25s by bob, got %ds by %s", best.Seconds, best.Player)
	}
}

func TestStoreClearTimes(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveTime("beginner", "alice", 30)
	store.SaveTime("beginner", "bob", 40)
	store.SaveTime("expert", "alice", 200)

	// Clear only beginner times
	err = store.ClearTimes("beginner")
	if err != nil {
		t.Fatalf("ClearTimes() failed: %v", err)
	}

	// Beginner should be empty
	beginnerTimes, _ := store.TopTimes("beginner", 10)
	if len(beginnerTimes) != 0 {
		t.Errorf("Expected 0 beginner times after clear, got %d", len(beginnerTimes))
	}

	// Expert should still have times
	expertTimes, _ := store.TopTimes("expert", 10)
	if len(expertTimes) != 1 {
		t.Errorf("Expert times should not be affected by clearing beginner")
	}

	// Empty difficulty clears everything
	err = store.ClearTimes("")
	if err != nil {
		t.Fatalf("ClearTimes() failed: %v", err)
	}
	expertTimes, _ = store.TopTimes("expert", 10)
	if len(expertTimes) != 0 {
		t.Errorf("Expected 0 expert times after clearing all, got %d", len(expertTimes))
	}
}

func TestStoreStats(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Empty stats
	stats, err := store.Stats("beginner")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Rounds != 0 || stats.Best != 0 {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveTime("beginner", "alice", 20)
	store.SaveTime("beginner", "bob", 40)

	stats, err = store.Stats("beginner")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Rounds != 2 {
		t.Errorf("Expected 2 rounds, got %d", stats.Rounds)
	}
	if stats.Best != 20 {
		t.Errorf("Expected best of 20, got %d", stats.Best)
	}
	if stats.AvgSeconds != 30 {
		t.Errorf("Expected average of 30, got %f", stats.AvgSeconds)
	}
}

func TestStoreAllStats(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveTime("beginner", "alice", 30)
	store.SaveTime("beginner", "bob", 50)
	store.SaveTime("expert", "alice", 240)

	stats, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats() failed: %v", err)
	}

	if len(stats) != 2 {
		t.Fatalf("Expected stats for 2 difficulties, got %d", len(stats))
	}
	if stats["beginner"].Rounds != 2 || stats["beginner"].Best != 30 {
		t.Errorf("Unexpected beginner stats: %+v", stats["beginner"])
	}
	if stats["expert"].Rounds != 1 || stats["expert"].Best != 240 {
		t.Errorf("Unexpected expert stats: %+v", stats["expert"])
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
