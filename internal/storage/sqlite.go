// Package storage provides SQLite-based persistence for minesweeper best
// times. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for best-time persistence.
type Store struct {
	db *sql.DB
}

// TimeEntry represents a single finished round on the best-times table.
type TimeEntry struct {
	ID         int64
	Difficulty string
	Player     string
	Seconds    int
	CreatedAt  time.Time
}

// TimesStats contains aggregated statistics for one difficulty.
type TimesStats struct {
	Difficulty string
	Rounds     int
	Best       int
	AvgSeconds float64
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS best_times (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			difficulty TEXT NOT NULL,
			player TEXT NOT NULL,
			seconds INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_best_times_difficulty ON best_times(difficulty);
		CREATE INDEX IF NOT EXISTS idx_best_times_top ON best_times(difficulty, seconds ASC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveTime records a finished round for the given difficulty.
// Returns the ID of the inserted record.
func (s *Store) SaveTime(difficulty, player string, seconds int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO best_times (difficulty, player, seconds) VALUES (?, ?, ?)",
		difficulty, player, seconds,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save time: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// BestTime returns the fastest round for the given difficulty, with the
// earliest record keeping the title on a tie. Returns nil if no rounds have
// been recorded.
func (s *Store) BestTime(difficulty string) (*TimeEntry, error) {
	var e TimeEntry
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, difficulty, player, seconds, created_at
		 FROM best_times
		 WHERE difficulty = ?
		 ORDER BY seconds ASC, created_at ASC
		 LIMIT 1`,
		difficulty,
	).Scan(&e.ID, &e.Difficulty, &e.Player, &e.Seconds, &createdAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best time: %w", err)
	}

	// Parse the datetime - handle both time.Time and string
	switch v := createdAt.(type) {
	case time.Time:
		e.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			e.CreatedAt = parsed
		}
	}

	return &e, nil
}

// TopTimes retrieves the N fastest rounds for the given difficulty.
// Results are ordered by seconds ascending.
func (s *Store) TopTimes(difficulty string, limit int) ([]TimeEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, difficulty, player, seconds, created_at
		 FROM best_times
		 WHERE difficulty = ?
		 ORDER BY seconds ASC, created_at ASC
		 LIMIT ?`,
		difficulty, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query times: %w", err)
	}
	defer rows.Close()

	var entries []TimeEntry
	for rows.Next() {
		var e TimeEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Difficulty, &e.Player, &e.Seconds, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// ClearTimes deletes all recorded rounds for the given difficulty.
// An empty difficulty clears the whole table.
func (s *Store) ClearTimes(difficulty string) error {
	var err error
	if difficulty == "" {
		_, err = s.db.Exec("DELETE FROM best_times")
	} else {
		_, err = s.db.Exec("DELETE FROM best_times WHERE difficulty = ?", difficulty)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot clear times: %w", err)
	}
	return nil
}

// Stats retrieves aggregated statistics for a specific difficulty.
func (s *Store) Stats(difficulty string) (*TimesStats, error) {
	stats := &TimesStats{Difficulty: difficulty}

	// Get count, best, avg
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MIN(seconds), 0), COALESCE(AVG(seconds), 0)
		 FROM best_times WHERE difficulty = ?`,
		difficulty,
	).Scan(&stats.Rounds, &stats.Best, &stats.AvgSeconds)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	// Get last played
	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM best_times WHERE difficulty = ? ORDER BY created_at DESC LIMIT 1`,
		difficulty,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		switch v := lastPlayed.(type) {
		case time.Time:
			stats.LastPlayed = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				stats.LastPlayed = parsed
			}
		}
	}

	return stats, nil
}

// AllStats retrieves statistics for every difficulty that has been played.
func (s *Store) AllStats() (map[string]*TimesStats, error) {
	rows, err := s.db.Query(
		`SELECT difficulty, COUNT(*), MIN(seconds), AVG(seconds), MAX(created_at)
		 FROM best_times
		 GROUP BY difficulty`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*TimesStats)
	for rows.Next() {
		var st TimesStats
		var lastPlayed any
		if err := rows.Scan(&st.Difficulty, &st.Rounds, &st.Best, &st.AvgSeconds, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}

		switch v := lastPlayed.(type) {
		case time.Time:
			st.LastPlayed = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				st.LastPlayed = parsed
			}
		}

		stats[st.Difficulty] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
