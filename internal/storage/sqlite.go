// Package storage provides SQLite-based persistence for the session history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/shimonopoly/internal/config"
	"github.com/vovakirdan/shimonopoly/internal/game"
)

const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for the session history.
type Store struct {
	db *sql.DB
}

// Session is one finished game as stored in the history.
type Session struct {
	ID               string
	Player           string
	Mode             string
	Seed             int64
	NumCities        int
	Damaged          int
	Restored         int
	Score            float64
	TransformersLeft float64
	TimerDuration    int
	CreatedAt        time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := config.ExpandHome(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			player TEXT NOT NULL,
			mode TEXT NOT NULL,
			seed INTEGER NOT NULL,
			num_cities INTEGER NOT NULL,
			damaged INTEGER NOT NULL,
			restored INTEGER NOT NULL,
			score REAL NOT NULL,
			transformers_left REAL NOT NULL,
			timer_duration INTEGER NOT NULL,
			created_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_mode ON sessions(mode);
		CREATE INDEX IF NOT EXISTS idx_sessions_top ON sessions(mode, score DESC);
		CREATE INDEX IF NOT EXISTS idx_sessions_player ON sessions(player);
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

// SaveSession records a finished game and returns its generated ID.
func (s *Store) SaveSession(sum game.Summary) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO sessions
		 (id, player, mode, seed, num_cities, damaged, restored, score, transformers_left, timer_duration, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id,
		sum.Player,
		sum.Mode,
		sum.Seed,
		sum.NumCities,
		sum.Damaged,
		sum.Restored,
		sum.Score,
		sum.TransformersLeft,
		sum.TimerDuration,
		time.Now().UTC().Format(timeLayout),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save session: %w", err)
	}
	return id, nil
}

const sessionColumns = `id, player, mode, seed, num_cities, damaged, restored,
		        score, transformers_left, timer_duration, created_at`

// TopSessions retrieves the best N sessions for the given mode.
// Results are ordered by score descending, newest first on ties.
func (s *Store) TopSessions(mode string, limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 10
	}

	return s.querySessions(
		`SELECT `+sessionColumns+`
		 FROM sessions
		 WHERE mode = ?
		 ORDER BY score DESC, created_at DESC
		 LIMIT ?`,
		mode, limit,
	)
}

// AllSessions retrieves all sessions for the given mode (no limit).
func (s *Store) AllSessions(mode string) ([]Session, error) {
	return s.querySessions(
		`SELECT `+sessionColumns+`
		 FROM sessions
		 WHERE mode = ?
		 ORDER BY score DESC, created_at DESC`,
		mode,
	)
}

// PlayerSessions retrieves the most recent sessions of one player.
func (s *Store) PlayerSessions(player string, limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 20
	}

	return s.querySessions(
		`SELECT `+sessionColumns+`
		 FROM sessions
		 WHERE player = ?
		 ORDER BY created_at DESC
		 LIMIT ?`,
		player, limit,
	)
}

// SessionByID retrieves a session by its ID.
// Returns nil without error if it does not exist.
func (s *Store) SessionByID(id string) (*Session, error) {
	sessions, err := s.querySessions(
		`SELECT `+sessionColumns+` FROM sessions WHERE id = ?`,
		id,
	)
	if err != nil {
		return nil, err
	}
	if len(sessions) == 0 {
		return nil, nil
	}
	return &sessions[0], nil
}

func (s *Store) querySessions(query string, args ...any) ([]Session, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var e Session
		var createdAt any
		if err := rows.Scan(
			&e.ID,
			&e.Player,
			&e.Mode,
			&e.Seed,
			&e.NumCities,
			&e.Damaged,
			&e.Restored,
			&e.Score,
			&e.TransformersLeft,
			&e.TimerDuration,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		sessions = append(sessions, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return sessions, nil
}

// HighScore returns the highest score for the given mode.
// Returns 0 if no sessions exist.
func (s *Store) HighScore(mode string) (float64, error) {
	var score sql.NullFloat64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM sessions WHERE mode = ?",
		mode,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return score.Float64, nil
}

// ClearSessions deletes all sessions for the given mode.
func (s *Store) ClearSessions(mode string) error {
	_, err := s.db.Exec("DELETE FROM sessions WHERE mode = ?", mode)
	if err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

// ModeStats contains aggregated statistics for a scoring mode.
type ModeStats struct {
	Mode          string
	GamesCount    int
	HighScore     float64
	AvgScore      float64
	TotalRestored int64
	LastPlayed    time.Time
}

// GetModeStats retrieves aggregated statistics for a specific mode.
func (s *Store) GetModeStats(mode string) (*ModeStats, error) {
	stats := &ModeStats{Mode: mode}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(restored), 0)
		 FROM sessions WHERE mode = ?`,
		mode,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalRestored)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get mode stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM sessions WHERE mode = ? ORDER BY created_at DESC LIMIT 1`,
		mode,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// GetAllModesStats retrieves statistics for every mode that has been played.
func (s *Store) GetAllModesStats() (map[string]*ModeStats, error) {
	rows, err := s.db.Query(
		`SELECT mode, COUNT(*), MAX(score), AVG(score), SUM(restored), MAX(created_at)
		 FROM sessions
		 GROUP BY mode`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all modes stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*ModeStats)
	for rows.Next() {
		var m ModeStats
		var lastPlayed any
		if err := rows.Scan(&m.Mode, &m.GamesCount, &m.HighScore, &m.AvgScore, &m.TotalRestored, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		m.LastPlayed = parseTime(lastPlayed)
		stats[m.Mode] = &m
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// parseTime handles both time.Time and string values from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
	case []byte:
		if parsed, err := time.Parse(timeLayout, string(t)); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
