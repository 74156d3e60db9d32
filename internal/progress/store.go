// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package progress persists classification outcomes for later aggregation.
// The decision core never touches this store; the request layer logs each
// verdict best-effort after responding.
package progress

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/recyclo/pkg/types"
)

const (
	defaultDBPath  = "recyclo.db"
	defaultMaxLogs = 200
	hardLogCeiling = 1000
	summaryDays    = 14
)

// Outcome buckets used for aggregation. Raw actions are folded into these
// by NormalizeOutcome.
var outcomes = []string{"Recyclable", "Compost", "Landfill", "Unsure", "Other"}

// NormalizeOutcome folds a raw action or label into one of the aggregation
// buckets by substring vocabulary: anything mentioning recycling is
// Recyclable, organics are Compost, trash words are Landfill, abstentions
// are Unsure, and the rest (drop-off, hazard, unknowns) land in Other.
func NormalizeOutcome(raw string) string {
	s := strings.ToLower(raw)
	switch {
	case strings.Contains(s, "recycl"):
		return "Recyclable"
	case strings.Contains(s, "compost"), strings.Contains(s, "organic"):
		return "Compost"
	case strings.Contains(s, "landfill"), strings.Contains(s, "trash"), strings.Contains(s, "garbage"):
		return "Landfill"
	case strings.Contains(s, "unsure"), strings.Contains(s, "abstain"):
		return "Unsure"
	}
	return "Other"
}

// Entry is one logged classification.
type Entry struct {
	ID         int64     `json:"id"`
	User       string    `json:"user,omitempty"`
	Label      string    `json:"label"`
	Confidence float64   `json:"confidence"`
	Locality   string    `json:"locality"`
	CreatedAt  time.Time `json:"ts"`
}

// Summary aggregates a user's logged classifications.
type Summary struct {
	// Total is the number of logged classifications.
	Total int `json:"total"`

	// Totals counts every log row by outcome bucket.
	Totals map[string]int `json:"totals"`

	// PerDay buckets the last 14 days (UTC dates, ISO format) by outcome.
	// Every day in the window is present even when empty.
	PerDay map[string]map[string]int `json:"per_day"`
}

// Store manages the classification log SQLite database.
type Store struct {
	db      *sql.DB
	maxLogs int
}

// NewStore opens or creates the log database at cfg.DBPath and creates the
// schema if it does not exist.
func NewStore(cfg types.ProgressConfig) (*Store, error) {
	path := cfg.DBPath
	if path == "" {
		path = defaultDBPath
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxLogs := cfg.MaxLogs
	if maxLogs <= 0 {
		maxLogs = defaultMaxLogs
	}

	s := &Store{db: db, maxLogs: maxLogs}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS classification_logs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user TEXT NOT NULL DEFAULT '',
			label TEXT NOT NULL,
			confidence REAL,
			locality TEXT,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_logs_user ON classification_logs(user)`,
		`CREATE INDEX IF NOT EXISTS idx_logs_created_at ON classification_logs(created_at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Log records one resolved verdict for a user. Abstained verdicts are
// logged as Unsure; everything else is folded through NormalizeOutcome.
func (s *Store) Log(ctx context.Context, user string, v types.Verdict, locality string) error {
	label := "Unsure"
	if !v.Abstained {
		label = NormalizeOutcome(string(v.Action))
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO classification_logs (user, label, confidence, locality, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		user, label, v.Confidence, locality, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting log: %w", err)
	}
	return nil
}

// Recent returns a user's newest log entries, capped at limit. A zero
// limit applies the configured default; limits never exceed 1000.
func (s *Store) Recent(ctx context.Context, user string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = s.maxLogs
	}
	if limit > hardLogCeiling {
		limit = hardLogCeiling
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user, label, confidence, locality, created_at
		 FROM classification_logs WHERE user = ?
		 ORDER BY created_at DESC, id DESC LIMIT ?`,
		user, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying logs: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var created string
		if err := rows.Scan(&e.ID, &e.User, &e.Label, &e.Confidence, &e.Locality, &created); err != nil {
			return nil, fmt.Errorf("scanning log row: %w", err)
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339, created)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Summarize aggregates a user's logs: overall totals by outcome plus
// per-day buckets for the trailing 14-day window.
func (s *Store) Summarize(ctx context.Context, user string) (Summary, error) {
	summary := Summary{
		Totals: make(map[string]int, len(outcomes)),
		PerDay: make(map[string]map[string]int, summaryDays),
	}
	for _, o := range outcomes {
		summary.Totals[o] = 0
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT label, COUNT(*) FROM classification_logs WHERE user = ? GROUP BY label`,
		user,
	)
	if err != nil {
		return Summary{}, fmt.Errorf("querying totals: %w", err)
	}
	for rows.Next() {
		var label string
		var count int
		if err := rows.Scan(&label, &count); err != nil {
			rows.Close()
			return Summary{}, fmt.Errorf("scanning totals row: %w", err)
		}
		summary.Totals[NormalizeOutcome(label)] += count
		summary.Total += count
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return Summary{}, err
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	since := today.AddDate(0, 0, -(summaryDays - 1))
	for i := 0; i < summaryDays; i++ {
		day := since.AddDate(0, 0, i).Format(time.DateOnly)
		buckets := make(map[string]int, len(outcomes))
		for _, o := range outcomes {
			buckets[o] = 0
		}
		summary.PerDay[day] = buckets
	}

	rows, err = s.db.QueryContext(ctx,
		`SELECT substr(created_at, 1, 10) AS day, label, COUNT(*)
		 FROM classification_logs
		 WHERE user = ? AND created_at >= ?
		 GROUP BY day, label`,
		user, since.Format(time.RFC3339),
	)
	if err != nil {
		return Summary{}, fmt.Errorf("querying per-day counts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var day, label string
		var count int
		if err := rows.Scan(&day, &label, &count); err != nil {
			return Summary{}, fmt.Errorf("scanning per-day row: %w", err)
		}
		if buckets, ok := summary.PerDay[day]; ok {
			buckets[NormalizeOutcome(label)] += count
		}
	}
	return summary, rows.Err()
}

// Clear deletes all of a user's log entries and reports how many were
// removed.
func (s *Store) Clear(ctx context.Context, user string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM classification_logs WHERE user = ?`, user,
	)
	if err != nil {
		return 0, fmt.Errorf("deleting logs: %w", err)
	}
	return res.RowsAffected()
}
