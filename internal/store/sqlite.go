package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/mindhaven/mindhaven/internal/models"
)

// SQLiteStore implements Store using SQLite. database/sql pools
// connections, so one store instance is safe for concurrent callers.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{db: db}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS conversations (
		id           TEXT PRIMARY KEY,
		user_message TEXT NOT NULL,
		bot_response TEXT NOT NULL,
		mood         TEXT NOT NULL,
		categories   TEXT NOT NULL DEFAULT '',
		timestamp    TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_conversations_timestamp ON conversations(timestamp DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteStore) Append(ctx context.Context, turn models.ConversationTurn) error {
	id := turn.ID
	if id == "" {
		id = ulid.Make().String()
	}
	ts := turn.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO conversations (id, user_message, bot_response, mood, categories, timestamp)
		VALUES (?, ?, ?, ?, ?, ?)`,
		id,
		turn.UserMessage,
		turn.BotResponse,
		string(turn.Mood),
		strings.Join(turn.Categories, ","),
		ts.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("append turn: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Recent(ctx context.Context, limit int) ([]models.ConversationTurn, error) {
	if limit <= 0 {
		limit = 5
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_message, bot_response, mood, categories, timestamp
		FROM conversations
		ORDER BY timestamp DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent: %w", err)
	}
	defer rows.Close()

	var turns []models.ConversationTurn
	for rows.Next() {
		var turn models.ConversationTurn
		var categories, ts string
		var mood string
		if err := rows.Scan(&turn.ID, &turn.UserMessage, &turn.BotResponse, &mood, &categories, &ts); err != nil {
			return nil, fmt.Errorf("scan turn: %w", err)
		}
		turn.Mood = models.Mood(mood)
		if categories != "" {
			turn.Categories = strings.Split(categories, ",")
		} else {
			turn.Categories = []string{}
		}
		if parsed, err := time.Parse(time.RFC3339Nano, ts); err == nil {
			turn.Timestamp = parsed
		}
		turns = append(turns, turn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate turns: %w", err)
	}
	return turns, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
