package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_chat_log_store.go -package=mocks github.com/DARSHAN2224/Portfolio-sub000/internal/storage ChatLogStore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ChatLogStore defines transcript persistence for assistant conversations.
type ChatLogStore interface {
	// Append stores one transcript entry. A missing ID is generated.
	Append(ctx context.Context, entry *ChatLogRecord) error
	// ListBySession returns up to limit entries for a session, oldest first.
	ListBySession(ctx context.Context, sessionID string, limit int) ([]ChatLogRecord, error)
}

// ChatLogRepo provides methods for chat transcript operations.
// It implements the ChatLogStore interface.
type ChatLogRepo struct {
	db *sql.DB
}

// NewChatLogRepo creates a new ChatLogRepo.
func NewChatLogRepo(db *sql.DB) *ChatLogRepo {
	return &ChatLogRepo{db: db}
}

// Append stores one transcript entry. A missing ID is generated.
func (r *ChatLogRepo) Append(ctx context.Context, entry *ChatLogRecord) error {
	if entry.SessionID == "" {
		return fmt.Errorf("chat log entry requires a session id")
	}
	if entry.Sender != "user" && entry.Sender != "bot" {
		return fmt.Errorf("chat log sender must be user or bot, got %q", entry.Sender)
	}
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO chat_logs (id, session_id, sender, text) VALUES (?, ?, ?, ?)",
		entry.ID, entry.SessionID, entry.Sender, entry.Text,
	)
	if err != nil {
		return fmt.Errorf("failed to insert chat log: %w", err)
	}
	return nil
}

// ListBySession returns up to limit entries for a session, oldest first.
func (r *ChatLogRepo) ListBySession(ctx context.Context, sessionID string, limit int) ([]ChatLogRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, session_id, sender, text, created_at FROM chat_logs
		 WHERE session_id = ? ORDER BY created_at ASC LIMIT ?`, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query chat logs: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var entries []ChatLogRecord
	for rows.Next() {
		var e ChatLogRecord
		var createdAt string
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Sender, &e.Text, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan chat log: %w", err)
		}
		e.CreatedAt = parseSQLiteTime(createdAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate chat logs: %w", err)
	}
	return entries, nil
}

// parseSQLiteTime parses SQLite DATETIME strings in either the default
// "2006-01-02 15:04:05" format or RFC3339. Unparseable values yield the
// zero time rather than an error.
func parseSQLiteTime(s string) time.Time {
	if t, err := time.Parse("2006-01-02 15:04:05", s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Time{}
}
