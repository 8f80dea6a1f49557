// ABOUTME: SQLite-backed store for quote requests and general inquiries
// ABOUTME: Persists free-form JSON payloads with generated IDs

package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/Atlas00000/terra-client/backend/models"
)

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

// createdAtLayout is fixed-width so created_at sorts lexically
const createdAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ErrEmptyPayload is returned when a submission carries no JSON object
var ErrEmptyPayload = errors.New("payload must be a non-empty JSON object")

// InquiryStore persists lead-capture submissions
type InquiryStore struct {
	db  *sql.DB
	now func() time.Time
}

// NewInquiryStore opens (creating if needed) the SQLite database at path.
// ":memory:" keeps everything in process.
func NewInquiryStore(path string) (*InquiryStore, error) {
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0700); err != nil {
				return nil, fmt.Errorf("inquiries: create data dir: %w", err)
			}
		}
	}

	db, err := openDB("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("inquiries: open database: %w", err)
	}
	// a single connection keeps ":memory:" databases shared across queries
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("inquiries: pragma %q: %w", p, err)
		}
	}

	s := &InquiryStore{db: db, now: time.Now}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("inquiries: migration: %w", err)
	}
	return s, nil
}

func (s *InquiryStore) migrate() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS inquiries (
		id         TEXT PRIMARY KEY,
		kind       TEXT NOT NULL,
		payload    TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`)
	return err
}

// Close closes the underlying database connection.
func (s *InquiryStore) Close() error {
	return s.db.Close()
}

// Ping reports whether the database is reachable
func (s *InquiryStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Save stores a submission and returns it with its generated ID
func (s *InquiryStore) Save(ctx context.Context, kind models.InquiryKind, payload json.RawMessage) (models.Inquiry, error) {
	var obj map[string]any
	if err := json.Unmarshal(payload, &obj); err != nil || len(obj) == 0 {
		return models.Inquiry{}, ErrEmptyPayload
	}

	inq := models.Inquiry{
		ID:        uuid.NewString(),
		Kind:      kind,
		Payload:   payload,
		CreatedAt: s.now().UTC(),
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO inquiries (id, kind, payload, created_at) VALUES (?, ?, ?, ?)`,
		inq.ID, string(inq.Kind), string(inq.Payload), inq.CreatedAt.Format(createdAtLayout))
	if err != nil {
		return models.Inquiry{}, fmt.Errorf("inquiries: insert: %w", err)
	}
	return inq, nil
}

// List returns submissions of kind, newest first. An empty kind lists everything.
func (s *InquiryStore) List(ctx context.Context, kind models.InquiryKind, limit int) ([]models.Inquiry, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `SELECT id, kind, payload, created_at FROM inquiries`
	args := []any{}
	if kind != "" {
		query += ` WHERE kind = ?`
		args = append(args, string(kind))
	}
	query += ` ORDER BY created_at DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("inquiries: list: %w", err)
	}
	defer rows.Close()

	out := []models.Inquiry{}
	for rows.Next() {
		var inq models.Inquiry
		var k, payload, created string
		if err := rows.Scan(&inq.ID, &k, &payload, &created); err != nil {
			return nil, fmt.Errorf("inquiries: scan: %w", err)
		}
		inq.Kind = models.InquiryKind(k)
		inq.Payload = json.RawMessage(payload)
		inq.CreatedAt, err = time.Parse(createdAtLayout, created)
		if err != nil {
			return nil, fmt.Errorf("inquiries: parse created_at: %w", err)
		}
		out = append(out, inq)
	}
	return out, rows.Err()
}
