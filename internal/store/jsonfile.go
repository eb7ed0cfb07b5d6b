package store

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/joescharf/pomo/internal/models"
)

// historyDoc is the on-disk document. The whole sequence is rewritten on
// every append, which caps practical history size but is adequate for
// single-user daily use.
type historyDoc struct {
	Version  int                    `json:"version"`
	Sessions []models.SessionRecord `json:"sessions"`
}

// JSONStore implements Store on a single human-inspectable JSON file.
// It assumes a single process; concurrent writers are out of scope.
type JSONStore struct {
	path string
}

// NewJSONStore creates a store backed by the given file path. The file and
// its parent directory are created on first append.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) Path() string { return s.path }

func (s *JSONStore) Load(ctx context.Context) ([]models.SessionRecord, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		// First run, not an error.
		return []models.SessionRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read history file: %w", err)
	}

	var doc historyDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse history file %s: %w", s.path, err)
	}
	if doc.Sessions == nil {
		doc.Sessions = []models.SessionRecord{}
	}
	return doc.Sessions, nil
}

func (s *JSONStore) Append(ctx context.Context, rec *models.SessionRecord) error {
	sessions, err := s.Load(ctx)
	if err != nil {
		return err
	}

	if rec.ID == "" {
		rec.ID = newULID()
	}
	sessions = append(sessions, *rec)

	return s.write(historyDoc{Version: 1, Sessions: sessions})
}

// write persists the document atomically: temp file in the same directory,
// fsync, then rename over the target.
func (s *JSONStore) write(doc historyDoc) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create history directory: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(dir, ".history-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write history: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync history: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close history: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace history file: %w", err)
	}
	return nil
}

// newULID generates a new ULID string.
func newULID() string {
	entropy := rand.New(rand.NewSource(time.Now().UnixNano()))
	return ulid.MustNew(ulid.Timestamp(time.Now()), ulid.Monotonic(entropy, 0)).String()
}
