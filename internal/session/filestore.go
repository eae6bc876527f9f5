package session

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/1Percent-hub/ScholarHub/pkg/errors"
)

// fileFormat is the on-disk shape: every session in one JSON document.
type fileFormat struct {
	Sessions map[string]*Session `json:"sessions"`
	Meta     fileMeta            `json:"meta"`
}

type fileMeta struct {
	Version     int       `json:"version"`
	LastUpdated time.Time `json:"last_updated"`
}

const fileFormatVersion = 1

// FileStore keeps all sessions in a single JSON file. The file is read once
// at open and held in memory; every write serialises the full document to a
// temp file and renames it into place so a crash never leaves a torn file.
type FileStore struct {
	path     string
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewFileStore opens (or creates) the session file at path.
func NewFileStore(path string) (*FileStore, error) {
	fs := &FileStore{path: path, sessions: make(map[string]*Session)}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fs, nil
		}
		return nil, fmt.Errorf("reading session file %s: %w", path, err)
	}
	var doc fileFormat
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing session file %s: %w", path, err)
	}
	if doc.Sessions != nil {
		fs.sessions = doc.Sessions
	}
	return fs, nil
}

// Get returns a copy of the stored session.
func (f *FileStore) Get(ctx context.Context, id string) (*Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[id]
	if !ok {
		return nil, errors.ErrSessionNotFound
	}
	return s.Clone(), nil
}

// Put stores a copy of s under id and persists the file.
func (f *FileStore) Put(ctx context.Context, id string, s *Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions[id] = s.Clone()
	return f.saveLocked()
}

// Delete removes the session for id and persists the file.
func (f *FileStore) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.sessions[id]; !ok {
		return nil
	}
	delete(f.sessions, id)
	return f.saveLocked()
}

// saveLocked writes the full document atomically. Callers hold f.mu.
func (f *FileStore) saveLocked() error {
	doc := fileFormat{
		Sessions: f.sessions,
		Meta:     fileMeta{Version: fileFormatVersion, LastUpdated: time.Now().UTC()},
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding sessions: %w", err)
	}
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating session dir %s: %w", dir, err)
		}
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing temp session file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("renaming session file: %w", err)
	}
	return nil
}
