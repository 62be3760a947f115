// Package filestore persists the session record as a JSON file. It is the
// default backend: no external services, readable with standard tools, and
// scoped to the current user via 0600 permissions.
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/holidaze/holidaze-go/internal/domain/auth"
	"github.com/holidaze/holidaze-go/internal/ports"
)

// Store writes the session record to a single JSON file. Writes go through a
// temp file and rename so a crashed write never leaves a torn record.
type Store struct {
	path string
}

// New creates a file-backed session store at the given path.
func New(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("session file path is required")
	}
	return &Store{path: path}, nil
}

// Path returns the location of the session file.
func (s *Store) Path() string { return s.path }

func (s *Store) Save(_ context.Context, sess auth.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return fmt.Errorf("create temp session file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		cleanupTemp(tmp, tmpName)
		return fmt.Errorf("write session file: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		cleanupTemp(tmp, tmpName)
		return fmt.Errorf("chmod session file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		removeQuiet(tmpName)
		return fmt.Errorf("close session file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		removeQuiet(tmpName)
		return fmt.Errorf("replace session file: %w", err)
	}
	return nil
}

func (s *Store) Load(_ context.Context) (auth.Session, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return auth.Session{}, ports.ErrNoSession
		}
		return auth.Session{}, fmt.Errorf("read session file: %w", err)
	}

	var sess auth.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return auth.Session{}, fmt.Errorf("unmarshal session: %w", err)
	}
	return sess, nil
}

func (s *Store) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}

func cleanupTemp(f *os.File, name string) {
	if err := f.Close(); err != nil {
		removeQuiet(name)
		return
	}
	removeQuiet(name)
}

func removeQuiet(name string) {
	_ = os.Remove(name)
}
