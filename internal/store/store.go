package store

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

const (
	BackendFile   = "file"
	BackendBadger = "badger"

	DefaultDataDir = "data"
)

var emptyDocument = []byte("{}")

// Store keeps named JSON documents. Get creates an empty document on first
// access; Put replaces the whole document.
type Store interface {
	Get(name string) ([]byte, error)
	Put(name string, doc []byte) error
	Close() error
}

// Config selects and configures a backend.
type Config struct {
	Backend   string `mapstructure:"backend"`
	DataDir   string `mapstructure:"data-dir"`
	BadgerDir string `mapstructure:"badger-dir"`
}

// Open returns the backend described by cfg. An empty backend means the file
// store.
func Open(cfg Config, logger *zap.Logger) (Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	dataDir := strings.TrimSpace(cfg.DataDir)
	if dataDir == "" {
		dataDir = DefaultDataDir
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Backend)) {
	case "", BackendFile:
		return NewFileStore(dataDir, logger), nil
	case BackendBadger:
		dir := strings.TrimSpace(cfg.BadgerDir)
		if dir == "" {
			dir = filepath.Join(dataDir, "badger")
		}
		return OpenBadger(dir, logger)
	default:
		return nil, fmt.Errorf("unsupported store backend: %s", cfg.Backend)
	}
}

// FileStore keeps every document in its own file under Dir.
type FileStore struct {
	Dir    string
	logger *zap.Logger
}

func NewFileStore(dir string, logger *zap.Logger) *FileStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileStore{Dir: dir, logger: logger}
}

func (s *FileStore) Get(name string) ([]byte, error) {
	path, err := s.path(name)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		s.logger.Debug("creating empty document", zap.String("path", path))
		if err := s.write(path, emptyDocument); err != nil {
			return nil, err
		}
		return bytes.Clone(emptyDocument), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return data, nil
}

func (s *FileStore) Put(name string, doc []byte) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}

	return s.write(path, doc)
}

func (s *FileStore) Close() error { return nil }

func (s *FileStore) path(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || name != filepath.Base(name) {
		return "", fmt.Errorf("invalid document name %q", name)
	}
	return filepath.Join(s.Dir, name), nil
}

// write replaces the file in place. A crash in the middle leaves a truncated
// document behind.
func (s *FileStore) write(path string, doc []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	if err := os.WriteFile(path, doc, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	s.logger.Debug("document written", zap.String("path", path), zap.Int("bytes", len(doc)))
	return nil
}
