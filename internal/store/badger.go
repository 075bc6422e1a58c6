package store

import (
	"errors"
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"
	"go.uber.org/zap"
)

// BadgerStore keeps documents as values of an embedded BadgerDB, keyed by
// document name.
type BadgerStore struct {
	db     *badger.DB
	logger *zap.Logger
}

// badgerLogger forwards badger's internal logging to zap.
type badgerLogger struct {
	logger *zap.SugaredLogger
}

var _ badger.Logger = (*badgerLogger)(nil)

func (l *badgerLogger) Errorf(msg string, items ...any) { l.logger.Errorf(msg, items...) }
func (l *badgerLogger) Warningf(msg string, items ...any) { l.logger.Warnf(msg, items...) }
func (l *badgerLogger) Infof(msg string, items ...any) { l.logger.Debugf(msg, items...) }
func (l *badgerLogger) Debugf(msg string, items ...any) { l.logger.Debugf(msg, items...) }

// OpenBadger opens (or creates) a database in dir. An empty dir opens an
// in-memory database.
func OpenBadger(dir string, logger *zap.Logger) (*BadgerStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var opts badger.Options
	if dir == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating badger dir: %w", err)
		}
		opts = badger.DefaultOptions(dir)
	}

	opts.Logger = &badgerLogger{logger: logger.Named("badger").Sugar()}
	opts.Compression = options.None

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("opening badger at %q: %w", dir, err)
	}

	return &BadgerStore{db: db, logger: logger}, nil
}

func (s *BadgerStore) Get(name string) ([]byte, error) {
	var doc []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(name))
		if err != nil {
			return err
		}
		doc, err = item.ValueCopy(nil)
		return err
	})

	if errors.Is(err, badger.ErrKeyNotFound) {
		s.logger.Debug("creating empty document", zap.String("name", name))
		if err := s.Put(name, emptyDocument); err != nil {
			return nil, err
		}
		return []byte("{}"), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	return doc, nil
}

func (s *BadgerStore) Put(name string, doc []byte) error {
	if name == "" {
		return errors.New("document name is required")
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(name), doc)
	})
	if err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}

	return nil
}

func (s *BadgerStore) Close() error {
	return s.db.Close()
}
