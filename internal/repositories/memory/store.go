// Package memory implements the record store against in-process maps with
// asynchronous debounced snapshotting to a single JSON file. The maps are the
// sole source of truth for reads; the snapshot file is a best-effort mirror
// read back only at cold start. Writes inside the debounce window before a
// crash are lost; that durability window is an explicit design choice.
package memory

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/fieldcollect/field_collections_app/internal/core/domain"
)

// DefaultDebounce is the flush delay used when none is configured.
const DefaultDebounce = 500 * time.Millisecond

// Store holds every entity kind as an id-keyed map. All access goes through
// the repository types in this package; no other component touches the maps.
type Store struct {
	mu sync.RWMutex

	organizations map[string]domain.Organization
	caseworkers   map[string]domain.Caseworker
	users         map[string]domain.User
	workTypes     map[string]domain.WorkType
	sessions      map[string]domain.Session
	transactions  map[string]domain.Transaction

	path     string
	debounce time.Duration
	logger   *slog.Logger

	timerMu sync.Mutex
	timer   *time.Timer

	// flushMu serializes snapshot writes. Stopping the debounce timer does not
	// wait for a callback that already fired, so a Flush/Close can otherwise
	// overlap it on the temp-file-then-rename sequence.
	flushMu sync.Mutex
}

// Open creates a store backed by the snapshot file at path. A missing file is
// a cold start; a corrupt file is logged and the store starts empty rather
// than failing to boot. An empty path disables snapshotting entirely.
func Open(path string, debounce time.Duration, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	s := &Store{
		organizations: map[string]domain.Organization{},
		caseworkers:   map[string]domain.Caseworker{},
		users:         map[string]domain.User{},
		workTypes:     map[string]domain.WorkType{},
		sessions:      map[string]domain.Session{},
		transactions:  map[string]domain.Transaction{},
		path:          path,
		debounce:      debounce,
		logger:        logger,
	}
	s.load()
	return s
}

// load reads the snapshot file into the maps at startup.
func (s *Store) load() {
	if s.path == "" {
		return
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Info("No snapshot file found, starting with an empty store", slog.String("path", s.path))
			return
		}
		s.logger.Error("Snapshot file is unreadable, starting with an empty store",
			slog.String("path", s.path), slog.String("error", err.Error()))
		return
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		s.logger.Error("Snapshot file is corrupt, starting with an empty store",
			slog.String("path", s.path), slog.String("error", err.Error()))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	snap.restore(s)
	s.logger.Info("Snapshot loaded",
		slog.String("path", s.path),
		slog.Int("sessions", len(s.sessions)),
		slog.Int("transactions", len(s.transactions)))
}

// scheduleFlush arms the debounce timer after a mutation. A pending timer is
// reset rather than stacked, so write bursts coalesce into one flush and
// flushes never overlap.
func (s *Store) scheduleFlush() {
	if s.path == "" {
		return
	}

	s.timerMu.Lock()
	defer s.timerMu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, func() {
		if err := s.flush(); err != nil {
			// Non-fatal: the in-memory state stays authoritative and the next
			// mutation's flush retries.
			s.logger.Warn("Snapshot flush failed, durability window extended",
				slog.String("path", s.path), slog.String("error", err.Error()))
		}
	})
}

// flush writes the full state to the snapshot file. The temp-file-then-rename
// sequence keeps the previous snapshot intact if the process dies mid-write.
func (s *Store) flush() error {
	s.flushMu.Lock()
	defer s.flushMu.Unlock()

	s.mu.RLock()
	snap := newSnapshot(s)
	s.mu.RUnlock()

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write snapshot temp file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace snapshot file: %w", err)
	}
	return nil
}

// Flush cancels any pending debounce timer and writes the snapshot now.
func (s *Store) Flush() error {
	if s.path == "" {
		return nil
	}

	s.timerMu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.timerMu.Unlock()

	return s.flush()
}

// Close performs a final synchronous flush.
func (s *Store) Close() error {
	return s.Flush()
}
