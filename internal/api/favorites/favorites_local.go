package favorites

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/karthikn/pondy-guide/internal/types"
)

var _ Store = (*LocalStore)(nil)

// LocalStore keeps guest favorites in a JSON file keyed by guest id, so a
// guest's list survives restarts without an account. All mutations go
// through a single mutex; the whole file is rewritten on every toggle.
type LocalStore struct {
	logger   *slog.Logger
	path     string
	notifier *notifier

	mu   sync.Mutex
	data map[string][]types.SavedPlace
}

func NewLocalStore(path string, logger *slog.Logger) (*LocalStore, error) {
	s := &LocalStore{
		logger:   logger,
		path:     path,
		notifier: newNotifier(),
		data:     make(map[string][]types.SavedPlace),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *LocalStore) load() error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read guest store %s: %w", s.path, err)
	}
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		return fmt.Errorf("failed to parse guest store %s: %w", s.path, err)
	}
	return nil
}

// persist writes the store atomically. Caller holds the mutex.
func (s *LocalStore) persist() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal guest store: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create guest store dir: %w", err)
	}
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write guest store: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace guest store: %w", err)
	}
	return nil
}

func (s *LocalStore) IsFavorite(_ context.Context, ownerKey string, placeID uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.data[ownerKey] {
		if p.PlaceID == placeID {
			return true, nil
		}
	}
	return false, nil
}

func (s *LocalStore) Toggle(_ context.Context, ownerKey string, place types.SavedPlace) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.data[ownerKey]
	nowFavorite := true
	for i, p := range list {
		if p.PlaceID == place.PlaceID {
			list = append(list[:i], list[i+1:]...)
			nowFavorite = false
			break
		}
	}
	if nowFavorite {
		list = append(list, place)
	}

	if len(list) == 0 {
		delete(s.data, ownerKey)
	} else {
		s.data[ownerKey] = list
	}

	if err := s.persist(); err != nil {
		return false, err
	}

	snapshot := make([]types.SavedPlace, len(list))
	copy(snapshot, list)
	s.notifier.publish(ownerKey, snapshot)
	return nowFavorite, nil
}

func (s *LocalStore) List(_ context.Context, ownerKey string) ([]types.SavedPlace, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.data[ownerKey]
	snapshot := make([]types.SavedPlace, len(list))
	copy(snapshot, list)
	return snapshot, nil
}

func (s *LocalStore) Subscribe(ownerKey string) (<-chan []types.SavedPlace, func()) {
	return s.notifier.subscribe(ownerKey)
}
