package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Namespaced keys, one JSON blob per entity type. SessionKey is session
// scoped and survives Clear so a reset does not log the admin out.
const (
	MenuKey          = "amma_menu_local"
	OrdersKey        = "amma_orders_local"
	SettingsKey      = "amma_settings_local"
	AnnouncementsKey = "amma_announcements_local"
	VideosKey        = "amma_video_local"
	SessionKey       = "amma_auth_session"
)

// DataKeys lists the keys removed by a full clear.
func DataKeys() []string {
	return []string{MenuKey, OrdersKey, SettingsKey, AnnouncementsKey, VideosKey}
}

// Local is the offline cache every write goes through first. Implementations
// must be safe for concurrent use.
type Local interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error
	Delete(key string) error
	Clear() error
}

// FileStore persists each key as a JSON file under a data directory. It is
// the process-local stand-in for browser local storage: cheap, durable across
// restarts, and shared by every handler in the process.
type FileStore struct {
	mu  sync.Mutex
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) Get(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return nil, false
	}
	return data, true
}

// Set writes atomically via a temp file rename. A write failure (typically a
// full disk) is the one storage error surfaced to callers, since there is no
// eviction policy and the only remedy is a manual reset.
func (s *FileStore) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return fmt.Errorf("local storage full or unwritable, reset data to free space: %w", err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("local storage write failed: %w", err)
	}
	return nil
}

func (s *FileStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range DataKeys() {
		if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}
