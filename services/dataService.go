package services

import (
	"encoding/json"
	"log"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ammafood/amma-api/store"
)

// Poll intervals for synthesized subscriptions. Remote push is approximated
// by re-fetching on the same cadence the local mode uses for cross-tab
// changes.
const (
	menuPollInterval  = 1 * time.Second
	orderPollInterval = 2 * time.Second
	authPollInterval  = 2 * time.Second
)

// Placeholder id prefixes mark records that were never given a server id.
const (
	localIDPrefix        = "local_"
	announcementIDPrefix = "ann_"
	videoIDPrefix        = "vid_"
	orderIDPrefix        = "ord_"
)

// Service is the data service: a uniform CRUD + subscribe surface per entity
// that behaves identically whether or not a remote store is configured.
// Every write lands in the local cache first; the remote tier is mirrored
// best effort and no remote error ever escapes to a caller.
type Service struct {
	local  store.Local
	remote store.Remote
	sheets *SheetsDispatcher
}

// Default is the process-wide service instance, wired at startup.
var Default *Service

// New builds a Service. remote may be nil for local-only mode.
func New(local store.Local, remote store.Remote, sheets *SheetsDispatcher) *Service {
	return &Service{local: local, remote: remote, sheets: sheets}
}

// RemoteEnabled reports whether a remote store is configured.
func (s *Service) RemoteEnabled() bool {
	return s.remote != nil
}

// ClearLocalData wipes every local entity snapshot, the manual recovery path
// when local storage fills up.
func (s *Service) ClearLocalData() error {
	return s.local.Clear()
}

func isPlaceholderID(id string) bool {
	if id == "" {
		return true
	}
	for _, prefix := range []string{localIDPrefix, announcementIDPrefix, videoIDPrefix, orderIDPrefix} {
		if len(id) > len(prefix) && id[:len(prefix)] == prefix {
			return true
		}
	}
	return false
}

var placeholderSeq atomic.Int64

// newPlaceholderID builds a locally-unique id. The sequence suffix keeps two
// records created within the same millisecond apart.
func newPlaceholderID(prefix string) string {
	seq := placeholderSeq.Add(1)
	return prefix + strconv.FormatInt(time.Now().UnixMilli(), 10) + "_" + strconv.FormatInt(seq, 10)
}

// readLocal decodes the cached snapshot for key, or returns fallback() when
// nothing (or garbage) is stored.
func readLocal[T any](local store.Local, key string, fallback func() T) T {
	raw, ok := local.Get(key)
	if !ok {
		return fallback()
	}
	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		log.Printf("corrupt local snapshot for %s, using fallback: %v", key, err)
		return fallback()
	}
	return value
}

// writeLocal persists a snapshot. The returned error is the capacity error
// from the local tier; callers on the write-through path surface it,
// mirror paths log it.
func writeLocal[T any](local store.Local, key string, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return local.Set(key, raw)
}

// startSubscription invokes cb synchronously with the current snapshot, then
// re-delivers on every tick until the returned unsubscribe function is
// called. Unsubscribing more than once is safe.
func startSubscription[T any](interval time.Duration, fetch func() T, cb func(T)) func() {
	cb(fetch())

	done := make(chan struct{})
	var once sync.Once
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				cb(fetch())
			}
		}
	}()
	return func() {
		once.Do(func() { close(done) })
	}
}

// upsertByID replaces the record with the same id or appends when absent.
func upsertByID[T any](items []T, id func(T) string, item T) []T {
	for i := range items {
		if id(items[i]) == id(item) {
			items[i] = item
			return items
		}
	}
	return append(items, item)
}

// removeByID drops the record with the given id, if present.
func removeByID[T any](items []T, id func(T) string, target string) []T {
	out := items[:0]
	for _, item := range items {
		if id(item) != target {
			out = append(out, item)
		}
	}
	return out
}
