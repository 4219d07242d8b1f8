package cache

import (
	"context"
	"log"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"
)

// FetchFunc loads the current server-side value for a key.
type FetchFunc func(ctx context.Context) (any, error)

// entry wraps a cached value with the time it was fetched, so staleness can
// be tracked independently of go-cache's hard expiration.
type entry struct {
	value     any
	fetchedAt time.Time
}

// Store is the process-wide keyed cache of query results. Entries older than
// the staleness window are still served, but a background refresh is
// scheduled. Concurrent fetches for the same key are collapsed into one.
// A failed fetch is never stored, so the next request retries.
type Store struct {
	data       *gocache.Cache
	group      singleflight.Group
	staleAfter time.Duration

	// refreshTimeout bounds background refreshes, which are detached from
	// any caller's context.
	refreshTimeout time.Duration
}

// New creates a Store. staleAfter is the window after which a cached value
// triggers a background refresh; ttl is the hard expiration after which
// go-cache evicts the entry outright.
func New(staleAfter, ttl time.Duration) *Store {
	return &Store{
		data:           gocache.New(ttl, 2*ttl),
		staleAfter:     staleAfter,
		refreshTimeout: 30 * time.Second,
	}
}

// Get returns the cached value for key, fetching it if absent. Fresh hits
// are served directly; stale hits are served while a refresh runs in the
// background.
func (s *Store) Get(ctx context.Context, key Key, fetch FetchFunc) (any, error) {
	k := key.String()
	if v, found := s.data.Get(k); found {
		e := v.(entry)
		if time.Since(e.fetchedAt) > s.staleAfter {
			s.refresh(k, fetch)
		}
		return e.value, nil
	}

	v, err, _ := s.group.Do(k, func() (any, error) {
		val, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		s.data.SetDefault(k, entry{value: val, fetchedAt: time.Now()})
		return val, nil
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

// refresh re-fetches a stale key in the background. The singleflight group
// keeps overlapping refreshes for the same key down to one network call.
func (s *Store) refresh(k string, fetch FetchFunc) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.refreshTimeout)
		defer cancel()

		_, err, _ := s.group.Do(k, func() (any, error) {
			val, err := fetch(ctx)
			if err != nil {
				return nil, err
			}
			s.data.SetDefault(k, entry{value: val, fetchedAt: time.Now()})
			return val, nil
		})
		if err != nil {
			log.Printf("cache: background refresh of %q failed: %v", k, err)
		}
	}()
}

// Invalidate drops every entry whose key falls under one of the given
// prefixes. Dropping an already-absent key is a no-op, so the operation is
// idempotent.
func (s *Store) Invalidate(prefixes ...Prefix) {
	for k := range s.data.Items() {
		for _, p := range prefixes {
			if p.matches(k) {
				s.data.Delete(k)
				break
			}
		}
	}
}

// Peek reports the cached value for key without triggering a fetch or a
// refresh.
func (s *Store) Peek(key Key) (any, bool) {
	v, found := s.data.Get(key.String())
	if !found {
		return nil, false
	}
	return v.(entry).value, true
}

// Flush drops every cached entry.
func (s *Store) Flush() {
	s.data.Flush()
}

// Prefix addresses a whole family of keys, e.g. all re-schedule lists.
type Prefix string

// matches reports whether key equals the prefix or lives under it. The
// segment boundary check keeps "applicant/7" from matching "applicant/75".
func (p Prefix) matches(key string) bool {
	s := strings.TrimSuffix(string(p), "/")
	return key == s || strings.HasPrefix(key, s+"/")
}

// Fetch is a typed wrapper around Store.Get.
func Fetch[T any](ctx context.Context, s *Store, key Key, fetch func(ctx context.Context) (T, error)) (T, error) {
	v, err := s.Get(ctx, key, func(ctx context.Context) (any, error) {
		return fetch(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}
