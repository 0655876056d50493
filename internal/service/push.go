package service

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// PushSummary reports the outcome of one deferred push pass
type PushSummary struct {
	Synced  int `json:"synced"`
	Deleted int `json:"deleted"`
}

// Message renders the human-readable success summary shown after a push
func (s PushSummary) Message() string {
	return fmt.Sprintf("%d record(s) synced, %d deletion(s) confirmed", s.Synced, s.Deleted)
}

// keyedMutex serializes operations per string key. The push pass uses it
// so two passes for the same company never interleave and double-create
// remote records; passes for different companies proceed concurrently.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the mutex for key, creating it on first use, and
// returns its unlock function.
func (k *keyedMutex) Lock(key string) func() {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m.Unlock
}

// dateOnly truncates a timestamp to its calendar date in UTC
func dateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// validClockRange checks an "HH:MM" pair for well-formedness and order
func validClockRange(start, end string) bool {
	s, err1 := time.Parse("15:04", start)
	e, err2 := time.Parse("15:04", end)
	return err1 == nil && err2 == nil && s.Before(e)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
