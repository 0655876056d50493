// Package syncer decides when cached data is stale enough to warrant a
// remote refresh, and makes sure concurrent callers share one fetch
// instead of issuing duplicate network calls.
package syncer

import (
	"context"
	"time"

	"shift-planner-backend/internal/logger"

	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"
)

// FetchFunc performs one remote fetch for a company (optionally scoped
// to one employee) and merges the results into the local cache. It is
// supplied by the entity's service layer.
type FetchFunc func(ctx context.Context, companyID, employeeID string) error

// Manager is the per-entity sync manager. Freshness is tracked in a
// TTL cache stamped on each successful fetch: a present key means the
// data is fresh, an expired or missing key is the staleness predicate.
// Failures never stamp the ledger, so the next SyncIfNeeded retries
// immediately.
type Manager struct {
	entity    string
	staleness time.Duration
	fetch     FetchFunc
	group     singleflight.Group
	fresh     *cache.Cache
	log       *logger.Logger
}

// NewManager creates a sync manager for one entity family
func NewManager(entity string, staleness time.Duration, fetch FetchFunc) *Manager {
	return &Manager{
		entity:    entity,
		staleness: staleness,
		fetch:     fetch,
		fresh:     cache.New(staleness, 2*staleness),
		log:       logger.NewWithComponent("syncer").WithField("entity", entity),
	}
}

// SyncIfNeeded performs a remote fetch only when no successful sync for
// the scope happened within the freshness interval. Fresh data makes it
// a no-op that still reports success. Concurrent callers for the same
// scope join the one in-flight fetch.
func (m *Manager) SyncIfNeeded(ctx context.Context, companyID, employeeID string) error {
	key := m.key(companyID, employeeID)
	if _, fresh := m.fresh.Get(key); fresh {
		return nil
	}
	return m.sync(ctx, key, companyID, employeeID)
}

// ForceSync performs the remote fetch unconditionally, bypassing the
// staleness check. Used for explicit user-triggered refresh and for
// pull-based recovery before a push. Still coalesced while in flight.
func (m *Manager) ForceSync(ctx context.Context, companyID, employeeID string) error {
	return m.sync(ctx, m.key(companyID, employeeID), companyID, employeeID)
}

func (m *Manager) sync(ctx context.Context, key, companyID, employeeID string) error {
	// Joined callers share the outcome of the first caller's fetch,
	// including its context: cancelling the initiating request abandons
	// the fetch for everyone, which is safe because nothing is stamped.
	_, err, shared := m.group.Do(key, func() (interface{}, error) {
		if err := m.fetch(ctx, companyID, employeeID); err != nil {
			return nil, err
		}
		m.fresh.SetDefault(key, time.Now())
		return nil, nil
	})
	if err != nil {
		m.log.WithError(err).WithField("company", companyID).Warn("remote sync failed")
		return err
	}
	if shared {
		m.log.WithField("company", companyID).Debug("joined in-flight sync")
	}
	return nil
}

func (m *Manager) key(companyID, employeeID string) string {
	if employeeID == "" {
		return m.entity + ":" + companyID
	}
	return m.entity + ":" + companyID + ":" + employeeID
}
