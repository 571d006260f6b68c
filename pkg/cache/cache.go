// Package cache holds the in-memory projection of the durable store
// plus UI filter state. The projection is derived, never authoritative:
// every mutation re-reads the store before returning, so callers get
// read-after-write consistency.
package cache

import (
	"context"
	"strings"
	"sync"

	"github.com/mesh-intelligence/rolodex/internal/reconcile"
	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// Cache is the reactive facade over a types.Store.
type Cache struct {
	mu         sync.RWMutex
	store      types.Store
	records    []types.Record
	loading    bool
	searchText string
	category   types.Category // Empty means no category filter.
}

// New creates a Cache over the given store with an empty projection.
// Call LoadFromStore (or Start) to populate it.
func New(store types.Store) *Cache {
	return &Cache{store: store}
}

// LoadFromStore replaces the projection with the store's current
// contents. The loading flag is set for the duration of the read.
// Store errors pass through unchanged; the previous projection is kept
// on failure.
func (c *Cache) LoadFromStore() error {
	c.mu.Lock()
	c.loading = true
	c.mu.Unlock()

	records, err := c.store.ListAll()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if err != nil {
		return err
	}
	c.records = records
	return nil
}

// Add inserts the record and reloads the projection.
func (c *Cache) Add(record types.Record) error {
	if err := c.store.Insert(record); err != nil {
		return err
	}
	return c.LoadFromStore()
}

// Edit updates the record and reloads the projection.
func (c *Cache) Edit(record types.Record) error {
	if err := c.store.Update(record); err != nil {
		return err
	}
	return c.LoadFromStore()
}

// RemoveByID deletes the record and reloads the projection.
func (c *Cache) RemoveByID(id string) error {
	if err := c.store.Delete(id); err != nil {
		return err
	}
	return c.LoadFromStore()
}

// SyncFromRemote bulk-upserts the records and reloads the projection.
func (c *Cache) SyncFromRemote(records []types.Record) error {
	if err := c.store.BulkUpsert(records); err != nil {
		return err
	}
	return c.LoadFromStore()
}

// Start runs the startup sequence: load the local cache, then pull the
// full remote set through the reconciler and reload. A sync failure is
// returned after the local load succeeded, so the caller may fall back
// to local-only operation with the projection already populated.
//
// Cancelling ctx before the post-sync reload suppresses that reload: a
// late-arriving sync result never overwrites state after the consumer
// has gone away.
func (c *Cache) Start(ctx context.Context, r *reconcile.Reconciler) error {
	if err := c.LoadFromStore(); err != nil {
		return err
	}

	if _, err := r.Sync(ctx); err != nil {
		return err
	}

	if ctx.Err() != nil {
		return ctx.Err()
	}
	return c.LoadFromStore()
}

// SetSearchText sets the substring filter. In-memory only, no store I/O.
func (c *Cache) SetSearchText(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.searchText = text
}

// SetCategoryFilter sets the category filter. An empty category clears
// it. In-memory only, no store I/O.
func (c *Cache) SetCategoryFilter(category types.Category) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.category = category
}

// Records returns a snapshot of the full projection in store order.
func (c *Cache) Records() []types.Record {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]types.Record(nil), c.records...)
}

// Loading reports whether a projection reload is in flight.
func (c *Cache) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

// SearchText returns the current substring filter.
func (c *Cache) SearchText() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.searchText
}

// CategoryFilter returns the current category filter; empty means none.
func (c *Cache) CategoryFilter() types.Category {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.category
}

// Visible returns the projection filtered by the current category and
// search text. Both predicates are case-insensitive and intersect;
// store ordering is preserved. Filtering is computed on read.
func (c *Cache) Visible() []types.Record {
	c.mu.RLock()
	defer c.mu.RUnlock()

	needle := strings.ToLower(strings.TrimSpace(c.searchText))

	visible := []types.Record{}
	for _, r := range c.records {
		if c.category != "" && types.NormalizeCategory(string(r.Category)) != c.category {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(r.Name), needle) {
			continue
		}
		visible = append(visible, r)
	}
	return visible
}
