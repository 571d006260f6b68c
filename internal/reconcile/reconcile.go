// Package reconcile pulls the complete remote record set page by page
// and merges it into the durable store in one atomic bulk upsert.
package reconcile

import (
	"context"
	"errors"
	"fmt"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// Reconciler drives one-shot full syncs from a RemoteSource into a
// Store. It neither retries failed pages nor keeps partial pages across
// invocations; every Sync call is a clean attempt.
type Reconciler struct {
	store    types.Store
	source   types.RemoteSource
	pageSize int
	prune    bool
}

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithPageSize sets the remote page size. Non-positive values fall back
// to types.DefaultPageSize.
func WithPageSize(n int) Option {
	return func(r *Reconciler) {
		if n > 0 {
			r.pageSize = n
		}
	}
}

// WithPruneMissing deletes local records absent from the remote set
// after a successful merge. Off by default: sync is additive and
// overwriting only, matching the remote's role as source of truth for
// existing records but not for local-only ones.
func WithPruneMissing(prune bool) Option {
	return func(r *Reconciler) {
		r.prune = prune
	}
}

// New creates a Reconciler over the given store and remote source.
func New(store types.Store, source types.RemoteSource, opts ...Option) *Reconciler {
	r := &Reconciler{
		store:    store,
		source:   source,
		pageSize: types.DefaultPageSize,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Sync fetches every remote page in cursor order, maps the items into
// records, and merges them into the store with a single BulkUpsert.
// A failed page request aborts the sync before anything is written, so
// the store is untouched on error. Returns the number of records
// merged.
//
// Pages are fetched sequentially; when the remote returns the same id
// on two pages, the later page wins, a consequence of replace-by-id.
func (r *Reconciler) Sync(ctx context.Context) (int, error) {
	var accumulated []types.Record
	token := ""

	for {
		page, err := r.source.FetchPage(ctx, r.pageSize, token)
		if err != nil {
			return 0, fmt.Errorf("page after token %q: %w", token, errors.Join(types.ErrRemoteFetch, err))
		}

		for _, item := range page.Items {
			accumulated = append(accumulated, mapItem(item))
		}

		if page.NextToken == "" {
			break
		}
		token = page.NextToken
	}

	if err := r.store.BulkUpsert(accumulated); err != nil {
		return 0, fmt.Errorf("merge %d records: %w", len(accumulated), err)
	}

	if r.prune {
		if err := r.pruneMissing(accumulated); err != nil {
			return 0, err
		}
	}

	return len(accumulated), nil
}

// mapItem converts one remote item into the stored record shape. The
// raw category is normalized, a missing email stays nil, and the
// timestamps are left unset so the store stamps them on merge.
func mapItem(item types.RemoteItem) types.Record {
	return types.Record{
		ID:       item.ID,
		Name:     item.Name,
		Email:    item.Email,
		Category: types.NormalizeCategory(item.Category),
	}
}

// pruneMissing deletes local records whose ids were not in the remote
// set just merged.
func (r *Reconciler) pruneMissing(remote []types.Record) error {
	remoteIDs := make(map[string]bool, len(remote))
	for _, rec := range remote {
		remoteIDs[rec.ID] = true
	}

	local, err := r.store.ListAll()
	if err != nil {
		return fmt.Errorf("list for prune: %w", err)
	}
	for _, rec := range local {
		if remoteIDs[rec.ID] {
			continue
		}
		if err := r.store.Delete(rec.ID); err != nil {
			return fmt.Errorf("prune record %s: %w", rec.ID, err)
		}
	}
	return nil
}
