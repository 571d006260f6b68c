package reconcile

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/rolodex/internal/sqlite"
	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// fakeSource serves canned pages keyed by continuation token and can
// fail a specific request.
type fakeSource struct {
	pages    map[string]types.Page
	failOn   string // token whose request fails
	requests []string
}

func (f *fakeSource) FetchPage(ctx context.Context, pageSize int, token string) (types.Page, error) {
	f.requests = append(f.requests, token)
	if f.failOn != "" && token == f.failOn {
		return types.Page{}, errors.New("connection reset")
	}
	page, ok := f.pages[token]
	if !ok {
		return types.Page{}, errors.New("unknown token")
	}
	return page, nil
}

func setupStore(t *testing.T) *sqlite.Store {
	t.Helper()
	s := sqlite.NewStore(types.Config{DataDir: t.TempDir()})
	require.NoError(t, s.Open())
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSyncMergesAllPages(t *testing.T) {
	store := setupStore(t)
	source := &fakeSource{pages: map[string]types.Page{
		"": {
			Items:     []types.RemoteItem{{ID: "1", Name: "Ravi", Category: "admin "}},
			NextToken: "p2",
		},
		"p2": {
			Items:     []types.RemoteItem{{ID: "2", Name: "Kim", Category: "MANAGER"}},
			NextToken: "p3",
		},
		"p3": {
			Items: []types.RemoteItem{{ID: "3", Name: "Lee"}},
		},
	}}

	n, err := New(store, source).Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []string{"", "p2", "p3"}, source.requests, "pages fetched in cursor order")

	records, err := store.ListAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, types.CategoryAdmin, records[2].Category)
	assert.Equal(t, types.CategoryManager, records[0].Category)
	assert.Equal(t, types.CategoryOther, records[1].Category)
	assert.False(t, records[0].CreatedAt.IsZero(), "store stamps timestamps on merge")
}

func TestSyncAbortsOnPageFailure(t *testing.T) {
	store := setupStore(t)
	require.NoError(t, store.Insert(types.Record{ID: "keep", Name: "Existing"}))

	source := &fakeSource{
		pages: map[string]types.Page{
			"":   {Items: []types.RemoteItem{{ID: "1", Name: "Ravi"}}, NextToken: "p2"},
			"p3": {Items: []types.RemoteItem{{ID: "3", Name: "Lee"}}},
		},
		failOn: "p2",
	}

	_, err := New(store, source).Sync(context.Background())
	require.ErrorIs(t, err, types.ErrRemoteFetch)

	// The second of three pages failed: nothing was merged.
	records, err := store.ListAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "keep", records[0].ID)
}

func TestSyncOverwritesExisting(t *testing.T) {
	store := setupStore(t)
	require.NoError(t, store.Insert(types.Record{ID: "1", Name: "Ravi", Category: "admin"}))

	source := &fakeSource{pages: map[string]types.Page{
		"": {Items: []types.RemoteItem{{ID: "1", Name: "Ravi K", Category: "manager"}}},
	}}

	_, err := New(store, source).Sync(context.Background())
	require.NoError(t, err)

	records, err := store.ListAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Ravi K", records[0].Name)
	assert.Equal(t, types.CategoryManager, records[0].Category)
}

func TestSyncDoesNotDeleteByDefault(t *testing.T) {
	store := setupStore(t)
	require.NoError(t, store.Insert(types.Record{ID: "local-only", Name: "Local"}))

	source := &fakeSource{pages: map[string]types.Page{
		"": {Items: []types.RemoteItem{{ID: "1", Name: "Ravi"}}},
	}}

	_, err := New(store, source).Sync(context.Background())
	require.NoError(t, err)

	records, err := store.ListAll()
	require.NoError(t, err)
	assert.Len(t, records, 2, "sync is additive, local-only records survive")
}

func TestSyncPruneMissing(t *testing.T) {
	store := setupStore(t)
	require.NoError(t, store.Insert(types.Record{ID: "local-only", Name: "Local"}))

	source := &fakeSource{pages: map[string]types.Page{
		"": {Items: []types.RemoteItem{{ID: "1", Name: "Ravi"}}},
	}}

	_, err := New(store, source, WithPruneMissing(true)).Sync(context.Background())
	require.NoError(t, err)

	records, err := store.ListAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "1", records[0].ID)
}

func TestSyncLastPageWinsForRepeatedID(t *testing.T) {
	store := setupStore(t)

	source := &fakeSource{pages: map[string]types.Page{
		"":   {Items: []types.RemoteItem{{ID: "1", Name: "From page one"}}, NextToken: "p2"},
		"p2": {Items: []types.RemoteItem{{ID: "1", Name: "From page two"}}},
	}}

	_, err := New(store, source).Sync(context.Background())
	require.NoError(t, err)

	records, err := store.ListAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "From page two", records[0].Name)
}

func TestSyncEmptyRemote(t *testing.T) {
	store := setupStore(t)

	source := &fakeSource{pages: map[string]types.Page{"": {}}}

	n, err := New(store, source).Sync(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSyncIdempotent(t *testing.T) {
	store := setupStore(t)
	source := &fakeSource{pages: map[string]types.Page{
		"": {Items: []types.RemoteItem{
			{ID: "1", Name: "Ravi", Category: "admin"},
			{ID: "2", Name: "Kim"},
		}},
	}}

	r := New(store, source)
	_, err := r.Sync(context.Background())
	require.NoError(t, err)
	_, err = r.Sync(context.Background())
	require.NoError(t, err)

	records, err := store.ListAll()
	require.NoError(t, err)
	assert.Len(t, records, 2)
}
