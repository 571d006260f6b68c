// Package sqlite provides the public constructor for the SQLite record
// store while keeping the implementation internal.
package sqlite

import (
	"github.com/mesh-intelligence/rolodex/internal/sqlite"
	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// NewStore creates a SQLite-backed record store. The store is not open;
// call Open before use.
//
// Example:
//
//	store := sqlite.NewStore(types.Config{DataDir: ".rolodex-db"})
//	if err := store.Open(); err != nil { ... }
//	defer store.Close()
func NewStore(config types.Config) types.Store {
	return sqlite.NewStore(config)
}
