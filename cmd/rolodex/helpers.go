// Shared helpers for rolodex CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/rolodex/internal/paths"
	"github.com/mesh-intelligence/rolodex/internal/sqlite"
	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// openStore resolves the data directory, builds the store config, and
// opens the store. The caller must defer store.Close().
func openStore() (*sqlite.Store, error) {
	dataDir, err := paths.ResolveDataDir(flagDataDir, cliConfig.dataDir)
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	store := sqlite.NewStore(types.Config{
		DataDir:      dataDir,
		StrictUpdate: cliConfig.strictUpdate,
	})
	if err := store.Open(); err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return store, nil
}

// newRecordID generates a record id for adds that supply none.
func newRecordID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// printRecords writes records as JSON or as an aligned table depending
// on the --json flag.
func printRecords(records []types.Record) error {
	if flagJSON {
		out, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal records: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tCATEGORY\tUPDATED")
	for _, r := range records {
		email := ""
		if r.Email != nil {
			email = *r.Email
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.Name, email, r.Category, r.UpdatedAt.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

// findByID scans the store for the record with the given id. The store
// contract exposes listing operations only; for a single-user local
// cache a scan is fine.
func findByID(store *sqlite.Store, id string) (types.Record, error) {
	records, err := store.ListAll()
	if err != nil {
		return types.Record{}, err
	}
	for _, r := range records {
		if r.ID == id {
			return r, nil
		}
	}
	return types.Record{}, fmt.Errorf("%w: %s", types.ErrNotFound, id)
}

// emailValue converts the --email flag: empty means no email.
func emailValue(email string) *string {
	if email == "" {
		return nil
	}
	return &email
}
