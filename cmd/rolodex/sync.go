package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rolodex/internal/reconcile"
	"github.com/mesh-intelligence/rolodex/internal/remote"
)

var (
	syncRemoteURL string
	syncPageSize  int
	syncPrune     bool
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Pull the full remote record set into the local store",
	Long: `Sync fetches every page from the remote source and merges the result
into the local store in one atomic bulk upsert. A failed page request
aborts the whole sync and leaves the store untouched; the local cache
stays usable as-is.

By default sync never deletes local records absent from the remote set;
pass --prune (or set prune_missing_on_sync in config.yaml) to delete
them after the merge.`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().StringVar(&syncRemoteURL, "remote", "", "remote base URL (default: remote_url from config.yaml)")
	syncCmd.Flags().IntVar(&syncPageSize, "page-size", 0, "page size (default: page_size from config.yaml)")
	syncCmd.Flags().BoolVar(&syncPrune, "prune", false, "delete local records missing from the remote set")
}

func runSync(cmd *cobra.Command, args []string) error {
	remoteURL := syncRemoteURL
	if remoteURL == "" {
		remoteURL = cliConfig.remoteURL
	}
	if remoteURL == "" {
		return fmt.Errorf("no remote URL: pass --remote or set remote_url in config.yaml")
	}

	pageSize := syncPageSize
	if pageSize == 0 {
		pageSize = cliConfig.pageSize
	}
	prune := syncPrune || cliConfig.prune

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	source := remote.NewHTTPSource(remoteURL, nil)
	r := reconcile.New(store, source,
		reconcile.WithPageSize(pageSize),
		reconcile.WithPruneMissing(prune))

	n, err := r.Sync(ctx)
	if err != nil {
		return fmt.Errorf("sync: %w", err)
	}

	fmt.Printf("Synced %d records\n", n)
	return nil
}
