package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

var (
	updateName     string
	updateEmail    string
	updateCategory string
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Replace a record's fields",
	Long: `Update replaces the name, email, and category of the record with the
given id and stamps its update time. By default an unknown id is a
silent no-op; set strict_update in config.yaml to make it an error.`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().StringVar(&updateName, "name", "", "display name (required)")
	updateCmd.Flags().StringVar(&updateEmail, "email", "", "email address")
	updateCmd.Flags().StringVar(&updateCategory, "category", "", "category: admin, manager or other")
	updateCmd.MarkFlagRequired("name")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	record := types.Record{
		ID:       args[0],
		Name:     updateName,
		Email:    emailValue(updateEmail),
		Category: types.NormalizeCategory(updateCategory),
	}
	if err := store.Update(record); err != nil {
		return fmt.Errorf("update record: %w", err)
	}
	return nil
}
