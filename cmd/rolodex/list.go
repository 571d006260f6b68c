package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

var listCategory string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List records sorted by name",
	Long: `List prints every record sorted by name, case-insensitively. With
--category only records in that category are shown.

Example:
  rolodex list
  rolodex list --category admin`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listCategory, "category", "", "filter by category: admin, manager or other")
}

func runList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	var records []types.Record
	if listCategory != "" {
		category, ok := types.ParseCategory(listCategory)
		if !ok {
			return fmt.Errorf("unknown category %q (valid: admin, manager, other)", listCategory)
		}
		records, err = store.ListByCategory(category)
	} else {
		records, err = store.ListAll()
	}
	if err != nil {
		return fmt.Errorf("list records: %w", err)
	}

	return printRecords(records)
}
