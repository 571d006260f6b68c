package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <substring>",
	Short: "Search records by name",
	Long:  `Search prints records whose name contains the substring, case-insensitively.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		records, err := store.SearchByName(args[0])
		if err != nil {
			return fmt.Errorf("search records: %w", err)
		}
		return printRecords(records)
	},
}
