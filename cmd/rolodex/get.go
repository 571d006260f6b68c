package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a single record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		record, err := findByID(store, args[0])
		if err != nil {
			return err
		}
		return printRecords([]types.Record{record})
	},
}
