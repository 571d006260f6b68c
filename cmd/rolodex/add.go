package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

var (
	addID       string
	addName     string
	addEmail    string
	addCategory string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a record",
	Long: `Add inserts a new record. When --id is omitted a UUID is generated.
The category may be given in any case or spelling; unrecognized values
are stored as Other.

Example:
  rolodex add --name "Ravi" --email ravi@example.com --category admin`,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addID, "id", "", "record id (generated when omitted)")
	addCmd.Flags().StringVar(&addName, "name", "", "display name (required)")
	addCmd.Flags().StringVar(&addEmail, "email", "", "email address")
	addCmd.Flags().StringVar(&addCategory, "category", "", "category: admin, manager or other")
	addCmd.MarkFlagRequired("name")
}

func runAdd(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	id := addID
	if id == "" {
		id = newRecordID()
	}

	record := types.Record{
		ID:       id,
		Name:     addName,
		Email:    emailValue(addEmail),
		Category: types.NormalizeCategory(addCategory),
	}
	if err := store.Insert(record); err != nil {
		return fmt.Errorf("add record: %w", err)
	}

	fmt.Println(id)
	return nil
}
