// Package main provides rolodexd, an in-memory paginated record server
// for development and integration testing. It serves the pagination
// contract consumed by "rolodex sync"; it is not a production service.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/mesh-intelligence/rolodex/internal/remote"
	"github.com/mesh-intelligence/rolodex/pkg/types"
)

func main() {
	addr := flag.String("addr", ":9002", "listen address")
	fixtures := flag.String("fixtures", "", "JSON file with an array of records to serve (default: built-in sample set)")
	flag.Parse()

	items := sampleItems()
	if *fixtures != "" {
		loaded, err := loadFixtures(*fixtures)
		if err != nil {
			log.Fatalf("load fixtures: %v", err)
		}
		items = loaded
	}

	server := remote.NewServer(items)
	log.Printf("rolodexd serving %d records on %s", len(items), *addr)
	if err := http.ListenAndServe(*addr, server.Handler()); err != nil {
		log.Fatal(err)
	}
}

// loadFixtures reads a JSON array of remote items from a file.
func loadFixtures(path string) ([]types.RemoteItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var items []types.RemoteItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return items, nil
}

// sampleItems is the built-in fixture set served when no file is given.
func sampleItems() []types.RemoteItem {
	email := func(s string) *string { return &s }
	return []types.RemoteItem{
		{ID: "1", Name: "Ravi Kumar", Email: email("ravi@example.com"), Category: "admin"},
		{ID: "2", Name: "Kim Lee", Email: email("kim@example.com"), Category: "MANAGER"},
		{ID: "3", Name: "Sara Ahmed", Category: "manager"},
		{ID: "4", Name: "Omar Diaz", Email: email("omar@example.com")},
		{ID: "5", Name: "Ana Silva", Category: "unknown-role"},
	}
}
