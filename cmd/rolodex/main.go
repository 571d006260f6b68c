// Package main provides the rolodex CLI: a local-first customer record
// cache with full sync against a paginated remote source.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode classifies an error: caller mistakes exit 1, storage and
// remote faults exit 2.
func exitCode(err error) int {
	switch {
	case errors.Is(err, types.ErrStorageUnavailable),
		errors.Is(err, types.ErrStorageIO),
		errors.Is(err, types.ErrStoreClosed),
		errors.Is(err, types.ErrRemoteFetch):
		return exitSysError
	default:
		return exitUserError
	}
}
