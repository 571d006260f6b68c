package types

import (
	"context"
	"errors"
)

// RemoteItem is one record as returned by the remote source of truth.
// The wire shape carries no timestamps; the store stamps them on merge.
type RemoteItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Email    *string `json:"email,omitempty"`
	Category string  `json:"category,omitempty"` // Raw; normalized before persisting.
}

// Page is one page of a paginated remote query. An empty NextToken
// signals the end of data.
type Page struct {
	Items     []RemoteItem `json:"items"`
	NextToken string       `json:"nextToken,omitempty"`
}

// RemoteSource is the single paginated query operation the remote
// source of truth exposes. An empty token requests the first page;
// subsequent calls pass the NextToken of the previous page verbatim.
type RemoteSource interface {
	FetchPage(ctx context.Context, pageSize int, token string) (Page, error)
}

// ErrRemoteFetch wraps any page-request failure during sync. A failed
// page aborts the whole sync attempt and leaves the local cache
// untouched; falling back to local-only operation is the caller's call.
var ErrRemoteFetch = errors.New("remote fetch failed")
