package types

import "errors"

// Default sync parameters.
const (
	DefaultPageSize = 50
)

// Config holds store location and sync parameters.
type Config struct {
	// DataDir is the directory holding the SQLite database file.
	// Empty means the current working directory.
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// StrictUpdate makes Store.Update return ErrNotFound when the target
	// ID does not exist, instead of the default silent no-op.
	StrictUpdate bool `json:"strict_update" yaml:"strict_update"`

	// RemoteURL is the base URL of the remote record source.
	RemoteURL string `json:"remote_url" yaml:"remote_url"`

	// PageSize is the page size for remote sync requests.
	// Zero means DefaultPageSize.
	PageSize int `json:"page_size" yaml:"page_size"`

	// PruneMissingOnSync deletes local records absent from the remote
	// set after a successful sync. Off by default: sync is additive and
	// overwriting only, never deleting.
	PruneMissingOnSync bool `json:"prune_missing_on_sync" yaml:"prune_missing_on_sync"`
}

// Config validation errors.
var (
	ErrPageSizeInvalid = errors.New("page size must not be negative")
)

// Validate checks that the Config is well-formed.
func (c Config) Validate() error {
	if c.PageSize < 0 {
		return ErrPageSizeInvalid
	}
	return nil
}
