package types

import "errors"

// Store defines durable record storage keyed by ID. Callers open the
// store, perform reads and writes, and close it when done. The Store
// exclusively owns durable record state; in-memory projections held by
// consumers are derived, never authoritative.
type Store interface {
	// Open creates the backing medium and schema if absent. Idempotent:
	// opening an already-open store is a no-op. Returns an error wrapping
	// ErrStorageUnavailable when the medium cannot be opened.
	Open() error

	// Close releases the backing medium. Idempotent. After Close,
	// operations return ErrStoreClosed.
	Close() error

	// ListAll returns every record ordered by name, case-insensitive
	// ascending. An empty store yields an empty slice, not an error.
	ListAll() ([]Record, error)

	// ListByCategory returns records whose stored category matches the
	// given one (case- and whitespace-insensitive), in ListAll order.
	ListByCategory(category Category) ([]Record, error)

	// SearchByName returns records whose name contains the substring,
	// case-insensitively, in ListAll order.
	SearchByName(substring string) ([]Record, error)

	// Insert adds a new record, stamping CreatedAt and UpdatedAt.
	// Returns ErrDuplicateID if a record with the same ID exists.
	Insert(record Record) error

	// Update replaces all mutable fields of the record with the matching
	// ID and stamps UpdatedAt. When the ID does not exist the default is
	// a silent no-op; a store configured with StrictUpdate returns
	// ErrNotFound instead.
	Update(record Record) error

	// Delete removes the record with the given ID. No-op when absent.
	Delete(id string) error

	// BulkUpsert writes the batch in a single transaction: all records
	// or none. Existing IDs are fully replaced (every field), absent IDs
	// inserted. Zero timestamps default to now. Idempotent: reapplying
	// an identical batch yields the same final state.
	BulkUpsert(records []Record) error
}

// Store lifecycle and operation errors.
var (
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrStoreClosed        = errors.New("store is closed")
	ErrStorageIO          = errors.New("storage i/o failure")
	ErrDuplicateID        = errors.New("duplicate record id")
	ErrNotFound           = errors.New("record not found")
	ErrInvalidName        = errors.New("record name must not be empty")
)
