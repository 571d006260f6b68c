package types

import (
	"strings"
	"time"
)

// Category classifies a record. The set is closed: every stored record
// carries exactly one of the three canonical values.
type Category string

// Canonical category values.
const (
	CategoryAdmin   Category = "Admin"
	CategoryManager Category = "Manager"
	CategoryOther   Category = "Other"
)

// Categories lists the canonical category values for enumeration.
var Categories = []Category{CategoryAdmin, CategoryManager, CategoryOther}

// NormalizeCategory maps arbitrary raw category text to a canonical
// Category. Input is trimmed and compared case-insensitively; absent,
// empty-after-trim, or unrecognized input maps to CategoryOther.
// NormalizeCategory is pure and total. Every write path routes category
// values through it; raw input is never persisted verbatim.
func NormalizeCategory(raw string) Category {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "admin":
		return CategoryAdmin
	case "manager":
		return CategoryManager
	default:
		return CategoryOther
	}
}

// ParseCategory maps raw text to a canonical Category like
// NormalizeCategory, but reports whether the input named one of the
// canonical values. Used by callers that must reject unknown input
// (e.g. a --category CLI flag) instead of defaulting it.
func ParseCategory(raw string) (Category, bool) {
	v := strings.ToLower(strings.TrimSpace(raw))
	switch v {
	case "admin":
		return CategoryAdmin, true
	case "manager":
		return CategoryManager, true
	case "other":
		return CategoryOther, true
	}
	return CategoryOther, false
}

// Record is the single cached entity: one customer record keyed by an
// opaque unique ID.
type Record struct {
	ID        string    `json:"id"`        // Opaque unique identifier. Immutable after creation.
	Name      string    `json:"name"`      // Display name (required, non-empty).
	Email     *string   `json:"email"`     // Optional email; nil when absent.
	Category  Category  `json:"category"`  // Canonical category, normalized on every write.
	CreatedAt time.Time `json:"createdAt"` // Stamped by the store on insert.
	UpdatedAt time.Time `json:"updatedAt"` // Stamped by the store on every write.
}

// Validate checks that the record is well-formed for a write.
func (r Record) Validate() error {
	if r.Name == "" {
		return ErrInvalidName
	}
	return nil
}
