package sqlite

import (
	"database/sql"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// nullableEmail converts the optional email field for the TEXT column.
func nullableEmail(email *string) any {
	if email == nil {
		return nil
	}
	return *email
}

// Insert adds a new record. The category is normalized and CreatedAt
// and UpdatedAt are stamped with now. Returns ErrDuplicateID when a
// record with the same ID already exists.
func (s *Store) Insert(record types.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return types.ErrStoreClosed
	}
	if err := record.Validate(); err != nil {
		return err
	}

	var exists int
	err := s.db.QueryRow("SELECT 1 FROM records WHERE id = ?", record.ID).Scan(&exists)
	if err == nil {
		return types.ErrDuplicateID
	}
	if err != sql.ErrNoRows {
		return ioError("check record id", err)
	}

	stamp := formatTime(now())
	_, err = s.db.Exec(
		"INSERT INTO records (id, name, email, category, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
		record.ID, record.Name, nullableEmail(record.Email),
		string(types.NormalizeCategory(string(record.Category))),
		stamp, stamp)
	if err != nil {
		return ioError("insert record", err)
	}
	return nil
}

// Update replaces all mutable fields of the record matching ID and
// stamps UpdatedAt. When the ID does not exist the default is a silent
// no-op; with StrictUpdate configured it returns ErrNotFound.
func (s *Store) Update(record types.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return types.ErrStoreClosed
	}
	if err := record.Validate(); err != nil {
		return err
	}

	res, err := s.db.Exec(
		"UPDATE records SET name = ?, email = ?, category = ?, updated_at = ? WHERE id = ?",
		record.Name, nullableEmail(record.Email),
		string(types.NormalizeCategory(string(record.Category))),
		formatTime(now()), record.ID)
	if err != nil {
		return ioError("update record", err)
	}

	if s.config.StrictUpdate {
		n, err := res.RowsAffected()
		if err != nil {
			return ioError("update record", err)
		}
		if n == 0 {
			return types.ErrNotFound
		}
	}
	return nil
}

// Delete removes the record with the given ID. No-op when absent.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return types.ErrStoreClosed
	}
	if _, err := s.db.Exec("DELETE FROM records WHERE id = ?", id); err != nil {
		return ioError("delete record", err)
	}
	return nil
}

// BulkUpsert writes the batch atomically: one transaction, all records
// or none. Existing IDs are fully replaced (every field, replace
// semantics, not merge-by-field); absent IDs are inserted. Zero
// timestamps default to now, supplied ones are kept. Reapplying an
// identical batch yields the same final state.
func (s *Store) BulkUpsert(records []types.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return types.ErrStoreClosed
	}

	tx, err := s.db.Begin()
	if err != nil {
		return ioError("begin bulk upsert", err)
	}

	for _, record := range records {
		if err := record.Validate(); err != nil {
			tx.Rollback()
			return err
		}

		stamp := now()
		createdAt := record.CreatedAt
		if createdAt.IsZero() {
			createdAt = stamp
		}
		updatedAt := record.UpdatedAt
		if updatedAt.IsZero() {
			updatedAt = stamp
		}

		_, err := tx.Exec(
			`INSERT OR REPLACE INTO records (id, name, email, category, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			record.ID, record.Name, nullableEmail(record.Email),
			string(types.NormalizeCategory(string(record.Category))),
			formatTime(createdAt), formatTime(updatedAt))
		if err != nil {
			tx.Rollback()
			return ioError("bulk upsert record", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return ioError("commit bulk upsert", err)
	}
	return nil
}
