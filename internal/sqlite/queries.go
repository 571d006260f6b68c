package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// selectColumns is the column list shared by every read query.
const selectColumns = "SELECT id, name, email, category, created_at, updated_at FROM records"

// orderByName sorts case-insensitively ascending, the order every
// listing operation guarantees.
const orderByName = " ORDER BY name COLLATE NOCASE ASC"

// ListAll returns every record in name order.
func (s *Store) ListAll() ([]types.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.open {
		return nil, types.ErrStoreClosed
	}
	return s.queryRecords(selectColumns + orderByName)
}

// ListByCategory returns records matching the category, compared case-
// and whitespace-insensitively against the stored value, in name order.
func (s *Store) ListByCategory(category types.Category) ([]types.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.open {
		return nil, types.ErrStoreClosed
	}
	return s.queryRecords(
		selectColumns+" WHERE LOWER(TRIM(category)) = LOWER(TRIM(?))"+orderByName,
		string(category))
}

// SearchByName returns records whose name contains the substring,
// case-insensitively, in name order.
func (s *Store) SearchByName(substring string) ([]types.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.open {
		return nil, types.ErrStoreClosed
	}
	return s.queryRecords(
		selectColumns+" WHERE name LIKE ?"+orderByName,
		"%"+substring+"%")
}

// queryRecords runs a read query and scans all rows. The caller must
// hold at least a read lock and have checked the open flag.
func (s *Store) queryRecords(query string, args ...any) ([]types.Record, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, ioError("query records", err)
	}
	defer rows.Close()

	records := []types.Record{}
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, ioError("iterate records", err)
	}
	return records, nil
}

// scanRecord scans one row into a Record, converting the nullable email
// column and parsing the RFC3339 timestamp columns.
func scanRecord(rows *sql.Rows) (types.Record, error) {
	var r types.Record
	var email sql.NullString
	var category, createdAt, updatedAt string

	if err := rows.Scan(&r.ID, &r.Name, &email, &category, &createdAt, &updatedAt); err != nil {
		return types.Record{}, ioError("scan record", err)
	}
	if email.Valid {
		r.Email = &email.String
	}
	r.Category = types.Category(category)

	var err error
	r.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return types.Record{}, fmt.Errorf("parse created_at: %w", err)
	}
	r.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return types.Record{}, fmt.Errorf("parse updated_at: %w", err)
	}
	return r, nil
}
