package repository

import (
	"context"

	"programboard/internal/model"
)

// ProgramRepository defines data access for daily program entries.
//
// Upsert and Find are keyed on the raw, unsanitized date/language strings the
// caller supplied; the sanitized tokens only shape the stored file path. The
// store's own constraint guarantees at most one row per (program_date, language).
type ProgramRepository interface {
	// Find returns the entry for the raw (date, language) pair, or sql.ErrNoRows.
	Find(ctx context.Context, date, language string) (*model.ProgramEntry, error)

	// Upsert inserts a new entry or updates file_path, file_type and uploaded_at
	// of the existing row for the pair, in a single atomic statement.
	// Returns true when a new row was created.
	Upsert(ctx context.Context, date, language, filePath, fileType string) (bool, error)

	// FindByID returns the entry with the given id, or sql.ErrNoRows.
	FindByID(ctx context.Context, id int64) (*model.ProgramEntry, error)

	// List returns all entries ordered by program_date descending, language ascending.
	List(ctx context.Context) ([]model.ProgramEntry, error)

	// ListForDates returns entries whose program_date matches one of the given
	// date strings, ordered by program_date ascending, language ascending.
	ListForDates(ctx context.Context, dates []string) ([]model.ProgramEntry, error)

	// Delete removes the entry with the given id. Returns sql.ErrNoRows when
	// no such row exists.
	Delete(ctx context.Context, id int64) error
}
