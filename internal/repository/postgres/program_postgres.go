package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"programboard/internal/model"
	"programboard/internal/repository"
)

// ProgramPostgres is a PostgreSQL implementation of repository.ProgramRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type ProgramPostgres struct {
	db *sql.DB
}

// NewProgramPostgres creates a new ProgramPostgres repository.
func NewProgramPostgres(db *sql.DB) *ProgramPostgres {
	return &ProgramPostgres{db: db}
}

var _ repository.ProgramRepository = (*ProgramPostgres)(nil)

const programColumns = `id, program_date, language, file_path, file_type, uploaded_at`

func scanProgram(row interface{ Scan(dest ...any) error }) (*model.ProgramEntry, error) {
	var p model.ProgramEntry
	if err := row.Scan(
		&p.ID,
		&p.ProgramDate,
		&p.Language,
		&p.FilePath,
		&p.FileType,
		&p.UploadedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

// Find fetches the entry for the raw (date, language) pair.
func (r *ProgramPostgres) Find(ctx context.Context, date, language string) (*model.ProgramEntry, error) {
	const q = `
		SELECT ` + programColumns + `
		FROM daily_programs
		WHERE program_date = $1 AND language = $2
	`
	return scanProgram(r.db.QueryRowContext(ctx, q, date, language))
}

// Upsert inserts or updates the row for the pair in one statement. The unique
// constraint on (program_date, language) resolves concurrent racers to
// last-writer-wins without application-level locking. xmax is zero only for
// freshly inserted rows, which distinguishes create from update.
func (r *ProgramPostgres) Upsert(ctx context.Context, date, language, filePath, fileType string) (bool, error) {
	const q = `
		INSERT INTO daily_programs (program_date, language, file_path, file_type, uploaded_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (program_date, language)
		DO UPDATE SET file_path = EXCLUDED.file_path,
		              file_type = EXCLUDED.file_type,
		              uploaded_at = now()
		RETURNING (xmax = 0)
	`
	var created bool
	if err := r.db.QueryRowContext(ctx, q, date, language, filePath, fileType).Scan(&created); err != nil {
		return false, err
	}
	return created, nil
}

// FindByID fetches a single entry by its id.
func (r *ProgramPostgres) FindByID(ctx context.Context, id int64) (*model.ProgramEntry, error) {
	const q = `
		SELECT ` + programColumns + `
		FROM daily_programs
		WHERE id = $1
	`
	return scanProgram(r.db.QueryRowContext(ctx, q, id))
}

// List returns every entry, newest program date first, languages alphabetical.
func (r *ProgramPostgres) List(ctx context.Context) ([]model.ProgramEntry, error) {
	const q = `
		SELECT ` + programColumns + `
		FROM daily_programs
		ORDER BY program_date DESC, language ASC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	return collectPrograms(rows)
}

// ListForDates returns entries for the given raw program_date strings.
func (r *ProgramPostgres) ListForDates(ctx context.Context, dates []string) ([]model.ProgramEntry, error) {
	if len(dates) == 0 {
		return []model.ProgramEntry{}, nil
	}

	placeholders := make([]string, len(dates))
	args := make([]any, len(dates))
	for i, d := range dates {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = d
	}

	q := `
		SELECT ` + programColumns + `
		FROM daily_programs
		WHERE program_date IN (` + strings.Join(placeholders, ", ") + `)
		ORDER BY program_date ASC, language ASC
	`
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	return collectPrograms(rows)
}

func collectPrograms(rows *sql.Rows) ([]model.ProgramEntry, error) {
	defer rows.Close()

	items := make([]model.ProgramEntry, 0)
	for rows.Next() {
		p, err := scanProgram(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Delete removes an entry by id. Callers need to distinguish a miss, so
// sql.ErrNoRows is returned when nothing matched.
func (r *ProgramPostgres) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM daily_programs WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
