package main

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanPaths(t *testing.T) {
	t.Run("rewrites rows with control characters", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		dbMock.ExpectQuery(`SELECT id, file_path FROM daily_programs`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "file_path"}).
				AddRow(1, "uploads/2024-01-01_English.pdf").
				AddRow(2, "uploads/2024-01-02_Turkish\x00.pdf"))
		dbMock.ExpectExec(`UPDATE daily_programs SET file_path`).
			WithArgs("uploads/2024-01-02_Turkish.pdf", int64(2)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		changed, err := cleanPaths(context.Background(), db, false)

		require.NoError(t, err)
		assert.Equal(t, 1, changed)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("dry run leaves rows untouched", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		dbMock.ExpectQuery(`SELECT id, file_path FROM daily_programs`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "file_path"}).
				AddRow(1, "uploads/2024-01-01_English\x1b.pdf"))

		changed, err := cleanPaths(context.Background(), db, true)

		require.NoError(t, err)
		assert.Equal(t, 1, changed)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})
}
