package db

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/stowage/internal/core/domain"
	"github.com/ammerola/stowage/migrations"
)

func TestValidateMigrations_Embedded(t *testing.T) {
	require.NoError(t, ValidateMigrations(migrations.FS))
}

func TestValidateMigrations(t *testing.T) {
	tests := []struct {
		name          string
		files         fstest.MapFS
		errorContains string
	}{
		{
			name: "paired",
			files: fstest.MapFS{
				"000001_init.up.sql":   {Data: []byte("SELECT 1;")},
				"000001_init.down.sql": {Data: []byte("SELECT 1;")},
				"embed.go":             {Data: []byte("package migrations")},
			},
		},
		{
			name: "missing_down",
			files: fstest.MapFS{
				"000001_init.up.sql": {Data: []byte("SELECT 1;")},
			},
			errorContains: "missing its up or down",
		},
		{
			name: "malformed_name",
			files: fstest.MapFS{
				"init.sql": {Data: []byte("SELECT 1;")},
			},
			errorContains: "malformed migration file name",
		},
		{
			name:          "empty",
			files:         fstest.MapFS{},
			errorContains: "no migrations found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMigrations(tt.files)
			if tt.errorContains == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorContains)
		})
	}
}

func TestReadAppliedMigrations(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	mock.ExpectQuery(`SELECT version, dirty FROM "public"."schema_migrations" ORDER BY version ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"version", "dirty"}).AddRow(1, false))

	applied, err := readAppliedMigrations(context.Background(), sqlDB, "public", "schema_migrations")
	require.NoError(t, err)
	require.Len(t, applied, 1)
	assert.Equal(t, uint(1), applied[0].Version)
	assert.False(t, applied[0].Dirty)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReadAppliedMigrations_QueryError(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	mock.ExpectQuery(`SELECT version, dirty FROM`).WillReturnError(errors.New("relation does not exist"))

	_, err = readAppliedMigrations(context.Background(), sqlDB, "public", "schema_migrations")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to query migrations")
}

func TestMapPgError(t *testing.T) {
	unique := &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "containers_code_key"}
	assert.ErrorIs(t, mapPgError(unique, "container BIN-01"), domain.ErrConflict)

	fk := &pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: "racks_location_id_fkey"}
	assert.ErrorIs(t, mapPgError(fk, "location"), domain.ErrConflict)

	check := &pgconn.PgError{Code: pgCheckViolation, ConstraintName: "containers_single_placement"}
	assert.ErrorIs(t, mapPgError(check, "container"), domain.ErrValidation)

	overflow := &pgconn.PgError{Code: pgNumericOutOfRange}
	assert.ErrorIs(t, mapPgError(overflow, "container type Pallet"), domain.ErrValidation)

	other := errors.New("boom")
	assert.Equal(t, other, mapPgError(other, "x"))
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%bin%", likePattern("bin"))
	assert.Equal(t, `%50\%\_off%`, likePattern("50%_off"))
	assert.Equal(t, `%a\\b%`, likePattern(`a\b`))
}
