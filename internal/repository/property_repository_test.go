package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/property-management/internal/model"
)

func propertyRows(ids ...uint64) *sqlmock.Rows {
	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "manager_id", "name", "street", "city", "state", "zip",
		"units", "type", "image_url", "created_at", "updated_at"})
	for _, id := range ids {
		rows.AddRow(id, 7, "Oakwood", "12 Oak St", "Springfield", "IL", "62704", 8, "apartment", nil, now, now)
	}
	return rows
}

func TestPropertyRepoGetByIDAndManager(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()
	repo := NewPropertyRepo(db)

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("SELECT .+ FROM properties WHERE id = \\? AND manager_id = \\?").
			WithArgs(uint64(1), uint64(7)).
			WillReturnRows(propertyRows(1))

		p, err := repo.GetByIDAndManager(context.Background(), 1, 7)
		require.NoError(t, err)
		require.Equal(t, "Oakwood", p.Name)
		require.Nil(t, p.ImageURL)
	})

	t.Run("wrong manager maps to not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT .+ FROM properties WHERE id = \\? AND manager_id = \\?").
			WithArgs(uint64(1), uint64(8)).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByIDAndManager(context.Background(), 1, 8)
		require.ErrorIs(t, err, ErrPropertyNotFound)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPropertyRepoListByManager(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()
	repo := NewPropertyRepo(db)

	mock.ExpectQuery("SELECT .+ FROM properties WHERE manager_id = \\? ORDER BY id").
		WithArgs(uint64(7)).
		WillReturnRows(propertyRows(1, 2, 3))

	out, err := repo.ListByManager(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, out, 3)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPropertyRepoUpdate(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()
	repo := NewPropertyRepo(db)

	t.Run("changed row succeeds", func(t *testing.T) {
		mock.ExpectExec("UPDATE properties").
			WithArgs("Oakwood", "12 Oak St", "Springfield", "IL", "62704", 8, "apartment", nil, uint64(1), uint64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		p := &model.Property{ID: 1, ManagerID: 7, Name: "Oakwood", Street: "12 Oak St",
			City: "Springfield", State: "IL", Zip: "62704", Units: 8, Type: "apartment"}
		require.NoError(t, repo.Update(context.Background(), p))
	})

	t.Run("no rows affected surfaces as ErrNoRows", func(t *testing.T) {
		mock.ExpectExec("UPDATE properties").
			WillReturnResult(sqlmock.NewResult(0, 0))

		p := &model.Property{ID: 2, ManagerID: 8, Name: "Nope", Type: "house"}
		require.ErrorIs(t, repo.Update(context.Background(), p), sql.ErrNoRows)
	})
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPropertyRepoDelete(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()
	repo := NewPropertyRepo(db)

	t.Run("full transaction unassigns tenants and deletes dependents", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT manager_id FROM properties WHERE id = \\?").
			WithArgs(uint64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"manager_id"}).AddRow(7))
		mock.ExpectExec("UPDATE tenants SET property_id = NULL WHERE property_id = \\?").
			WithArgs(uint64(1)).WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec("DELETE FROM maintenance_requests WHERE property_id = \\?").
			WithArgs(uint64(1)).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("DELETE FROM documents WHERE property_id = \\?").
			WithArgs(uint64(1)).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("DELETE FROM properties WHERE id = \\?").
			WithArgs(uint64(1)).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.DeleteByIDAndManager(context.Background(), 1, 7))
	})

	t.Run("foreign property is forbidden and rolled back", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT manager_id FROM properties WHERE id = \\?").
			WithArgs(uint64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"manager_id"}).AddRow(99))
		mock.ExpectRollback()

		require.ErrorIs(t, repo.DeleteByIDAndManager(context.Background(), 1, 7), ErrForbidden)
	})

	t.Run("missing property", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT manager_id FROM properties WHERE id = \\?").
			WithArgs(uint64(5)).
			WillReturnError(sql.ErrNoRows)
		mock.ExpectRollback()

		require.ErrorIs(t, repo.DeleteByIDAndManager(context.Background(), 5, 7), ErrPropertyNotFound)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}
