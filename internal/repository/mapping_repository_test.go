package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMappingRepository_Create(t *testing.T) {
	db, mock := newMock(t)
	repo := NewMappingRepository(db)
	now := time.Now()

	t.Run("inserted", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO patient_doctor_mapping (patient_id, doctor_id)")).
			WithArgs(int64(1), int64(2)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "patient_id", "doctor_id", "created_at"}).
				AddRow(int64(10), int64(1), int64(2), now))

		m, err := repo.Create(context.Background(), 1, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(10), m.ID)
		assert.Equal(t, int64(2), m.DoctorID)
	})

	t.Run("foreign key failure is passed through", func(t *testing.T) {
		fkErr := &pgconn.PgError{Code: "23503", ConstraintName: "patient_doctor_mapping_doctor_id_fkey"}
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO patient_doctor_mapping")).
			WithArgs(int64(1), int64(99)).
			WillReturnError(fkErr)

		_, err := repo.Create(context.Background(), 1, 99)
		var pgErr *pgconn.PgError
		require.ErrorAs(t, err, &pgErr)
		assert.Equal(t, "23503", pgErr.Code)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMappingRepository_ListSummaries(t *testing.T) {
	db, mock := newMock(t)
	repo := NewMappingRepository(db)

	mock.ExpectQuery(`SELECT pdm.id, p.name, d.name, pdm.created_at FROM patient_doctor_mapping pdm JOIN patients p`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "patient_name", "doctor_name", "created_at"}).
			AddRow(int64(1), "P1", "House", time.Now()).
			AddRow(int64(2), "P2", "Wilson", time.Now()))

	got, err := repo.ListSummaries(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Wilson", got[1].DoctorName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMappingRepository_ListDoctorsByPatient(t *testing.T) {
	db, mock := newMock(t)
	repo := NewMappingRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE pdm.patient_id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "specialization", "contact", "email"}).
			AddRow(int64(4), "House", "Diagnostics", nil, "house@ppth.org"))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE pdm.patient_id = $1")).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "specialization", "contact", "email"}))

	got, err := repo.ListDoctorsByPatient(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Diagnostics", got[0].Specialization)
	assert.Nil(t, got[0].Contact)

	none, err := repo.ListDoctorsByPatient(context.Background(), 2)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMappingRepository_Delete(t *testing.T) {
	db, mock := newMock(t)
	repo := NewMappingRepository(db)
	del := regexp.QuoteMeta("DELETE FROM patient_doctor_mapping WHERE id=$1")

	mock.ExpectExec(del).WithArgs(int64(3)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(del).WithArgs(int64(3)).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), 3))
	assert.ErrorIs(t, repo.Delete(context.Background(), 3), sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
