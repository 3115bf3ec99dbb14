package repository

import (
	"context"
	"testing"
	"time"

	"github.com/cityinfo/backend/internal/db"
	"github.com/cityinfo/backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/require"
)

func TestPointOfInterestGetOneForCityScopesByCity(t *testing.T) {
	dbConn, mock := newMockDB(t)
	repo := newPointOfInterestRepository(dbConn)

	mock.ExpectQuery("SELECT id, city_id, name, description, created_at, updated_at FROM point_of_interest WHERE city_id = \\? AND id = \\?").
		WithArgs(int64(1), int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "city_id", "name", "description", "created_at", "updated_at"}).
			AddRow(int64(5), int64(1), "Eiffel Tower", nil, time.Now(), time.Now()))

	poi, err := repo.GetOneForCity(context.Background(), 1, 5)
	require.NoError(t, err)
	require.Equal(t, int64(1), poi.CityID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPointOfInterestGetOneForCityNotFound(t *testing.T) {
	dbConn, mock := newMockDB(t)
	repo := newPointOfInterestRepository(dbConn)

	mock.ExpectQuery("SELECT id, city_id, name, description, created_at, updated_at FROM point_of_interest").
		WithArgs(int64(1), int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "city_id", "name", "description", "created_at", "updated_at"}))

	poi, err := repo.GetOneForCity(context.Background(), 1, 404)
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.Nil(t, poi)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPointOfInterestCreateMissingCityReturnsNotFound(t *testing.T) {
	dbConn, mock := newMockDB(t)
	repo := newPointOfInterestRepository(dbConn)

	mock.ExpectExec("INSERT INTO point_of_interest").
		WithArgs(int64(99), "Central Park", nil).
		WillReturnError(&mysql.MySQLError{Number: db.ForeignKeyViolation, Message: "a foreign key constraint fails"})

	poi := &domain.PointOfInterest{CityID: 99, Name: "Central Park"}
	err := repo.Create(context.Background(), poi)
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPointOfInterestCreateAssignsStoreID(t *testing.T) {
	dbConn, mock := newMockDB(t)
	repo := newPointOfInterestRepository(dbConn)

	mock.ExpectExec("INSERT INTO point_of_interest").
		WithArgs(int64(1), "Central Park", nil).
		WillReturnResult(sqlmock.NewResult(11, 1))

	poi := &domain.PointOfInterest{CityID: 1, Name: "Central Park"}
	require.NoError(t, repo.Create(context.Background(), poi))
	require.Equal(t, int64(11), poi.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPointOfInterestDeleteIsIdempotentlyNotFound(t *testing.T) {
	dbConn, mock := newMockDB(t)
	repo := newPointOfInterestRepository(dbConn)

	mock.ExpectExec("DELETE FROM point_of_interest WHERE city_id = \\? AND id = \\?").
		WithArgs(int64(1), int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM point_of_interest WHERE city_id = \\? AND id = \\?").
		WithArgs(int64(1), int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), 1, 5))
	require.ErrorIs(t, repo.Delete(context.Background(), 1, 5), domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
