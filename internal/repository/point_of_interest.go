package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cityinfo/backend/internal/db"
	"github.com/cityinfo/backend/internal/domain"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

type pointOfInterestRepository struct {
	db *sqlx.DB
}

func newPointOfInterestRepository(db *sqlx.DB) *pointOfInterestRepository {
	return &pointOfInterestRepository{
		db: db,
	}
}

func (r *pointOfInterestRepository) GetAllForCity(ctx context.Context, cityID int64) ([]domain.PointOfInterest, error) {
	const query = `
	SELECT id, city_id, name, description, created_at, updated_at
	FROM point_of_interest WHERE city_id = ? ORDER BY id ASC;
	`
	points := []domain.PointOfInterest{}
	if err := r.db.SelectContext(ctx, &points, query, cityID); err != nil {
		return nil, fmt.Errorf("select points of interest failed: %w", err)
	}
	return points, nil
}

func (r *pointOfInterestRepository) GetOneForCity(ctx context.Context, cityID, id int64) (*domain.PointOfInterest, error) {
	const query = `
	SELECT id, city_id, name, description, created_at, updated_at
	FROM point_of_interest WHERE city_id = ? AND id = ?;
	`
	var poi domain.PointOfInterest
	if err := r.db.GetContext(ctx, &poi, query, cityID, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select point of interest by id failed: %w", err)
	}
	return &poi, nil
}

func (r *pointOfInterestRepository) Create(ctx context.Context, poi *domain.PointOfInterest) error {
	const query = `
	INSERT INTO point_of_interest (city_id, name, description) VALUES (?, ?, ?);
	`
	result, err := r.db.ExecContext(ctx, query, poi.CityID, poi.Name, poi.Description)
	if err != nil {
		// A missing parent city violates the FK constraint; surface it as
		// not-found instead of dropping the write.
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == db.ForeignKeyViolation {
			return domain.ErrNotFound
		}
		return fmt.Errorf("db insert point of interest: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("db insert point of interest last insert id: %w", err)
	}
	poi.ID = id

	return nil
}

func (r *pointOfInterestRepository) Update(ctx context.Context, poi *domain.PointOfInterest) error {
	const query = `
	UPDATE point_of_interest SET name = ?, description = ? WHERE city_id = ? AND id = ?;
	`
	// Zero rows affected is not an error here: callers look the entity up
	// first, and a no-op update stays a success.
	if _, err := r.db.ExecContext(ctx, query, poi.Name, poi.Description, poi.CityID, poi.ID); err != nil {
		return fmt.Errorf("db update point of interest: %w", err)
	}
	return nil
}

func (r *pointOfInterestRepository) Delete(ctx context.Context, cityID, id int64) error {
	const query = `
	DELETE FROM point_of_interest WHERE city_id = ? AND id = ?;
	`
	result, err := r.db.ExecContext(ctx, query, cityID, id)
	if err != nil {
		return fmt.Errorf("db delete point of interest: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("db delete point of interest rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}
