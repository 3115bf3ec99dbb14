package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cityinfo/backend/internal/domain"

	"github.com/jmoiron/sqlx"
)

type cityRepository struct {
	db *sqlx.DB
}

func newCityRepository(db *sqlx.DB) *cityRepository {
	return &cityRepository{
		db: db,
	}
}

// cityFilterClause appends the filter predicates shared by GetAll and Count.
// Ordering and paging are left to the caller so both queries stay in sync.
func cityFilterClause(filters CityFilters) (string, []interface{}) {
	clause := ` WHERE 1 = 1`
	args := []interface{}{}

	if filters.Name != nil {
		clause += ` AND name = ?`
		args = append(args, *filters.Name)
	}

	if filters.Search != nil {
		clause += ` AND (name LIKE ? OR description LIKE ?)`
		pattern := "%" + *filters.Search + "%"
		args = append(args, pattern, pattern)
	}

	return clause, args
}

func (r *cityRepository) GetAll(ctx context.Context, filters CityFilters, limit, offset int) ([]domain.City, error) {
	query := `
	SELECT id, name, description, created_at, updated_at FROM city`

	clause, args := cityFilterClause(filters)
	query += clause

	// Deterministic ordering has to precede LIMIT/OFFSET so pages are stable.
	query += `
	ORDER BY name ASC
	LIMIT ? OFFSET ?`
	args = append(args, limit, offset)

	cities := []domain.City{}
	if err := r.db.SelectContext(ctx, &cities, query, args...); err != nil {
		return nil, fmt.Errorf("select cities failed: %w", err)
	}
	return cities, nil
}

func (r *cityRepository) Count(ctx context.Context, filters CityFilters) (int64, error) {
	query := `
	SELECT COUNT(*) FROM city`

	clause, args := cityFilterClause(filters)
	query += clause

	var count int64
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count cities failed: %w", err)
	}
	return count, nil
}

func (r *cityRepository) GetOneByID(ctx context.Context, id int64, includePoints bool) (*domain.City, error) {
	const query = `
	SELECT id, name, description, created_at, updated_at FROM city WHERE id = ?;
	`
	var city domain.City
	if err := r.db.GetContext(ctx, &city, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from city by id failed: %w", err)
	}

	if includePoints {
		const pointsQuery = `
		SELECT id, city_id, name, description, created_at, updated_at
		FROM point_of_interest WHERE city_id = ? ORDER BY id ASC;
		`
		city.PointsOfInterest = []domain.PointOfInterest{}
		if err := r.db.SelectContext(ctx, &city.PointsOfInterest, pointsQuery, id); err != nil {
			return nil, fmt.Errorf("select points of interest for city failed: %w", err)
		}
	}

	return &city, nil
}

func (r *cityRepository) Exists(ctx context.Context, id int64) (bool, error) {
	const query = `
	SELECT EXISTS(SELECT 1 FROM city WHERE id = ?);
	`
	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, id); err != nil {
		return false, fmt.Errorf("city exists check failed: %w", err)
	}
	return exists, nil
}

func (r *cityRepository) Create(ctx context.Context, city *domain.City) error {
	const query = `
	INSERT INTO city (name, description) VALUES (?, ?);
	`
	result, err := r.db.ExecContext(ctx, query, city.Name, city.Description)
	if err != nil {
		return fmt.Errorf("db insert city: %w", err)
	}

	// Ids are assigned by the store, never computed here.
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("db insert city last insert id: %w", err)
	}
	city.ID = id

	return nil
}

func (r *cityRepository) Update(ctx context.Context, city *domain.City) error {
	const query = `
	UPDATE city SET name = ?, description = ? WHERE id = ?;
	`
	// Zero rows affected is still a success: an update writing identical
	// values reports nothing changed.
	if _, err := r.db.ExecContext(ctx, query, city.Name, city.Description, city.ID); err != nil {
		return fmt.Errorf("db update city: %w", err)
	}
	return nil
}

func (r *cityRepository) Delete(ctx context.Context, id int64) error {
	const query = `
	DELETE FROM city WHERE id = ?;
	`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db delete city: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("db delete city rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}
