package repository

import (
	"context"

	"github.com/cityinfo/backend/internal/domain"

	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	Cities           Cities
	PointsOfInterest PointsOfInterest
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Cities:           newCityRepository(db),
		PointsOfInterest: newPointOfInterestRepository(db),
	}
}

// CityFilters narrows the city listing. Nil fields impose no restriction.
type CityFilters struct {
	// Name matches exactly (store collation decides case rules).
	Name *string
	// Search matches as a substring of name or description.
	Search *string
}

type Cities interface {
	GetAll(ctx context.Context, filters CityFilters, limit, offset int) ([]domain.City, error)
	Count(ctx context.Context, filters CityFilters) (int64, error)
	GetOneByID(ctx context.Context, id int64, includePoints bool) (*domain.City, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, city *domain.City) error
	Update(ctx context.Context, city *domain.City) error
	Delete(ctx context.Context, id int64) error
}

type PointsOfInterest interface {
	GetAllForCity(ctx context.Context, cityID int64) ([]domain.PointOfInterest, error)
	GetOneForCity(ctx context.Context, cityID, id int64) (*domain.PointOfInterest, error)
	Create(ctx context.Context, poi *domain.PointOfInterest) error
	Update(ctx context.Context, poi *domain.PointOfInterest) error
	Delete(ctx context.Context, cityID, id int64) error
}
