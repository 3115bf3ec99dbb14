package service

import (
	"context"

	"github.com/cityinfo/backend/internal/config"
	"github.com/cityinfo/backend/internal/domain"
	"github.com/cityinfo/backend/internal/repository"
)

type Services struct {
	Cities           Cities
	PointsOfInterest PointsOfInterest
}

type Deps struct {
	Config *config.Config
	Repos  *repository.Repositories
}

func NewServices(deps Deps) *Services {
	return &Services{
		Cities:           newCityService(deps.Repos.Cities),
		PointsOfInterest: newPointOfInterestService(deps.Repos.PointsOfInterest, deps.Repos.Cities),
	}
}

type Cities interface {
	List(ctx context.Context, input ListCitiesInput) ([]domain.City, PageMeta, error)
	GetByID(ctx context.Context, id int64, includePoints bool) (*domain.City, error)
	Create(ctx context.Context, input CityInput) (*domain.City, error)
	Update(ctx context.Context, id int64, input CityInput) error
	Delete(ctx context.Context, id int64) error
}

type PointsOfInterest interface {
	ListForCity(ctx context.Context, cityID int64) ([]domain.PointOfInterest, error)
	GetByID(ctx context.Context, cityID, id int64) (*domain.PointOfInterest, error)
	Create(ctx context.Context, cityID int64, input PointOfInterestInput) (*domain.PointOfInterest, error)
	Update(ctx context.Context, cityID, id int64, input PointOfInterestInput) error
	Patch(ctx context.Context, cityID, id int64, ops []PatchOp) (*domain.PointOfInterest, error)
	Delete(ctx context.Context, cityID, id int64) error
}
