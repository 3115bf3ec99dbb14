package service

import (
	"context"
	"fmt"

	"github.com/cityinfo/backend/internal/domain"
	queueclient "github.com/cityinfo/backend/internal/queue/client"
	"github.com/cityinfo/backend/internal/queue/task"
	"github.com/cityinfo/backend/internal/repository"
	"github.com/cityinfo/backend/pkg/logger"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type PointOfInterestInput struct {
	Name        string
	Description *string
}

type pointOfInterestService struct {
	poiRepository  repository.PointsOfInterest
	cityRepository repository.Cities
	validate       *validator.Validate
}

func newPointOfInterestService(
	poiRepository repository.PointsOfInterest,
	cityRepository repository.Cities,
) *pointOfInterestService {
	return &pointOfInterestService{
		poiRepository:  poiRepository,
		cityRepository: cityRepository,
		validate:       validator.New(),
	}
}

func (s *pointOfInterestService) ListForCity(ctx context.Context, cityID int64) ([]domain.PointOfInterest, error) {
	exists, err := s.cityRepository.Exists(ctx, cityID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	return s.poiRepository.GetAllForCity(ctx, cityID)
}

func (s *pointOfInterestService) GetByID(ctx context.Context, cityID, id int64) (*domain.PointOfInterest, error) {
	return s.poiRepository.GetOneForCity(ctx, cityID, id)
}

func (s *pointOfInterestService) Create(ctx context.Context, cityID int64, input PointOfInterestInput) (*domain.PointOfInterest, error) {
	exists, err := s.cityRepository.Exists(ctx, cityID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	poi := &domain.PointOfInterest{
		CityID:      cityID,
		Name:        input.Name,
		Description: input.Description,
	}
	// The repository reports not-found on its own should the city vanish
	// between the check and the insert.
	if err := s.poiRepository.Create(ctx, poi); err != nil {
		return nil, err
	}
	return poi, nil
}

func (s *pointOfInterestService) Update(ctx context.Context, cityID, id int64, input PointOfInterestInput) error {
	poi, err := s.poiRepository.GetOneForCity(ctx, cityID, id)
	if err != nil {
		return err
	}

	poi.Name = input.Name
	poi.Description = input.Description

	return s.poiRepository.Update(ctx, poi)
}

// Patch applies the operations to a working copy of the entity's mutable
// fields, validates the result, and only then merges the copy back. A failed
// apply or validation leaves the live entity untouched.
func (s *pointOfInterestService) Patch(ctx context.Context, cityID, id int64, ops []PatchOp) (*domain.PointOfInterest, error) {
	poi, err := s.poiRepository.GetOneForCity(ctx, cityID, id)
	if err != nil {
		return nil, err
	}

	working := pointOfInterestPatch{
		Name:        poi.Name,
		Description: poi.Description,
	}

	if err := applyPatchOps(&working, ops); err != nil {
		return nil, err
	}

	if err := s.validate.Struct(working); err != nil {
		return nil, err
	}

	poi.Name = working.Name
	poi.Description = working.Description

	if err := s.poiRepository.Update(ctx, poi); err != nil {
		return nil, err
	}
	return poi, nil
}

func (s *pointOfInterestService) Delete(ctx context.Context, cityID, id int64) error {
	poi, err := s.poiRepository.GetOneForCity(ctx, cityID, id)
	if err != nil {
		return err
	}

	if err := s.poiRepository.Delete(ctx, cityID, id); err != nil {
		return err
	}

	s.enqueueDeletedNotification(ctx, poi)

	return nil
}

// enqueueDeletedNotification hands the notification mail off to the queue.
// Delivery is best effort: a queue failure never fails the delete itself.
func (s *pointOfInterestService) enqueueDeletedNotification(ctx context.Context, poi *domain.PointOfInterest) {
	client := queueclient.GetClient(ctx)
	if client == nil {
		return
	}

	t, err := task.NewPointOfInterestDeletedTask(poi.ID, poi.CityID, poi.Name)
	if err != nil {
		logger.Error("create point of interest deleted task failed", zap.Error(err))
		return
	}

	if _, err := client.EnqueueContext(ctx, t); err != nil {
		logger.Error("enqueue point of interest deleted task failed",
			zap.Error(err), zap.String("task", fmt.Sprintf("%s/%d", task.PointOfInterestDeletedTaskName, poi.ID)))
	}
}
