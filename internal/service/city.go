package service

import (
	"context"
	"strings"

	"github.com/cityinfo/backend/internal/domain"
	"github.com/cityinfo/backend/internal/repository"
)

type ListCitiesInput struct {
	// Name filters by exact match, Search by substring over name and
	// description. Blank values impose no restriction.
	Name   string
	Search string
	Page   int
	Limit  int
}

type CityInput struct {
	Name        string
	Description *string
}

type cityService struct {
	cityRepository repository.Cities
}

func newCityService(cityRepository repository.Cities) *cityService {
	return &cityService{
		cityRepository: cityRepository,
	}
}

func (s *cityService) List(ctx context.Context, input ListCitiesInput) ([]domain.City, PageMeta, error) {
	page, limit := clampPaging(input.Page, input.Limit)

	filters := repository.CityFilters{}
	if name := strings.TrimSpace(input.Name); name != "" {
		filters.Name = &name
	}
	if search := strings.TrimSpace(input.Search); search != "" {
		filters.Search = &search
	}

	offset := limit * (page - 1)

	cities, err := s.cityRepository.GetAll(ctx, filters, limit, offset)
	if err != nil {
		return nil, PageMeta{}, err
	}

	total, err := s.cityRepository.Count(ctx, filters)
	if err != nil {
		return nil, PageMeta{}, err
	}

	return cities, newPageMeta(total, page, limit), nil
}

func (s *cityService) GetByID(ctx context.Context, id int64, includePoints bool) (*domain.City, error) {
	return s.cityRepository.GetOneByID(ctx, id, includePoints)
}

func (s *cityService) Create(ctx context.Context, input CityInput) (*domain.City, error) {
	city := &domain.City{
		Name:        input.Name,
		Description: input.Description,
	}
	if err := s.cityRepository.Create(ctx, city); err != nil {
		return nil, err
	}
	return city, nil
}

func (s *cityService) Update(ctx context.Context, id int64, input CityInput) error {
	city, err := s.cityRepository.GetOneByID(ctx, id, false)
	if err != nil {
		return err
	}

	city.Name = input.Name
	city.Description = input.Description

	return s.cityRepository.Update(ctx, city)
}

func (s *cityService) Delete(ctx context.Context, id int64) error {
	// Points of interest go with the city, the store cascades the delete.
	return s.cityRepository.Delete(ctx, id)
}
