package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cityinfo/backend/internal/config"
	"github.com/cityinfo/backend/internal/domain"
	"github.com/cityinfo/backend/internal/service"
	"github.com/cityinfo/backend/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCityService struct {
	cities []domain.City
	meta   service.PageMeta
	err    error

	gotInput service.ListCitiesInput
}

func (f *fakeCityService) List(_ context.Context, input service.ListCitiesInput) ([]domain.City, service.PageMeta, error) {
	f.gotInput = input
	return f.cities, f.meta, f.err
}

func (f *fakeCityService) GetByID(_ context.Context, id int64, _ bool) (*domain.City, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.cities {
		if f.cities[i].ID == id {
			return &f.cities[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeCityService) Create(_ context.Context, input service.CityInput) (*domain.City, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.City{ID: 99, Name: input.Name, Description: input.Description}, nil
}

func (f *fakeCityService) Update(_ context.Context, _ int64, _ service.CityInput) error {
	return f.err
}

func (f *fakeCityService) Delete(_ context.Context, _ int64) error {
	return f.err
}

type fakePointOfInterestService struct {
	poi *domain.PointOfInterest
	err error
}

func (f *fakePointOfInterestService) ListForCity(_ context.Context, _ int64) ([]domain.PointOfInterest, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.poi == nil {
		return []domain.PointOfInterest{}, nil
	}
	return []domain.PointOfInterest{*f.poi}, nil
}

func (f *fakePointOfInterestService) GetByID(_ context.Context, _, _ int64) (*domain.PointOfInterest, error) {
	return f.poi, f.err
}

func (f *fakePointOfInterestService) Create(_ context.Context, cityID int64, input service.PointOfInterestInput) (*domain.PointOfInterest, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.PointOfInterest{ID: 7, CityID: cityID, Name: input.Name, Description: input.Description}, nil
}

func (f *fakePointOfInterestService) Update(_ context.Context, _, _ int64, _ service.PointOfInterestInput) error {
	return f.err
}

func (f *fakePointOfInterestService) Patch(_ context.Context, _, _ int64, _ []service.PatchOp) (*domain.PointOfInterest, error) {
	return f.poi, f.err
}

func (f *fakePointOfInterestService) Delete(_ context.Context, _, _ int64) error {
	return f.err
}

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWT: config.JWTConfig{
				AccessTokenTTL: time.Hour,
				SigningKey:     "test-signing-key",
			},
			RequiredCityClaim: "Antwerp",
			ApiUser: config.ApiUser{
				UserName: "api",
				Password: "secret",
				City:     "Antwerp",
			},
		},
	}
}

func newTestRouter(t *testing.T, services *service.Services) (*gin.Engine, auth.TokenManager) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	cfg := testConfig()
	tokenManager, err := auth.NewManager(cfg.Auth.JWT)
	require.NoError(t, err)

	router := gin.New()
	api := router.Group("/api")
	NewHandler(services, tokenManager, cfg).Init(api)

	return router, tokenManager
}

func bearerToken(t *testing.T, tokenManager auth.TokenManager, city string) string {
	t.Helper()

	token, _, err := tokenManager.NewJWT("api", city)
	require.NoError(t, err)
	return "Bearer " + token
}

func doRequest(router *gin.Engine, method, target, authHeader string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set(authorizationHeader, authHeader)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetCitiesRequiresToken(t *testing.T) {
	router, _ := newTestRouter(t, &service.Services{Cities: &fakeCityService{}})

	w := doRequest(router, http.MethodGet, "/api/v1/cities", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(router, http.MethodGet, "/api/v1/cities", "Bearer not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetCitiesPaginationHeader(t *testing.T) {
	citySvc := &fakeCityService{
		cities: []domain.City{{ID: 1, Name: "Paris"}, {ID: 2, Name: "Rome"}},
		meta:   service.PageMeta{TotalItemCount: 12, TotalPageCount: 6, PageSize: 2, CurrentPage: 3},
	}
	router, tokenManager := newTestRouter(t, &service.Services{Cities: citySvc})

	w := doRequest(router, http.MethodGet, "/api/v1/cities?page=3&limit=2&search=par", bearerToken(t, tokenManager, "Ghent"), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var meta service.PageMeta
	require.NoError(t, json.Unmarshal([]byte(w.Header().Get(paginationHeader)), &meta))
	assert.Equal(t, citySvc.meta, meta)

	assert.Equal(t, 3, citySvc.gotInput.Page)
	assert.Equal(t, 2, citySvc.gotInput.Limit)
	assert.Equal(t, "par", citySvc.gotInput.Search)

	var out []cityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out, 2)
	assert.Equal(t, "Paris", out[0].Name)
}

func TestCreateCityNeedsCityClaim(t *testing.T) {
	router, tokenManager := newTestRouter(t, &service.Services{Cities: &fakeCityService{}})

	body := gin.H{"name": "Antwerp"}

	w := doRequest(router, http.MethodPost, "/api/v1/cities", bearerToken(t, tokenManager, "Ghent"), body)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(router, http.MethodPost, "/api/v1/cities", bearerToken(t, tokenManager, "Antwerp"), body)
	require.Equal(t, http.StatusCreated, w.Code)

	var out cityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, int64(99), out.ID)
	assert.Equal(t, "Antwerp", out.Name)
}

func TestCreateCityValidation(t *testing.T) {
	router, tokenManager := newTestRouter(t, &service.Services{Cities: &fakeCityService{}})

	w := doRequest(router, http.MethodPost, "/api/v1/cities", bearerToken(t, tokenManager, "Antwerp"), gin.H{"description": "no name"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCityNotFound(t *testing.T) {
	router, tokenManager := newTestRouter(t, &service.Services{Cities: &fakeCityService{}})

	w := doRequest(router, http.MethodGet, "/api/v1/cities/42", bearerToken(t, tokenManager, "Ghent"), nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	var out ErrorStruct
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, ErrorCode(CityNotFoundCode), out.ErrorCode)
}

func TestGetCityShapeFollowsIncludePoints(t *testing.T) {
	desc := "Capital of France"
	citySvc := &fakeCityService{cities: []domain.City{{
		ID:               3,
		Name:             "Paris",
		Description:      &desc,
		PointsOfInterest: []domain.PointOfInterest{{ID: 5, CityID: 3, Name: "Eiffel Tower"}},
	}}}
	router, tokenManager := newTestRouter(t, &service.Services{Cities: citySvc})
	header := bearerToken(t, tokenManager, "Ghent")

	w := doRequest(router, http.MethodGet, "/api/v1/cities/3", header, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var withPoints map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &withPoints))
	assert.Contains(t, withPoints, "points_of_interest")

	w = doRequest(router, http.MethodGet, "/api/v1/cities/3?include_points=false", header, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var withoutPoints map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &withoutPoints))
	assert.NotContains(t, withoutPoints, "points_of_interest")
}

func TestCreatePointOfInterestSetsLocation(t *testing.T) {
	router, tokenManager := newTestRouter(t, &service.Services{
		Cities:           &fakeCityService{},
		PointsOfInterest: &fakePointOfInterestService{},
	})

	w := doRequest(router, http.MethodPost, "/api/v1/cities/3/pointsofinterest",
		bearerToken(t, tokenManager, "Antwerp"), gin.H{"name": "Eiffel Tower"})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/api/v1/cities/3/pointsofinterest/7", w.Header().Get("Location"))
}

func TestCreatePointOfInterestMissingCity(t *testing.T) {
	router, tokenManager := newTestRouter(t, &service.Services{
		Cities:           &fakeCityService{},
		PointsOfInterest: &fakePointOfInterestService{err: domain.ErrNotFound},
	})

	w := doRequest(router, http.MethodPost, "/api/v1/cities/404/pointsofinterest",
		bearerToken(t, tokenManager, "Antwerp"), gin.H{"name": "Eiffel Tower"})
	require.Equal(t, http.StatusNotFound, w.Code)

	var out ErrorStruct
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, ErrorCode(CityNotFoundCode), out.ErrorCode)
}

func TestPatchPointOfInterestStatusMapping(t *testing.T) {
	validationErr := validator.New().Struct(struct {
		Name string `validate:"required"`
	}{})

	tests := []struct {
		name       string
		svc        *fakePointOfInterestService
		wantStatus int
		wantCode   ErrorCode
	}{
		{
			name:       "missing entity",
			svc:        &fakePointOfInterestService{err: domain.ErrNotFound},
			wantStatus: http.StatusNotFound,
			wantCode:   PointOfInterestNotFoundCode,
		},
		{
			name:       "malformed document",
			svc:        &fakePointOfInterestService{err: service.ErrMalformedPatch},
			wantStatus: http.StatusBadRequest,
			wantCode:   MalformedPatchCode,
		},
		{
			name:       "validation failure",
			svc:        &fakePointOfInterestService{err: validationErr},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, tokenManager := newTestRouter(t, &service.Services{
				Cities:           &fakeCityService{},
				PointsOfInterest: tt.svc,
			})

			ops := []gin.H{{"op": "replace", "path": "/name", "value": "X"}}
			w := doRequest(router, http.MethodPatch, "/api/v1/cities/3/pointsofinterest/5",
				bearerToken(t, tokenManager, "Antwerp"), ops)
			require.Equal(t, tt.wantStatus, w.Code)

			if tt.wantCode != 0 {
				var out ErrorStruct
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
				assert.Equal(t, tt.wantCode, out.ErrorCode)
			}
		})
	}
}

func TestPatchPointOfInterestReturnsUpdatedEntity(t *testing.T) {
	router, tokenManager := newTestRouter(t, &service.Services{
		Cities:           &fakeCityService{},
		PointsOfInterest: &fakePointOfInterestService{poi: &domain.PointOfInterest{ID: 5, CityID: 3, Name: "Tour Eiffel"}},
	})

	ops := []gin.H{{"op": "replace", "path": "/name", "value": "Tour Eiffel"}}
	w := doRequest(router, http.MethodPatch, "/api/v1/cities/3/pointsofinterest/5",
		bearerToken(t, tokenManager, "Antwerp"), ops)
	require.Equal(t, http.StatusOK, w.Code)

	var out pointOfInterestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, "Tour Eiffel", out.Name)
}

func TestDeletePointOfInterest(t *testing.T) {
	router, tokenManager := newTestRouter(t, &service.Services{
		Cities:           &fakeCityService{},
		PointsOfInterest: &fakePointOfInterestService{},
	})
	header := bearerToken(t, tokenManager, "Antwerp")

	w := doRequest(router, http.MethodDelete, "/api/v1/cities/3/pointsofinterest/5", header, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestCreateToken(t *testing.T) {
	router, tokenManager := newTestRouter(t, &service.Services{Cities: &fakeCityService{}})

	w := doRequest(router, http.MethodPost, "/api/v1/auth/token", "", gin.H{"user_name": "api", "password": "wrong"})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(router, http.MethodPost, "/api/v1/auth/token", "", gin.H{"user_name": "api", "password": "secret"})
	require.Equal(t, http.StatusOK, w.Code)

	var out createTokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, int64(time.Hour.Seconds()), out.ExpiresIn)

	// The issued token carries the city claim and passes the claim gate.
	claims, err := tokenManager.Parse(out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "Antwerp", claims.City)

	w = doRequest(router, http.MethodPost, "/api/v1/cities", "Bearer "+out.AccessToken, gin.H{"name": "Antwerp"})
	assert.Equal(t, http.StatusCreated, w.Code)
}
