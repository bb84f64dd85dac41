package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/guinchoja/backend/internal/pkg/models"
	"github.com/guinchoja/backend/services/matching/mocks"
)

func setupMatchingHandler(t *testing.T) (*MatchingHandler, *mocks.MockMatchingUC, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockMatchingUC(ctrl)
	return NewMatchingHandler(mockUC), mockUC, ctrl
}

func matchingContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestActiveProviders_RankedWhenCoordinatesGiven(t *testing.T) {
	// Arrange
	handler, mockUC, ctrl := setupMatchingHandler(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		RankProviders(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, origin, dest models.Location) ([]models.RankedProvider, error) {
			assert.InDelta(t, -23.5505, origin.Latitude, 1e-6)
			assert.InDelta(t, -46.6200, dest.Longitude, 1e-6)
			return []models.RankedProvider{
				{
					Provider:   models.Provider{ID: "prov-1", Name: "Guincho Central"},
					DistanceKm: 0.8,
					Price:      231.5,
					EtaMinutes: 2,
				},
			}, nil
		})

	c, rec := matchingContext(http.MethodGet,
		"/guinchosativos?lat_long=-23.5505,-46.6333&destino=-23.5605,-46.6200", "")

	// Act
	err := handler.ActiveProviders(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "Providers ranked", response["message"])
	data := response["data"].([]interface{})
	first := data[0].(map[string]interface{})
	assert.Equal(t, "prov-1", first["id"])
	assert.InDelta(t, 231.5, first["price"].(float64), 1e-6)
}

func TestActiveProviders_RawListWithoutCoordinates(t *testing.T) {
	// Arrange
	handler, mockUC, ctrl := setupMatchingHandler(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		ActiveProviders(gomock.Any()).
		Return([]*models.Provider{{ID: "prov-1", Online: true}}, nil)

	c, rec := matchingContext(http.MethodGet, "/guinchosativos", "")

	// Act
	err := handler.ActiveProviders(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "Active providers retrieved", response["message"])
}

func TestActiveProviders_MalformedOriginFallsBackToRawList(t *testing.T) {
	// Arrange
	handler, mockUC, ctrl := setupMatchingHandler(t)
	defer ctrl.Finish()

	mockUC.EXPECT().ActiveProviders(gomock.Any()).Return([]*models.Provider{}, nil)

	c, rec := matchingContext(http.MethodGet,
		"/guinchosativos?lat_long=not-a-coordinate&destino=-23.5605,-46.6200", "")

	// Act
	err := handler.ActiveProviders(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestActiveProviders_UpstreamFailure(t *testing.T) {
	// Arrange
	handler, mockUC, ctrl := setupMatchingHandler(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		ActiveProviders(gomock.Any()).
		Return(nil, errors.New("connect: connection refused"))

	c, rec := matchingContext(http.MethodGet, "/guinchosativos", "")

	// Act
	err := handler.ActiveProviders(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestUpdateLocation_Success(t *testing.T) {
	// Arrange
	handler, mockUC, ctrl := setupMatchingHandler(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		UpdateLocation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, payload *models.LocationUpdatePayload) error {
			assert.Equal(t, "prov-1", payload.ProviderID)
			assert.Equal(t, "-23.5505,-46.6333", payload.LatLong)
			return nil
		})

	body := `{"id_cliente":"prov-1","id_Endereco":"addr-1","lat_long":"-23.5505,-46.6333"}`
	c, rec := matchingContext(http.MethodPut, "/updatelocal", body)

	// Act
	err := handler.UpdateLocation(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateLocation_InvalidCoordinates(t *testing.T) {
	// Arrange
	handler, _, ctrl := setupMatchingHandler(t)
	defer ctrl.Finish()

	body := `{"id_cliente":"prov-1","lat_long":"somewhere downtown"}`
	c, rec := matchingContext(http.MethodPut, "/updatelocal", body)

	// Act
	err := handler.UpdateLocation(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateStatus_Success(t *testing.T) {
	// Arrange
	handler, mockUC, ctrl := setupMatchingHandler(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		SetAvailability(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, payload *models.ProviderStatusPayload) error {
			assert.Equal(t, "prov-1", payload.ProviderID)
			assert.True(t, payload.Online)
			return nil
		})

	c, rec := matchingContext(http.MethodPut, "/updatestatus", `{"id_cliente":"prov-1","status":true}`)

	// Act
	err := handler.UpdateStatus(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateStatus_MissingProvider(t *testing.T) {
	// Arrange
	handler, _, ctrl := setupMatchingHandler(t)
	defer ctrl.Finish()

	c, rec := matchingContext(http.MethodPut, "/updatestatus", `{"status":true}`)

	// Act
	err := handler.UpdateStatus(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateStatus_RegistryFailure(t *testing.T) {
	// Arrange
	handler, mockUC, ctrl := setupMatchingHandler(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		SetAvailability(gomock.Any(), gomock.Any()).
		Return(errors.New("redis: connection pool timeout"))

	c, rec := matchingContext(http.MethodPut, "/updatestatus", `{"id_cliente":"prov-1","status":false}`)

	// Act
	err := handler.UpdateStatus(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
