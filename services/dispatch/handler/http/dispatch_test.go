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
	"github.com/guinchoja/backend/services/dispatch"
	"github.com/guinchoja/backend/services/dispatch/mocks"
)

func setupDispatchHandler(t *testing.T) (*DispatchHandler, *mocks.MockDispatchUC, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockDispatchUC(ctrl)
	return NewDispatchHandler(mockUC), mockUC, ctrl
}

func jsonContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
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

func TestCreateRequest_Success(t *testing.T) {
	// Arrange
	handler, mockUC, ctrl := setupDispatchHandler(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		CreateRequest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, payload *models.RequestPayload) (*models.ServiceRequest, error) {
			assert.Equal(t, "req-1", payload.RequesterID)
			return &models.ServiceRequest{ID: "42", Status: models.StatusPending}, nil
		})

	body := `{"id_Motorista":"req-1","id_Guincho":"prov-1","destino":"-23.56,-46.62"}`
	c, rec := jsonContext(http.MethodPost, "/preSolicitacao", body)

	// Act
	err := handler.CreateRequest(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateRequest_MissingRequester(t *testing.T) {
	// Arrange
	handler, _, ctrl := setupDispatchHandler(t)
	defer ctrl.Finish()

	c, rec := jsonContext(http.MethodPost, "/preSolicitacao", `{"id_Guincho":"prov-1"}`)

	// Act
	err := handler.CreateRequest(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateRequest_ActiveRequestConflict(t *testing.T) {
	// Arrange
	handler, mockUC, ctrl := setupDispatchHandler(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		CreateRequest(gomock.Any(), gomock.Any()).
		Return(nil, dispatch.ErrActiveRequest)

	c, rec := jsonContext(http.MethodPost, "/preSolicitacao", `{"id_Motorista":"req-1"}`)

	// Act
	err := handler.CreateRequest(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetRide_Success(t *testing.T) {
	// Arrange
	handler, mockUC, ctrl := setupDispatchHandler(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		GetRide(gomock.Any(), "42").
		Return(&models.ServiceRequest{ID: "42", Status: models.StatusAccepted, StartCode: "1234"}, nil)

	c, rec := jsonContext(http.MethodGet, "/corrida?idSolicitacao=42", "")

	// Act
	err := handler.GetRide(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "42", data["id"])
	assert.Equal(t, "1234", data["start_code"])
}

func TestGetRide_MissingQueryParam(t *testing.T) {
	// Arrange
	handler, _, ctrl := setupDispatchHandler(t)
	defer ctrl.Finish()

	c, rec := jsonContext(http.MethodGet, "/corrida", "")

	// Act
	err := handler.GetRide(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetRide_NotFound(t *testing.T) {
	// Arrange
	handler, mockUC, ctrl := setupDispatchHandler(t)
	defer ctrl.Finish()

	mockUC.EXPECT().GetRide(gomock.Any(), "nope").Return(nil, dispatch.ErrNotFound)

	c, rec := jsonContext(http.MethodGet, "/corrida?idSolicitacao=nope", "")

	// Act
	err := handler.GetRide(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateRequest_AcceptRoutesToDecide(t *testing.T) {
	// Arrange
	handler, mockUC, ctrl := setupDispatchHandler(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		Decide(gomock.Any(), "42", true).
		Return(&models.ServiceRequest{ID: "42", Status: models.StatusAccepted}, nil)

	c, rec := jsonContext(http.MethodPut, "/updatePreSolicitacao", `{"id_Solicitacao":"42","status":"Aceite"}`)

	// Act
	err := handler.UpdateRequest(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateRequest_RejectRoutesToDecide(t *testing.T) {
	// Arrange
	handler, mockUC, ctrl := setupDispatchHandler(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		Decide(gomock.Any(), "42", false).
		Return(&models.ServiceRequest{ID: "42", Status: models.StatusRejected}, nil)

	c, rec := jsonContext(http.MethodPut, "/updatePreSolicitacao", `{"id_Solicitacao":"42","status":"Recusado"}`)

	// Act
	err := handler.UpdateRequest(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateRequest_CancelRoutesToCancel(t *testing.T) {
	// Arrange
	handler, mockUC, ctrl := setupDispatchHandler(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		Cancel(gomock.Any(), "42").
		Return(&models.ServiceRequest{ID: "42", Status: models.StatusCancelled}, nil)

	c, rec := jsonContext(http.MethodPut, "/updatePreSolicitacao", `{"id_Solicitacao":"42","status":"Cancelada"}`)

	// Act
	err := handler.UpdateRequest(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateRequest_UnknownStatus(t *testing.T) {
	// Arrange
	handler, _, ctrl := setupDispatchHandler(t)
	defer ctrl.Finish()

	c, rec := jsonContext(http.MethodPut, "/updatePreSolicitacao", `{"id_Solicitacao":"42","status":"Banana"}`)

	// Act
	err := handler.UpdateRequest(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateRequest_TakenConflict(t *testing.T) {
	// Arrange
	handler, mockUC, ctrl := setupDispatchHandler(t)
	defer ctrl.Finish()

	mockUC.EXPECT().Decide(gomock.Any(), "42", true).Return(nil, dispatch.ErrRequestTaken)

	c, rec := jsonContext(http.MethodPut, "/updatePreSolicitacao", `{"id_Solicitacao":"42","status":"Aceite"}`)

	// Act
	err := handler.UpdateRequest(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestUpdateRide_StartConfirmation(t *testing.T) {
	// Arrange
	handler, mockUC, ctrl := setupDispatchHandler(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		ConfirmStart(gomock.Any(), "42", "1234").
		Return(&models.ServiceRequest{ID: "42", Status: models.StatusInTransit}, nil)

	c, rec := jsonContext(http.MethodPut, "/AtualizaCorrida", `{"id_Solicitacao":"42","status":"Em Andamento","codigo":"1234"}`)

	// Act
	err := handler.UpdateRide(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateRide_EndConfirmation(t *testing.T) {
	// Arrange
	handler, mockUC, ctrl := setupDispatchHandler(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		ConfirmEnd(gomock.Any(), "42", "5678").
		Return(&models.ServiceRequest{ID: "42", Status: models.StatusCompleted}, nil)

	c, rec := jsonContext(http.MethodPut, "/AtualizaCorrida", `{"id_Solicitacao":"42","status":"Finalizada","codigo":"5678"}`)

	// Act
	err := handler.UpdateRide(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateRide_WrongCode(t *testing.T) {
	// Arrange
	handler, mockUC, ctrl := setupDispatchHandler(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		ConfirmStart(gomock.Any(), "42", "9999").
		Return(nil, dispatch.ErrValidationCode)

	c, rec := jsonContext(http.MethodPut, "/AtualizaCorrida", `{"id_Solicitacao":"42","status":"Em Andamento","codigo":"9999"}`)

	// Act
	err := handler.UpdateRide(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateRide_BackendUnavailable(t *testing.T) {
	// Arrange
	handler, mockUC, ctrl := setupDispatchHandler(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		ConfirmStart(gomock.Any(), "42", "1234").
		Return(nil, errors.New("connect: connection refused"))

	c, rec := jsonContext(http.MethodPut, "/AtualizaCorrida", `{"id_Solicitacao":"42","status":"Em Andamento","codigo":"1234"}`)

	// Act
	err := handler.UpdateRide(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestPendingForProvider_Success(t *testing.T) {
	// Arrange
	handler, mockUC, ctrl := setupDispatchHandler(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		PendingForProvider(gomock.Any(), "prov-1").
		Return([]*models.ServiceRequest{{ID: "42", Status: models.StatusPending}}, nil)

	c, rec := jsonContext(http.MethodGet, "/popupsolicitacao?id_guincho=prov-1", "")

	// Act
	err := handler.PendingForProvider(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
