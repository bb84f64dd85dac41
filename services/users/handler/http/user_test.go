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
	"github.com/guinchoja/backend/services/users"
	"github.com/guinchoja/backend/services/users/mocks"
)

func setupUserHandler(t *testing.T) (*UserHandler, *mocks.MockUserUC, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockUserUC(ctrl)
	return NewUserHandler(mockUC), mockUC, ctrl
}

func userContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
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

func TestLogin_Success(t *testing.T) {
	// Arrange
	handler, mockUC, ctrl := setupUserHandler(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, creds *models.LoginRequest) (*models.LoginResponse, error) {
			assert.Equal(t, "ana@example.com", creds.Email)
			return &models.LoginResponse{
				ID:    "user-1",
				Type:  "Motorista",
				Token: "signed.jwt.token",
			}, nil
		})

	c, rec := userContext(http.MethodPost, "/login", `{"email":"ana@example.com","password":"s3cret"}`)

	// Act
	err := handler.Login(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "Login successful", response["message"])
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "user-1", data["id"])
	assert.Equal(t, "signed.jwt.token", data["token"])
}

func TestLogin_InvalidCredentials(t *testing.T) {
	// Arrange
	handler, mockUC, ctrl := setupUserHandler(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(nil, users.ErrInvalidCredentials)

	c, rec := userContext(http.MethodPost, "/login", `{"email":"ana@example.com","password":"wrong"}`)

	// Act
	err := handler.Login(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_BackendUnavailable(t *testing.T) {
	// Arrange
	handler, mockUC, ctrl := setupUserHandler(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connect: connection refused"))

	c, rec := userContext(http.MethodPost, "/login", `{"email":"ana@example.com","password":"s3cret"}`)

	// Act
	err := handler.Login(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestCheckUser_Success(t *testing.T) {
	// Arrange
	handler, mockUC, ctrl := setupUserHandler(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		CheckUser(gomock.Any(), "ana").
		Return(&models.User{ID: "user-1", Username: "ana"}, nil)

	c, rec := userContext(http.MethodPost, "/user", `{"username":"ana"}`)

	// Act
	err := handler.CheckUser(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCheckUser_MissingUsername(t *testing.T) {
	// Arrange
	handler, _, ctrl := setupUserHandler(t)
	defer ctrl.Finish()

	c, rec := userContext(http.MethodPost, "/user", `{}`)

	// Act
	err := handler.CheckUser(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegister_Success(t *testing.T) {
	// Arrange
	handler, mockUC, ctrl := setupUserHandler(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req *models.RegisterRequest) (*models.User, error) {
			assert.Equal(t, "Guincho", req.Type)
			assert.Equal(t, "ABC1D23", req.LicensePlate)
			return &models.User{ID: "user-2", Username: req.Username, Type: req.Type}, nil
		})

	body := `{"username":"carlos","password":"s3cret","email":"carlos@example.com","tipo":"Guincho","licensePlate":"ABC1D23","modelo":"F-350","cnh":"D"}`
	c, rec := userContext(http.MethodPost, "/register", body)

	// Act
	err := handler.Register(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "Account created", response["message"])
}

func TestRegister_ValidationError(t *testing.T) {
	// Arrange
	handler, mockUC, ctrl := setupUserHandler(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(nil, users.ErrValidation)

	c, rec := userContext(http.MethodPost, "/register", `{"username":"carlos"}`)

	// Act
	err := handler.Register(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdatePassword_Success(t *testing.T) {
	// Arrange
	handler, mockUC, ctrl := setupUserHandler(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		UpdatePassword(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req *models.PasswordUpdateRequest) error {
			assert.Equal(t, "ana", req.Username)
			assert.Equal(t, "n3wpass", req.NewPassword)
			return nil
		})

	c, rec := userContext(http.MethodPut, "/updatepassword", `{"username":"ana","newPassword":"n3wpass"}`)

	// Act
	err := handler.UpdatePassword(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdatePassword_UserNotFound(t *testing.T) {
	// Arrange
	handler, mockUC, ctrl := setupUserHandler(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		UpdatePassword(gomock.Any(), gomock.Any()).
		Return(users.ErrUserNotFound)

	c, rec := userContext(http.MethodPut, "/updatepassword", `{"username":"ghost","newPassword":"n3wpass"}`)

	// Act
	err := handler.UpdatePassword(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProfile_Success(t *testing.T) {
	// Arrange
	handler, mockUC, ctrl := setupUserHandler(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		Profile(gomock.Any(), "user-1").
		Return(&models.User{ID: "user-1", Username: "ana", Email: "ana@example.com"}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/userinfo/user-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/userinfo/:id")
	c.SetParamNames("id")
	c.SetParamValues("user-1")

	// Act
	err := handler.Profile(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "ana", data["username"])
}

func TestProfile_NotFound(t *testing.T) {
	// Arrange
	handler, mockUC, ctrl := setupUserHandler(t)
	defer ctrl.Finish()

	mockUC.EXPECT().Profile(gomock.Any(), "ghost").Return(nil, users.ErrUserNotFound)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/userinfo/ghost", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/userinfo/:id")
	c.SetParamNames("id")
	c.SetParamValues("ghost")

	// Act
	err := handler.Profile(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
