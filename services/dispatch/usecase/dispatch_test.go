package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httppkg "github.com/guinchoja/backend/internal/pkg/http"
	"github.com/guinchoja/backend/internal/pkg/logger"
	"github.com/guinchoja/backend/internal/pkg/models"
	"github.com/guinchoja/backend/services/dispatch"
	"github.com/guinchoja/backend/services/dispatch/mocks"
)

type dispatchFixture struct {
	repo    *mocks.MockDispatchRepo
	backend *mocks.MockBackendGW
	events  *mocks.MockDispatchGW
	uc      *DispatchUC
}

func newDispatchFixture(t *testing.T) (*dispatchFixture, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	f := &dispatchFixture{
		repo:    mocks.NewMockDispatchRepo(ctrl),
		backend: mocks.NewMockBackendGW(ctrl),
		events:  mocks.NewMockDispatchGW(ctrl),
	}
	f.uc = NewDispatchUC(&models.Config{}, f.repo, f.backend, f.events, logger.NewNopLogger())
	return f, ctrl
}

func pendingSnapshot(id string) *models.RequestSnapshot {
	return &models.RequestSnapshot{
		ID:          models.FlexString(id),
		RequesterID: "req-1",
		ProviderID:  "prov-1",
		Distance:    models.FlexFloat(10),
		Price:       models.FlexFloat(250),
		Status:      "Pendente",
	}
}

func snapshotWithStatus(id, status string) *models.RequestSnapshot {
	s := pendingSnapshot(id)
	s.Status = status
	return s
}

func TestCreateRequest_Success(t *testing.T) {
	// Arrange
	f, ctrl := newDispatchFixture(t)
	defer ctrl.Finish()

	payload := &models.RequestPayload{RequesterID: "req-1", ProviderID: "prov-1"}

	f.repo.EXPECT().AcquireActive(gomock.Any(), "req-1", "pending").Return(true, nil)
	f.backend.EXPECT().CreateRequest(gomock.Any(), payload).Return(pendingSnapshot("42"), nil)
	f.repo.EXPECT().RecordActive(gomock.Any(), "req-1", "42").Return(nil)
	f.events.EXPECT().PublishRequestCreated(gomock.Any(), gomock.Any()).Return(nil)

	// Act
	req, err := f.uc.CreateRequest(context.Background(), payload)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "42", req.ID)
	assert.Equal(t, models.StatusPending, req.Status)
}

func TestCreateRequest_SecondOpenRequestRefused(t *testing.T) {
	// Arrange
	f, ctrl := newDispatchFixture(t)
	defer ctrl.Finish()

	f.repo.EXPECT().AcquireActive(gomock.Any(), "req-1", "pending").Return(false, nil)

	// Act
	_, err := f.uc.CreateRequest(context.Background(), &models.RequestPayload{RequesterID: "req-1"})

	// Assert: the backend is never called while a request is already open.
	assert.ErrorIs(t, err, dispatch.ErrActiveRequest)
}

func TestCreateRequest_BackendFailureReleasesSlot(t *testing.T) {
	// Arrange
	f, ctrl := newDispatchFixture(t)
	defer ctrl.Finish()

	payload := &models.RequestPayload{RequesterID: "req-1"}

	f.repo.EXPECT().AcquireActive(gomock.Any(), "req-1", "pending").Return(true, nil)
	f.backend.EXPECT().CreateRequest(gomock.Any(), payload).Return(nil, errors.New("backend down"))
	f.repo.EXPECT().ReleaseActive(gomock.Any(), "req-1").Return(nil)

	// Act
	_, err := f.uc.CreateRequest(context.Background(), payload)

	// Assert
	assert.Error(t, err)
}

func TestDecide_AcceptSuccess(t *testing.T) {
	// Arrange
	f, ctrl := newDispatchFixture(t)
	defer ctrl.Finish()

	gomock.InOrder(
		f.backend.EXPECT().GetRequest(gomock.Any(), "42").Return(pendingSnapshot("42"), nil),
		f.backend.EXPECT().UpdateRequestStatus(gomock.Any(), "42", models.StatusAccepted).Return(nil),
		f.backend.EXPECT().GetRequest(gomock.Any(), "42").Return(snapshotWithStatus("42", "Aceite"), nil),
	)
	f.events.EXPECT().PublishRequestAccepted(gomock.Any(), gomock.Any()).Return(nil)

	// Act
	req, err := f.uc.Decide(context.Background(), "42", true)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, req.Status)
}

func TestDecide_RejectReleasesSlot(t *testing.T) {
	// Arrange
	f, ctrl := newDispatchFixture(t)
	defer ctrl.Finish()

	gomock.InOrder(
		f.backend.EXPECT().GetRequest(gomock.Any(), "42").Return(pendingSnapshot("42"), nil),
		f.backend.EXPECT().UpdateRequestStatus(gomock.Any(), "42", models.StatusRejected).Return(nil),
		f.backend.EXPECT().GetRequest(gomock.Any(), "42").Return(snapshotWithStatus("42", "Recusado"), nil),
	)
	f.events.EXPECT().PublishRequestRejected(gomock.Any(), gomock.Any()).Return(nil)
	f.repo.EXPECT().ReleaseActive(gomock.Any(), "req-1").Return(nil)

	// Act
	req, err := f.uc.Decide(context.Background(), "42", false)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, req.Status)
}

func TestDecide_AlreadyTakenBeforeCall(t *testing.T) {
	// Arrange: another provider accepted between polls.
	f, ctrl := newDispatchFixture(t)
	defer ctrl.Finish()

	f.backend.EXPECT().GetRequest(gomock.Any(), "42").Return(snapshotWithStatus("42", "Aceite"), nil)

	// Act
	_, err := f.uc.Decide(context.Background(), "42", true)

	// Assert: no update call is ever issued for a non-pending request.
	assert.ErrorIs(t, err, dispatch.ErrRequestTaken)
}

func TestDecide_LostRaceAfterUpdate(t *testing.T) {
	// Arrange: the pre-check sees Pendente but the re-read shows someone
	// else's decision won at the backend.
	f, ctrl := newDispatchFixture(t)
	defer ctrl.Finish()

	gomock.InOrder(
		f.backend.EXPECT().GetRequest(gomock.Any(), "42").Return(pendingSnapshot("42"), nil),
		f.backend.EXPECT().UpdateRequestStatus(gomock.Any(), "42", models.StatusAccepted).Return(nil),
		f.backend.EXPECT().GetRequest(gomock.Any(), "42").Return(snapshotWithStatus("42", "Recusado"), nil),
	)

	// Act
	_, err := f.uc.Decide(context.Background(), "42", true)

	// Assert
	assert.ErrorIs(t, err, dispatch.ErrRequestTaken)
}

func TestDecide_TerminalStateRefused(t *testing.T) {
	// Arrange
	f, ctrl := newDispatchFixture(t)
	defer ctrl.Finish()

	f.backend.EXPECT().GetRequest(gomock.Any(), "42").Return(snapshotWithStatus("42", "Cancelada"), nil)

	// Act
	_, err := f.uc.Decide(context.Background(), "42", true)

	// Assert
	assert.ErrorIs(t, err, dispatch.ErrTerminalState)
}

func TestCancel_Success(t *testing.T) {
	// Arrange
	f, ctrl := newDispatchFixture(t)
	defer ctrl.Finish()

	gomock.InOrder(
		f.backend.EXPECT().GetRequest(gomock.Any(), "42").Return(pendingSnapshot("42"), nil),
		f.backend.EXPECT().UpdateRequestStatus(gomock.Any(), "42", models.StatusCancelled).Return(nil),
		f.backend.EXPECT().GetRequest(gomock.Any(), "42").Return(snapshotWithStatus("42", "Cancelada"), nil),
	)
	f.events.EXPECT().PublishRequestCancelled(gomock.Any(), gomock.Any()).Return(nil)
	f.repo.EXPECT().ReleaseActive(gomock.Any(), "req-1").Return(nil)

	// Act
	req, err := f.uc.Cancel(context.Background(), "42")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, req.Status)
}

func TestCancel_InTransitRefused(t *testing.T) {
	// Arrange: once the truck is moving the requester can no longer bail.
	f, ctrl := newDispatchFixture(t)
	defer ctrl.Finish()

	f.backend.EXPECT().GetRequest(gomock.Any(), "42").Return(snapshotWithStatus("42", "Em Andamento"), nil)

	// Act
	_, err := f.uc.Cancel(context.Background(), "42")

	// Assert
	assert.ErrorIs(t, err, dispatch.ErrInvalidTransition)
}

func rideSnapshot(id, status, startCode, endCode string) *models.RideSnapshot {
	return &models.RideSnapshot{
		RequestSnapshot: *snapshotWithStatus(id, status),
		StartCode:       models.FlexString(startCode),
		EndCode:         models.FlexString(endCode),
	}
}

func TestConfirmStart_Success(t *testing.T) {
	// Arrange
	f, ctrl := newDispatchFixture(t)
	defer ctrl.Finish()

	gomock.InOrder(
		f.backend.EXPECT().GetRide(gomock.Any(), "42").Return(rideSnapshot("42", "Aceite", "1234", "5678"), nil),
		f.backend.EXPECT().UpdateRideStatus(gomock.Any(), "42", models.StatusInTransit).Return(nil),
		f.backend.EXPECT().GetRide(gomock.Any(), "42").Return(rideSnapshot("42", "Em Andamento", "1234", "5678"), nil),
	)
	f.events.EXPECT().PublishRideStarted(gomock.Any(), gomock.Any()).Return(nil)

	// Act
	req, err := f.uc.ConfirmStart(context.Background(), "42", "1234")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, models.StatusInTransit, req.Status)
}

func TestConfirmStart_WrongCode(t *testing.T) {
	// Arrange
	f, ctrl := newDispatchFixture(t)
	defer ctrl.Finish()

	f.backend.EXPECT().GetRide(gomock.Any(), "42").Return(rideSnapshot("42", "Aceite", "1234", "5678"), nil)

	// Act
	_, err := f.uc.ConfirmStart(context.Background(), "42", "9999")

	// Assert: no backend update happens on a code mismatch, so the ride
	// stays Aceite for the next attempt.
	assert.ErrorIs(t, err, dispatch.ErrValidationCode)
}

func TestConfirmStart_MissingCodeOnRide(t *testing.T) {
	// Arrange: a ride the backend issued without codes can never validate.
	f, ctrl := newDispatchFixture(t)
	defer ctrl.Finish()

	f.backend.EXPECT().GetRide(gomock.Any(), "42").Return(rideSnapshot("42", "Aceite", "", ""), nil)

	// Act
	_, err := f.uc.ConfirmStart(context.Background(), "42", "")

	// Assert
	assert.ErrorIs(t, err, dispatch.ErrValidationCode)
}

func TestConfirmEnd_Success(t *testing.T) {
	// Arrange
	f, ctrl := newDispatchFixture(t)
	defer ctrl.Finish()

	gomock.InOrder(
		f.backend.EXPECT().GetRide(gomock.Any(), "42").Return(rideSnapshot("42", "Em Andamento", "1234", "5678"), nil),
		f.backend.EXPECT().UpdateRideStatus(gomock.Any(), "42", models.StatusCompleted).Return(nil),
		f.backend.EXPECT().GetRide(gomock.Any(), "42").Return(rideSnapshot("42", "Finalizada", "1234", "5678"), nil),
	)
	f.events.EXPECT().PublishRideCompleted(gomock.Any(), gomock.Any()).Return(nil)
	f.repo.EXPECT().ReleaseActive(gomock.Any(), "req-1").Return(nil)

	// Act
	req, err := f.uc.ConfirmEnd(context.Background(), "42", "5678")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, req.Status)
}

func TestConfirmEnd_SkippingTransitRefused(t *testing.T) {
	// Arrange: Aceite cannot jump straight to Finalizada.
	f, ctrl := newDispatchFixture(t)
	defer ctrl.Finish()

	f.backend.EXPECT().GetRide(gomock.Any(), "42").Return(rideSnapshot("42", "Aceite", "1234", "5678"), nil)

	// Act
	_, err := f.uc.ConfirmEnd(context.Background(), "42", "5678")

	// Assert
	assert.ErrorIs(t, err, dispatch.ErrInvalidTransition)
}

func TestPendingForProvider_FiltersNonPending(t *testing.T) {
	// Arrange
	f, ctrl := newDispatchFixture(t)
	defer ctrl.Finish()

	f.backend.EXPECT().PendingForProvider(gomock.Any(), "prov-1").Return([]models.RequestSnapshot{
		*pendingSnapshot("1"),
		*snapshotWithStatus("2", "Aceite"),
		*snapshotWithStatus("3", "Cancelada"),
	}, nil)

	// Act
	reqs, err := f.uc.PendingForProvider(context.Background(), "prov-1")

	// Assert
	require.NoError(t, err)
	require.Len(t, reqs, 1)
	assert.Equal(t, "1", reqs[0].ID)
}

func TestGetRequest_NotFound(t *testing.T) {
	// Arrange
	f, ctrl := newDispatchFixture(t)
	defer ctrl.Finish()

	f.backend.EXPECT().GetRequest(gomock.Any(), "nope").
		Return(nil, &httppkg.HTTPError{StatusCode: 404, Message: "not found"})

	// Act
	_, err := f.uc.GetRequest(context.Background(), "nope")

	// Assert
	assert.ErrorIs(t, err, dispatch.ErrNotFound)
}

func TestGetRide_ConflictMapsToTaken(t *testing.T) {
	// Arrange
	f, ctrl := newDispatchFixture(t)
	defer ctrl.Finish()

	f.backend.EXPECT().GetRide(gomock.Any(), "42").
		Return(nil, &httppkg.HTTPError{StatusCode: 409, Message: "conflict"})

	// Act
	_, err := f.uc.GetRide(context.Background(), "42")

	// Assert
	assert.ErrorIs(t, err, dispatch.ErrRequestTaken)
}
