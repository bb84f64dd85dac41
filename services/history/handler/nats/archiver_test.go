package nats

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guinchoja/backend/internal/pkg/logger"
	"github.com/guinchoja/backend/internal/pkg/models"
	"github.com/guinchoja/backend/services/history/mocks"
)

func TestHandleCompleted_ArchivesEvent(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockHistoryUC(ctrl)
	handler := NewArchiverHandler(mockUC, nil, logger.NewNopLogger())

	event := models.RequestEvent{
		EventID:     "evt-1",
		RequestID:   "42",
		RequesterID: "req-1",
		ProviderID:  "prov-1",
		Status:      models.StatusCompleted,
		DistanceKm:  8.15,
		Price:       231.5,
		OccurredAt:  time.Date(2026, 8, 30, 14, 0, 0, 0, time.UTC),
	}
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	mockUC.EXPECT().
		ArchiveCompleted(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, got models.RequestEvent) error {
			assert.Equal(t, "42", got.RequestID)
			assert.Equal(t, "prov-1", got.ProviderID)
			assert.InDelta(t, 231.5, got.Price, 1e-6)
			return nil
		})

	// Act
	err = handler.handleCompleted(payload)

	// Assert
	assert.NoError(t, err)
}

func TestHandleCompleted_MalformedEventDropped(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockHistoryUC(ctrl)
	handler := NewArchiverHandler(mockUC, nil, logger.NewNopLogger())

	// Act: the usecase must not be called, and the message must not be
	// retried.
	err := handler.handleCompleted([]byte("{not json"))

	// Assert
	assert.NoError(t, err)
}

func TestHandleCompleted_UsecaseErrorPropagates(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockHistoryUC(ctrl)
	handler := NewArchiverHandler(mockUC, nil, logger.NewNopLogger())

	payload, err := json.Marshal(models.RequestEvent{
		EventID:   "evt-2",
		RequestID: "43",
		Status:    models.StatusCompleted,
	})
	require.NoError(t, err)

	mockUC.EXPECT().
		ArchiveCompleted(gomock.Any(), gomock.Any()).
		Return(errors.New("pq: connection reset"))

	// Act
	err = handler.handleCompleted(payload)

	// Assert
	assert.Error(t, err)
}
