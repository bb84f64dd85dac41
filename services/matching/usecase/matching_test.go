package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guinchoja/backend/internal/pkg/logger"
	"github.com/guinchoja/backend/internal/pkg/models"
	"github.com/guinchoja/backend/services/matching/mocks"
)

func matchingConfig() *models.Config {
	return &models.Config{
		Pricing: models.PricingConfig{
			BaseFare:        150,
			PerKmRate:       10,
			AverageSpeedKmH: 40,
			BillingMode:     models.BillTotal,
		},
		Matching: models.MatchingConfig{
			SearchRadiusKm:     50,
			PresenceTTLMinutes: 10,
		},
	}
}

func TestActiveProviders_PrefersRegistry(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMatchRepo(ctrl)
	mockBackend := mocks.NewMockProviderGW(ctrl)
	mockEvents := mocks.NewMockMatchGW(ctrl)
	uc := NewMatchingUC(matchingConfig(), mockRepo, mockBackend, mockEvents, logger.NewNopLogger())

	registered := []*models.Provider{{ID: "p1", Online: true}}
	mockRepo.EXPECT().OnlineProviders(gomock.Any()).Return(registered, nil)

	// Act
	providers, err := uc.ActiveProviders(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, registered, providers)
}

func TestActiveProviders_FallsBackToBackend(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMatchRepo(ctrl)
	mockBackend := mocks.NewMockProviderGW(ctrl)
	mockEvents := mocks.NewMockMatchGW(ctrl)
	uc := NewMatchingUC(matchingConfig(), mockRepo, mockBackend, mockEvents, logger.NewNopLogger())

	mockRepo.EXPECT().OnlineProviders(gomock.Any()).Return(nil, nil)
	mockBackend.EXPECT().ActiveProviders(gomock.Any()).Return([]models.ProviderWire{
		{ID: "p9", Name: "Guincho Zona Sul", LatLong: "-23.60,-46.70"},
		{ID: "p10", Name: "Sem GPS", LatLong: "not-a-coordinate"},
	}, nil)

	// Act
	providers, err := uc.ActiveProviders(context.Background())

	// Assert
	require.NoError(t, err)
	require.Len(t, providers, 2)
	assert.Equal(t, "p9", providers[0].ID)
	assert.NotNil(t, providers[0].Location)
	// Malformed coordinates leave the location nil, they do not error.
	assert.Nil(t, providers[1].Location)
}

func TestActiveProviders_BackendFailure(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMatchRepo(ctrl)
	mockBackend := mocks.NewMockProviderGW(ctrl)
	mockEvents := mocks.NewMockMatchGW(ctrl)
	uc := NewMatchingUC(matchingConfig(), mockRepo, mockBackend, mockEvents, logger.NewNopLogger())

	mockRepo.EXPECT().OnlineProviders(gomock.Any()).Return(nil, errors.New("redis down"))
	mockBackend.EXPECT().ActiveProviders(gomock.Any()).Return(nil, errors.New("backend down"))

	// Act
	_, err := uc.ActiveProviders(context.Background())

	// Assert
	assert.Error(t, err)
}

func TestRankProviders_PrefersGeoIndex(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := matchingConfig()
	cfg.Matching.SearchRadiusKm = 5

	mockRepo := mocks.NewMockMatchRepo(ctrl)
	mockBackend := mocks.NewMockProviderGW(ctrl)
	mockEvents := mocks.NewMockMatchGW(ctrl)
	uc := NewMatchingUC(cfg, mockRepo, mockBackend, mockEvents, logger.NewNopLogger())

	requester := models.Location{Latitude: -23.5505, Longitude: -46.6333}
	destination := models.Location{Latitude: -23.5605, Longitude: -46.6200}

	mockRepo.EXPECT().
		NearbyProviders(gomock.Any(), requester, 5.0).
		Return([]*models.Provider{
			{ID: "near", Location: &models.Location{Latitude: -23.5520, Longitude: -46.6331}},
		}, nil)

	// Act
	ranked, err := uc.RankProviders(context.Background(), requester, destination)

	// Assert
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.Equal(t, "near", ranked[0].ID)
	assert.Greater(t, ranked[0].Price, 150.0)
}

func TestRankProviders_AppliesSearchRadiusOnFallback(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := matchingConfig()
	cfg.Matching.SearchRadiusKm = 5

	mockRepo := mocks.NewMockMatchRepo(ctrl)
	mockBackend := mocks.NewMockProviderGW(ctrl)
	mockEvents := mocks.NewMockMatchGW(ctrl)
	uc := NewMatchingUC(cfg, mockRepo, mockBackend, mockEvents, logger.NewNopLogger())

	// Empty geo index falls back to the full active list with the haversine
	// filter applied after ranking.
	mockRepo.EXPECT().NearbyProviders(gomock.Any(), gomock.Any(), 5.0).Return(nil, nil)
	mockRepo.EXPECT().OnlineProviders(gomock.Any()).Return([]*models.Provider{
		{ID: "near", Location: &models.Location{Latitude: -23.5520, Longitude: -46.6331}},
		{ID: "far", Location: &models.Location{Latitude: -23.6000, Longitude: -46.7000}},
	}, nil)

	requester := models.Location{Latitude: -23.5505, Longitude: -46.6333}
	destination := models.Location{Latitude: -23.5605, Longitude: -46.6200}

	// Act
	ranked, err := uc.RankProviders(context.Background(), requester, destination)

	// Assert
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.Equal(t, "near", ranked[0].ID)
}

func TestRankProviders_GeoIndexFailureFallsBack(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := matchingConfig()
	cfg.Matching.SearchRadiusKm = 5

	mockRepo := mocks.NewMockMatchRepo(ctrl)
	mockBackend := mocks.NewMockProviderGW(ctrl)
	mockEvents := mocks.NewMockMatchGW(ctrl)
	uc := NewMatchingUC(cfg, mockRepo, mockBackend, mockEvents, logger.NewNopLogger())

	mockRepo.EXPECT().
		NearbyProviders(gomock.Any(), gomock.Any(), 5.0).
		Return(nil, errors.New("redis: connection pool timeout"))
	mockRepo.EXPECT().OnlineProviders(gomock.Any()).Return([]*models.Provider{
		{ID: "near", Location: &models.Location{Latitude: -23.5520, Longitude: -46.6331}},
	}, nil)

	requester := models.Location{Latitude: -23.5505, Longitude: -46.6333}
	destination := models.Location{Latitude: -23.5605, Longitude: -46.6200}

	// Act
	ranked, err := uc.RankProviders(context.Background(), requester, destination)

	// Assert
	require.NoError(t, err)
	require.Len(t, ranked, 1)
}

func TestUpdateLocation_KeyedByProviderID(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMatchRepo(ctrl)
	mockBackend := mocks.NewMockProviderGW(ctrl)
	mockEvents := mocks.NewMockMatchGW(ctrl)
	uc := NewMatchingUC(matchingConfig(), mockRepo, mockBackend, mockEvents, logger.NewNopLogger())

	payload := &models.LocationUpdatePayload{
		ProviderID: "p1",
		AddressID:  "addr-9",
		LatLong:    "-23.5520,-46.6331",
	}

	mockRepo.EXPECT().
		UpdateLocation(gomock.Any(), "p1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, loc models.Location) error {
			assert.InDelta(t, -23.5520, loc.Latitude, 1e-9)
			assert.False(t, loc.Timestamp.IsZero())
			return nil
		})
	mockBackend.EXPECT().PushLocation(gomock.Any(), payload).Return(nil)

	// Act
	err := uc.UpdateLocation(context.Background(), payload)

	// Assert
	assert.NoError(t, err)
}

func TestUpdateLocation_LegacyAddressKey(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMatchRepo(ctrl)
	mockBackend := mocks.NewMockProviderGW(ctrl)
	mockEvents := mocks.NewMockMatchGW(ctrl)
	uc := NewMatchingUC(matchingConfig(), mockRepo, mockBackend, mockEvents, logger.NewNopLogger())

	payload := &models.LocationUpdatePayload{
		AddressID: "addr-9",
		LatLong:   "-23.5520,-46.6331",
	}

	mockRepo.EXPECT().UpdateLocation(gomock.Any(), "addr-9", gomock.Any()).Return(nil)
	mockBackend.EXPECT().PushLocation(gomock.Any(), payload).Return(nil)

	// Act
	err := uc.UpdateLocation(context.Background(), payload)

	// Assert
	assert.NoError(t, err)
}

func TestUpdateLocation_InvalidCoordinates(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMatchRepo(ctrl)
	mockBackend := mocks.NewMockProviderGW(ctrl)
	mockEvents := mocks.NewMockMatchGW(ctrl)
	uc := NewMatchingUC(matchingConfig(), mockRepo, mockBackend, mockEvents, logger.NewNopLogger())

	// Act
	err := uc.UpdateLocation(context.Background(), &models.LocationUpdatePayload{
		AddressID: "addr-9",
		LatLong:   "garbage",
	})

	// Assert
	assert.Error(t, err)
}

func TestUpdateLocation_RegistryFailureIsNotFatal(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMatchRepo(ctrl)
	mockBackend := mocks.NewMockProviderGW(ctrl)
	mockEvents := mocks.NewMockMatchGW(ctrl)
	uc := NewMatchingUC(matchingConfig(), mockRepo, mockBackend, mockEvents, logger.NewNopLogger())

	payload := &models.LocationUpdatePayload{ProviderID: "p1", LatLong: "-23.55,-46.63"}

	mockRepo.EXPECT().UpdateLocation(gomock.Any(), "p1", gomock.Any()).Return(errors.New("redis down"))
	mockBackend.EXPECT().PushLocation(gomock.Any(), payload).Return(nil)

	// Act
	err := uc.UpdateLocation(context.Background(), payload)

	// Assert: the backend forward is what matters, the registry is a cache.
	assert.NoError(t, err)
}

func TestSetAvailability_Online(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMatchRepo(ctrl)
	mockBackend := mocks.NewMockProviderGW(ctrl)
	mockEvents := mocks.NewMockMatchGW(ctrl)
	uc := NewMatchingUC(matchingConfig(), mockRepo, mockBackend, mockEvents, logger.NewNopLogger())

	payload := &models.ProviderStatusPayload{ProviderID: "p1", Online: true}

	mockRepo.EXPECT().SetOnline(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *models.Provider) error {
			assert.Equal(t, "p1", p.ID)
			assert.True(t, p.Online)
			return nil
		})
	mockBackend.EXPECT().PushStatus(gomock.Any(), payload).Return(nil)
	mockEvents.EXPECT().PublishProviderOnline(gomock.Any(), gomock.Any()).Return(nil)

	// Act
	err := uc.SetAvailability(context.Background(), payload)

	// Assert
	assert.NoError(t, err)
}

func TestSetAvailability_OfflinePublishFailureIsNotFatal(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMatchRepo(ctrl)
	mockBackend := mocks.NewMockProviderGW(ctrl)
	mockEvents := mocks.NewMockMatchGW(ctrl)
	uc := NewMatchingUC(matchingConfig(), mockRepo, mockBackend, mockEvents, logger.NewNopLogger())

	payload := &models.ProviderStatusPayload{ProviderID: "p1", Online: false}

	mockRepo.EXPECT().SetOffline(gomock.Any(), "p1").Return(nil)
	mockBackend.EXPECT().PushStatus(gomock.Any(), payload).Return(nil)
	mockEvents.EXPECT().PublishProviderOffline(gomock.Any(), gomock.Any()).Return(errors.New("nats down"))

	// Act
	err := uc.SetAvailability(context.Background(), payload)

	// Assert
	assert.NoError(t, err)
}

func TestSetAvailability_MissingProviderID(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMatchRepo(ctrl)
	mockBackend := mocks.NewMockProviderGW(ctrl)
	mockEvents := mocks.NewMockMatchGW(ctrl)
	uc := NewMatchingUC(matchingConfig(), mockRepo, mockBackend, mockEvents, logger.NewNopLogger())

	// Act
	err := uc.SetAvailability(context.Background(), &models.ProviderStatusPayload{})

	// Assert
	assert.Error(t, err)
}
