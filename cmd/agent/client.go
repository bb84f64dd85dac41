package main

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	httppkg "github.com/guinchoja/backend/internal/pkg/http"
	"github.com/guinchoja/backend/internal/pkg/logger"
	"github.com/guinchoja/backend/internal/pkg/models"
	"github.com/guinchoja/backend/internal/pkg/session"
	"github.com/guinchoja/backend/internal/utils"
)

// relayClient is the typed surface the agent commands use. It reuses the
// relay's own resilient transport so the CLI survives the same flaky
// conditions the services do.
type relayClient struct {
	http  *httppkg.ResilientClient
	store session.Store
}

func newRelayClient(baseURL string, store session.Store, log *logger.ZapLogger) *relayClient {
	cfg := models.BackendConfig{BaseURL: baseURL, TimeoutSeconds: 15}
	return &relayClient{
		http:  httppkg.NewResilientClient(cfg, log),
		store: store,
	}
}

// mustSession loads the saved session or fails with a login hint.
func (c *relayClient) mustSession() (*session.Session, error) {
	s, err := c.store.Load()
	if err != nil {
		return nil, fmt.Errorf("no saved session, run `agent login` first: %w", err)
	}
	return s, nil
}

func (c *relayClient) headers() map[string]string {
	s, err := c.store.Load()
	if err != nil || s.Token == "" {
		return nil
	}
	return map[string]string{"Authorization": "Bearer " + s.Token}
}

func (c *relayClient) do(ctx context.Context, method, path string, body, out interface{}) error {
	data, err := c.http.Do(ctx, method, c.http.BaseURL()+path, body, c.headers())
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return utils.ParseJSONResponse(data, out)
}

func (c *relayClient) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	var resp models.LoginResponse
	err := c.do(ctx, http.MethodPost, "/login", &models.LoginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *relayClient) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodPost, "/register", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *relayClient) Profile(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/userinfo/"+url.PathEscape(userID), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ActiveProviders lists providers, ranked when both coordinates are given.
func (c *relayClient) ActiveProviders(ctx context.Context, origin, destination string) ([]models.RankedProvider, error) {
	path := "/guinchosativos"
	if origin != "" {
		query := url.Values{}
		query.Set("lat_long", origin)
		if destination != "" {
			query.Set("destino", destination)
		}
		path += "?" + query.Encode()
	}
	var providers []models.RankedProvider
	if err := c.do(ctx, http.MethodGet, path, nil, &providers); err != nil {
		return nil, err
	}
	return providers, nil
}

func (c *relayClient) CreateRequest(ctx context.Context, payload *models.RequestPayload) (*models.ServiceRequest, error) {
	var req models.ServiceRequest
	if err := c.do(ctx, http.MethodPost, "/preSolicitacao", payload, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

func (c *relayClient) GetRide(ctx context.Context, requestID string) (*models.ServiceRequest, error) {
	var req models.ServiceRequest
	path := "/corrida?idSolicitacao=" + url.QueryEscape(requestID)
	if err := c.do(ctx, http.MethodGet, path, nil, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

func (c *relayClient) PendingForProvider(ctx context.Context, providerID string) ([]models.ServiceRequest, error) {
	var reqs []models.ServiceRequest
	path := "/popupsolicitacao?id_guincho=" + url.QueryEscape(providerID)
	if err := c.do(ctx, http.MethodGet, path, nil, &reqs); err != nil {
		return nil, err
	}
	return reqs, nil
}

func (c *relayClient) UpdateRequest(ctx context.Context, requestID string, status models.RequestStatus) (*models.ServiceRequest, error) {
	var req models.ServiceRequest
	body := models.StatusUpdatePayload{RequestID: requestID, Status: string(status)}
	if err := c.do(ctx, http.MethodPut, "/updatePreSolicitacao", &body, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

func (c *relayClient) UpdateRide(ctx context.Context, requestID string, status models.RequestStatus, code string) (*models.ServiceRequest, error) {
	var req models.ServiceRequest
	body := struct {
		RequestID string `json:"id_Solicitacao"`
		Status    string `json:"status"`
		Code      string `json:"codigo"`
	}{requestID, string(status), code}
	if err := c.do(ctx, http.MethodPut, "/AtualizaCorrida", &body, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

func (c *relayClient) PushLocation(ctx context.Context, payload *models.LocationUpdatePayload) error {
	return c.do(ctx, http.MethodPut, "/updatelocal", payload, nil)
}

func (c *relayClient) SetAvailability(ctx context.Context, providerID string, online bool) error {
	body := models.ProviderStatusPayload{ProviderID: providerID, Online: online}
	return c.do(ctx, http.MethodPut, "/updatestatus", &body, nil)
}

func (c *relayClient) History(ctx context.Context, query *models.HistoryQuery) ([]models.CompletedRide, error) {
	var rides []models.CompletedRide
	if err := c.do(ctx, http.MethodPost, "/corridasfinalizadas", query, &rides); err != nil {
		return nil, err
	}
	return rides, nil
}
