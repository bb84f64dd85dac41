package models

import "time"

// Wire DTOs for the backend of record. Field names mirror the backend's JSON
// exactly; the flex types absorb its string/number inconsistencies. Strict
// models are produced at the parse boundary so nothing downstream has to
// re-coerce.

// RequestPayload is the body of POST /preSolicitacao.
type RequestPayload struct {
	RequesterID string `json:"id_Motorista"`
	ProviderID  string `json:"id_Guincho"`
	Distance    string `json:"distancia"`
	Price       string `json:"preco"`
	RequesterLL string `json:"latLongCliente"`
	ProviderLL  string `json:"latLongGuincho"`
	Status      string `json:"status"`
	Destination string `json:"destino"`
}

// RequestSnapshot is the backend's pre-request shape (POST /solicitacao).
type RequestSnapshot struct {
	ID          FlexString `json:"id_Solicitacao"`
	RequesterID FlexString `json:"id_Motorista"`
	ProviderID  FlexString `json:"id_Guincho"`
	Distance    FlexFloat  `json:"distancia"`
	Price       FlexFloat  `json:"preco"`
	RequesterLL string     `json:"latLongCliente"`
	ProviderLL  string     `json:"latLongGuincho"`
	Status      string     `json:"status"`
	Destination string     `json:"destino"`
	RequestedAt string     `json:"dta_Solicitacao"`
}

// RideSnapshot is the merged corrida shape (GET /corrida); it is the
// pre-request plus the validation codes and the ride-level status.
type RideSnapshot struct {
	RequestSnapshot
	RideStatus string     `json:"status_Corrida"`
	StartCode  FlexString `json:"codigo_Validacao_Inicio"`
	EndCode    FlexString `json:"codigo_Validacao_Fim"`
	AddressID  FlexString `json:"id_Endereco"`
}

// ToServiceRequest converts the wire snapshot to the strict model. Malformed
// coordinate pairs leave the corresponding field nil rather than failing:
// the polling loop must keep working when one field is garbage.
func (s *RequestSnapshot) ToServiceRequest() *ServiceRequest {
	req := &ServiceRequest{
		ID:          s.ID.String(),
		RequesterID: s.RequesterID.String(),
		ProviderID:  s.ProviderID.String(),
		DistanceKm:  s.Distance.Float64(),
		Price:       s.Price.Float64(),
		Status:      ParseStatus(s.Status),
	}

	if loc, err := ParseLatLong(s.RequesterLL); err == nil {
		req.RequesterLocation = loc
	}
	if loc, err := ParseLatLong(s.ProviderLL); err == nil {
		req.ProviderLocation = loc
	}
	if loc, err := ParseLatLong(s.Destination); err == nil {
		req.Destination = loc
	}
	if ts, err := time.Parse(time.RFC3339, s.RequestedAt); err == nil {
		req.CreatedAt = ts
	}

	return req
}

// ToServiceRequest converts the merged snapshot; the ride-level status wins
// over the pre-request status once the ride has one.
func (s *RideSnapshot) ToServiceRequest() *ServiceRequest {
	req := s.RequestSnapshot.ToServiceRequest()
	if st := ParseStatus(s.RideStatus); st != StatusUnknown {
		req.Status = st
	}
	req.StartCode = s.StartCode.String()
	req.EndCode = s.EndCode.String()
	return req
}

// StatusUpdatePayload is the body of PUT /updatePreSolicitacao and
// PUT /AtualizaCorrida.
type StatusUpdatePayload struct {
	RequestID string `json:"id_Solicitacao"`
	Status    string `json:"status"`
}

// ProviderWire is one element of the GET /guinchosativos response.
type ProviderWire struct {
	ID      FlexString `json:"id"`
	Name    string     `json:"nome"`
	Model   string     `json:"modelo"`
	Phone   string     `json:"telefone"`
	LatLong string     `json:"lat_long"`
}

// LocationUpdatePayload is the body of PUT /updatelocal. Legacy clients
// identify themselves only by id_Endereco; newer ones also send id_cliente,
// which lets the presence registry key by provider id directly.
type LocationUpdatePayload struct {
	ProviderID string `json:"id_cliente,omitempty"`
	AddressID  string `json:"id_Endereco"`
	Address    string `json:"local_real_time"`
	LatLong    string `json:"lat_long"`
}

// ProviderStatusPayload is the body of PUT /updatestatus.
type ProviderStatusPayload struct {
	ProviderID string `json:"id_cliente"`
	Online     bool   `json:"status"`
	LastStatus string `json:"ultimoStatus"`
}

// HistoryQuery is the body of POST /corridasfinalizadas; exactly one of the
// two identifiers is set depending on which side's history screen asks.
type HistoryQuery struct {
	ProviderID  string `json:"idGuincho,omitempty"`
	RequesterID string `json:"idMotorista,omitempty"`
}
