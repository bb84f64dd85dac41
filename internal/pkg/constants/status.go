package constants

// Wire status strings used by the backend of record. The backend predates
// this service and speaks Portuguese; these are the only values it emits.
const (
	StatusPendente    = "Pendente"
	StatusAceite      = "Aceite"
	StatusRecusado    = "Recusado"
	StatusCancelada   = "Cancelada"
	StatusEmAndamento = "Em Andamento"
	StatusFinalizada  = "Finalizada"

	// The corrida endpoint occasionally reports the masculine form once a
	// ride is closed out. Treated as an alias of Finalizada when parsing.
	StatusFinalizado = "Finalizado"
)

// Account types accepted by the registration endpoint.
const (
	AccountTypeRequester = "Motorista"
	AccountTypeProvider  = "Guincho"
)
