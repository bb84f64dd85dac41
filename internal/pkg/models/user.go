package models

// User represents an account at the backend of record (either a requester or
// a provider; the backend calls the discriminator "tipo").
type User struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Type      string `json:"tipo"`
	AddressID string `json:"id_Endereco,omitempty"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the backend identity plus the relay-minted token.
type LoginResponse struct {
	ID        string `json:"id"`
	Type      string `json:"tipo"`
	AddressID string `json:"id_Endereco"`
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}

// RegisterRequest is the body of POST /register. CNH (the driving licence
// category) is only meaningful for providers; the backend expects it blank
// for requesters.
type RegisterRequest struct {
	Username     string `json:"username"`
	Password     string `json:"password"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Document     string `json:"CPF_CNPJ"`
	LicensePlate string `json:"licensePlate"`
	Model        string `json:"modelo"`
	BirthDate    string `json:"birthDate"`
	CNH          string `json:"cnh"`
	Type         string `json:"tipo"`
}

// PasswordUpdateRequest is the body of PUT /updatepassword.
type PasswordUpdateRequest struct {
	Username    string `json:"username"`
	NewPassword string `json:"newPassword"`
}
