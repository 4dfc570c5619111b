package dto

// LoginRequest credenciales del login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse usuario autenticado. Token es una conveniencia para el
// cliente; ninguna ruta del servidor lo exige.
type LoginResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Token    string `json:"token,omitempty"`
}
