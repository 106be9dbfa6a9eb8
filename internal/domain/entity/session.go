package entity

import "time"

// Session sesión autenticada contra el backend. Exactamente una por
// navegador (cookie); la crea el login en tres pasos y la destruye el
// logout o cualquier fallo de autenticación.
type Session struct {
	ID        string // uuid, valor de la cookie
	Token     string // bearer token emitido por el backend
	Role      Role
	Currency  string // moneda de presentación (GET /Admin/currency)
	Email     string
	CreatedAt time.Time
	ExpiresAt time.Time // TTL propio; el exp del token puede caducarla antes
}

// Expired indica si la sesión superó su TTL local.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
