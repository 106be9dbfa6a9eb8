package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Expiry extrae el claim exp de un token emitido por el backend SIN validar
// la firma. La firma pertenece al backend (este cliente no conoce el secret);
// aquí solo se usa el exp para caducar la sesión local de forma proactiva.
// Devuelve ok=false si el token no se puede parsear o no trae exp.
func Expiry(tokenString string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// Expired indica si el token ya caducó según su claim exp.
// Un token sin exp legible se considera no caducado: la validación real
// la hace el backend en cada petición.
func Expired(tokenString string, now time.Time) bool {
	exp, ok := Expiry(tokenString)
	if !ok {
		return false
	}
	return now.After(exp)
}
