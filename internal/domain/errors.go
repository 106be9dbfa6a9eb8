package domain

import "errors"

// Errores de dominio (sin dependencias externas). Clasifican cada fallo
// según lo que debe hacer la vista: re-autenticar, corregir el formulario,
// mostrar el mensaje del backend o mostrar un error genérico de red.
var (
	// ErrAuthFailure credenciales inválidas o token caducado/revocado.
	// Siempre destruye la sesión y fuerza volver al login.
	ErrAuthFailure = errors.New("autenticación fallida")

	// ErrValidation la entrada no pasó la validación local; no se hizo
	// ninguna llamada de red.
	ErrValidation = errors.New("entrada inválida")

	// ErrNetwork el backend no respondió (timeout, DNS, conexión).
	ErrNetwork = errors.New("error de red")

	// ErrNotFound el recurso no existe en el backend.
	ErrNotFound = errors.New("recurso no encontrado")

	// ErrSessionExpired la sesión local caducó (TTL propio o exp del token).
	ErrSessionExpired = errors.New("sesión caducada")

	// ErrWorkflowState la operación no es válida en el estado actual del
	// flujo de venta pendiente.
	ErrWorkflowState = errors.New("estado de flujo inválido")
)
