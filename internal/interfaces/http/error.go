package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/chrisx123456/WarehouseAppFrontend/internal/domain"
	"github.com/chrisx123456/WarehouseAppFrontend/internal/infrastructure/warehouse"
)

// errorStatus clasifica el error según lo que debe hacer la página.
// El mensaje de un rechazo del backend se muestra tal cual llegó; el
// resto de categorías usan texto propio.
func errorStatus(err error) (int, string) {
	var apiErr *warehouse.APIError
	switch {
	case errors.Is(err, domain.ErrValidation):
		return fiber.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrWorkflowState):
		return fiber.StatusConflict, err.Error()
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrNetwork):
		return fiber.StatusServiceUnavailable, "No hay conexión con el servidor. Inténtalo de nuevo."
	case errors.As(err, &apiErr):
		return apiErr.Status, apiErr.Message
	default:
		return fiber.StatusInternalServerError, "Error inesperado."
	}
}

// authRedirect indica si el error obliga a volver al login.
func authRedirect(err error) bool {
	return errors.Is(err, domain.ErrAuthFailure) || errors.Is(err, domain.ErrSessionExpired)
}

// renderFailure camino común de error de los handlers: los fallos de
// autenticación marcan la sesión para destruir y vuelven al login; el
// resto re-renderiza la página con el mensaje clasificado.
func renderFailure(c *fiber.Ctx, err error, render func(status int, msg string) error) error {
	if authRedirect(err) {
		// Un 401 del backend a mitad de sesión significa token revocado
		// o caducado: RequireSession destruye la sesión al salir.
		c.Locals(localAuthFailure, true)
		return c.Redirect("/login", fiber.StatusSeeOther)
	}
	status, msg := errorStatus(err)
	return render(status, msg)
}
