package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chrisx123456/WarehouseAppFrontend/internal/application/dto"
	"github.com/chrisx123456/WarehouseAppFrontend/internal/application/session"
)

// AuthHandler login y logout.
type AuthHandler struct {
	manager    *session.Manager
	cookieName string
}

// NewAuthHandler construye el handler.
func NewAuthHandler(manager *session.Manager, cookieName string) *AuthHandler {
	return &AuthHandler{manager: manager, cookieName: cookieName}
}

// LoginPage formulario de inicio de sesión.
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	return c.Render("login", fiber.Map{"Title": "Iniciar sesión"})
}

// Login procesa las credenciales. El intercambio en tres pasos lo hace
// el manager; cualquier fallo devuelve al formulario sin sesión.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).Render("login", fiber.Map{
			"Title": "Iniciar sesión",
			"Error": "Formulario inválido.",
		})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).Render("login", fiber.Map{
			"Title": "Iniciar sesión",
			"Error": "Email y contraseña son requeridos.",
			"Email": in.Email,
		})
	}

	sess, err := h.manager.Login(c.UserContext(), in.Email, in.Password)
	if err != nil {
		status, msg := errorStatus(err)
		if authRedirect(err) {
			status, msg = fiber.StatusUnauthorized, "Credenciales inválidas."
		}
		return c.Status(status).Render("login", fiber.Map{
			"Title": "Iniciar sesión",
			"Error": msg,
			"Email": in.Email,
		})
	}

	setSessionCookie(c, h.cookieName, sess.ID, sess.ExpiresAt)
	return c.Redirect("/", fiber.StatusSeeOther)
}

// Logout destruye la sesión y limpia la cookie.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if id := c.Cookies(h.cookieName); id != "" {
		h.manager.Logout(id)
	}
	clearSessionCookie(c, h.cookieName)
	return c.Redirect("/login", fiber.StatusSeeOther)
}
