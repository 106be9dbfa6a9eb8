package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/chrisx123456/WarehouseAppFrontend/internal/application/session"
	"github.com/chrisx123456/WarehouseAppFrontend/internal/domain/entity"
)

// LocalSession key del *entity.Session resuelto en c.Locals.
const LocalSession = "session"

// localAuthFailure lo marca renderFailure cuando el backend rechaza el
// token a mitad de sesión; RequireSession lo observa al desapilar.
const localAuthFailure = "auth_failure"

// RequireSession resuelve la cookie de sesión contra el manager. Sin
// sesión válida limpia la cookie y redirige al login; el middleware no
// distingue entre cookie ausente, caducada o token rechazado: todas
// terminan en la pantalla de login.
func RequireSession(manager *session.Manager, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Cookies(cookieName)
		if id == "" {
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
		sess, err := manager.Validate(c.UserContext(), id)
		if err != nil {
			clearSessionCookie(c, cookieName)
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
		c.Locals(LocalSession, sess)

		err = c.Next()

		// Si el backend rechazó el token durante el manejo de la
		// petición, el token obsoleto no debe quedarse utilizable: la
		// sesión se destruye y la cookie se limpia antes de responder.
		if failed, _ := c.Locals(localAuthFailure).(bool); failed {
			manager.Logout(sess.ID)
			clearSessionCookie(c, cookieName)
		}
		return err
	}
}

// RequireRole corta con 403 las vistas reservadas a ciertos roles.
// Protege la página; cada petición al backend sigue siendo autorizada allí.
func RequireRole(roles ...entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := SessionFrom(c)
		for _, r := range roles {
			if sess.Role == r {
				return c.Next()
			}
		}
		vd := newViewData("Acceso denegado", sess)
		vd.Data["Message"] = "Tu rol no tiene acceso a esta vista."
		return c.Status(fiber.StatusForbidden).Render("error", vd, "layouts/main")
	}
}

// SessionFrom devuelve la sesión resuelta por RequireSession.
func SessionFrom(c *fiber.Ctx) *entity.Session {
	sess, _ := c.Locals(LocalSession).(*entity.Session)
	return sess
}

func setSessionCookie(c *fiber.Ctx, name, id string, expires time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    id,
		Expires:  expires,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}

func clearSessionCookie(c *fiber.Ctx, name string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}
