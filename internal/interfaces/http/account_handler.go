package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chrisx123456/WarehouseAppFrontend/internal/application/dto"
	"github.com/chrisx123456/WarehouseAppFrontend/internal/application/usecase"
)

// AccountHandler perfil propio y panel de administración de cuentas.
type AccountHandler struct {
	uc *usecase.AccountUseCase
}

// NewAccountHandler construye el handler.
func NewAccountHandler(uc *usecase.AccountUseCase) *AccountHandler {
	return &AccountHandler{uc: uc}
}

// Profile GET /user
func (h *AccountHandler) Profile(c *fiber.Ctx) error {
	sess := SessionFrom(c)
	user, err := h.uc.Profile(c.UserContext(), sess)
	if err != nil {
		return renderFailure(c, err, func(s int, msg string) error {
			vd := newViewData("Perfil", sess)
			vd.Error = msg
			return c.Status(s).Render("profile", vd, "layouts/main")
		})
	}
	vd := newViewData("Perfil", sess)
	vd.Data["User"] = user
	return c.Render("profile", vd, "layouts/main")
}

func (h *AccountHandler) adminPage(c *fiber.Ctx, status int, errMsg string) error {
	sess := SessionFrom(c)
	users, err := h.uc.Users(c.UserContext(), sess)
	if err != nil {
		return renderFailure(c, err, func(s int, msg string) error {
			vd := newViewData("Administración", sess)
			vd.Error = msg
			return c.Status(s).Render("admin", vd, "layouts/main")
		})
	}
	vd := newViewData("Administración", sess)
	vd.Error = errMsg
	vd.Data["Users"] = users
	return c.Status(status).Render("admin", vd, "layouts/main")
}

// Admin GET /admin
func (h *AccountHandler) Admin(c *fiber.Ctx) error {
	return h.adminPage(c, fiber.StatusOK, "")
}

// Register POST /admin/users
func (h *AccountHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterUserRequest
	if err := c.BodyParser(&in); err != nil {
		return h.adminPage(c, fiber.StatusBadRequest, "Formulario inválido.")
	}
	if err := h.uc.Register(c.UserContext(), SessionFrom(c), in); err != nil {
		return renderFailure(c, err, func(s int, msg string) error {
			return h.adminPage(c, s, msg)
		})
	}
	return c.Redirect("/admin", fiber.StatusSeeOther)
}
