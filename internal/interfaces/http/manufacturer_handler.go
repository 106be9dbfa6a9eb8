package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/chrisx123456/WarehouseAppFrontend/internal/application/usecase"
	"github.com/chrisx123456/WarehouseAppFrontend/internal/domain/entity"
)

// ManufacturerHandler vista de fabricantes.
type ManufacturerHandler struct {
	uc *usecase.ManufacturerUseCase
}

// NewManufacturerHandler construye el handler.
func NewManufacturerHandler(uc *usecase.ManufacturerUseCase) *ManufacturerHandler {
	return &ManufacturerHandler{uc: uc}
}

func (h *ManufacturerHandler) page(c *fiber.Ctx, status int, errMsg string) error {
	sess := SessionFrom(c)
	manufacturers, err := h.uc.List(c.UserContext(), sess)
	if err != nil {
		return renderFailure(c, err, func(s int, msg string) error {
			vd := newViewData("Fabricantes", sess)
			vd.Error = msg
			return c.Status(s).Render("manufacturers", vd, "layouts/main")
		})
	}
	vd := newViewData("Fabricantes", sess)
	vd.Error = errMsg
	vd.Data["Manufacturers"] = manufacturers
	return c.Status(status).Render("manufacturers", vd, "layouts/main")
}

// List GET /manufacturers
func (h *ManufacturerHandler) List(c *fiber.Ctx) error {
	return h.page(c, fiber.StatusOK, "")
}

// Create POST /manufacturers
func (h *ManufacturerHandler) Create(c *fiber.Ctx) error {
	if !entity.Capability(SessionFrom(c).Role, entity.ActionAdd) {
		return h.page(c, fiber.StatusForbidden, "Tu rol no permite añadir fabricantes.")
	}
	if err := h.uc.Create(c.UserContext(), SessionFrom(c), c.FormValue("name")); err != nil {
		return renderFailure(c, err, func(s int, msg string) error {
			return h.page(c, s, msg)
		})
	}
	return c.Redirect("/manufacturers", fiber.StatusSeeOther)
}

// Rename POST /manufacturers/:name — el nombre es el único campo editable.
func (h *ManufacturerHandler) Rename(c *fiber.Ctx) error {
	if !entity.Capability(SessionFrom(c).Role, entity.ActionEdit) {
		return h.page(c, fiber.StatusForbidden, "Tu rol no permite editar fabricantes.")
	}
	oldName, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return h.page(c, fiber.StatusBadRequest, "Nombre inválido.")
	}
	if err := h.uc.Rename(c.UserContext(), SessionFrom(c), oldName, c.FormValue("newName")); err != nil {
		return renderFailure(c, err, func(s int, msg string) error {
			return h.page(c, s, msg)
		})
	}
	return c.Redirect("/manufacturers", fiber.StatusSeeOther)
}

// Delete POST /manufacturers/:name/delete
func (h *ManufacturerHandler) Delete(c *fiber.Ctx) error {
	if !entity.Capability(SessionFrom(c).Role, entity.ActionDelete) {
		return h.page(c, fiber.StatusForbidden, "Tu rol no permite eliminar fabricantes.")
	}
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return h.page(c, fiber.StatusBadRequest, "Nombre inválido.")
	}
	if err := h.uc.Delete(c.UserContext(), SessionFrom(c), name); err != nil {
		return renderFailure(c, err, func(s int, msg string) error {
			return h.page(c, s, msg)
		})
	}
	return c.Redirect("/manufacturers", fiber.StatusSeeOther)
}
