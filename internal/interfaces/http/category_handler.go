package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chrisx123456/WarehouseAppFrontend/internal/application/dto"
	"github.com/chrisx123456/WarehouseAppFrontend/internal/application/usecase"
	"github.com/chrisx123456/WarehouseAppFrontend/internal/domain/entity"
)

// CategoryHandler vista de categorías.
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

func (h *CategoryHandler) page(c *fiber.Ctx, status int, errMsg string) error {
	sess := SessionFrom(c)
	categories, err := h.uc.List(c.UserContext(), sess)
	if err != nil {
		return renderFailure(c, err, func(s int, msg string) error {
			vd := newViewData("Categorías", sess)
			vd.Error = msg
			return c.Status(s).Render("categories", vd, "layouts/main")
		})
	}
	vd := newViewData("Categorías", sess)
	vd.Error = errMsg
	vd.Data["Categories"] = categories
	return c.Status(status).Render("categories", vd, "layouts/main")
}

// List GET /categories
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	return h.page(c, fiber.StatusOK, "")
}

// Create POST /categories
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	if !entity.Capability(SessionFrom(c).Role, entity.ActionAdd) {
		return h.page(c, fiber.StatusForbidden, "Tu rol no permite añadir categorías.")
	}
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return h.page(c, fiber.StatusBadRequest, "Formulario inválido.")
	}
	if err := h.uc.Create(c.UserContext(), SessionFrom(c), in); err != nil {
		return renderFailure(c, err, func(s int, msg string) error {
			return h.page(c, s, msg)
		})
	}
	return c.Redirect("/categories", fiber.StatusSeeOther)
}

// Update POST /categories/:name — edición en línea del VAT.
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	if !entity.Capability(SessionFrom(c).Role, entity.ActionEdit) {
		return h.page(c, fiber.StatusForbidden, "Tu rol no permite editar categorías.")
	}
	var in dto.UpdateCategoryVATRequest
	if err := c.BodyParser(&in); err != nil {
		return h.page(c, fiber.StatusBadRequest, "Formulario inválido.")
	}
	if err := h.uc.UpdateVAT(c.UserContext(), SessionFrom(c), c.Params("name"), in.NewVAT); err != nil {
		return renderFailure(c, err, func(s int, msg string) error {
			return h.page(c, s, msg)
		})
	}
	return c.Redirect("/categories", fiber.StatusSeeOther)
}

// Delete POST /categories/:name/delete
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	if !entity.Capability(SessionFrom(c).Role, entity.ActionDelete) {
		return h.page(c, fiber.StatusForbidden, "Tu rol no permite eliminar categorías.")
	}
	if err := h.uc.Delete(c.UserContext(), SessionFrom(c), c.Params("name")); err != nil {
		return renderFailure(c, err, func(s int, msg string) error {
			return h.page(c, s, msg)
		})
	}
	return c.Redirect("/categories", fiber.StatusSeeOther)
}
