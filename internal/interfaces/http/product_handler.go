package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chrisx123456/WarehouseAppFrontend/internal/application/dto"
	"github.com/chrisx123456/WarehouseAppFrontend/internal/application/usecase"
	"github.com/chrisx123456/WarehouseAppFrontend/internal/domain/entity"
)

// ProductHandler vista del catálogo de productos.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

func (h *ProductHandler) page(c *fiber.Ctx, status int, errMsg string) error {
	sess := SessionFrom(c)
	products, err := h.uc.List(c.UserContext(), sess)
	if err != nil {
		return renderFailure(c, err, func(s int, msg string) error {
			vd := newViewData("Productos", sess)
			vd.Error = msg
			return c.Status(s).Render("products", vd, "layouts/main")
		})
	}
	vd := newViewData("Productos", sess)
	vd.Error = errMsg
	vd.Data["Products"] = products
	return c.Status(status).Render("products", vd, "layouts/main")
}

// List GET /products
func (h *ProductHandler) List(c *fiber.Ctx) error {
	return h.page(c, fiber.StatusOK, "")
}

// Create POST /products
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	if !entity.Capability(SessionFrom(c).Role, entity.ActionAdd) {
		return h.page(c, fiber.StatusForbidden, "Tu rol no permite añadir productos.")
	}
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return h.page(c, fiber.StatusBadRequest, "Formulario inválido.")
	}
	if err := h.uc.Create(c.UserContext(), SessionFrom(c), in); err != nil {
		return renderFailure(c, err, func(s int, msg string) error {
			return h.page(c, s, msg)
		})
	}
	return c.Redirect("/products", fiber.StatusSeeOther)
}

// Update POST /products/:ean — el caso de uso calcula el diff contra la
// copia del servidor y envía solo lo que cambió.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	if !entity.Capability(SessionFrom(c).Role, entity.ActionEdit) {
		return h.page(c, fiber.StatusForbidden, "Tu rol no permite editar productos.")
	}
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return h.page(c, fiber.StatusBadRequest, "Formulario inválido.")
	}
	if err := h.uc.Update(c.UserContext(), SessionFrom(c), c.Params("ean"), in); err != nil {
		return renderFailure(c, err, func(s int, msg string) error {
			return h.page(c, s, msg)
		})
	}
	return c.Redirect("/products", fiber.StatusSeeOther)
}

// Delete POST /products/:ean/delete
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if !entity.Capability(SessionFrom(c).Role, entity.ActionDelete) {
		return h.page(c, fiber.StatusForbidden, "Tu rol no permite eliminar productos.")
	}
	if err := h.uc.Delete(c.UserContext(), SessionFrom(c), c.Params("ean")); err != nil {
		return renderFailure(c, err, func(s int, msg string) error {
			return h.page(c, s, msg)
		})
	}
	return c.Redirect("/products", fiber.StatusSeeOther)
}
