package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chrisx123456/WarehouseAppFrontend/internal/application/dto"
	"github.com/chrisx123456/WarehouseAppFrontend/internal/application/usecase"
	"github.com/chrisx123456/WarehouseAppFrontend/internal/domain/entity"
)

// StockHandler vista de stock agrupado y alta de entregas.
type StockHandler struct {
	uc *usecase.StockUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *usecase.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

func (h *StockHandler) render(c *fiber.Ctx, status int, groups []entity.GroupedStock, search dto.StockSearchRequest, errMsg string) error {
	vd := newViewData("Stock", SessionFrom(c))
	vd.Error = errMsg
	vd.Data["Groups"] = groups
	vd.Data["SearchBy"] = search.By
	vd.Data["SearchTerm"] = search.Term
	return c.Status(status).Render("stock", vd, "layouts/main")
}

func (h *StockHandler) page(c *fiber.Ctx, status int, errMsg string) error {
	groups, err := h.uc.List(c.UserContext(), SessionFrom(c))
	if err != nil {
		return renderFailure(c, err, func(s int, msg string) error {
			return h.render(c, s, nil, dto.StockSearchRequest{}, msg)
		})
	}
	return h.render(c, status, groups, dto.StockSearchRequest{}, errMsg)
}

// List GET /stock — con ?by=&term= ejecuta la búsqueda; sin ellos sirve
// la lista (cacheada) completa.
func (h *StockHandler) List(c *fiber.Ctx) error {
	var in dto.StockSearchRequest
	if err := c.QueryParser(&in); err != nil || in.Term == "" {
		return h.page(c, fiber.StatusOK, "")
	}
	groups, err := h.uc.Search(c.UserContext(), SessionFrom(c), in)
	if err != nil {
		return renderFailure(c, err, func(s int, msg string) error {
			return h.render(c, s, nil, in, msg)
		})
	}
	return h.render(c, fiber.StatusOK, groups, in, "")
}

// AddDelivery POST /stock/deliveries
func (h *StockHandler) AddDelivery(c *fiber.Ctx) error {
	if !entity.Capability(SessionFrom(c).Role, entity.ActionAdd) {
		return h.page(c, fiber.StatusForbidden, "Tu rol no permite registrar entregas.")
	}
	var in dto.CreateDeliveryRequest
	if err := c.BodyParser(&in); err != nil {
		return h.page(c, fiber.StatusBadRequest, "Formulario inválido.")
	}
	if err := h.uc.AddDelivery(c.UserContext(), SessionFrom(c), in); err != nil {
		return renderFailure(c, err, func(s int, msg string) error {
			return h.page(c, s, msg)
		})
	}
	return c.Redirect("/stock", fiber.StatusSeeOther)
}
