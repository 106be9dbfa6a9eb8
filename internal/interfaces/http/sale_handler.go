package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chrisx123456/WarehouseAppFrontend/internal/application/dto"
	"github.com/chrisx123456/WarehouseAppFrontend/internal/application/usecase"
)

// SaleHandler historial de ventas (solo manager/admin) e informe PDF.
type SaleHandler struct {
	uc *usecase.SaleHistoryUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *usecase.SaleHistoryUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// History GET /sales — acepta startDate, endDate, searchTerm y userId.
func (h *SaleHandler) History(c *fiber.Ctx) error {
	sess := SessionFrom(c)
	var in dto.SaleHistoryFilter
	if err := c.QueryParser(&in); err != nil {
		in = dto.SaleHistoryFilter{}
	}

	sales, err := h.uc.History(c.UserContext(), sess, in)
	if err != nil {
		return renderFailure(c, err, func(s int, msg string) error {
			vd := newViewData("Ventas", sess)
			vd.Error = msg
			vd.Data["Filter"] = in
			return c.Status(s).Render("sales", vd, "layouts/main")
		})
	}

	vd := newViewData("Ventas", sess)
	vd.Data["Sales"] = sales
	vd.Data["Stats"] = h.uc.Stats(sales)
	vd.Data["Filter"] = in
	return c.Render("sales", vd, "layouts/main")
}

// Report GET /sales/report.pdf — informe del historial que pasa el
// filtro actual, con los mismos parámetros que History.
func (h *SaleHandler) Report(c *fiber.Ctx) error {
	sess := SessionFrom(c)
	var in dto.SaleHistoryFilter
	if err := c.QueryParser(&in); err != nil {
		in = dto.SaleHistoryFilter{}
	}

	pdfBytes, err := h.uc.Report(c.UserContext(), sess, in)
	if err != nil {
		return renderFailure(c, err, func(s int, msg string) error {
			vd := newViewData("Ventas", sess)
			vd.Error = msg
			return c.Status(s).Render("sales", vd, "layouts/main")
		})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="informe-ventas.pdf"`)
	return c.Send(pdfBytes)
}
