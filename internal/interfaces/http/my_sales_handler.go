package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chrisx123456/WarehouseAppFrontend/internal/application/dto"
	"github.com/chrisx123456/WarehouseAppFrontend/internal/application/usecase"
)

// MySalesHandler ventas propias y flujo de venta en dos pasos. La página
// muestra el historial del usuario y, según la fase, el borrador o el
// resumen pendiente de confirmar.
type MySalesHandler struct {
	history  *usecase.SaleHistoryUseCase
	workflow *usecase.SaleWorkflow
}

// NewMySalesHandler construye el handler.
func NewMySalesHandler(history *usecase.SaleHistoryUseCase, workflow *usecase.SaleWorkflow) *MySalesHandler {
	return &MySalesHandler{history: history, workflow: workflow}
}

func (h *MySalesHandler) page(c *fiber.Ctx, status int, errMsg string) error {
	sess := SessionFrom(c)
	searchTerm := c.Query("searchTerm")

	// El historial propio no bloquea la página: si falla, el flujo de
	// venta sigue disponible y el banner muestra el motivo.
	sales, err := h.history.OwnSales(c.UserContext(), sess, searchTerm)
	if err != nil {
		if authRedirect(err) {
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
		if errMsg == "" {
			status, errMsg = errorStatus(err)
		}
	}

	vd := newViewData("Mis ventas", sess)
	vd.Error = errMsg
	vd.Data["Sales"] = sales
	vd.Data["SearchTerm"] = searchTerm
	vd.Data["State"] = string(h.workflow.State(sess.ID))
	vd.Data["Draft"] = h.workflow.Items(sess.ID)
	if pending := h.workflow.Pending(sess.ID); pending != nil {
		vd.Data["Pending"] = pending
		vd.Data["PendingTotal"] = pending.Total()
	}
	return c.Status(status).Render("my_sales", vd, "layouts/main")
}

// Page GET /my-sales
func (h *MySalesHandler) Page(c *fiber.Ctx) error {
	return h.page(c, fiber.StatusOK, "")
}

func (h *MySalesHandler) workflowStep(c *fiber.Ctx, err error) error {
	if err != nil {
		return renderFailure(c, err, func(s int, msg string) error {
			return h.page(c, s, msg)
		})
	}
	return c.Redirect("/my-sales", fiber.StatusSeeOther)
}

// Begin POST /my-sales/draft
func (h *MySalesHandler) Begin(c *fiber.Ctx) error {
	return h.workflowStep(c, h.workflow.Begin(SessionFrom(c).ID))
}

// AddItem POST /my-sales/draft/items
func (h *MySalesHandler) AddItem(c *fiber.Ctx) error {
	return h.workflowStep(c, h.workflow.AddItem(SessionFrom(c).ID))
}

// UpdateItem POST /my-sales/draft/items/:id
func (h *MySalesHandler) UpdateItem(c *fiber.Ctx) error {
	var in dto.SaleItemForm
	if err := c.BodyParser(&in); err != nil {
		return h.page(c, fiber.StatusBadRequest, "Formulario inválido.")
	}
	in.ID = c.Params("id")
	return h.workflowStep(c, h.workflow.UpdateItem(SessionFrom(c).ID, in))
}

// RemoveItem POST /my-sales/draft/items/:id/delete
func (h *MySalesHandler) RemoveItem(c *fiber.Ctx) error {
	return h.workflowStep(c, h.workflow.RemoveItem(SessionFrom(c).ID, c.Params("id")))
}

// Submit POST /my-sales/draft/submit — envía el borrador; en éxito la
// página pasa a mostrar el resumen retenido por el servidor.
func (h *MySalesHandler) Submit(c *fiber.Ctx) error {
	_, err := h.workflow.Submit(c.UserContext(), SessionFrom(c))
	return h.workflowStep(c, err)
}

// Confirm POST /my-sales/pending/confirm
func (h *MySalesHandler) Confirm(c *fiber.Ctx) error {
	return h.workflowStep(c, h.workflow.Confirm(c.UserContext(), SessionFrom(c)))
}

// Reject POST /my-sales/pending/reject — también es la ruta del botón de
// descartar: el backend debe liberar la retención en ambos casos.
func (h *MySalesHandler) Reject(c *fiber.Ctx) error {
	return h.workflowStep(c, h.workflow.Reject(c.UserContext(), SessionFrom(c)))
}
