package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/chrisx123456/WarehouseAppFrontend/internal/application/dto"
	"github.com/chrisx123456/WarehouseAppFrontend/internal/domain"
	"github.com/chrisx123456/WarehouseAppFrontend/internal/domain/entity"
	"github.com/chrisx123456/WarehouseAppFrontend/internal/infrastructure/warehouse"
)

// WorkflowState fase del flujo de venta en dos pasos.
type WorkflowState string

const (
	StateIdle                WorkflowState = "idle"
	StateDrafting            WorkflowState = "drafting"
	StatePendingConfirmation WorkflowState = "pending_confirmation"
)

// PendingSaleAPI operaciones del backend para el flujo de venta.
type PendingSaleAPI interface {
	GeneratePendingSale(ctx context.Context, token string, items []entity.SaleItem) (*entity.PendingSale, error)
	ConfirmPendingSale(ctx context.Context, token, pendingSaleID string) error
	RejectPendingSale(ctx context.Context, token, pendingSaleID string) error
}

// saleDraft estado del flujo de una sesión. Mientras está en
// PendingConfirmation el backend retiene stock a nombre de esta venta,
// así que la salida de ese estado pasa siempre por confirm o reject.
type saleDraft struct {
	state   WorkflowState
	items   []entity.SaleItem
	pending *entity.PendingSale
}

// SaleWorkflow flujo de venta en dos pasos: borrador local → resumen
// retenido en el servidor → confirmación o rechazo explícitos.
type SaleWorkflow struct {
	api         PendingSaleAPI
	onConfirmed func(sessionID string)

	mu     sync.Mutex
	drafts map[string]*saleDraft
}

// NewSaleWorkflow construye el flujo. onConfirmed se dispara tras cada
// confirmación para que el historial de ventas recargue.
func NewSaleWorkflow(api PendingSaleAPI, onConfirmed func(sessionID string)) *SaleWorkflow {
	if onConfirmed == nil {
		onConfirmed = func(string) {}
	}
	return &SaleWorkflow{
		api:         api,
		onConfirmed: onConfirmed,
		drafts:      make(map[string]*saleDraft),
	}
}

func (w *SaleWorkflow) draft(sessionID string) *saleDraft {
	d, ok := w.drafts[sessionID]
	if !ok {
		d = &saleDraft{state: StateIdle}
		w.drafts[sessionID] = d
	}
	return d
}

// DropSession descarta el flujo de la sesión destruida.
func (w *SaleWorkflow) DropSession(sessionID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.drafts, sessionID)
}

// State fase actual del flujo de la sesión.
func (w *SaleWorkflow) State(sessionID string) WorkflowState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.draft(sessionID).state
}

// Items copia de las líneas del borrador actual.
func (w *SaleWorkflow) Items(sessionID string) []entity.SaleItem {
	w.mu.Lock()
	defer w.mu.Unlock()
	d := w.draft(sessionID)
	out := make([]entity.SaleItem, len(d.items))
	copy(out, d.items)
	return out
}

// Pending resumen retenido por el servidor, o nil fuera de
// PendingConfirmation.
func (w *SaleWorkflow) Pending(sessionID string) *entity.PendingSale {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.draft(sessionID).pending
}

// Begin abre un borrador con una línea vacía. Solo procede desde Idle.
func (w *SaleWorkflow) Begin(sessionID string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	d := w.draft(sessionID)
	if d.state != StateIdle {
		return fmt.Errorf("%w: ya hay una venta en curso", domain.ErrWorkflowState)
	}
	d.state = StateDrafting
	d.items = []entity.SaleItem{{ID: uuid.NewString()}}
	return nil
}

// AddItem añade una línea vacía al borrador.
func (w *SaleWorkflow) AddItem(sessionID string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	d := w.draft(sessionID)
	if d.state != StateDrafting {
		return fmt.Errorf("%w: no hay borrador abierto", domain.ErrWorkflowState)
	}
	d.items = append(d.items, entity.SaleItem{ID: uuid.NewString()})
	return nil
}

// UpdateItem sobrescribe una línea del borrador con lo tecleado en el
// formulario. Valida EAN y cantidad antes de aceptar.
func (w *SaleWorkflow) UpdateItem(sessionID string, in dto.SaleItemForm) error {
	if err := domain.ValidateEAN(in.EAN); err != nil {
		return err
	}
	quantity, err := domain.ValidateAmount("quantity", in.Quantity)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	d := w.draft(sessionID)
	if d.state != StateDrafting {
		return fmt.Errorf("%w: no hay borrador abierto", domain.ErrWorkflowState)
	}
	for i := range d.items {
		if d.items[i].ID == in.ID {
			d.items[i].EAN = in.EAN
			d.items[i].Quantity = quantity
			return nil
		}
	}
	return fmt.Errorf("%w: línea %s no existe", domain.ErrNotFound, in.ID)
}

// RemoveItem elimina una línea. El borrador conserva siempre al menos una.
func (w *SaleWorkflow) RemoveItem(sessionID, itemID string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	d := w.draft(sessionID)
	if d.state != StateDrafting {
		return fmt.Errorf("%w: no hay borrador abierto", domain.ErrWorkflowState)
	}
	if len(d.items) <= 1 {
		return fmt.Errorf("%w: el borrador necesita al menos una línea", domain.ErrValidation)
	}
	for i := range d.items {
		if d.items[i].ID == itemID {
			d.items = append(d.items[:i], d.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: línea %s no existe", domain.ErrNotFound, itemID)
}

// Submit envía el borrador. Si el backend lo acepta pasa a
// PendingConfirmation con el resumen calculado; si lo rechaza
// (validación o negocio) el borrador sigue abierto para corregir; si la
// red falla el borrador se descarta y el flujo vuelve a Idle, porque no
// se sabe si el servidor llegó a retener stock.
func (w *SaleWorkflow) Submit(ctx context.Context, sess *entity.Session) (*entity.PendingSale, error) {
	w.mu.Lock()
	d := w.draft(sess.ID)
	if d.state != StateDrafting {
		w.mu.Unlock()
		return nil, fmt.Errorf("%w: no hay borrador que enviar", domain.ErrWorkflowState)
	}
	items := make([]entity.SaleItem, len(d.items))
	copy(items, d.items)
	w.mu.Unlock()

	for _, it := range items {
		if err := domain.ValidateEAN(it.EAN); err != nil {
			return nil, err
		}
		if !it.Quantity.IsPositive() {
			return nil, fmt.Errorf("%w: cantidad inválida para %s", domain.ErrValidation, it.EAN)
		}
	}

	pending, err := w.api.GeneratePendingSale(ctx, sess.Token, items)

	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		var apiErr *warehouse.APIError
		if errors.As(err, &apiErr) {
			// Rechazo del servidor: el borrador sobrevive para corregirlo.
			return nil, err
		}
		d.state = StateIdle
		d.items = nil
		return nil, err
	}
	d.state = StatePendingConfirmation
	d.pending = pending
	return pending, nil
}

// Confirm cierra la venta pendiente. El stock y el historial los
// recalcula el backend, así que tras confirmar se dispara onConfirmed
// para que las vistas dependientes recarguen.
func (w *SaleWorkflow) Confirm(ctx context.Context, sess *entity.Session) error {
	w.mu.Lock()
	d := w.draft(sess.ID)
	if d.state != StatePendingConfirmation || d.pending == nil {
		w.mu.Unlock()
		return fmt.Errorf("%w: no hay venta pendiente de confirmar", domain.ErrWorkflowState)
	}
	id := d.pending.PendingSaleID
	w.mu.Unlock()

	if err := w.api.ConfirmPendingSale(ctx, sess.Token, id); err != nil {
		return err
	}

	w.mu.Lock()
	d.state = StateIdle
	d.items = nil
	d.pending = nil
	w.mu.Unlock()

	w.onConfirmed(sess.ID)
	return nil
}

// Reject libera la venta pendiente. Descartar el resumen sin elegir pasa
// por aquí también: nunca se abandona una retención sin avisar al backend.
func (w *SaleWorkflow) Reject(ctx context.Context, sess *entity.Session) error {
	w.mu.Lock()
	d := w.draft(sess.ID)
	if d.state != StatePendingConfirmation || d.pending == nil {
		w.mu.Unlock()
		return fmt.Errorf("%w: no hay venta pendiente que rechazar", domain.ErrWorkflowState)
	}
	id := d.pending.PendingSaleID
	w.mu.Unlock()

	if err := w.api.RejectPendingSale(ctx, sess.Token, id); err != nil {
		return err
	}

	w.mu.Lock()
	d.state = StateIdle
	d.items = nil
	d.pending = nil
	w.mu.Unlock()
	return nil
}
