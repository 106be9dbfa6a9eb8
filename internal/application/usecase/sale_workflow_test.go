package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chrisx123456/WarehouseAppFrontend/internal/application/dto"
	"github.com/chrisx123456/WarehouseAppFrontend/internal/domain"
	"github.com/chrisx123456/WarehouseAppFrontend/internal/domain/entity"
	"github.com/chrisx123456/WarehouseAppFrontend/internal/infrastructure/warehouse"
)

type fakePendingSaleAPI struct {
	generateFn func(items []entity.SaleItem) (*entity.PendingSale, error)
	confirmFn  func(id string) error
	rejectFn   func(id string) error
	rejected   []string
}

func (f *fakePendingSaleAPI) GeneratePendingSale(_ context.Context, _ string, items []entity.SaleItem) (*entity.PendingSale, error) {
	return f.generateFn(items)
}

func (f *fakePendingSaleAPI) ConfirmPendingSale(_ context.Context, _ string, id string) error {
	if f.confirmFn != nil {
		return f.confirmFn(id)
	}
	return nil
}

func (f *fakePendingSaleAPI) RejectPendingSale(_ context.Context, _ string, id string) error {
	f.rejected = append(f.rejected, id)
	if f.rejectFn != nil {
		return f.rejectFn(id)
	}
	return nil
}

func pendingSummary(id string) *entity.PendingSale {
	return &entity.PendingSale{
		PendingSaleID: id,
		ProductPreviews: []entity.ProductPreview{{
			EAN:            "12345678",
			TradeName:      "AquaViva",
			Series:         "L-001",
			Quantity:       decimal.NewFromInt(2),
			AmountToBePaid: decimal.RequireFromString("3.00"),
			Profit:         decimal.RequireFromString("0.80"),
		}},
	}
}

func draftOneLine(t *testing.T, w *SaleWorkflow, sessionID string) entity.SaleItem {
	t.Helper()
	require.NoError(t, w.Begin(sessionID))
	items := w.Items(sessionID)
	require.Len(t, items, 1)
	require.NoError(t, w.UpdateItem(sessionID, dto.SaleItemForm{
		ID: items[0].ID, EAN: "12345678", Quantity: "2",
	}))
	return w.Items(sessionID)[0]
}

func TestWorkflow_CaminoFelizHastaConfirmar(t *testing.T) {
	api := &fakePendingSaleAPI{generateFn: func(items []entity.SaleItem) (*entity.PendingSale, error) {
		require.Len(t, items, 1)
		return pendingSummary("ps-1"), nil
	}}
	invalidated := 0
	w := NewSaleWorkflow(api, func(string) { invalidated++ })
	sess := testSession()

	assert.Equal(t, StateIdle, w.State(sess.ID))
	draftOneLine(t, w, sess.ID)
	assert.Equal(t, StateDrafting, w.State(sess.ID))

	pending, err := w.Submit(context.Background(), sess)
	require.NoError(t, err)
	assert.Equal(t, StatePendingConfirmation, w.State(sess.ID))
	assert.Equal(t, "ps-1", pending.PendingSaleID)
	assert.True(t, pending.Total().Equal(decimal.RequireFromString("3.00")))

	require.NoError(t, w.Confirm(context.Background(), sess))
	assert.Equal(t, StateIdle, w.State(sess.ID))
	assert.Nil(t, w.Pending(sess.ID))
	assert.Equal(t, 1, invalidated, "confirmar debe forzar recarga del historial")
}

func TestWorkflow_RechazoDelServidorConservaElBorrador(t *testing.T) {
	api := &fakePendingSaleAPI{generateFn: func([]entity.SaleItem) (*entity.PendingSale, error) {
		return nil, &warehouse.APIError{Status: 409, Message: "Not enough stock"}
	}}
	w := NewSaleWorkflow(api, nil)
	sess := testSession()
	line := draftOneLine(t, w, sess.ID)

	_, err := w.Submit(context.Background(), sess)
	var apiErr *warehouse.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Not enough stock", apiErr.Message)

	// El borrador sigue abierto con sus líneas para corregir y reenviar.
	assert.Equal(t, StateDrafting, w.State(sess.ID))
	items := w.Items(sess.ID)
	require.Len(t, items, 1)
	assert.Equal(t, line.EAN, items[0].EAN)
}

func TestWorkflow_FalloDeRedDescartaElBorrador(t *testing.T) {
	api := &fakePendingSaleAPI{generateFn: func([]entity.SaleItem) (*entity.PendingSale, error) {
		return nil, domain.ErrNetwork
	}}
	w := NewSaleWorkflow(api, nil)
	sess := testSession()
	draftOneLine(t, w, sess.ID)

	_, err := w.Submit(context.Background(), sess)
	require.ErrorIs(t, err, domain.ErrNetwork)
	assert.Equal(t, StateIdle, w.State(sess.ID))
	assert.Empty(t, w.Items(sess.ID))
}

func TestWorkflow_ElBorradorConservaAlMenosUnaLinea(t *testing.T) {
	w := NewSaleWorkflow(&fakePendingSaleAPI{}, nil)
	sess := testSession()
	require.NoError(t, w.Begin(sess.ID))

	items := w.Items(sess.ID)
	require.Len(t, items, 1)
	err := w.RemoveItem(sess.ID, items[0].ID)
	assert.ErrorIs(t, err, domain.ErrValidation)

	require.NoError(t, w.AddItem(sess.ID))
	require.NoError(t, w.RemoveItem(sess.ID, items[0].ID))
	assert.Len(t, w.Items(sess.ID), 1)
}

func TestWorkflow_DescartarElResumenPasaPorReject(t *testing.T) {
	api := &fakePendingSaleAPI{generateFn: func([]entity.SaleItem) (*entity.PendingSale, error) {
		return pendingSummary("ps-9"), nil
	}}
	w := NewSaleWorkflow(api, nil)
	sess := testSession()
	draftOneLine(t, w, sess.ID)
	_, err := w.Submit(context.Background(), sess)
	require.NoError(t, err)

	require.NoError(t, w.Reject(context.Background(), sess))
	assert.Equal(t, []string{"ps-9"}, api.rejected)
	assert.Equal(t, StateIdle, w.State(sess.ID))
}

func TestWorkflow_OperacionesFueraDeFase(t *testing.T) {
	w := NewSaleWorkflow(&fakePendingSaleAPI{}, nil)
	sess := testSession()

	_, err := w.Submit(context.Background(), sess)
	assert.ErrorIs(t, err, domain.ErrWorkflowState)
	assert.ErrorIs(t, w.Confirm(context.Background(), sess), domain.ErrWorkflowState)
	assert.ErrorIs(t, w.Reject(context.Background(), sess), domain.ErrWorkflowState)

	require.NoError(t, w.Begin(sess.ID))
	assert.ErrorIs(t, w.Begin(sess.ID), domain.ErrWorkflowState)
}

func TestWorkflow_LineaSinCantidadNoSeEnvia(t *testing.T) {
	api := &fakePendingSaleAPI{generateFn: func([]entity.SaleItem) (*entity.PendingSale, error) {
		t.Fatal("no debería llamarse")
		return nil, nil
	}}
	w := NewSaleWorkflow(api, nil)
	sess := testSession()
	require.NoError(t, w.Begin(sess.ID))

	_, err := w.Submit(context.Background(), sess)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, StateDrafting, w.State(sess.ID))
}
