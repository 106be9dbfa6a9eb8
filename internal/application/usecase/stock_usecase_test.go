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

type fakeStockAPI struct {
	listCalls  int
	listFn     func() ([]entity.StockLot, error)
	searchFn   func(by warehouse.StockSearchBy, term string) ([]entity.StockLot, error)
	deliveryFn func(req warehouse.DeliveryRequest) error
}

func (f *fakeStockAPI) ListStock(_ context.Context, _ string) ([]entity.StockLot, error) {
	f.listCalls++
	return f.listFn()
}

func (f *fakeStockAPI) SearchStock(_ context.Context, _ string, by warehouse.StockSearchBy, term string) ([]entity.StockLot, error) {
	return f.searchFn(by, term)
}

func (f *fakeStockAPI) AddDelivery(_ context.Context, _ string, req warehouse.DeliveryRequest) error {
	if f.deliveryFn != nil {
		return f.deliveryFn(req)
	}
	return nil
}

func lot(ean, series, qty string) entity.StockLot {
	return entity.StockLot{
		TradeName: "AquaViva",
		EAN:       ean,
		Series:    series,
		Quantity:  decimal.RequireFromString(qty),
		UnitType:  entity.UnitL,
	}
}

func TestStockList_AgrupaPorEANConservandoElOrden(t *testing.T) {
	api := &fakeStockAPI{listFn: func() ([]entity.StockLot, error) {
		return []entity.StockLot{
			lot("12345678", "L-001", "10"),
			lot("87654321", "L-002", "5"),
			lot("12345678", "L-003", "2.5"),
		}, nil
	}}
	uc := NewStockUseCase(api)
	sess := testSession()

	groups, err := uc.List(context.Background(), sess)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	assert.Equal(t, "12345678", groups[0].EAN)
	assert.True(t, groups[0].TotalQuantity.Equal(decimal.RequireFromString("12.5")))
	assert.Len(t, groups[0].Lots, 2)
	assert.Equal(t, "87654321", groups[1].EAN)
}

func TestStockAddDelivery_InvalidaYRecarga(t *testing.T) {
	api := &fakeStockAPI{listFn: func() ([]entity.StockLot, error) {
		return []entity.StockLot{lot("12345678", "L-001", "10")}, nil
	}}
	uc := NewStockUseCase(api)
	sess := testSession()

	_, err := uc.List(context.Background(), sess)
	require.NoError(t, err)
	require.Equal(t, 1, api.listCalls)

	require.NoError(t, uc.AddDelivery(context.Background(), sess, dto.CreateDeliveryRequest{
		EAN:                 "12345678",
		Series:              "L-004",
		Quantity:            "3",
		StorageLocationCode: "A1",
		PricePaid:           "2.40",
	}))

	// La cantidad resultante la calcula el backend: la próxima lectura recarga.
	_, err = uc.List(context.Background(), sess)
	require.NoError(t, err)
	assert.Equal(t, 2, api.listCalls)
}

func TestStockSearch_ReemplazaLaListaVisible(t *testing.T) {
	api := &fakeStockAPI{
		listFn: func() ([]entity.StockLot, error) {
			return []entity.StockLot{lot("12345678", "L-001", "10"), lot("87654321", "L-002", "5")}, nil
		},
		searchFn: func(by warehouse.StockSearchBy, term string) ([]entity.StockLot, error) {
			assert.Equal(t, warehouse.StockByEAN, by)
			return []entity.StockLot{lot("87654321", "L-002", "5")}, nil
		},
	}
	uc := NewStockUseCase(api)
	sess := testSession()
	_, err := uc.List(context.Background(), sess)
	require.NoError(t, err)

	groups, err := uc.Search(context.Background(), sess, dto.StockSearchRequest{By: "ean", Term: "87654321"})
	require.NoError(t, err)
	require.Len(t, groups, 1)

	// Volver a la vista sin buscar muestra el resultado, no la lista original.
	groups, err = uc.List(context.Background(), sess)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "87654321", groups[0].EAN)
}

func TestStockSearch_FechaInvalidaNoTocaLaRed(t *testing.T) {
	api := &fakeStockAPI{searchFn: func(warehouse.StockSearchBy, string) ([]entity.StockLot, error) {
		t.Fatal("no debería llamarse")
		return nil, nil
	}}
	uc := NewStockUseCase(api)

	_, err := uc.Search(context.Background(), testSession(), dto.StockSearchRequest{By: "date", Term: "31-12-2025"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestStockAddDelivery_CantidadInvalidaNoTocaLaRed(t *testing.T) {
	api := &fakeStockAPI{deliveryFn: func(warehouse.DeliveryRequest) error {
		t.Fatal("no debería llamarse")
		return nil
	}}
	uc := NewStockUseCase(api)

	err := uc.AddDelivery(context.Background(), testSession(), dto.CreateDeliveryRequest{
		EAN: "12345678", Series: "L-1", Quantity: "0", StorageLocationCode: "A1", PricePaid: "1.00",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
