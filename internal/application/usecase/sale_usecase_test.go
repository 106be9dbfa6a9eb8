package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chrisx123456/WarehouseAppFrontend/internal/application/dto"
	"github.com/chrisx123456/WarehouseAppFrontend/internal/domain/entity"
	"github.com/chrisx123456/WarehouseAppFrontend/internal/infrastructure/warehouse"
)

type fakeSaleHistoryAPI struct {
	listCalls  int
	lastFilter warehouse.SaleFilter
	listFn     func(filter warehouse.SaleFilter) ([]entity.Sale, error)
	ownFn      func() ([]entity.Sale, error)
	searchFn   func(filter warehouse.SaleFilter) ([]entity.Sale, error)
}

func (f *fakeSaleHistoryAPI) ListSales(_ context.Context, _ string, filter warehouse.SaleFilter) ([]entity.Sale, error) {
	f.listCalls++
	f.lastFilter = filter
	return f.listFn(filter)
}

func (f *fakeSaleHistoryAPI) ListUserSales(_ context.Context, _ string) ([]entity.Sale, error) {
	return f.ownFn()
}

func (f *fakeSaleHistoryAPI) SearchUserSales(_ context.Context, _ string, filter warehouse.SaleFilter) ([]entity.Sale, error) {
	return f.searchFn(filter)
}

func sampleSale(series, qty, paid string) entity.Sale {
	return entity.Sale{
		TradeName:  "AquaViva",
		EAN:        "12345678",
		Series:     series,
		Quantity:   decimal.RequireFromString(qty),
		AmountPaid: decimal.RequireFromString(paid),
		DateSaled:  time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
	}
}

func TestHistory_SinFiltroSirveLaCache(t *testing.T) {
	api := &fakeSaleHistoryAPI{listFn: func(warehouse.SaleFilter) ([]entity.Sale, error) {
		return []entity.Sale{sampleSale("L-1", "2", "3.00")}, nil
	}}
	uc := NewSaleHistoryUseCase(api, nil)
	sess := testSession()

	_, err := uc.History(context.Background(), sess, dto.SaleHistoryFilter{})
	require.NoError(t, err)
	_, err = uc.History(context.Background(), sess, dto.SaleHistoryFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, api.listCalls)
}

func TestHistory_ConFiltroConsultaSiempre(t *testing.T) {
	api := &fakeSaleHistoryAPI{listFn: func(warehouse.SaleFilter) ([]entity.Sale, error) {
		return []entity.Sale{sampleSale("L-1", "2", "3.00")}, nil
	}}
	uc := NewSaleHistoryUseCase(api, nil)
	sess := testSession()

	_, err := uc.History(context.Background(), sess, dto.SaleHistoryFilter{SearchTerm: "Aqua"})
	require.NoError(t, err)
	_, err = uc.History(context.Background(), sess, dto.SaleHistoryFilter{SearchTerm: "Aqua"})
	require.NoError(t, err)

	assert.Equal(t, 2, api.listCalls)
	assert.Equal(t, "Aqua", api.lastFilter.SearchTerm)
}

func TestHistory_InvalidateFuerzaRecarga(t *testing.T) {
	api := &fakeSaleHistoryAPI{listFn: func(warehouse.SaleFilter) ([]entity.Sale, error) {
		return []entity.Sale{sampleSale("L-1", "2", "3.00")}, nil
	}}
	uc := NewSaleHistoryUseCase(api, nil)
	sess := testSession()

	_, err := uc.History(context.Background(), sess, dto.SaleHistoryFilter{})
	require.NoError(t, err)
	uc.InvalidateSession(sess.ID)
	_, err = uc.History(context.Background(), sess, dto.SaleHistoryFilter{})
	require.NoError(t, err)
	assert.Equal(t, 2, api.listCalls)
}

func TestStats_CalculaTotalesYMedia(t *testing.T) {
	uc := NewSaleHistoryUseCase(&fakeSaleHistoryAPI{}, nil)

	stats := uc.Stats([]entity.Sale{
		sampleSale("L-1", "2", "3.00"),
		sampleSale("L-2", "1.5", "4.50"),
		sampleSale("L-3", "1", "2.00"),
	})

	assert.Equal(t, 3, stats.Transactions)
	assert.True(t, stats.TotalUnits.Equal(decimal.RequireFromString("4.5")))
	assert.True(t, stats.TotalRevenue.Equal(decimal.RequireFromString("9.50")))
	assert.True(t, stats.AverageSale.Equal(decimal.RequireFromString("3.17")), "9.50/3 redondeado a dos decimales")
}

func TestStats_SinVentasTodoCero(t *testing.T) {
	uc := NewSaleHistoryUseCase(&fakeSaleHistoryAPI{}, nil)
	stats := uc.Stats(nil)

	assert.Zero(t, stats.Transactions)
	assert.True(t, stats.TotalRevenue.IsZero())
	assert.True(t, stats.AverageSale.IsZero())
}

func TestOwnSales_BuscaSoloConTermino(t *testing.T) {
	own := []entity.Sale{sampleSale("L-1", "2", "3.00")}
	filtered := []entity.Sale{sampleSale("L-2", "1", "2.00")}
	api := &fakeSaleHistoryAPI{
		ownFn: func() ([]entity.Sale, error) { return own, nil },
		searchFn: func(f warehouse.SaleFilter) ([]entity.Sale, error) {
			assert.Equal(t, "Aqua", f.SearchTerm)
			return filtered, nil
		},
	}
	uc := NewSaleHistoryUseCase(api, nil)
	sess := testSession()

	sales, err := uc.OwnSales(context.Background(), sess, "")
	require.NoError(t, err)
	assert.Equal(t, own, sales)

	sales, err = uc.OwnSales(context.Background(), sess, "Aqua")
	require.NoError(t, err)
	assert.Equal(t, filtered, sales)
}
