package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/chrisx123456/WarehouseAppFrontend/internal/application/cache"
	"github.com/chrisx123456/WarehouseAppFrontend/internal/application/dto"
	"github.com/chrisx123456/WarehouseAppFrontend/internal/domain/entity"
	"github.com/chrisx123456/WarehouseAppFrontend/internal/infrastructure/warehouse"
)

// SaleHistoryAPI operaciones de lectura del historial de ventas.
type SaleHistoryAPI interface {
	ListSales(ctx context.Context, token string, filter warehouse.SaleFilter) ([]entity.Sale, error)
	ListUserSales(ctx context.Context, token string) ([]entity.Sale, error)
	SearchUserSales(ctx context.Context, token string, filter warehouse.SaleFilter) ([]entity.Sale, error)
}

// SalesReportGenerator genera el informe PDF del historial visible.
type SalesReportGenerator interface {
	SalesReport(sales []entity.Sale, currency string) ([]byte, error)
}

// SaleHistoryUseCase vista del historial de ventas (manager/admin) y de
// las ventas propias de cualquier usuario. El historial completo se
// cachea sin filtro; cualquier filtro va siempre a la red y reemplaza la
// lista visible.
type SaleHistoryUseCase struct {
	api     SaleHistoryAPI
	reports SalesReportGenerator
	lists   *cache.Scoped[entity.Sale]
}

// NewSaleHistoryUseCase construye el caso de uso.
func NewSaleHistoryUseCase(api SaleHistoryAPI, reports SalesReportGenerator) *SaleHistoryUseCase {
	return &SaleHistoryUseCase{
		api:     api,
		reports: reports,
		lists:   cache.NewScoped(saleKey),
	}
}

// Las ventas no traen id propio; la clave compuesta serie+fecha es única
// por partida vendida y basta para las operaciones de caché.
func saleKey(s entity.Sale) string {
	return s.Series + "/" + s.DateSaled.Format("2006-01-02T15:04:05") + "/" + s.EAN
}

// DropSession suelta la caché de la sesión destruida.
func (uc *SaleHistoryUseCase) DropSession(sessionID string) {
	uc.lists.Drop(sessionID)
}

// InvalidateSession fuerza recarga en la próxima lectura. Se invoca al
// confirmar una venta: los importes y el reparto los calcula el backend.
func (uc *SaleHistoryUseCase) InvalidateSession(sessionID string) {
	uc.lists.For(sessionID).Invalidate()
}

// History devuelve el historial según filtro. Sin filtro sirve la caché;
// con filtro consulta siempre y el resultado pasa a ser la lista visible.
func (uc *SaleHistoryUseCase) History(ctx context.Context, sess *entity.Session, in dto.SaleHistoryFilter) ([]entity.Sale, error) {
	filter := warehouse.SaleFilter{
		StartDate:  in.StartDate,
		EndDate:    in.EndDate,
		SearchTerm: in.SearchTerm,
		UserID:     in.UserID,
	}
	list := uc.lists.For(sess.ID)
	if filter.Empty() && list.Loaded() {
		return list.Items(), nil
	}
	sales, err := uc.api.ListSales(ctx, sess.Token, filter)
	if err != nil {
		return nil, err
	}
	list.Replace(sales)
	return list.Items(), nil
}

// OwnSales ventas del usuario autenticado, con búsqueda opcional. No se
// cachean: comparten pantalla con el flujo de venta y deben reflejar la
// confirmación inmediatamente.
func (uc *SaleHistoryUseCase) OwnSales(ctx context.Context, sess *entity.Session, searchTerm string) ([]entity.Sale, error) {
	if searchTerm != "" {
		return uc.api.SearchUserSales(ctx, sess.Token, warehouse.SaleFilter{SearchTerm: searchTerm})
	}
	return uc.api.ListUserSales(ctx, sess.Token)
}

// Stats estadísticas sobre el historial recibido, calculadas en cliente.
func (uc *SaleHistoryUseCase) Stats(sales []entity.Sale) dto.SalesStats {
	stats := dto.SalesStats{
		TotalUnits:   decimal.Zero,
		TotalRevenue: decimal.Zero,
		AverageSale:  decimal.Zero,
		Transactions: len(sales),
	}
	for _, s := range sales {
		stats.TotalUnits = stats.TotalUnits.Add(s.Quantity)
		stats.TotalRevenue = stats.TotalRevenue.Add(s.AmountPaid)
	}
	if stats.Transactions > 0 {
		stats.AverageSale = stats.TotalRevenue.
			Div(decimal.NewFromInt(int64(stats.Transactions))).
			Round(2)
	}
	return stats
}

// Report genera el PDF del historial que pasó el filtro actual.
func (uc *SaleHistoryUseCase) Report(ctx context.Context, sess *entity.Session, in dto.SaleHistoryFilter) ([]byte, error) {
	sales, err := uc.History(ctx, sess, in)
	if err != nil {
		return nil, err
	}
	return uc.reports.SalesReport(sales, sess.Currency)
}
