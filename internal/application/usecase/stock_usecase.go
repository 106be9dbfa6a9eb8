package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/chrisx123456/WarehouseAppFrontend/internal/application/cache"
	"github.com/chrisx123456/WarehouseAppFrontend/internal/application/dto"
	"github.com/chrisx123456/WarehouseAppFrontend/internal/domain"
	"github.com/chrisx123456/WarehouseAppFrontend/internal/domain/entity"
	"github.com/chrisx123456/WarehouseAppFrontend/internal/infrastructure/warehouse"
)

// StockAPI operaciones del backend para la vista de stock.
type StockAPI interface {
	ListStock(ctx context.Context, token string) ([]entity.StockLot, error)
	SearchStock(ctx context.Context, token string, by warehouse.StockSearchBy, term string) ([]entity.StockLot, error)
	AddDelivery(ctx context.Context, token string, req warehouse.DeliveryRequest) error
}

// StockUseCase vista de stock agrupado por EAN. A diferencia del resto de
// listas, aquí el stock resultante de una entrega lo calcula el backend,
// así que tras un alta se invalida la caché y la siguiente lectura recarga.
type StockUseCase struct {
	api   StockAPI
	lists *cache.Scoped[entity.StockLot]
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(api StockAPI) *StockUseCase {
	return &StockUseCase{
		api:   api,
		lists: cache.NewScoped(func(l entity.StockLot) string { return l.EAN + "/" + l.Series }),
	}
}

// DropSession suelta la caché de la sesión destruida.
func (uc *StockUseCase) DropSession(sessionID string) {
	uc.lists.Drop(sessionID)
}

// List devuelve el stock agrupado; solo toca la red en la primera carga
// o tras una invalidación.
func (uc *StockUseCase) List(ctx context.Context, sess *entity.Session) ([]entity.GroupedStock, error) {
	list := uc.lists.For(sess.ID)
	if !list.Loaded() {
		lots, err := uc.api.ListStock(ctx, sess.Token)
		if err != nil {
			return nil, err
		}
		list.Replace(lots)
	}
	return entity.GroupStockByEAN(list.Items()), nil
}

// Search busca partidas por criterio. El resultado reemplaza la lista en
// caché por completo; volver a la vista sin buscar muestra el resultado
// hasta que se invalide.
func (uc *StockUseCase) Search(ctx context.Context, sess *entity.Session, in dto.StockSearchRequest) ([]entity.GroupedStock, error) {
	by := warehouse.StockSearchBy(in.By)
	if in.Term == "" {
		return nil, fmt.Errorf("%w: el término de búsqueda es requerido", domain.ErrValidation)
	}
	if by == warehouse.StockByDate {
		if _, err := time.Parse("2006-01-02", in.Term); err != nil {
			return nil, fmt.Errorf("%w: fecha inválida %q", domain.ErrValidation, in.Term)
		}
	}
	lots, err := uc.api.SearchStock(ctx, sess.Token, by, in.Term)
	if err != nil {
		return nil, err
	}
	uc.lists.For(sess.ID).Replace(lots)
	return entity.GroupStockByEAN(lots), nil
}

// AddDelivery valida y registra una entrega. Las cantidades resultantes
// las calcula el backend, así que no se parchea la lista local: se
// invalida y la próxima lectura recarga.
func (uc *StockUseCase) AddDelivery(ctx context.Context, sess *entity.Session, in dto.CreateDeliveryRequest) error {
	if err := domain.ValidateEAN(in.EAN); err != nil {
		return err
	}
	if in.Series == "" || in.StorageLocationCode == "" {
		return fmt.Errorf("%w: serie y ubicación son requeridas", domain.ErrValidation)
	}
	quantity, err := domain.ValidateAmount("quantity", in.Quantity)
	if err != nil {
		return err
	}
	pricePaid, err := domain.ValidateAmount("pricePaid", in.PricePaid)
	if err != nil {
		return err
	}
	if in.ExpirationDate != "" {
		if _, err := time.Parse("2006-01-02", in.ExpirationDate); err != nil {
			return fmt.Errorf("%w: fecha de caducidad inválida %q", domain.ErrValidation, in.ExpirationDate)
		}
	}

	if err := uc.api.AddDelivery(ctx, sess.Token, warehouse.DeliveryRequest{
		EAN:                 in.EAN,
		Series:              in.Series,
		Quantity:            quantity,
		ExpirationDate:      in.ExpirationDate,
		StorageLocationCode: in.StorageLocationCode,
		PricePaid:           pricePaid,
	}); err != nil {
		return err
	}
	uc.lists.For(sess.ID).Invalidate()
	return nil
}
