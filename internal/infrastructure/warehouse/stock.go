package warehouse

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/chrisx123456/WarehouseAppFrontend/internal/domain"
	"github.com/chrisx123456/WarehouseAppFrontend/internal/domain/entity"
)

// ── Stock y entregas ──────────────────────────────────────────────────────────

// StockSearchBy criterio de búsqueda de partidas.
type StockSearchBy string

const (
	StockByEAN    StockSearchBy = "ean"
	StockBySeries StockSearchBy = "series"
	StockByDate   StockSearchBy = "date" // fecha de caducidad, "2006-01-02"
)

// DeliveryRequest alta de una entrega (nueva partida de stock).
type DeliveryRequest struct {
	EAN                 string          `json:"ean"`
	Series              string          `json:"series"`
	Quantity            decimal.Decimal `json:"quantity"`
	ExpirationDate      string          `json:"expirationDate,omitempty"`
	StorageLocationCode string          `json:"storageLocationCode"`
	PricePaid           decimal.Decimal `json:"pricePaid"`
}

// ListStock lista todas las partidas de stock.
func (c *Client) ListStock(ctx context.Context, token string) ([]entity.StockLot, error) {
	var out []entity.StockLot
	if err := c.do(ctx, http.MethodGet, "/Stock", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchStock busca partidas por EAN, serie o fecha de caducidad.
// El resultado reemplaza la lista anterior por completo (sin merge).
func (c *Client) SearchStock(ctx context.Context, token string, by StockSearchBy, term string) ([]entity.StockLot, error) {
	switch by {
	case StockByEAN, StockBySeries, StockByDate:
	default:
		return nil, fmt.Errorf("%w: criterio de búsqueda desconocido %q", domain.ErrValidation, by)
	}
	var out []entity.StockLot
	path := "/Stock/" + string(by) + "/" + url.PathEscape(term)
	if err := c.do(ctx, http.MethodGet, path, token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddDelivery registra una entrega. El stock resultante lo calcula el
// backend; la vista debe recargar la lista completa después.
func (c *Client) AddDelivery(ctx context.Context, token string, req DeliveryRequest) error {
	return c.do(ctx, http.MethodPost, "/Delivery", token, req, nil)
}
