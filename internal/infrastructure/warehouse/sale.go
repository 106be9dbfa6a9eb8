package warehouse

import (
	"context"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/chrisx123456/WarehouseAppFrontend/internal/domain/entity"
)

// ── Ventas ────────────────────────────────────────────────────────────────────

// SaleFilter criterios opcionales del historial de ventas; los campos
// vacíos no viajan en el query string.
type SaleFilter struct {
	StartDate  string // "2006-01-02"
	EndDate    string
	SearchTerm string // producto o serie
	UserID     string // id numérico como texto
}

func (f SaleFilter) query() string {
	return encodeQuery(map[string]string{
		"startDate":  f.StartDate,
		"endDate":    f.EndDate,
		"searchTerm": f.SearchTerm,
		"userId":     f.UserID,
	})
}

// Empty indica si el filtro no restringe nada.
func (f SaleFilter) Empty() bool {
	return f.StartDate == "" && f.EndDate == "" && f.SearchTerm == "" && f.UserID == ""
}

type saleItemWire struct {
	EAN   string          `json:"ean"`
	Count decimal.Decimal `json:"count"`
}

type generatePendingSalesRequest struct {
	Items []saleItemWire `json:"items"`
}

// ListSales historial completo (manager/admin), con filtro opcional.
func (c *Client) ListSales(ctx context.Context, token string, filter SaleFilter) ([]entity.Sale, error) {
	var out []entity.Sale
	if err := c.do(ctx, http.MethodGet, "/Sale"+filter.query(), token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListUserSales ventas del usuario autenticado.
func (c *Client) ListUserSales(ctx context.Context, token string) ([]entity.Sale, error) {
	var out []entity.Sale
	if err := c.do(ctx, http.MethodGet, "/Sale/userSales", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchUserSales búsqueda sobre las ventas propias.
func (c *Client) SearchUserSales(ctx context.Context, token string, filter SaleFilter) ([]entity.Sale, error) {
	var out []entity.Sale
	if err := c.do(ctx, http.MethodGet, "/Sale/userSales/search"+filter.query(), token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GeneratePendingSale envía el borrador y devuelve el resumen calculado
// por el backend (asignación de partidas, importes, beneficio). La venta
// queda retenida en el servidor hasta confirm o reject.
func (c *Client) GeneratePendingSale(ctx context.Context, token string, items []entity.SaleItem) (*entity.PendingSale, error) {
	req := generatePendingSalesRequest{Items: make([]saleItemWire, 0, len(items))}
	for _, it := range items {
		req.Items = append(req.Items, saleItemWire{EAN: it.EAN, Count: it.Quantity})
	}
	var out entity.PendingSale
	if err := c.do(ctx, http.MethodPost, "/Sale/GeneratePendingSales", token, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ConfirmPendingSale confirma la venta pendiente. La ruta POST
// /Sale/confirm/{id} es la vigente; la forma antigua PUT /Sales/{id}/confirm
// quedó retirada en el backend.
func (c *Client) ConfirmPendingSale(ctx context.Context, token, pendingSaleID string) error {
	return c.do(ctx, http.MethodPost, "/Sale/confirm/"+url.PathEscape(pendingSaleID), token, nil, nil)
}

// RejectPendingSale libera la asignación retenida por la venta pendiente.
// Se invoca tanto en el rechazo explícito como al descartar el resumen.
func (c *Client) RejectPendingSale(ctx context.Context, token, pendingSaleID string) error {
	return c.do(ctx, http.MethodDelete, "/Sale/reject/"+url.PathEscape(pendingSaleID), token, nil, nil)
}
