package warehouse

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/chrisx123456/WarehouseAppFrontend/internal/domain/entity"
)

// ── Categorías ────────────────────────────────────────────────────────────────

// ListCategories lista todas las categorías.
func (c *Client) ListCategories(ctx context.Context, token string) ([]entity.Category, error) {
	var out []entity.Category
	if err := c.do(ctx, http.MethodGet, "/Category", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateCategory crea una categoría.
func (c *Client) CreateCategory(ctx context.Context, token string, cat entity.Category) error {
	return c.do(ctx, http.MethodPost, "/Category", token, cat, nil)
}

// UpdateCategoryVAT cambia solo el VAT de una categoría. El backend recibe
// el campo modificado como query param; el nombre no viaja en el cuerpo.
func (c *Client) UpdateCategoryVAT(ctx context.Context, token, name string, newVAT int) error {
	path := "/Category/" + url.PathEscape(name) + "?newVat=" + strconv.Itoa(newVAT)
	return c.do(ctx, http.MethodPatch, path, token, nil, nil)
}

// DeleteCategory elimina una categoría por nombre.
func (c *Client) DeleteCategory(ctx context.Context, token, name string) error {
	return c.do(ctx, http.MethodDelete, "/Category/"+url.PathEscape(name), token, nil, nil)
}

// ── Fabricantes ───────────────────────────────────────────────────────────────

// ListManufacturers lista todos los fabricantes.
func (c *Client) ListManufacturers(ctx context.Context, token string) ([]entity.Manufacturer, error) {
	var out []entity.Manufacturer
	if err := c.do(ctx, http.MethodGet, "/Manufacturer", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateManufacturer crea un fabricante.
func (c *Client) CreateManufacturer(ctx context.Context, token string, m entity.Manufacturer) error {
	return c.do(ctx, http.MethodPost, "/Manufacturer", token, m, nil)
}

// RenameManufacturer renombra un fabricante (el único campo editable).
func (c *Client) RenameManufacturer(ctx context.Context, token, oldName, newName string) error {
	path := "/Manufacturer/" + url.PathEscape(oldName) + "?newName=" + url.QueryEscape(newName)
	return c.do(ctx, http.MethodPatch, path, token, nil, nil)
}

// DeleteManufacturer elimina un fabricante por nombre.
func (c *Client) DeleteManufacturer(ctx context.Context, token, name string) error {
	return c.do(ctx, http.MethodDelete, "/Manufacturer/"+url.PathEscape(name), token, nil, nil)
}

// ── Productos ─────────────────────────────────────────────────────────────────

// ProductPatch campos modificables de un producto. Solo los campos no nil
// viajan en el PATCH: el diff lo calcula el caso de uso comparando contra
// la copia del servidor en caché.
type ProductPatch struct {
	Name             *string          `json:"name,omitempty"`
	TradeName        *string          `json:"tradeName,omitempty"`
	ManufacturerName *string          `json:"manufacturerName,omitempty"`
	CategoryName     *string          `json:"categoryName,omitempty"`
	UnitType         *entity.UnitType `json:"unitType,omitempty"`
	Price            *decimal.Decimal `json:"price,omitempty"`
	Description      *string          `json:"description,omitempty"`
}

// Empty indica si el patch no contiene ningún cambio.
func (p ProductPatch) Empty() bool {
	return p.Name == nil && p.TradeName == nil && p.ManufacturerName == nil &&
		p.CategoryName == nil && p.UnitType == nil && p.Price == nil && p.Description == nil
}

// ListProducts lista el catálogo completo.
func (c *Client) ListProducts(ctx context.Context, token string) ([]entity.Product, error) {
	var out []entity.Product
	if err := c.do(ctx, http.MethodGet, "/Product", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateProduct crea un producto y devuelve la copia del servidor.
func (c *Client) CreateProduct(ctx context.Context, token string, p entity.Product) (*entity.Product, error) {
	var out entity.Product
	if err := c.do(ctx, http.MethodPost, "/Product", token, p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProduct aplica un patch parcial a un producto por EAN.
func (c *Client) UpdateProduct(ctx context.Context, token, ean string, patch ProductPatch) error {
	return c.do(ctx, http.MethodPatch, "/Product/"+url.PathEscape(ean), token, patch, nil)
}

// DeleteProduct elimina un producto por EAN.
func (c *Client) DeleteProduct(ctx context.Context, token, ean string) error {
	return c.do(ctx, http.MethodDelete, "/Product/"+url.PathEscape(ean), token, nil, nil)
}
