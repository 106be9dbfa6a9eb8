package usecase

import (
	"context"
	"fmt"

	"github.com/chrisx123456/WarehouseAppFrontend/internal/application/cache"
	"github.com/chrisx123456/WarehouseAppFrontend/internal/application/dto"
	"github.com/chrisx123456/WarehouseAppFrontend/internal/domain"
	"github.com/chrisx123456/WarehouseAppFrontend/internal/domain/entity"
	"github.com/chrisx123456/WarehouseAppFrontend/internal/infrastructure/warehouse"
)

// ProductAPI operaciones del backend para la vista de productos.
type ProductAPI interface {
	ListProducts(ctx context.Context, token string) ([]entity.Product, error)
	CreateProduct(ctx context.Context, token string, p entity.Product) (*entity.Product, error)
	UpdateProduct(ctx context.Context, token, ean string, patch warehouse.ProductPatch) error
	DeleteProduct(ctx context.Context, token, ean string) error
}

// ProductUseCase vista del catálogo de productos.
type ProductUseCase struct {
	api   ProductAPI
	lists *cache.Scoped[entity.Product]
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(api ProductAPI) *ProductUseCase {
	return &ProductUseCase{
		api:   api,
		lists: cache.NewScoped(func(p entity.Product) string { return p.EAN }),
	}
}

// DropSession suelta la caché de la sesión destruida.
func (uc *ProductUseCase) DropSession(sessionID string) {
	uc.lists.Drop(sessionID)
}

// List devuelve el catálogo; solo toca la red en la primera carga.
func (uc *ProductUseCase) List(ctx context.Context, sess *entity.Session) ([]entity.Product, error) {
	list := uc.lists.For(sess.ID)
	if !list.Loaded() {
		products, err := uc.api.ListProducts(ctx, sess.Token)
		if err != nil {
			return nil, err
		}
		list.Replace(products)
	}
	return list.Items(), nil
}

// Create valida el formulario, da de alta el producto y añade a la lista
// la copia que devuelve el servidor (no la del formulario).
func (uc *ProductUseCase) Create(ctx context.Context, sess *entity.Session, in dto.CreateProductRequest) error {
	if err := domain.ValidateEAN(in.EAN); err != nil {
		return err
	}
	unit := entity.UnitType(in.UnitType)
	if !unit.Valid() {
		return fmt.Errorf("%w: unidad de medida desconocida", domain.ErrValidation)
	}
	price, err := domain.ValidateAmount("price", in.Price)
	if err != nil {
		return err
	}
	if in.Name == "" || in.TradeName == "" || in.ManufacturerName == "" || in.CategoryName == "" {
		return fmt.Errorf("%w: nombre, nombre comercial, fabricante y categoría son requeridos", domain.ErrValidation)
	}

	created, err := uc.api.CreateProduct(ctx, sess.Token, entity.Product{
		EAN:              in.EAN,
		Name:             in.Name,
		TradeName:        in.TradeName,
		ManufacturerName: in.ManufacturerName,
		CategoryName:     in.CategoryName,
		UnitType:         unit,
		Price:            price,
		Description:      in.Description,
	})
	if err != nil {
		return err
	}
	uc.lists.For(sess.ID).Append(*created)
	return nil
}

// Update edición por diff: compara el buffer del formulario contra la
// copia del servidor en caché y envía solo los campos que difieren. Sin
// diferencias no hay llamada de red; en fallo la lista queda intacta.
func (uc *ProductUseCase) Update(ctx context.Context, sess *entity.Session, ean string, in dto.UpdateProductRequest) error {
	list := uc.lists.For(sess.ID)
	current, ok := list.Get(ean)
	if !ok {
		return fmt.Errorf("%w: producto %s no está en la vista", domain.ErrNotFound, ean)
	}

	unit := entity.UnitType(in.UnitType)
	if !unit.Valid() {
		return fmt.Errorf("%w: unidad de medida desconocida", domain.ErrValidation)
	}
	price, err := domain.ValidateAmount("price", in.Price)
	if err != nil {
		return err
	}

	var patch warehouse.ProductPatch
	updated := current
	if in.Name != current.Name {
		patch.Name = &in.Name
		updated.Name = in.Name
	}
	if in.TradeName != current.TradeName {
		patch.TradeName = &in.TradeName
		updated.TradeName = in.TradeName
	}
	if in.ManufacturerName != current.ManufacturerName {
		patch.ManufacturerName = &in.ManufacturerName
		updated.ManufacturerName = in.ManufacturerName
	}
	if in.CategoryName != current.CategoryName {
		patch.CategoryName = &in.CategoryName
		updated.CategoryName = in.CategoryName
	}
	if unit != current.UnitType {
		patch.UnitType = &unit
		updated.UnitType = unit
	}
	if !price.Equal(current.Price) {
		patch.Price = &price
		updated.Price = price
	}
	if in.Description != current.Description {
		patch.Description = &in.Description
		updated.Description = in.Description
	}

	if patch.Empty() {
		return nil
	}
	if err := uc.api.UpdateProduct(ctx, sess.Token, ean, patch); err != nil {
		return err
	}
	list.Update(ean, updated)
	return nil
}

// Delete elimina el producto.
func (uc *ProductUseCase) Delete(ctx context.Context, sess *entity.Session, ean string) error {
	if err := uc.api.DeleteProduct(ctx, sess.Token, ean); err != nil {
		return err
	}
	uc.lists.For(sess.ID).Remove(ean)
	return nil
}
