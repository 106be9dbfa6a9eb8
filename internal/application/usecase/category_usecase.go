package usecase

import (
	"context"

	"github.com/chrisx123456/WarehouseAppFrontend/internal/application/cache"
	"github.com/chrisx123456/WarehouseAppFrontend/internal/application/dto"
	"github.com/chrisx123456/WarehouseAppFrontend/internal/domain"
	"github.com/chrisx123456/WarehouseAppFrontend/internal/domain/entity"
)

// CategoryAPI operaciones del backend que usa la vista de categorías.
// La implementación concreta es warehouse.Client.
type CategoryAPI interface {
	ListCategories(ctx context.Context, token string) ([]entity.Category, error)
	CreateCategory(ctx context.Context, token string, cat entity.Category) error
	UpdateCategoryVAT(ctx context.Context, token, name string, newVAT int) error
	DeleteCategory(ctx context.Context, token, name string) error
}

// CategoryUseCase vista de categorías: carga única + parche local tras
// cada escritura 2xx.
type CategoryUseCase struct {
	api   CategoryAPI
	lists *cache.Scoped[entity.Category]
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(api CategoryAPI) *CategoryUseCase {
	return &CategoryUseCase{
		api:   api,
		lists: cache.NewScoped(func(c entity.Category) string { return c.Name }),
	}
}

// DropSession suelta la caché de la sesión destruida.
func (uc *CategoryUseCase) DropSession(sessionID string) {
	uc.lists.Drop(sessionID)
}

// List devuelve las categorías; solo toca la red en la primera carga.
func (uc *CategoryUseCase) List(ctx context.Context, sess *entity.Session) ([]entity.Category, error) {
	list := uc.lists.For(sess.ID)
	if !list.Loaded() {
		categories, err := uc.api.ListCategories(ctx, sess.Token)
		if err != nil {
			return nil, err
		}
		list.Replace(categories)
	}
	return list.Items(), nil
}

// Create valida y da de alta la categoría; en 2xx la añade a la lista sin
// recargar.
func (uc *CategoryUseCase) Create(ctx context.Context, sess *entity.Session, in dto.CreateCategoryRequest) error {
	if err := domain.ValidateCategoryName(in.Name); err != nil {
		return err
	}
	if err := domain.ValidateVAT(in.VAT); err != nil {
		return err
	}
	cat := entity.Category{Name: in.Name, VAT: in.VAT}
	if err := uc.api.CreateCategory(ctx, sess.Token, cat); err != nil {
		return err
	}
	uc.lists.For(sess.ID).Append(cat)
	return nil
}

// UpdateVAT edición por diff: si el VAT no cambió respecto a la copia del
// servidor en caché, no hay llamada de red. En fallo la lista queda intacta.
func (uc *CategoryUseCase) UpdateVAT(ctx context.Context, sess *entity.Session, name string, newVAT int) error {
	if err := domain.ValidateVAT(newVAT); err != nil {
		return err
	}
	list := uc.lists.For(sess.ID)
	if current, ok := list.Get(name); ok && current.VAT == newVAT {
		return nil
	}
	if err := uc.api.UpdateCategoryVAT(ctx, sess.Token, name, newVAT); err != nil {
		return err
	}
	list.Update(name, entity.Category{Name: name, VAT: newVAT})
	return nil
}

// Delete elimina la categoría y la quita de la lista en 2xx.
func (uc *CategoryUseCase) Delete(ctx context.Context, sess *entity.Session, name string) error {
	if err := uc.api.DeleteCategory(ctx, sess.Token, name); err != nil {
		return err
	}
	uc.lists.For(sess.ID).Remove(name)
	return nil
}
