package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/chrisx123456/WarehouseAppFrontend/internal/application/cache"
	"github.com/chrisx123456/WarehouseAppFrontend/internal/domain"
	"github.com/chrisx123456/WarehouseAppFrontend/internal/domain/entity"
)

// ManufacturerAPI operaciones del backend para la vista de fabricantes.
type ManufacturerAPI interface {
	ListManufacturers(ctx context.Context, token string) ([]entity.Manufacturer, error)
	CreateManufacturer(ctx context.Context, token string, m entity.Manufacturer) error
	RenameManufacturer(ctx context.Context, token, oldName, newName string) error
	DeleteManufacturer(ctx context.Context, token, name string) error
}

// ManufacturerUseCase vista de fabricantes.
type ManufacturerUseCase struct {
	api   ManufacturerAPI
	lists *cache.Scoped[entity.Manufacturer]
}

// NewManufacturerUseCase construye el caso de uso.
func NewManufacturerUseCase(api ManufacturerAPI) *ManufacturerUseCase {
	return &ManufacturerUseCase{
		api:   api,
		lists: cache.NewScoped(func(m entity.Manufacturer) string { return m.Name }),
	}
}

// DropSession suelta la caché de la sesión destruida.
func (uc *ManufacturerUseCase) DropSession(sessionID string) {
	uc.lists.Drop(sessionID)
}

// List devuelve los fabricantes; solo toca la red en la primera carga.
func (uc *ManufacturerUseCase) List(ctx context.Context, sess *entity.Session) ([]entity.Manufacturer, error) {
	list := uc.lists.For(sess.ID)
	if !list.Loaded() {
		manufacturers, err := uc.api.ListManufacturers(ctx, sess.Token)
		if err != nil {
			return nil, err
		}
		list.Replace(manufacturers)
	}
	return list.Items(), nil
}

// Create da de alta un fabricante.
func (uc *ManufacturerUseCase) Create(ctx context.Context, sess *entity.Session, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: el nombre del fabricante es requerido", domain.ErrValidation)
	}
	m := entity.Manufacturer{Name: name}
	if err := uc.api.CreateManufacturer(ctx, sess.Token, m); err != nil {
		return err
	}
	uc.lists.For(sess.ID).Append(m)
	return nil
}

// Rename renombra (el único campo editable). Sin cambio no hay llamada.
func (uc *ManufacturerUseCase) Rename(ctx context.Context, sess *entity.Session, oldName, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return fmt.Errorf("%w: el nombre nuevo es requerido", domain.ErrValidation)
	}
	if newName == oldName {
		return nil
	}
	if err := uc.api.RenameManufacturer(ctx, sess.Token, oldName, newName); err != nil {
		return err
	}
	uc.lists.For(sess.ID).Update(oldName, entity.Manufacturer{Name: newName})
	return nil
}

// Delete elimina el fabricante.
func (uc *ManufacturerUseCase) Delete(ctx context.Context, sess *entity.Session, name string) error {
	if err := uc.api.DeleteManufacturer(ctx, sess.Token, name); err != nil {
		return err
	}
	uc.lists.For(sess.ID).Remove(name)
	return nil
}
