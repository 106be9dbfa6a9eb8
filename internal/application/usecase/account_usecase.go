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

// UserAdminAPI operaciones del backend para perfil y administración.
type UserAdminAPI interface {
	OwnData(ctx context.Context, token string) (*entity.User, error)
	ListUsers(ctx context.Context, token string) ([]entity.User, error)
	RegisterUser(ctx context.Context, token string, req warehouse.RegisterUserRequest) error
}

// AccountUseCase perfil propio y panel de administración de cuentas.
type AccountUseCase struct {
	api   UserAdminAPI
	lists *cache.Scoped[entity.User]
}

// NewAccountUseCase construye el caso de uso.
func NewAccountUseCase(api UserAdminAPI) *AccountUseCase {
	return &AccountUseCase{
		api:   api,
		lists: cache.NewScoped(func(u entity.User) string { return u.Email }),
	}
}

// DropSession suelta la caché de la sesión destruida.
func (uc *AccountUseCase) DropSession(sessionID string) {
	uc.lists.Drop(sessionID)
}

// Profile datos del usuario autenticado. No se cachean: la vista de
// perfil es poco frecuente y debe reflejar cambios hechos por un admin.
func (uc *AccountUseCase) Profile(ctx context.Context, sess *entity.Session) (*entity.User, error) {
	return uc.api.OwnData(ctx, sess.Token)
}

// Users lista de cuentas para el panel de administración.
func (uc *AccountUseCase) Users(ctx context.Context, sess *entity.Session) ([]entity.User, error) {
	list := uc.lists.For(sess.ID)
	if !list.Loaded() {
		users, err := uc.api.ListUsers(ctx, sess.Token)
		if err != nil {
			return nil, err
		}
		list.Replace(users)
	}
	return list.Items(), nil
}

// Register da de alta una cuenta nueva y la añade a la lista visible.
func (uc *AccountUseCase) Register(ctx context.Context, sess *entity.Session, in dto.RegisterUserRequest) error {
	if err := domain.ValidateEmail(in.Email); err != nil {
		return err
	}
	if in.FirstName == "" || in.LastName == "" {
		return fmt.Errorf("%w: nombre y apellido son requeridos", domain.ErrValidation)
	}
	switch entity.ParseRole(in.RoleName) {
	case entity.RoleUser, entity.RoleManager, entity.RoleAdmin:
	default:
		return fmt.Errorf("%w: rol desconocido %q", domain.ErrValidation, in.RoleName)
	}
	if len(in.Password) < 8 {
		return fmt.Errorf("%w: la contraseña necesita al menos 8 caracteres", domain.ErrValidation)
	}

	if err := uc.api.RegisterUser(ctx, sess.Token, warehouse.RegisterUserRequest{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		RoleName:  in.RoleName,
		Password:  in.Password,
	}); err != nil {
		return err
	}
	uc.lists.For(sess.ID).Append(entity.User{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		RoleName:  in.RoleName,
	})
	return nil
}
