package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chrisx123456/WarehouseAppFrontend/internal/application/dto"
	"github.com/chrisx123456/WarehouseAppFrontend/internal/domain"
	"github.com/chrisx123456/WarehouseAppFrontend/internal/domain/entity"
)

type fakeCategoryAPI struct {
	listCalls   int
	updateCalls int
	lastVAT     int
	listFn      func() ([]entity.Category, error)
	createFn    func(cat entity.Category) error
	updateFn    func(name string, newVAT int) error
	deleteFn    func(name string) error
}

func (f *fakeCategoryAPI) ListCategories(_ context.Context, _ string) ([]entity.Category, error) {
	f.listCalls++
	return f.listFn()
}

func (f *fakeCategoryAPI) CreateCategory(_ context.Context, _ string, cat entity.Category) error {
	if f.createFn != nil {
		return f.createFn(cat)
	}
	return nil
}

func (f *fakeCategoryAPI) UpdateCategoryVAT(_ context.Context, _ string, name string, newVAT int) error {
	f.updateCalls++
	f.lastVAT = newVAT
	if f.updateFn != nil {
		return f.updateFn(name, newVAT)
	}
	return nil
}

func (f *fakeCategoryAPI) DeleteCategory(_ context.Context, _ string, name string) error {
	if f.deleteFn != nil {
		return f.deleteFn(name)
	}
	return nil
}

func testSession() *entity.Session {
	return &entity.Session{ID: "s1", Token: "t1", Role: entity.RoleManager}
}

func TestCategoryList_SoloCargaUnaVez(t *testing.T) {
	api := &fakeCategoryAPI{listFn: func() ([]entity.Category, error) {
		return []entity.Category{{Name: "Drinks", VAT: 20}}, nil
	}}
	uc := NewCategoryUseCase(api)
	sess := testSession()

	first, err := uc.List(context.Background(), sess)
	require.NoError(t, err)
	second, err := uc.List(context.Background(), sess)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, api.listCalls)
}

func TestCategoryUpdateVAT_SinCambioNoHayRed(t *testing.T) {
	api := &fakeCategoryAPI{listFn: func() ([]entity.Category, error) {
		return []entity.Category{{Name: "Drinks", VAT: 20}}, nil
	}}
	uc := NewCategoryUseCase(api)
	sess := testSession()
	_, err := uc.List(context.Background(), sess)
	require.NoError(t, err)

	require.NoError(t, uc.UpdateVAT(context.Background(), sess, "Drinks", 20))
	assert.Zero(t, api.updateCalls)
}

func TestCategoryUpdateVAT_SoloViajaElNuevoValor(t *testing.T) {
	api := &fakeCategoryAPI{listFn: func() ([]entity.Category, error) {
		return []entity.Category{{Name: "Drinks", VAT: 20}}, nil
	}}
	uc := NewCategoryUseCase(api)
	sess := testSession()
	_, err := uc.List(context.Background(), sess)
	require.NoError(t, err)

	require.NoError(t, uc.UpdateVAT(context.Background(), sess, "Drinks", 23))

	assert.Equal(t, 1, api.updateCalls)
	assert.Equal(t, 23, api.lastVAT)

	items, err := uc.List(context.Background(), sess)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 23, items[0].VAT)
	assert.Equal(t, 1, api.listCalls, "el parche local no debe recargar")
}

func TestCategoryUpdateVAT_FalloDejaLaCacheIntacta(t *testing.T) {
	api := &fakeCategoryAPI{
		listFn: func() ([]entity.Category, error) {
			return []entity.Category{{Name: "Drinks", VAT: 20}}, nil
		},
		updateFn: func(string, int) error { return errors.New("boom") },
	}
	uc := NewCategoryUseCase(api)
	sess := testSession()
	_, err := uc.List(context.Background(), sess)
	require.NoError(t, err)

	require.Error(t, uc.UpdateVAT(context.Background(), sess, "Drinks", 23))

	items, _ := uc.List(context.Background(), sess)
	require.Len(t, items, 1)
	assert.Equal(t, 20, items[0].VAT)
}

func TestCategoryCreate_ApareceSinRecargar(t *testing.T) {
	api := &fakeCategoryAPI{listFn: func() ([]entity.Category, error) {
		return []entity.Category{{Name: "Drinks", VAT: 20}}, nil
	}}
	uc := NewCategoryUseCase(api)
	sess := testSession()
	_, err := uc.List(context.Background(), sess)
	require.NoError(t, err)

	require.NoError(t, uc.Create(context.Background(), sess, dto.CreateCategoryRequest{Name: "Snacks", VAT: 8}))

	items, _ := uc.List(context.Background(), sess)
	require.Len(t, items, 2)
	assert.Equal(t, "Snacks", items[1].Name)
	assert.Equal(t, 1, api.listCalls)
}

func TestCategoryCreate_NombreInvalidoNoTocaLaRed(t *testing.T) {
	api := &fakeCategoryAPI{
		listFn:   func() ([]entity.Category, error) { return nil, nil },
		createFn: func(entity.Category) error { t.Fatal("no debería llamarse"); return nil },
	}
	uc := NewCategoryUseCase(api)

	err := uc.Create(context.Background(), testSession(), dto.CreateCategoryRequest{Name: "Drinks123", VAT: 20})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
