package warehouse_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chrisx123456/WarehouseAppFrontend/internal/domain"
	"github.com/chrisx123456/WarehouseAppFrontend/internal/domain/entity"
	"github.com/chrisx123456/WarehouseAppFrontend/internal/infrastructure/warehouse"
	"github.com/chrisx123456/WarehouseAppFrontend/pkg/config"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// recordedRequest última petición capturada por el backend falso.
type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Body   string
	Auth   string
}

// fakeBackend construye un backend falso que captura la petición y responde
// con el status y cuerpo indicados.
func fakeBackend(t *testing.T, status int, responseBody string, rec *recordedRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		*rec = recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Body:   string(raw),
			Auth:   r.Header.Get("Authorization"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(responseBody))
	}))
}

func newClient(baseURL string) *warehouse.Client {
	return warehouse.New(config.APIConfig{BaseURL: baseURL, TimeoutSeconds: 5})
}

// ──────────────────────────────────────────────────────────────────────────────
// Login y clasificación de errores
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_DevuelveToken(t *testing.T) {
	var rec recordedRequest
	srv := fakeBackend(t, http.StatusOK, `{"token":"t1"}`, &rec)
	defer srv.Close()

	token, err := newClient(srv.URL).Login(context.Background(), "a@b.com", "x")
	require.NoError(t, err)
	assert.Equal(t, "t1", token)

	assert.Equal(t, http.MethodPost, rec.Method)
	assert.Equal(t, "/Account/login", rec.Path)
	assert.Empty(t, rec.Auth, "el login no debe llevar Authorization")
	assert.JSONEq(t, `{"email":"a@b.com","password":"x"}`, rec.Body)
}

func TestLogin_CredencialesInvalidas_EsAuthFailure(t *testing.T) {
	var rec recordedRequest
	srv := fakeBackend(t, http.StatusUnauthorized, `{"Message":"bad credentials"}`, &rec)
	defer srv.Close()

	_, err := newClient(srv.URL).Login(context.Background(), "a@b.com", "wrong")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAuthFailure)
	assert.Contains(t, err.Error(), "bad credentials",
		"el mensaje del backend debe conservarse aunque venga con Message en mayúscula")
}

func TestRechazoDelServidor_MensajeVerbatim(t *testing.T) {
	var rec recordedRequest
	srv := fakeBackend(t, http.StatusConflict, `{"message":"category already exists"}`, &rec)
	defer srv.Close()

	err := newClient(srv.URL).CreateCategory(context.Background(), "t1", entity.Category{Name: "Food", VAT: 5})
	require.Error(t, err)

	var apiErr *warehouse.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "category already exists", apiErr.Message)
}

func TestBackendCaido_EsErrorDeRed(t *testing.T) {
	var rec recordedRequest
	srv := fakeBackend(t, http.StatusOK, `[]`, &rec)
	srv.Close() // cerrado a propósito: no hay respuesta

	_, err := newClient(srv.URL).ListCategories(context.Background(), "t1")
	assert.ErrorIs(t, err, domain.ErrNetwork)
}

func TestGetRole_NormalizaMayusculas(t *testing.T) {
	var rec recordedRequest
	srv := fakeBackend(t, http.StatusOK, `{"role":"Admin"}`, &rec)
	defer srv.Close()

	role, err := newClient(srv.URL).GetRole(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, role)
	assert.Equal(t, "Bearer t1", rec.Auth)
}

// ──────────────────────────────────────────────────────────────────────────────
// Forma de las peticiones de mutación
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateCategoryVAT_SoloElCampoCambiadoViaja(t *testing.T) {
	var rec recordedRequest
	srv := fakeBackend(t, http.StatusOK, ``, &rec)
	defer srv.Close()

	err := newClient(srv.URL).UpdateCategoryVAT(context.Background(), "t1", "Food", 23)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPatch, rec.Method)
	assert.Equal(t, "/Category/Food", rec.Path)
	assert.Equal(t, "newVat=23", rec.Query)
	assert.Empty(t, rec.Body, "el PATCH de VAT no lleva cuerpo, solo el query param")
}

func TestGeneratePendingSale_ImportesComoNumerosJSON(t *testing.T) {
	var rec recordedRequest
	srv := fakeBackend(t, http.StatusOK,
		`{"pendingSaleId":"p1","productPreviews":[{"ean":"12345678","quantity":2,"amountToBePaid":19.98,"profit":4.00}]}`,
		&rec)
	defer srv.Close()

	items := []entity.SaleItem{{ID: "l1", EAN: "12345678", Quantity: decimal.NewFromInt(2)}}
	pending, err := newClient(srv.URL).GeneratePendingSale(context.Background(), "t1", items)
	require.NoError(t, err)

	assert.Equal(t, "/Sale/GeneratePendingSales", rec.Path)
	assert.JSONEq(t, `{"items":[{"ean":"12345678","count":2}]}`, rec.Body,
		"count debe serializarse como número JSON y el id local no debe viajar")

	assert.Equal(t, "p1", pending.PendingSaleID)
	require.Len(t, pending.ProductPreviews, 1)
	assert.True(t, pending.ProductPreviews[0].AmountToBePaid.Equal(decimal.RequireFromString("19.98")))
}

func TestConfirmYReject_RutasVigentes(t *testing.T) {
	var rec recordedRequest
	srv := fakeBackend(t, http.StatusOK, ``, &rec)
	defer srv.Close()

	cl := newClient(srv.URL)

	require.NoError(t, cl.ConfirmPendingSale(context.Background(), "t1", "p1"))
	assert.Equal(t, http.MethodPost, rec.Method)
	assert.Equal(t, "/Sale/confirm/p1", rec.Path)

	require.NoError(t, cl.RejectPendingSale(context.Background(), "t1", "p1"))
	assert.Equal(t, http.MethodDelete, rec.Method)
	assert.Equal(t, "/Sale/reject/p1", rec.Path)
}

func TestListSales_FiltroOmiteCamposVacios(t *testing.T) {
	var rec recordedRequest
	srv := fakeBackend(t, http.StatusOK, `[]`, &rec)
	defer srv.Close()

	_, err := newClient(srv.URL).ListSales(context.Background(), "t1", warehouse.SaleFilter{
		StartDate:  "2026-01-01",
		SearchTerm: "aspirin",
	})
	require.NoError(t, err)

	assert.Equal(t, "/Sale", rec.Path)
	assert.Contains(t, rec.Query, "startDate=2026-01-01")
	assert.Contains(t, rec.Query, "searchTerm=aspirin")
	assert.NotContains(t, rec.Query, "endDate")
	assert.NotContains(t, rec.Query, "userId")
}

func TestSearchStock_CriterioInvalido_NoTocaLaRed(t *testing.T) {
	var rec recordedRequest
	srv := fakeBackend(t, http.StatusOK, `[]`, &rec)
	defer srv.Close()

	_, err := newClient(srv.URL).SearchStock(context.Background(), "t1", "color", "red")
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, rec.Method, "no debe llegar ninguna petición al backend")
}

func TestProductPatch_SoloCamposNoNilViajan(t *testing.T) {
	price := decimal.RequireFromString("9.99")
	patch := warehouse.ProductPatch{Price: &price}

	raw, err := json.Marshal(patch)
	require.NoError(t, err)
	assert.JSONEq(t, `{"price":9.99}`, string(raw))
	assert.False(t, patch.Empty())
	assert.True(t, warehouse.ProductPatch{}.Empty())
}
