package warehouse

import (
	"context"
	"net/http"

	"github.com/chrisx123456/WarehouseAppFrontend/internal/domain/entity"
)

// ── Cuentas y sesión ──────────────────────────────────────────────────────────

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type roleResponse struct {
	Role string `json:"role"`
}

type currencyResponse struct {
	Currency string `json:"currency"`
}

// RegisterUserRequest alta de usuario (solo admin).
type RegisterUserRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	RoleName  string `json:"roleName"`
	Password  string `json:"password"`
}

// Login intercambia credenciales por un token bearer.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var out tokenResponse
	err := c.do(ctx, http.MethodPost, "/Account/login", "", loginRequest{Email: email, Password: password}, &out)
	if err != nil {
		return "", err
	}
	return out.Token, nil
}

// GetRole consulta el rol asociado al token. También sirve para revalidar
// un token persistido antes de confiar en él.
func (c *Client) GetRole(ctx context.Context, token string) (entity.Role, error) {
	var out roleResponse
	if err := c.do(ctx, http.MethodGet, "/Account/getrole", token, nil, &out); err != nil {
		return "", err
	}
	return entity.ParseRole(out.Role), nil
}

// GetCurrency consulta la moneda de presentación configurada en el backend.
func (c *Client) GetCurrency(ctx context.Context, token string) (string, error) {
	var out currencyResponse
	if err := c.do(ctx, http.MethodGet, "/Admin/currency", token, nil, &out); err != nil {
		return "", err
	}
	return out.Currency, nil
}

// OwnData datos del usuario autenticado.
func (c *Client) OwnData(ctx context.Context, token string) (*entity.User, error) {
	var out entity.User
	if err := c.do(ctx, http.MethodGet, "/Account/owndata", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListUsers lista todas las cuentas (vista de administración).
func (c *Client) ListUsers(ctx context.Context, token string) ([]entity.User, error) {
	var out []entity.User
	if err := c.do(ctx, http.MethodGet, "/Account", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RegisterUser registra una cuenta nueva.
func (c *Client) RegisterUser(ctx context.Context, token string, req RegisterUserRequest) error {
	return c.do(ctx, http.MethodPost, "/Account/register", token, req, nil)
}
