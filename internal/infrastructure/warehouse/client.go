// Package warehouse implementa el cliente REST tipado contra el backend de
// almacén. Es el único punto del código que habla HTTP con el backend: un
// método por operación, con token bearer explícito y errores clasificados
// según la taxonomía de domain (auth, rechazo del servidor, red).
package warehouse

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/chrisx123456/WarehouseAppFrontend/internal/domain"
	"github.com/chrisx123456/WarehouseAppFrontend/pkg/config"
)

func init() {
	// El backend serializa importes como números JSON; sin esto decimal
	// los enviaría como strings y el backend los rechazaría.
	decimal.MarshalJSONWithoutQuotes = true
}

// APIError rechazo explícito del backend: respuesta no-2xx con cuerpo.
// Message se muestra al usuario tal cual llegó.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: el backend respondió %d sin detalles", e.Status)
	}
	return e.Message
}

// errorBody cuerpo de error del backend. Algunos endpoints devuelven
// "Message" con mayúscula (serialización manual en el backend); se aceptan
// ambas formas y se normaliza a una sola. La forma capitalizada se tolera
// como defecto del upstream, no se emula.
type errorBody struct {
	Message      string `json:"message"`
	MessageUpper string `json:"Message"`
}

func (b errorBody) text() string {
	if b.Message != "" {
		return b.Message
	}
	return b.MessageUpper
}

// Client cliente HTTP del backend de almacén.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New construye el cliente con el timeout configurado.
func New(cfg config.APIConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// do ejecuta una petición contra el backend. token vacío = llamada pública.
// body != nil se serializa como JSON; out != nil recibe el cuerpo 2xx.
func (c *Client) do(ctx context.Context, method, path, token string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: serializar cuerpo: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("api: crear request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("%w: petición cancelada: %v", domain.ErrNetwork, ctx.Err())
		}
		return fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20)) // max 1 MB
	if err != nil {
		return fmt.Errorf("%w: leer respuesta: %v", domain.ErrNetwork, err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil || len(rawBody) == 0 {
			return nil
		}
		if err := json.Unmarshal(rawBody, out); err != nil {
			return fmt.Errorf("api: parsear respuesta de %s %s: %w", method, path, err)
		}
		return nil
	}

	var eb errorBody
	_ = json.Unmarshal(rawBody, &eb) // cuerpo ilegible -> mensaje vacío

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		if eb.text() != "" {
			return fmt.Errorf("%w: %s", domain.ErrAuthFailure, eb.text())
		}
		return domain.ErrAuthFailure
	default:
		return &APIError{Status: resp.StatusCode, Message: eb.text()}
	}
}

// encodeQuery construye un query string a partir de pares clave/valor,
// omitiendo los valores vacíos.
func encodeQuery(pairs map[string]string) string {
	values := url.Values{}
	for k, v := range pairs {
		if v != "" {
			values.Set(k, v)
		}
	}
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}
