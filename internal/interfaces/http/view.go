// Package http implementa la interfaz web renderizada en servidor: una
// página por vista, formularios clásicos y estado de sesión en cookie.
package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/shopspring/decimal"

	"github.com/chrisx123456/WarehouseAppFrontend/internal/domain/entity"
	"github.com/chrisx123456/WarehouseAppFrontend/pkg/money"
)

// Views construye el motor de plantillas con los helpers de presentación.
func Views(dir string) *html.Engine {
	engine := html.New(dir, ".html")
	engine.AddFunc("money", money.Format)
	engine.AddFunc("unit", func(u entity.UnitType) string { return u.String() })
	engine.AddFunc("fixed2", func(d decimal.Decimal) string { return d.StringFixed(2) })
	return engine
}

// viewData datos comunes a toda página autenticada. Los flags Can* son
// solo de presentación: deciden si el HTML incluye los controles de
// mutación, nunca sustituyen la autorización del backend.
type viewData struct {
	Title    string
	Email    string
	Role     entity.Role
	Currency string

	CanAdd    bool
	CanEdit   bool
	CanDelete bool

	// Error mensaje para el banner de la página; vacío si no hay.
	Error string

	// Data carga específica de cada vista.
	Data fiber.Map
}

func newViewData(title string, sess *entity.Session) viewData {
	return viewData{
		Title:     title,
		Email:     sess.Email,
		Role:      sess.Role,
		Currency:  sess.Currency,
		CanAdd:    entity.Capability(sess.Role, entity.ActionAdd),
		CanEdit:   entity.Capability(sess.Role, entity.ActionEdit),
		CanDelete: entity.Capability(sess.Role, entity.ActionDelete),
		Data:      fiber.Map{},
	}
}
