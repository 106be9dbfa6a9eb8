// Package money formatea importes en la moneda de presentación que
// reporta el backend (/Admin/currency). Solo presentación: los cálculos
// se hacen siempre sobre decimal.Decimal.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// El backend solo expone el código ISO de la moneda, no la configuración
// regional del usuario, así que el locale de presentación se fija en
// inglés (agrupación y símbolo estables para cualquier código).
var printer = message.NewPrinter(language.English)

// Format renderiza el importe con el símbolo de la moneda ISO 4217.
// Con un código desconocido degrada a "importe CÓDIGO" sin fallar.
func Format(amount decimal.Decimal, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return amount.StringFixed(2) + " " + code
	}
	value, _ := amount.Round(2).Float64()
	return printer.Sprintf("%v", currency.Symbol(unit.Amount(value)))
}
