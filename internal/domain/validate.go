package domain

import (
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"
)

// Validaciones locales: bloquean la petición antes de tocar la red.
// La autorización y las reglas de negocio reales viven en el backend.

var (
	eanPattern          = regexp.MustCompile(`^(\d{8}|\d{13})$`)
	categoryNamePattern = regexp.MustCompile(`^[a-zA-Z]+$`)
	emailPattern        = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// Enteros o decimales con máximo dos cifras decimales, sin ceros a la izquierda.
	amountPattern = regexp.MustCompile(`^(?:0|[1-9]\d*)(?:\.\d{1,2})?$`)
)

// ValidateEAN exige exactamente 8 o 13 dígitos.
func ValidateEAN(ean string) error {
	if !eanPattern.MatchString(ean) {
		return fmt.Errorf("%w: EAN debe tener exactamente 8 o 13 dígitos", ErrValidation)
	}
	return nil
}

// ValidateVAT exige un entero entre 0 y 99.
func ValidateVAT(vat int) error {
	if vat < 0 || vat > 99 {
		return fmt.Errorf("%w: VAT debe estar entre 0 y 99", ErrValidation)
	}
	return nil
}

// ValidateCategoryName exige solo letras (regla heredada del backend).
func ValidateCategoryName(name string) error {
	if !categoryNamePattern.MatchString(name) {
		return fmt.Errorf("%w: el nombre de categoría solo admite letras", ErrValidation)
	}
	return nil
}

// ValidateEmail comprobación básica de formato.
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("%w: formato de email inválido", ErrValidation)
	}
	return nil
}

// ValidateAmount acepta cantidades y precios positivos con hasta dos decimales.
// El cero se rechaza: ni una venta ni una entrega de cero unidades tienen sentido.
func ValidateAmount(field, raw string) (decimal.Decimal, error) {
	if !amountPattern.MatchString(raw) {
		return decimal.Zero, fmt.Errorf("%w: %s debe ser un número positivo con máximo dos decimales", ErrValidation, field)
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: %s debe ser mayor que cero", ErrValidation, field)
	}
	return d, nil
}
