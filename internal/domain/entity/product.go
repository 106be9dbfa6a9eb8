package entity

import "github.com/shopspring/decimal"

// UnitType unidad de medida del producto. En el wire viaja como entero.
type UnitType int

const (
	UnitQt UnitType = 0 // unidades
	UnitKg UnitType = 1
	UnitL  UnitType = 2
)

// String etiqueta de presentación de la unidad.
func (u UnitType) String() string {
	switch u {
	case UnitQt:
		return "Qt"
	case UnitKg:
		return "Kg"
	case UnitL:
		return "L"
	default:
		return "?"
	}
}

// Valid indica si el valor corresponde a una unidad conocida.
func (u UnitType) Valid() bool {
	return u == UnitQt || u == UnitKg || u == UnitL
}

// Product producto del catálogo. EAN es la clave única (8 o 13 dígitos);
// ManufacturerName y CategoryName son claves foráneas por nombre.
type Product struct {
	EAN              string          `json:"ean"`
	Name             string          `json:"name"`
	TradeName        string          `json:"tradeName"`
	ManufacturerName string          `json:"manufacturerName"`
	CategoryName     string          `json:"categoryName"`
	UnitType         UnitType        `json:"unitType"`
	Price            decimal.Decimal `json:"price"`
	Description      string          `json:"description,omitempty"`
}
