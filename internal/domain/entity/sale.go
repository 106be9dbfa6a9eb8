package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale venta confirmada: registro histórico inmutable.
type Sale struct {
	TradeName    string          `json:"tradeName"`
	EAN          string          `json:"ean"`
	Quantity     decimal.Decimal `json:"quantity"`
	AmountPaid   decimal.Decimal `json:"amountPaid"`
	Profit       decimal.Decimal `json:"profit"`
	DateSaled    time.Time       `json:"dateSaled"`
	Series       string          `json:"series"`
	UserFullName string          `json:"userFullName"`
}

// SaleItem línea de un borrador de venta. ID es local (uuid) para poder
// editar y eliminar líneas antes del envío; no viaja al backend.
type SaleItem struct {
	ID       string
	EAN      string
	Quantity decimal.Decimal
}

// ProductPreview línea del resumen calculado por el backend para una
// venta pendiente: asignación de partida, importe y beneficio.
type ProductPreview struct {
	EAN            string          `json:"ean"`
	Name           string          `json:"name"`
	TradeName      string          `json:"tradeName"`
	Series         string          `json:"series"`
	Quantity       decimal.Decimal `json:"quantity"`
	AmountToBePaid decimal.Decimal `json:"amountToBePaid"`
	Profit         decimal.Decimal `json:"profit"`
}

// PendingSale venta pendiente: existe solo entre el envío del borrador y
// el confirm/reject explícito. El reparto por partidas es opaco: se
// renderiza lo que el backend devuelva, sin asumir correspondencia 1:1
// con las líneas enviadas.
type PendingSale struct {
	PendingSaleID   string           `json:"pendingSaleId"`
	ProductPreviews []ProductPreview `json:"productPreviews"`
}

// Total suma de los importes del resumen.
func (p *PendingSale) Total() decimal.Decimal {
	total := decimal.Zero
	for _, pv := range p.ProductPreviews {
		total = total.Add(pv.AmountToBePaid)
	}
	return total
}
