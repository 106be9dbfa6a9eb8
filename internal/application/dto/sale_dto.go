package dto

import "github.com/shopspring/decimal"

// SaleHistoryFilter filtros del historial de ventas; todos opcionales.
type SaleHistoryFilter struct {
	StartDate  string `form:"startDate" query:"startDate"`
	EndDate    string `form:"endDate" query:"endDate"`
	SearchTerm string `form:"searchTerm" query:"searchTerm"`
	UserID     string `form:"userId" query:"userId"`
}

// SalesStats estadísticas calculadas en cliente sobre el historial visible.
type SalesStats struct {
	TotalUnits   decimal.Decimal // suma de cantidades vendidas
	TotalRevenue decimal.Decimal // suma de importes cobrados
	AverageSale  decimal.Decimal // revenue / transacciones, 2 decimales
	Transactions int
}

// SaleItemForm línea del borrador de venta tal como llega del formulario.
type SaleItemForm struct {
	ID       string `form:"id"` // uuid local de la línea
	EAN      string `form:"ean"`
	Quantity string `form:"quantity"`
}
