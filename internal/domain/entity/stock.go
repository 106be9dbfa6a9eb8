package entity

import "github.com/shopspring/decimal"

// StockLot partida de stock: la cantidad de un producto recibida en una
// entrega, identificada por Series. Varias partidas comparten EAN.
type StockLot struct {
	TradeName           string          `json:"tradeName"`
	Series              string          `json:"series"`
	EAN                 string          `json:"ean"`
	Quantity            decimal.Decimal `json:"quantity"`
	ExpirationDate      string          `json:"expirationDate,omitempty"` // "2006-01-02"; vacío = sin caducidad
	StorageLocationCode string          `json:"storageLocationCode"`
	UnitType            UnitType        `json:"unitType"`
	PricePaid           decimal.Decimal `json:"pricePaid"`
}

// GroupedStock agrupación de partidas por EAN para la vista de stock
// (fila padre con total, filas hija expandibles por partida).
type GroupedStock struct {
	TradeName     string
	EAN           string
	TotalQuantity decimal.Decimal
	UnitType      UnitType
	Lots          []StockLot
}

// GroupStockByEAN agrupa las partidas conservando el orden de primera
// aparición de cada EAN.
func GroupStockByEAN(lots []StockLot) []GroupedStock {
	index := make(map[string]int)
	groups := make([]GroupedStock, 0)
	for _, lot := range lots {
		i, ok := index[lot.EAN]
		if !ok {
			i = len(groups)
			index[lot.EAN] = i
			groups = append(groups, GroupedStock{
				TradeName: lot.TradeName,
				EAN:       lot.EAN,
				UnitType:  lot.UnitType,
			})
		}
		groups[i].TotalQuantity = groups[i].TotalQuantity.Add(lot.Quantity)
		groups[i].Lots = append(groups[i].Lots, lot)
	}
	return groups
}
