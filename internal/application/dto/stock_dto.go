package dto

// CreateDeliveryRequest formulario de alta de entrega (nueva partida).
// Cantidades y precio llegan como texto y se validan antes del envío.
type CreateDeliveryRequest struct {
	EAN                 string `form:"ean"`
	Series              string `form:"series"`
	Quantity            string `form:"quantity"`
	ExpirationDate      string `form:"expirationDate"` // vacío = sin caducidad
	StorageLocationCode string `form:"storageLocationCode"`
	PricePaid           string `form:"pricePaid"`
}

// StockSearchRequest búsqueda de partidas.
type StockSearchRequest struct {
	By   string `form:"by" query:"by"` // ean | series | date
	Term string `form:"term" query:"term"`
}
