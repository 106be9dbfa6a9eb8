package dto

// CreateProductRequest formulario de alta de producto. Price llega como
// texto y lo valida/parsea el caso de uso antes de tocar la red.
type CreateProductRequest struct {
	EAN              string `form:"ean"`
	Name             string `form:"name"`
	TradeName        string `form:"tradeName"`
	ManufacturerName string `form:"manufacturerName"`
	CategoryName     string `form:"categoryName"`
	UnitType         int    `form:"unitType"`
	Price            string `form:"price"`
	Description      string `form:"description"`
}

// UpdateProductRequest buffer de edición completo de un producto. El caso
// de uso lo compara contra la copia del servidor en caché y envía solo los
// campos que difieren (PATCH por diff).
type UpdateProductRequest struct {
	Name             string `form:"name"`
	TradeName        string `form:"tradeName"`
	ManufacturerName string `form:"manufacturerName"`
	CategoryName     string `form:"categoryName"`
	UnitType         int    `form:"unitType"`
	Price            string `form:"price"`
	Description      string `form:"description"`
}
