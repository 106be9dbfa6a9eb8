package entity

// Category categoría de producto. Name es la clave única; VAT es un
// porcentaje entero 0..99.
type Category struct {
	Name string `json:"name"`
	VAT  int    `json:"vat"`
}
