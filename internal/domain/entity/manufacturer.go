package entity

// Manufacturer fabricante. Name es la clave única.
type Manufacturer struct {
	Name string `json:"name"`
}
