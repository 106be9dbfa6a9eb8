package dto

// CreateCategoryRequest formulario de alta de categoría.
type CreateCategoryRequest struct {
	Name string `form:"name"`
	VAT  int    `form:"vat"`
}

// UpdateCategoryVATRequest edición en línea del VAT.
type UpdateCategoryVATRequest struct {
	Name   string `form:"name"`
	NewVAT int    `form:"vat"`
}
