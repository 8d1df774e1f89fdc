package dto

// RegisterSupplierRequest body para POST /api/suppliers.
type RegisterSupplierRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address,omitempty"`
}

// SupplierResponse representación de un proveedor en respuestas.
type SupplierResponse struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address,omitempty"`
}

// SupplierListResponse listado de proveedores en orden de registro.
type SupplierListResponse struct {
	Total int                `json:"total"`
	Items []SupplierResponse `json:"items"`
}
