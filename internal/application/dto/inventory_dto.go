package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReceiptRequest body para POST /api/products (entrada de mercancía).
// ArrivalDate vacío = hora actual.
type ReceiptRequest struct {
	Name        string          `json:"name"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Supplier    string          `json:"supplier"`
	ArrivalDate *time.Time      `json:"arrival_date,omitempty"`
	Description string          `json:"description,omitempty"`
}

// ShipmentRequest body para POST /api/products/{name}/shipments
// (salida de mercancía).
type ShipmentRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateProductRequest body para PATCH /api/products/{name}. Los campos
// nil no se tocan.
type UpdateProductRequest struct {
	Quantity *int             `json:"quantity,omitempty"`
	Price    *decimal.Decimal `json:"price,omitempty"`
}

// ProductResponse representación de un producto activo en respuestas.
type ProductResponse struct {
	Name        string          `json:"name"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Supplier    string          `json:"supplier"`
	ArrivalDate time.Time       `json:"arrival_date"`
	Description string          `json:"description,omitempty"`
}

// ProductListResponse listado de productos activos.
type ProductListResponse struct {
	Total int               `json:"total"`
	Items []ProductResponse `json:"items"`
}

// TransactionResponse un movimiento del registro de transacciones.
type TransactionResponse struct {
	ID       string    `json:"id"`
	Product  string    `json:"product"`
	Quantity int       `json:"quantity"`
	Type     string    `json:"type"`
	Date     time.Time `json:"date"`
}

// TransactionListResponse registro completo en orden cronológico.
type TransactionListResponse struct {
	Total int                   `json:"total"`
	Items []TransactionResponse `json:"items"`
}
