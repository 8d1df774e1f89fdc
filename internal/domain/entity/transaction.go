package entity

import (
	"fmt"
	"time"
)

// TransactionType tipo de movimiento de stock (value object conceptual).
type TransactionType string

// Tipos de transacción reconocidos.
const (
	TransactionReceipt  TransactionType = "receipt"  // entrada al almacén
	TransactionShipment TransactionType = "shipment" // salida del almacén
	TransactionTransfer TransactionType = "transfer" // entre almacenes (declarado, ninguna operación lo produce aún)
)

// Transaction registro inmutable de un movimiento de stock. La
// referencia al producto es su nombre en el momento del movimiento; el
// registro sobrevive aunque el producto sea dado de baja del almacén.
// Quantity es la magnitud del movimiento; que sea positiva es
// obligación de quien lo registra, no se valida aquí.
type Transaction struct {
	ID          string
	ProductName string
	Quantity    int
	Type        TransactionType
	Date        time.Time
}

// String representación legible para logs y listados.
func (t Transaction) String() string {
	return fmt.Sprintf("%s: %s - %d und. (%s)", t.Type, t.ProductName, t.Quantity, t.Date.Format("02.01.2006 15:04"))
}
