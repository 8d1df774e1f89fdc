package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/almacen-api/internal/application/usecase"
)

// TransactionHandler expone el registro de transacciones (solo lectura).
type TransactionHandler struct {
	uc *usecase.InventoryUseCase
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(uc *usecase.InventoryUseCase) *TransactionHandler {
	return &TransactionHandler{uc: uc}
}

// List godoc
// @Summary      Listar el registro de transacciones
// @Description  Movimientos de stock (entradas y salidas) en orden
// @Description  cronológico. Las correcciones manuales no aparecen.
// @Tags         transactions
// @Produce      json
// @Success      200  {object}  dto.TransactionListResponse
// @Router       /api/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.ListTransactions())
}
