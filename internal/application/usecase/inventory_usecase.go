package usecase

import (
	"sync"
	"time"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/warehouse"
	"github.com/tu-usuario/almacen-api/pkg/logger"
)

// InventoryUseCase expone el agregado Warehouse a la capa de transporte.
//
// El agregado en sí es monohilo; este wrapper serializa todo acceso
// concurrente: lock exclusivo en las cuatro mutaciones (las fusiones y
// los descuentos son secuencias read-modify-write), lock compartido en
// las consultas.
type InventoryUseCase struct {
	mu  sync.RWMutex
	wh  *warehouse.Warehouse
	log *logger.Logger
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(wh *warehouse.Warehouse, log *logger.Logger) *InventoryUseCase {
	return &InventoryUseCase{wh: wh, log: log}
}

// RegisterSupplier valida y registra un proveedor.
func (uc *InventoryUseCase) RegisterSupplier(in dto.RegisterSupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := entity.NewSupplier(in.Name, in.Email, in.Phone, in.Address)
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if err := uc.wh.AddSupplier(supplier); err != nil {
		return nil, err
	}
	uc.log.Info().Str("supplier", supplier.Name).Msg("proveedor registrado")
	return toSupplierResponse(supplier), nil
}

// ListSuppliers proveedores registrados en orden de registro.
func (uc *InventoryUseCase) ListSuppliers() *dto.SupplierListResponse {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	list := uc.wh.Suppliers()
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSupplierResponse(s))
	}
	return &dto.SupplierListResponse{Total: len(items), Items: items}
}

// RegisterReceipt valida el producto entrante y registra la entrada.
// Devuelve el estado del producto activo tras la recepción (fusionado
// si ya existía).
func (uc *InventoryUseCase) RegisterReceipt(in dto.ReceiptRequest) (*dto.ProductResponse, error) {
	var arrival time.Time
	if in.ArrivalDate != nil {
		arrival = *in.ArrivalDate
	}
	product, err := entity.NewProduct(in.Name, in.Quantity, in.Price, in.Supplier, arrival, in.Description)
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if err := uc.wh.AddProduct(product); err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("product", product.Name).
		Int("quantity", in.Quantity).
		Str("supplier", product.SupplierName).
		Msg("entrada registrada")
	return uc.activeProduct(product.Name), nil
}

// RegisterShipment registra una salida de mercancía.
func (uc *InventoryUseCase) RegisterShipment(productName string, in dto.ShipmentRequest) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if err := uc.wh.RemoveProduct(productName, in.Quantity); err != nil {
		return err
	}
	uc.log.Info().
		Str("product", productName).
		Int("quantity", in.Quantity).
		Msg("salida registrada")
	return nil
}

// UpdateProduct corrección manual de cantidad y/o precio. No genera
// transacción.
func (uc *InventoryUseCase) UpdateProduct(productName string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if err := uc.wh.UpdateProductInfo(productName, in.Quantity, in.Price); err != nil {
		return nil, err
	}
	return uc.activeProduct(productName), nil
}

// ListProducts productos activos. sortKey vacío = orden de primer
// registro; si no, orden ascendente por la clave dada.
func (uc *InventoryUseCase) ListProducts(sortKey string) (*dto.ProductListResponse, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	var (
		list []*entity.Product
		err  error
	)
	if sortKey == "" {
		list = uc.wh.Products()
	} else {
		list, err = uc.wh.ProductsSorted(warehouse.SortKey(sortKey))
		if err != nil {
			return nil, err
		}
	}
	return toProductListResponse(list), nil
}

// ListSupplierProducts productos activos del proveedor dado.
func (uc *InventoryUseCase) ListSupplierProducts(supplierName string) (*dto.ProductListResponse, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	list, err := uc.wh.SupplierProducts(supplierName)
	if err != nil {
		return nil, err
	}
	return toProductListResponse(list), nil
}

// ListTransactions registro completo de movimientos en orden
// cronológico.
func (uc *InventoryUseCase) ListTransactions() *dto.TransactionListResponse {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	list := uc.wh.Transactions()
	items := make([]dto.TransactionResponse, 0, len(list))
	for _, t := range list {
		items = append(items, dto.TransactionResponse{
			ID:       t.ID,
			Product:  t.ProductName,
			Quantity: t.Quantity,
			Type:     string(t.Type),
			Date:     t.Date,
		})
	}
	return &dto.TransactionListResponse{Total: len(items), Items: items}
}

// activeProduct estado actual del producto activo, o nil si fue dado de
// baja. Llamar con el lock tomado.
func (uc *InventoryUseCase) activeProduct(name string) *dto.ProductResponse {
	for _, p := range uc.wh.Products() {
		if p.Name == name {
			return toProductResponse(p)
		}
	}
	return nil
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		Name:    s.Name,
		Email:   s.Email,
		Phone:   s.Phone,
		Address: s.Address,
	}
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		Name:        p.Name,
		Quantity:    p.Quantity,
		Price:       p.Price,
		Supplier:    p.SupplierName,
		ArrivalDate: p.ArrivalDate,
		Description: p.Description,
	}
}

func toProductListResponse(list []*entity.Product) *dto.ProductListResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Total: len(items), Items: items}
}
