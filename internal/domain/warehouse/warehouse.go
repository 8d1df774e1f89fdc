// Package warehouse contiene el agregado raíz del dominio: un almacén
// en memoria que posee proveedores, productos y el registro de
// transacciones, y hace cumplir los invariantes entre ellos.
//
// El agregado es monohilo: no serializa acceso concurrente. El wrapper
// de aplicación (usecase.InventoryUseCase) es quien pone el lock.
package warehouse

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// Warehouse agregado raíz. Los mapas dan acceso por clave; los slices
// de orden preservan el orden de primer registro (los mapas de Go no
// tienen orden).
type Warehouse struct {
	name          string
	products      map[string]*entity.Product
	productOrder  []string
	suppliers     map[string]*entity.Supplier
	supplierOrder []string
	transactions  []entity.Transaction
}

// New crea un almacén vacío.
func New(name string) *Warehouse {
	return &Warehouse{
		name:      name,
		products:  make(map[string]*entity.Product),
		suppliers: make(map[string]*entity.Supplier),
	}
}

// Name nombre del almacén.
func (w *Warehouse) Name() string { return w.name }

// AddSupplier registra un proveedor. El nombre es la clave única.
// No genera transacción: el registro de proveedores no mueve stock.
func (w *Warehouse) AddSupplier(s *entity.Supplier) error {
	if _, ok := w.suppliers[s.Name]; ok {
		return fmt.Errorf("%w: ya existe un proveedor con el nombre '%s'", domain.ErrDuplicate, s.Name)
	}
	w.suppliers[s.Name] = s
	w.supplierOrder = append(w.supplierOrder, s.Name)
	return nil
}

// AddProduct registra una entrada de mercancía (recepción).
//
// Si ya existe un producto activo con el mismo nombre, fusiona: suma la
// cantidad entrante a la existente y reemplaza el precio por el
// entrante. Si no, inserta el producto como entrada nueva. En ambos
// casos queda registrada exactamente una transacción de entrada con la
// cantidad ENTRANTE (no el total fusionado).
func (w *Warehouse) AddProduct(p *entity.Product) error {
	if _, ok := w.suppliers[p.SupplierName]; !ok {
		return fmt.Errorf("%w: el proveedor '%s' no está registrado", domain.ErrNotFound, p.SupplierName)
	}

	if existing, ok := w.products[p.Name]; ok {
		existing.Quantity += p.Quantity
		if err := existing.UpdatePrice(p.Price); err != nil {
			return err
		}
	} else {
		w.products[p.Name] = p
		w.productOrder = append(w.productOrder, p.Name)
	}

	w.appendTransaction(p.Name, p.Quantity, entity.TransactionReceipt)
	return nil
}

// RemoveProduct registra una salida de mercancía (despacho).
//
// Si la cantidad despachada deja el stock exactamente en cero, el
// producto se da de baja del conjunto activo: deja de aparecer en las
// consultas, aunque sus transacciones siguen en el registro. Volver a
// recibirlo después crea una entrada nueva, sin historial previo.
func (w *Warehouse) RemoveProduct(productName string, quantity int) error {
	product, ok := w.products[productName]
	if !ok {
		return fmt.Errorf("%w: el producto '%s' no se encuentra en el almacén", domain.ErrNotFound, productName)
	}
	if quantity > product.Quantity {
		return fmt.Errorf("%w: disponible %d und. de '%s'", domain.ErrInsufficientStock, product.Quantity, productName)
	}

	if err := product.UpdateQuantity(product.Quantity - quantity); err != nil {
		return err
	}

	w.appendTransaction(productName, quantity, entity.TransactionShipment)

	if product.Quantity == 0 {
		delete(w.products, productName)
		w.dropFromOrder(productName)
	}
	return nil
}

// UpdateProductInfo corrección manual de cantidad y/o precio. nil deja
// el campo como está. A diferencia de las recepciones y despachos, una
// corrección manual NO genera transacción: el registro solo refleja
// movimientos reales de mercancía.
func (w *Warehouse) UpdateProductInfo(productName string, newQuantity *int, newPrice *decimal.Decimal) error {
	product, ok := w.products[productName]
	if !ok {
		return fmt.Errorf("%w: el producto '%s' no se encuentra en el almacén", domain.ErrNotFound, productName)
	}
	if newQuantity != nil {
		if err := product.UpdateQuantity(*newQuantity); err != nil {
			return err
		}
	}
	if newPrice != nil {
		if err := product.UpdatePrice(*newPrice); err != nil {
			return err
		}
	}
	return nil
}

// Products productos activos en orden de primer registro. La fusión de
// recepciones no reordena.
func (w *Warehouse) Products() []*entity.Product {
	out := make([]*entity.Product, 0, len(w.productOrder))
	for _, name := range w.productOrder {
		out = append(out, w.products[name])
	}
	return out
}

// SupplierProducts productos activos del proveedor dado, en orden de
// primer registro.
func (w *Warehouse) SupplierProducts(supplierName string) ([]*entity.Product, error) {
	if _, ok := w.suppliers[supplierName]; !ok {
		return nil, fmt.Errorf("%w: el proveedor '%s' no se encuentra", domain.ErrNotFound, supplierName)
	}
	out := make([]*entity.Product, 0)
	for _, name := range w.productOrder {
		if p := w.products[name]; p.SupplierName == supplierName {
			out = append(out, p)
		}
	}
	return out, nil
}

// Suppliers proveedores registrados en orden de registro.
func (w *Warehouse) Suppliers() []*entity.Supplier {
	out := make([]*entity.Supplier, 0, len(w.supplierOrder))
	for _, name := range w.supplierOrder {
		out = append(out, w.suppliers[name])
	}
	return out
}

// Transactions registro de transacciones en orden cronológico de
// inserción. Devuelve una copia: el registro es de solo lectura y solo
// crece por las mutaciones del agregado.
func (w *Warehouse) Transactions() []entity.Transaction {
	out := make([]entity.Transaction, len(w.transactions))
	copy(out, w.transactions)
	return out
}

func (w *Warehouse) appendTransaction(productName string, quantity int, typ entity.TransactionType) {
	w.transactions = append(w.transactions, entity.Transaction{
		ID:          uuid.New().String(),
		ProductName: productName,
		Quantity:    quantity,
		Type:        typ,
		Date:        time.Now(),
	})
}

func (w *Warehouse) dropFromOrder(productName string) {
	for i, name := range w.productOrder {
		if name == productName {
			w.productOrder = append(w.productOrder[:i], w.productOrder[i+1:]...)
			return
		}
	}
}
