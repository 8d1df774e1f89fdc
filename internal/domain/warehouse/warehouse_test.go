package warehouse_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/warehouse"
)

func newSupplier(t *testing.T, name string) *entity.Supplier {
	t.Helper()
	s, err := entity.NewSupplier(name, "ventas@acme.co", "+12345678901", "Calle 1")
	require.NoError(t, err)
	return s
}

func newProduct(t *testing.T, name string, quantity int, price float64, supplier string) *entity.Product {
	t.Helper()
	p, err := entity.NewProduct(name, quantity, decimal.NewFromFloat(price), supplier, time.Time{}, "")
	require.NoError(t, err)
	return p
}

// newWarehouse almacén con el proveedor "Acme" ya registrado.
func newWarehouse(t *testing.T) *warehouse.Warehouse {
	t.Helper()
	w := warehouse.New("Central")
	require.NoError(t, w.AddSupplier(newSupplier(t, "Acme")))
	return w
}

func productNames(list []*entity.Product) []string {
	names := make([]string, 0, len(list))
	for _, p := range list {
		names = append(names, p.Name)
	}
	return names
}

func TestAddSupplier_Duplicado(t *testing.T) {
	w := newWarehouse(t)
	err := w.AddSupplier(newSupplier(t, "Acme"))
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Len(t, w.Suppliers(), 1)
}

func TestAddSupplier_NoGeneraTransaccion(t *testing.T) {
	w := newWarehouse(t)
	assert.Empty(t, w.Transactions())
}

func TestAddProduct_ProveedorNoRegistrado(t *testing.T) {
	w := newWarehouse(t)
	err := w.AddProduct(newProduct(t, "Tornillos", 10, 5.0, "Desconocido"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, w.Products(), "un rechazo no debe tocar el conjunto activo")
	assert.Empty(t, w.Transactions())
}

func TestAddProduct_Nuevo(t *testing.T) {
	w := newWarehouse(t)
	require.NoError(t, w.AddProduct(newProduct(t, "Tornillos", 10, 5.0, "Acme")))

	list := w.Products()
	require.Len(t, list, 1)
	assert.Equal(t, 10, list[0].Quantity)

	txs := w.Transactions()
	require.Len(t, txs, 1)
	assert.Equal(t, entity.TransactionReceipt, txs[0].Type)
	assert.Equal(t, "Tornillos", txs[0].ProductName)
	assert.Equal(t, 10, txs[0].Quantity)
	assert.NotEmpty(t, txs[0].ID)
}

func TestAddProduct_FusionaPorNombre(t *testing.T) {
	w := newWarehouse(t)
	require.NoError(t, w.AddProduct(newProduct(t, "Tornillos", 10, 5.0, "Acme")))
	require.NoError(t, w.AddProduct(newProduct(t, "Tornillos", 5, 6.0, "Acme")))

	list := w.Products()
	require.Len(t, list, 1, "la fusión no debe crear una segunda entrada")
	assert.Equal(t, 15, list[0].Quantity, "la cantidad entrante se suma")
	assert.True(t, list[0].Price.Equal(decimal.NewFromFloat(6.0)), "el precio se reemplaza por el entrante")

	// Dos entradas en el registro, cada una con su cantidad ENTRANTE.
	txs := w.Transactions()
	require.Len(t, txs, 2)
	assert.Equal(t, 10, txs[0].Quantity)
	assert.Equal(t, 5, txs[1].Quantity)
	for _, tx := range txs {
		assert.Equal(t, entity.TransactionReceipt, tx.Type)
	}
}

func TestRemoveProduct_NoEncontrado(t *testing.T) {
	w := newWarehouse(t)
	err := w.RemoveProduct("Tornillos", 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRemoveProduct_Parcial(t *testing.T) {
	w := newWarehouse(t)
	require.NoError(t, w.AddProduct(newProduct(t, "Tornillos", 10, 5.0, "Acme")))
	require.NoError(t, w.RemoveProduct("Tornillos", 4))

	list := w.Products()
	require.Len(t, list, 1, "con stock restante el producto sigue activo")
	assert.Equal(t, 6, list[0].Quantity)

	txs := w.Transactions()
	require.Len(t, txs, 2)
	assert.Equal(t, entity.TransactionShipment, txs[1].Type)
	assert.Equal(t, 4, txs[1].Quantity, "la salida registra la cantidad solicitada, no el restante")
}

func TestRemoveProduct_TotalDaDeBaja(t *testing.T) {
	w := newWarehouse(t)
	require.NoError(t, w.AddProduct(newProduct(t, "Tornillos", 10, 5.0, "Acme")))
	require.NoError(t, w.AddProduct(newProduct(t, "Tornillos", 5, 6.0, "Acme")))

	require.NoError(t, w.RemoveProduct("Tornillos", 15))

	assert.Empty(t, w.Products(), "stock cero = baja del conjunto activo")

	// El historial de transacciones sobrevive a la baja.
	txs := w.Transactions()
	require.Len(t, txs, 3)
	assert.Equal(t, entity.TransactionShipment, txs[2].Type)
	assert.Equal(t, 15, txs[2].Quantity)
}

func TestRemoveProduct_StockInsuficiente(t *testing.T) {
	w := newWarehouse(t)
	require.NoError(t, w.AddProduct(newProduct(t, "Tornillos", 15, 5.0, "Acme")))

	err := w.RemoveProduct("Tornillos", 20)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "15", "el error debe informar la cantidad disponible")

	list := w.Products()
	require.Len(t, list, 1)
	assert.Equal(t, 15, list[0].Quantity, "un rechazo no debe tocar el stock")
	assert.Len(t, w.Transactions(), 1, "un rechazo no debe registrar transacción")
}

func TestRemoveProduct_ReciboPosteriorEsEntradaNueva(t *testing.T) {
	w := newWarehouse(t)
	require.NoError(t, w.AddProduct(newProduct(t, "Tornillos", 10, 5.0, "Acme")))
	require.NoError(t, w.AddProduct(newProduct(t, "Clavos", 20, 2.0, "Acme")))
	require.NoError(t, w.RemoveProduct("Tornillos", 10))

	// Re-recibir tras la baja crea una entrada fresca, al final del orden.
	require.NoError(t, w.AddProduct(newProduct(t, "Tornillos", 3, 4.0, "Acme")))

	assert.Equal(t, []string{"Clavos", "Tornillos"}, productNames(w.Products()))
	assert.Equal(t, 3, w.Products()[1].Quantity, "sin resurrección del stock anterior")
}

func TestUpdateProductInfo(t *testing.T) {
	w := newWarehouse(t)
	require.NoError(t, w.AddProduct(newProduct(t, "Tornillos", 10, 5.0, "Acme")))

	qty := 8
	price := decimal.NewFromFloat(9.90)
	require.NoError(t, w.UpdateProductInfo("Tornillos", &qty, &price))

	p := w.Products()[0]
	assert.Equal(t, 8, p.Quantity)
	assert.True(t, p.Price.Equal(price))

	// Las correcciones manuales son silenciosas para el registro.
	assert.Len(t, w.Transactions(), 1)
}

func TestUpdateProductInfo_CamposNilNoSeTocan(t *testing.T) {
	w := newWarehouse(t)
	require.NoError(t, w.AddProduct(newProduct(t, "Tornillos", 10, 5.0, "Acme")))

	price := decimal.NewFromInt(7)
	require.NoError(t, w.UpdateProductInfo("Tornillos", nil, &price))

	p := w.Products()[0]
	assert.Equal(t, 10, p.Quantity)
	assert.True(t, p.Price.Equal(price))
}

func TestUpdateProductInfo_Errores(t *testing.T) {
	w := newWarehouse(t)
	require.NoError(t, w.AddProduct(newProduct(t, "Tornillos", 10, 5.0, "Acme")))

	err := w.UpdateProductInfo("Clavos", nil, nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	bad := -1
	err = w.UpdateProductInfo("Tornillos", &bad, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 10, w.Products()[0].Quantity)

	badPrice := decimal.Zero
	err = w.UpdateProductInfo("Tornillos", nil, &badPrice)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProducts_OrdenDePrimerRegistro(t *testing.T) {
	w := newWarehouse(t)
	require.NoError(t, w.AddProduct(newProduct(t, "Tornillos", 10, 5.0, "Acme")))
	require.NoError(t, w.AddProduct(newProduct(t, "Clavos", 20, 2.0, "Acme")))
	require.NoError(t, w.AddProduct(newProduct(t, "Arandelas", 30, 1.0, "Acme")))

	// Una fusión no reordena.
	require.NoError(t, w.AddProduct(newProduct(t, "Tornillos", 1, 5.0, "Acme")))

	assert.Equal(t, []string{"Tornillos", "Clavos", "Arandelas"}, productNames(w.Products()))
}

func TestProductsSorted(t *testing.T) {
	w := newWarehouse(t)
	require.NoError(t, w.AddProduct(newProduct(t, "Tornillos", 10, 5.0, "Acme")))
	require.NoError(t, w.AddProduct(newProduct(t, "Clavos", 30, 2.0, "Acme")))
	require.NoError(t, w.AddProduct(newProduct(t, "Arandelas", 20, 8.0, "Acme")))

	byName, err := w.ProductsSorted(warehouse.SortByName)
	require.NoError(t, err)
	assert.Equal(t, []string{"Arandelas", "Clavos", "Tornillos"}, productNames(byName))

	byQuantity, err := w.ProductsSorted(warehouse.SortByQuantity)
	require.NoError(t, err)
	assert.Equal(t, []string{"Tornillos", "Arandelas", "Clavos"}, productNames(byQuantity))

	byPrice, err := w.ProductsSorted(warehouse.SortByPrice)
	require.NoError(t, err)
	assert.Equal(t, []string{"Clavos", "Tornillos", "Arandelas"}, productNames(byPrice))
	for i := 1; i < len(byPrice); i++ {
		assert.False(t, byPrice[i].Price.LessThan(byPrice[i-1].Price))
	}

	// Ordenar no toca el orden base.
	assert.Equal(t, []string{"Tornillos", "Clavos", "Arandelas"}, productNames(w.Products()))
}

func TestProductsSorted_ClaveInvalida(t *testing.T) {
	w := newWarehouse(t)
	_, err := w.ProductsSorted(warehouse.SortKey("color"))
	assert.ErrorIs(t, err, domain.ErrInvalidSortKey)
}

func TestSupplierProducts(t *testing.T) {
	w := newWarehouse(t)
	other, err := entity.NewSupplier("Bodega Sur", "sur@b.co", "3001234567890", "Calle 2")
	require.NoError(t, err)
	require.NoError(t, w.AddSupplier(other))

	require.NoError(t, w.AddProduct(newProduct(t, "Tornillos", 10, 5.0, "Acme")))
	require.NoError(t, w.AddProduct(newProduct(t, "Clavos", 20, 2.0, "Bodega Sur")))
	require.NoError(t, w.AddProduct(newProduct(t, "Arandelas", 30, 1.0, "Acme")))

	list, err := w.SupplierProducts("Acme")
	require.NoError(t, err)
	assert.Equal(t, []string{"Tornillos", "Arandelas"}, productNames(list))

	sur, err := w.SupplierProducts("Bodega Sur")
	require.NoError(t, err)
	assert.Equal(t, []string{"Clavos"}, productNames(sur))
}

func TestSupplierProducts_NoEncontrado(t *testing.T) {
	w := newWarehouse(t)
	_, err := w.SupplierProducts("Desconocido")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSuppliers_OrdenDeRegistro(t *testing.T) {
	w := warehouse.New("Central")
	for _, name := range []string{"Zeta", "Acme", "Norte"} {
		s, err := entity.NewSupplier(name, "v@a.co", "1234567890", "")
		require.NoError(t, err)
		require.NoError(t, w.AddSupplier(s))
	}
	var names []string
	for _, s := range w.Suppliers() {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"Zeta", "Acme", "Norte"}, names)
}

func TestTransactions_DevuelveCopia(t *testing.T) {
	w := newWarehouse(t)
	require.NoError(t, w.AddProduct(newProduct(t, "Tornillos", 10, 5.0, "Acme")))

	txs := w.Transactions()
	txs[0].Quantity = 999

	assert.Equal(t, 10, w.Transactions()[0].Quantity)
}
