package orders

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/tienda-ropa-api/internal/application/dto"
	"github.com/tu-usuario/tienda-ropa-api/internal/domain"
	"github.com/tu-usuario/tienda-ropa-api/internal/domain/entity"
	"github.com/tu-usuario/tienda-ropa-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
//
// memStore simula la base de datos; memTxRunner simula la transacción tomando
// un snapshot del estado y restaurándolo si fn falla (Rollback). Así los tests
// verifican la atomicidad observable sin PostgreSQL.
// ──────────────────────────────────────────────────────────────────────────────

var errStorage = errors.New("fallo de almacenamiento simulado")

type memStore struct {
	products      map[string]*entity.Product
	importHeaders []entity.ImportOrder
	importLines   []entity.ImportOrderLine
	salesHeaders  []entity.SalesOrder
	salesLines    []entity.SalesOrderLine

	// failSalesLineAt hace fallar el insert de la línea de venta N (base 1).
	failSalesLineAt int
}

func newMemStore(products ...*entity.Product) *memStore {
	s := &memStore{products: make(map[string]*entity.Product)}
	for _, p := range products {
		cp := *p
		s.products[p.ID] = &cp
	}
	return s
}

func (s *memStore) clone() *memStore {
	cp := &memStore{
		products:        make(map[string]*entity.Product, len(s.products)),
		importHeaders:   append([]entity.ImportOrder(nil), s.importHeaders...),
		importLines:     append([]entity.ImportOrderLine(nil), s.importLines...),
		salesHeaders:    append([]entity.SalesOrder(nil), s.salesHeaders...),
		salesLines:      append([]entity.SalesOrderLine(nil), s.salesLines...),
		failSalesLineAt: s.failSalesLineAt,
	}
	for id, p := range s.products {
		pc := *p
		cp.products[id] = &pc
	}
	return cp
}

type memTxRunner struct {
	store *memStore
}

func (r *memTxRunner) Run(_ context.Context, fn func(
	importRepo repository.ImportOrderRepository,
	salesRepo repository.SalesOrderRepository,
	productRepo repository.ProductRepository,
) error) error {
	snapshot := r.store.clone()
	err := fn(&memImportRepo{s: r.store}, &memSalesRepo{s: r.store}, &memProductRepo{s: r.store})
	if err != nil {
		*r.store = *snapshot // rollback
		return err
	}
	return nil
}

type memImportRepo struct{ s *memStore }

func (r *memImportRepo) CreateHeader(_ context.Context, o *entity.ImportOrder) error {
	r.s.importHeaders = append(r.s.importHeaders, *o)
	return nil
}

func (r *memImportRepo) CreateLine(_ context.Context, l *entity.ImportOrderLine) error {
	r.s.importLines = append(r.s.importLines, *l)
	return nil
}

func (r *memImportRepo) List(context.Context, int, int) ([]*repository.ImportOrderSummary, error) {
	return nil, nil
}
func (r *memImportRepo) Count(context.Context) (int, error) { return len(r.s.importHeaders), nil }

type memSalesRepo struct{ s *memStore }

func (r *memSalesRepo) CreateHeader(_ context.Context, o *entity.SalesOrder) error {
	r.s.salesHeaders = append(r.s.salesHeaders, *o)
	return nil
}

func (r *memSalesRepo) CreateLine(_ context.Context, l *entity.SalesOrderLine) error {
	if r.s.failSalesLineAt > 0 && len(r.s.salesLines)+1 == r.s.failSalesLineAt {
		return errStorage
	}
	r.s.salesLines = append(r.s.salesLines, *l)
	return nil
}

func (r *memSalesRepo) List(context.Context, int, int) ([]*repository.SalesOrderSummary, error) {
	return nil, nil
}
func (r *memSalesRepo) Count(context.Context) (int, error) { return len(r.s.salesHeaders), nil }

type memProductRepo struct{ s *memStore }

func (r *memProductRepo) Create(_ context.Context, p *entity.Product) error {
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) Update(_ context.Context, p *entity.Product) error {
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) List(context.Context, string, int, int) ([]*entity.Product, error) {
	return nil, nil
}
func (r *memProductRepo) Count(context.Context, string) (int, error) { return len(r.s.products), nil }
func (r *memProductRepo) Delete(_ context.Context, id string) error {
	delete(r.s.products, id)
	return nil
}

func (r *memProductRepo) GetStock(_ context.Context, productID string) (int, error) {
	p, ok := r.s.products[productID]
	if !ok {
		return 0, domain.ErrNotFound
	}
	return p.Stock, nil
}

func (r *memProductRepo) AddStock(_ context.Context, productID string, quantity int, unitCost decimal.Decimal) error {
	p, ok := r.s.products[productID]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock += quantity
	p.LastCost = unitCost
	return nil
}

func (r *memProductRepo) RemoveStock(_ context.Context, productID string, quantity int, unitPrice decimal.Decimal) error {
	p, ok := r.s.products[productID]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock -= quantity
	p.UnitsSold += quantity
	p.SalePrice = unitPrice
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func producto(id string, stock, sold int, lastCost, salePrice int64) *entity.Product {
	return &entity.Product{
		ID:        id,
		Name:      "Camiseta básica",
		Size:      "M",
		Stock:     stock,
		UnitsSold: sold,
		LastCost:  decimal.NewFromInt(lastCost),
		SalePrice: decimal.NewFromInt(salePrice),
	}
}

func dec(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

// ──────────────────────────────────────────────────────────────────────────────
// Ventas
// ──────────────────────────────────────────────────────────────────────────────

// Venta exitosa: P {stock:20, sold:0, price:100}, línea {qty:5, precio:120} →
// orden creada con total 600 y P queda {stock:15, sold:5, price:120}.
func TestCreateSalesOrder_VentaExitosa(t *testing.T) {
	store := newMemStore(producto("P1", 20, 0, 80, 100))
	uc := NewCreateSalesOrderUseCase(&memTxRunner{store: store})

	orderID, err := uc.Execute(context.Background(), dto.CreateSalesOrderRequest{
		Label:    "Venta mostrador",
		SaleDate: time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
		Lines: []dto.SalesLineRequest{
			{ProductID: "P1", Quantity: 5, UnitPrice: dec(120)},
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, orderID)

	require.Len(t, store.salesHeaders, 1)
	header := store.salesHeaders[0]
	assert.Equal(t, orderID, header.ID)
	assert.True(t, header.Total.Equal(dec(600)), "total debe ser 5×120=600, fue %s", header.Total)

	require.Len(t, store.salesLines, 1)
	assert.Equal(t, orderID, store.salesLines[0].OrderID)
	assert.True(t, store.salesLines[0].Amount().Equal(dec(600)), "monto de línea = qty × precio")

	p := store.products["P1"]
	assert.Equal(t, 15, p.Stock)
	assert.Equal(t, 5, p.UnitsSold)
	assert.True(t, p.SalePrice.Equal(dec(120)), "el precio de venta se sobrescribe con el de la línea")
}

// Venta fallida por stock: P {stock:3}, línea {qty:5} → InsufficientStockError,
// sin filas creadas y stock intacto.
func TestCreateSalesOrder_StockInsuficiente(t *testing.T) {
	store := newMemStore(producto("P1", 3, 7, 80, 100))
	uc := NewCreateSalesOrderUseCase(&memTxRunner{store: store})

	_, err := uc.Execute(context.Background(), dto.CreateSalesOrderRequest{
		SaleDate: time.Now(),
		Lines: []dto.SalesLineRequest{
			{ProductID: "P1", Quantity: 5, UnitPrice: dec(100)},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "P1", stockErr.ProductID)
	assert.Equal(t, 5, stockErr.Requested)
	assert.Equal(t, 3, stockErr.Available)

	assert.Empty(t, store.salesHeaders, "no debe quedar cabecera")
	assert.Empty(t, store.salesLines, "no deben quedar líneas")
	assert.Equal(t, 3, store.products["P1"].Stock)
	assert.Equal(t, 7, store.products["P1"].UnitsSold)
}

// Dependencia secuencial dentro de la orden: P con stock 5 y dos líneas de 3.
// La segunda línea se valida contra el stock ya descontado (2), no contra el
// snapshot inicial: la orden completa falla y el stock vuelve a 5.
func TestCreateSalesOrder_DosLineasMismoProducto(t *testing.T) {
	store := newMemStore(producto("P1", 5, 0, 80, 100))
	uc := NewCreateSalesOrderUseCase(&memTxRunner{store: store})

	_, err := uc.Execute(context.Background(), dto.CreateSalesOrderRequest{
		SaleDate: time.Now(),
		Lines: []dto.SalesLineRequest{
			{ProductID: "P1", Quantity: 3, UnitPrice: dec(100)},
			{ProductID: "P1", Quantity: 3, UnitPrice: dec(100)},
		},
	})
	require.Error(t, err)

	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 3, stockErr.Requested)
	assert.Equal(t, 2, stockErr.Available, "la segunda línea ve el stock restante, no el original")

	assert.Equal(t, 5, store.products["P1"].Stock, "rollback: el descuento de la primera línea se deshace")
	assert.Equal(t, 0, store.products["P1"].UnitsSold)
	assert.Empty(t, store.salesHeaders)
	assert.Empty(t, store.salesLines)
}

// El total de la cabecera es exactamente Σ(qty × precio) de las líneas del request.
func TestCreateSalesOrder_TotalDerivado(t *testing.T) {
	store := newMemStore(
		producto("P1", 100, 0, 80, 100),
		producto("P2", 100, 0, 90, 150),
	)
	uc := NewCreateSalesOrderUseCase(&memTxRunner{store: store})

	_, err := uc.Execute(context.Background(), dto.CreateSalesOrderRequest{
		SaleDate: time.Now(),
		Lines: []dto.SalesLineRequest{
			{ProductID: "P1", Quantity: 3, UnitPrice: decimal.RequireFromString("99.99")},
			{ProductID: "P2", Quantity: 2, UnitPrice: decimal.RequireFromString("150.50")},
		},
	})
	require.NoError(t, err)

	require.Len(t, store.salesHeaders, 1)
	want := decimal.RequireFromString("600.97") // 3×99.99 + 2×150.50
	assert.True(t, store.salesHeaders[0].Total.Equal(want),
		"total %s, esperado %s", store.salesHeaders[0].Total, want)
}

// Atomicidad ante fallo de almacenamiento: si el insert de la línea 2 de 3
// falla, no queda cabecera, ni líneas, ni cambio alguno en el inventario.
func TestCreateSalesOrder_RollbackEnLineaIntermedia(t *testing.T) {
	store := newMemStore(
		producto("P1", 50, 10, 80, 100),
		producto("P2", 40, 5, 60, 90),
	)
	store.failSalesLineAt = 2
	uc := NewCreateSalesOrderUseCase(&memTxRunner{store: store})

	_, err := uc.Execute(context.Background(), dto.CreateSalesOrderRequest{
		SaleDate: time.Now(),
		Lines: []dto.SalesLineRequest{
			{ProductID: "P1", Quantity: 5, UnitPrice: dec(100)},
			{ProductID: "P2", Quantity: 5, UnitPrice: dec(90)},
			{ProductID: "P1", Quantity: 1, UnitPrice: dec(100)},
		},
	})
	require.ErrorIs(t, err, errStorage)

	assert.Empty(t, store.salesHeaders)
	assert.Empty(t, store.salesLines)
	p1, p2 := store.products["P1"], store.products["P2"]
	assert.Equal(t, 50, p1.Stock)
	assert.Equal(t, 10, p1.UnitsSold)
	assert.Equal(t, 40, p2.Stock)
	assert.Equal(t, 5, p2.UnitsSold)
}

// Producto inexistente en una línea → ErrNotFound y rollback completo.
func TestCreateSalesOrder_ProductoInexistente(t *testing.T) {
	store := newMemStore(producto("P1", 50, 0, 80, 100))
	uc := NewCreateSalesOrderUseCase(&memTxRunner{store: store})

	_, err := uc.Execute(context.Background(), dto.CreateSalesOrderRequest{
		SaleDate: time.Now(),
		Lines: []dto.SalesLineRequest{
			{ProductID: "P1", Quantity: 5, UnitPrice: dec(100)},
			{ProductID: "NO-EXISTE", Quantity: 1, UnitPrice: dec(100)},
		},
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 50, store.products["P1"].Stock)
	assert.Empty(t, store.salesHeaders)
}

// Requests malformados fallan en validación, antes de tocar el almacenamiento.
func TestCreateSalesOrder_Validacion(t *testing.T) {
	cases := []struct {
		name  string
		lines []dto.SalesLineRequest
	}{
		{"sin líneas", nil},
		{"cantidad cero", []dto.SalesLineRequest{{ProductID: "P1", Quantity: 0, UnitPrice: dec(100)}}},
		{"cantidad negativa", []dto.SalesLineRequest{{ProductID: "P1", Quantity: -2, UnitPrice: dec(100)}}},
		{"sin producto", []dto.SalesLineRequest{{ProductID: "", Quantity: 1, UnitPrice: dec(100)}}},
		{"precio negativo", []dto.SalesLineRequest{{ProductID: "P1", Quantity: 1, UnitPrice: dec(-1)}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := newMemStore(producto("P1", 50, 0, 80, 100))
			uc := NewCreateSalesOrderUseCase(&memTxRunner{store: store})

			_, err := uc.Execute(context.Background(), dto.CreateSalesOrderRequest{
				SaleDate: time.Now(),
				Lines:    tc.lines,
			})
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Empty(t, store.salesHeaders)
			assert.Equal(t, 50, store.products["P1"].Stock)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Recibos de mercancía
// ──────────────────────────────────────────────────────────────────────────────

// Recibo exitoso: P {stock:0, lastCost:0} + línea {qty:10, costo:500} →
// orden creada y P queda {stock:10, lastCost:500}.
func TestCreateImportOrder_ReciboExitoso(t *testing.T) {
	store := newMemStore(producto("P1", 0, 0, 0, 0))
	uc := NewCreateImportOrderUseCase(&memTxRunner{store: store})

	orderID, err := uc.Execute(context.Background(), dto.CreateImportOrderRequest{
		ReceiptDate: time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
		Note:        "pedido proveedor agosto",
		Lines: []dto.ImportLineRequest{
			{ProductID: "P1", Quantity: 10, UnitCost: dec(500)},
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, orderID)

	require.Len(t, store.importHeaders, 1)
	require.Len(t, store.importLines, 1)
	assert.Equal(t, orderID, store.importLines[0].OrderID)

	assert.True(t, store.importLines[0].Amount().Equal(dec(5000)), "monto de línea = qty × costo")

	p := store.products["P1"]
	assert.Equal(t, 10, p.Stock)
	assert.True(t, p.LastCost.Equal(dec(500)))
}

// Dos líneas del mismo producto: el stock acumula y el último costo gana.
// (P,10,1000) + (P,5,1200) sobre stock 0 → stock 15, lastCost 1200.
func TestCreateImportOrder_UltimoCostoGana(t *testing.T) {
	store := newMemStore(producto("P1", 0, 0, 0, 0))
	uc := NewCreateImportOrderUseCase(&memTxRunner{store: store})

	_, err := uc.Execute(context.Background(), dto.CreateImportOrderRequest{
		ReceiptDate: time.Now(),
		Lines: []dto.ImportLineRequest{
			{ProductID: "P1", Quantity: 10, UnitCost: dec(1000)},
			{ProductID: "P1", Quantity: 5, UnitCost: dec(1200)},
		},
	})
	require.NoError(t, err)

	p := store.products["P1"]
	assert.Equal(t, 15, p.Stock)
	assert.True(t, p.LastCost.Equal(dec(1200)), "el costo de la última línea procesada sobrescribe")
	assert.Len(t, store.importLines, 2)
}

// Producto inexistente en la línea 2 → rollback: la línea 1 tampoco queda.
func TestCreateImportOrder_RollbackPorProductoInexistente(t *testing.T) {
	store := newMemStore(producto("P1", 8, 0, 100, 0))
	uc := NewCreateImportOrderUseCase(&memTxRunner{store: store})

	_, err := uc.Execute(context.Background(), dto.CreateImportOrderRequest{
		ReceiptDate: time.Now(),
		Lines: []dto.ImportLineRequest{
			{ProductID: "P1", Quantity: 10, UnitCost: dec(900)},
			{ProductID: "NO-EXISTE", Quantity: 1, UnitCost: dec(100)},
		},
	})
	require.ErrorIs(t, err, domain.ErrNotFound)

	p := store.products["P1"]
	assert.Equal(t, 8, p.Stock, "el incremento de la línea 1 se deshace")
	assert.True(t, p.LastCost.Equal(dec(100)))
	assert.Empty(t, store.importHeaders)
	assert.Empty(t, store.importLines)
}

// Requests malformados fallan en validación.
func TestCreateImportOrder_Validacion(t *testing.T) {
	cases := []struct {
		name  string
		lines []dto.ImportLineRequest
	}{
		{"sin líneas", nil},
		{"cantidad cero", []dto.ImportLineRequest{{ProductID: "P1", Quantity: 0, UnitCost: dec(100)}}},
		{"sin producto", []dto.ImportLineRequest{{ProductID: "", Quantity: 1, UnitCost: dec(100)}}},
		{"costo negativo", []dto.ImportLineRequest{{ProductID: "P1", Quantity: 1, UnitCost: dec(-5)}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := newMemStore(producto("P1", 0, 0, 0, 0))
			uc := NewCreateImportOrderUseCase(&memTxRunner{store: store})

			_, err := uc.Execute(context.Background(), dto.CreateImportOrderRequest{
				ReceiptDate: time.Now(),
				Lines:       tc.lines,
			})
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Empty(t, store.importHeaders)
		})
	}
}

// El stock nunca queda negativo para ninguna secuencia de ventas: se venden
// unidades hasta agotar y cada intento posterior falla sin alterar el libro.
func TestCreateSalesOrder_StockNuncaNegativo(t *testing.T) {
	store := newMemStore(producto("P1", 7, 0, 80, 100))
	uc := NewCreateSalesOrderUseCase(&memTxRunner{store: store})

	quantities := []int{3, 2, 2, 1, 4}
	sold := 0
	for _, q := range quantities {
		_, err := uc.Execute(context.Background(), dto.CreateSalesOrderRequest{
			SaleDate: time.Now(),
			Lines:    []dto.SalesLineRequest{{ProductID: "P1", Quantity: q, UnitPrice: dec(100)}},
		})
		if sold+q <= 7 {
			require.NoError(t, err)
			sold += q
		} else {
			require.ErrorIs(t, err, domain.ErrInsufficientStock)
		}
		assert.GreaterOrEqual(t, store.products["P1"].Stock, 0)
		assert.Equal(t, 7-sold, store.products["P1"].Stock)
	}
	assert.Equal(t, sold, store.products["P1"].UnitsSold)
}
