package terminal

import (
	"bytes"
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/RoyceAzure/lab/restaurant/internal/domain/model"
	apperr "github.com/RoyceAzure/lab/restaurant/internal/errors"
	"github.com/RoyceAzure/lab/restaurant/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/restaurant/internal/service"
	mock_service "github.com/RoyceAzure/lab/restaurant/internal/service/mock"
	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	svc      Services
	orders   *mock_service.MockIOrderService
	payments *mock_service.MockIPaymentService
	out      *bytes.Buffer
	sleeps   []time.Duration
}

// newTestEnv 訂單與付款使用 mock, 其餘 service 接 in-memory sqlite
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	conn, err := db.GetSqliteConn(":memory:")
	require.NoError(t, err)
	store := db.NewUnifiedDB(conn)
	require.NoError(t, store.InitMigrate())
	t.Cleanup(func() {
		sqlDB, _ := conn.DB()
		sqlDB.Close()
	})

	logger := zerolog.Nop()
	env := &testEnv{
		orders:   mock_service.NewMockIOrderService(ctrl),
		payments: mock_service.NewMockIPaymentService(ctrl),
		out:      &bytes.Buffer{},
	}
	env.svc = Services{
		Customers: service.NewCustomerService(store, &logger),
		Employees: service.NewEmployeeService(store, &logger),
		Menu:      service.NewMenuService(store, &logger),
		Stock:     service.NewStockService(store, &logger),
		Orders:    env.orders,
		Payments:  env.payments,
	}
	return env
}

func (e *testEnv) run(t *testing.T, lines ...string) string {
	t.Helper()
	logger := zerolog.Nop()
	input := strings.NewReader(strings.Join(lines, "\n") + "\n")
	console := NewConsole(input, e.out, e.svc, &logger,
		WithClearScreen(false),
		WithSleep(func(d time.Duration) { e.sleeps = append(e.sleeps, d) }),
	)
	require.NoError(t, console.Run(context.Background()))
	return e.out.String()
}

func (e *testEnv) addCustomer(t *testing.T, name, taxID string) *model.Customer {
	t.Helper()
	c := &model.Customer{Name: name, TaxID: taxID, Age: 30}
	require.NoError(t, e.svc.Customers.Create(context.Background(), c))
	return c
}

func TestConsole_LoginAndExit(t *testing.T) {
	env := newTestEnv(t)
	out := env.run(t, "root", "toor", "admin", "Admin", "9", "7")

	require.Contains(t, out, "Login inválido. Tente novamente.")
	require.Contains(t, out, "Opção inválida.")
	require.Contains(t, out, "Encerrando em 3 segundos...")
	require.Contains(t, out, "Encerrando em 1 segundos...")
	require.Equal(t, []time.Duration{time.Second, time.Second, time.Second}, env.sleeps)
}

func TestConsole_EOFEndsSession(t *testing.T) {
	env := newTestEnv(t)
	out := env.run(t, "ADMIN", "ADMIN", "2")

	require.Contains(t, out, "=== Cliente ===")
	require.Empty(t, env.sleeps)
}

func TestConsole_CanceledContext(t *testing.T) {
	env := newTestEnv(t)
	logger := zerolog.Nop()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	console := NewConsole(strings.NewReader(""), env.out, env.svc, &logger)
	require.NoError(t, console.Run(ctx))
}

func TestConsole_CustomerLifecycle(t *testing.T) {
	env := newTestEnv(t)
	out := env.run(t,
		"ADMIN", "ADMIN",
		"2",
		"1", "Ana", "111", "trinta", "30", "31/02/1990", "14/03/1995",
		"1", "Bia", "111", "22", "01/01/2000",
		"2", "111", "", "31", "",
		"4", "",
		"3", "111",
		"6", "7",
	)

	require.Contains(t, out, "Número inválido.")
	require.Contains(t, out, "Data inválida. Use o formato DD/MM/AAAA.")
	require.Contains(t, out, "Cliente adicionado com sucesso.")
	require.Contains(t, out, "Registro já existe ou está em uso: 111")
	require.Contains(t, out, "Cliente alterado com sucesso.")
	require.Contains(t, out, "14/03/1995")
	require.Contains(t, out, "Cliente removido com sucesso.")

	customers, err := env.svc.Customers.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, customers)
}

func TestConsole_AlterUnknownCustomer(t *testing.T) {
	env := newTestEnv(t)
	out := env.run(t, "ADMIN", "ADMIN", "2", "2", "999", "6", "7")

	require.Contains(t, out, "Registro não encontrado: 999")
}

func TestConsole_EmployeeLifecycle(t *testing.T) {
	env := newTestEnv(t)
	out := env.run(t,
		"ADMIN", "ADMIN",
		"1",
		"1", "Caio", "999", "40", "01/05/1985", "garçom", "2500,50",
		"2", "999", "", "", "", "gerente", "",
		"4", "",
		"5", "7",
	)

	require.Contains(t, out, "Funcionário adicionado com sucesso.")
	require.Contains(t, out, "Funcionário alterado com sucesso.")
	require.Contains(t, out, "R$2500.50")

	e, err := env.svc.Employees.GetByTaxID(context.Background(), "999")
	require.NoError(t, err)
	require.Equal(t, "gerente", e.Role)
	require.Equal(t, "Caio", e.Name)
}

func TestConsole_StockAndCatalog(t *testing.T) {
	env := newTestEnv(t)
	out := env.run(t,
		"ADMIN", "ADMIN",
		"4",
		"1", "Pizza", "-1", "20",
		"1", "Pizza", "5", "20,00",
		"4", "",
		"5",
		"3",
		"1", "Pizza", "0",
		"1", "Pizza", "45.90",
		"2", "Pizza", "", "49.90",
		"4", "",
		"5",
		"7",
	)

	require.Contains(t, out, "Dados inválidos")
	require.Contains(t, out, "Produto adicionado ao estoque.")
	require.Contains(t, out, "Item adicionado ao cardápio.")
	require.Contains(t, out, "R$49.90")

	ctx := context.Background()
	stock, err := env.svc.Stock.Get(ctx, "Pizza")
	require.NoError(t, err)
	require.Equal(t, 5, stock.Quantity)
	require.True(t, stock.UnitPrice.Equal(decimal.NewFromInt(20)))

	item, err := env.svc.Menu.Get(ctx, "Pizza")
	require.NoError(t, err)
	require.True(t, item.Price.Equal(decimal.RequireFromString("49.90")))
}

func TestConsole_PlaceOrder(t *testing.T) {
	testCases := []struct {
		name      string
		products  string
		setUPMock func(m *mock_service.MockIOrderService, customerID uint)
		want      []string
	}{
		{
			name:     "placed",
			products: "Pizza, Suco",
			setUPMock: func(m *mock_service.MockIOrderService, customerID uint) {
				m.EXPECT().PlaceOrder(gomock.Any(), customerID, []string{"Pizza", "Suco"}).
					Return(&model.Order{Label: "0001", Sequence: 1, Total: decimal.RequireFromString("15.5")}, nil).
					Times(1)
			},
			want: []string{"Pedido registrado.", "CPF: 000\nPedidos: 1", "Comanda: 0001", "Total: R$15.50"},
		},
		{
			name:     "out of stock",
			products: "Pizza,Suco",
			setUPMock: func(m *mock_service.MockIOrderService, customerID uint) {
				m.EXPECT().PlaceOrder(gomock.Any(), customerID, []string{"Pizza", "Suco"}).
					Return(nil, apperr.NewRecordError("product", "Suco", apperr.ErrOutOfStock)).
					Times(1)
			},
			want: []string{"Produto sem estoque: Suco"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t)
			customer := env.addCustomer(t, "Ana", "123.456.789-000")
			tc.setUPMock(env.orders, customer.ID)

			out := env.run(t, "ADMIN", "ADMIN", "6", "1", "123.456.789-000", tc.products, "", "3", "7")
			for _, want := range tc.want {
				require.Contains(t, out, want)
			}
		})
	}
}

func TestConsole_PlaceOrderUnknownCustomer(t *testing.T) {
	env := newTestEnv(t)
	env.orders.EXPECT().PlaceOrder(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	out := env.run(t, "ADMIN", "ADMIN", "6", "1", "000", "3", "7")
	require.Contains(t, out, "Registro não encontrado: 000")
}

func TestConsole_ListCustomerOrders(t *testing.T) {
	env := newTestEnv(t)
	customer := env.addCustomer(t, "Ana", "000")
	env.orders.EXPECT().ListOrdersForCustomer(gomock.Any(), customer.ID).Return([]model.Order{
		{
			Label:     "0001",
			Total:     decimal.RequireFromString("15.5"),
			OrderDate: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
			Items:     []model.OrderItem{{ProductName: "Pizza"}, {ProductName: "Suco"}},
		},
	}, nil)

	out := env.run(t, "ADMIN", "ADMIN", "6", "2", "000", "", "3", "7")
	require.Contains(t, out, "0001 - 01/05/2024 - R$15.50 - Pizza, Suco")
}

func TestConsole_RegisterPayment(t *testing.T) {
	env := newTestEnv(t)
	customer := env.addCustomer(t, "Ana", "000")
	env.payments.EXPECT().Record(gomock.Any(), customer.ID, "pix", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uint, _ string, amount decimal.Decimal) (uint, error) {
			require.True(t, amount.Equal(decimal.RequireFromString("10.5")))
			return 1, nil
		})

	out := env.run(t, "ADMIN", "ADMIN", "2", "5", "abc", customerIDLine(customer), "pix", "10,5", "6", "7")
	require.Contains(t, out, "1 - Ana")
	require.Contains(t, out, "Número inválido.")
	require.Contains(t, out, "Pagamento registrado com sucesso.")
}

func TestConsole_PaymentsScreen(t *testing.T) {
	env := newTestEnv(t)
	ana := model.Customer{ID: 1, Name: "Ana"}
	bia := model.Customer{ID: 2, Name: "Bia"}
	env.payments.EXPECT().ListAllWithCustomer(gomock.Any()).Return([]model.CustomerPayment{
		{Customer: ana, Payment: model.Payment{Type: "pix", Amount: decimal.RequireFromString("10")}},
		{Customer: ana, Payment: model.Payment{Type: "cartão", Amount: decimal.RequireFromString("5")}},
		{Customer: bia, Payment: model.Payment{Type: "dinheiro", Amount: decimal.RequireFromString("-1.5")}},
	}, nil)

	env.payments.EXPECT().TotalFor(gomock.Any(), ana.ID).Return(decimal.RequireFromString("15"), nil).Times(1)
	env.payments.EXPECT().TotalFor(gomock.Any(), bia.ID).Return(decimal.RequireFromString("-1.5"), nil).Times(1)

	out := env.run(t, "ADMIN", "ADMIN", "5", "", "7")
	require.Contains(t, out, "Ana - pix - R$10.00")
	require.Contains(t, out, "Bia - dinheiro - R$-1.50")
	require.Contains(t, out, "Total Ana: R$15.00")
	require.Contains(t, out, "Total Bia: R$-1.50")
}

func TestConsole_PaymentsScreenTotalError(t *testing.T) {
	env := newTestEnv(t)
	ana := model.Customer{ID: 1, Name: "Ana"}
	env.payments.EXPECT().ListAllWithCustomer(gomock.Any()).Return([]model.CustomerPayment{
		{Customer: ana, Payment: model.Payment{Type: "pix", Amount: decimal.RequireFromString("10")}},
	}, nil)
	env.payments.EXPECT().TotalFor(gomock.Any(), ana.ID).Return(decimal.Zero, apperr.NewRecordError("customer", "1", apperr.ErrNotFound))

	out := env.run(t, "ADMIN", "ADMIN", "5", "7")
	require.Contains(t, out, "Ana - pix - R$10.00")
	require.Contains(t, out, "Registro não encontrado: 1")
	require.NotContains(t, out, "Total Ana")
}

func TestConsole_PlaceOrderListsAvailableStock(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	customer := env.addCustomer(t, "Ana", "000")
	_, err := env.svc.Stock.Create(ctx, "Pizza", 2, decimal.NewFromInt(20))
	require.NoError(t, err)
	_, err = env.svc.Stock.Create(ctx, "Suco", 0, decimal.NewFromInt(4))
	require.NoError(t, err)
	env.orders.EXPECT().PlaceOrder(gomock.Any(), customer.ID, []string{"Pizza"}).
		Return(&model.Order{Label: "0001", Sequence: 1, Total: decimal.NewFromInt(20)}, nil)

	out := env.run(t, "ADMIN", "ADMIN", "6", "1", "000", "Pizza", "", "3", "7")
	require.Contains(t, out, "Produtos disponíveis:")
	require.Contains(t, out, "Pizza (2)")
	require.NotContains(t, out, "Suco (0)")
}

func TestConsole_PlaceOrderEmptyStock(t *testing.T) {
	env := newTestEnv(t)
	customer := env.addCustomer(t, "Ana", "000")
	env.orders.EXPECT().PlaceOrder(gomock.Any(), customer.ID, []string{"Pizza"}).
		Return(nil, apperr.NewRecordError("product", "Pizza", apperr.ErrNotFound))

	out := env.run(t, "ADMIN", "ADMIN", "6", "1", "000", "Pizza", "3", "7")
	require.Contains(t, out, "Nenhum produto em estoque.")
}

func TestConsole_ClearScreenHoldsMessages(t *testing.T) {
	env := newTestEnv(t)
	logger := zerolog.Nop()
	input := strings.NewReader(strings.Join([]string{"root", "toor", "", "ADMIN", "ADMIN", "9", "", "7"}, "\n") + "\n")
	console := NewConsole(input, env.out, env.svc, &logger,
		WithClearScreen(true),
		WithSleep(func(time.Duration) {}),
	)
	require.NoError(t, console.Run(context.Background()))

	out := env.out.String()
	for _, msg := range []string{"Login inválido. Tente novamente.", "Opção inválida."} {
		idx := strings.Index(out, msg)
		require.GreaterOrEqual(t, idx, 0, msg)
		require.True(t, strings.HasPrefix(strings.TrimLeft(out[idx+len(msg):], "\n"), "Pressione Enter para continuar..."), msg)
	}
}

func customerIDLine(c *model.Customer) string {
	return strconv.FormatUint(uint64(c.ID), 10)
}
