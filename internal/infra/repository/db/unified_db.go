package db

import (
	"context"

	"github.com/RoyceAzure/lab/restaurant/internal/domain/model"
	"gorm.io/gorm"
)

// UnifiedDB 統一的資料庫介面
type UnifiedDB interface {
	// 基礎操作
	InitMigrate() error
	// ExecTx 在同一個 transaction 內執行 fn, fn 回傳錯誤時 rollback
	ExecTx(ctx context.Context, fn func(UnifiedDB) error) error

	ICustomerRepository
	IEmployeeRepository
	IMenuRepository
	IStockRepository
	IOrderRepository
	IPaymentRepository
}

type ICustomerRepository interface {
	CreateCustomer(ctx context.Context, customer *model.Customer) error
	GetCustomerByTaxID(ctx context.Context, taxID string) (*model.Customer, error)
	GetCustomerByID(ctx context.Context, id uint) (*model.Customer, error)
	GetAllCustomers(ctx context.Context) ([]model.Customer, error)
	PatchCustomer(ctx context.Context, taxID string, patch model.CustomerPatch) (*model.Customer, error)
	DeleteCustomer(ctx context.Context, taxID string) error
}

type IEmployeeRepository interface {
	CreateEmployee(ctx context.Context, employee *model.Employee) error
	GetEmployeeByTaxID(ctx context.Context, taxID string) (*model.Employee, error)
	GetAllEmployees(ctx context.Context) ([]model.Employee, error)
	PatchEmployee(ctx context.Context, taxID string, patch model.EmployeePatch) (*model.Employee, error)
	DeleteEmployee(ctx context.Context, taxID string) error
}

type IMenuRepository interface {
	CreateMenuItem(ctx context.Context, item *model.MenuItem) error
	GetMenuItemByName(ctx context.Context, name string) (*model.MenuItem, error)
	GetAllMenuItems(ctx context.Context) ([]model.MenuItem, error)
	PatchMenuItem(ctx context.Context, name string, patch model.MenuPatch) (*model.MenuItem, error)
	DeleteMenuItem(ctx context.Context, name string) error
}

type IStockRepository interface {
	CreateStockItem(ctx context.Context, item *model.StockItem) error
	GetStockItemByName(ctx context.Context, name string) (*model.StockItem, error)
	GetAllStockItems(ctx context.Context) ([]model.StockItem, error)
	GetStockItemsInStock(ctx context.Context) ([]model.StockItem, error)
	PatchStockItem(ctx context.Context, name string, patch model.StockPatch) (*model.StockItem, error)
	AdjustStockQuantity(ctx context.Context, name string, delta int) (int, error)
	DeleteStockItem(ctx context.Context, name string) error
}

type IOrderRepository interface {
	CreateOrder(ctx context.Context, order *model.Order) error
	GetOrderByID(ctx context.Context, id string) (*model.Order, error)
	GetOrdersByCustomerID(ctx context.Context, customerID uint) ([]model.Order, error)
	GetAllOrders(ctx context.Context) ([]model.Order, error)
	CountOrdersByCustomerID(ctx context.Context, customerID uint) (int64, error)
}

type IPaymentRepository interface {
	CreatePayment(ctx context.Context, payment *model.Payment) error
	GetPaymentsByCustomerID(ctx context.Context, customerID uint) ([]model.Payment, error)
	CountPaymentsByCustomerID(ctx context.Context, customerID uint) (int64, error)
}

// UnifiedDBImpl 統一資料庫實現, 各 repo 的方法直接由嵌入欄位提供
type UnifiedDBImpl struct {
	db    *gorm.DB
	dbDao *DbDao
	*CustomerRepo
	*EmployeeRepo
	*MenuRepo
	*StockRepo
	*OrderRepo
	*PaymentRepo
}

func NewUnifiedDB(db *gorm.DB) *UnifiedDBImpl {
	dbDao := NewDbDao(db)
	return &UnifiedDBImpl{
		db:           db,
		dbDao:        dbDao,
		CustomerRepo: NewCustomerRepo(dbDao),
		EmployeeRepo: NewEmployeeRepo(dbDao),
		MenuRepo:     NewMenuRepo(dbDao),
		StockRepo:    NewStockRepo(dbDao),
		OrderRepo:    NewOrderRepo(dbDao),
		PaymentRepo:  NewPaymentRepo(dbDao),
	}
}

func (u *UnifiedDBImpl) InitMigrate() error {
	return u.dbDao.InitMigrate()
}

// ExecTx 開始事務
// sqlite 只有一條連線, fn 內只能使用傳入的 UnifiedDB, 否則會卡住
func (u *UnifiedDBImpl) ExecTx(ctx context.Context, fn func(UnifiedDB) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewUnifiedDB(tx))
	})
}

var (
	_ UnifiedDB           = (*UnifiedDBImpl)(nil)
	_ ICustomerRepository = (*CustomerRepo)(nil)
	_ IEmployeeRepository = (*EmployeeRepo)(nil)
	_ IMenuRepository     = (*MenuRepo)(nil)
	_ IStockRepository    = (*StockRepo)(nil)
	_ IOrderRepository    = (*OrderRepo)(nil)
	_ IPaymentRepository  = (*PaymentRepo)(nil)
)
