package db

import (
	"context"
	"strconv"

	"github.com/RoyceAzure/lab/restaurant/internal/domain/model"
	apperr "github.com/RoyceAzure/lab/restaurant/internal/errors"
	"gorm.io/gorm"
)

const entityOrder = "order"

type OrderRepo struct {
	db *DbDao
}

func NewOrderRepo(db *DbDao) *OrderRepo {
	return &OrderRepo{db: db}
}

func preloadItems(db *gorm.DB) *gorm.DB {
	return db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	})
}

// Create - 創建訂單, 連同 Items 一起寫入
func (s *OrderRepo) CreateOrder(ctx context.Context, order *model.Order) error {
	err := s.db.WithContext(ctx).Create(order).Error
	return apperr.Translate(entityOrder, order.OrderID, err)
}

// Read - 根據ID查詢訂單
func (s *OrderRepo) GetOrderByID(ctx context.Context, id string) (*model.Order, error) {
	var order model.Order
	err := preloadItems(s.db.WithContext(ctx)).Where("order_id = ?", id).First(&order).Error
	if err != nil {
		return nil, apperr.Translate(entityOrder, id, err)
	}
	return &order, nil
}

// Read - 根據客戶ID查詢訂單, 依下單順序
func (s *OrderRepo) GetOrdersByCustomerID(ctx context.Context, customerID uint) ([]model.Order, error) {
	var orders []model.Order
	err := preloadItems(s.db.WithContext(ctx)).
		Where("customer_id = ?", customerID).
		Order("sequence ASC").
		Find(&orders).Error
	return orders, err
}

// Read - 查詢所有訂單
func (s *OrderRepo) GetAllOrders(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	err := preloadItems(s.db.WithContext(ctx)).Order("order_date ASC").Find(&orders).Error
	return orders, err
}

func (s *OrderRepo) CountOrdersByCustomerID(ctx context.Context, customerID uint) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Order{}).Where("customer_id = ?", customerID).Count(&count).Error
	return count, err
}

func idKey(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
