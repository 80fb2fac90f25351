package db

import (
	"context"

	"github.com/RoyceAzure/lab/restaurant/internal/domain/model"
	apperr "github.com/RoyceAzure/lab/restaurant/internal/errors"
)

const entityPayment = "payment"

type PaymentRepo struct {
	db *DbDao
}

func NewPaymentRepo(db *DbDao) *PaymentRepo {
	return &PaymentRepo{db: db}
}

func (s *PaymentRepo) CreatePayment(ctx context.Context, payment *model.Payment) error {
	err := s.db.WithContext(ctx).Create(payment).Error
	return apperr.Translate(entityPayment, idKey(payment.CustomerID), err)
}

// Read - 客戶的付款紀錄, 依寫入順序
func (s *PaymentRepo) GetPaymentsByCustomerID(ctx context.Context, customerID uint) ([]model.Payment, error) {
	var payments []model.Payment
	err := s.db.WithContext(ctx).Where("customer_id = ?", customerID).Order("id ASC").Find(&payments).Error
	return payments, err
}

func (s *PaymentRepo) CountPaymentsByCustomerID(ctx context.Context, customerID uint) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Payment{}).Where("customer_id = ?", customerID).Count(&count).Error
	return count, err
}
