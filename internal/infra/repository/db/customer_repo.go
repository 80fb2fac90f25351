package db

import (
	"context"

	"github.com/RoyceAzure/lab/restaurant/internal/domain/model"
	apperr "github.com/RoyceAzure/lab/restaurant/internal/errors"
)

const entityCustomer = "customer"

type CustomerRepo struct {
	db *DbDao
}

func NewCustomerRepo(db *DbDao) *CustomerRepo {
	return &CustomerRepo{db: db}
}

// Create - 創建客戶, tax_id 重複回傳 ErrConflict
func (s *CustomerRepo) CreateCustomer(ctx context.Context, customer *model.Customer) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Customer{}).Where("tax_id = ?", customer.TaxID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return apperr.NewRecordError(entityCustomer, customer.TaxID, apperr.ErrConflict)
	}
	err := s.db.WithContext(ctx).Create(customer).Error
	return apperr.Translate(entityCustomer, customer.TaxID, err)
}

// Read - 根據tax_id查詢客戶
func (s *CustomerRepo) GetCustomerByTaxID(ctx context.Context, taxID string) (*model.Customer, error) {
	var customer model.Customer
	err := s.db.WithContext(ctx).Where("tax_id = ?", taxID).First(&customer).Error
	if err != nil {
		return nil, apperr.Translate(entityCustomer, taxID, err)
	}
	return &customer, nil
}

// Read - 根據ID查詢客戶
func (s *CustomerRepo) GetCustomerByID(ctx context.Context, id uint) (*model.Customer, error) {
	var customer model.Customer
	err := s.db.WithContext(ctx).First(&customer, id).Error
	if err != nil {
		return nil, apperr.Translate(entityCustomer, idKey(id), err)
	}
	return &customer, nil
}

// Read - 查詢所有客戶
func (s *CustomerRepo) GetAllCustomers(ctx context.Context) ([]model.Customer, error) {
	var customers []model.Customer
	err := s.db.WithContext(ctx).Order("id ASC").Find(&customers).Error
	return customers, err
}

// Update - 部分更新客戶
func (s *CustomerRepo) PatchCustomer(ctx context.Context, taxID string, patch model.CustomerPatch) (*model.Customer, error) {
	customer, err := s.GetCustomerByTaxID(ctx, taxID)
	if err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return customer, nil
	}
	patch.Apply(customer)
	if err := s.db.WithContext(ctx).Save(customer).Error; err != nil {
		return nil, apperr.Translate(entityCustomer, taxID, err)
	}
	return customer, nil
}

// Delete - 硬刪除客戶
func (s *CustomerRepo) DeleteCustomer(ctx context.Context, taxID string) error {
	res := s.db.WithContext(ctx).Where("tax_id = ?", taxID).Delete(&model.Customer{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NewRecordError(entityCustomer, taxID, apperr.ErrNotFound)
	}
	return nil
}
