package service

import (
	"context"
	"strings"

	"github.com/RoyceAzure/lab/restaurant/internal/domain/model"
	apperr "github.com/RoyceAzure/lab/restaurant/internal/errors"
	"github.com/RoyceAzure/lab/restaurant/internal/infra/repository/db"
	"github.com/rs/zerolog"
)

type ICustomerService interface {
	Create(ctx context.Context, customer *model.Customer) error
	GetByTaxID(ctx context.Context, taxID string) (*model.Customer, error)
	GetByID(ctx context.Context, id uint) (*model.Customer, error)
	List(ctx context.Context) ([]model.Customer, error)
	Update(ctx context.Context, taxID string, patch model.CustomerPatch) (*model.Customer, error)
	Remove(ctx context.Context, taxID string) error
}

type CustomerService struct {
	store  db.UnifiedDB
	logger *zerolog.Logger
}

func NewCustomerService(store db.UnifiedDB, logger *zerolog.Logger) *CustomerService {
	return &CustomerService{store: store, logger: logger}
}

func validatePerson(name, taxID string, age int) error {
	if strings.TrimSpace(name) == "" {
		return apperr.Validation("name is required")
	}
	if strings.TrimSpace(taxID) == "" {
		return apperr.Validation("tax id is required")
	}
	if age < 0 {
		return apperr.Validation("age must not be negative, got %d", age)
	}
	return nil
}

func (s *CustomerService) Create(ctx context.Context, customer *model.Customer) error {
	if err := validatePerson(customer.Name, customer.TaxID, customer.Age); err != nil {
		return err
	}
	if err := s.store.CreateCustomer(ctx, customer); err != nil {
		logFailure(s.logger, err, "create customer")
		return err
	}
	s.logger.Info().Uint("customer_id", customer.ID).Str("tax_id", customer.TaxID).Msg("customer created")
	return nil
}

func (s *CustomerService) GetByTaxID(ctx context.Context, taxID string) (*model.Customer, error) {
	return s.store.GetCustomerByTaxID(ctx, taxID)
}

func (s *CustomerService) GetByID(ctx context.Context, id uint) (*model.Customer, error) {
	return s.store.GetCustomerByID(ctx, id)
}

func (s *CustomerService) List(ctx context.Context) ([]model.Customer, error) {
	return s.store.GetAllCustomers(ctx)
}

func (s *CustomerService) Update(ctx context.Context, taxID string, patch model.CustomerPatch) (*model.Customer, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, apperr.Validation("name must not be blank")
	}
	if patch.Age != nil && *patch.Age < 0 {
		return nil, apperr.Validation("age must not be negative, got %d", *patch.Age)
	}
	customer, err := s.store.PatchCustomer(ctx, taxID, patch)
	if err != nil {
		logFailure(s.logger, err, "update customer")
		return nil, err
	}
	s.logger.Info().Str("tax_id", taxID).Msg("customer updated")
	return customer, nil
}

// Remove 客戶有訂單或付款紀錄時不可刪除
func (s *CustomerService) Remove(ctx context.Context, taxID string) error {
	err := s.store.ExecTx(ctx, func(tx db.UnifiedDB) error {
		customer, err := tx.GetCustomerByTaxID(ctx, taxID)
		if err != nil {
			return err
		}
		orders, err := tx.CountOrdersByCustomerID(ctx, customer.ID)
		if err != nil {
			return err
		}
		payments, err := tx.CountPaymentsByCustomerID(ctx, customer.ID)
		if err != nil {
			return err
		}
		if orders > 0 || payments > 0 {
			return apperr.NewRecordError("customer", taxID, apperr.ErrConflict)
		}
		return tx.DeleteCustomer(ctx, taxID)
	})
	if err != nil {
		logFailure(s.logger, err, "remove customer")
		return err
	}
	s.logger.Info().Str("tax_id", taxID).Msg("customer removed")
	return nil
}

var _ ICustomerService = (*CustomerService)(nil)
