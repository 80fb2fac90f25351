package service

import (
	"context"

	"github.com/RoyceAzure/lab/restaurant/internal/domain/model"
	"github.com/RoyceAzure/lab/restaurant/internal/infra/repository/db"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=payment_service.go -destination=mock/mock_payment_service.go -package=mock

type IPaymentService interface {
	Record(ctx context.Context, customerID uint, paymentType string, amount decimal.Decimal) (uint, error)
	ListFor(ctx context.Context, customerID uint) ([]model.Payment, error)
	ListAllWithCustomer(ctx context.Context) ([]model.CustomerPayment, error)
	TotalFor(ctx context.Context, customerID uint) (decimal.Decimal, error)
}

type PaymentService struct {
	store  db.UnifiedDB
	logger *zerolog.Logger
}

func NewPaymentService(store db.UnifiedDB, logger *zerolog.Logger) *PaymentService {
	return &PaymentService{store: store, logger: logger}
}

// Record 不檢查付款方式與金額正負, 只確認客戶存在
func (p *PaymentService) Record(ctx context.Context, customerID uint, paymentType string, amount decimal.Decimal) (uint, error) {
	payment := &model.Payment{
		CustomerID: customerID,
		Type:       paymentType,
		Amount:     amount,
	}
	err := p.store.ExecTx(ctx, func(tx db.UnifiedDB) error {
		if _, err := tx.GetCustomerByID(ctx, customerID); err != nil {
			return err
		}
		return tx.CreatePayment(ctx, payment)
	})
	if err != nil {
		logFailure(p.logger, err, "record payment")
		return 0, err
	}
	p.logger.Info().
		Uint("payment_id", payment.ID).
		Uint("customer_id", customerID).
		Str("type", paymentType).
		Str("amount", amount.StringFixed(2)).
		Msg("payment recorded")
	return payment.ID, nil
}

func (p *PaymentService) ListFor(ctx context.Context, customerID uint) ([]model.Payment, error) {
	return p.store.GetPaymentsByCustomerID(ctx, customerID)
}

// ListAllWithCustomer 依客戶 id 排序, 每位客戶的付款依寫入順序
func (p *PaymentService) ListAllWithCustomer(ctx context.Context) ([]model.CustomerPayment, error) {
	customers, err := p.store.GetAllCustomers(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]model.CustomerPayment, 0)
	for _, customer := range customers {
		payments, err := p.store.GetPaymentsByCustomerID(ctx, customer.ID)
		if err != nil {
			return nil, err
		}
		for _, payment := range payments {
			result = append(result, model.CustomerPayment{Customer: customer, Payment: payment})
		}
	}
	return result, nil
}

func (p *PaymentService) TotalFor(ctx context.Context, customerID uint) (decimal.Decimal, error) {
	payments, err := p.store.GetPaymentsByCustomerID(ctx, customerID)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, payment := range payments {
		total = total.Add(payment.Amount)
	}
	return total, nil
}

var _ IPaymentService = (*PaymentService)(nil)
