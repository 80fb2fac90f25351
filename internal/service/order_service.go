package service

import (
	"context"
	"errors"
	"time"

	"github.com/RoyceAzure/lab/restaurant/internal/domain/model"
	apperr "github.com/RoyceAzure/lab/restaurant/internal/errors"
	"github.com/RoyceAzure/lab/restaurant/internal/infra/repository/db"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=order_service.go -destination=mock/mock_order_service.go -package=mock

type IOrderService interface {
	PlaceOrder(ctx context.Context, customerID uint, productNames []string) (*model.Order, error)
	ListOrdersForCustomer(ctx context.Context, customerID uint) ([]model.Order, error)
	GetOrder(ctx context.Context, orderID string) (*model.Order, error)
	ListOrders(ctx context.Context) ([]model.Order, error)
}

type OrderService struct {
	store  db.UnifiedDB
	logger *zerolog.Logger
	now    func() time.Time
}

func NewOrderService(store db.UnifiedDB, logger *zerolog.Logger) *OrderService {
	return &OrderService{store: store, logger: logger, now: time.Now}
}

/*
PlaceOrder 依呼叫順序處理商品, 每個商品扣一個庫存
整筆在同一個 transaction 內, 任何商品缺貨時先前的扣減全部 rollback
價格優先取同名菜單品項, 沒有時取庫存單價
*/
func (o *OrderService) PlaceOrder(ctx context.Context, customerID uint, productNames []string) (*model.Order, error) {
	var order *model.Order
	err := o.store.ExecTx(ctx, func(tx db.UnifiedDB) error {
		customer, err := tx.GetCustomerByID(ctx, customerID)
		if err != nil {
			return err
		}
		count, err := tx.CountOrdersByCustomerID(ctx, customerID)
		if err != nil {
			return err
		}

		items := make([]model.OrderItem, 0, len(productNames))
		total := decimal.Zero
		for i, name := range productNames {
			price, err := takeOne(ctx, tx, name)
			if err != nil {
				return err
			}
			items = append(items, model.OrderItem{
				Position:    i,
				ProductName: name,
				UnitPrice:   price,
			})
			total = total.Add(price)
		}

		sequence := int(count) + 1
		order = &model.Order{
			OrderID:    uuid.NewString(),
			CustomerID: customer.ID,
			Label:      model.OrderLabel(customer.TaxID, sequence),
			Sequence:   sequence,
			Total:      total,
			OrderDate:  o.now(),
			Items:      items,
		}
		return tx.CreateOrder(ctx, order)
	})
	if err != nil {
		logFailure(o.logger, err, "place order")
		return nil, err
	}

	o.logger.Info().
		Str("order_id", order.OrderID).
		Uint("customer_id", customerID).
		Str("label", order.Label).
		Int("items", len(order.Items)).
		Str("total", order.Total.StringFixed(2)).
		Msg("order placed")
	return order, nil
}

// takeOne 扣一個庫存並回傳價格, 不存在或數量為0都視為缺貨
func takeOne(ctx context.Context, tx db.UnifiedDB, name string) (decimal.Decimal, error) {
	stock, err := tx.GetStockItemByName(ctx, name)
	if errors.Is(err, apperr.ErrNotFound) {
		return decimal.Zero, apperr.NewRecordError("product", name, apperr.ErrOutOfStock)
	}
	if err != nil {
		return decimal.Zero, err
	}

	if _, err := tx.AdjustStockQuantity(ctx, name, -1); err != nil {
		if errors.Is(err, apperr.ErrInsufficientStock) {
			return decimal.Zero, apperr.NewRecordError("product", name, apperr.ErrOutOfStock)
		}
		return decimal.Zero, err
	}

	menuItem, err := tx.GetMenuItemByName(ctx, name)
	switch {
	case err == nil:
		return menuItem.Price, nil
	case errors.Is(err, apperr.ErrNotFound):
		return stock.UnitPrice, nil
	default:
		return decimal.Zero, err
	}
}

func (o *OrderService) ListOrdersForCustomer(ctx context.Context, customerID uint) ([]model.Order, error) {
	return o.store.GetOrdersByCustomerID(ctx, customerID)
}

func (o *OrderService) GetOrder(ctx context.Context, orderID string) (*model.Order, error) {
	return o.store.GetOrderByID(ctx, orderID)
}

func (o *OrderService) ListOrders(ctx context.Context) ([]model.Order, error) {
	return o.store.GetAllOrders(ctx)
}

var _ IOrderService = (*OrderService)(nil)
