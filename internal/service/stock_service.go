package service

import (
	"context"
	"strings"

	"github.com/RoyceAzure/lab/restaurant/internal/domain/model"
	apperr "github.com/RoyceAzure/lab/restaurant/internal/errors"
	"github.com/RoyceAzure/lab/restaurant/internal/infra/repository/db"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type IStockService interface {
	Create(ctx context.Context, name string, quantity int, unitPrice decimal.Decimal) (*model.StockItem, error)
	Get(ctx context.Context, name string) (*model.StockItem, error)
	List(ctx context.Context) ([]model.StockItem, error)
	ListInStock(ctx context.Context) ([]model.StockItem, error)
	Update(ctx context.Context, name string, patch model.StockPatch) (*model.StockItem, error)
	Remove(ctx context.Context, name string) error
	Decrement(ctx context.Context, name string) (int, error)
	Adjust(ctx context.Context, name string, delta int) (int, error)
}

type StockService struct {
	store  db.UnifiedDB
	logger *zerolog.Logger
}

func NewStockService(store db.UnifiedDB, logger *zerolog.Logger) *StockService {
	return &StockService{store: store, logger: logger}
}

func (s *StockService) Create(ctx context.Context, name string, quantity int, unitPrice decimal.Decimal) (*model.StockItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.Validation("stock item name is required")
	}
	if quantity < 0 {
		return nil, apperr.Validation("quantity must not be negative, got %d", quantity)
	}
	if unitPrice.IsNegative() {
		return nil, apperr.Validation("unit price must not be negative, got %s", unitPrice)
	}

	item := &model.StockItem{Name: name, Quantity: quantity, UnitPrice: unitPrice}
	if err := s.store.CreateStockItem(ctx, item); err != nil {
		logFailure(s.logger, err, "create stock item")
		return nil, err
	}
	s.logger.Info().Str("name", name).Int("quantity", quantity).Msg("stock item created")
	return item, nil
}

func (s *StockService) Get(ctx context.Context, name string) (*model.StockItem, error) {
	return s.store.GetStockItemByName(ctx, name)
}

func (s *StockService) List(ctx context.Context) ([]model.StockItem, error) {
	return s.store.GetAllStockItems(ctx)
}

// ListInStock 只列出數量大於0的品項
func (s *StockService) ListInStock(ctx context.Context) ([]model.StockItem, error) {
	return s.store.GetStockItemsInStock(ctx)
}

func (s *StockService) Update(ctx context.Context, name string, patch model.StockPatch) (*model.StockItem, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, apperr.Validation("stock item name must not be blank")
	}
	if patch.Quantity != nil && *patch.Quantity < 0 {
		return nil, apperr.Validation("quantity must not be negative, got %d", *patch.Quantity)
	}
	if patch.UnitPrice != nil && patch.UnitPrice.IsNegative() {
		return nil, apperr.Validation("unit price must not be negative, got %s", patch.UnitPrice)
	}
	item, err := s.store.PatchStockItem(ctx, name, patch)
	if err != nil {
		logFailure(s.logger, err, "update stock item")
		return nil, err
	}
	s.logger.Info().Str("name", name).Msg("stock item updated")
	return item, nil
}

func (s *StockService) Remove(ctx context.Context, name string) error {
	if err := s.store.DeleteStockItem(ctx, name); err != nil {
		logFailure(s.logger, err, "remove stock item")
		return err
	}
	s.logger.Info().Str("name", name).Msg("stock item removed")
	return nil
}

// Decrement 庫存減一, 已經是0時回傳 ErrInsufficientStock
func (s *StockService) Decrement(ctx context.Context, name string) (int, error) {
	return s.Adjust(ctx, name, -1)
}

// Adjust 結果小於0時拒絕, 不會截斷為0
func (s *StockService) Adjust(ctx context.Context, name string, delta int) (int, error) {
	qty, err := s.store.AdjustStockQuantity(ctx, name, delta)
	if err != nil {
		logFailure(s.logger, err, "adjust stock")
		return qty, err
	}
	s.logger.Debug().Str("name", name).Int("delta", delta).Int("quantity", qty).Msg("stock adjusted")
	return qty, nil
}

var _ IStockService = (*StockService)(nil)
