package db

import (
	"context"

	"github.com/RoyceAzure/lab/restaurant/internal/domain/model"
	apperr "github.com/RoyceAzure/lab/restaurant/internal/errors"
	"gorm.io/gorm"
)

const entityStockItem = "stock item"

type StockRepo struct {
	db *DbDao
}

func NewStockRepo(db *DbDao) *StockRepo {
	return &StockRepo{db: db}
}

func (s *StockRepo) nameTaken(ctx context.Context, name string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.StockItem{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

func (s *StockRepo) CreateStockItem(ctx context.Context, item *model.StockItem) error {
	taken, err := s.nameTaken(ctx, item.Name)
	if err != nil {
		return err
	}
	if taken {
		return apperr.NewRecordError(entityStockItem, item.Name, apperr.ErrConflict)
	}
	err = s.db.WithContext(ctx).Create(item).Error
	return apperr.Translate(entityStockItem, item.Name, err)
}

func (s *StockRepo) GetStockItemByName(ctx context.Context, name string) (*model.StockItem, error) {
	var item model.StockItem
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&item).Error
	if err != nil {
		return nil, apperr.Translate(entityStockItem, name, err)
	}
	return &item, nil
}

func (s *StockRepo) GetAllStockItems(ctx context.Context) ([]model.StockItem, error) {
	var items []model.StockItem
	err := s.db.WithContext(ctx).Order("id ASC").Find(&items).Error
	return items, err
}

// Read - 查詢有庫存的商品
func (s *StockRepo) GetStockItemsInStock(ctx context.Context) ([]model.StockItem, error) {
	var items []model.StockItem
	err := s.db.WithContext(ctx).Where("quantity > 0").Order("id ASC").Find(&items).Error
	return items, err
}

// Update - 部分更新, quantity 為直接設定值
func (s *StockRepo) PatchStockItem(ctx context.Context, name string, patch model.StockPatch) (*model.StockItem, error) {
	item, err := s.GetStockItemByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return item, nil
	}
	if patch.Name != nil && *patch.Name != item.Name {
		taken, err := s.nameTaken(ctx, *patch.Name)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperr.NewRecordError(entityStockItem, *patch.Name, apperr.ErrConflict)
		}
		item.Name = *patch.Name
	}
	if patch.Quantity != nil {
		item.Quantity = *patch.Quantity
	}
	if patch.UnitPrice != nil {
		item.UnitPrice = *patch.UnitPrice
	}
	if err := s.db.WithContext(ctx).Save(item).Error; err != nil {
		return nil, apperr.Translate(entityStockItem, item.Name, err)
	}
	return item, nil
}

// AdjustStockQuantity 以 delta 增減庫存, 結果小於0時不做任何異動
// 回傳異動後的庫存
func (s *StockRepo) AdjustStockQuantity(ctx context.Context, name string, delta int) (int, error) {
	res := s.db.WithContext(ctx).Model(&model.StockItem{}).
		Where("name = ? AND quantity + ? >= 0", name, delta).
		Update("quantity", gorm.Expr("quantity + ?", delta))
	if res.Error != nil {
		return 0, res.Error
	}

	item, err := s.GetStockItemByName(ctx, name)
	if err != nil {
		return 0, err
	}
	if res.RowsAffected == 0 {
		return item.Quantity, apperr.NewRecordError(entityStockItem, name, apperr.ErrInsufficientStock)
	}
	return item.Quantity, nil
}

// Delete - 硬刪除庫存項目
func (s *StockRepo) DeleteStockItem(ctx context.Context, name string) error {
	res := s.db.WithContext(ctx).Where("name = ?", name).Delete(&model.StockItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NewRecordError(entityStockItem, name, apperr.ErrNotFound)
	}
	return nil
}
