package db

import (
	"context"

	"github.com/RoyceAzure/lab/restaurant/internal/domain/model"
	apperr "github.com/RoyceAzure/lab/restaurant/internal/errors"
)

const entityMenuItem = "menu item"

type MenuRepo struct {
	db *DbDao
}

func NewMenuRepo(db *DbDao) *MenuRepo {
	return &MenuRepo{db: db}
}

func (s *MenuRepo) nameTaken(ctx context.Context, name string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.MenuItem{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

func (s *MenuRepo) CreateMenuItem(ctx context.Context, item *model.MenuItem) error {
	taken, err := s.nameTaken(ctx, item.Name)
	if err != nil {
		return err
	}
	if taken {
		return apperr.NewRecordError(entityMenuItem, item.Name, apperr.ErrConflict)
	}
	err = s.db.WithContext(ctx).Create(item).Error
	return apperr.Translate(entityMenuItem, item.Name, err)
}

func (s *MenuRepo) GetMenuItemByName(ctx context.Context, name string) (*model.MenuItem, error) {
	var item model.MenuItem
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&item).Error
	if err != nil {
		return nil, apperr.Translate(entityMenuItem, name, err)
	}
	return &item, nil
}

func (s *MenuRepo) GetAllMenuItems(ctx context.Context) ([]model.MenuItem, error) {
	var items []model.MenuItem
	err := s.db.WithContext(ctx).Order("id ASC").Find(&items).Error
	return items, err
}

// Update - 部分更新, 改名時要檢查新名稱是否已存在
func (s *MenuRepo) PatchMenuItem(ctx context.Context, name string, patch model.MenuPatch) (*model.MenuItem, error) {
	item, err := s.GetMenuItemByName(ctx, name)
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
			return nil, apperr.NewRecordError(entityMenuItem, *patch.Name, apperr.ErrConflict)
		}
		item.Name = *patch.Name
	}
	if patch.Price != nil {
		item.Price = *patch.Price
	}
	if err := s.db.WithContext(ctx).Save(item).Error; err != nil {
		return nil, apperr.Translate(entityMenuItem, item.Name, err)
	}
	return item, nil
}

func (s *MenuRepo) DeleteMenuItem(ctx context.Context, name string) error {
	res := s.db.WithContext(ctx).Where("name = ?", name).Delete(&model.MenuItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NewRecordError(entityMenuItem, name, apperr.ErrNotFound)
	}
	return nil
}
