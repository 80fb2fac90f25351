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

type IMenuService interface {
	Create(ctx context.Context, name string, price decimal.Decimal) (*model.MenuItem, error)
	Get(ctx context.Context, name string) (*model.MenuItem, error)
	List(ctx context.Context) ([]model.MenuItem, error)
	Update(ctx context.Context, name string, patch model.MenuPatch) (*model.MenuItem, error)
	Remove(ctx context.Context, name string) error
}

type MenuService struct {
	store  db.UnifiedDB
	logger *zerolog.Logger
}

func NewMenuService(store db.UnifiedDB, logger *zerolog.Logger) *MenuService {
	return &MenuService{store: store, logger: logger}
}

// Create 價格必須大於0
func (s *MenuService) Create(ctx context.Context, name string, price decimal.Decimal) (*model.MenuItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.Validation("menu item name is required")
	}
	if !price.IsPositive() {
		return nil, apperr.Validation("price must be greater than zero, got %s", price)
	}

	item := &model.MenuItem{Name: name, Price: price}
	if err := s.store.CreateMenuItem(ctx, item); err != nil {
		logFailure(s.logger, err, "create menu item")
		return nil, err
	}
	s.logger.Info().Str("name", name).Str("price", price.StringFixed(2)).Msg("menu item created")
	return item, nil
}

func (s *MenuService) Get(ctx context.Context, name string) (*model.MenuItem, error) {
	return s.store.GetMenuItemByName(ctx, name)
}

func (s *MenuService) List(ctx context.Context) ([]model.MenuItem, error) {
	return s.store.GetAllMenuItems(ctx)
}

func (s *MenuService) Update(ctx context.Context, name string, patch model.MenuPatch) (*model.MenuItem, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, apperr.Validation("menu item name must not be blank")
	}
	if patch.Price != nil && !patch.Price.IsPositive() {
		return nil, apperr.Validation("price must be greater than zero, got %s", patch.Price)
	}
	item, err := s.store.PatchMenuItem(ctx, name, patch)
	if err != nil {
		logFailure(s.logger, err, "update menu item")
		return nil, err
	}
	s.logger.Info().Str("name", name).Msg("menu item updated")
	return item, nil
}

func (s *MenuService) Remove(ctx context.Context, name string) error {
	if err := s.store.DeleteMenuItem(ctx, name); err != nil {
		logFailure(s.logger, err, "remove menu item")
		return err
	}
	s.logger.Info().Str("name", name).Msg("menu item removed")
	return nil
}

var _ IMenuService = (*MenuService)(nil)
