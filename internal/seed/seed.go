package seed

import (
	"context"
	"errors"
	"fmt"
	"os"

	apperr "github.com/RoyceAzure/lab/restaurant/internal/errors"
	"github.com/RoyceAzure/lab/restaurant/internal/service"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type MenuItem struct {
	Name  string          `yaml:"name"`
	Price decimal.Decimal `yaml:"price"`
}

type StockItem struct {
	Name      string          `yaml:"name"`
	Quantity  int             `yaml:"quantity"`
	UnitPrice decimal.Decimal `yaml:"unit_price"`
}

// Data 初始菜單與庫存
type Data struct {
	MenuItems  []MenuItem  `yaml:"menu_items"`
	StockItems []StockItem `yaml:"stock_items"`
}

// Result counts what Apply created and what already existed.
type Result struct {
	Created int
	Skipped int
}

func Load(path string) (*Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	data := &Data{}
	if err := yaml.Unmarshal(raw, data); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}
	return data, nil
}

// Apply 建立尚未存在的資料, 已存在的略過
// 冪等性
func Apply(ctx context.Context, menu service.IMenuService, stock service.IStockService, data *Data) (Result, error) {
	var res Result
	count := func(err error) error {
		switch {
		case err == nil:
			res.Created++
		case errors.Is(err, apperr.ErrConflict):
			res.Skipped++
		default:
			return err
		}
		return nil
	}

	for _, item := range data.MenuItems {
		_, err := menu.Create(ctx, item.Name, item.Price)
		if err := count(err); err != nil {
			return res, fmt.Errorf("seed menu item %q: %w", item.Name, err)
		}
	}
	for _, item := range data.StockItems {
		_, err := stock.Create(ctx, item.Name, item.Quantity, item.UnitPrice)
		if err := count(err); err != nil {
			return res, fmt.Errorf("seed stock item %q: %w", item.Name, err)
		}
	}
	return res, nil
}
