package appcontext

import (
	"context"
	"fmt"

	"github.com/RoyceAzure/lab/restaurant/internal/config"
	"github.com/RoyceAzure/lab/restaurant/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/restaurant/internal/seed"
	"github.com/RoyceAzure/lab/restaurant/internal/service"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type ApplicationContext struct {
	Cf              *config.Config
	Logger          *zerolog.Logger
	DbConn          *gorm.DB
	DbDao           db.UnifiedDB
	CustomerService service.ICustomerService
	EmployeeService service.IEmployeeService
	MenuService     service.IMenuService
	StockService    service.IStockService
	OrderService    service.IOrderService
	PaymentService  service.IPaymentService
}

func NewApplicationContext(cf *config.Config, logger *zerolog.Logger) (*ApplicationContext, error) {
	app := ApplicationContext{
		Cf:     cf,
		Logger: logger,
	}
	logger.Debug().
		Str("db_driver", cf.DbDriver).
		Str("sqlite_path", cf.SqlitePath).
		Str("postgres_host", cf.DbHost).
		Str("seed_file", cf.SeedFile).
		Msg("loaded config")

	if err := app.Init(); err != nil {
		app.closeDb()
		return nil, err
	}
	return &app, nil
}

func (app *ApplicationContext) Init() error {
	err := app.setUpdbConn()
	if err != nil {
		return err
	}
	err = app.setUpdbDao()
	if err != nil {
		return err
	}
	app.setUpServices()

	return app.dbInit()
}

func (app *ApplicationContext) setUpdbConn() error {
	app.Logger.Info().Msg("Start setup database connection")
	conn, err := db.Open(app.Cf)
	if err != nil {
		return fmt.Errorf("failed to open %s database: %w", app.Cf.DbDriver, err)
	}
	app.DbConn = conn
	app.Logger.Info().Msg("Finish setup database connection")
	return nil
}

func (app *ApplicationContext) setUpdbDao() error {
	app.Logger.Info().Msg("Start setup database DAO")
	store := db.NewUnifiedDB(app.DbConn)
	if err := store.InitMigrate(); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	app.DbDao = store
	app.Logger.Info().Msg("Finish setup database DAO")
	return nil
}

func (app *ApplicationContext) setUpServices() {
	app.Logger.Info().Msg("Start setup services")
	app.CustomerService = service.NewCustomerService(app.DbDao, app.Logger)
	app.EmployeeService = service.NewEmployeeService(app.DbDao, app.Logger)
	app.MenuService = service.NewMenuService(app.DbDao, app.Logger)
	app.StockService = service.NewStockService(app.DbDao, app.Logger)
	app.OrderService = service.NewOrderService(app.DbDao, app.Logger)
	app.PaymentService = service.NewPaymentService(app.DbDao, app.Logger)
	app.Logger.Info().Msg("Finish setup services")
}

// db seed data, 沒有設定 SEED_FILE 時略過
func (app *ApplicationContext) dbInit() error {
	if app.Cf.SeedFile == "" {
		return nil
	}
	app.Logger.Info().Str("file", app.Cf.SeedFile).Msg("Start setup db init")

	data, err := seed.Load(app.Cf.SeedFile)
	if err != nil {
		return err
	}
	res, err := seed.Apply(context.Background(), app.MenuService, app.StockService, data)
	if err != nil {
		return err
	}

	app.Logger.Info().Int("created", res.Created).Int("skipped", res.Skipped).Msg("Finish setup db init")
	return nil
}

func (app *ApplicationContext) closeDb() error {
	if app.DbConn == nil {
		return nil
	}
	sqlDB, err := app.DbConn.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (app *ApplicationContext) Shutdown(ctx context.Context) error {
	app.Logger.Info().Msg("Start application shutdown")

	done := make(chan error, 1)
	go func() {
		// 關閉 DB
		app.Logger.Info().Msg("Closing database connection...")
		done <- app.closeDb()
	}()

	select {
	case err := <-done:
		if err != nil {
			return err
		}
		app.Logger.Info().Msg("Application shutdown complete")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("shutdown timeout: %v", ctx.Err())
	}
}
