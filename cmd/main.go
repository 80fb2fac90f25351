package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/RoyceAzure/lab/restaurant/internal/appcontext"
	"github.com/RoyceAzure/lab/restaurant/internal/config"
	"github.com/RoyceAzure/lab/restaurant/internal/logger"
	"github.com/RoyceAzure/lab/restaurant/internal/terminal"
)

func main() {
	configPath := flag.String("config", "app.env", "path to .env config file")
	flag.Parse()

	loader, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	cf := loader.Config()

	l, closer, err := logger.New(cf.LogLevel, cf.LogFile)
	if err != nil {
		log.Fatal(err)
	}
	defer closer.Close()

	// 設定檔異動時即時調整 log level
	loader.Watch(func(newCf *config.Config) {
		lvl, err := logger.SetLevel(newCf.LogLevel)
		if err != nil {
			l.Warn().Err(err).Msg("ignore invalid log level from reloaded config")
			return
		}
		l.Info().Str("level", lvl.String()).Msg("log level reloaded")
	})

	app, err := appcontext.NewApplicationContext(cf, l)
	if err != nil {
		l.Error().Err(err).Msg("failed to start application")
		closer.Close()
		log.Fatal(err)
	}

	// 設置訊號監聽
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	console := terminal.NewConsole(os.Stdin, os.Stdout, terminal.Services{
		Customers: app.CustomerService,
		Employees: app.EmployeeService,
		Menu:      app.MenuService,
		Stock:     app.StockService,
		Orders:    app.OrderService,
		Payments:  app.PaymentService,
	}, l, terminal.WithClearScreen(cf.ClearScreen))

	done := make(chan error, 1)
	go func() {
		done <- console.Run(ctx)
	}()

	select {
	case err = <-done:
	case <-ctx.Done():
		l.Info().Msg("Received shutdown signal")
	}
	if err != nil {
		l.Error().Err(err).Msg("terminal loop failed")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.Shutdown(shutdownCtx); err != nil {
		l.Error().Err(err).Msg("shutdown error")
	}
}
