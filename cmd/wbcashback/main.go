package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/avkuzmin/wbcashback/internal/app"
	"github.com/rs/zerolog/log"
	"go.uber.org/zap"
)

//	@title			WB Cashback API
//	@version		1.0
//	@description	Cashback storefront: web catalog, cart and operator API

// @host		localhost:8080
// @BasePath	/
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	app := app.New()
	err := app.Start(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Can't start application")
		zap.L().Fatal("Can't start application: ", zap.Error(err))
	}

	err = app.Wait(ctx, cancel)
	if err != nil {
		zap.L().Fatal("All systems closed with errors. LastError:", zap.Error(err))
	}

	zap.L().Info("All systems closed without errors")
}
