package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/avkuzmin/wbcashback/internal/bot"
	"github.com/avkuzmin/wbcashback/internal/config"
	"github.com/avkuzmin/wbcashback/internal/handlers"
	adminhandlers "github.com/avkuzmin/wbcashback/internal/handlers/admin"
	"github.com/avkuzmin/wbcashback/internal/media"
	"github.com/avkuzmin/wbcashback/internal/notify"
	"github.com/avkuzmin/wbcashback/internal/pg"
	"github.com/avkuzmin/wbcashback/internal/reminder"
	"github.com/avkuzmin/wbcashback/internal/repo"
	"github.com/avkuzmin/wbcashback/internal/service"
	"github.com/avkuzmin/wbcashback/pkg/auth"
	"github.com/avkuzmin/wbcashback/pkg/clients"
	"github.com/avkuzmin/wbcashback/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg      *config.Config
	api      *handlers.Handlers
	srv      *service.Services
	repo     *repo.Repositories
	notifier *notify.Service
	bot      *bot.Bot
	reminder *reminder.Service

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	conn := pg.New(pool)
	a.cfg = cfg
	a.repo = repo.New(conn, txManager)
	a.notifier = notify.New(cfg.BotToken, clients.NewHTTPClient())
	a.srv = service.New(a.repo, txManager, a.notifier, media.NewStore(cfg.MediaRoot))
	a.api = handlers.New(a.srv, auth.NewJWTService(cfg.JWTSecret), adminhandlers.Credentials{
		Login:        cfg.AdminLogin,
		PasswordHash: cfg.AdminPasswordHash,
	})
	a.reminder = reminder.New(a.repo.OrderRepo, a.notifier, cfg.ReminderSpec, cfg.ReminderMaxAge)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	if err = a.startBot(ctx); err != nil {
		return fmt.Errorf("can't start telegram bot: %w", err)
	}

	if err = a.reminder.Start(); err != nil {
		return fmt.Errorf("can't start reminder: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

// startBot is a no-op without a token so the web API can run on its own.
func (a *Application) startBot(ctx context.Context) error {
	if a.cfg.BotToken == "" {
		zap.L().Warn("bot token is empty, telegram bot disabled")
		return nil
	}

	b, err := bot.New(a.cfg.BotToken, a.cfg.WebAppURL, a.srv.Intake, a.srv.User)
	if err != nil {
		return err
	}
	a.bot = b

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.bot.Start(ctx)
	}()

	return nil
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	if a.reminder != nil {
		a.reminder.Stop()
	}
	a.wg.Wait()
	if a.notifier != nil {
		a.notifier.Close()
	}
	close(a.errCh)
	wg.Wait()

	return appErr
}
