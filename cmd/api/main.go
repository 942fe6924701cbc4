package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"payment-automation/internal/cache"
	"payment-automation/internal/config"
	"payment-automation/internal/database"
	"payment-automation/internal/email"
	"payment-automation/internal/handler"
	"payment-automation/internal/mercadopago"
	"payment-automation/internal/repository"
	"payment-automation/internal/telemetry"
	"payment-automation/internal/usecase"
)

func main() {
	if err := run(); err != nil {
		slog.Error("service stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	telemetry.SetupLogging(cfg.ServiceName)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	providers, err := telemetry.Init(ctx, cfg.ServiceName, cfg.OTLPEndpoint)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := providers.Shutdown(shutdownCtx); err != nil {
			slog.Error("telemetry shutdown", "error", err)
		}
	}()

	pool, err := database.Connect(ctx, cfg.DatabaseDSN())
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		return err
	}

	var store cache.Cache
	if cfg.RedisAddr != "" {
		redisCache := cache.NewRedis(cfg.RedisAddr)
		if err := redisCache.Ping(ctx); err != nil {
			return err
		}
		store = redisCache
		slog.Info("response cache backed by redis", "addr", cfg.RedisAddr)
	} else {
		store = cache.NewMemory()
		slog.Info("response cache is in-process memory")
	}

	mpClient := mercadopago.New(cfg.MercadoPagoBaseURL, cfg.MercadoPagoAccessToken)
	emailClient := email.New(cfg.ResendBaseURL, cfg.ResendAPIKey, cfg.ResendFromEmail)

	customerRepo := repository.NewCustomerRepository(pool)
	productRepo := repository.NewProductRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)
	paymentRepo := repository.NewPaymentRepository(pool)

	notifications := usecase.NewNotificationUseCase(emailClient)
	customers := usecase.NewCustomerUseCase(customerRepo, notifications)
	products := usecase.NewProductUseCase(productRepo)
	orders := usecase.NewOrderUseCase(orderRepo)
	payments := usecase.NewPaymentUseCase(
		paymentRepo, orderRepo, customerRepo, productRepo,
		mpClient, notifications,
		usecase.CheckoutURLs{APIBaseURL: cfg.WebhookBaseURL + cfg.APIPrefix},
	)

	router := handler.NewRouter(handler.RouterConfig{
		Prefix:        cfg.APIPrefix,
		ServiceName:   cfg.ServiceName,
		Customers:     handler.NewCustomerHandler(customers),
		Products:      handler.NewProductHandler(products),
		Orders:        handler.NewOrderHandler(orders),
		Payments:      handler.NewPaymentHandler(payments, cfg.FrontendURL),
		Emails:        handler.NewEmailHandler(notifications),
		Webhooks:      handler.NewWebhookHandler(payments),
		Cache:         store,
		CacheTTL:      cfg.CacheTTL,
		RateLimitMax:  cfg.RateLimitMax,
		RateLimitSpan: cfg.RateLimitWindow,
		DB:            pool,
		Production:    cfg.Production(),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("listening", "port", cfg.Port, "prefix", cfg.APIPrefix)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
