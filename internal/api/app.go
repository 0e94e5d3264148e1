package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"CheckoutSDK/config"
	"CheckoutSDK/internal/api/handlers"
	"CheckoutSDK/internal/api/session"
	"CheckoutSDK/internal/domain/checkout"
	"CheckoutSDK/internal/domain/partialauth"
	"CheckoutSDK/internal/external/gateway"
	"CheckoutSDK/internal/external/kafka"
	"CheckoutSDK/internal/external/opensearch"
	"CheckoutSDK/pkg/health"
	"CheckoutSDK/pkg/logger"

	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 15 * time.Second

func Run(cfg config.Config) error {
	logger.Setup(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	gw := gateway.New(gateway.Config{
		Timeout:        cfg.GatewayTimeout,
		RetryAttempts:  cfg.GatewayRetryAttempts,
		RetryBaseDelay: cfg.GatewayRetryBaseDelay,
		RetryMaxDelay:  cfg.GatewayRetryMaxDelay,
	})

	healthRegistry := health.NewRegistry()
	if cfg.GatewayHealthURL != "" {
		healthRegistry.Register(health.NewHTTPChecker("gateway", cfg.GatewayHealthURL))
	}

	var sinks checkout.FanOut
	var outcomeHandler *handlers.OutcomeHandler

	if cfg.KafkaEnabled() {
		var dlq *kafka.DLQPublisher
		if cfg.KafkaOutcomesDLQ != "" {
			dlq = kafka.NewDLQPublisher(cfg.KafkaBrokers, cfg.KafkaOutcomesDLQ)
		}
		kafkaSink := kafka.NewOutcomeSink(kafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaOutcomesTopic), dlq)
		defer func() {
			if err := kafkaSink.Close(); err != nil {
				slog.Error("Closing kafka outcome sink", slog.Any("error", err))
			}
		}()
		sinks = append(sinks, kafkaSink)
		healthRegistry.Register(health.NewKafkaChecker(cfg.KafkaBrokers))
	}

	if cfg.OpensearchEnabled() {
		index, err := opensearch.NewOutcomeIndex(ctx, cfg.OpensearchURLs, cfg.OpensearchIndexOutcomes)
		if err != nil {
			return fmt.Errorf("api - Run - opensearch.NewOutcomeIndex: %w", err)
		}
		sinks = append(sinks, index)
		outcomeHandler = handlers.NewOutcomeHandler(index)
		healthRegistry.Register(health.NewPingChecker("opensearch", index.Ping))
	}

	settings := checkout.DefaultSettings()
	settings.ShowCancelAlert = cfg.ShowCancelAlert
	settings.DeliveryTimeout = cfg.DeliveryTimeout

	registry := session.NewRegistry(checkout.Deps{
		Authenticator: gw,
		Submitter:     gw,
		PartialAuth:   partialauth.NewResolver(gw),
		Plans:         gw,
		PayerIP:       gw,
		Wallets:       gw,
		GooglePay:     gw,
		Sink:          sinks,
	}, session.Options{
		Settings:         settings,
		ChallengeTimeout: cfg.ChallengeTimeout,
		Retention:        cfg.SessionTTL,
		IdleTimeout:      cfg.SessionTTL,
	})

	engine := NewGinEngine()
	NewRouter(handlers.NewSessionHandler(registry, handlers.DefaultSyncWait), outcomeHandler, healthRegistry).SetUp(engine)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Starting checkout HTTP server", slog.Int("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down checkout service gracefully...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		registry.Close(shutdownCtx)
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
