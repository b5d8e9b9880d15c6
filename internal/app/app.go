package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/ois/internal/domain"
	healthcheck "github.com/vladislavdragonenkov/ois/internal/health"
	"github.com/vladislavdragonenkov/ois/internal/messaging/kafka"
	msgmemory "github.com/vladislavdragonenkov/ois/internal/messaging/memory"
	"github.com/vladislavdragonenkov/ois/internal/service/intake"
	"github.com/vladislavdragonenkov/ois/internal/transport/httpapi"
	"github.com/vladislavdragonenkov/ois/internal/version"
)

const shutdownTimeout = 5 * time.Second

// Run собирает зависимости по конфигурации и держит оба HTTP-сервера
// (API и операционный) до отмены контекста.
func Run(ctx context.Context, cfg Config) error {
	logger := log.WithField("component", "app")

	deps, err := initRuntimeDependencies(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer deps.close(logger)

	// Kafka опционален: без брокеров уведомления остаются локальными.
	kafkaProducer, _ := initKafkaProducer(cfg.KafkaBrokers, logger)
	var notifier domain.NotificationPublisher
	if kafkaProducer != nil {
		notifier = kafka.NewPublisher(kafkaProducer, cfg.KafkaTopic)
	} else {
		notifier = msgmemory.NewPublisher()
		logger.Info("kafka is not configured, notifications are kept in-process")
	}
	defer closeKafka(kafkaProducer, logger)

	svc := intake.NewService(deps.orders, deps.files, notifier, logger.WithField("layer", "intake"))
	router := httpapi.NewRouter(httpapi.NewHandler(svc, logger.WithField("layer", "http")))

	healthHandler := healthcheck.NewHandler(version.GetVersion())
	if deps.store != nil {
		healthHandler.Register("postgres", deps.store.Ping)
	}

	opsSrv := startOpsServer(ctx, cfg.MetricsAddr, logger, healthHandler)

	apiSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}
	errCh := make(chan error, 1)
	go func() {
		logger.Infof("HTTP сервер слушает %s", cfg.HTTPAddr)
		errCh <- apiSrv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("получен сигнал остановки, останавливаем HTTP сервер")
		shutdownHTTP(apiSrv, logger)
		shutdownHTTP(opsSrv, logger)
		return ctx.Err()
	case err := <-errCh:
		shutdownHTTP(opsSrv, logger)
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// startOpsServer запускает операционный HTTP-сервер: метрики и health checks.
func startOpsServer(ctx context.Context, addr string, logger *log.Entry, healthHandler *healthcheck.Handler) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/healthz", healthHandler)
	mux.HandleFunc("/livez", healthcheck.LivenessHandler)
	mux.HandleFunc("/readyz", healthHandler.ReadinessHandler)

	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		logger.Infof("метрики доступны по адресу %s/metrics", addr)
		logger.Infof("health checks: %s/healthz, %s/livez, %s/readyz", addr, addr, addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Warn("ops server failed")
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownHTTP(srv, logger)
	}()

	return srv
}

// shutdownHTTP аккуратно останавливает HTTP-сервер.
func shutdownHTTP(srv *http.Server, logger *log.Entry) {
	if srv == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.WithError(err).Warn("http shutdown with error")
	}
}
