package app

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/ois/internal/domain"
	"github.com/vladislavdragonenkov/ois/internal/storage/memory"
	"github.com/vladislavdragonenkov/ois/internal/storage/postgres"
	"github.com/vladislavdragonenkov/ois/internal/storage/s3"
)

// runtimeDependencies — набор хранилищ, собранный по конфигурации.
type runtimeDependencies struct {
	orders domain.OrderRepository
	files  domain.FileStore
	store  *postgres.Store
}

// close освобождает ресурсы durable-хранилищ, если они были открыты.
func (d *runtimeDependencies) close(logger *log.Entry) {
	if d.store == nil {
		return
	}
	if err := d.store.Close(); err != nil {
		logger.WithError(err).Warn("failed to close postgres store")
	}
}

// initRuntimeDependencies выбирает реализации хранилищ по драйверам
// из конфигурации.
func initRuntimeDependencies(ctx context.Context, cfg Config, logger *log.Entry) (*runtimeDependencies, error) {
	deps := &runtimeDependencies{}

	switch cfg.StorageDriver {
	case StorageDriverMemory, "":
		deps.orders = memory.NewOrderRepository()
		logger.Info("using in-memory order storage")
	case StorageDriverPostgres:
		if cfg.PostgresDSN == "" {
			return nil, fmt.Errorf("postgres storage driver requires OIS_POSTGRES_DSN")
		}
		store, err := postgres.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("init postgres storage: %w", err)
		}
		if cfg.PostgresAutoMigrate {
			if err := store.MigrateUp(ctx); err != nil {
				_ = store.Close()
				return nil, fmt.Errorf("apply postgres migrations: %w", err)
			}
		}
		deps.store = store
		deps.orders = postgres.NewOrderRepository(store)
		logger.Info("using postgres order storage")
	default:
		return nil, fmt.Errorf("unsupported storage driver: %s", cfg.StorageDriver)
	}

	switch cfg.FileStoreDriver {
	case FileStoreDriverMemory, "":
		deps.files = memory.NewFileStore(cfg.S3Bucket)
		logger.Info("using in-memory file storage")
	case FileStoreDriverS3:
		files, err := s3.NewFileStore(ctx, s3.Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
		if err != nil {
			deps.close(logger)
			return nil, fmt.Errorf("init s3 file storage: %w", err)
		}
		deps.files = files
		logger.WithField("bucket", cfg.S3Bucket).Info("using s3 file storage")
	default:
		deps.close(logger)
		return nil, fmt.Errorf("unsupported file store driver: %s", cfg.FileStoreDriver)
	}

	return deps, nil
}
