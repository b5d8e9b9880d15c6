package app

import (
	"os"
	"strconv"
)

// Драйверы хранилища заказов.
const (
	StorageDriverMemory   = "memory"
	StorageDriverPostgres = "postgres"
)

// Драйверы файлового хранилища.
const (
	FileStoreDriverMemory = "memory"
	FileStoreDriverS3     = "s3"
)

// Config описывает настройки запуска приложения.
type Config struct {
	HTTPAddr    string
	MetricsAddr string

	StorageDriver       string
	PostgresDSN         string
	PostgresAutoMigrate bool

	FileStoreDriver string
	S3Bucket        string
	S3Region        string
	S3Endpoint      string
	S3AccessKey     string
	S3SecretKey     string

	KafkaBrokers string
	KafkaTopic   string
}

// DefaultConfig возвращает конфигурацию для локального запуска:
// всё in-memory, без внешних зависимостей.
func DefaultConfig() Config {
	return Config{
		HTTPAddr:            ":8080",
		MetricsAddr:         ":9090",
		StorageDriver:       StorageDriverMemory,
		PostgresAutoMigrate: true,
		FileStoreDriver:     FileStoreDriverMemory,
		S3Bucket:            "order-invoices",
		S3Region:            "us-east-1",
	}
}

// ConfigFromEnv читает настройки из переменных окружения OIS_*,
// незаданные переменные оставляют значения по умолчанию.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	setEnvString(&cfg.HTTPAddr, "OIS_HTTP_ADDR")
	setEnvString(&cfg.MetricsAddr, "OIS_METRICS_ADDR")

	setEnvString(&cfg.StorageDriver, "OIS_STORAGE_DRIVER")
	setEnvString(&cfg.PostgresDSN, "OIS_POSTGRES_DSN")
	setEnvBool(&cfg.PostgresAutoMigrate, "OIS_POSTGRES_AUTO_MIGRATE")

	setEnvString(&cfg.FileStoreDriver, "OIS_FILESTORE_DRIVER")
	setEnvString(&cfg.S3Bucket, "OIS_S3_BUCKET")
	setEnvString(&cfg.S3Region, "OIS_S3_REGION")
	setEnvString(&cfg.S3Endpoint, "OIS_S3_ENDPOINT")
	setEnvString(&cfg.S3AccessKey, "OIS_S3_ACCESS_KEY")
	setEnvString(&cfg.S3SecretKey, "OIS_S3_SECRET_KEY")

	setEnvString(&cfg.KafkaBrokers, "OIS_KAFKA_BROKERS")
	setEnvString(&cfg.KafkaTopic, "OIS_KAFKA_TOPIC")

	return cfg
}

func setEnvString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setEnvBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			*dst = parsed
		}
	}
}
