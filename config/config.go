package config

import (
	"fmt"
	"os"
)

type Config struct {
	HttpAddr string

	ApiUrl string
	CdnUrl string

	// CatalogSource is "api" or "sql".
	CatalogSource string
	// DbDriver is "postgres" or "sqlite3".
	DbDriver   string
	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string
	SqlitePath string

	// OrderSink is "api" or "postgres".
	OrderSink   string
	PgOrdersUrl string

	RedisHost string
	RedisPort string

	// EventsBroker is "none", "kafka" or "stan".
	EventsBroker string
	KafkaBroker  string
	KafkaTopic   string
	StanCluster  string
	StanClient   string
	StanUrl      string
	StanSubject  string
}

func Load() Config {
	return Config{
		HttpAddr:      getEnv("HTTP_ADDR", ":8080"),
		ApiUrl:        getEnv("API_URL", "https://larek-api.nomoreparties.co/api/weblarek"),
		CdnUrl:        getEnv("CDN_URL", "https://larek-api.nomoreparties.co/content/weblarek"),
		CatalogSource: getEnv("CATALOG_SOURCE", "api"),
		DbDriver:      getEnv("DB_DRIVER", "postgres"),
		DbHost:        getEnv("DATABASE_HOST", "localhost"),
		DbPort:        getEnv("DATABASE_PORT", "5432"),
		DbUser:        getEnv("DATABASE_USER", "postgres"),
		DbPassword:    getEnv("DATABASE_PASSWORD", ""),
		DbName:        getEnv("DATABASE_NAME", "larek"),
		SqlitePath:    getEnv("SQLITE_PATH", "larek.db"),
		OrderSink:     getEnv("ORDER_SINK", "api"),
		PgOrdersUrl:   getEnv("PG_ORDERS_URL", "postgres://postgres@localhost:5432/larek"),
		RedisHost:     getEnv("REDIS_HOST", ""),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		EventsBroker:  getEnv("EVENTS_BROKER", "none"),
		KafkaBroker:   getEnv("KAFKA_BROKER", "localhost:9092"),
		KafkaTopic:    getEnv("KAFKA_TOPIC", "orders.placed"),
		StanCluster:   getEnv("STAN_CLUSTER", "test-cluster"),
		StanClient:    getEnv("STAN_CLIENT", "larek-store"),
		StanUrl:       getEnv("STAN_URL", "nats://localhost:4222"),
		StanSubject:   getEnv("STAN_SUBJECT", "orders.placed"),
	}
}

// DSN is the database/sql data source for DbDriver.
func (c Config) DSN() string {
	if c.DbDriver == "sqlite3" {
		return c.SqlitePath
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", c.DbUser, c.DbPassword, c.DbHost, c.DbPort, c.DbName)
}

func (c Config) RedisAddr() string {
	if c.RedisHost == "" {
		return ""
	}
	return c.RedisHost + ":" + c.RedisPort
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
