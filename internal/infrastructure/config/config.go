package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort         int           `env:"HTTP_PORT" envDefault:"8080"`
	MetricsPort      int           `env:"METRICS_PORT" envDefault:"8081"`
	JWTSecret        string        `env:"JWT_SECRET"`
	StorageBucket    string        `env:"STORAGE_BUCKET"`
	PollInterval     time.Duration `env:"STREAM_POLL_INTERVAL" envDefault:"2s"`
	MercadoPagoToken string        `env:"MERCADOPAGO_ACCESS_TOKEN"`
	QuotesTable      string        `env:"QUOTES_TABLE" envDefault:"quotes"`
	ClientsTable     string        `env:"CLIENTS_TABLE" envDefault:"clients"`
}

func New(envPath string) (Config, error) {
	var c Config

	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	err = env.Parse(&c)
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
