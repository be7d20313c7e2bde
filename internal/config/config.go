package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Services ServicesConfig
	HTTP     HTTPConfig
	Log      LogConfig
}

// ServerConfig is used by the stub backend command only; the console itself
// listens on nothing.
type ServerConfig struct {
	Port int
}

// ServicesConfig holds the base URL of each backend service. The defaults
// match the standard deployment where every domain runs as its own service.
type ServicesConfig struct {
	Accounts     string
	CatalogItems string
	Orders       string
	Payments     string
}

type HTTPConfig struct {
	Timeout time.Duration
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", 8090)
	viper.SetDefault("ACCOUNTS_URL", "http://localhost:8081")
	viper.SetDefault("CATALOG_ITEMS_URL", "http://localhost:8082")
	viper.SetDefault("ORDERS_URL", "http://localhost:8083")
	viper.SetDefault("PAYMENTS_URL", "http://localhost:8084")
	viper.SetDefault("HTTP_TIMEOUT", "10s")
	viper.SetDefault("LOG_LEVEL", "info")

	timeout, err := time.ParseDuration(viper.GetString("HTTP_TIMEOUT"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetInt("SERVER_PORT"),
		},
		Services: ServicesConfig{
			Accounts:     viper.GetString("ACCOUNTS_URL"),
			CatalogItems: viper.GetString("CATALOG_ITEMS_URL"),
			Orders:       viper.GetString("ORDERS_URL"),
			Payments:     viper.GetString("PAYMENTS_URL"),
		},
		HTTP: HTTPConfig{
			Timeout: timeout,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	return cfg, nil
}
