package config

import (
	"flag"

	"github.com/caarlos0/env/v6"
)

// Режимы работы приложения
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config хранит конфигурацию приложения.
type Config struct {
	ServerAddress string `env:"SERVER_ADDRESS"` // Адрес для запуска HTTP-сервера
	LogLevel      string `env:"LOG_LEVEL"`      // Уровень логирования
	AppEnv        string `env:"APP_ENV"`        // Режим работы: development или production
	EnableHTTPS   string `env:"ENABLE_HTTPS"`   // Непустое значение включает HTTPS
	TLSCertFile   string `env:"TLS_CERT_FILE"`  // Путь к TLS-сертификату
	TLSKeyFile    string `env:"TLS_KEY_FILE"`   // Путь к TLS-ключу
}

// NewConfig инициализирует конфигурацию, читая флаги и переменные окружения.
func NewConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress: ":8080",       // Значение по умолчанию
		LogLevel:      "info",        // Значение по умолчанию
		AppEnv:        EnvProduction, // Значение по умолчанию
	}

	// 1. Определение флагов командной строки
	flag.StringVar(&cfg.ServerAddress, "a", cfg.ServerAddress, "Адрес запуска HTTP-сервера (env: SERVER_ADDRESS)")
	flag.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "Уровень логирования (env: LOG_LEVEL)")
	flag.StringVar(&cfg.AppEnv, "e", cfg.AppEnv, "Режим работы приложения (env: APP_ENV)")

	// 2. Парсинг флагов командной строки
	flag.Parse()

	// 3. Парсинг переменных окружения (имеет наивысший приоритет)
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// IsDevelopment сообщает, работает ли приложение в режиме разработки.
// Вне этого режима внутренние сообщения об ошибках клиентам не отдаются.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == EnvDevelopment
}

// IsHTTPSEnabled сообщает, включен ли HTTPS
func (c *Config) IsHTTPSEnabled() bool {
	return c.EnableHTTPS != ""
}
