// Package config загружает конфигурацию сервиса.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config — конфигурация процесса memora-api.
type Config struct {
	// Addr — адрес HTTP-сервера, например ":8000".
	Addr string `koanf:"addr"`

	// DBURL — строка подключения к MongoDB.
	DBURL string `koanf:"db_url"`

	// DBName — имя базы данных.
	DBName string `koanf:"db_name"`

	// LogLevel — уровень логирования: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat — формат логов: json или text.
	LogFormat string `koanf:"log_format"`

	// CORSOrigins — разрешённые Origin через запятую. "*" — все.
	CORSOrigins string `koanf:"cors_origins"`

	// ShutdownTimeout — таймаут graceful shutdown в секундах.
	ShutdownTimeout int `koanf:"shutdown_timeout"`
}

// Default возвращает конфигурацию по умолчанию.
func Default() *Config {
	return &Config{
		Addr:            ":8000",
		DBURL:           "mongodb://localhost:27017",
		DBName:          "memora",
		LogLevel:        "info",
		LogFormat:       "json",
		CORSOrigins:     "*",
		ShutdownTimeout: 10,
	}
}

// Load собирает Config из слоёв (от низшего приоритета к высшему):
//  1. значения по умолчанию (Default)
//  2. YAML-файл, если задан путь в MEMORA_CONFIG
//  3. переменные окружения с префиксом MEMORA_
//     (MEMORA_ADDR, MEMORA_DB_URL, MEMORA_DB_NAME, ...)
//
// Для совместимости со старым бэкендом поддерживаются DATABASE_URL,
// DATABASE_NAME и PORT — они применяются, только если соответствующий
// ключ не задан слоями выше.
func Load() (*Config, error) {
	cfg := Default()

	k := koanf.New(".")

	if path := os.Getenv("MEMORA_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	// MEMORA_DB_URL -> db_url и т.д.; подчёркивания сохраняются,
	// чтобы ключи совпадали с koanf-тегами структуры.
	envProvider := env.Provider("MEMORA_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "memora_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// Переменные старого бэкенда.
	if !k.Exists("db_url") {
		if v := os.Getenv("DATABASE_URL"); v != "" {
			cfg.DBURL = v
		}
	}
	if !k.Exists("db_name") {
		if v := os.Getenv("DATABASE_NAME"); v != "" {
			cfg.DBName = v
		}
	}
	if !k.Exists("addr") {
		if v := os.Getenv("PORT"); v != "" {
			cfg.Addr = ":" + v
		}
	}

	if cfg.Addr == "" {
		return nil, errors.New("addr must not be empty")
	}
	if cfg.DBURL == "" {
		return nil, errors.New("db_url must not be empty")
	}
	if cfg.ShutdownTimeout <= 0 {
		return nil, errors.New("shutdown_timeout must be positive")
	}
	return cfg, nil
}

// CORSOriginList разбирает CORSOrigins в список Origin.
func (c *Config) CORSOriginList() []string {
	parts := strings.Split(c.CORSOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
