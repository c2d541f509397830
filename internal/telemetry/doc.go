// Package telemetry обеспечивает наблюдаемость сервиса.
//
// Включает:
//   - logging.go — structured logging через slog
//   - metrics.go — Prometheus метрики HTTP API
//
// Формат и уровень логирования задаются конфигурацией,
// метрики экспортируются на /metrics endpoint.
package telemetry
