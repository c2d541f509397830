// Package api содержит HTTP API сервер.
//
// Структура:
//   - handler.go           — Handler с DI (хранилище, диагностика, logger)
//   - routes.go            — регистрация маршрутов
//   - middleware.go        — middleware (request id, logging, recovery, metrics, CORS)
//   - response.go          — унифицированные JSON-ответы и обработка ошибок
//   - dto.go               — Data Transfer Objects (request/response)
//   - validate.go          — валидация DTO
//   - flashcard_handler.go — обработчики для /api/flashcards
//   - system_handler.go    — диагностические обработчики (/, /api/hello, /test, /schema)
//
// API предоставляет REST endpoints для CRUD операций над карточками.
package api
