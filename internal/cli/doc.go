// Package cli реализует инструмент командной строки Memora.
//
// # Обзор
//
// CLI — клиентская утилита для взаимодействия с Memora API.
// Работает через HTTP, не импортирует внутренние пакеты системы.
// CLI используется для управления карточками.
//
// # Ключевые компоненты
//
// ## Client
//
// HTTP-клиент для Memora API. Инкапсулирует все HTTP-запросы,
// парсинг ответов (DataResponse, ListResponse, ErrorResponse)
// и обработку ошибок.
//
//	client := cli.NewClient("http://localhost:8000")
//	cards, err := client.ListCards(cli.ListCardsOpts{Deck: "go"})
//
// ## Output
//
// Форматирование вывода. Поддерживает два режима:
//   - Таблицы (text/tabwriter) — по умолчанию
//   - JSON (json.MarshalIndent) — с флагом --json
//
// Данные выводятся в stdout, сообщения (Success/Error) — в stderr.
// Это позволяет использовать pipe: memora card list --json | jq .
//
// ## Commands
//
// Cobra-команды организованы по ресурсам:
//   - card: list, create, show, update, delete
//
// Каждая группа создаётся через фабричную функцию (NewCardCmd),
// принимающую clientFn и outputFn — замыкания для ленивого создания
// Client и Output после парсинга PersistentFlags.
package cli
