package api

import (
	"net/http"
	"os"
)

// maxTestCollections — сколько имён коллекций показывает /test.
const maxTestCollections = 10

// TestReport — отчёт диагностики базы данных.
type TestReport struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// Root — приветствие сервиса.
// GET /
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, map[string]string{"message": "Hello from Memora Backend!"})
}

// Hello — проверка доступности API.
// GET /api/hello
func (h *Handler) Hello(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, map[string]string{"message": "Hello from the backend API!"})
}

// TestDatabase проверяет доступность базы данных и возвращает отчёт:
// статус соединения, состояние переменных окружения и первые
// коллекции базы.
// GET /test
func (h *Handler) TestDatabase(w http.ResponseWriter, r *http.Request) {
	report := TestReport{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if h.diag == nil {
		report.Database = "⚠️  Available but not initialized"
	} else if err := h.diag.Ping(r.Context()); err != nil {
		report.Database = "❌ Error: " + truncate(err.Error(), 50)
	} else {
		report.Database = "✅ Available"
		report.ConnectionStatus = "Connected"

		names, err := h.diag.CollectionNames(r.Context())
		if err != nil {
			report.Database = "⚠️  Connected but Error: " + truncate(err.Error(), 50)
		} else {
			if len(names) > maxTestCollections {
				names = names[:maxTestCollections]
			}
			report.Collections = names
			report.Database = "✅ Connected & Working"
		}
	}

	report.DatabaseURL = envStatus("MEMORA_DB_URL", "DATABASE_URL")
	report.DatabaseName = envStatus("MEMORA_DB_NAME", "DATABASE_NAME")

	JSON(w, http.StatusOK, report)
}

// Schema возвращает JSON-схемы моделей для внешних инструментов.
// GET /schema
func (h *Handler) Schema(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, map[string]any{
		"flashcard": flashcardSchema,
	})
}

// flashcardSchema — JSON-схема модели Flashcard.
var flashcardSchema = map[string]any{
	"title": "Flashcard",
	"type":  "object",
	"properties": map[string]any{
		"question": map[string]any{"title": "Question", "type": "string"},
		"answer":   map[string]any{"title": "Answer", "type": "string"},
		"deck":     map[string]any{"title": "Deck", "type": "string"},
		"tags": map[string]any{
			"title": "Tags",
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"difficulty": map[string]any{"title": "Difficulty", "type": "string"},
		"created_at": map[string]any{"title": "Created At", "type": "string", "format": "date-time"},
		"updated_at": map[string]any{"title": "Updated At", "type": "string", "format": "date-time"},
	},
	"required": []string{"question", "answer"},
}

// envStatus сообщает, задана ли хотя бы одна из переменных окружения.
func envStatus(keys ...string) string {
	for _, k := range keys {
		if os.Getenv(k) != "" {
			return "✅ Set"
		}
	}
	return "❌ Not Set"
}

// truncate обрезает строку до n рун.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
