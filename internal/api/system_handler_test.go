package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type fakeDiag struct {
	pingErr  error
	names    []string
	namesErr error
}

func (f *fakeDiag) Ping(_ context.Context) error { return f.pingErr }

func (f *fakeDiag) CollectionNames(_ context.Context) ([]string, error) {
	return f.names, f.namesErr
}

func diagHandler(diag Diagnostics) *Handler {
	return NewHandler(Config{
		Cards:  &fakeCardStore{},
		Diag:   diag,
		Logger: discardLogger(),
	})
}

func decodeReport(t *testing.T, w *httptest.ResponseRecorder) TestReport {
	t.Helper()
	var report TestReport
	if err := json.NewDecoder(w.Body).Decode(&report); err != nil {
		t.Fatalf("failed to decode report: %v", err)
	}
	return report
}

func TestRoot(t *testing.T) {
	h := diagHandler(&fakeDiag{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	h.Root(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp map[string]string
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["message"] != "Hello from Memora Backend!" {
		t.Errorf("unexpected message: %s", resp["message"])
	}
}

func TestHello(t *testing.T) {
	h := diagHandler(&fakeDiag{})

	req := httptest.NewRequest(http.MethodGet, "/api/hello", nil)
	w := httptest.NewRecorder()
	h.Hello(w, req)

	var resp map[string]string
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["message"] != "Hello from the backend API!" {
		t.Errorf("unexpected message: %s", resp["message"])
	}
}

func TestTestDatabase_Connected(t *testing.T) {
	h := diagHandler(&fakeDiag{names: []string{"flashcard", "users"}})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	h.TestDatabase(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	report := decodeReport(t, w)
	if report.Backend != "✅ Running" {
		t.Errorf("unexpected backend status: %s", report.Backend)
	}
	if report.Database != "✅ Connected & Working" {
		t.Errorf("unexpected database status: %s", report.Database)
	}
	if report.ConnectionStatus != "Connected" {
		t.Errorf("unexpected connection status: %s", report.ConnectionStatus)
	}
	if len(report.Collections) != 2 || report.Collections[0] != "flashcard" {
		t.Errorf("unexpected collections: %v", report.Collections)
	}
}

func TestTestDatabase_PingError(t *testing.T) {
	h := diagHandler(&fakeDiag{pingErr: errors.New("server selection timeout")})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	h.TestDatabase(w, req)

	report := decodeReport(t, w)
	if !strings.HasPrefix(report.Database, "❌ Error: ") {
		t.Errorf("unexpected database status: %s", report.Database)
	}
	if report.ConnectionStatus != "Not Connected" {
		t.Errorf("unexpected connection status: %s", report.ConnectionStatus)
	}
	if report.Collections == nil || len(report.Collections) != 0 {
		t.Errorf("expected empty collections array, got %v", report.Collections)
	}
}

func TestTestDatabase_CollectionsError(t *testing.T) {
	h := diagHandler(&fakeDiag{namesErr: errors.New("unauthorized")})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	h.TestDatabase(w, req)

	report := decodeReport(t, w)
	if !strings.HasPrefix(report.Database, "⚠️  Connected but Error: ") {
		t.Errorf("unexpected database status: %s", report.Database)
	}
	// Ping прошёл, соединение есть.
	if report.ConnectionStatus != "Connected" {
		t.Errorf("unexpected connection status: %s", report.ConnectionStatus)
	}
}

func TestTestDatabase_CollectionsCapped(t *testing.T) {
	names := make([]string, 15)
	for i := range names {
		names[i] = "coll"
	}
	h := diagHandler(&fakeDiag{names: names})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	h.TestDatabase(w, req)

	report := decodeReport(t, w)
	if len(report.Collections) != maxTestCollections {
		t.Errorf("expected %d collections, got %d", maxTestCollections, len(report.Collections))
	}
}

func TestTestDatabase_NilDiag(t *testing.T) {
	h := diagHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	h.TestDatabase(w, req)

	report := decodeReport(t, w)
	if report.Database != "⚠️  Available but not initialized" {
		t.Errorf("unexpected database status: %s", report.Database)
	}
}

func TestTestDatabase_EnvStatus(t *testing.T) {
	t.Run("set", func(t *testing.T) {
		t.Setenv("MEMORA_DB_URL", "mongodb://localhost:27017")
		t.Setenv("MEMORA_DB_NAME", "memora")

		h := diagHandler(&fakeDiag{})
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()
		h.TestDatabase(w, req)

		report := decodeReport(t, w)
		if report.DatabaseURL != "✅ Set" {
			t.Errorf("unexpected database_url: %s", report.DatabaseURL)
		}
		if report.DatabaseName != "✅ Set" {
			t.Errorf("unexpected database_name: %s", report.DatabaseName)
		}
	})

	t.Run("legacy names count as set", func(t *testing.T) {
		t.Setenv("MEMORA_DB_URL", "")
		t.Setenv("DATABASE_URL", "mongodb://localhost:27017")

		h := diagHandler(&fakeDiag{})
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()
		h.TestDatabase(w, req)

		report := decodeReport(t, w)
		if report.DatabaseURL != "✅ Set" {
			t.Errorf("unexpected database_url: %s", report.DatabaseURL)
		}
	})

	t.Run("not set", func(t *testing.T) {
		t.Setenv("MEMORA_DB_URL", "")
		t.Setenv("DATABASE_URL", "")
		t.Setenv("MEMORA_DB_NAME", "")
		t.Setenv("DATABASE_NAME", "")

		h := diagHandler(&fakeDiag{})
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()
		h.TestDatabase(w, req)

		report := decodeReport(t, w)
		if report.DatabaseURL != "❌ Not Set" {
			t.Errorf("unexpected database_url: %s", report.DatabaseURL)
		}
		if report.DatabaseName != "❌ Not Set" {
			t.Errorf("unexpected database_name: %s", report.DatabaseName)
		}
	})
}

func TestSchema(t *testing.T) {
	h := diagHandler(&fakeDiag{})

	req := httptest.NewRequest(http.MethodGet, "/schema", nil)
	w := httptest.NewRecorder()
	h.Schema(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp map[string]struct {
		Title      string         `json:"title"`
		Type       string         `json:"type"`
		Properties map[string]any `json:"properties"`
		Required   []string       `json:"required"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	schema, ok := resp["flashcard"]
	if !ok {
		t.Fatal("expected flashcard schema")
	}
	if schema.Type != "object" {
		t.Errorf("unexpected schema type: %s", schema.Type)
	}
	if len(schema.Required) != 2 || schema.Required[0] != "question" || schema.Required[1] != "answer" {
		t.Errorf("unexpected required fields: %v", schema.Required)
	}
	for _, field := range []string{"question", "answer", "deck", "tags", "difficulty", "created_at", "updated_at"} {
		if _, ok := schema.Properties[field]; !ok {
			t.Errorf("expected property %s", field)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{name: "shorter than limit", in: "short", n: 10, want: "short"},
		{name: "exact limit", in: "12345", n: 5, want: "12345"},
		{name: "truncated", in: "1234567890", n: 5, want: "12345"},
		{name: "multibyte safe", in: "ошибка подключения", n: 6, want: "ошибка"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.in, tt.n); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
