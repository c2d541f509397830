package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shaiso/Memora/internal/domain"
	"github.com/shaiso/Memora/internal/repo"
	"github.com/shaiso/Memora/internal/telemetry"
)

// ListFlashcards возвращает список карточек.
// GET /api/flashcards?deck=&tag=&limit=
func (h *Handler) ListFlashcards(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := repo.ListFilter{
		Deck: q.Get("deck"),
		Tag:  q.Get("tag"),
	}
	if raw := q.Get("limit"); raw != "" {
		// Нечисловой или неположительный limit игнорируется.
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil && n > 0 {
			filter.Limit = n
		}
	}

	cards, err := h.cards.List(r.Context(), filter)
	if HandleRepoError(w, telemetry.FromContext(r.Context()), err, "") {
		return
	}

	result := make([]FlashcardResponse, len(cards))
	for i, c := range cards {
		result[i] = FlashcardFromDomain(c)
	}

	List(w, result, len(result))
}

// CreateFlashcard создаёт новую карточку.
// POST /api/flashcards
func (h *Handler) CreateFlashcard(w http.ResponseWriter, r *http.Request) {
	var req CreateFlashcardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		BadRequest(w, validationMessage(err))
		return
	}

	logger := telemetry.FromContext(r.Context())

	now := time.Now().UTC()
	card := &domain.Flashcard{
		Question:   req.Question,
		Answer:     req.Answer,
		Deck:       req.Deck,
		Tags:       req.Tags,
		Difficulty: req.Difficulty,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := h.cards.Create(r.Context(), card); err != nil {
		InternalError(w, logger, err)
		return
	}

	// Ответ — документ, перечитанный из базы после вставки.
	created, err := h.cards.GetByID(r.Context(), card.ID)
	if HandleRepoError(w, logger, err, "flashcard not found") {
		return
	}

	Created(w, FlashcardFromDomain(*created))
}

// GetFlashcard возвращает карточку по ID.
// GET /api/flashcards/{id}
func (h *Handler) GetFlashcard(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		BadRequest(w, "invalid flashcard id")
		return
	}

	logger := telemetry.WithCardID(telemetry.FromContext(r.Context()), id.Hex())

	card, err := h.cards.GetByID(r.Context(), id)
	if HandleRepoError(w, logger, err, "flashcard not found") {
		return
	}

	Success(w, FlashcardFromDomain(*card))
}

// UpdateFlashcard обновляет карточку целиком.
// PUT /api/flashcards/{id}
func (h *Handler) UpdateFlashcard(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		BadRequest(w, "invalid flashcard id")
		return
	}

	var req UpdateFlashcardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		BadRequest(w, validationMessage(err))
		return
	}

	logger := telemetry.WithCardID(telemetry.FromContext(r.Context()), id.Hex())

	upd := repo.CardUpdate{
		Question:   req.Question,
		Answer:     req.Answer,
		Deck:       req.Deck,
		Tags:       req.Tags,
		Difficulty: req.Difficulty,
		UpdatedAt:  time.Now().UTC(),
	}

	err = h.cards.Update(r.Context(), id, upd)
	if HandleRepoError(w, logger, err, "flashcard not found") {
		return
	}

	card, err := h.cards.GetByID(r.Context(), id)
	if HandleRepoError(w, logger, err, "flashcard not found") {
		return
	}

	Success(w, FlashcardFromDomain(*card))
}

// DeleteFlashcard удаляет карточку.
// DELETE /api/flashcards/{id}
func (h *Handler) DeleteFlashcard(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		BadRequest(w, "invalid flashcard id")
		return
	}

	logger := telemetry.WithCardID(telemetry.FromContext(r.Context()), id.Hex())

	err = h.cards.Delete(r.Context(), id)
	if HandleRepoError(w, logger, err, "flashcard not found") {
		return
	}

	NoContent(w)
}
