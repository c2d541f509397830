package api

import (
	"time"

	"github.com/shaiso/Memora/internal/domain"
)

// Flashcard DTOs

// CreateFlashcardRequest — запрос на создание карточки.
type CreateFlashcardRequest struct {
	Question   string   `json:"question" validate:"required"`
	Answer     string   `json:"answer" validate:"required"`
	Deck       string   `json:"deck,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	Difficulty string   `json:"difficulty,omitempty"`
}

// UpdateFlashcardRequest — запрос на обновление карточки.
// PUT заменяет документ целиком, поэтому форма совпадает с созданием.
type UpdateFlashcardRequest struct {
	Question   string   `json:"question" validate:"required"`
	Answer     string   `json:"answer" validate:"required"`
	Deck       string   `json:"deck,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	Difficulty string   `json:"difficulty,omitempty"`
}

// FlashcardResponse — ответ с карточкой.
type FlashcardResponse struct {
	ID         string    `json:"id"`
	Question   string    `json:"question"`
	Answer     string    `json:"answer"`
	Deck       string    `json:"deck,omitempty"`
	Tags       []string  `json:"tags,omitempty"`
	Difficulty string    `json:"difficulty,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// FlashcardFromDomain конвертирует domain.Flashcard в FlashcardResponse.
// ObjectID уходит наружу hex-строкой, времена — в UTC.
func FlashcardFromDomain(c domain.Flashcard) FlashcardResponse {
	return FlashcardResponse{
		ID:         c.ID.Hex(),
		Question:   c.Question,
		Answer:     c.Answer,
		Deck:       c.Deck,
		Tags:       c.Tags,
		Difficulty: c.Difficulty,
		CreatedAt:  c.CreatedAt.UTC(),
		UpdatedAt:  c.UpdatedAt.UTC(),
	}
}
