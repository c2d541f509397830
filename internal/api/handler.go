package api

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shaiso/Memora/internal/domain"
	"github.com/shaiso/Memora/internal/repo"
)

// CardStore — операции хранилища карточек, нужные API.
// Реализуется repo.FlashcardRepo.
type CardStore interface {
	List(ctx context.Context, filter repo.ListFilter) ([]domain.Flashcard, error)
	Create(ctx context.Context, card *domain.Flashcard) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Flashcard, error)
	Update(ctx context.Context, id primitive.ObjectID, upd repo.CardUpdate) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// Diagnostics — операции БД для диагностических ручек.
// Реализуется repo.DB.
type Diagnostics interface {
	Ping(ctx context.Context) error
	CollectionNames(ctx context.Context) ([]string, error)
}

// Handler — главный обработчик API с зависимостями.
type Handler struct {
	cards  CardStore
	diag   Diagnostics
	logger *slog.Logger
}

// Config — конфигурация для создания Handler.
type Config struct {
	Cards  CardStore
	Diag   Diagnostics
	Logger *slog.Logger
}

// NewHandler создаёт новый Handler.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		cards:  cfg.Cards,
		diag:   cfg.Diag,
		logger: cfg.Logger,
	}
}
