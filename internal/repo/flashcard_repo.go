package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shaiso/Memora/internal/domain"
)

// FlashcardRepo — репозиторий для работы с коллекцией flashcard.
type FlashcardRepo struct {
	coll *mongo.Collection
}

// NewFlashcardRepo создаёт новый FlashcardRepo.
func NewFlashcardRepo(db *DB) *FlashcardRepo {
	return &FlashcardRepo{coll: db.Collection(domain.CollectionFlashcards)}
}

// ListFilter — фильтр списка карточек.
type ListFilter struct {
	// Deck — точное совпадение имени колоды.
	Deck string

	// Tag — карточка содержит метку в массиве tags.
	Tag string

	// Limit — максимум документов в ответе. <=0 — без ограничения.
	Limit int64
}

// document собирает Mongo-фильтр из заданных полей.
func (f ListFilter) document() bson.M {
	filter := bson.M{}
	if f.Deck != "" {
		filter["deck"] = f.Deck
	}
	if f.Tag != "" {
		// Равенство по полю-массиву в Mongo означает "содержит элемент".
		filter["tags"] = f.Tag
	}
	return filter
}

// List возвращает карточки по фильтру, новые первыми.
func (r *FlashcardRepo) List(ctx context.Context, filter ListFilter) ([]domain.Flashcard, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if filter.Limit > 0 {
		opts = opts.SetLimit(filter.Limit)
	}

	cur, err := r.coll.Find(ctx, filter.document(), opts)
	if err != nil {
		return nil, fmt.Errorf("list flashcards: %w", err)
	}
	defer cur.Close(ctx)

	var cards []domain.Flashcard
	for cur.Next(ctx) {
		var card domain.Flashcard
		if err := cur.Decode(&card); err != nil {
			return nil, fmt.Errorf("decode flashcard: %w", err)
		}
		cards = append(cards, card)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate flashcards: %w", err)
	}
	return cards, nil
}

// Create вставляет новую карточку и проставляет ей ID,
// выданный базой.
func (r *FlashcardRepo) Create(ctx context.Context, card *domain.Flashcard) error {
	res, err := r.coll.InsertOne(ctx, card)
	if err != nil {
		return fmt.Errorf("insert flashcard: %w", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		card.ID = id
	}
	return nil
}

// GetByID возвращает карточку по ID.
func (r *FlashcardRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Flashcard, error) {
	var card domain.Flashcard
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&card)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get flashcard by id: %w", err)
	}
	return &card, nil
}

// CardUpdate — полное обновление содержимого карточки.
//
// CreatedAt сюда не входит: время создания неизменно,
// UpdatedAt проставляет вызывающая сторона.
type CardUpdate struct {
	Question   string
	Answer     string
	Deck       string
	Tags       []string
	Difficulty string
	UpdatedAt  time.Time
}

// document собирает $set-документ обновления.
func (u CardUpdate) document() bson.M {
	return bson.M{"$set": bson.M{
		"question":   u.Question,
		"answer":     u.Answer,
		"deck":       u.Deck,
		"tags":       u.Tags,
		"difficulty": u.Difficulty,
		"updated_at": u.UpdatedAt,
	}}
}

// Update применяет полное обновление карточки.
func (r *FlashcardRepo) Update(ctx context.Context, id primitive.ObjectID, upd CardUpdate) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, upd.document())
	if err != nil {
		return fmt.Errorf("update flashcard: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete удаляет карточку.
func (r *FlashcardRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete flashcard: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
