package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CollectionFlashcards — имя коллекции с карточками в MongoDB.
const CollectionFlashcards = "flashcard"

// Flashcard — учебная карточка "вопрос-ответ".
//
// Карточка — единственная сущность системы. Хранится как документ
// в коллекции flashcard; наружу _id отдаётся строкой в поле id.
type Flashcard struct {
	// ID — идентификатор документа (Mongo ObjectID).
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	// Question — лицевая сторона карточки. Обязательное поле.
	Question string `bson:"question" json:"question"`

	// Answer — обратная сторона карточки. Обязательное поле.
	Answer string `bson:"answer" json:"answer"`

	// Deck — имя колоды, к которой относится карточка
	// (например, "go-basics", "spanish-verbs"). Необязательное.
	Deck string `bson:"deck,omitempty" json:"deck,omitempty"`

	// Tags — произвольные метки для фильтрации. Необязательные.
	Tags []string `bson:"tags,omitempty" json:"tags,omitempty"`

	// Difficulty — субъективная сложность ("easy", "medium", "hard").
	// Свободная строка, сервер её не интерпретирует.
	Difficulty string `bson:"difficulty,omitempty" json:"difficulty,omitempty"`

	// CreatedAt — время создания карточки (UTC).
	CreatedAt time.Time `bson:"created_at" json:"created_at"`

	// UpdatedAt — время последнего обновления (UTC).
	// При создании совпадает с CreatedAt.
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
