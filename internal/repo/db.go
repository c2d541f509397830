package repo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	// pingTimeout — таймаут проверки доступности БД.
	pingTimeout = 5 * time.Second

	// maxPoolSize — максимум соединений в пуле драйвера.
	maxPoolSize = 10
)

// DB — подключение к MongoDB: клиент плюс выбранная база.
type DB struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect создаёт подключение к MongoDB.
//
// Драйвер ленивый: реальные соединения устанавливаются при первом
// запросе, поэтому Connect не гарантирует, что база доступна.
// Доступность проверяется отдельно через Ping.
func Connect(ctx context.Context, url, name string) (*DB, error) {
	opts := options.Client().
		ApplyURI(url).
		SetMaxPoolSize(maxPoolSize).
		SetServerSelectionTimeout(pingTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	return &DB{
		client: client,
		db:     client.Database(name),
	}, nil
}

// Close разрывает все соединения с БД.
func (d *DB) Close(ctx context.Context) error {
	if err := d.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnect mongo: %w", err)
	}
	return nil
}

// Ping проверяет доступность БД с таймаутом pingTimeout.
func (d *DB) Ping(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := d.client.Ping(pingCtx, readpref.Primary()); err != nil {
		return fmt.Errorf("ping db: %w", err)
	}
	return nil
}

// Name возвращает имя подключенной базы.
func (d *DB) Name() string {
	return d.db.Name()
}

// CollectionNames возвращает имена коллекций базы.
func (d *DB) CollectionNames(ctx context.Context) ([]string, error) {
	names, err := d.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	return names, nil
}

// Collection возвращает коллекцию по имени.
func (d *DB) Collection(name string) *mongo.Collection {
	return d.db.Collection(name)
}
