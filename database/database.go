package database

import (
	"context"
	"time"

	"github.com/parmaworld/parmaworld-api/config"
	"github.com/parmaworld/parmaworld-api/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const connectTimeout = 10 * time.Second

// DB is the single data-access handle for the process. It is constructed in
// main, passed to every component that touches storage, and closed on
// shutdown.
type DB struct {
	client *mongo.Client
	db     *mongo.Database
	log    *zap.Logger
}

// Connect dials MongoDB, verifies the connection with a ping and prepares
// the indexes the application relies on.
func Connect(ctx context.Context, cfg config.Config, log *zap.Logger) (*DB, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(cfg.MongoURI).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1)))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	db := &DB{client: client, db: client.Database(cfg.DBName), log: log}
	if err := db.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	log.Info("connected to MongoDB", zap.String("database", cfg.DBName))
	return db, nil
}

// ensureIndexes creates the unique index on users.email. Sign-in is
// upsert-by-email; without this index two concurrent first sign-ins for the
// same address can both insert.
func (d *DB) ensureIndexes(ctx context.Context) error {
	_, err := d.db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (d *DB) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}

func (d *DB) Users() *Collection[models.User] {
	return NewCollection[models.User](d.db.Collection("users"))
}

func (d *DB) Medicines() *Collection[models.Medicine] {
	return NewCollection[models.Medicine](d.db.Collection("medicine"))
}

func (d *DB) Categories() *Collection[models.Category] {
	return NewCollection[models.Category](d.db.Collection("category"))
}

func (d *DB) Cart() *Collection[models.CartItem] {
	return NewCollection[models.CartItem](d.db.Collection("cart"))
}

func (d *DB) Advertisements() *Collection[models.Advertisement] {
	return NewCollection[models.Advertisement](d.db.Collection("advertisements"))
}

func (d *DB) Orders() *Collection[models.Order] {
	return NewCollection[models.Order](d.db.Collection("orders"))
}
