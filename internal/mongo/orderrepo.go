package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/appetiteclub/apt"
	"github.com/brewclub/storefront/internal/ordering"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OrderRepo implements the ordering.OrderRepo interface using MongoDB. It is
// the durable alternative to the in-memory store, selected by configuration.
type OrderRepo struct {
	client     *mongo.Client
	db         *mongo.Database
	collection *mongo.Collection
	logger     apt.Logger
	config     *apt.Config
}

// NewOrderRepo creates a new MongoDB order repository.
func NewOrderRepo(config *apt.Config, logger apt.Logger) *OrderRepo {
	if logger == nil {
		logger = apt.NewNoopLogger()
	}
	return &OrderRepo{
		logger: logger,
		config: config,
	}
}

// Start initializes the MongoDB connection.
func (r *OrderRepo) Start(ctx context.Context) error {
	mongoURL, _ := r.config.GetString("db.mongo.url")
	if mongoURL == "" {
		mongoURL = "mongodb://localhost:27017"
	}

	dbName, _ := r.config.GetString("db.mongo.name")
	if dbName == "" {
		dbName = "storefront"
	}

	clientOptions := options.Client().ApplyURI(mongoURL).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return fmt.Errorf("cannot connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("cannot ping MongoDB: %w", err)
	}

	r.client = client
	r.db = client.Database(dbName)
	r.collection = r.db.Collection("orders")

	// Orders are listed per tenant.
	shopIndexModel := mongo.IndexModel{
		Keys: bson.D{{Key: "shop_id", Value: 1}, {Key: "created_at", Value: -1}},
	}
	if _, err := r.collection.Indexes().CreateOne(ctx, shopIndexModel); err != nil {
		return fmt.Errorf("cannot create shop_id index: %w", err)
	}

	r.logger.Infof("Connected to MongoDB: %s, database: %s, collection: orders", mongoURL, dbName)
	return nil
}

// Stop closes the MongoDB connection.
func (r *OrderRepo) Stop(ctx context.Context) error {
	if r.client != nil {
		if err := r.client.Disconnect(ctx); err != nil {
			return fmt.Errorf("cannot disconnect from MongoDB: %w", err)
		}
		r.logger.Info("Disconnected from MongoDB")
	}
	return nil
}

func (r *OrderRepo) Create(ctx context.Context, order *ordering.Order) error {
	if _, err := r.collection.InsertOne(ctx, order); err != nil {
		return fmt.Errorf("cannot insert order %s: %w", order.ID, err)
	}
	return nil
}

func (r *OrderRepo) Get(ctx context.Context, id string) (*ordering.Order, error) {
	var order ordering.Order
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("order %s not found", id)
		}
		return nil, fmt.Errorf("cannot load order %s: %w", id, err)
	}
	return &order, nil
}

func (r *OrderRepo) ListByShop(ctx context.Context, shopID string) ([]*ordering.Order, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"shop_id": shopID}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("cannot list orders for shop %s: %w", shopID, err)
	}
	defer cursor.Close(ctx)

	var orders []*ordering.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("cannot decode orders for shop %s: %w", shopID, err)
	}
	return orders, nil
}
