package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/orderdesk/orders-api/internal/core/domain"
)

const collectionOrders = "orders"

// OrderRepository implements ports.OrderRepository using MongoDB. Totals are
// stored as Decimal128.
type OrderRepository struct {
	col *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{col: db.Collection(collectionOrders)}
}

type orderDocument struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty"`
	ClientID  primitive.ObjectID   `bson:"client_id"`
	Total     primitive.Decimal128 `bson:"total"`
	OrderedAt time.Time            `bson:"ordered_at"`
}

func (d orderDocument) toDomain() (*domain.Order, error) {
	total, err := decimal.NewFromString(d.Total.String())
	if err != nil {
		return nil, fmt.Errorf("decode order %s total: %w", d.ID.Hex(), err)
	}
	return &domain.Order{
		ID:        d.ID.Hex(),
		ClientID:  d.ClientID.Hex(),
		Total:     total,
		OrderedAt: d.OrderedAt.UTC(),
	}, nil
}

func toDecimal128(d decimal.Decimal) (primitive.Decimal128, error) {
	return primitive.ParseDecimal128(d.String())
}

func (r *OrderRepository) List(ctx context.Context) ([]*domain.Order, error) {
	return r.find(ctx, bson.M{})
}

func (r *OrderRepository) ListByClient(ctx context.Context, clientID string) ([]*domain.Order, error) {
	oid, ok := objectID(clientID)
	if !ok {
		return []*domain.Order{}, nil
	}
	return r.find(ctx, bson.M{"client_id": oid})
}

func (r *OrderRepository) find(ctx context.Context, filter bson.M) ([]*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find orders: %w", err)
	}
	var docs []orderDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}

	out := make([]*domain.Order, 0, len(docs))
	for _, d := range docs {
		o, err := d.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrOrderNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d orderDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}
	return d.toDomain()
}

// Create inserts o and sets its ID. The client reference must already have
// been validated by the caller.
func (r *OrderRepository) Create(ctx context.Context, o *domain.Order) error {
	clientOID, ok := objectID(o.ClientID)
	if !ok {
		return domain.ErrReferencedEntityNotFound
	}
	total, err := toDecimal128(o.Total)
	if err != nil {
		return fmt.Errorf("encode order total: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, orderDocument{
		ClientID:  clientOID,
		Total:     total,
		OrderedAt: o.OrderedAt,
	})
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		o.ID = oid.Hex()
	}
	return nil
}

// Update rewrites the order total.
func (r *OrderRepository) Update(ctx context.Context, o *domain.Order) error {
	oid, ok := objectID(o.ID)
	if !ok {
		return domain.ErrOrderNotFound
	}
	total, err := toDecimal128(o.Total)
	if err != nil {
		return fmt.Errorf("encode order total: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"total": total}})
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	oid, ok := objectID(id)
	if !ok {
		return domain.ErrOrderNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

// EnsureIndexes creates the client_id index used by HasOrders and ListByClient.
func (r *OrderRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "client_id", Value: 1}},
	})
	return err
}
