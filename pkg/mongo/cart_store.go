package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/pieglobal/storefront/pkg/cart"
)

type cartDocument struct {
	Key       string    `bson:"_id"`
	Payload   []byte    `bson:"payload"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// CartStore keeps one document per cart key. Expiry is left to a TTL index
// on updated_at, see EnsureIndexes.
type CartStore struct {
	coll *mongo.Collection
}

// NewCartStore panics on a nil database.
func NewCartStore(db *mongo.Database, collection string) *CartStore {
	if db == nil {
		panic(ErrNilDatabase)
	}
	return &CartStore{coll: db.Collection(collection)}
}

// EnsureIndexes creates the TTL index that expires carts idle for ttl.
// A non-positive ttl is a no-op.
func (s *CartStore) EnsureIndexes(ctx context.Context, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "updated_at", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(int32(ttl / time.Second)),
	})
	if err != nil {
		return errors.Join(ErrCreateIndex, err)
	}
	return nil
}

func (s *CartStore) Load(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, cart.ErrEmptyKey
	}
	var doc cartDocument
	if err := s.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cart.ErrNotFound
		}
		return nil, err
	}
	return doc.Payload, nil
}

func (s *CartStore) Save(ctx context.Context, key string, data []byte) error {
	if key == "" {
		return cart.ErrEmptyKey
	}
	doc := cartDocument{Key: key, Payload: data, UpdatedAt: time.Now().UTC()}
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	return err
}

func (s *CartStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return cart.ErrEmptyKey
	}
	_, err := s.coll.DeleteOne(ctx, bson.M{"_id": key})
	return err
}

var _ cart.Store = (*CartStore)(nil)
