package reports

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/liekit/pkg/lies"
)

// MongoConfig represents the configuration for the document store.
type MongoConfig struct {
	ConnectionURL   string        `env:"MONGODB_URL,required"`                         // ConnectionURL is the URL of the database.
	Database        string        `env:"MONGODB_DATABASE" envDefault:"liekit"`         // Database holds the verdict collection.
	Collection      string        `env:"MONGODB_COLLECTION" envDefault:"verdicts"`     // Collection stores one document per verdict.
	ConnectTimeout  time.Duration `env:"MONGODB_CONNECT_TIMEOUT" envDefault:"10s"`     // ConnectTimeout is the timeout for connecting to the database.
	MaxPoolSize     uint64        `env:"MONGODB_MAX_POOL_SIZE" envDefault:"100"`       // MaxPoolSize is the maximum number of connections in the connection pool.
	MinPoolSize     uint64        `env:"MONGODB_MIN_POOL_SIZE" envDefault:"1"`         // MinPoolSize is the minimum number of connections in the connection pool.
	MaxConnIdleTime time.Duration `env:"MONGODB_MAX_CONN_IDLE_TIME" envDefault:"300s"` // MaxConnIdleTime is the maximum time that a connection can remain idle in the connection pool.
	RetryAttempts   int           `env:"MONGODB_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval   time.Duration `env:"MONGODB_RETRY_INTERVAL" envDefault:"5s"`
}

// ConnectMongo creates a client and pings it, retrying on failure.
func ConnectMongo(ctx context.Context, cfg MongoConfig) (*mongo.Client, error) {
	for range cfg.RetryAttempts {
		client, err := mongo.Connect(
			options.Client().
				ApplyURI(cfg.ConnectionURL).
				SetConnectTimeout(cfg.ConnectTimeout).
				SetMaxPoolSize(cfg.MaxPoolSize).
				SetMinPoolSize(cfg.MinPoolSize).
				SetMaxConnIdleTime(cfg.MaxConnIdleTime),
		)
		if err == nil {
			if err := client.Ping(ctx, nil); err == nil {
				return client, nil
			}
			_ = client.Disconnect(ctx)
		}

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrFailedToConnectToMongo, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}

	return nil, ErrFailedToConnectToMongo
}

// MongoStore keeps each verdict as a native document keyed by its id.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore uses the configured database and collection of client.
func NewMongoStore(client *mongo.Client, cfg MongoConfig) *MongoStore {
	return &MongoStore{
		client: client,
		coll:   client.Database(cfg.Database).Collection(cfg.Collection),
	}
}

// EnsureIndexes creates the hash lookup index.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "hash", Value: 1}, {Key: "created_at", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("create verdict index: %w", err)
	}
	return nil
}

func (s *MongoStore) Save(ctx context.Context, v lies.Verdict) error {
	if err := validate(v); err != nil {
		return err
	}
	doc, err := toDocument(v)
	if err != nil {
		return err
	}
	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil
		}
		return fmt.Errorf("insert verdict %s: %w", v.ID, err)
	}
	return nil
}

func (s *MongoStore) Get(ctx context.Context, id string) (lies.Verdict, error) {
	return s.one(ctx, s.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}))
}

func (s *MongoStore) LatestByHash(ctx context.Context, hash string) (lies.Verdict, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return s.one(ctx, s.coll.FindOne(ctx, bson.D{{Key: "hash", Value: hash}}, opts))
}

func (s *MongoStore) one(_ context.Context, res *mongo.SingleResult) (lies.Verdict, error) {
	raw, err := res.Raw()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return lies.Verdict{}, ErrNotFound
		}
		return lies.Verdict{}, fmt.Errorf("find verdict: %w", err)
	}
	return fromDocument(raw)
}

// Healthcheck pings the primary.
func (s *MongoStore) Healthcheck() Healthcheck {
	return func(ctx context.Context) error {
		if err := s.client.Ping(ctx, nil); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}

// toDocument converts the verdict JSON into a BSON document so it stays
// queryable field by field, then adds the storage keys.
func toDocument(v lies.Verdict) (bson.D, error) {
	data, err := encode(v)
	if err != nil {
		return nil, err
	}
	var doc bson.D
	if err := bson.UnmarshalExtJSON(data, false, &doc); err != nil {
		return nil, errors.Join(ErrEncode, err)
	}
	return append(bson.D{
		{Key: "_id", Value: v.ID},
		{Key: "created_at", Value: v.CreatedAt},
	}, doc...), nil
}

func fromDocument(raw bson.Raw) (lies.Verdict, error) {
	data, err := bson.MarshalExtJSON(raw, false, false)
	if err != nil {
		return lies.Verdict{}, errors.Join(ErrDecode, err)
	}
	return decode(data)
}
