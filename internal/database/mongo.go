package database

import (
	"context"
	"time"

	"bookmystay-backend/internal/apperrors"
	"bookmystay-backend/internal/logger"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Mongo owns the client for the life of the process. main constructs it and
// calls Close on shutdown.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials uri and pings it within timeout. Every failure is a startup
// error.
func Connect(ctx context.Context, uri, dbName string, timeout time.Duration) (*Mongo, error) {
	if uri == "" {
		return nil, apperrors.New(apperrors.StartupError, "MONGODB_URI is required", "")
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	clientOpts := options.Client().ApplyURI(uri).SetConnectTimeout(timeout)
	client, err := mongo.Connect(clientOpts)
	if err != nil {
		return nil, apperrors.Startup(err, "failed to connect to MongoDB")
	}

	// Ping the database to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, apperrors.Startup(err, "failed to reach MongoDB")
	}

	logger.Log.Infow("✅ Connected to MongoDB", "database", dbName)
	return &Mongo{client: client, db: client.Database(dbName)}, nil
}

func (m *Mongo) Collection(name string) *mongo.Collection {
	return m.db.Collection(name)
}

func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, nil)
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
