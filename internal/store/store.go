package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/unlinked/backend/pkg/config"
)

// ErrNotConnected is returned when a collection or database handle is
// requested before Connect has succeeded.
var ErrNotConnected = errors.New("store not connected")

// Connection pool bounds and per-operation timeouts.
const (
	minPoolSize            = 1
	maxPoolSize            = 10
	maxConnIdleTime        = 30 * time.Second
	serverSelectionTimeout = 5 * time.Second
	connectTimeout         = 10 * time.Second
	socketTimeout          = 5 * time.Second
)

// Store wraps the MongoDB client and owns the connection lifecycle. All
// collection access goes through it; no other component holds the client.
type Store struct {
	client   *mongo.Client
	database *mongo.Database
}

// Connect establishes a pooled connection and verifies it with a ping.
func Connect(ctx context.Context, cfg *config.Config) (*Store, error) {
	clientOptions := options.Client().
		ApplyURI(cfg.MongoURI).
		SetMinPoolSize(minPoolSize).
		SetMaxPoolSize(maxPoolSize).
		SetMaxConnIdleTime(maxConnIdleTime).
		SetServerSelectionTimeout(serverSelectionTimeout).
		SetConnectTimeout(connectTimeout).
		SetSocketTimeout(socketTimeout)

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err = client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	log.Printf("Connected to MongoDB database: %s", cfg.DatabaseName)
	return &Store{
		client:   client,
		database: client.Database(cfg.DatabaseName),
	}, nil
}

// Disconnect releases the connection pool. Safe to call when not connected.
func (s *Store) Disconnect(ctx context.Context) error {
	if s == nil || s.client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := s.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from MongoDB: %w", err)
	}
	log.Println("MongoDB connection closed.")
	return nil
}

// Database returns the database handle.
func (s *Store) Database() (*mongo.Database, error) {
	if s == nil || s.database == nil {
		return nil, ErrNotConnected
	}
	return s.database, nil
}

// Collection returns a handle for insert/find/command operations.
func (s *Store) Collection(name string) (*mongo.Collection, error) {
	if s == nil || s.database == nil {
		return nil, ErrNotConnected
	}
	return s.database.Collection(name), nil
}

// HealthCheck reports whether the store is reachable. It never returns an
// error; any underlying fault degrades to false.
func (s *Store) HealthCheck(ctx context.Context) bool {
	if s == nil || s.client == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, serverSelectionTimeout)
	defer cancel()
	res := s.client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}})
	return res.Err() == nil
}
