package docstore

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Options controls the Mongo client pool and connectivity checks.
type Options struct {
	MaxPoolSize     uint64
	ConnectTimeout  time.Duration
	PingTimeout     time.Duration
	ServerSelection time.Duration
}

// DefaultOptions returns defaults for long-running server processes.
func DefaultOptions() Options {
	return Options{
		MaxPoolSize:     20,
		ConnectTimeout:  10 * time.Second,
		PingTimeout:     5 * time.Second,
		ServerSelection: 5 * time.Second,
	}
}

// Connect dials uri and pings the primary. The caller owns the client and
// must call Disconnect on shutdown.
func Connect(ctx context.Context, uri string, opts Options) (*mongo.Client, error) {
	if strings.TrimSpace(uri) == "" {
		return nil, fmt.Errorf("MONGODB_URI is empty")
	}

	clientOpts := options.Client().ApplyURI(uri)
	if opts.MaxPoolSize > 0 {
		clientOpts.SetMaxPoolSize(opts.MaxPoolSize)
	}
	if opts.ConnectTimeout > 0 {
		clientOpts.SetConnectTimeout(opts.ConnectTimeout)
	}
	if opts.ServerSelection > 0 {
		clientOpts.SetServerSelectionTimeout(opts.ServerSelection)
	}

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	pingTimeout := opts.PingTimeout
	if pingTimeout <= 0 {
		pingTimeout = 5 * time.Second
	}
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	log.Printf("mongo init: max_pool=%d", opts.MaxPoolSize)
	return client, nil
}

// Ping checks the primary is reachable.
func Ping(ctx context.Context, client *mongo.Client) error {
	if client == nil {
		return fmt.Errorf("mongo client is nil")
	}
	return client.Ping(ctx, readpref.Primary())
}
