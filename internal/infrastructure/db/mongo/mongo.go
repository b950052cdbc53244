package mongo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/edusuite/school-system/internal/core/domain"
)

const defaultTimeout = 10 * time.Second

// Named unique indexes. Duplicate-key errors carry the index name, which is
// how a constraint violation is mapped back to the field that caused it.
const (
	idxUsernameUnique = "username_unique"
	idxEmailUnique    = "email_unique"
	idxRollUnique     = "roll_class_year_unique"
)

// Config captures the minimal settings required to establish a MongoDB connection.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect establishes a MongoDB client, verifies connectivity with a ping, and
// returns both the client and the selected database. A default timeout is
// applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(cfg.Database)
	return client, db, nil
}

// dupIndexError maps a duplicate-key error to the domain error of the unique
// index it violated, or nil when err is not a duplicate-key error. The index
// is the authority on uniqueness: two concurrent inserts race here, not in
// application-level pre-checks.
func dupIndexError(err error) error {
	if !mongo.IsDuplicateKeyError(err) {
		return nil
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, idxUsernameUnique):
		return domain.ErrUsernameTaken
	case strings.Contains(msg, idxEmailUnique):
		return domain.ErrEmailTaken
	case strings.Contains(msg, idxRollUnique):
		return domain.ErrRollNumberTaken
	}
	return nil
}
