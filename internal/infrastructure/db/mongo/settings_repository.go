package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/edusuite/school-system/internal/core/domain"
)

const collectionSettings = "settings"

type SettingsRepository struct {
	col *mongo.Collection
}

func NewSettingsRepository(db *mongo.Database) *SettingsRepository {
	return &SettingsRepository{col: db.Collection(collectionSettings)}
}

// Replace swaps the singleton settings document for a new one. Clearing the
// collection first keeps it single-document even if older writes left
// strays behind.
func (r *SettingsRepository) Replace(ctx context.Context, settings *domain.Settings) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("clear settings: %w", err)
	}
	if _, err := r.col.InsertOne(ctx, settings); err != nil {
		return fmt.Errorf("insert settings: %w", err)
	}
	return nil
}

// Get returns the stored settings, or (nil, nil) when none exist yet.
func (r *SettingsRepository) Get(ctx context.Context) (*domain.Settings, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var settings domain.Settings
	if err := r.col.FindOne(ctx, bson.M{}).Decode(&settings); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find settings: %w", err)
	}
	return &settings, nil
}
