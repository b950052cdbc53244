package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/edusuite/school-system/internal/core/domain"
)

const collectionParents = "parents"

type ParentRepository struct {
	col *mongo.Collection
}

func NewParentRepository(db *mongo.Database) *ParentRepository {
	return &ParentRepository{col: db.Collection(collectionParents)}
}

func (r *ParentRepository) Insert(ctx context.Context, parent *domain.Parent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, parent); err != nil {
		return fmt.Errorf("insert parent: %w", err)
	}
	return nil
}

func (r *ParentRepository) List(ctx context.Context) ([]*domain.Parent, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list parents: %w", err)
	}
	defer cur.Close(ctx)

	parents := []*domain.Parent{}
	if err := cur.All(ctx, &parents); err != nil {
		return nil, fmt.Errorf("decode parents: %w", err)
	}
	return parents, nil
}

func (r *ParentRepository) FindByUserID(ctx context.Context, userID string) (*domain.Parent, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var parent domain.Parent
	if err := r.col.FindOne(ctx, bson.M{"user_id": userID}).Decode(&parent); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrParentNotFound
		}
		return nil, fmt.Errorf("find parent: %w", err)
	}
	return &parent, nil
}

func (r *ParentRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count parents: %w", err)
	}
	return n, nil
}

func (r *ParentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
