package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/edusuite/school-system/internal/core/domain"
)

const collectionSections = "sections"

type SectionRepository struct {
	col *mongo.Collection
}

func NewSectionRepository(db *mongo.Database) *SectionRepository {
	return &SectionRepository{col: db.Collection(collectionSections)}
}

func (r *SectionRepository) Insert(ctx context.Context, section *domain.Section) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, section); err != nil {
		return fmt.Errorf("insert section: %w", err)
	}
	return nil
}

func (r *SectionRepository) List(ctx context.Context) ([]*domain.Section, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}
	defer cur.Close(ctx)

	sections := []*domain.Section{}
	if err := cur.All(ctx, &sections); err != nil {
		return nil, fmt.Errorf("decode sections: %w", err)
	}
	return sections, nil
}
