package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/edusuite/school-system/internal/core/domain"
)

const collectionSchoolYears = "school_years"

type SchoolYearRepository struct {
	col *mongo.Collection
}

func NewSchoolYearRepository(db *mongo.Database) *SchoolYearRepository {
	return &SchoolYearRepository{col: db.Collection(collectionSchoolYears)}
}

func (r *SchoolYearRepository) Insert(ctx context.Context, year *domain.SchoolYear) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, year); err != nil {
		return fmt.Errorf("insert school year: %w", err)
	}
	return nil
}

func (r *SchoolYearRepository) List(ctx context.Context) ([]*domain.SchoolYear, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "start_date", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list school years: %w", err)
	}
	defer cur.Close(ctx)

	years := []*domain.SchoolYear{}
	if err := cur.All(ctx, &years); err != nil {
		return nil, fmt.Errorf("decode school years: %w", err)
	}
	return years, nil
}

func (r *SchoolYearRepository) FindCurrent(ctx context.Context) (*domain.SchoolYear, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var year domain.SchoolYear
	if err := r.col.FindOne(ctx, bson.M{"is_current": true}).Decode(&year); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNoCurrentYear
		}
		return nil, fmt.Errorf("find current year: %w", err)
	}
	return &year, nil
}

// ClearCurrent unsets the is_current flag everywhere. CreateSchoolYear calls
// it right before inserting a new current year.
func (r *SchoolYearRepository) ClearCurrent(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.UpdateMany(ctx,
		bson.M{"is_current": true},
		bson.M{"$set": bson.M{"is_current": false}},
	)
	if err != nil {
		return fmt.Errorf("clear current year: %w", err)
	}
	return nil
}
