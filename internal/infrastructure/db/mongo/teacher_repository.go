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

const collectionTeachers = "teachers"

type TeacherRepository struct {
	col *mongo.Collection
}

func NewTeacherRepository(db *mongo.Database) *TeacherRepository {
	return &TeacherRepository{col: db.Collection(collectionTeachers)}
}

func (r *TeacherRepository) Insert(ctx context.Context, teacher *domain.Teacher) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, teacher); err != nil {
		return fmt.Errorf("insert teacher: %w", err)
	}
	return nil
}

func (r *TeacherRepository) List(ctx context.Context) ([]*domain.Teacher, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list teachers: %w", err)
	}
	defer cur.Close(ctx)

	teachers := []*domain.Teacher{}
	if err := cur.All(ctx, &teachers); err != nil {
		return nil, fmt.Errorf("decode teachers: %w", err)
	}
	return teachers, nil
}

func (r *TeacherRepository) FindByID(ctx context.Context, id string) (*domain.Teacher, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *TeacherRepository) FindByUserID(ctx context.Context, userID string) (*domain.Teacher, error) {
	return r.findOne(ctx, bson.M{"user_id": userID})
}

func (r *TeacherRepository) findOne(ctx context.Context, filter bson.M) (*domain.Teacher, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var teacher domain.Teacher
	if err := r.col.FindOne(ctx, filter).Decode(&teacher); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTeacherNotFound
		}
		return nil, fmt.Errorf("find teacher: %w", err)
	}
	return &teacher, nil
}

func (r *TeacherRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count teachers: %w", err)
	}
	return n, nil
}

func (r *TeacherRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
