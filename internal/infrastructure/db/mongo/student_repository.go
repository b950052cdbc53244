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
	"github.com/edusuite/school-system/internal/core/ports"
)

const collectionStudents = "students"

type StudentRepository struct {
	col *mongo.Collection
}

func NewStudentRepository(db *mongo.Database) *StudentRepository {
	return &StudentRepository{col: db.Collection(collectionStudents)}
}

// Insert stores a new student. The compound unique index on
// (roll_no, class_id, school_year_id) decides roll-number races.
func (r *StudentRepository) Insert(ctx context.Context, student *domain.Student) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, student); err != nil {
		if derr := dupIndexError(err); derr != nil {
			return derr
		}
		return fmt.Errorf("insert student: %w", err)
	}
	return nil
}

func (r *StudentRepository) List(ctx context.Context, filter ports.StudentFilter) ([]*domain.Student, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.ClassID != "" {
		query["class_id"] = filter.ClassID
	}
	if filter.SectionID != "" {
		query["section_id"] = filter.SectionID
	}
	if filter.SchoolYearID != "" {
		query["school_year_id"] = filter.SchoolYearID
	}

	opts := options.Find().SetSort(bson.D{{Key: "roll_no", Value: 1}})
	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	defer cur.Close(ctx)

	students := []*domain.Student{}
	if err := cur.All(ctx, &students); err != nil {
		return nil, fmt.Errorf("decode students: %w", err)
	}
	return students, nil
}

func (r *StudentRepository) FindByID(ctx context.Context, id string) (*domain.Student, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *StudentRepository) FindByUserID(ctx context.Context, userID string) (*domain.Student, error) {
	return r.findOne(ctx, bson.M{"user_id": userID})
}

func (r *StudentRepository) findOne(ctx context.Context, filter bson.M) (*domain.Student, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var student domain.Student
	if err := r.col.FindOne(ctx, filter).Decode(&student); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrStudentNotFound
		}
		return nil, fmt.Errorf("find student: %w", err)
	}
	return &student, nil
}

func (r *StudentRepository) Update(ctx context.Context, id string, upd ports.StudentUpdate) (*domain.Student, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.RollNo != nil {
		set["roll_no"] = *upd.RollNo
	}
	if upd.ClassID != nil {
		set["class_id"] = *upd.ClassID
	}
	if upd.SectionID != nil {
		set["section_id"] = *upd.SectionID
	}
	if upd.SchoolYearID != nil {
		set["school_year_id"] = *upd.SchoolYearID
	}
	if upd.Gender != nil {
		set["gender"] = *upd.Gender
	}
	if upd.DOB != nil {
		set["dob"] = *upd.DOB
	}
	if upd.BloodGroup != nil {
		set["blood_group"] = *upd.BloodGroup
	}
	if upd.Religion != nil {
		set["religion"] = *upd.Religion
	}
	if upd.Email != nil {
		set["email"] = *upd.Email
	}
	if upd.Phone != nil {
		set["phone"] = *upd.Phone
	}
	if upd.Address != nil {
		set["address"] = *upd.Address
	}
	if upd.Photo != nil {
		set["photo"] = *upd.Photo
	}
	if upd.ParentID != nil {
		set["parent_id"] = *upd.ParentID
	}
	if upd.GuardianName != nil {
		set["guardian_name"] = *upd.GuardianName
	}
	if upd.GuardianPhone != nil {
		set["guardian_phone"] = *upd.GuardianPhone
	}
	if upd.GuardianRelation != nil {
		set["guardian_relation"] = *upd.GuardianRelation
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var student domain.Student
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&student)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrStudentNotFound
		}
		if derr := dupIndexError(err); derr != nil {
			return nil, derr
		}
		return nil, fmt.Errorf("update student: %w", err)
	}
	return &student, nil
}

func (r *StudentRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count students: %w", err)
	}
	return n, nil
}

// EnsureIndexes creates the compound unique index guarding roll numbers.
func (r *StudentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "roll_no", Value: 1},
				{Key: "class_id", Value: 1},
				{Key: "school_year_id", Value: 1},
			},
			Options: options.Index().SetUnique(true).SetName(idxRollUnique),
		},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{{Key: "class_id", Value: 1}, {Key: "section_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
