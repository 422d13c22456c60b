package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/oguzk/stajtakip/internal/legacy/models"
)

// InternshipFilter narrows the internship listing. Empty fields match all.
type InternshipFilter struct {
	Status string
	Search string
}

// InternshipRepository persists internship postings.
type InternshipRepository interface {
	ListInternships(ctx context.Context, filter InternshipFilter) ([]models.Internship, error)
	GetInternshipByID(ctx context.Context, id primitive.ObjectID) (*models.Internship, error)
	CreateInternship(ctx context.Context, internship *models.Internship) (primitive.ObjectID, error)
	UpdateInternship(ctx context.Context, internship *models.Internship) error
	DeleteInternship(ctx context.Context, id primitive.ObjectID) error
}

type internshipRepository struct {
	collection *mongo.Collection
}

// NewInternshipRepository creates an internship repository backed by the given database.
func NewInternshipRepository(db *mongo.Database) InternshipRepository {
	return &internshipRepository{collection: db.Collection("internships")}
}

func (r *internshipRepository) ListInternships(ctx context.Context, filter InternshipFilter) ([]models.Internship, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Search != "" {
		pattern := primitive.Regex{Pattern: filter.Search, Options: "i"}
		query["$or"] = bson.A{
			bson.M{"title": pattern},
			bson.M{"description": pattern},
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var internships []models.Internship
	if err := cursor.All(ctx, &internships); err != nil {
		return nil, err
	}
	return internships, nil
}

func (r *internshipRepository) GetInternshipByID(ctx context.Context, id primitive.ObjectID) (*models.Internship, error) {
	var internship models.Internship
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&internship); err != nil {
		return nil, err
	}
	return &internship, nil
}

func (r *internshipRepository) CreateInternship(ctx context.Context, internship *models.Internship) (primitive.ObjectID, error) {
	now := time.Now()
	internship.CreatedAt = now
	internship.UpdatedAt = now
	if internship.Status == "" {
		internship.Status = models.InternshipOpen
	}

	result, err := r.collection.InsertOne(ctx, internship)
	if err != nil {
		return primitive.NilObjectID, err
	}

	id := result.InsertedID.(primitive.ObjectID)
	internship.ID = id
	return id, nil
}

func (r *internshipRepository) UpdateInternship(ctx context.Context, internship *models.Internship) error {
	internship.UpdatedAt = time.Now()

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": internship.ID}, internship)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *internshipRepository) DeleteInternship(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
