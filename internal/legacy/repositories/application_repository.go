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

// ApplicationRepository persists internship applications.
type ApplicationRepository interface {
	ListApplications(ctx context.Context, studentID *primitive.ObjectID) ([]models.Application, error)
	GetApplicationByID(ctx context.Context, id primitive.ObjectID) (*models.Application, error)
	GetApplicationByInternshipAndStudent(ctx context.Context, internshipID, studentID primitive.ObjectID) (*models.Application, error)
	CreateApplication(ctx context.Context, application *models.Application) (primitive.ObjectID, error)
	UpdateApplicationStatus(ctx context.Context, id primitive.ObjectID, status string) error
	SetApplicationEvaluation(ctx context.Context, id primitive.ObjectID, evaluation models.Evaluation) error
	DeleteApplication(ctx context.Context, id primitive.ObjectID) error
}

type applicationRepository struct {
	collection *mongo.Collection
}

// NewApplicationRepository creates an application repository backed by the given database.
func NewApplicationRepository(db *mongo.Database) ApplicationRepository {
	return &applicationRepository{collection: db.Collection("applications")}
}

func (r *applicationRepository) ListApplications(ctx context.Context, studentID *primitive.ObjectID) ([]models.Application, error) {
	query := bson.M{}
	if studentID != nil {
		query["student"] = *studentID
	}

	opts := options.Find().SetSort(bson.D{{Key: "appliedAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var applications []models.Application
	if err := cursor.All(ctx, &applications); err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *applicationRepository) GetApplicationByID(ctx context.Context, id primitive.ObjectID) (*models.Application, error) {
	var application models.Application
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&application); err != nil {
		return nil, err
	}
	return &application, nil
}

func (r *applicationRepository) GetApplicationByInternshipAndStudent(ctx context.Context, internshipID, studentID primitive.ObjectID) (*models.Application, error) {
	var application models.Application
	filter := bson.M{"internship": internshipID, "student": studentID}
	if err := r.collection.FindOne(ctx, filter).Decode(&application); err != nil {
		return nil, err
	}
	return &application, nil
}

func (r *applicationRepository) CreateApplication(ctx context.Context, application *models.Application) (primitive.ObjectID, error) {
	application.AppliedAt = time.Now()
	if application.Status == "" {
		application.Status = models.ApplicationPending
	}

	result, err := r.collection.InsertOne(ctx, application)
	if err != nil {
		return primitive.NilObjectID, err
	}

	id := result.InsertedID.(primitive.ObjectID)
	application.ID = id
	return id, nil
}

func (r *applicationRepository) UpdateApplicationStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	update := bson.M{"$set": bson.M{"status": status}}
	result, err := r.collection.UpdateByID(ctx, id, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *applicationRepository) SetApplicationEvaluation(ctx context.Context, id primitive.ObjectID, evaluation models.Evaluation) error {
	update := bson.M{"$set": bson.M{"evaluation": evaluation}}
	result, err := r.collection.UpdateByID(ctx, id, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *applicationRepository) DeleteApplication(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
