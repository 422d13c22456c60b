package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/oguzk/stajtakip/internal/legacy/models"
)

// StudentRepository persists student profiles linked to user accounts.
type StudentRepository interface {
	CreateStudent(ctx context.Context, student *models.Student) (primitive.ObjectID, error)
	GetStudentByUser(ctx context.Context, userID primitive.ObjectID) (*models.Student, error)
	GetStudentByID(ctx context.Context, id primitive.ObjectID) (*models.Student, error)
}

// CompanyRepository persists company profiles linked to user accounts.
type CompanyRepository interface {
	CreateCompany(ctx context.Context, company *models.Company) (primitive.ObjectID, error)
	GetCompanyByUser(ctx context.Context, userID primitive.ObjectID) (*models.Company, error)
	GetCompanyByID(ctx context.Context, id primitive.ObjectID) (*models.Company, error)
}

type studentRepository struct {
	collection *mongo.Collection
}

// NewStudentRepository creates a student repository backed by the given database.
func NewStudentRepository(db *mongo.Database) StudentRepository {
	return &studentRepository{collection: db.Collection("students")}
}

func (r *studentRepository) CreateStudent(ctx context.Context, student *models.Student) (primitive.ObjectID, error) {
	student.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, student)
	if err != nil {
		return primitive.NilObjectID, err
	}

	id := result.InsertedID.(primitive.ObjectID)
	student.ID = id
	return id, nil
}

func (r *studentRepository) GetStudentByUser(ctx context.Context, userID primitive.ObjectID) (*models.Student, error) {
	var student models.Student
	if err := r.collection.FindOne(ctx, bson.M{"user": userID}).Decode(&student); err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepository) GetStudentByID(ctx context.Context, id primitive.ObjectID) (*models.Student, error) {
	var student models.Student
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&student); err != nil {
		return nil, err
	}
	return &student, nil
}

type companyRepository struct {
	collection *mongo.Collection
}

// NewCompanyRepository creates a company repository backed by the given database.
func NewCompanyRepository(db *mongo.Database) CompanyRepository {
	return &companyRepository{collection: db.Collection("companies")}
}

func (r *companyRepository) CreateCompany(ctx context.Context, company *models.Company) (primitive.ObjectID, error) {
	company.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, company)
	if err != nil {
		return primitive.NilObjectID, err
	}

	id := result.InsertedID.(primitive.ObjectID)
	company.ID = id
	return id, nil
}

func (r *companyRepository) GetCompanyByUser(ctx context.Context, userID primitive.ObjectID) (*models.Company, error) {
	var company models.Company
	if err := r.collection.FindOne(ctx, bson.M{"user": userID}).Decode(&company); err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *companyRepository) GetCompanyByID(ctx context.Context, id primitive.ObjectID) (*models.Company, error) {
	var company models.Company
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&company); err != nil {
		return nil, err
	}
	return &company, nil
}
