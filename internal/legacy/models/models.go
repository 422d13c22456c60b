package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles
const (
	RoleStudent = "student"
	RoleCompany = "company"
	RoleAdmin   = "admin"
)

// Internship posting statuses
const (
	InternshipOpen   = "open"
	InternshipClosed = "closed"
	InternshipFilled = "filled"
)

// Application statuses
const (
	ApplicationPending   = "pending"
	ApplicationAccepted  = "accepted"
	ApplicationRejected  = "rejected"
	ApplicationCompleted = "completed"
)

// IsValidRole reports whether role is one of the known user roles.
func IsValidRole(role string) bool {
	return role == RoleStudent || role == RoleCompany || role == RoleAdmin
}

// IsValidApplicationStatus reports whether status is a known application status.
func IsValidApplicationStatus(status string) bool {
	switch status {
	case ApplicationPending, ApplicationAccepted, ApplicationRejected, ApplicationCompleted:
		return true
	}
	return false
}

// User is an account in the document store. Password holds the bcrypt hash
// and is never serialized to JSON.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
	Role      string             `bson:"role" json:"role"`
	FirstName string             `bson:"firstName" json:"firstName"`
	LastName  string             `bson:"lastName" json:"lastName"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// Student is the student profile linked to a user account.
type Student struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     primitive.ObjectID `bson:"user" json:"user"`
	StudentID  string             `bson:"studentId" json:"studentId"`
	Department string             `bson:"department" json:"department"`
	Year       int                `bson:"year,omitempty" json:"year,omitempty"`
	GPA        float64            `bson:"gpa,omitempty" json:"gpa,omitempty"`
	Phone      string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Skills     []string           `bson:"skills,omitempty" json:"skills,omitempty"`
	Resume     string             `bson:"resume,omitempty" json:"resume,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}

// Company is the company profile linked to a user account.
type Company struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"user" json:"user"`
	CompanyName string             `bson:"companyName" json:"companyName"`
	Industry    string             `bson:"industry" json:"industry"`
	Address     string             `bson:"address,omitempty" json:"address,omitempty"`
	Phone       string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Website     string             `bson:"website,omitempty" json:"website,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// Internship is a posting offered by a company.
type Internship struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CompanyID    primitive.ObjectID `bson:"company" json:"company"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description" json:"description"`
	Requirements []string           `bson:"requirements,omitempty" json:"requirements,omitempty"`
	Duration     string             `bson:"duration,omitempty" json:"duration,omitempty"`
	StartDate    *time.Time         `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate      *time.Time         `bson:"endDate,omitempty" json:"endDate,omitempty"`
	Location     string             `bson:"location,omitempty" json:"location,omitempty"`
	Stipend      float64            `bson:"stipend,omitempty" json:"stipend,omitempty"`
	Positions    int                `bson:"positions,omitempty" json:"positions,omitempty"`
	Status       string             `bson:"status" json:"status"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Evaluation is the admin review attached to a completed application.
type Evaluation struct {
	Rating      int                 `bson:"rating" json:"rating"`
	Feedback    string              `bson:"feedback,omitempty" json:"feedback,omitempty"`
	EvaluatedBy *primitive.ObjectID `bson:"evaluatedBy,omitempty" json:"evaluatedBy,omitempty"`
	EvaluatedAt *time.Time          `bson:"evaluatedAt,omitempty" json:"evaluatedAt,omitempty"`
}

// Application is a student's application to an internship posting.
type Application struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	InternshipID primitive.ObjectID `bson:"internship" json:"internship"`
	StudentID    primitive.ObjectID `bson:"student" json:"student"`
	Status       string             `bson:"status" json:"status"`
	CoverLetter  string             `bson:"coverLetter,omitempty" json:"coverLetter,omitempty"`
	AppliedAt    time.Time          `bson:"appliedAt" json:"appliedAt"`
	Evaluation   *Evaluation        `bson:"evaluation,omitempty" json:"evaluation,omitempty"`
}
