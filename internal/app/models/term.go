package models

import "time"

// Term defines an internship term based on the 'terms' table
type Term struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name" example:"2025 Summer Internship Term"`
	StartDate time.Time `json:"startDate" db:"start_date"`
	EndDate   time.Time `json:"endDate" db:"end_date"`
}

// Company defines a company based on the 'companies' table
type Company struct {
	ID    int64  `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Phone string `json:"phone" db:"phone"`
	Email string `json:"email" db:"email"`
}
