// Package seed loads the default reference data and demo records used in
// development environments. Every insert is idempotent, so seeding an
// already populated database is a no-op.
package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/oguzk/stajtakip/internal/pkg/auth"
)

// DefaultPassword is the password of every seeded account.
const DefaultPassword = "password123"

type seedUser struct {
	username   string
	email      string
	role       string
	department string // empty for admins
}

type seedStudent struct {
	id         string
	name       string
	email      string
	phone      string
	department string
}

type seedTerm struct {
	name       string
	start, end string
}

type seedCompany struct {
	name, phone, email string
}

type seedInternship struct {
	studentID string
	company   string
	term      string
	status    string
	order     string
	duration  int
	start     string
	end       string
	grade     *string
	reportURL *string
	docURL    *string
	contact   *string
	position  *string
	erasmus   bool
}

var roles = []string{"General Admin", "Commission Chair", "Commission Member"}

var departments = []string{
	"Computer Engineering",
	"Electrical Engineering",
	"Mechanical Engineering",
}

var users = []seedUser{
	{"admin1", "admin1@example.com", "General Admin", ""},
	{"admin2", "admin2@example.com", "General Admin", ""},
	{"ceng_chair", "ceng_chair@example.com", "Commission Chair", "Computer Engineering"},
	{"ceng_member1", "ceng_member1@example.com", "Commission Member", "Computer Engineering"},
	{"ceng_member2", "ceng_member2@example.com", "Commission Member", "Computer Engineering"},
	{"eeng_chair", "eeng_chair@example.com", "Commission Chair", "Electrical Engineering"},
	{"eeng_member1", "eeng_member1@example.com", "Commission Member", "Electrical Engineering"},
	{"eeng_member2", "eeng_member2@example.com", "Commission Member", "Electrical Engineering"},
	{"meng_chair", "meng_chair@example.com", "Commission Chair", "Mechanical Engineering"},
	{"meng_member1", "meng_member1@example.com", "Commission Member", "Mechanical Engineering"},
	{"meng_member2", "meng_member2@example.com", "Commission Member", "Mechanical Engineering"},
}

var students = []seedStudent{
	{"220104004001", "Ali Veli", "ali.veli@example.com", "555-101-0001", "Computer Engineering"},
	{"220104004002", "Ayşe Kaya", "ayse.kaya@example.com", "555-101-0002", "Computer Engineering"},
	{"220104004003", "Mehmet Yılmaz", "mehmet.yilmaz@example.com", "555-101-0003", "Computer Engineering"},
	{"220104004004", "Fatma Demir", "fatma.demir@example.com", "555-101-0004", "Computer Engineering"},
	{"220105001001", "Hasan Çelik", "hasan.celik@example.com", "555-102-0001", "Electrical Engineering"},
	{"220105001002", "Zeynep Şahin", "zeynep.sahin@example.com", "555-102-0002", "Electrical Engineering"},
	{"220105001003", "Burak Öz", "burak.oz@example.com", "555-102-0003", "Electrical Engineering"},
	{"220105001004", "Elif Arda", "elif.arda@example.com", "555-102-0004", "Electrical Engineering"},
	{"220106002001", "Kemal Can", "kemal.can@example.com", "555-103-0001", "Mechanical Engineering"},
	{"220106002002", "Derya Güneş", "derya.gunes@example.com", "555-103-0002", "Mechanical Engineering"},
	{"220106002003", "Ömer Faruk", "omer.faruk@example.com", "555-103-0003", "Mechanical Engineering"},
	{"220106002004", "İpek Yıldız", "ipek.yildiz@example.com", "555-103-0004", "Mechanical Engineering"},
}

var terms = []seedTerm{
	{"2025 Summer Internship Term", "2025-06-01", "2025-09-01"},
	{"2025 Winter Internship Term", "2025-01-01", "2025-02-28"},
}

var companies = []seedCompany{
	{"ASELSAN", "0312-000-0001", "info@aselsan.com"},
	{"ROKETSAN", "0312-000-0002", "info@roketsan.com"},
	{"HAVELSAN", "0312-000-0003", "info@havelsan.com"},
	{"TÜRK TELEKOM", "0212-000-0004", "info@turktelekom.com"},
	{"TURKCELL", "0212-000-0005", "info@turkcell.com"},
	{"GARANTİ BBVA", "0212-000-0006", "info@garanti.com"},
	{"İŞ BANKASI", "0212-000-0007", "info@isbank.com"},
}

func str(s string) *string { return &s }

const (
	summer = "2025 Summer Internship Term"
	winter = "2025 Winter Internship Term"
)

var internships = []seedInternship{
	{studentID: "220104004001", company: "ASELSAN", term: summer, status: "COMPLETED", order: "STAJ1",
		duration: 20, start: "2025-06-15", end: "2025-07-15", grade: str("S"),
		reportURL: str("https://example.com/reports/s1_staj1.pdf"),
		docURL:    str("https://example.com/docs/s1_staj1.pdf"),
		contact:   str("Ahmet Yılmaz"), position: str("Senior Engineer")},
	{studentID: "220104004001", company: "ROKETSAN", term: summer, status: "IN_PROGRESS", order: "STAJ2",
		duration: 20, start: "2025-07-20", end: "2025-08-20",
		contact: str("Elif Demir"), position: str("HR Manager")},
	{studentID: "220104004002", company: "HAVELSAN", term: summer, status: "AWAITING_EVALUATION", order: "STAJ1",
		duration: 25, start: "2025-07-01", end: "2025-08-05",
		reportURL: str("https://example.com/reports/s2_staj1.pdf")},
	{studentID: "220104004003", company: "TÜRK TELEKOM", term: winter, status: "COMPLETED", order: "STAJ1",
		duration: 20, start: "2025-01-15", end: "2025-02-15", grade: str("S")},
	{studentID: "220104004004", company: "TURKCELL", term: summer, status: "IN_PROGRESS", order: "STAJ1",
		duration: 20, start: "2025-08-01", end: "2025-08-29"},
	{studentID: "220105001001", company: "GARANTİ BBVA", term: summer, status: "COMPLETED", order: "STAJ1",
		duration: 20, start: "2025-06-20", end: "2025-07-18", grade: str("S")},
	{studentID: "220105001002", company: "İŞ BANKASI", term: winter, status: "AWAITING_EVALUATION", order: "STAJ1",
		duration: 20, start: "2025-01-20", end: "2025-02-18",
		reportURL: str("https://example.com/reports/s6_staj1.pdf")},
	{studentID: "220105001002", company: "ASELSAN", term: summer, status: "IN_PROGRESS", order: "STAJ2",
		duration: 40, start: "2025-07-01", end: "2025-08-26", erasmus: true},
	{studentID: "220105001003", company: "ROKETSAN", term: summer, status: "COMPLETED", order: "STAJ1",
		duration: 20, start: "2025-07-07", end: "2025-08-01", grade: str("S")},
	{studentID: "220105001004", company: "TURKCELL", term: winter, status: "IN_PROGRESS", order: "STAJ1",
		duration: 20, start: "2025-01-13", end: "2025-02-07"},
	{studentID: "220106002001", company: "HAVELSAN", term: summer, status: "COMPLETED", order: "STAJ1",
		duration: 30, start: "2025-06-16", end: "2025-07-28", grade: str("S")},
	{studentID: "220106002002", company: "ASELSAN", term: summer, status: "AWAITING_EVALUATION", order: "STAJ1",
		duration: 20, start: "2025-08-04", end: "2025-08-29",
		reportURL: str("https://example.com/reports/s10_staj1.pdf")},
	{studentID: "220106002003", company: "GARANTİ BBVA", term: winter, status: "COMPLETED", order: "STAJ1",
		duration: 20, start: "2025-01-20", end: "2025-02-14", grade: str("S")},
	{studentID: "220106002003", company: "ROKETSAN", term: summer, status: "AWAITING_EVALUATION", order: "STAJ2",
		duration: 20, start: "2025-07-21", end: "2025-08-15",
		reportURL: str("https://example.com/reports/s11_staj2.pdf")},
	{studentID: "220106002004", company: "TÜRK TELEKOM", term: summer, status: "IN_PROGRESS", order: "STAJ1",
		duration: 20, start: "2025-08-11", end: "2025-09-05"},
}

// CreateDefaultData loads roles, departments, demo users, students, terms,
// companies and internships.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	lgr.Info().Msg("Seeding default data")

	for _, role := range roles {
		if _, err := dbPool.Exec(ctx,
			`INSERT INTO roles (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, role); err != nil {
			return fmt.Errorf("failed to seed role %s: %w", role, err)
		}
	}

	for _, dept := range departments {
		if _, err := dbPool.Exec(ctx,
			`INSERT INTO departments (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, dept); err != nil {
			return fmt.Errorf("failed to seed department %s: %w", dept, err)
		}
	}

	passwordHash, err := auth.HashPassword(DefaultPassword)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	for _, u := range users {
		var dept *string
		if u.department != "" {
			dept = &u.department
		}
		_, err := dbPool.Exec(ctx, `
			INSERT INTO users (email, username, password, role_id, department_id)
			SELECT $1, $2, $3, r.id, d.id
			FROM roles r
			LEFT JOIN departments d ON d.name = $5
			WHERE r.name = $4
			ON CONFLICT (username) DO NOTHING`,
			u.email, u.username, passwordHash, u.role, dept)
		if err != nil {
			return fmt.Errorf("failed to seed user %s: %w", u.username, err)
		}
	}

	for _, s := range students {
		_, err := dbPool.Exec(ctx, `
			INSERT INTO students (id, name, email, phone_number, department_id)
			SELECT $1, $2, $3, $4, d.id FROM departments d WHERE d.name = $5
			ON CONFLICT (id) DO NOTHING`,
			s.id, s.name, s.email, s.phone, s.department)
		if err != nil {
			return fmt.Errorf("failed to seed student %s: %w", s.id, err)
		}
	}

	for _, t := range terms {
		_, err := dbPool.Exec(ctx, `
			INSERT INTO terms (name, start_date, end_date)
			VALUES ($1, $2::date, $3::date)
			ON CONFLICT (name) DO NOTHING`,
			t.name, t.start, t.end)
		if err != nil {
			return fmt.Errorf("failed to seed term %s: %w", t.name, err)
		}
	}

	for _, c := range companies {
		_, err := dbPool.Exec(ctx, `
			INSERT INTO companies (name, phone, email)
			VALUES ($1, $2, $3)
			ON CONFLICT (name) DO NOTHING`,
			c.name, c.phone, c.email)
		if err != nil {
			return fmt.Errorf("failed to seed company %s: %w", c.name, err)
		}
	}

	for _, in := range internships {
		_, err := dbPool.Exec(ctx, `
			INSERT INTO internships (student_id, company_id, term_id, status, internship_order,
			                         duration_days, start_date, end_date, grade, grade_comment,
			                         report_url, document_url, company_contact_name,
			                         company_contact_position, is_erasmus)
			SELECT $1, c.id, t.id, $4::internship_status, $5::internship_order,
			       $6, $7::date, $8::date, $9, NULL, $10, $11, $12, $13, $14
			FROM companies c, terms t
			WHERE c.name = $2 AND t.name = $3
			ON CONFLICT (student_id, internship_order) DO NOTHING`,
			in.studentID, in.company, in.term, in.status, in.order,
			in.duration, in.start, in.end, in.grade,
			in.reportURL, in.docURL, in.contact, in.position, in.erasmus)
		if err != nil {
			return fmt.Errorf("failed to seed internship for %s: %w", in.studentID, err)
		}
	}

	lgr.Info().Msg("Default data seeded")
	return nil
}
