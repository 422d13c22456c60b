package models

// Role names are immutable reference data created by the seed.
const (
	RoleGeneralAdmin     = "General Admin"
	RoleCommissionChair  = "Commission Chair"
	RoleCommissionMember = "Commission Member"
)

// InternshipStatus tracks the lifecycle of an internship record.
type InternshipStatus string

const (
	StatusInProgress         InternshipStatus = "IN_PROGRESS"
	StatusCompleted          InternshipStatus = "COMPLETED"
	StatusAwaitingEvaluation InternshipStatus = "AWAITING_EVALUATION"
)

// InternshipOrder identifies which of the two mandatory internship slots
// a record belongs to.
type InternshipOrder string

const (
	OrderStaj1 InternshipOrder = "STAJ1"
	OrderStaj2 InternshipOrder = "STAJ2"
)

// IsValidGrade reports whether g is an accepted internship grade.
// Grades are S (satisfactory) or U (unsatisfactory).
func IsValidGrade(g string) bool {
	return g == "S" || g == "U"
}

// IsValidOrder reports whether o is a known internship order value.
func IsValidOrder(o InternshipOrder) bool {
	return o == OrderStaj1 || o == OrderStaj2
}
