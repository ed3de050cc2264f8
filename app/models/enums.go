package models

// Role defines the four account roles in the system.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
	RoleParent  Role = "parent"
	RoleStudent Role = "student"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleTeacher, RoleParent, RoleStudent:
		return true
	}
	return false
}

// AttendanceStatus defines the possible status values for attendance.
type AttendanceStatus string

const (
	Present AttendanceStatus = "Present"
	Absent  AttendanceStatus = "Absent"
	Late    AttendanceStatus = "Late"
	Excused AttendanceStatus = "Excused"
)

func (s AttendanceStatus) Valid() bool {
	switch s {
	case Present, Absent, Late, Excused:
		return true
	}
	return false
}

// ExamStatus defines the approval state of an exam.
type ExamStatus string

const (
	ExamPending  ExamStatus = "pending"
	ExamApproved ExamStatus = "approved"
	ExamRejected ExamStatus = "rejected"
)

// FeeStatus defines the payment state of a fee invoice.
type FeeStatus string

const (
	FeeUnpaid  FeeStatus = "Unpaid"
	FeePartial FeeStatus = "Partial"
	FeePaid    FeeStatus = "Paid"
)

// Gender defines the possible gender values for a student.
type Gender string

const (
	Male   Gender = "Male"
	Female Gender = "Female"
	Other  Gender = "Other"
)
