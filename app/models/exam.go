package models

import (
	"errors"
	"time"
)

var (
	// ErrExamNotPending is returned when an approval transition is attempted
	// on an exam that already left the pending state.
	ErrExamNotPending = errors.New("exam is not pending")
	// ErrReasonRequired is returned when a rejection carries no reason.
	ErrReasonRequired = errors.New("rejection reason is required")
)

// Exam is a scheduled assessment. It is created pending and must be approved
// by an admin before students can see it or download its paper.
type Exam struct {
	ID              string     `json:"id"`
	Name            string     `json:"name" validate:"required"`
	ExamType        string     `json:"exam_type" validate:"required"`
	ClassID         string     `json:"class_id" validate:"required,uuid"`
	SubjectID       string     `json:"subject_id" validate:"required,uuid"`
	TeacherID       string     `json:"teacher_id" validate:"required,uuid"`
	ExamDate        time.Time  `json:"exam_date"`
	Duration        int        `json:"duration"`
	TotalMarks      float64    `json:"total_marks" validate:"gt=0"`
	Room            string     `json:"room,omitempty"`
	Status          ExamStatus `json:"status"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
	ApprovedBy      *string    `json:"approved_by,omitempty"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	PaperURL        string     `json:"paper_url,omitempty"`
	AnswerKeyURL    string     `json:"answer_key_url,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	ClassGrade      string     `json:"class_grade,omitempty"`
	ClassSection    string     `json:"class_section,omitempty"`
	SubjectName     string     `json:"subject_name,omitempty"`
	TeacherName     string     `json:"teacher_name,omitempty"`
}

// Approve moves a pending exam to approved on behalf of the given admin user.
func (e *Exam) Approve(adminUserID string) error {
	if e.Status != ExamPending {
		return ErrExamNotPending
	}
	now := time.Now()
	e.Status = ExamApproved
	e.ApprovedBy = &adminUserID
	e.ApprovedAt = &now
	return nil
}

// Reject moves a pending exam to rejected. A rejected exam is terminal;
// resubmission means creating a new exam.
func (e *Exam) Reject(reason string) error {
	if e.Status != ExamPending {
		return ErrExamNotPending
	}
	if reason == "" {
		return ErrReasonRequired
	}
	e.Status = ExamRejected
	e.RejectionReason = reason
	return nil
}
