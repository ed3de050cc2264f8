package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExamApprove(t *testing.T) {
	exam := &Exam{Status: ExamPending}

	err := exam.Approve("admin-1")
	require.NoError(t, err)
	assert.Equal(t, ExamApproved, exam.Status)
	require.NotNil(t, exam.ApprovedBy)
	assert.Equal(t, "admin-1", *exam.ApprovedBy)
	assert.NotNil(t, exam.ApprovedAt)
}

func TestExamApproveOnlyFromPending(t *testing.T) {
	for _, status := range []ExamStatus{ExamApproved, ExamRejected} {
		exam := &Exam{Status: status}
		err := exam.Approve("admin-1")
		assert.ErrorIs(t, err, ErrExamNotPending)
		assert.Equal(t, status, exam.Status)
	}
}

func TestExamReject(t *testing.T) {
	exam := &Exam{Status: ExamPending}

	err := exam.Reject("duplicate of midterm schedule")
	require.NoError(t, err)
	assert.Equal(t, ExamRejected, exam.Status)
	assert.Equal(t, "duplicate of midterm schedule", exam.RejectionReason)
}

func TestExamRejectRequiresReason(t *testing.T) {
	exam := &Exam{Status: ExamPending}

	err := exam.Reject("")
	assert.ErrorIs(t, err, ErrReasonRequired)
	assert.Equal(t, ExamPending, exam.Status)
}

func TestExamRejectOnlyFromPending(t *testing.T) {
	exam := &Exam{Status: ExamPending}
	require.NoError(t, exam.Approve("admin-1"))

	err := exam.Reject("too late")
	assert.ErrorIs(t, err, ErrExamNotPending)
	assert.Equal(t, ExamApproved, exam.Status)
	assert.Empty(t, exam.RejectionReason)
}
