package database

import (
	"database/sql"
	"time"
)

// AdminStats are the system-wide counters shown on the admin dashboard.
type AdminStats struct {
	TotalStudents int     `json:"total_students"`
	TotalTeachers int     `json:"total_teachers"`
	TotalParents  int     `json:"total_parents"`
	TotalClasses  int     `json:"total_classes"`
	TotalRevenue  float64 `json:"total_revenue"`
}

func GetAdminStats(db *sql.DB) (*AdminStats, error) {
	stats := &AdminStats{}
	query := `SELECT
			  (SELECT COUNT(*) FROM students),
			  (SELECT COUNT(*) FROM teachers),
			  (SELECT COUNT(*) FROM parents),
			  (SELECT COUNT(*) FROM classes),
			  (SELECT COALESCE(SUM(amount_paid), 0) FROM fees)`
	err := db.QueryRow(query).Scan(
		&stats.TotalStudents, &stats.TotalTeachers, &stats.TotalParents,
		&stats.TotalClasses, &stats.TotalRevenue,
	)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// TeacherStats summarize one teacher's assignments.
type TeacherStats struct {
	AssignedClasses int `json:"assigned_classes"`
	TotalStudents   int `json:"total_students"`
	TotalSubjects   int `json:"total_subjects"`
	PendingExams    int `json:"pending_exams"`
}

func GetTeacherStats(db *sql.DB, teacherID string) (*TeacherStats, error) {
	stats := &TeacherStats{}
	query := `SELECT
			  (SELECT COUNT(DISTINCT class_id) FROM subjects WHERE teacher_id = $1),
			  (SELECT COUNT(*) FROM students st WHERE st.class_id IN
				  (SELECT DISTINCT class_id FROM subjects WHERE teacher_id = $1)),
			  (SELECT COUNT(*) FROM subjects WHERE teacher_id = $1),
			  (SELECT COUNT(*) FROM exams WHERE teacher_id = $1 AND status = 'pending')`
	err := db.QueryRow(query, teacherID).Scan(
		&stats.AssignedClasses, &stats.TotalStudents,
		&stats.TotalSubjects, &stats.PendingExams,
	)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// StudentStats summarize one student's standing.
type StudentStats struct {
	AttendanceRate float64 `json:"attendance_rate"`
	GPA            float64 `json:"gpa"`
	LatestFee      string  `json:"fee_status"`
}

func GetStudentStats(db *sql.DB, studentID string) (*StudentStats, error) {
	stats := &StudentStats{}

	var total, attended int
	err := db.QueryRow(
		`SELECT COUNT(*),
		 COUNT(*) FILTER (WHERE status IN ('Present', 'Late'))
		 FROM attendance WHERE student_id = $1`,
		studentID,
	).Scan(&total, &attended)
	if err != nil {
		return nil, err
	}
	if total > 0 {
		stats.AttendanceRate = float64(attended) / float64(total) * 100
	}

	// GPA on a 4.0 scale from average result percentage.
	var avgPercent sql.NullFloat64
	err = db.QueryRow(
		`SELECT AVG(marks_obtained / NULLIF(total_marks, 0) * 100)
		 FROM results WHERE student_id = $1`,
		studentID,
	).Scan(&avgPercent)
	if err != nil {
		return nil, err
	}
	if avgPercent.Valid {
		stats.GPA = avgPercent.Float64 / 100 * 4
	}

	stats.LatestFee = "N/A"
	var status string
	err = db.QueryRow(
		`SELECT status FROM fees WHERE student_id = $1 ORDER BY created_at DESC LIMIT 1`,
		studentID,
	).Scan(&status)
	if err != nil && err != sql.ErrNoRows {
		return nil, err
	}
	if err == nil {
		stats.LatestFee = status
	}
	return stats, nil
}

// SystemReport is the admin reports rollup over a date range.
type SystemReport struct {
	FeesCollected    float64        `json:"fees_collected"`
	FeesOutstanding  float64        `json:"fees_outstanding"`
	NewStudents      int            `json:"new_students"`
	AttendanceCounts map[string]int `json:"attendance_counts"`
}

func GetSystemReport(db *sql.DB, since time.Time) (*SystemReport, error) {
	report := &SystemReport{AttendanceCounts: map[string]int{}}

	err := db.QueryRow(
		`SELECT COALESCE(SUM(amount_paid), 0), COALESCE(SUM(balance), 0)
		 FROM fees WHERE created_at >= $1`,
		since,
	).Scan(&report.FeesCollected, &report.FeesOutstanding)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(
		`SELECT COUNT(*) FROM students WHERE created_at >= $1`, since,
	).Scan(&report.NewStudents)
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		`SELECT status, COUNT(*) FROM attendance WHERE date >= $1 GROUP BY status`, since,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		report.AttendanceCounts[status] = count
	}
	return report, rows.Err()
}
