package database

import (
	"database/sql"
	"log"
)

// RunMigrations applies the schema idempotently at startup.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto`,

		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			role VARCHAR(10) NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,

		`CREATE TABLE IF NOT EXISTS teachers (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			user_id UUID NOT NULL UNIQUE REFERENCES users(id),
			name TEXT NOT NULL,
			phone TEXT NOT NULL DEFAULT '',
			qualification TEXT NOT NULL DEFAULT '',
			specialty TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,

		`CREATE TABLE IF NOT EXISTS classes (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			grade TEXT NOT NULL,
			section TEXT NOT NULL,
			class_teacher_id UUID REFERENCES teachers(id) ON DELETE SET NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			UNIQUE (grade, section)
		)`,

		`CREATE TABLE IF NOT EXISTS students (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			user_id UUID NOT NULL UNIQUE REFERENCES users(id),
			name TEXT NOT NULL,
			gender VARCHAR(10) NOT NULL,
			dob DATE,
			roll_number TEXT UNIQUE,
			admission_number TEXT UNIQUE,
			class_id UUID,
			phone TEXT NOT NULL DEFAULT '',
			address TEXT NOT NULL DEFAULT '',
			parent_name TEXT NOT NULL DEFAULT '',
			parent_phone TEXT NOT NULL DEFAULT '',
			monthly_fee NUMERIC(10,2) NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,

		`CREATE TABLE IF NOT EXISTS parents (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			user_id UUID NOT NULL UNIQUE REFERENCES users(id),
			name TEXT NOT NULL,
			phone TEXT NOT NULL DEFAULT '',
			address TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,

		`CREATE TABLE IF NOT EXISTS parent_students (
			parent_id UUID NOT NULL REFERENCES parents(id) ON DELETE CASCADE,
			student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			PRIMARY KEY (parent_id, student_id)
		)`,

		`CREATE TABLE IF NOT EXISTS subjects (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL,
			code TEXT NOT NULL,
			class_id UUID NOT NULL REFERENCES classes(id) ON DELETE CASCADE,
			teacher_id UUID NOT NULL REFERENCES teachers(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,

		`CREATE TABLE IF NOT EXISTS exams (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL,
			exam_type TEXT NOT NULL,
			class_id UUID NOT NULL REFERENCES classes(id),
			subject_id UUID NOT NULL REFERENCES subjects(id),
			teacher_id UUID NOT NULL REFERENCES teachers(id),
			exam_date TIMESTAMPTZ NOT NULL,
			duration INT NOT NULL DEFAULT 0,
			total_marks NUMERIC(7,2) NOT NULL,
			room TEXT NOT NULL DEFAULT '',
			status VARCHAR(10) NOT NULL DEFAULT 'pending',
			rejection_reason TEXT NOT NULL DEFAULT '',
			approved_by UUID REFERENCES users(id),
			approved_at TIMESTAMPTZ,
			paper_url TEXT NOT NULL DEFAULT '',
			answer_key_url TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,

		`CREATE TABLE IF NOT EXISTS attendance (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
			class_id UUID NOT NULL,
			subject_id UUID NOT NULL REFERENCES subjects(id),
			teacher_id UUID NOT NULL REFERENCES teachers(id),
			date DATE NOT NULL,
			status VARCHAR(10) NOT NULL,
			remarks TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			UNIQUE (student_id, subject_id, date)
		)`,

		`CREATE TABLE IF NOT EXISTS results (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			exam_id UUID NOT NULL REFERENCES exams(id) ON DELETE CASCADE,
			student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
			subject_id UUID NOT NULL REFERENCES subjects(id),
			marks_obtained NUMERIC(7,2) NOT NULL,
			total_marks NUMERIC(7,2) NOT NULL,
			grade VARCHAR(2) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			UNIQUE (exam_id, student_id, subject_id)
		)`,

		`CREATE TABLE IF NOT EXISTS fees (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
			description TEXT NOT NULL,
			amount NUMERIC(10,2) NOT NULL,
			due_date DATE NOT NULL,
			amount_paid NUMERIC(10,2) NOT NULL DEFAULT 0,
			balance NUMERIC(10,2) NOT NULL,
			status VARCHAR(10) NOT NULL DEFAULT 'Unpaid',
			billing_period VARCHAR(7),
			payment_date TIMESTAMPTZ,
			payment_method TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,

		// One generated invoice per student per calendar month.
		`CREATE UNIQUE INDEX IF NOT EXISTS fees_student_billing_period_idx
			ON fees (student_id, billing_period) WHERE billing_period IS NOT NULL`,

		`CREATE TABLE IF NOT EXISTS fee_payments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			fee_id UUID NOT NULL REFERENCES fees(id) ON DELETE CASCADE,
			amount NUMERIC(10,2) NOT NULL,
			method TEXT NOT NULL,
			note TEXT NOT NULL DEFAULT '',
			paid_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,

		`CREATE INDEX IF NOT EXISTS attendance_student_idx ON attendance (student_id, date)`,
		`CREATE INDEX IF NOT EXISTS results_student_idx ON results (student_id)`,
		`CREATE INDEX IF NOT EXISTS fees_student_idx ON fees (student_id)`,
		`CREATE INDEX IF NOT EXISTS exams_status_idx ON exams (status)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration failed: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
