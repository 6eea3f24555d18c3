// Package model holds the row types persisted by the portal. Fields with a
// zero value before insert (IDs, PostedAt) are filled in by the database.
package model

import "time"

// Student is an enrolled student. Course is stored by name, matching the
// legacy schema; it is not a foreign key.
type Student struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Course       string `json:"course"`
	Semester     int    `json:"semester"`
}

// Faculty is a teaching staff member.
type Faculty struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Department   string `json:"department"`
}

// Course is a degree program offering subjects.
type Course struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Subject is one course unit, taught by one faculty member.
type Subject struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	CourseID  int64  `json:"course_id"`
	FacultyID int64  `json:"faculty_id"`
}

// SubjectDetail is a subject enriched with the owning course's and teaching
// faculty's names. Nil enrichment fields mean the reference is dangling; the
// subject row itself is still listed.
type SubjectDetail struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	CourseName  *string `json:"course_name"`
	FacultyName *string `json:"faculty_name"`
}

// Notice is an announcement broadcast by the admin.
type Notice struct {
	ID       int64     `json:"id"`
	Title    string    `json:"title"`
	Message  string    `json:"message"`
	PostedAt time.Time `json:"posted_at"`
}

// AttendanceRecord is one attendance mark for a student in a subject on a day.
type AttendanceRecord struct {
	StudentID int64     `json:"student_id"`
	SubjectID int64     `json:"subject_id"`
	Date      time.Time `json:"date"`
	Status    string    `json:"status"`
}

// AttendanceEntry is an attendance row as shown to the student, joined with
// the subject name.
type AttendanceEntry struct {
	SubjectName string    `json:"subject_name"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`
}

// MarkRecord is the score a student holds in a subject; one row per
// (student, subject) pair.
type MarkRecord struct {
	StudentID int64 `json:"student_id"`
	SubjectID int64 `json:"subject_id"`
	Score     int   `json:"score"`
}

// MarkEntry is a marks row as shown to the student.
type MarkEntry struct {
	SubjectName string `json:"subject_name"`
	Score       int    `json:"score"`
}
