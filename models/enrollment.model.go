package models

import "time"

// StatusActive is the only enrollment status any code path writes. The
// column stays free text so future statuses don't need a migration.
const StatusActive = "Active"

// Enrollment links a student to a course. The composite unique index is
// what makes concurrent duplicate registrations impossible: the database
// rejects the second insert and the service reports it as a conflict.
type Enrollment struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	StudentID    uint      `json:"student_id" gorm:"uniqueIndex:idx_enrollments_student_course;not null"`
	CourseID     uint      `json:"course_id" gorm:"uniqueIndex:idx_enrollments_student_course;not null"`
	Status       string    `json:"status" gorm:"size:20;not null;default:'Active'"`
	RegisteredAt time.Time `json:"registered_at"`

	Student User   `json:"student,omitempty" gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
	Course  Course `json:"course,omitempty" gorm:"foreignKey:CourseID"`
}
