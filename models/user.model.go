package models

import "time"

// Role values assigned to users. Only these two are ever written.
const (
	RoleAdmin   = "Admin"
	RoleStudent = "Student"
)

// User is an identity record. Courses never reference it directly;
// enrollments carry the foreign key.
//
// No gorm.Model here: deletes must be hard deletes so the unique email
// index does not keep tombstoned rows around.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:100;not null"`
	Email        string    `json:"email" gorm:"size:256;uniqueIndex;not null"`
	Password     string    `json:"-" gorm:"not null"`
	Role         string    `json:"role" gorm:"size:20;not null;default:'Student'"`
	AcademicYear string    `json:"academic_year" gorm:"size:50"`
	CreatedAt    time.Time `json:"created_at"`
}
