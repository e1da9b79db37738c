package models

import "time"

// Course is a catalog entry. Code is the external course code
// (e.g. "CS101") and is globally unique; ID is the internal key.
type Course struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Code          string    `json:"code" gorm:"size:20;uniqueIndex;not null"`
	Name          string    `json:"name" gorm:"size:200;not null"`
	NameAr        string    `json:"name_ar" gorm:"size:200;not null"`
	Description   string    `json:"description" gorm:"size:1000"`
	DescriptionAr string    `json:"description_ar" gorm:"size:1000"`
	Credits       int       `json:"credits" gorm:"not null"`
	Semester      string    `json:"semester" gorm:"size:50;not null"`
	IsActive      bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedAt     time.Time `json:"created_at"`
}
