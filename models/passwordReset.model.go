package models

import "time"

// PasswordReset is a single-use reset token mailed to the user.
type PasswordReset struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	Token     string    `json:"-" gorm:"size:64;uniqueIndex;not null"`
	ExpiresAt time.Time `json:"expires_at"`
	UsedAt    *time.Time
	CreatedAt time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
