package models

import "time"

// PasswordReset is a single-use token issued by the forgotten password form.
type PasswordReset struct {
	ID        uint      `gorm:"primaryKey" json:"id"`                                                     // Unique ID
	UserID    uint      `gorm:"not null;index" json:"user_id"`                                            // User the token resets
	User      User      `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"` // Foreign key constraint
	Token     string    `gorm:"not null;uniqueIndex" json:"-"`                                            // Secret sent to the user
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`                                               // Token is rejected after this
	CreatedAt time.Time `json:"created_at"`                                                               // When the reset was requested
}

func (PasswordReset) TableName() string {
	return "password_resets"
}
