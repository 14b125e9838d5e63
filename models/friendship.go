package models

import "time"

type Friendship struct {
	ID        uint      `gorm:"primaryKey" json:"id"`                                                       // Unique ID
	UserID    uint      `gorm:"not null;uniqueIndex:idx_friendship_pair" json:"user_id"`                    // User who sent the request
	User      User      `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`   // Foreign key constraint
	FriendID  uint      `gorm:"not null;uniqueIndex:idx_friendship_pair" json:"friend_id"`                  // User who was added
	Friend    User      `gorm:"foreignKey:FriendID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"` // Foreign key constraint
	CreatedAt time.Time `json:"created_at"`                                                                 // When the request was made
}

func (Friendship) TableName() string {
	return "friendships"
}
