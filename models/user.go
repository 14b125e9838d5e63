// user.go - Defines the User model for the database

package models // Declares the package name

import "fmt"

type User struct { // User struct represents a registered user in the database
	ID       uint   `gorm:"primaryKey" json:"id"`           // Unique user ID (primary key)
	Username string `gorm:"not null;index" json:"username"` // Login name, usually an email; uniqueness is checked on registration
	Password string `gorm:"not null" json:"-"`              // Password (bcrypt hash for registered users)
	Name     string `json:"name"`                           // First name from the registration form
	Surname  string `json:"surname"`                        // Last name from the registration form
	Email    string `json:"email"`                          // Contact email
	Role     string `gorm:"default:'user'" json:"role"`     // User role (user/admin)

	GLTraits []GLTrait `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"gltraits,omitempty"` // Imported traits owned by the user
	Answers  []Answer  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"answers,omitempty"`  // Answers authored by the user
}

func (User) TableName() string {
	return "users"
}

func (u User) String() string {
	return fmt.Sprintf("User(id = %d, username = %s)", u.ID, u.Username)
}
