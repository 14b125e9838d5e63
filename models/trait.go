package models

// GLTrait is a personality trait score imported from the external
// trait-data API for one user.
type GLTrait struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Trait  string `json:"trait"`
	TScore int    `gorm:"column:t_score" json:"t_score"` // Score for the trait, e.g. 1-5
	UserID uint   `gorm:"not null;index" json:"user_id"`
	User   *User  `gorm:"foreignKey:UserID" json:"-"`
}

func (GLTrait) TableName() string {
	return "gltraits"
}
