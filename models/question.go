package models

// Question is a self-assessment prompt about one trait category.
type Question struct {
	ID       uint     `gorm:"primaryKey" json:"id"`
	Question string   `json:"question"`
	Trait    string   `gorm:"index" json:"trait"` // Should match a GLTrait.Trait for scoring
	Answers  []Answer `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Question) TableName() string {
	return "questions"
}

// Answer is one user's reply to a question on the 1-5 scale.
type Answer struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	QuestionID uint      `gorm:"not null;index" json:"question_id"`
	Answer     int       `json:"answer"` // 1-5
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	Question   *Question `gorm:"foreignKey:QuestionID" json:"question,omitempty"`
	Author     *User     `gorm:"foreignKey:UserID" json:"-"`
}

func (Answer) TableName() string {
	return "answers"
}

const (
	MinAnswer = 1
	MaxAnswer = 5
)
