package model

// Question exists only as a child of exactly one quiz; deleting the quiz
// cascades here.
// swagger:model Question
type Question struct {
	BaseModel
	QuizID        uint       `gorm:"index;not null" json:"quizId"`
	Title         string     `gorm:"size:500;not null" json:"title"`
	Choices       StringList `gorm:"type:json;not null" json:"choices"`
	CorrectAnswer int        `gorm:"not null" json:"correctAnswer"`
	Order         int        `gorm:"default:0" json:"order"`
}

func (Question) TableName() string {
	return "questions"
}
