package model

// QuizAttempt is an append-only fact row created on submission.
// swagger:model QuizAttempt
type QuizAttempt struct {
	BaseModel
	QuizID      uint    `gorm:"index;not null" json:"quizId"`
	UserID      uint    `gorm:"index;not null" json:"userId"`
	Answers     IntList `gorm:"type:json" json:"answers"` // chosen index per question, in question order
	Score       int     `gorm:"default:0" json:"score"`
	Percentage  float64 `gorm:"default:0" json:"percentage"`
	IsCompleted bool    `gorm:"default:false" json:"isCompleted"`
	TimeTaken   int     `gorm:"default:0" json:"timeTaken"` // Seconds
	XPEarned    int     `gorm:"default:0" json:"xpEarned"`
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}
