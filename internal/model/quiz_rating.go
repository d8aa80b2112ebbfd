package model

import "time"

// QuizRating holds at most one row per (quiz, user); writes go through an
// upsert on the unique index, which bumps UpdatedAt on conflict.
// swagger:model QuizRating
type QuizRating struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	QuizID    uint      `gorm:"uniqueIndex:idx_quiz_user_rating;not null" json:"quizId"`
	UserID    uint      `gorm:"uniqueIndex:idx_quiz_user_rating;not null" json:"userId"`
	Rating    int       `gorm:"not null" json:"rating"` // 1-5
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (QuizRating) TableName() string {
	return "quiz_ratings"
}
