package model

import "time"

// QuizBookmark presence means the user bookmarked the quiz. The composite
// unique index keeps concurrent duplicate toggles from inserting twice.
// No soft delete here: a toggled-off bookmark must free the index slot.
// swagger:model QuizBookmark
type QuizBookmark struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	QuizID    uint      `gorm:"uniqueIndex:idx_quiz_user_bookmark;not null" json:"quizId"`
	UserID    uint      `gorm:"uniqueIndex:idx_quiz_user_bookmark;not null" json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (QuizBookmark) TableName() string {
	return "quiz_bookmarks"
}
