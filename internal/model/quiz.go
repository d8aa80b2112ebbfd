package model

type Difficulty string

const (
	Beginner     Difficulty = "BEGINNER"
	Intermediate Difficulty = "INTERMEDIATE"
	Advanced     Difficulty = "ADVANCED"
)

// swagger:model Quiz
type Quiz struct {
	BaseModel
	Title         string     `gorm:"size:255;not null" json:"title"`
	Description   string     `gorm:"type:text" json:"description"`
	Category      string     `gorm:"size:100;index;not null" json:"category"`
	Difficulty    Difficulty `gorm:"size:20;not null;default:'BEGINNER'" json:"difficulty"`
	IsTimeLimited bool       `gorm:"default:false" json:"isTimeLimited"`
	TimeLimit     int        `gorm:"default:0" json:"timeLimit"` // Minutes, 0 when not time-limited
	UserID        uint       `gorm:"index;not null" json:"userId"`
	Questions     []Question `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"questions,omitempty"`
}

func (Quiz) TableName() string {
	return "quizzes"
}
