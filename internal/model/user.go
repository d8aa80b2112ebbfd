package model

import "time"

// swagger:model User
type User struct {
	BaseModel
	Name          string    `gorm:"size:100;not null" json:"name"`
	Email         string    `gorm:"size:100;unique;not null" json:"email"`
	Password      string    `gorm:"size:100;not null" json:"-"`
	Avatar        string    `gorm:"size:255" json:"avatar"`
	Bio           string    `gorm:"size:500" json:"bio"`
	CurrentStreak int       `gorm:"default:0" json:"currentStreak"`
	BestStreak    int       `gorm:"default:0" json:"bestStreak"`
	TotalXP       int       `gorm:"default:0" json:"totalXp"`
	LastLogin     time.Time `json:"lastLogin"`
}

func (User) TableName() string {
	return "users"
}
