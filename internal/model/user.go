// File: internal/model/user.go
package model

import "time"

// ExperienceLevel 使用者的選擇權交易經驗等級
type ExperienceLevel string

const (
	ExperienceNovice       ExperienceLevel = "NOVICE"
	ExperienceIntermediate ExperienceLevel = "INTERMEDIATE"
	ExperienceAdvanced     ExperienceLevel = "ADVANCED"
	ExperienceExpert       ExperienceLevel = "EXPERT"
)

type User struct {
	ID              string          `db:"id" json:"id"`
	Username        string          `db:"username" json:"username"`
	Email           string          `db:"email" json:"email"`
	PasswordHash    string          `db:"password_hash" json:"-"`
	ExperienceLevel ExperienceLevel `db:"experience_level" json:"experience_level"`
	CreatedAt       time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at" json:"updated_at"`
}
