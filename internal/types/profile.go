package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Profile is the prompt-facing user profile. Its JSON form is embedded
// verbatim into the generation prompt, so tag names are part of the
// model-facing contract.
type Profile struct {
	UserID    uuid.UUID      `gorm:"type:uuid;primaryKey" json:"userId"`
	User      *User          `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"-"`
	FirstName string         `gorm:"column:first_name" json:"firstName,omitempty"`
	Surname   string         `gorm:"column:surname" json:"surname,omitempty"`
	GoalTitle string         `gorm:"column:goal_title" json:"goalTitle"`
	Skills    datatypes.JSON `gorm:"column:skills;type:jsonb" json:"skills"`
	Interests datatypes.JSON `gorm:"column:interests;type:jsonb" json:"interests"`
	UpdatedAt time.Time      `gorm:"not null" json:"updatedAt"`
}

func (Profile) TableName() string { return "profiles" }

type ProfileResponse struct {
	UserID    uuid.UUID      `json:"userId"`
	Email     string         `json:"email"`
	FirstName string         `json:"firstName,omitempty"`
	Surname   string         `json:"surname,omitempty"`
	GoalTitle string         `json:"goalTitle,omitempty"`
	Skills    datatypes.JSON `json:"skills,omitempty"`
	Interests datatypes.JSON `json:"interests,omitempty"`
	UpdatedAt *time.Time     `json:"updatedAt,omitempty"`
}
