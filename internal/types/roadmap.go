package types

import (
	"time"

	"github.com/google/uuid"
)

// Roadmap is the persisted row. RawAIOutput holds the canonical serialized
// plan exactly as written at generation time; it is never mutated in place,
// only read back or deleted.
type Roadmap struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	User        *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	Title       string    `gorm:"column:title;not null" json:"title"`
	RawAIOutput string    `gorm:"column:raw_ai_output;type:text" json:"raw_ai_output"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}

func (Roadmap) TableName() string { return "roadmaps" }
