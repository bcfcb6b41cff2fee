package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel holds the identifier shared by every persisted entity
type BaseModel struct {
	ID uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
}

// BeforeCreate assigns an identifier when the caller did not provide one
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// nowFunc is swapped in tests that need deterministic timestamps
var nowFunc = func() time.Time {
	return time.Now().UTC()
}
