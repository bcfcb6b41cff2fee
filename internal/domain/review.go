package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Review is a rating left on a course, optionally scoped to one of its videos
type Review struct {
	BaseModel
	Status
	Content  string          `gorm:"type:varchar(1000)" json:"content"`
	Rating   decimal.Decimal `gorm:"type:decimal(2,1);not null" json:"rating"`
	CourseID uuid.UUID       `gorm:"<-:create;type:char(36);not null;index:idx_reviews_course_id" json:"courseId"`
	VideoID  *uuid.UUID      `gorm:"<-:create;type:char(36);index:idx_reviews_video_id" json:"videoId,omitempty"`
	UserID   uuid.UUID       `gorm:"<-:create;type:char(36);not null;index:idx_reviews_user_id" json:"userId"`
}

// TableName specifies the table name for Review
func (Review) TableName() string {
	return "reviews"
}

var (
	minRating = decimal.Zero
	maxRating = decimal.NewFromInt(5)
)

// ValidRating reports whether r lies within the 0 to 5 range
func ValidRating(r decimal.Decimal) bool {
	return r.GreaterThanOrEqual(minRating) && r.LessThanOrEqual(maxRating)
}
