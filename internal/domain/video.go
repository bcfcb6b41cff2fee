package domain

import "github.com/google/uuid"

// Video is a single externally hosted media asset that belongs to a course.
// CourseID is written once at creation.
type Video struct {
	BaseModel
	Status
	Availability
	Title           string    `gorm:"type:varchar(100);not null" json:"title"`
	Description     string    `gorm:"type:varchar(500)" json:"description"`
	Slug            string    `gorm:"type:varchar(150);not null;index:idx_videos_slug" json:"slug"`
	DurationSeconds int       `gorm:"not null;default:0" json:"durationSeconds"`
	ThumbnailTime   string    `gorm:"type:varchar(20)" json:"thumbnailTime,omitempty"`
	CourseID        uuid.UUID `gorm:"<-:create;type:char(36);not null;index:idx_videos_course_id" json:"courseId"`
	CreatorID       uuid.UUID `gorm:"type:char(36);not null;index:idx_videos_creator_id" json:"creatorId"`
	ProviderVideoID string    `gorm:"type:varchar(100);not null" json:"providerVideoId"`
	ProviderName    string    `gorm:"type:varchar(50);not null" json:"providerName"`
}

// TableName specifies the table name for Video
func (Video) TableName() string {
	return "videos"
}

// MakePaid flips the pricing axis to paid
func (v *Video) MakePaid() bool { return v.touchIf(v.makePaid()) }

// MakeFree flips the pricing axis to free
func (v *Video) MakeFree() bool { return v.touchIf(v.makeFree()) }

// MakePrivate flips the visibility axis to private
func (v *Video) MakePrivate() bool { return v.touchIf(v.makePrivate()) }

// MakePublic flips the visibility axis to public
func (v *Video) MakePublic() bool { return v.touchIf(v.makePublic()) }
