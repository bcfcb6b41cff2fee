package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Course is the aggregate root owning a set of videos.
// Videos are reachable only through AddVideo, RemoveVideo and Videos.
type Course struct {
	BaseModel
	Status
	Availability
	Title       string          `gorm:"type:varchar(100);not null" json:"title"`
	Description string          `gorm:"type:varchar(500)" json:"description"`
	Slug        string          `gorm:"type:varchar(150);not null;index:idx_courses_slug" json:"slug"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	SkillID     *uuid.UUID      `gorm:"type:char(36);index:idx_courses_skill_id" json:"skillId,omitempty"`
	CreatorID   uuid.UUID       `gorm:"type:char(36);not null;index:idx_courses_creator_id" json:"creatorId"`

	videos []*Video `gorm:"-"`
}

// TableName specifies the table name for Course
func (Course) TableName() string {
	return "courses"
}

// MakePaid flips the pricing axis to paid
func (c *Course) MakePaid() bool { return c.touchIf(c.makePaid()) }

// MakeFree flips the pricing axis to free
func (c *Course) MakeFree() bool { return c.touchIf(c.makeFree()) }

// MakePrivate flips the visibility axis to private
func (c *Course) MakePrivate() bool { return c.touchIf(c.makePrivate()) }

// MakePublic flips the visibility axis to public
func (c *Course) MakePublic() bool { return c.touchIf(c.makePublic()) }

// AddVideo attaches v to the course, binding it to the course id and creator.
// It returns false when a video with the same id is already attached.
func (c *Course) AddVideo(v *Video) bool {
	if v == nil {
		return false
	}
	for _, existing := range c.videos {
		if existing.ID == v.ID {
			return false
		}
	}
	v.CourseID = c.ID
	v.CreatorID = c.CreatorID
	c.videos = append(c.videos, v)
	return true
}

// RemoveVideo detaches the video with the given id
func (c *Course) RemoveVideo(id uuid.UUID) bool {
	for i, existing := range c.videos {
		if existing.ID == id {
			c.videos = append(c.videos[:i], c.videos[i+1:]...)
			return true
		}
	}
	return false
}

// Videos returns a copy of the attached videos
func (c *Course) Videos() []*Video {
	out := make([]*Video, len(c.videos))
	copy(out, c.videos)
	return out
}
