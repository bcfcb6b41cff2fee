package dto

import (
	"time"

	"github.com/google/uuid"
)

// SkillRequest represents the request to create or update a skill
type SkillRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=500"`
}

// AddCreatorSkillsRequest represents the request to tag a creator with skills
type AddCreatorSkillsRequest struct {
	SkillIDs []uuid.UUID `json:"skillIds" binding:"required,min=1"`
}

// SkillResponse represents the skill response
type SkillResponse struct {
	ID            uuid.UUID        `json:"id"`
	Name          string           `json:"name"`
	Slug          string           `json:"slug"`
	Description   string           `json:"description"`
	IsSoftDeleted bool             `json:"isSoftDeleted"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     *time.Time       `json:"updatedAt,omitempty"`
	Courses       []CourseResponse `json:"courses,omitempty"`
}
