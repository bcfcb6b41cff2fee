package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VideoDescriptor describes an externally hosted video attached at creation time
type VideoDescriptor struct {
	Title           string `json:"title" binding:"required,max=100"`
	Description     string `json:"description" binding:"max=500"`
	DurationSeconds int    `json:"durationSeconds" binding:"min=0"`
	ThumbnailTime   string `json:"thumbnailTime,omitempty" binding:"omitempty,thumbnail"`
	ProviderVideoID string `json:"providerVideoId" binding:"required,max=100"`
	ProviderName    string `json:"providerName" binding:"required,max=50"`
	IsPaid          bool   `json:"isPaid"`
	IsPrivate       bool   `json:"isPrivate"`
}

// CreateCourseRequest represents the request to create a course with optional videos
type CreateCourseRequest struct {
	Title       string            `json:"title" binding:"required,max=100"`
	Description string            `json:"description" binding:"max=500"`
	Price       decimal.Decimal   `json:"price"`
	SkillID     *uuid.UUID        `json:"skillId,omitempty"`
	IsPaid      bool              `json:"isPaid"`
	IsPrivate   bool              `json:"isPrivate"`
	Videos      []VideoDescriptor `json:"videos,omitempty" binding:"omitempty,dive"`
}

// UpdateCourseRequest represents the request to update a course.
// Pricing and visibility change only through their dedicated endpoints.
type UpdateCourseRequest struct {
	Title       string          `json:"title" binding:"required,max=100"`
	Description string          `json:"description" binding:"max=500"`
	Price       decimal.Decimal `json:"price"`
	SkillID     *uuid.UUID      `json:"skillId,omitempty"`
}

// CourseResponse represents the course response
type CourseResponse struct {
	ID            uuid.UUID       `json:"id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Slug          string          `json:"slug"`
	Price         decimal.Decimal `json:"price"`
	IsPaid        bool            `json:"isPaid"`
	IsPrivate     bool            `json:"isPrivate"`
	IsSoftDeleted bool            `json:"isSoftDeleted"`
	SkillID       *uuid.UUID      `json:"skillId,omitempty"`
	CreatorID     uuid.UUID       `json:"creatorId"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     *time.Time      `json:"updatedAt,omitempty"`
	Videos        []VideoResponse `json:"videos,omitempty"`
}

// CourseWithVideosPageResponse represents a course together with one page of its videos
type CourseWithVideosPageResponse struct {
	Course CourseResponse               `json:"course"`
	Videos PagedResponse[VideoResponse] `json:"videos"`
}
