package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateVideoRequest represents the request to add a video to an existing course
type CreateVideoRequest struct {
	VideoDescriptor
}

// UpdateVideoRequest represents the request to update a video
type UpdateVideoRequest struct {
	Title         string `json:"title" binding:"required,max=100"`
	Description   string `json:"description" binding:"max=500"`
	ThumbnailTime string `json:"thumbnailTime,omitempty" binding:"omitempty,thumbnail"`
}

// VideoResponse represents the video response
type VideoResponse struct {
	ID              uuid.UUID  `json:"id"`
	CourseID        uuid.UUID  `json:"courseId"`
	CreatorID       uuid.UUID  `json:"creatorId"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Slug            string     `json:"slug"`
	DurationSeconds int        `json:"durationSeconds"`
	ThumbnailTime   string     `json:"thumbnailTime,omitempty"`
	ProviderVideoID string     `json:"providerVideoId"`
	ProviderName    string     `json:"providerName"`
	IsPaid          bool       `json:"isPaid"`
	IsPrivate       bool       `json:"isPrivate"`
	IsSoftDeleted   bool       `json:"isSoftDeleted"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       *time.Time `json:"updatedAt,omitempty"`
}

// UploadTokenResponse represents a delegated upload token issued by the media provider
type UploadTokenResponse struct {
	Token     string    `json:"token"`
	TTL       int       `json:"ttl"`
	ExpiresAt time.Time `json:"expiresAt"`
}
