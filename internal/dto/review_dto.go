package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateReviewRequest represents the request to review a course or one of its videos
type CreateReviewRequest struct {
	CourseID uuid.UUID       `json:"courseId" binding:"required"`
	VideoID  *uuid.UUID      `json:"videoId,omitempty"`
	Content  string          `json:"content" binding:"max=1000"`
	Rating   decimal.Decimal `json:"rating"`
}

// UpdateReviewRequest represents the request to update a review
type UpdateReviewRequest struct {
	Content string          `json:"content" binding:"max=1000"`
	Rating  decimal.Decimal `json:"rating"`
}

// ReviewResponse represents the review response
type ReviewResponse struct {
	ID            uuid.UUID       `json:"id"`
	CourseID      uuid.UUID       `json:"courseId"`
	VideoID       *uuid.UUID      `json:"videoId,omitempty"`
	UserID        uuid.UUID       `json:"userId"`
	Content       string          `json:"content"`
	Rating        decimal.Decimal `json:"rating"`
	IsSoftDeleted bool            `json:"isSoftDeleted"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     *time.Time      `json:"updatedAt,omitempty"`
}
