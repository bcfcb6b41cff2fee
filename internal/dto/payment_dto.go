package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreatePaymentRequest represents the request to start a purchase of a course
type CreatePaymentRequest struct {
	CourseID uuid.UUID `json:"courseId" binding:"required"`
}

// UpdatePaymentRequest represents an administrative correction of a payment
type UpdatePaymentRequest struct {
	CourseID uuid.UUID       `json:"courseId" binding:"required"`
	UserID   uuid.UUID       `json:"userId" binding:"required"`
	Amount   decimal.Decimal `json:"amount"`
}

// PayPaymentsRequest represents the request to settle a set of payments
type PayPaymentsRequest struct {
	PaymentIDs []uuid.UUID `json:"paymentIds" binding:"required,min=1"`
}

// PaymentResponse represents the payment response
type PaymentResponse struct {
	ID        uuid.UUID       `json:"id"`
	CourseID  uuid.UUID       `json:"courseId"`
	UserID    uuid.UUID       `json:"userId"`
	Amount    decimal.Decimal `json:"amount"`
	IsPaid    bool            `json:"isPaid"`
	CreatedAt time.Time       `json:"createdAt"`
	PaidAt    *time.Time      `json:"paidAt,omitempty"`
}
