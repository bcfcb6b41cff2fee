package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment records a purchase of a course by a user.
// The amount is captured from the course price at creation and never recomputed.
type Payment struct {
	BaseModel
	CourseID         uuid.UUID       `gorm:"type:char(36);not null;index:idx_payments_course_id" json:"courseId"`
	UserID           uuid.UUID       `gorm:"type:char(36);not null;index:idx_payments_user_id" json:"userId"`
	Amount           decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	IsPaid           bool            `gorm:"not null;default:false" json:"isPaid"`
	CreatedAt        time.Time       `gorm:"<-:create;not null" json:"createdAt"`
	PaidAt           *time.Time      `json:"paidAt,omitempty"`
	ConcurrencyStamp string          `gorm:"type:varchar(36);not null" json:"-"`
}

// TableName specifies the table name for Payment
func (Payment) TableName() string {
	return "payments"
}

// NewPayment creates an unpaid payment for the course at the given price
func NewPayment(courseID, userID uuid.UUID, amount decimal.Decimal) *Payment {
	return &Payment{
		BaseModel:        BaseModel{ID: uuid.New()},
		CourseID:         courseID,
		UserID:           userID,
		Amount:           amount,
		CreatedAt:        nowFunc(),
		ConcurrencyStamp: uuid.NewString(),
	}
}

// Pay settles the payment. It returns false when the payment was already paid.
func (p *Payment) Pay() bool {
	if p.IsPaid {
		return false
	}
	now := nowFunc()
	p.IsPaid = true
	p.PaidAt = &now
	return true
}
