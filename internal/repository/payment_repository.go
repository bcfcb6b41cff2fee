package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"course-marketplace-api/internal/domain"
)

// PaymentRepository defines the interface for payment data access
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Payment, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Payment, error)
	Update(ctx context.Context, payment *domain.Payment) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountPaid(ctx context.Context) (int64, error)
	CountByCourseID(ctx context.Context, courseID uuid.UUID) (int64, error)
}

// paymentRepositoryImpl is the GORM implementation of PaymentRepository
type paymentRepositoryImpl struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new instance of PaymentRepository
func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepositoryImpl{db: db}
}

func (r *paymentRepositoryImpl) Create(ctx context.Context, payment *domain.Payment) error {
	if payment.ConcurrencyStamp == "" {
		payment.ConcurrencyStamp = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *paymentRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	var payment domain.Payment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepositoryImpl) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Payment, error) {
	var payments []*domain.Payment
	if len(ids) == 0 {
		return payments, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&payments).Error
	return payments, err
}

func (r *paymentRepositoryImpl) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Payment, error) {
	var payments []*domain.Payment
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&payments).Error
	return payments, err
}

// Update writes the payment only if its concurrency stamp still matches the stored one,
// then rotates the stamp. A stale stamp yields ErrConcurrencyConflict.
func (r *paymentRepositoryImpl) Update(ctx context.Context, payment *domain.Payment) error {
	expected := payment.ConcurrencyStamp
	next := uuid.NewString()

	result := r.db.WithContext(ctx).
		Model(&domain.Payment{}).
		Where("id = ? AND concurrency_stamp = ?", payment.ID, expected).
		Updates(map[string]interface{}{
			"course_id":         payment.CourseID,
			"user_id":           payment.UserID,
			"amount":            payment.Amount,
			"is_paid":           payment.IsPaid,
			"paid_at":           payment.PaidAt,
			"concurrency_stamp": next,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrConcurrencyConflict
	}

	payment.ConcurrencyStamp = next
	return nil
}

func (r *paymentRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Payment{}, "id = ?", id).Error
}

func (r *paymentRepositoryImpl) CountPaid(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Payment{}).Where("is_paid = ?", true).Count(&count).Error
	return count, err
}

// CountByCourseID counts payments of any state recorded against the course
func (r *paymentRepositoryImpl) CountByCourseID(ctx context.Context, courseID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Payment{}).Where("course_id = ?", courseID).Count(&count).Error
	return count, err
}
