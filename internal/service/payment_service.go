package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"course-marketplace-api/internal/domain"
	"course-marketplace-api/internal/dto"
	"course-marketplace-api/internal/metrics"
	"course-marketplace-api/internal/repository"
	"course-marketplace-api/internal/response"
)

// PaymentService defines the interface for payment business logic
type PaymentService interface {
	CreatePayment(ctx context.Context, userID uuid.UUID, req *dto.CreatePaymentRequest) response.Result[*dto.PaymentResponse]
	GetPaymentsByUser(ctx context.Context, userID uuid.UUID) response.Result[[]dto.PaymentResponse]
	UpdatePayment(ctx context.Context, id uuid.UUID, req *dto.UpdatePaymentRequest) response.Result[response.Empty]
	DeletePayment(ctx context.Context, id uuid.UUID) response.Result[response.Empty]
	PayPayments(ctx context.Context, ids []uuid.UUID) response.Result[response.Empty]
}

type paymentServiceImpl struct {
	repos   repository.Repositories
	uow     repository.UnitOfWork
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewPaymentService creates a new instance of PaymentService
func NewPaymentService(repos repository.Repositories, uow repository.UnitOfWork, m *metrics.Metrics, logger *zap.Logger) PaymentService {
	return &paymentServiceImpl{repos: repos, uow: uow, metrics: m, logger: logger}
}

// CreatePayment opens an unpaid payment for the course at its current price
func (s *paymentServiceImpl) CreatePayment(ctx context.Context, userID uuid.UUID, req *dto.CreatePaymentRequest) response.Result[*dto.PaymentResponse] {
	if req == nil {
		return response.Fail[*dto.PaymentResponse](response.NewArgumentNullError("Payment"))
	}
	if _, err := s.repos.Users.FindByID(ctx, userID); err != nil {
		return response.Fail[*dto.PaymentResponse](lookupFailure(s.logger, "User", userID, err))
	}

	course, err := s.repos.Courses.FindByID(ctx, req.CourseID)
	if err != nil {
		return response.Fail[*dto.PaymentResponse](lookupFailure(s.logger, "Course", req.CourseID, err))
	}
	if course.IsSoftDeleted {
		return response.Fail[*dto.PaymentResponse](response.NewNotFoundError("Course", req.CourseID))
	}

	payment := domain.NewPayment(course.ID, userID, course.Price)
	if err := s.repos.Payments.Create(ctx, payment); err != nil {
		return response.Fail[*dto.PaymentResponse](writeFailure(s.logger, "Payment", err))
	}

	resp := toPaymentResponse(payment)
	return response.Created(&resp)
}

func (s *paymentServiceImpl) GetPaymentsByUser(ctx context.Context, userID uuid.UUID) response.Result[[]dto.PaymentResponse] {
	payments, err := s.repos.Payments.FindByUserID(ctx, userID)
	if err != nil {
		return response.Fail[[]dto.PaymentResponse](internalFailure(s.logger, "Failed to list payments", err))
	}
	out := make([]dto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, toPaymentResponse(p))
	}
	return response.Ok(out)
}

func (s *paymentServiceImpl) UpdatePayment(ctx context.Context, id uuid.UUID, req *dto.UpdatePaymentRequest) response.Result[response.Empty] {
	if req == nil {
		return response.Fail[response.Empty](response.NewArgumentNullError("Payment"))
	}
	if req.Amount.IsNegative() {
		return response.Fail[response.Empty](fieldError("amount", "Amount must not be negative."))
	}

	payment, err := s.repos.Payments.FindByID(ctx, id)
	if err != nil {
		return response.Fail[response.Empty](lookupFailure(s.logger, "Payment", id, err))
	}

	payment.CourseID = req.CourseID
	payment.UserID = req.UserID
	payment.Amount = req.Amount

	if err := s.repos.Payments.Update(ctx, payment); err != nil {
		return response.Fail[response.Empty](writeFailure(s.logger, "Payment", err))
	}
	return response.Updated()
}

func (s *paymentServiceImpl) DeletePayment(ctx context.Context, id uuid.UUID) response.Result[response.Empty] {
	if _, err := s.repos.Payments.FindByID(ctx, id); err != nil {
		return response.Fail[response.Empty](lookupFailure(s.logger, "Payment", id, err))
	}
	if err := s.repos.Payments.Delete(ctx, id); err != nil {
		return response.Fail[response.Empty](internalFailure(s.logger, "Failed to delete payment", err))
	}
	return response.Deleted()
}

// PayPayments settles every listed payment in one transaction.
// Payments already paid are left untouched; if all were, nothing is written.
func (s *paymentServiceImpl) PayPayments(ctx context.Context, ids []uuid.UUID) response.Result[response.Empty] {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return response.Fail[response.Empty](fieldError("paymentIds", "At least one payment is required."))
	}

	payments, err := s.repos.Payments.FindByIDs(ctx, ids)
	if err != nil {
		return response.Fail[response.Empty](internalFailure(s.logger, "Failed to load payments", err))
	}
	if missing := missingIDs(ids, payments); len(missing) > 0 {
		return response.Fail[response.Empty](response.NewNotFoundError("Payment", strings.Join(missing, ", ")))
	}

	var settled []*domain.Payment
	for _, p := range payments {
		if p.Pay() {
			settled = append(settled, p)
		}
	}
	if len(settled) == 0 {
		return response.NotModified()
	}

	err = s.uow.Do(ctx, func(tx repository.Repositories) error {
		for _, p := range settled {
			if err := tx.Payments.Update(ctx, p); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrConcurrencyConflict) {
			s.logger.Warn("Payment settlement hit a concurrent update", zap.Int("payments", len(settled)))
		}
		return response.Fail[response.Empty](writeFailure(s.logger, "Payment", err))
	}

	s.metrics.AddPaymentsSettled(len(settled))
	s.logger.Info("Payments settled", zap.Int("payments", len(settled)))
	return response.Updated()
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

func missingIDs(ids []uuid.UUID, payments []*domain.Payment) []string {
	found := make(map[uuid.UUID]bool, len(payments))
	for _, p := range payments {
		found[p.ID] = true
	}
	var missing []string
	for _, id := range ids {
		if !found[id] {
			missing = append(missing, id.String())
		}
	}
	return missing
}
