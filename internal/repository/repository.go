package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrConcurrencyConflict is returned when an optimistic write finds a stale concurrency stamp
var ErrConcurrencyConflict = errors.New("concurrency conflict: the record was modified by another request")

// Repositories groups every repository bound to the same connection or transaction
type Repositories struct {
	Courses  CourseRepository
	Videos   VideoRepository
	Skills   SkillRepository
	Reviews  ReviewRepository
	Payments PaymentRepository
	Users    UserRepository
	Roles    RoleRepository
}

// NewRepositories binds all repositories to db
func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Courses:  NewCourseRepository(db),
		Videos:   NewVideoRepository(db),
		Skills:   NewSkillRepository(db),
		Reviews:  NewReviewRepository(db),
		Payments: NewPaymentRepository(db),
		Users:    NewUserRepository(db),
		Roles:    NewRoleRepository(db),
	}
}

// UnitOfWork applies the writes made through the provided repositories as one transaction.
// Returning an error from fn rolls every write back.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(tx Repositories) error) error
}

type gormUnitOfWork struct {
	db *gorm.DB
}

// NewUnitOfWork creates a new UnitOfWork
func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &gormUnitOfWork{db: db}
}

func (u *gormUnitOfWork) Do(ctx context.Context, fn func(tx Repositories) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}

// Page describes a 1-based page request
type Page struct {
	Number int
	Size   int
}

// Offset returns the number of rows to skip
func (p Page) Offset() int {
	if p.Number < 1 {
		return 0
	}
	return (p.Number - 1) * p.Size
}

func paginate(p Page) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(p.Offset()).Limit(p.Size)
	}
}

func notDeleted(db *gorm.DB) *gorm.DB {
	return db.Where("is_soft_deleted = ?", false)
}
