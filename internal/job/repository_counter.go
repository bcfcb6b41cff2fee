package job

import (
	"context"

	"course-marketplace-api/internal/repository"
)

// repositoryCounter adapts the repositories to CatalogCounter
type repositoryCounter struct {
	repos repository.Repositories
}

// NewRepositoryCounter counts live courses and videos and settled payments
func NewRepositoryCounter(repos repository.Repositories) CatalogCounter {
	return &repositoryCounter{repos: repos}
}

func (c *repositoryCounter) CountCourses(ctx context.Context) (int64, error) {
	return c.repos.Courses.CountActive(ctx)
}

func (c *repositoryCounter) CountVideos(ctx context.Context) (int64, error) {
	return c.repos.Videos.CountActive(ctx)
}

func (c *repositoryCounter) CountPaidPayments(ctx context.Context) (int64, error) {
	return c.repos.Payments.CountPaid(ctx)
}
