package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"course-marketplace-api/internal/dto"
	"course-marketplace-api/internal/repository"
	"course-marketplace-api/internal/response"
)

const validationFailedMessage = "One or more validation errors occurred."

// lookupFailure classifies an error returned by a lookup of resource id.
// A missing row is NotFound; anything else is an internal failure.
func lookupFailure(logger *zap.Logger, resource string, id uuid.UUID, err error) *response.AppError {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return response.NewNotFoundError(resource, id)
	}
	return internalFailure(logger, fmt.Sprintf("Failed to load %s", resource), err, zap.String("id", id.String()))
}

// internalFailure logs err and returns a generic internal error
func internalFailure(logger *zap.Logger, msg string, err error, fields ...zap.Field) *response.AppError {
	logger.Error(msg, append(fields, zap.Error(err))...)
	return response.NewInternalError(err.Error())
}

// writeFailure classifies an error returned by a write
func writeFailure(logger *zap.Logger, resource string, err error) *response.AppError {
	switch {
	case errors.Is(err, repository.ErrConcurrencyConflict):
		return response.NewConflictError(fmt.Sprintf("%s was modified by another request. Reload and retry.", resource))
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return response.NewConflictError(fmt.Sprintf("%s already exists.", resource))
	}
	return internalFailure(logger, fmt.Sprintf("Failed to save %s", resource), err)
}

func fieldError(field, message string) *response.AppError {
	return response.NewValidationError(validationFailedMessage, map[string][]string{field: {message}})
}

func toPage(q dto.PageQuery) repository.Page {
	q = q.Normalize()
	return repository.Page{Number: q.Page, Size: q.PageSize}
}

func newPagedResponse[T any](items []T, q dto.PageQuery, total int64) *dto.PagedResponse[T] {
	q = q.Normalize()
	if items == nil {
		items = []T{}
	}
	return &dto.PagedResponse[T]{Items: items, Page: q.Page, PageSize: q.PageSize, TotalCount: total}
}
