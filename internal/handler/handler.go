// Package handler exposes the services over HTTP.
package handler

import (
	"context"

	"github.com/google/uuid"

	"course-marketplace-api/internal/response"
)

// idCommand is a void operation addressed by a single resource id
type idCommand func(ctx context.Context, id uuid.UUID) response.Result[response.Empty]
