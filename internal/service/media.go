package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"course-marketplace-api/internal/client"
	"course-marketplace-api/internal/domain"
	"course-marketplace-api/internal/dto"
	"course-marketplace-api/internal/response"
	"course-marketplace-api/internal/slug"
)

var errMediaCheckerMissing = errors.New("media checker is not configured")

// ensureMediaReady rejects provider videos that have not finished uploading
func ensureMediaReady(ctx context.Context, media client.MediaChecker, logger *zap.Logger, providerVideoIDs []string) *response.AppError {
	if len(providerVideoIDs) == 0 {
		return nil
	}
	if media == nil {
		return internalFailure(logger, "Cannot check media readiness", errMediaCheckerMissing)
	}

	ready, err := media.CheckReady(ctx, providerVideoIDs)
	if err != nil {
		return internalFailure(logger, "Failed to check media readiness", err)
	}

	var messages []string
	for _, id := range providerVideoIDs {
		if !ready[id] {
			messages = append(messages, fmt.Sprintf("Video %s has not finished uploading.", id))
		}
	}
	if len(messages) > 0 {
		return response.NewValidationError(validationFailedMessage, map[string][]string{"videos": messages})
	}
	return nil
}

func newVideo(desc dto.VideoDescriptor) *domain.Video {
	return &domain.Video{
		Status:          domain.NewStatus(),
		Title:           desc.Title,
		Description:     desc.Description,
		Slug:            slug.Make(desc.Title),
		DurationSeconds: desc.DurationSeconds,
		ThumbnailTime:   desc.ThumbnailTime,
		ProviderVideoID: desc.ProviderVideoID,
		ProviderName:    desc.ProviderName,
		Availability: domain.Availability{
			IsPaid:    desc.IsPaid,
			IsPrivate: desc.IsPrivate,
		},
	}
}
