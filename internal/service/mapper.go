package service

import (
	"course-marketplace-api/internal/domain"
	"course-marketplace-api/internal/dto"
)

func toCourseResponse(c *domain.Course) dto.CourseResponse {
	resp := dto.CourseResponse{
		ID:            c.ID,
		Title:         c.Title,
		Description:   c.Description,
		Slug:          c.Slug,
		Price:         c.Price,
		IsPaid:        c.IsPaid,
		IsPrivate:     c.IsPrivate,
		IsSoftDeleted: c.IsSoftDeleted,
		SkillID:       c.SkillID,
		CreatorID:     c.CreatorID,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
	if videos := c.Videos(); len(videos) > 0 {
		resp.Videos = toVideoResponses(videos)
	}
	return resp
}

func toCourseResponses(courses []*domain.Course) []dto.CourseResponse {
	out := make([]dto.CourseResponse, 0, len(courses))
	for _, c := range courses {
		out = append(out, toCourseResponse(c))
	}
	return out
}

func toVideoResponse(v *domain.Video) dto.VideoResponse {
	return dto.VideoResponse{
		ID:              v.ID,
		CourseID:        v.CourseID,
		CreatorID:       v.CreatorID,
		Title:           v.Title,
		Description:     v.Description,
		Slug:            v.Slug,
		DurationSeconds: v.DurationSeconds,
		ThumbnailTime:   v.ThumbnailTime,
		ProviderVideoID: v.ProviderVideoID,
		ProviderName:    v.ProviderName,
		IsPaid:          v.IsPaid,
		IsPrivate:       v.IsPrivate,
		IsSoftDeleted:   v.IsSoftDeleted,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

func toVideoResponses(videos []*domain.Video) []dto.VideoResponse {
	out := make([]dto.VideoResponse, 0, len(videos))
	for _, v := range videos {
		out = append(out, toVideoResponse(v))
	}
	return out
}

func toSkillResponse(s *domain.Skill) dto.SkillResponse {
	resp := dto.SkillResponse{
		ID:            s.ID,
		Name:          s.Name,
		Slug:          s.Slug,
		Description:   s.Description,
		IsSoftDeleted: s.IsSoftDeleted,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
	if courses := s.Courses(); len(courses) > 0 {
		resp.Courses = toCourseResponses(courses)
	}
	return resp
}

func toSkillResponses(skills []*domain.Skill) []dto.SkillResponse {
	out := make([]dto.SkillResponse, 0, len(skills))
	for _, s := range skills {
		out = append(out, toSkillResponse(s))
	}
	return out
}

func toReviewResponse(r *domain.Review) dto.ReviewResponse {
	return dto.ReviewResponse{
		ID:            r.ID,
		CourseID:      r.CourseID,
		VideoID:       r.VideoID,
		UserID:        r.UserID,
		Content:       r.Content,
		Rating:        r.Rating,
		IsSoftDeleted: r.IsSoftDeleted,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func toPaymentResponse(p *domain.Payment) dto.PaymentResponse {
	return dto.PaymentResponse{
		ID:        p.ID,
		CourseID:  p.CourseID,
		UserID:    p.UserID,
		Amount:    p.Amount,
		IsPaid:    p.IsPaid,
		CreatedAt: p.CreatedAt,
		PaidAt:    p.PaidAt,
	}
}

func toUserResponse(u *domain.User, roles []string) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Bio:       u.Bio,
		IsActive:  u.IsActive,
		Roles:     roles,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toRoleResponse(r *domain.Role) dto.RoleResponse {
	return dto.RoleResponse{ID: r.ID, Name: r.Name}
}
