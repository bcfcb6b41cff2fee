package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"course-marketplace-api/internal/domain"
	"course-marketplace-api/internal/dto"
	"course-marketplace-api/internal/repository"
	"course-marketplace-api/internal/response"
	"course-marketplace-api/internal/slug"
)

// SkillService defines the interface for skill business logic
type SkillService interface {
	GetSkillWithCourses(ctx context.Context, id uuid.UUID) response.Result[*dto.SkillResponse]
	ListSkills(ctx context.Context, q dto.PageQuery) response.Result[*dto.PagedResponse[dto.SkillResponse]]
	ListSkillsWithCourses(ctx context.Context) response.Result[[]dto.SkillResponse]
	CreateSkill(ctx context.Context, req *dto.SkillRequest) response.Result[*dto.SkillResponse]
	UpdateSkill(ctx context.Context, id uuid.UUID, req *dto.SkillRequest) response.Result[response.Empty]
	SoftDeleteSkill(ctx context.Context, id uuid.UUID) response.Result[response.Empty]
	AddCreatorToSkills(ctx context.Context, creatorID uuid.UUID, skillIDs []uuid.UUID) response.Result[response.Empty]
	GetCreatorSkills(ctx context.Context, creatorID uuid.UUID) response.Result[[]dto.SkillResponse]
}

type skillServiceImpl struct {
	repos  repository.Repositories
	uow    repository.UnitOfWork
	logger *zap.Logger
}

// NewSkillService creates a new instance of SkillService
func NewSkillService(repos repository.Repositories, uow repository.UnitOfWork, logger *zap.Logger) SkillService {
	return &skillServiceImpl{repos: repos, uow: uow, logger: logger}
}

func (s *skillServiceImpl) GetSkillWithCourses(ctx context.Context, id uuid.UUID) response.Result[*dto.SkillResponse] {
	skill, err := s.repos.Skills.FindWithCourses(ctx, id)
	if err != nil {
		return response.Fail[*dto.SkillResponse](lookupFailure(s.logger, "Skill", id, err))
	}
	if skill.IsSoftDeleted {
		return response.Fail[*dto.SkillResponse](response.NewNotFoundError("Skill", id))
	}
	resp := toSkillResponse(skill)
	return response.Ok(&resp)
}

func (s *skillServiceImpl) ListSkills(ctx context.Context, q dto.PageQuery) response.Result[*dto.PagedResponse[dto.SkillResponse]] {
	skills, total, err := s.repos.Skills.FindPage(ctx, toPage(q))
	if err != nil {
		return response.Fail[*dto.PagedResponse[dto.SkillResponse]](internalFailure(s.logger, "Failed to list skills", err))
	}
	return response.Ok(newPagedResponse(toSkillResponses(skills), q, total))
}

func (s *skillServiceImpl) ListSkillsWithCourses(ctx context.Context) response.Result[[]dto.SkillResponse] {
	skills, err := s.repos.Skills.FindAllWithCourses(ctx)
	if err != nil {
		return response.Fail[[]dto.SkillResponse](internalFailure(s.logger, "Failed to list skills", err))
	}
	return response.Ok(toSkillResponses(skills))
}

func (s *skillServiceImpl) CreateSkill(ctx context.Context, req *dto.SkillRequest) response.Result[*dto.SkillResponse] {
	if req == nil {
		return response.Fail[*dto.SkillResponse](response.NewArgumentNullError("Skill"))
	}

	skill := &domain.Skill{
		BaseModel:   domain.BaseModel{ID: uuid.New()},
		Status:      domain.NewStatus(),
		Name:        req.Name,
		Slug:        slug.Make(req.Name),
		Description: req.Description,
	}
	if err := s.repos.Skills.Create(ctx, skill); err != nil {
		return response.Fail[*dto.SkillResponse](writeFailure(s.logger, "Skill", err))
	}

	resp := toSkillResponse(skill)
	return response.Created(&resp)
}

func (s *skillServiceImpl) UpdateSkill(ctx context.Context, id uuid.UUID, req *dto.SkillRequest) response.Result[response.Empty] {
	if req == nil {
		return response.Fail[response.Empty](response.NewArgumentNullError("Skill"))
	}

	skill, err := s.repos.Skills.FindByID(ctx, id)
	if err != nil {
		return response.Fail[response.Empty](lookupFailure(s.logger, "Skill", id, err))
	}
	if skill.IsSoftDeleted {
		return response.Fail[response.Empty](response.NewNotFoundError("Skill", id))
	}

	if skill.Name != req.Name {
		skill.Name = req.Name
		skill.Slug = slug.Make(req.Name)
	}
	skill.Description = req.Description
	skill.Touch()

	if err := s.repos.Skills.Update(ctx, skill); err != nil {
		return response.Fail[response.Empty](writeFailure(s.logger, "Skill", err))
	}
	return response.Updated()
}

func (s *skillServiceImpl) SoftDeleteSkill(ctx context.Context, id uuid.UUID) response.Result[response.Empty] {
	skill, err := s.repos.Skills.FindByID(ctx, id)
	if err != nil {
		return response.Fail[response.Empty](lookupFailure(s.logger, "Skill", id, err))
	}
	if !skill.SoftDelete() {
		return response.NotModified()
	}
	if err := s.repos.Skills.Update(ctx, skill); err != nil {
		return response.Fail[response.Empty](writeFailure(s.logger, "Skill", err))
	}
	return response.Deleted()
}

// AddCreatorToSkills tags the creator with every listed skill. Existing tags are kept once.
func (s *skillServiceImpl) AddCreatorToSkills(ctx context.Context, creatorID uuid.UUID, skillIDs []uuid.UUID) response.Result[response.Empty] {
	if len(skillIDs) == 0 {
		return response.Fail[response.Empty](fieldError("skillIds", "At least one skill is required."))
	}
	if _, err := s.repos.Users.FindByID(ctx, creatorID); err != nil {
		return response.Fail[response.Empty](lookupFailure(s.logger, "User", creatorID, err))
	}

	skills, err := s.repos.Skills.FindByIDs(ctx, skillIDs)
	if err != nil {
		return response.Fail[response.Empty](internalFailure(s.logger, "Failed to load skills", err))
	}
	found := make(map[uuid.UUID]bool, len(skills))
	for _, skill := range skills {
		if !skill.IsSoftDeleted {
			found[skill.ID] = true
		}
	}
	var missing []string
	for _, id := range skillIDs {
		if !found[id] {
			missing = append(missing, id.String())
		}
	}
	if len(missing) > 0 {
		return response.Fail[response.Empty](response.NewNotFoundError("Skill", strings.Join(missing, ", ")))
	}

	err = s.uow.Do(ctx, func(tx repository.Repositories) error {
		for _, skill := range skills {
			skill.AddCreator(creatorID)
			if err := tx.Skills.AddCreators(ctx, skill); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return response.Fail[response.Empty](internalFailure(s.logger, "Failed to tag creator with skills", err,
			zap.String("creator_id", creatorID.String()),
		))
	}
	return response.Updated()
}

func (s *skillServiceImpl) GetCreatorSkills(ctx context.Context, creatorID uuid.UUID) response.Result[[]dto.SkillResponse] {
	if _, err := s.repos.Users.FindByID(ctx, creatorID); err != nil {
		return response.Fail[[]dto.SkillResponse](lookupFailure(s.logger, "User", creatorID, err))
	}
	skills, err := s.repos.Skills.FindByCreatorID(ctx, creatorID)
	if err != nil {
		return response.Fail[[]dto.SkillResponse](internalFailure(s.logger, "Failed to list creator skills", err))
	}
	return response.Ok(toSkillResponses(skills))
}
