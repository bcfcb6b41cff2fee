package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"course-marketplace-api/internal/domain"
)

// SkillRepository defines the interface for skill data access
type SkillRepository interface {
	Create(ctx context.Context, skill *domain.Skill) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Skill, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Skill, error)
	FindWithCourses(ctx context.Context, id uuid.UUID) (*domain.Skill, error)
	FindPage(ctx context.Context, page Page) ([]*domain.Skill, int64, error)
	FindAllWithCourses(ctx context.Context) ([]*domain.Skill, error)
	FindByCreatorID(ctx context.Context, userID uuid.UUID) ([]*domain.Skill, error)
	Update(ctx context.Context, skill *domain.Skill) error
	AddCreators(ctx context.Context, skill *domain.Skill) error
}

// skillRepositoryImpl is the GORM implementation of SkillRepository
type skillRepositoryImpl struct {
	db *gorm.DB
}

// NewSkillRepository creates a new instance of SkillRepository
func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &skillRepositoryImpl{db: db}
}

func (r *skillRepositoryImpl) Create(ctx context.Context, skill *domain.Skill) error {
	return r.db.WithContext(ctx).Create(skill).Error
}

func (r *skillRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Skill, error) {
	var skill domain.Skill
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&skill).Error; err != nil {
		return nil, err
	}
	return &skill, nil
}

func (r *skillRepositoryImpl) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Skill, error) {
	var skills []*domain.Skill
	if len(ids) == 0 {
		return skills, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&skills).Error
	return skills, err
}

func (r *skillRepositoryImpl) FindWithCourses(ctx context.Context, id uuid.UUID) (*domain.Skill, error) {
	skill, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.attachCourses(ctx, []*domain.Skill{skill}); err != nil {
		return nil, err
	}
	return skill, nil
}

func (r *skillRepositoryImpl) FindPage(ctx context.Context, page Page) ([]*domain.Skill, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.Skill{}).Scopes(notDeleted).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var skills []*domain.Skill
	err := r.db.WithContext(ctx).
		Scopes(notDeleted, paginate(page)).
		Order("name ASC").
		Find(&skills).Error
	if err != nil {
		return nil, 0, err
	}
	return skills, total, nil
}

func (r *skillRepositoryImpl) FindAllWithCourses(ctx context.Context) ([]*domain.Skill, error) {
	var skills []*domain.Skill
	if err := r.db.WithContext(ctx).Scopes(notDeleted).Order("name ASC").Find(&skills).Error; err != nil {
		return nil, err
	}
	if err := r.attachCourses(ctx, skills); err != nil {
		return nil, err
	}
	return skills, nil
}

// attachCourses loads the public, non-deleted courses of every skill in one query
func (r *skillRepositoryImpl) attachCourses(ctx context.Context, skills []*domain.Skill) error {
	if len(skills) == 0 {
		return nil
	}
	byID := make(map[uuid.UUID]*domain.Skill, len(skills))
	ids := make([]uuid.UUID, 0, len(skills))
	for _, s := range skills {
		byID[s.ID] = s
		ids = append(ids, s.ID)
	}

	var courses []*domain.Course
	err := r.db.WithContext(ctx).
		Scopes(notDeleted).
		Where("skill_id IN ? AND is_private = ?", ids, false).
		Order("created_at DESC").
		Find(&courses).Error
	if err != nil {
		return err
	}
	for _, c := range courses {
		if c.SkillID == nil {
			continue
		}
		if s, ok := byID[*c.SkillID]; ok {
			s.AddCourse(c)
		}
	}
	return nil
}

func (r *skillRepositoryImpl) FindByCreatorID(ctx context.Context, userID uuid.UUID) ([]*domain.Skill, error) {
	var skills []*domain.Skill
	err := r.db.WithContext(ctx).
		Scopes(notDeleted).
		Joins("JOIN skill_creators ON skill_creators.skill_id = skills.id").
		Where("skill_creators.user_id = ?", userID).
		Order("skills.name ASC").
		Find(&skills).Error
	return skills, err
}

func (r *skillRepositoryImpl) Update(ctx context.Context, skill *domain.Skill) error {
	return r.db.WithContext(ctx).Save(skill).Error
}

// AddCreators persists the skill's creator tags, ignoring rows that already exist
func (r *skillRepositoryImpl) AddCreators(ctx context.Context, skill *domain.Skill) error {
	creators := skill.Creators()
	if len(creators) == 0 {
		return nil
	}
	rows := make([]domain.SkillCreator, 0, len(creators))
	for _, userID := range creators {
		rows = append(rows, domain.SkillCreator{SkillID: skill.ID, UserID: userID})
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
}
