package domain

import "github.com/google/uuid"

// Skill groups courses by topic and tags creators who teach it
type Skill struct {
	BaseModel
	Status
	Name        string `gorm:"type:varchar(100);not null;uniqueIndex:uq_skills_name" json:"name"`
	Slug        string `gorm:"type:varchar(150);not null;index:idx_skills_slug" json:"slug"`
	Description string `gorm:"type:varchar(500)" json:"description"`

	courses  []*Course   `gorm:"-"`
	creators []uuid.UUID `gorm:"-"`
}

// TableName specifies the table name for Skill
func (Skill) TableName() string {
	return "skills"
}

// AddCourse associates a course with the skill, moving the course's skill reference here
func (s *Skill) AddCourse(c *Course) bool {
	if c == nil {
		return false
	}
	for _, existing := range s.courses {
		if existing.ID == c.ID {
			return false
		}
	}
	id := s.ID
	c.SkillID = &id
	s.courses = append(s.courses, c)
	return true
}

// RemoveCourse drops the course association
func (s *Skill) RemoveCourse(id uuid.UUID) bool {
	for i, existing := range s.courses {
		if existing.ID == id {
			existing.SkillID = nil
			s.courses = append(s.courses[:i], s.courses[i+1:]...)
			return true
		}
	}
	return false
}

// Courses returns a copy of the associated courses
func (s *Skill) Courses() []*Course {
	out := make([]*Course, len(s.courses))
	copy(out, s.courses)
	return out
}

// AddCreator tags a creator with the skill
func (s *Skill) AddCreator(userID uuid.UUID) bool {
	for _, existing := range s.creators {
		if existing == userID {
			return false
		}
	}
	s.creators = append(s.creators, userID)
	return true
}

// RemoveCreator removes a creator tag
func (s *Skill) RemoveCreator(userID uuid.UUID) bool {
	for i, existing := range s.creators {
		if existing == userID {
			s.creators = append(s.creators[:i], s.creators[i+1:]...)
			return true
		}
	}
	return false
}

// Creators returns a copy of the tagged creator ids
func (s *Skill) Creators() []uuid.UUID {
	out := make([]uuid.UUID, len(s.creators))
	copy(out, s.creators)
	return out
}

// SkillCreator is the join row between skills and the creators tagged with them
type SkillCreator struct {
	SkillID uuid.UUID `gorm:"type:char(36);primaryKey" json:"skillId"`
	UserID  uuid.UUID `gorm:"type:char(36);primaryKey;index:idx_skill_creators_user_id" json:"userId"`
}

// TableName specifies the table name for SkillCreator
func (SkillCreator) TableName() string {
	return "skill_creators"
}
