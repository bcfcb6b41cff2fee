package domain

import "time"

// Status is the lifecycle bookkeeping embedded in every entity that supports soft deletion.
// DeletedAt is reserved for hard-delete bookkeeping and is never written by SoftDelete.
type Status struct {
	CreatedAt     time.Time  `gorm:"<-:create;not null" json:"createdAt"`
	UpdatedAt     *time.Time `gorm:"autoUpdateTime:false" json:"updatedAt,omitempty"`
	DeletedAt     *time.Time `json:"deletedAt,omitempty"`
	IsSoftDeleted bool       `gorm:"not null;default:false;index" json:"isSoftDeleted"`
}

// NewStatus returns a status stamped with the current time
func NewStatus() Status {
	return Status{CreatedAt: nowFunc()}
}

// SoftDelete moves the entity to the soft-deleted state.
// It returns false when the entity was already soft-deleted.
func (s *Status) SoftDelete() bool {
	if s.IsSoftDeleted {
		return false
	}
	s.IsSoftDeleted = true
	s.Touch()
	return true
}

// Touch records a mutation
func (s *Status) Touch() {
	now := nowFunc()
	s.UpdatedAt = &now
}

func (s *Status) touchIf(changed bool) bool {
	if changed {
		s.Touch()
	}
	return changed
}

// Availability holds the pricing and visibility axes shared by courses and videos.
// Both axes are freely reversible; every transition reports whether it changed anything.
type Availability struct {
	IsPaid    bool `gorm:"not null;default:false" json:"isPaid"`
	IsPrivate bool `gorm:"not null;default:false" json:"isPrivate"`
}

func (a *Availability) makePaid() bool {
	if a.IsPaid {
		return false
	}
	a.IsPaid = true
	return true
}

func (a *Availability) makeFree() bool {
	if !a.IsPaid {
		return false
	}
	a.IsPaid = false
	return true
}

func (a *Availability) makePrivate() bool {
	if a.IsPrivate {
		return false
	}
	a.IsPrivate = true
	return true
}

func (a *Availability) makePublic() bool {
	if !a.IsPrivate {
		return false
	}
	a.IsPrivate = false
	return true
}
