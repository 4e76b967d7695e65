package permission

import (
	"fmt"
	"strings"
	"time"
)

type Role struct {
	id           uint
	name         string
	isPredefined bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewRole(name string) (*Role, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("role name is required")
	}
	if len(name) > 150 {
		return nil, fmt.Errorf("role name too long (max 150 characters)")
	}

	now := time.Now()
	return &Role{
		name:      strings.ToLower(name),
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructRole(id uint, name string, isPredefined bool, createdAt, updatedAt time.Time) (*Role, error) {
	if id == 0 {
		return nil, fmt.Errorf("role ID cannot be zero")
	}
	if name == "" {
		return nil, fmt.Errorf("role name is required")
	}

	return &Role{
		id:           id,
		name:         name,
		isPredefined: isPredefined,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (r *Role) ID() uint {
	return r.id
}

func (r *Role) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("role ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("role ID cannot be zero")
	}
	r.id = id
	return nil
}

func (r *Role) Name() string {
	return r.name
}

func (r *Role) IsPredefined() bool {
	return r.isPredefined
}

func (r *Role) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Role) UpdatedAt() time.Time {
	return r.updatedAt
}

// MarkPredefined locks the role against rename and delete. Applied by
// the seeder; there is no way back.
func (r *Role) MarkPredefined() {
	r.isPredefined = true
	r.updatedAt = time.Now()
}

// EnsureMutable guards every rename or delete of the role.
func (r *Role) EnsureMutable() error {
	if r.isPredefined {
		return fmt.Errorf("predefined role %q cannot be modified or deleted", r.name)
	}
	return nil
}

func (r *Role) Rename(name string) error {
	if err := r.EnsureMutable(); err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("role name cannot be empty")
	}
	if len(name) > 150 {
		return fmt.Errorf("role name too long (max 150 characters)")
	}
	r.name = strings.ToLower(name)
	r.updatedAt = time.Now()
	return nil
}
