package ticket

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// DefaultPriorityColor is used when a priority is created without an
// explicit display color.
const DefaultPriorityColor = "#28a745"

// Priority is a storage-defined ticket priority. Higher weight means
// more urgent. SLAHours, when set, drives the SLA due date for new
// tickets carrying this priority.
type Priority struct {
	id          uint
	name        string
	code        string
	description string
	weight      int
	color       string
	slaHours    *uint
	isDefault   bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewPriority(name, code string, weight int, color string, slaHours *uint) (*Priority, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("priority name is required")
	}
	if len(name) > 50 {
		return nil, fmt.Errorf("priority name exceeds maximum length of 50 characters")
	}
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, fmt.Errorf("priority code is required")
	}
	if len(code) > 20 {
		return nil, fmt.Errorf("priority code exceeds maximum length of 20 characters")
	}
	if color == "" {
		color = DefaultPriorityColor
	}
	if !hexColorPattern.MatchString(color) {
		return nil, fmt.Errorf("invalid priority color: %s", color)
	}
	if slaHours != nil && *slaHours == 0 {
		return nil, fmt.Errorf("SLA hours must be positive when set")
	}

	now := time.Now()
	return &Priority{
		name:      name,
		code:      code,
		weight:    weight,
		color:     color,
		slaHours:  slaHours,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructPriority(id uint, name, code, description string, weight int, color string, slaHours *uint, isDefault bool, createdAt, updatedAt time.Time) (*Priority, error) {
	if id == 0 {
		return nil, fmt.Errorf("priority ID cannot be zero")
	}

	return &Priority{
		id:          id,
		name:        name,
		code:        code,
		description: description,
		weight:      weight,
		color:       color,
		slaHours:    slaHours,
		isDefault:   isDefault,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (p *Priority) ID() uint {
	return p.id
}

func (p *Priority) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("priority ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("priority ID cannot be zero")
	}
	p.id = id
	return nil
}

func (p *Priority) Name() string {
	return p.name
}

func (p *Priority) Code() string {
	return p.code
}

func (p *Priority) Description() string {
	return p.description
}

func (p *Priority) Weight() int {
	return p.weight
}

func (p *Priority) Color() string {
	return p.color
}

func (p *Priority) SLAHours() *uint {
	return p.slaHours
}

func (p *Priority) IsDefault() bool {
	return p.isDefault
}

func (p *Priority) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Priority) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Priority) SetDescription(description string) {
	p.description = description
	p.updatedAt = time.Now()
}

func (p *Priority) SetWeight(weight int) {
	p.weight = weight
	p.updatedAt = time.Now()
}

func (p *Priority) SetSLAHours(hours *uint) error {
	if hours != nil && *hours == 0 {
		return fmt.Errorf("SLA hours must be positive when set")
	}
	p.slaHours = hours
	p.updatedAt = time.Now()
	return nil
}

func (p *Priority) MarkDefault() {
	p.isDefault = true
	p.updatedAt = time.Now()
}

func (p *Priority) UnmarkDefault() {
	p.isDefault = false
	p.updatedAt = time.Now()
}

// SLADue computes the SLA due date for a ticket created at the given
// time, or nil when this priority carries no SLA.
func (p *Priority) SLADue(createdAt time.Time) *time.Time {
	if p.slaHours == nil {
		return nil
	}
	due := createdAt.Add(time.Duration(*p.slaHours) * time.Hour)
	return &due
}
