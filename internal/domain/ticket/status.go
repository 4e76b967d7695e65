package ticket

import (
	"fmt"
	"strings"
	"time"
)

// StatusType is the business classification of a status row.
type StatusType string

const (
	StatusTypeOpen       StatusType = "open"
	StatusTypeInProgress StatusType = "in_progress"
	StatusTypePending    StatusType = "pending"
	StatusTypeResolved   StatusType = "resolved"
	StatusTypeClosed     StatusType = "closed"
	StatusTypeCancelled  StatusType = "cancelled"
)

var validStatusTypes = map[StatusType]bool{
	StatusTypeOpen:       true,
	StatusTypeInProgress: true,
	StatusTypePending:    true,
	StatusTypeResolved:   true,
	StatusTypeClosed:     true,
	StatusTypeCancelled:  true,
}

func (st StatusType) String() string {
	return string(st)
}

func (st StatusType) IsValid() bool {
	return validStatusTypes[st]
}

// IsTerminal reports whether tickets in this classification are done.
func (st StatusType) IsTerminal() bool {
	return st == StatusTypeResolved || st == StatusTypeClosed || st == StatusTypeCancelled
}

// Status is a storage-defined ticket status. Lower weight sorts as more
// urgent. At most one status is the default for new tickets.
type Status struct {
	id          uint
	name        string
	code        string
	description string
	statusType  StatusType
	weight      int
	isDefault   bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewStatus(name, code string, statusType StatusType, weight int) (*Status, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("status name is required")
	}
	if len(name) > 50 {
		return nil, fmt.Errorf("status name exceeds maximum length of 50 characters")
	}
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, fmt.Errorf("status code is required")
	}
	if len(code) > 20 {
		return nil, fmt.Errorf("status code exceeds maximum length of 20 characters")
	}
	if !statusType.IsValid() {
		return nil, fmt.Errorf("invalid status type: %s", statusType)
	}

	now := time.Now()
	return &Status{
		name:       name,
		code:       code,
		statusType: statusType,
		weight:     weight,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructStatus(id uint, name, code, description string, statusType StatusType, weight int, isDefault bool, createdAt, updatedAt time.Time) (*Status, error) {
	if id == 0 {
		return nil, fmt.Errorf("status ID cannot be zero")
	}
	if !statusType.IsValid() {
		return nil, fmt.Errorf("invalid status type: %s", statusType)
	}

	return &Status{
		id:          id,
		name:        name,
		code:        code,
		description: description,
		statusType:  statusType,
		weight:      weight,
		isDefault:   isDefault,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (s *Status) ID() uint {
	return s.id
}

func (s *Status) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("status ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("status ID cannot be zero")
	}
	s.id = id
	return nil
}

func (s *Status) Name() string {
	return s.name
}

func (s *Status) Code() string {
	return s.code
}

func (s *Status) Description() string {
	return s.description
}

func (s *Status) Type() StatusType {
	return s.statusType
}

func (s *Status) Weight() int {
	return s.weight
}

func (s *Status) IsDefault() bool {
	return s.isDefault
}

func (s *Status) IsTerminal() bool {
	return s.statusType.IsTerminal()
}

func (s *Status) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Status) UpdatedAt() time.Time {
	return s.updatedAt
}

func (s *Status) SetDescription(description string) {
	s.description = description
	s.updatedAt = time.Now()
}

func (s *Status) SetWeight(weight int) {
	s.weight = weight
	s.updatedAt = time.Now()
}

func (s *Status) markDefault(isDefault bool) {
	s.isDefault = isDefault
	s.updatedAt = time.Now()
}

// MarkDefault flags this status as the default. The repository clears
// the previous default in the same transaction.
func (s *Status) MarkDefault() {
	s.markDefault(true)
}

func (s *Status) UnmarkDefault() {
	s.markDefault(false)
}
