package ticket

import (
	"fmt"
	"strings"
	"time"
)

// Ticket is the helpdesk ticket aggregate. Status and priority are
// loaded references so ranking can read their weights without extra
// lookups.
type Ticket struct {
	id               uint
	number           string
	title            string
	description      string
	menuID           *uint
	status           *Status
	priority         *Priority
	creatorID        uint
	assigneeID       *uint
	firstResponseAt  *time.Time
	responseDeadline *time.Time
	dueDate          *time.Time
	resolvedAt       *time.Time
	slaDueDate       *time.Time
	slaBreached      bool
	isEscalated      bool
	createdAt        time.Time
	updatedAt        time.Time
}

func NewTicket(number, title, description string, status *Status, priority *Priority, creatorID uint) (*Ticket, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, fmt.Errorf("ticket number is required")
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("ticket title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("ticket title exceeds maximum length of 200 characters")
	}
	if status == nil {
		return nil, fmt.Errorf("ticket status is required")
	}
	if priority == nil {
		return nil, fmt.Errorf("ticket priority is required")
	}
	if creatorID == 0 {
		return nil, fmt.Errorf("ticket creator is required")
	}

	now := time.Now()
	return &Ticket{
		number:      number,
		title:       title,
		description: description,
		status:      status,
		priority:    priority,
		creatorID:   creatorID,
		slaDueDate:  priority.SLADue(now),
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructTicket(
	id uint,
	number, title, description string,
	menuID *uint,
	status *Status,
	priority *Priority,
	creatorID uint,
	assigneeID *uint,
	firstResponseAt, responseDeadline, dueDate, resolvedAt, slaDueDate *time.Time,
	slaBreached, isEscalated bool,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if status == nil {
		return nil, fmt.Errorf("ticket status is required")
	}
	if priority == nil {
		return nil, fmt.Errorf("ticket priority is required")
	}

	return &Ticket{
		id:               id,
		number:           number,
		title:            title,
		description:      description,
		menuID:           menuID,
		status:           status,
		priority:         priority,
		creatorID:        creatorID,
		assigneeID:       assigneeID,
		firstResponseAt:  firstResponseAt,
		responseDeadline: responseDeadline,
		dueDate:          dueDate,
		resolvedAt:       resolvedAt,
		slaDueDate:       slaDueDate,
		slaBreached:      slaBreached,
		isEscalated:      isEscalated,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Ticket) Number() string {
	return t.number
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) MenuID() *uint {
	return t.menuID
}

func (t *Ticket) Status() *Status {
	return t.status
}

func (t *Ticket) Priority() *Priority {
	return t.priority
}

func (t *Ticket) CreatorID() uint {
	return t.creatorID
}

func (t *Ticket) AssigneeID() *uint {
	return t.assigneeID
}

func (t *Ticket) FirstResponseAt() *time.Time {
	return t.firstResponseAt
}

func (t *Ticket) ResponseDeadline() *time.Time {
	return t.responseDeadline
}

func (t *Ticket) DueDate() *time.Time {
	return t.dueDate
}

func (t *Ticket) ResolvedAt() *time.Time {
	return t.resolvedAt
}

func (t *Ticket) SLADueDate() *time.Time {
	return t.slaDueDate
}

func (t *Ticket) IsEscalated() bool {
	return t.isEscalated
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) Retitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Errorf("ticket title is required")
	}
	if len(title) > 200 {
		return fmt.Errorf("ticket title exceeds maximum length of 200 characters")
	}
	t.title = title
	t.updatedAt = time.Now()
	return nil
}

func (t *Ticket) SetDescription(description string) {
	t.description = description
	t.updatedAt = time.Now()
}

func (t *Ticket) AttachMenu(menuID *uint) {
	t.menuID = menuID
	t.updatedAt = time.Now()
}

func (t *Ticket) ChangeStatus(status *Status) error {
	if status == nil {
		return fmt.Errorf("ticket status is required")
	}
	t.status = status
	if status.IsTerminal() && t.resolvedAt == nil {
		now := time.Now()
		t.resolvedAt = &now
	}
	t.updatedAt = time.Now()
	return nil
}

func (t *Ticket) ChangePriority(priority *Priority) error {
	if priority == nil {
		return fmt.Errorf("ticket priority is required")
	}
	t.priority = priority
	t.updatedAt = time.Now()
	return nil
}

func (t *Ticket) Assign(assigneeID uint) error {
	if assigneeID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}
	t.assigneeID = &assigneeID
	t.updatedAt = time.Now()
	return nil
}

func (t *Ticket) Unassign() {
	t.assigneeID = nil
	t.updatedAt = time.Now()
}

// SetDeadlines validates that the due date falls strictly after the
// response deadline when both are set.
func (t *Ticket) SetDeadlines(responseDeadline, dueDate *time.Time) error {
	if responseDeadline != nil && dueDate != nil && !dueDate.After(*responseDeadline) {
		return fmt.Errorf("due date must be after response deadline")
	}
	t.responseDeadline = responseDeadline
	t.dueDate = dueDate
	t.updatedAt = time.Now()
	return nil
}

// RecordFirstResponse stamps the first response time once and freezes
// the SLA breach flag against the SLA due date.
func (t *Ticket) RecordFirstResponse(at time.Time) {
	if t.firstResponseAt != nil {
		return
	}
	t.firstResponseAt = &at
	if t.slaDueDate != nil && at.After(*t.slaDueDate) {
		t.slaBreached = true
	}
	t.updatedAt = time.Now()
}

func (t *Ticket) Escalate() {
	t.isEscalated = true
	t.updatedAt = time.Now()
}

func (t *Ticket) Deescalate() {
	t.isEscalated = false
	t.updatedAt = time.Now()
}

// SLABreached reports breach, computed live against now while the
// ticket has no recorded first response.
func (t *Ticket) SLABreached(now time.Time) bool {
	if t.slaBreached {
		return true
	}
	if t.firstResponseAt == nil && t.slaDueDate != nil && now.After(*t.slaDueDate) {
		return true
	}
	return false
}

// ResponseOverdue reports that the response deadline has passed with
// no first response recorded.
func (t *Ticket) ResponseOverdue(now time.Time) bool {
	return t.responseDeadline != nil && t.firstResponseAt == nil && t.responseDeadline.Before(now)
}

func (t *Ticket) IsResolved() bool {
	return t.resolvedAt != nil
}

func (t *Ticket) AgeDays(now time.Time) int {
	return int(now.Sub(t.createdAt).Hours() / 24)
}
