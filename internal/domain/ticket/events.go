package ticket

import (
	"fmt"
	"time"

	"helpdesk/internal/domain/shared/events"
)

// Event types
const (
	EventTypeTicketCreated    = "ticket.created"
	EventTypeTicketUpdated    = "ticket.updated"
	EventTypeTicketAssigned   = "ticket.assigned"
	EventTypeTicketReassigned = "ticket.reassigned"
	EventTypeStatusChanged    = "ticket.status.changed"
	EventTypePriorityChanged  = "ticket.priority.changed"
	EventTypeTicketEscalated  = "ticket.escalated"
)

// TicketCreatedEvent is emitted when a new ticket is created
type TicketCreatedEvent struct {
	events.BaseEvent
	TicketID   uint   `json:"ticket_id"`
	Number     string `json:"number"`
	Title      string `json:"title"`
	CreatorID  uint   `json:"creator_id"`
	AssigneeID *uint  `json:"assignee_id,omitempty"`
	Priority   string `json:"priority"`
}

func NewTicketCreatedEvent(t *Ticket) TicketCreatedEvent {
	return TicketCreatedEvent{
		BaseEvent:  baseEvent(t, EventTypeTicketCreated),
		TicketID:   t.ID(),
		Number:     t.Number(),
		Title:      t.Title(),
		CreatorID:  t.CreatorID(),
		AssigneeID: t.AssigneeID(),
		Priority:   t.Priority().Code(),
	}
}

// TicketUpdatedEvent is emitted when a ticket changes, carrying the
// detected field transitions.
type TicketUpdatedEvent struct {
	events.BaseEvent
	TicketID uint     `json:"ticket_id"`
	Number   string   `json:"number"`
	ActorID  uint     `json:"actor_id"`
	Changes  []Change `json:"changes"`
}

func NewTicketUpdatedEvent(t *Ticket, actorID uint, changes []Change) TicketUpdatedEvent {
	return TicketUpdatedEvent{
		BaseEvent: baseEvent(t, EventTypeTicketUpdated),
		TicketID:  t.ID(),
		Number:    t.Number(),
		ActorID:   actorID,
		Changes:   changes,
	}
}

// TicketAssignedEvent is emitted on first assignment; reassignment
// uses EventTypeTicketReassigned and carries the previous assignee.
type TicketAssignedEvent struct {
	events.BaseEvent
	TicketID       uint   `json:"ticket_id"`
	Number         string `json:"number"`
	AssigneeID     uint   `json:"assignee_id"`
	PrevAssigneeID *uint  `json:"prev_assignee_id,omitempty"`
}

func NewTicketAssignedEvent(t *Ticket, assigneeID uint, prevAssigneeID *uint) TicketAssignedEvent {
	eventType := EventTypeTicketAssigned
	if prevAssigneeID != nil {
		eventType = EventTypeTicketReassigned
	}
	return TicketAssignedEvent{
		BaseEvent:      baseEvent(t, eventType),
		TicketID:       t.ID(),
		Number:         t.Number(),
		AssigneeID:     assigneeID,
		PrevAssigneeID: prevAssigneeID,
	}
}

// StatusChangedEvent is emitted when a ticket transitions status
type StatusChangedEvent struct {
	events.BaseEvent
	TicketID  uint   `json:"ticket_id"`
	Number    string `json:"number"`
	OldStatus string `json:"old_status"`
	NewStatus string `json:"new_status"`
}

func NewStatusChangedEvent(t *Ticket, oldStatus, newStatus string) StatusChangedEvent {
	return StatusChangedEvent{
		BaseEvent: baseEvent(t, EventTypeStatusChanged),
		TicketID:  t.ID(),
		Number:    t.Number(),
		OldStatus: oldStatus,
		NewStatus: newStatus,
	}
}

// PriorityChangedEvent is emitted when a ticket changes priority
type PriorityChangedEvent struct {
	events.BaseEvent
	TicketID    uint   `json:"ticket_id"`
	Number      string `json:"number"`
	OldPriority string `json:"old_priority"`
	NewPriority string `json:"new_priority"`
}

func NewPriorityChangedEvent(t *Ticket, oldPriority, newPriority string) PriorityChangedEvent {
	return PriorityChangedEvent{
		BaseEvent:   baseEvent(t, EventTypePriorityChanged),
		TicketID:    t.ID(),
		Number:      t.Number(),
		OldPriority: oldPriority,
		NewPriority: newPriority,
	}
}

// TicketEscalatedEvent is emitted when a ticket is escalated
type TicketEscalatedEvent struct {
	events.BaseEvent
	TicketID uint   `json:"ticket_id"`
	Number   string `json:"number"`
	ActorID  uint   `json:"actor_id"`
}

func NewTicketEscalatedEvent(t *Ticket, actorID uint) TicketEscalatedEvent {
	return TicketEscalatedEvent{
		BaseEvent: baseEvent(t, EventTypeTicketEscalated),
		TicketID:  t.ID(),
		Number:    t.Number(),
		ActorID:   actorID,
	}
}

func baseEvent(t *Ticket, eventType string) events.BaseEvent {
	return events.BaseEvent{
		AggregateID: fmt.Sprintf("ticket:%d", t.ID()),
		EventType:   eventType,
		OccurredAt:  time.Now(),
	}
}
