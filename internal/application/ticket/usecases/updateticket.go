package usecases

import (
	"context"
	"fmt"
	"time"

	"helpdesk/internal/domain/shared/events"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type UpdateTicketCommand struct {
	TicketID         uint
	ActorID          uint
	Title            *string
	Description      *string
	StatusCode       *string
	PriorityCode     *string
	AssigneeID       *uint
	Unassign         bool
	ResponseDeadline *time.Time
	DueDate          *time.Time
	Escalate         *bool
}

type UpdateTicketResult struct {
	Ticket  *ticket.Ticket
	Changes []ticket.Change
}

// UpdateTicketUseCase applies a partial update. The pre-update
// snapshot is captured at read time, both snapshots go through
// DetectChanges, and the resulting change list drives the emitted
// events.
type UpdateTicketUseCase struct {
	ticketRepo   ticket.Repository
	statusRepo   ticket.StatusRepository
	priorityRepo ticket.PriorityRepository
	eventPub     events.EventPublisher
	logger       logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.Repository,
	statusRepo ticket.StatusRepository,
	priorityRepo ticket.PriorityRepository,
	eventPub events.EventPublisher,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo:   ticketRepo,
		statusRepo:   statusRepo,
		priorityRepo: priorityRepo,
		eventPub:     eventPub,
		logger:       logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error) {
	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	if t == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
	}

	before := snapshot(t)

	if cmd.Title != nil {
		if err := t.Retitle(*cmd.Title); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Description != nil {
		t.SetDescription(*cmd.Description)
	}
	if cmd.StatusCode != nil {
		status, err := uc.statusRepo.GetByCode(ctx, *cmd.StatusCode)
		if err != nil {
			return nil, fmt.Errorf("failed to get status: %w", err)
		}
		if status == nil {
			return nil, errors.NewNotFoundError(fmt.Sprintf("ticket status %q not found", *cmd.StatusCode))
		}
		if err := t.ChangeStatus(status); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.PriorityCode != nil {
		priority, err := uc.priorityRepo.GetByCode(ctx, *cmd.PriorityCode)
		if err != nil {
			return nil, fmt.Errorf("failed to get priority: %w", err)
		}
		if priority == nil {
			return nil, errors.NewNotFoundError(fmt.Sprintf("ticket priority %q not found", *cmd.PriorityCode))
		}
		if err := t.ChangePriority(priority); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Unassign {
		t.Unassign()
	} else if cmd.AssigneeID != nil {
		if err := t.Assign(*cmd.AssigneeID); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.ResponseDeadline != nil || cmd.DueDate != nil {
		responseDeadline := t.ResponseDeadline()
		dueDate := t.DueDate()
		if cmd.ResponseDeadline != nil {
			responseDeadline = cmd.ResponseDeadline
		}
		if cmd.DueDate != nil {
			dueDate = cmd.DueDate
		}
		if err := t.SetDeadlines(responseDeadline, dueDate); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Escalate != nil {
		if *cmd.Escalate {
			t.Escalate()
		} else {
			t.Deescalate()
		}
	}

	changes := ticket.DetectChanges(before, t)
	if len(changes) == 0 {
		return &UpdateTicketResult{Ticket: t}, nil
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "error", err, "ticket_id", t.ID())
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}

	uc.publishEvents(before, t, cmd.ActorID, changes)

	uc.logger.Infow("ticket updated", "ticket_id", t.ID(), "changes", len(changes))
	return &UpdateTicketResult{Ticket: t, Changes: changes}, nil
}

func (uc *UpdateTicketUseCase) publishEvents(before, after *ticket.Ticket, actorID uint, changes []ticket.Change) {
	if uc.eventPub == nil {
		return
	}

	evts := []events.DomainEvent{ticket.NewTicketUpdatedEvent(after, actorID, changes)}
	for _, c := range changes {
		switch c.Field {
		case "status":
			evts = append(evts, ticket.NewStatusChangedEvent(after, c.Old, c.New))
		case "priority":
			evts = append(evts, ticket.NewPriorityChangedEvent(after, c.Old, c.New))
		case "assignee":
			if after.AssigneeID() != nil {
				evts = append(evts, ticket.NewTicketAssignedEvent(after, *after.AssigneeID(), before.AssigneeID()))
			}
		case "escalated":
			if after.IsEscalated() {
				evts = append(evts, ticket.NewTicketEscalatedEvent(after, actorID))
			}
		}
	}

	if err := uc.eventPub.PublishAll(evts); err != nil {
		uc.logger.Warnw("failed to publish ticket events", "error", err, "ticket_id", after.ID())
	}
}

// snapshot copies the ticket so mutations on the live aggregate do
// not leak into the change diff.
func snapshot(t *ticket.Ticket) *ticket.Ticket {
	copied, err := ticket.ReconstructTicket(
		t.ID(), t.Number(), t.Title(), t.Description(),
		t.MenuID(), t.Status(), t.Priority(), t.CreatorID(), t.AssigneeID(),
		t.FirstResponseAt(), t.ResponseDeadline(), t.DueDate(), t.ResolvedAt(), t.SLADueDate(),
		t.SLABreached(time.Time{}), t.IsEscalated(),
		t.CreatedAt(), t.UpdatedAt(),
	)
	if err != nil {
		return t
	}
	return copied
}
