package usecases

import (
	"context"
	"fmt"
	"time"

	"helpdesk/internal/domain/menu"
	"helpdesk/internal/domain/shared/events"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/biztime"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type CreateTicketCommand struct {
	Title            string
	Description      string
	StatusCode       string
	PriorityCode     string
	MenuID           *uint
	CreatorID        uint
	AssigneeID       *uint
	ResponseDeadline *time.Time
	DueDate          *time.Time
}

type CreateTicketResult struct {
	Ticket *ticket.Ticket
}

type CreateTicketUseCase struct {
	ticketRepo   ticket.Repository
	statusRepo   ticket.StatusRepository
	priorityRepo ticket.PriorityRepository
	menuRepo     menu.Repository
	numberGen    ticket.NumberGenerator
	eventPub     events.EventPublisher
	logger       logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	statusRepo ticket.StatusRepository,
	priorityRepo ticket.PriorityRepository,
	menuRepo menu.Repository,
	numberGen ticket.NumberGenerator,
	eventPub events.EventPublisher,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:   ticketRepo,
		statusRepo:   statusRepo,
		priorityRepo: priorityRepo,
		menuRepo:     menuRepo,
		numberGen:    numberGen,
		eventPub:     eventPub,
		logger:       logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	status, err := uc.resolveStatus(ctx, cmd.StatusCode)
	if err != nil {
		return nil, err
	}
	priority, err := uc.resolvePriority(ctx, cmd.PriorityCode)
	if err != nil {
		return nil, err
	}

	if cmd.MenuID != nil {
		target, err := uc.menuRepo.GetByID(ctx, *cmd.MenuID)
		if err != nil {
			return nil, fmt.Errorf("failed to get menu: %w", err)
		}
		if target == nil {
			return nil, errors.NewNotFoundError(fmt.Sprintf("menu %d not found", *cmd.MenuID))
		}
	}

	// The embedded date follows the business day, not the server's
	// local day.
	number, err := uc.numberGen.Next(ctx, biztime.ToBizTimezone(time.Now()))
	if err != nil {
		return nil, fmt.Errorf("failed to generate ticket number: %w", err)
	}

	t, err := ticket.NewTicket(number, cmd.Title, cmd.Description, status, priority, cmd.CreatorID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	t.AttachMenu(cmd.MenuID)
	if err := t.SetDeadlines(cmd.ResponseDeadline, cmd.DueDate); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.AssigneeID != nil {
		if err := t.Assign(*cmd.AssigneeID); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.ticketRepo.Save(ctx, t); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err, "number", number)
		return nil, fmt.Errorf("failed to save ticket: %w", err)
	}

	if uc.eventPub != nil {
		if err := uc.eventPub.Publish(ticket.NewTicketCreatedEvent(t)); err != nil {
			uc.logger.Warnw("failed to publish ticket created event", "error", err, "ticket_id", t.ID())
		}
	}

	uc.logger.Infow("ticket created", "ticket_id", t.ID(), "number", t.Number(), "creator_id", cmd.CreatorID)
	return &CreateTicketResult{Ticket: t}, nil
}

func (uc *CreateTicketUseCase) resolveStatus(ctx context.Context, code string) (*ticket.Status, error) {
	if code == "" {
		status, err := uc.statusRepo.GetDefault(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get default status: %w", err)
		}
		if status == nil {
			return nil, errors.NewValidationError("no default ticket status configured")
		}
		return status, nil
	}

	status, err := uc.statusRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get status: %w", err)
	}
	if status == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket status %q not found", code))
	}
	return status, nil
}

func (uc *CreateTicketUseCase) resolvePriority(ctx context.Context, code string) (*ticket.Priority, error) {
	if code == "" {
		priority, err := uc.priorityRepo.GetDefault(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get default priority: %w", err)
		}
		if priority == nil {
			return nil, errors.NewValidationError("no default ticket priority configured")
		}
		return priority, nil
	}

	priority, err := uc.priorityRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get priority: %w", err)
	}
	if priority == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket priority %q not found", code))
	}
	return priority, nil
}
