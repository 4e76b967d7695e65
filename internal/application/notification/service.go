package notification

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/notification"
	"helpdesk/internal/domain/shared/events"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/markdown"
)

// Service consumes ticket domain events and records notification
// logs for the affected accounts. Messages are authored as markdown
// and stored sanitized; delivery itself is out of scope here.
type Service struct {
	notificationRepo notification.Repository
	ticketRepo       ticket.Repository
	renderer         markdown.Renderer
	logger           logger.Interface
}

func NewService(
	notificationRepo notification.Repository,
	ticketRepo ticket.Repository,
	renderer markdown.Renderer,
	logger logger.Interface,
) *Service {
	return &Service{
		notificationRepo: notificationRepo,
		ticketRepo:       ticketRepo,
		renderer:         renderer,
		logger:           logger,
	}
}

// Register subscribes the service to every ticket event type it
// reacts to. Call before the dispatcher starts.
func (s *Service) Register(dispatcher *events.ChannelDispatcher) error {
	eventTypes := []string{
		ticket.EventTypeTicketCreated,
		ticket.EventTypeTicketAssigned,
		ticket.EventTypeTicketReassigned,
		ticket.EventTypeStatusChanged,
		ticket.EventTypePriorityChanged,
		ticket.EventTypeTicketEscalated,
	}
	for _, et := range eventTypes {
		if err := dispatcher.Subscribe(et, events.NewHandlerFunc(et, s.Handle)); err != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", et, err)
		}
	}
	return nil
}

// Handle routes a single event. Unknown event types are ignored.
func (s *Service) Handle(event events.DomainEvent) error {
	ctx := context.Background()

	switch e := event.(type) {
	case ticket.TicketCreatedEvent:
		return s.handleCreated(ctx, e)
	case ticket.TicketAssignedEvent:
		return s.handleAssigned(ctx, e)
	case ticket.StatusChangedEvent:
		return s.handleStatusChanged(ctx, e)
	case ticket.PriorityChangedEvent:
		return s.handlePriorityChanged(ctx, e)
	case ticket.TicketEscalatedEvent:
		return s.handleEscalated(ctx, e)
	default:
		s.logger.Debugw("ignoring event", "event_type", event.GetEventType())
		return nil
	}
}

func (s *Service) handleCreated(ctx context.Context, e ticket.TicketCreatedEvent) error {
	if e.AssigneeID == nil {
		return nil
	}

	title := fmt.Sprintf("New ticket %s assigned to you", e.Number)
	body := fmt.Sprintf("Ticket **%s** (*%s* priority) was created and assigned to you:\n\n> %s",
		e.Number, e.Priority, e.Title)

	return s.record(ctx, *e.AssigneeID, &e.CreatorID, e.TicketID,
		notification.TypeTicketCreated, title, body, map[string]any{
			"number":   e.Number,
			"priority": e.Priority,
		})
}

func (s *Service) handleAssigned(ctx context.Context, e ticket.TicketAssignedEvent) error {
	logType := notification.TypeTicketAssigned
	title := fmt.Sprintf("Ticket %s assigned to you", e.Number)
	if e.PrevAssigneeID != nil {
		logType = notification.TypeTicketReassigned
		title = fmt.Sprintf("Ticket %s reassigned to you", e.Number)
	}
	body := fmt.Sprintf("You are now the assignee of ticket **%s**.", e.Number)

	return s.record(ctx, e.AssigneeID, nil, e.TicketID, logType, title, body, map[string]any{
		"number": e.Number,
	})
}

func (s *Service) handleStatusChanged(ctx context.Context, e ticket.StatusChangedEvent) error {
	t, err := s.ticketRepo.GetByID(ctx, e.TicketID)
	if err != nil {
		return fmt.Errorf("failed to load ticket %d: %w", e.TicketID, err)
	}

	title := fmt.Sprintf("Ticket %s status changed", e.Number)
	body := fmt.Sprintf("Ticket **%s** moved from *%s* to *%s*.", e.Number, e.OldStatus, e.NewStatus)
	extra := map[string]any{
		"number":     e.Number,
		"old_status": e.OldStatus,
		"new_status": e.NewStatus,
	}

	return s.recordForWatchers(ctx, t, notification.TypeStatusChanged, title, body, extra)
}

func (s *Service) handlePriorityChanged(ctx context.Context, e ticket.PriorityChangedEvent) error {
	t, err := s.ticketRepo.GetByID(ctx, e.TicketID)
	if err != nil {
		return fmt.Errorf("failed to load ticket %d: %w", e.TicketID, err)
	}

	title := fmt.Sprintf("Ticket %s priority changed", e.Number)
	body := fmt.Sprintf("Ticket **%s** priority changed from *%s* to *%s*.", e.Number, e.OldPriority, e.NewPriority)
	extra := map[string]any{
		"number":       e.Number,
		"old_priority": e.OldPriority,
		"new_priority": e.NewPriority,
	}

	return s.recordForWatchers(ctx, t, notification.TypePriorityChanged, title, body, extra)
}

func (s *Service) handleEscalated(ctx context.Context, e ticket.TicketEscalatedEvent) error {
	t, err := s.ticketRepo.GetByID(ctx, e.TicketID)
	if err != nil {
		return fmt.Errorf("failed to load ticket %d: %w", e.TicketID, err)
	}
	if t.AssigneeID() == nil {
		return nil
	}

	title := fmt.Sprintf("Ticket %s escalated", e.Number)
	body := fmt.Sprintf("Ticket **%s** has been escalated and needs attention.", e.Number)

	return s.record(ctx, *t.AssigneeID(), &e.ActorID, e.TicketID,
		notification.TypeTicketUpdated, title, body, map[string]any{
			"number": e.Number,
		})
}

// recordForWatchers notifies the creator and, when different, the
// assignee of the ticket.
func (s *Service) recordForWatchers(
	ctx context.Context,
	t *ticket.Ticket,
	logType notification.Type,
	title, body string,
	extra map[string]any,
) error {
	recipients := []uint{t.CreatorID()}
	if t.AssigneeID() != nil && *t.AssigneeID() != t.CreatorID() {
		recipients = append(recipients, *t.AssigneeID())
	}

	for _, recipientID := range recipients {
		if err := s.record(ctx, recipientID, nil, t.ID(), logType, title, body, extra); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) record(
	ctx context.Context,
	recipientID uint,
	senderID *uint,
	ticketID uint,
	logType notification.Type,
	title, body string,
	extra map[string]any,
) error {
	message, err := s.renderer.Render(body)
	if err != nil {
		return fmt.Errorf("failed to render notification body: %w", err)
	}

	l, err := notification.NewLog(recipientID, senderID, ticketID, logType, title, message, extra)
	if err != nil {
		return fmt.Errorf("failed to build notification: %w", err)
	}

	if err := s.notificationRepo.Save(ctx, l); err != nil {
		return fmt.Errorf("failed to save notification: %w", err)
	}

	s.logger.Debugw("notification recorded",
		"recipient_id", recipientID,
		"ticket_id", ticketID,
		"type", logType.String(),
	)
	return nil
}
