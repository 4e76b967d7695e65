package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/menu"
	"helpdesk/internal/domain/shared/events"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc           func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc         func(ctx context.Context, t *ticket.Ticket) error
	GetByIDFunc        func(ctx context.Context, id uint) (*ticket.Ticket, error)
	GetByNumberFunc    func(ctx context.Context, number string) (*ticket.Ticket, error)
	ListFunc           func(ctx context.Context, includeResolved bool) ([]*ticket.Ticket, error)
	ListByAssigneeFunc func(ctx context.Context, assigneeID uint) ([]*ticket.Ticket, error)
	ListByCreatorFunc  func(ctx context.Context, creatorID uint) ([]*ticket.Ticket, error)
	DeleteFunc         func(ctx context.Context, id uint) error
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetByNumber(ctx context.Context, number string) (*ticket.Ticket, error) {
	if m.GetByNumberFunc != nil {
		return m.GetByNumberFunc(ctx, number)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, includeResolved bool) ([]*ticket.Ticket, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, includeResolved)
	}
	return nil, nil
}

func (m *mockTicketRepository) ListByAssignee(ctx context.Context, assigneeID uint) ([]*ticket.Ticket, error) {
	if m.ListByAssigneeFunc != nil {
		return m.ListByAssigneeFunc(ctx, assigneeID)
	}
	return nil, nil
}

func (m *mockTicketRepository) ListByCreator(ctx context.Context, creatorID uint) ([]*ticket.Ticket, error) {
	if m.ListByCreatorFunc != nil {
		return m.ListByCreatorFunc(ctx, creatorID)
	}
	return nil, nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockStatusRepository struct {
	SaveFunc       func(ctx context.Context, s *ticket.Status) error
	UpdateFunc     func(ctx context.Context, s *ticket.Status) error
	GetByIDFunc    func(ctx context.Context, id uint) (*ticket.Status, error)
	GetByCodeFunc  func(ctx context.Context, code string) (*ticket.Status, error)
	GetDefaultFunc func(ctx context.Context) (*ticket.Status, error)
	ListFunc       func(ctx context.Context) ([]*ticket.Status, error)
	DeleteFunc     func(ctx context.Context, id uint) error
}

func (m *mockStatusRepository) Save(ctx context.Context, s *ticket.Status) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, s)
	}
	return nil
}

func (m *mockStatusRepository) Update(ctx context.Context, s *ticket.Status) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, s)
	}
	return nil
}

func (m *mockStatusRepository) GetByID(ctx context.Context, id uint) (*ticket.Status, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockStatusRepository) GetByCode(ctx context.Context, code string) (*ticket.Status, error) {
	if m.GetByCodeFunc != nil {
		return m.GetByCodeFunc(ctx, code)
	}
	return nil, nil
}

func (m *mockStatusRepository) GetDefault(ctx context.Context) (*ticket.Status, error) {
	if m.GetDefaultFunc != nil {
		return m.GetDefaultFunc(ctx)
	}
	return nil, nil
}

func (m *mockStatusRepository) List(ctx context.Context) ([]*ticket.Status, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockStatusRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockPriorityRepository struct {
	SaveFunc       func(ctx context.Context, p *ticket.Priority) error
	UpdateFunc     func(ctx context.Context, p *ticket.Priority) error
	GetByIDFunc    func(ctx context.Context, id uint) (*ticket.Priority, error)
	GetByCodeFunc  func(ctx context.Context, code string) (*ticket.Priority, error)
	GetDefaultFunc func(ctx context.Context) (*ticket.Priority, error)
	ListFunc       func(ctx context.Context) ([]*ticket.Priority, error)
	DeleteFunc     func(ctx context.Context, id uint) error
}

func (m *mockPriorityRepository) Save(ctx context.Context, p *ticket.Priority) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return nil
}

func (m *mockPriorityRepository) Update(ctx context.Context, p *ticket.Priority) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockPriorityRepository) GetByID(ctx context.Context, id uint) (*ticket.Priority, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockPriorityRepository) GetByCode(ctx context.Context, code string) (*ticket.Priority, error) {
	if m.GetByCodeFunc != nil {
		return m.GetByCodeFunc(ctx, code)
	}
	return nil, nil
}

func (m *mockPriorityRepository) GetDefault(ctx context.Context) (*ticket.Priority, error) {
	if m.GetDefaultFunc != nil {
		return m.GetDefaultFunc(ctx)
	}
	return nil, nil
}

func (m *mockPriorityRepository) List(ctx context.Context) ([]*ticket.Priority, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockPriorityRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockMenuRepository struct {
	GetByIDFunc func(ctx context.Context, menuID uint) (*menu.Menu, error)
}

func (m *mockMenuRepository) Save(ctx context.Context, mn *menu.Menu) error   { return nil }
func (m *mockMenuRepository) Update(ctx context.Context, mn *menu.Menu) error { return nil }
func (m *mockMenuRepository) UpdateParent(ctx context.Context, mn *menu.Menu, changed []*menu.Menu) error {
	return nil
}
func (m *mockMenuRepository) Delete(ctx context.Context, menuID uint) error { return nil }

func (m *mockMenuRepository) GetByID(ctx context.Context, menuID uint) (*menu.Menu, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, menuID)
	}
	return nil, nil
}

func (m *mockMenuRepository) GetByPath(ctx context.Context, path string) (*menu.Menu, error) {
	return nil, nil
}

func (m *mockMenuRepository) List(ctx context.Context, onlyVisible bool) ([]*menu.Menu, error) {
	return nil, nil
}

func (m *mockMenuRepository) ListChildren(ctx context.Context, parentID uint) ([]*menu.Menu, error) {
	return nil, nil
}

func (m *mockMenuRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	return false, nil
}

func (m *mockMenuRepository) HasChildren(ctx context.Context, menuID uint) (bool, error) {
	return false, nil
}

func (m *mockMenuRepository) DeleteAll(ctx context.Context) (int64, error) { return 0, nil }

type mockNumberGenerator struct {
	NextFunc func(ctx context.Context, day time.Time) (string, error)
}

func (m *mockNumberGenerator) Next(ctx context.Context, day time.Time) (string, error) {
	if m.NextFunc != nil {
		return m.NextFunc(ctx, day)
	}
	return ticket.FormatNumber(day, 1), nil
}

// capturingPublisher records everything published.
type capturingPublisher struct {
	published []events.DomainEvent
}

func (p *capturingPublisher) Publish(event events.DomainEvent) error {
	p.published = append(p.published, event)
	return nil
}

func (p *capturingPublisher) PublishAll(eventList []events.DomainEvent) error {
	p.published = append(p.published, eventList...)
	return nil
}

func (p *capturingPublisher) eventTypes() []string {
	types := make([]string, len(p.published))
	for i, e := range p.published {
		types[i] = e.GetEventType()
	}
	return types
}

type nopLogger struct{}

func newTestLogger() logger.Interface { return &nopLogger{} }

func (l *nopLogger) Debug(msg string, args ...any)                   {}
func (l *nopLogger) Info(msg string, args ...any)                    {}
func (l *nopLogger) Warn(msg string, args ...any)                    {}
func (l *nopLogger) Error(msg string, args ...any)                   {}
func (l *nopLogger) With(args ...any) logger.Interface               { return l }
func (l *nopLogger) Named(name string) logger.Interface              { return l }
func (l *nopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (l *nopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (l *nopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (l *nopLogger) Errorw(msg string, keysAndValues ...interface{}) {}
