package ticket

import "context"

// Repository defines persistence for tickets. Reads return tickets
// with their status and priority references loaded.
type Repository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	GetByID(ctx context.Context, id uint) (*Ticket, error)
	GetByNumber(ctx context.Context, number string) (*Ticket, error)
	// List returns all unresolved tickets when includeResolved is
	// false; filtering beyond that happens in memory.
	List(ctx context.Context, includeResolved bool) ([]*Ticket, error)
	ListByAssignee(ctx context.Context, assigneeID uint) ([]*Ticket, error)
	ListByCreator(ctx context.Context, creatorID uint) ([]*Ticket, error)
	Delete(ctx context.Context, id uint) error
}

// StatusRepository defines persistence for ticket statuses.
type StatusRepository interface {
	Save(ctx context.Context, s *Status) error
	Update(ctx context.Context, s *Status) error
	GetByID(ctx context.Context, id uint) (*Status, error)
	GetByCode(ctx context.Context, code string) (*Status, error)
	// GetDefault returns the single default status, or nil when none
	// is configured.
	GetDefault(ctx context.Context) (*Status, error)
	List(ctx context.Context) ([]*Status, error)
	Delete(ctx context.Context, id uint) error
}

// PriorityRepository defines persistence for ticket priorities.
type PriorityRepository interface {
	Save(ctx context.Context, p *Priority) error
	Update(ctx context.Context, p *Priority) error
	GetByID(ctx context.Context, id uint) (*Priority, error)
	GetByCode(ctx context.Context, code string) (*Priority, error)
	GetDefault(ctx context.Context) (*Priority, error)
	List(ctx context.Context) ([]*Priority, error)
	Delete(ctx context.Context, id uint) error
}
