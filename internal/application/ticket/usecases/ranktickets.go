package usecases

import (
	"context"
	"fmt"
	"time"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/logger"
)

type RankTicketsQuery struct {
	Criteria ticket.Criteria
	// OrderBy names the ordering; unknown names fall back to the
	// importance ordering.
	OrderBy string
	// Now defaults to the wall clock; tests pin it.
	Now time.Time
	// IncludeResolved widens the fetched set to resolved tickets.
	IncludeResolved bool
}

type RankTicketsResult struct {
	Tickets []*ticket.Ticket
	Mode    ticket.OrderingMode
}

// RankTicketsUseCase fetches the candidate set coarsely and runs the
// filter and ranking in memory, keeping the scoring rules in one
// place instead of duplicating them in SQL.
type RankTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewRankTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *RankTicketsUseCase {
	return &RankTicketsUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *RankTicketsUseCase) Execute(ctx context.Context, query RankTicketsQuery) (*RankTicketsResult, error) {
	now := query.Now
	if now.IsZero() {
		now = time.Now()
	}
	mode := ticket.NormalizeOrderingMode(query.OrderBy)

	tickets, err := uc.ticketRepo.List(ctx, query.IncludeResolved)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	ranked := ticket.Rank(tickets, query.Criteria, mode, now)

	uc.logger.Debugw("tickets ranked",
		"fetched", len(tickets), "matched", len(ranked), "mode", string(mode))
	return &RankTicketsResult{Tickets: ranked, Mode: mode}, nil
}
