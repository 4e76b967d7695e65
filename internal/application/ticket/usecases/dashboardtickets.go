package usecases

import (
	"context"
	"fmt"
	"time"

	"helpdesk/internal/domain/account"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type DashboardTicketsQuery struct {
	Principal account.Principal
	Now       time.Time
}

type DashboardTicketsResult struct {
	Dashboard ticket.Dashboard
}

// DashboardTicketsUseCase builds the role-sensitive overview: agents
// see their assigned queue, supervisors and superusers additionally
// see the escalated and SLA-breached buckets.
type DashboardTicketsUseCase struct {
	ticketRepo ticket.Repository
	roleNamer  RoleNamer
	logger     logger.Interface
}

// RoleNamer resolves a role ID to its name for dashboard shaping.
type RoleNamer interface {
	RoleName(ctx context.Context, roleID uint) (string, error)
}

func NewDashboardTicketsUseCase(ticketRepo ticket.Repository, roleNamer RoleNamer, logger logger.Interface) *DashboardTicketsUseCase {
	return &DashboardTicketsUseCase{ticketRepo: ticketRepo, roleNamer: roleNamer, logger: logger}
}

func (uc *DashboardTicketsUseCase) Execute(ctx context.Context, query DashboardTicketsQuery) (*DashboardTicketsResult, error) {
	now := query.Now
	if now.IsZero() {
		now = time.Now()
	}

	tickets, err := uc.ticketRepo.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	if query.Principal.IsSuperuser {
		return &DashboardTicketsResult{
			Dashboard: ticket.SupervisorDashboard(tickets, query.Principal.AccountID, now),
		}, nil
	}

	if query.Principal.RoleID == nil {
		return nil, errors.NewAccessDeniedError("no role configured for dashboard view")
	}

	roleName, err := uc.roleNamer.RoleName(ctx, *query.Principal.RoleID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve role: %w", err)
	}

	switch roleName {
	case constants.RoleSupervisor, constants.RoleAdmin:
		return &DashboardTicketsResult{
			Dashboard: ticket.SupervisorDashboard(tickets, query.Principal.AccountID, now),
		}, nil
	default:
		return &DashboardTicketsResult{
			Dashboard: ticket.AgentDashboard(tickets, query.Principal.AccountID, now),
		}, nil
	}
}
