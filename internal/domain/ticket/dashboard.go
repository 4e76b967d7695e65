package ticket

import "time"

// Dashboard groups ranked tickets for a role-sensitive overview. Each
// bucket is already ordered by importance.
type Dashboard struct {
	Assigned  []*Ticket
	Escalated []*Ticket
	Breached  []*Ticket
}

// AgentDashboard restricts the view to tickets assigned to the agent.
func AgentDashboard(tickets []*Ticket, agentID uint, now time.Time) Dashboard {
	return Dashboard{
		Assigned: Rank(tickets, Criteria{AssigneeID: &agentID}, OrderByImportance, now),
	}
}

// SupervisorDashboard splits the full set into assigned, escalated
// and SLA-breached buckets. A ticket may appear in more than one
// bucket.
func SupervisorDashboard(tickets []*Ticket, supervisorID uint, now time.Time) Dashboard {
	escalated := true
	breached := true
	return Dashboard{
		Assigned:  Rank(tickets, Criteria{AssigneeID: &supervisorID}, OrderByImportance, now),
		Escalated: Rank(tickets, Criteria{Escalated: &escalated}, OrderByImportance, now),
		Breached:  Rank(tickets, Criteria{SLABreached: &breached}, OrderByImportance, now),
	}
}
