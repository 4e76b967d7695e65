package ticket

import (
	"sort"
	"strings"
	"time"
)

// Urgency score tiers. First matching rule wins; a ticket matching no
// rule falls through to its priority weight.
const (
	ScoreSLABreached     = 1000
	ScoreResponseOverdue = 800
	ScoreEscalated       = 600
	ScoreDueSoon         = 400

	dueSoonWindow = 2 * time.Hour
)

// OrderingMode selects how a filtered ticket set is sorted.
type OrderingMode string

const (
	OrderByImportance OrderingMode = "importance"
	OrderBySLA        OrderingMode = "sla"
	OrderByDeadline   OrderingMode = "deadline"
	OrderByCreated    OrderingMode = "created"
	OrderByPriority   OrderingMode = "priority"
)

// NormalizeOrderingMode maps an unknown mode name to the default
// importance ordering.
func NormalizeOrderingMode(name string) OrderingMode {
	switch OrderingMode(strings.ToLower(strings.TrimSpace(name))) {
	case OrderBySLA:
		return OrderBySLA
	case OrderByDeadline:
		return OrderByDeadline
	case OrderByCreated:
		return OrderByCreated
	case OrderByPriority:
		return OrderByPriority
	default:
		return OrderByImportance
	}
}

// Criteria is a conjunction of independent filter predicates. Zero
// values leave the corresponding predicate off.
type Criteria struct {
	MenuID          *uint
	StatusCodes     []string
	PriorityCodes   []string
	SLABreached     *bool
	ResponseOverdue *bool
	Escalated       *bool
	AssigneeID      *uint
	CreatorID       *uint
	MinAgeDays      *int
}

// Matches applies every set predicate with AND semantics.
func (c Criteria) Matches(t *Ticket, now time.Time) bool {
	if c.MenuID != nil {
		if t.MenuID() == nil || *t.MenuID() != *c.MenuID {
			return false
		}
	}
	if len(c.StatusCodes) > 0 && !containsFold(c.StatusCodes, t.Status().Code()) {
		return false
	}
	if len(c.PriorityCodes) > 0 && !containsFold(c.PriorityCodes, t.Priority().Code()) {
		return false
	}
	if c.SLABreached != nil && t.SLABreached(now) != *c.SLABreached {
		return false
	}
	if c.ResponseOverdue != nil && t.ResponseOverdue(now) != *c.ResponseOverdue {
		return false
	}
	if c.Escalated != nil && t.IsEscalated() != *c.Escalated {
		return false
	}
	if c.AssigneeID != nil {
		if t.AssigneeID() == nil || *t.AssigneeID() != *c.AssigneeID {
			return false
		}
	}
	if c.CreatorID != nil && t.CreatorID() != *c.CreatorID {
		return false
	}
	if c.MinAgeDays != nil && t.AgeDays(now) < *c.MinAgeDays {
		return false
	}
	return true
}

func containsFold(codes []string, code string) bool {
	for _, c := range codes {
		if strings.EqualFold(c, code) {
			return true
		}
	}
	return false
}

// UrgencyScore ranks a ticket by tiered rules, first match wins.
func UrgencyScore(t *Ticket, now time.Time) int {
	switch {
	case t.SLABreached(now):
		return ScoreSLABreached
	case t.ResponseOverdue(now):
		return ScoreResponseOverdue
	case t.IsEscalated():
		return ScoreEscalated
	case dueSoon(t.SLADueDate(), now):
		return ScoreDueSoon
	default:
		return t.Priority().Weight()
	}
}

func dueSoon(due *time.Time, now time.Time) bool {
	return due != nil && due.After(now) && !due.After(now.Add(dueSoonWindow))
}

// Rank filters the tickets by the criteria and sorts the survivors
// according to the mode. The input slice is not modified; the result
// is deterministic for a fixed ticket set and a fixed now.
func Rank(tickets []*Ticket, criteria Criteria, mode OrderingMode, now time.Time) []*Ticket {
	ranked := make([]*Ticket, 0, len(tickets))
	for _, t := range tickets {
		if criteria.Matches(t, now) {
			ranked = append(ranked, t)
		}
	}

	sort.SliceStable(ranked, lessFor(ranked, mode, now))
	return ranked
}

func lessFor(tickets []*Ticket, mode OrderingMode, now time.Time) func(i, j int) bool {
	switch mode {
	case OrderBySLA:
		return func(i, j int) bool {
			if c := compareTimePtr(tickets[i].SLADueDate(), tickets[j].SLADueDate()); c != 0 {
				return c < 0
			}
			return tickets[i].CreatedAt().Before(tickets[j].CreatedAt())
		}
	case OrderByDeadline:
		return func(i, j int) bool {
			if c := compareTimePtr(tickets[i].DueDate(), tickets[j].DueDate()); c != 0 {
				return c < 0
			}
			return tickets[i].CreatedAt().Before(tickets[j].CreatedAt())
		}
	case OrderByCreated:
		return func(i, j int) bool {
			return tickets[i].CreatedAt().Before(tickets[j].CreatedAt())
		}
	case OrderByPriority:
		return func(i, j int) bool {
			if a, b := tickets[i].Priority().Weight(), tickets[j].Priority().Weight(); a != b {
				return a > b
			}
			return tickets[i].CreatedAt().Before(tickets[j].CreatedAt())
		}
	default:
		// Keyed by ticket, not by position: the sort reorders the
		// slice under the comparator.
		scores := make(map[*Ticket]int, len(tickets))
		for _, t := range tickets {
			scores[t] = UrgencyScore(t, now)
		}
		return func(i, j int) bool {
			if a, b := scores[tickets[i]], scores[tickets[j]]; a != b {
				return a > b
			}
			if a, b := tickets[i].Status().Weight(), tickets[j].Status().Weight(); a != b {
				return a < b
			}
			if c := compareTimePtr(tickets[i].SLADueDate(), tickets[j].SLADueDate()); c != 0 {
				return c < 0
			}
			return tickets[i].CreatedAt().Before(tickets[j].CreatedAt())
		}
	}
}

// compareTimePtr orders times ascending with nils last.
func compareTimePtr(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case a.Before(*b):
		return -1
	case a.After(*b):
		return 1
	default:
		return 0
	}
}
