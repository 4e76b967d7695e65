package ticket

import (
	"fmt"
	"time"
)

// Change describes a single observed field transition between two
// snapshots of a ticket.
type Change struct {
	Field string
	Old   string
	New   string
}

func (c Change) String() string {
	return fmt.Sprintf("%s: %q -> %q", c.Field, c.Old, c.New)
}

// DetectChanges diffs two snapshots of the same ticket. The caller
// captures old at read time and passes both through the update path;
// no state is kept between calls.
func DetectChanges(old, new *Ticket) []Change {
	if old == nil || new == nil {
		return nil
	}

	var changes []Change
	if old.Title() != new.Title() {
		changes = append(changes, Change{Field: "title", Old: old.Title(), New: new.Title()})
	}
	if old.Description() != new.Description() {
		changes = append(changes, Change{Field: "description", Old: old.Description(), New: new.Description()})
	}
	if old.Status().Code() != new.Status().Code() {
		changes = append(changes, Change{Field: "status", Old: old.Status().Name(), New: new.Status().Name()})
	}
	if old.Priority().Code() != new.Priority().Code() {
		changes = append(changes, Change{Field: "priority", Old: old.Priority().Name(), New: new.Priority().Name()})
	}
	if !equalUintPtr(old.AssigneeID(), new.AssigneeID()) {
		changes = append(changes, Change{Field: "assignee", Old: formatUintPtr(old.AssigneeID()), New: formatUintPtr(new.AssigneeID())})
	}
	if !equalUintPtr(old.MenuID(), new.MenuID()) {
		changes = append(changes, Change{Field: "menu", Old: formatUintPtr(old.MenuID()), New: formatUintPtr(new.MenuID())})
	}
	if !equalTimePtr(old.ResponseDeadline(), new.ResponseDeadline()) {
		changes = append(changes, Change{Field: "response_deadline", Old: formatTimePtr(old.ResponseDeadline()), New: formatTimePtr(new.ResponseDeadline())})
	}
	if !equalTimePtr(old.DueDate(), new.DueDate()) {
		changes = append(changes, Change{Field: "due_date", Old: formatTimePtr(old.DueDate()), New: formatTimePtr(new.DueDate())})
	}
	if old.IsEscalated() != new.IsEscalated() {
		changes = append(changes, Change{Field: "escalated", Old: fmt.Sprintf("%t", old.IsEscalated()), New: fmt.Sprintf("%t", new.IsEscalated())})
	}
	return changes
}

func equalUintPtr(a, b *uint) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalTimePtr(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func formatUintPtr(v *uint) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%d", *v)
}

func formatTimePtr(v *time.Time) string {
	if v == nil {
		return ""
	}
	return v.Format(time.RFC3339)
}
