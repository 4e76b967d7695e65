package ticket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cloneForUpdate(t *testing.T, tk *Ticket) *Ticket {
	t.Helper()
	clone, err := ReconstructTicket(
		tk.ID(), tk.Number(), tk.Title(), tk.Description(),
		tk.MenuID(), tk.Status(), tk.Priority(), tk.CreatorID(), tk.AssigneeID(),
		tk.FirstResponseAt(), tk.ResponseDeadline(), tk.DueDate(), tk.ResolvedAt(), tk.SLADueDate(),
		tk.SLABreached(testNow), tk.IsEscalated(),
		tk.CreatedAt(), tk.UpdatedAt(),
	)
	require.NoError(t, err)
	return clone
}

func TestDetectChangesNoDifference(t *testing.T) {
	old := buildTicket(t, ticketSpec{id: 1})
	assert.Empty(t, DetectChanges(old, cloneForUpdate(t, old)))
}

func TestDetectChangesNilSnapshots(t *testing.T) {
	tk := buildTicket(t, ticketSpec{id: 1})
	assert.Nil(t, DetectChanges(nil, tk))
	assert.Nil(t, DetectChanges(tk, nil))
}

func TestDetectChangesFields(t *testing.T) {
	old := buildTicket(t, ticketSpec{id: 1})

	updated := cloneForUpdate(t, old)
	require.NoError(t, updated.Retitle("New title"))
	updated.SetDescription("rewritten")
	require.NoError(t, updated.Assign(9))
	updated.Escalate()

	changes := DetectChanges(old, updated)
	fields := make([]string, len(changes))
	for i, c := range changes {
		fields[i] = c.Field
	}
	assert.ElementsMatch(t, []string{"title", "description", "assignee", "escalated"}, fields)
}

func TestDetectChangesStatusAndPriority(t *testing.T) {
	old := buildTicket(t, ticketSpec{id: 1})

	updated := cloneForUpdate(t, old)
	require.NoError(t, updated.ChangeStatus(newTestStatus(t, "CLOSED", StatusTypeClosed, 9)))
	require.NoError(t, updated.ChangePriority(newTestPriority(t, "URGENT", 100, nil)))

	changes := DetectChanges(old, updated)
	require.Len(t, changes, 2)
	assert.Equal(t, "status", changes[0].Field)
	assert.Equal(t, "Open", changes[0].Old)
	assert.Equal(t, "CLOSED", changes[0].New)
	assert.Equal(t, "priority", changes[1].Field)
}

func TestDetectChangesDeadlines(t *testing.T) {
	old := buildTicket(t, ticketSpec{id: 1})

	updated := cloneForUpdate(t, old)
	resp := testNow.Add(time.Hour)
	due := testNow.Add(4 * time.Hour)
	require.NoError(t, updated.SetDeadlines(&resp, &due))

	changes := DetectChanges(old, updated)
	require.Len(t, changes, 2)
	assert.Equal(t, "response_deadline", changes[0].Field)
	assert.Equal(t, "", changes[0].Old)
	assert.Equal(t, resp.Format(time.RFC3339), changes[0].New)
	assert.Equal(t, "due_date", changes[1].Field)
}

func TestChangeString(t *testing.T) {
	c := Change{Field: "status", Old: "Open", New: "Closed"}
	assert.Equal(t, `status: "Open" -> "Closed"`, c.String())
}
