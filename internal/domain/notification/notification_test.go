package notification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLog(t *testing.T) {
	sender := uint(2)

	tests := []struct {
		name      string
		recipient uint
		ticketID  uint
		logType   Type
		title     string
		message   string
		wantErr   string
	}{
		{"valid", 1, 10, TypeTicketAssigned, "Assigned", "Ticket assigned to you", ""},
		{"missing recipient", 0, 10, TypeTicketAssigned, "Assigned", "msg", "recipient ID is required"},
		{"missing ticket", 1, 0, TypeTicketAssigned, "Assigned", "msg", "ticket ID is required"},
		{"bad type", 1, 10, Type("whatever"), "Assigned", "msg", "invalid notification type"},
		{"empty title", 1, 10, TypeTicketAssigned, "", "msg", "title is required"},
		{"empty message", 1, 10, TypeTicketAssigned, "Assigned", "", "message is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := NewLog(tt.recipient, &sender, tt.ticketID, tt.logType, tt.title, tt.message, nil)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.False(t, l.IsRead())
			assert.False(t, l.IsSent())
			assert.Equal(t, &sender, l.SenderID())
		})
	}
}

func TestLogMarkSentAndRead(t *testing.T) {
	l, err := NewLog(1, nil, 10, TypeStatusChanged, "Status changed", "Open -> Closed", map[string]any{"old": "Open"})
	require.NoError(t, err)

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	l.MarkSent(now)
	require.NotNil(t, l.SentAt())
	assert.True(t, l.IsSent())

	// repeat calls keep the first timestamp
	l.MarkSent(now.Add(time.Hour))
	assert.Equal(t, now, *l.SentAt())

	l.MarkRead(now.Add(time.Minute))
	assert.True(t, l.IsRead())
	l.MarkRead(now.Add(time.Hour))
	assert.Equal(t, now.Add(time.Minute), *l.ReadAt())
}

func TestTypeIsValid(t *testing.T) {
	for _, typ := range []Type{
		TypeTicketCreated, TypeTicketUpdated, TypeTicketAssigned,
		TypeTicketReassigned, TypeStatusChanged, TypePriorityChanged,
		TypeCommentAdded, TypeDueDateApproaching,
	} {
		assert.True(t, typ.IsValid(), typ)
	}
	assert.False(t, Type("email_bounced").IsValid())
}
