package permission

import (
	"fmt"
	"strings"
)

// Action is the closed set of operations a capability can gate. The
// mapping to capability flags is exhaustive; anything outside the enum
// denies.
type Action string

const (
	ActionCreate Action = "create"
	ActionView   Action = "view"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

var validActions = map[Action]bool{
	ActionCreate: true,
	ActionView:   true,
	ActionUpdate: true,
	ActionDelete: true,
}

func (a Action) String() string {
	return string(a)
}

func (a Action) IsValid() bool {
	return validActions[a]
}

// NewAction parses an action name. The read-side aliases "list" and
// "read" map to ActionView.
func NewAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "list", "read":
		return ActionView, nil
	}
	a := Action(strings.ToLower(strings.TrimSpace(s)))
	if !a.IsValid() {
		return "", fmt.Errorf("invalid action: %s", s)
	}
	return a, nil
}
