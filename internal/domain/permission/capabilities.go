package permission

// Capabilities is the set of four independent flags attached to a
// (subject, menu) pair.
type Capabilities struct {
	Create bool
	View   bool
	Update bool
	Delete bool
}

// DefaultCapabilities is what a user grant falls back to when no flags
// were supplied: view-only.
func DefaultCapabilities() Capabilities {
	return Capabilities{View: true}
}

func FullCapabilities() Capabilities {
	return Capabilities{Create: true, View: true, Update: true, Delete: true}
}

// Allows maps an action onto its capability flag. Unknown actions never
// pass.
func (c Capabilities) Allows(action Action) bool {
	switch action {
	case ActionCreate:
		return c.Create
	case ActionView:
		return c.View
	case ActionUpdate:
		return c.Update
	case ActionDelete:
		return c.Delete
	default:
		return false
	}
}

// IsZero reports whether no capability is set. Zero-capability grants
// are rejected on write: a deny is expressed by omitting the grant or
// clearing the single flag, not by storing an all-false row.
func (c Capabilities) IsZero() bool {
	return !c.Create && !c.View && !c.Update && !c.Delete
}
