// Package biztime provides business timezone calculations. All
// storage and transport use UTC; the business timezone only decides
// date boundaries, most importantly which calendar day a ticket
// number belongs to.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

const (
	// DefaultTimezone is used when no timezone is configured.
	DefaultTimezone = "UTC"
)

var (
	bizLocation     *time.Location
	bizLocationOnce sync.Once
	initErr         error
)

// Init initializes the business timezone. Should be called once at startup.
// If tz is empty, defaults to UTC.
func Init(tz string) error {
	bizLocationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		bizLocation, initErr = time.LoadLocation(tz)
	})
	return initErr
}

// Location returns the business timezone location, auto-initializing
// with the default timezone when Init was never called.
func Location() *time.Location {
	if bizLocation == nil {
		if err := Init(""); err != nil {
			panic(fmt.Sprintf("biztime: failed to auto-initialize with default timezone: %v", err))
		}
	}
	return bizLocation
}

// ToBizTimezone converts a time to the business timezone. Ticket
// numbering uses this so the embedded date matches the business day
// rather than the server's local day.
func ToBizTimezone(t time.Time) time.Time {
	return t.In(Location())
}
