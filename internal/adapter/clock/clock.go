package clock

import (
	"time"

	"cloud.google.com/go/civil"

	"tasklist/internal/core/ports"
)

// System resolves today from the wall clock in Location (time.Local when nil).
type System struct {
	Location *time.Location
	now      func() time.Time
}

func NewSystem(loc *time.Location) *System {
	return &System{Location: loc, now: time.Now}
}

func (c *System) Today() civil.Date {
	now := time.Now
	if c.now != nil {
		now = c.now
	}
	loc := c.Location
	if loc == nil {
		loc = time.Local
	}
	return civil.DateOf(now().In(loc))
}

type Fixed civil.Date

func (c Fixed) Today() civil.Date {
	return civil.Date(c)
}

var (
	_ ports.Clock = (*System)(nil)
	_ ports.Clock = Fixed{}
)
