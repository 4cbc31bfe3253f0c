package clock

import "time"

func NewSystemAt(loc *time.Location, now func() time.Time) *System {
	return &System{Location: loc, now: now}
}
