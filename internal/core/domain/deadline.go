package domain

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

// DeadlineLayout is dd-MM-yyyy. Day and month must both be two digits.
const DeadlineLayout = "02-01-2006"

func ParseDeadline(value string) (civil.Date, error) {
	parsed, err := time.Parse(DeadlineLayout, value)
	if err != nil {
		return civil.Date{}, fmt.Errorf("%w: %q: %v", ErrInvalidDate, value, err)
	}
	return civil.DateOf(parsed), nil
}

func FormatDeadline(date civil.Date) string {
	return date.In(time.UTC).Format(DeadlineLayout)
}
