package usecase

import (
	"strings"
	"time"

	"piecework_tracker/internal/domain/entities"
)

// Clock returns the current time in the operator's time zone.
type Clock func() time.Time

func SystemClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return func() time.Time { return time.Now().In(loc) }
}

// resolveDate returns today for a blank date and the canonical form otherwise.
func resolveDate(clock Clock, date string) (string, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return entities.FormatDate(clock()), nil
	}
	t, err := entities.ParseDate(date)
	if err != nil {
		return "", validationErr("date", ErrInvalidDate)
	}
	return entities.FormatDate(t), nil
}
