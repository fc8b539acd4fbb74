package service

import (
	"time"

	"github.com/carson-networks/banking-demo/internal/calendar"
)

type clock struct {
	now func() time.Time
	loc *time.Location
}

func (c clock) today() calendar.Date {
	return calendar.DateOf(c.now(), c.loc)
}
