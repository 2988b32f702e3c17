package allowance

import (
	"math"
	"time"

	"tripbook/internal/domain"
)

// DaySpan is one calendar day of a trip and the hours the driver was on the
// road within it, rounded to 0.1h.
type DaySpan struct {
	Date  time.Time
	Hours float64
}

// SplitDays partitions [departure, return] into local calendar days. For
// each day the hours are the overlap between the trip interval and
// [00:00, 23:59:59] of that day.
func SplitDays(departure, returnAt time.Time) ([]DaySpan, error) {
	if returnAt.Before(departure) {
		return nil, domain.ValidationError{Field: "return_date", Msg: "return date is before departure date"}
	}

	loc := departure.Location()
	first := civilDate(departure)
	last := civilDate(returnAt)

	var days []DaySpan
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		dayStart := d
		dayEnd := d.Add(24*time.Hour - time.Second)

		from := departure
		if dayStart.After(from) {
			from = dayStart
		}
		to := returnAt
		if dayEnd.Before(to) {
			to = dayEnd
		}

		hours := 0.0
		if to.After(from) {
			hours = roundTenth(to.Sub(from).Hours())
		}
		days = append(days, DaySpan{Date: d.In(loc), Hours: hours})
	}
	return days, nil
}

func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func roundTenth(h float64) float64 {
	return math.Round(h*10) / 10
}
