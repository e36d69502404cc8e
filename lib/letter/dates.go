package letter

import (
	"math"
	"time"
)

const (
	InvalidDate = "Invalid Date"

	inputDateLayout   = "2006-01-02"
	longDateLayout    = "January 2, 2006"
	weekdayDateLayout = "Monday, January 2, 2006"

	msPerDay = 86400000
)

// ParseInputDate разбирает значение поля даты (YYYY-MM-DD) как календарную дату в UTC
func ParseInputDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(inputDateLayout, value)
	if err == nil {
		return t, true
	}
	t, err = time.Parse(time.RFC3339, value)
	if err == nil {
		return t.UTC(), true
	}
	return time.Time{}, false
}

// FormatLongDate "June 5, 2025"; для пустой или некорректной даты - "Invalid Date"
func FormatLongDate(value string) string {
	t, ok := ParseInputDate(value)
	if !ok {
		return InvalidDate
	}
	return t.Format(longDateLayout)
}

// FormatWeekdayDate "Friday, July 4, 2025"; для пустой или некорректной даты - "Invalid Date"
func FormatWeekdayDate(value string) string {
	t, ok := ParseInputDate(value)
	if !ok {
		return InvalidDate
	}
	return t.Format(weekdayDateLayout)
}

// DayCount количество дней отпуска включительно: floor((end-start)/сутки)+1 для периода, 1 для одного дня.
// Если одна из дат периода некорректна, считается один день.
func DayCount(sel DateSelection) int {
	r, ok := sel.(DateRange)
	if !ok {
		return 1
	}
	start, ok := ParseInputDate(r.Start)
	if !ok {
		return 1
	}
	end, ok := ParseInputDate(r.End)
	if !ok {
		return 1
	}
	ms := end.Sub(start).Milliseconds()
	return int(math.Floor(float64(ms)/msPerDay)) + 1
}
