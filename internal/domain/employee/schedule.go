package employee

import (
	"fmt"
	"time"
)

// Shift is a working window in hours of the day, e.g. 9 to 17.
type Shift struct {
	StartHour int
	EndHour   int
}

func (s Shift) Hours() int {
	return s.EndHour - s.StartHour
}

func (s Shift) String() string {
	return fmt.Sprintf("%02d:00-%02d:00", s.StartHour, s.EndHour)
}

type WorkSchedule struct {
	HoursPerWeek int
	shifts       map[time.Weekday]Shift
}

// On returns the shift for day; ok is false on days off.
func (w WorkSchedule) On(day time.Weekday) (shift Shift, ok bool) {
	shift, ok = w.shifts[day]
	return shift, ok
}

// Describe renders the week as "monday: 09:00-17:00" style entries, Monday first.
func (w WorkSchedule) Describe() []string {
	out := make([]string, 0, 7)
	for i := 1; i <= 7; i++ {
		day := time.Weekday(i % 7)
		label := "off"
		if s, ok := w.shifts[day]; ok {
			label = s.String()
		}
		out = append(out, fmt.Sprintf("%s: %s", dayName(day), label))
	}
	return out
}

func dayName(d time.Weekday) string {
	name := d.String()
	return string(name[0]+'a'-'A') + name[1:]
}

func scheduleFor(t EmploymentType) WorkSchedule {
	switch t {
	case PartTime:
		return WorkSchedule{
			HoursPerWeek: 20,
			shifts: map[time.Weekday]Shift{
				time.Monday:    {9, 13},
				time.Wednesday: {9, 13},
				time.Friday:    {9, 13},
				time.Saturday:  {10, 15},
			},
		}
	case Contract:
		return weekdays(10, 18)
	default:
		return weekdays(9, 17)
	}
}

func weekdays(start, end int) WorkSchedule {
	shifts := make(map[time.Weekday]Shift, 5)
	for d := time.Monday; d <= time.Friday; d++ {
		shifts[d] = Shift{StartHour: start, EndHour: end}
	}
	return WorkSchedule{HoursPerWeek: 5 * (end - start), shifts: shifts}
}
