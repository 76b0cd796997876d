package heating

import "heating_controller/internal/models"

// ConfigureScheduleUsage stores temp for the [start, end] range. An entry with
// the same start and end is overwritten in place; nothing else is validated.
func (s *System) ConfigureScheduleUsage(start, end string, temp int) {
	defer s.info("heating_schedule_set", "start", start, "end", end, "temperature", temp)
	for i := range s.schedules {
		if s.schedules[i].Start == start && s.schedules[i].End == end {
			s.schedules[i].Temperature = temp
			return
		}
	}
	s.schedules = append(s.schedules, models.ScheduleEntry{Start: start, End: end, Temperature: temp})
}

// TurnOffScheduleUsage drops every schedule entry.
func (s *System) TurnOffScheduleUsage() {
	s.schedules = nil
	s.info("heating_schedule_cleared")
}

// ScheduledTemperature returns the temperature of the first entry, in
// insertion order, with Start <= at <= End. Comparison is lexicographic, so
// times must be zero-padded "HH:MM". DefaultTemperature is returned when no
// entry matches.
func (s *System) ScheduledTemperature(at string) int {
	if e, ok := s.MatchSchedule(at); ok {
		return e.Temperature
	}
	return DefaultTemperature
}

// MatchSchedule returns the entry ScheduledTemperature would use, and false
// when the lookup falls back to the default.
func (s *System) MatchSchedule(at string) (models.ScheduleEntry, bool) {
	for _, e := range s.schedules {
		if e.Start <= at && at <= e.End {
			return e, true
		}
	}
	return models.ScheduleEntry{}, false
}

// Schedules returns a copy of the configured entries in insertion order.
func (s *System) Schedules() []models.ScheduleEntry {
	out := make([]models.ScheduleEntry, len(s.schedules))
	copy(out, s.schedules)
	return out
}
