// File: services/delivery/availability.go
package delivery

import (
	"time"

	"entrega/models"
)

// Bounds applied to custom slots missing a boundary.
const (
	defaultCustomStart = "08:00"
	defaultCustomEnd   = "18:00"
)

// DefaultAvailability returns the canonical empty week: all seven days in
// order, disabled, no slots, normal priority, empty notes.
func DefaultAvailability() models.WeeklyAvailability {
	days := make([]models.DayAvailability, 0, len(models.WeekDays))
	for _, d := range models.WeekDays {
		days = append(days, models.DayAvailability{
			Day:       d,
			Enabled:   false,
			TimeSlots: []models.TimeSlot{},
		})
	}
	return models.WeeklyAvailability{
		Days:     days,
		Priority: models.PriorityNormal,
		Notes:    "",
	}
}

// Normalize reconciles any partial or malformed availability against the
// canonical template: exactly seven days in canonical order, disabled days
// with no slots, every slot normalized. Missing days, unknown day names and
// invalid priorities fall back to the defaults. A disabled day's slots are
// silently dropped. Total and idempotent; it never fails.
func Normalize(in *models.WeeklyAvailability) models.WeeklyAvailability {
	out := DefaultAvailability()
	if in == nil {
		return out
	}

	for i := range out.Days {
		src, ok := findDay(in.Days, out.Days[i].Day)
		if !ok || !src.Enabled {
			continue
		}
		slots := make([]models.TimeSlot, 0, len(src.TimeSlots))
		for _, s := range src.TimeSlots {
			slots = append(slots, NormalizeSlot(s))
		}
		out.Days[i].Enabled = true
		out.Days[i].TimeSlots = slots
	}

	if in.Priority.Valid() {
		out.Priority = in.Priority
	}
	out.Notes = in.Notes
	return out
}

// NormalizeSlot canonicalizes a single slot. Non-custom slots carry no
// start/end; custom slots get defaulted boundaries and are swapped when
// stored reversed. Equal start/end is left as-is. Unrecognized periods fall
// back to morning.
func NormalizeSlot(slot models.TimeSlot) models.TimeSlot {
	if !slot.Period.Valid() {
		slot.Period = models.PeriodMorning
	}
	if slot.Period != models.PeriodCustom {
		return models.TimeSlot{Period: slot.Period}
	}

	start, end := slot.CustomStart, slot.CustomEnd
	if start == "" {
		start = defaultCustomStart
	}
	if end == "" {
		end = defaultCustomEnd
	}
	// Zero-padded HH:MM compares correctly as a string.
	if start > end {
		start, end = end, start
	}
	return models.TimeSlot{Period: models.PeriodCustom, CustomStart: start, CustomEnd: end}
}

// ToggleDay enables or disables a day. Turning a day on seeds a single
// morning slot; turning it off clears its slots. Unknown days are a no-op.
func ToggleDay(state models.WeeklyAvailability, day models.Weekday, enabled bool) models.WeeklyAvailability {
	out := Normalize(&state)
	if i := dayIndex(out.Days, day); i >= 0 {
		out.Days[i].Enabled = enabled
		if enabled {
			out.Days[i].TimeSlots = []models.TimeSlot{{Period: models.PeriodMorning}}
		} else {
			out.Days[i].TimeSlots = []models.TimeSlot{}
		}
	}
	return Normalize(&out)
}

// AddSlot appends a slot to the named day. When the day's last slot is
// custom, the new slot continues from its end; otherwise an afternoon slot
// is appended.
func AddSlot(state models.WeeklyAvailability, day models.Weekday) models.WeeklyAvailability {
	out := Normalize(&state)
	if i := dayIndex(out.Days, day); i >= 0 {
		slots := out.Days[i].TimeSlots
		next := models.TimeSlot{Period: models.PeriodAfternoon}
		if n := len(slots); n > 0 && slots[n-1].Period == models.PeriodCustom {
			end := defaultCustomEnd
			if slots[n-1].CustomEnd > end {
				end = slots[n-1].CustomEnd
			}
			next = models.TimeSlot{
				Period:      models.PeriodCustom,
				CustomStart: slots[n-1].CustomEnd,
				CustomEnd:   end,
			}
		}
		out.Days[i].TimeSlots = append(slots, next)
	}
	return Normalize(&out)
}

// RemoveSlot deletes the slot at index (insertion order) for the named day.
// Out-of-bounds indexes and unknown days are a no-op, never an error.
func RemoveSlot(state models.WeeklyAvailability, day models.Weekday, index int) models.WeeklyAvailability {
	out := Normalize(&state)
	if i := dayIndex(out.Days, day); i >= 0 {
		slots := out.Days[i].TimeSlots
		if index >= 0 && index < len(slots) {
			out.Days[i].TimeSlots = append(slots[:index:index], slots[index+1:]...)
		}
	}
	return Normalize(&out)
}

// UpdateSlot merges a patch into the slot at index and re-normalizes it.
// Out-of-bounds indexes are a no-op.
func UpdateSlot(state models.WeeklyAvailability, day models.Weekday, index int, patch models.TimeSlotPatch) models.WeeklyAvailability {
	out := Normalize(&state)
	if i := dayIndex(out.Days, day); i >= 0 {
		slots := out.Days[i].TimeSlots
		if index >= 0 && index < len(slots) {
			slot := slots[index]
			if patch.Period != nil {
				slot.Period = *patch.Period
			}
			if patch.CustomStart != nil {
				slot.CustomStart = *patch.CustomStart
			}
			if patch.CustomEnd != nil {
				slot.CustomEnd = *patch.CustomEnd
			}
			slots[index] = NormalizeSlot(slot)
		}
	}
	return Normalize(&out)
}

// SetPriority replaces the priority field.
func SetPriority(state models.WeeklyAvailability, priority models.Priority) models.WeeklyAvailability {
	out := Normalize(&state)
	out.Priority = priority
	return Normalize(&out)
}

// SetNotes replaces the notes field.
func SetNotes(state models.WeeklyAvailability, notes string) models.WeeklyAvailability {
	out := Normalize(&state)
	out.Notes = notes
	return Normalize(&out)
}

// NextWindow returns the start of the earliest acceptable delivery window at
// or after the given instant, scanning up to a week ahead. When the instant
// falls inside an open window, it is returned unchanged. The second return
// is false when no day is enabled.
func NextWindow(av models.WeeklyAvailability, from time.Time) (time.Time, bool) {
	norm := Normalize(&av)

	best := time.Time{}
	found := false
	for offset := 0; offset <= 7; offset++ {
		date := from.AddDate(0, 0, offset)
		i := dayIndex(norm.Days, weekdayOf(date.Weekday()))
		if i < 0 || !norm.Days[i].Enabled {
			continue
		}
		for _, slot := range norm.Days[i].TimeSlots {
			startHM, endHM := slot.Window()
			start := atClock(date, startHM)
			end := atClock(date, endHM)
			if offset == 0 {
				if from.After(end) {
					continue
				}
				if from.After(start) {
					return from, true
				}
			}
			if !found || start.Before(best) {
				best = start
				found = true
			}
		}
		if found {
			return best, true
		}
	}
	return time.Time{}, false
}

// ── helpers ──

func findDay(days []models.DayAvailability, day models.Weekday) (models.DayAvailability, bool) {
	for _, d := range days {
		if d.Day == day {
			return d, true
		}
	}
	return models.DayAvailability{}, false
}

func dayIndex(days []models.DayAvailability, day models.Weekday) int {
	for i := range days {
		if days[i].Day == day {
			return i
		}
	}
	return -1
}

func weekdayOf(w time.Weekday) models.Weekday {
	switch w {
	case time.Monday:
		return models.Monday
	case time.Tuesday:
		return models.Tuesday
	case time.Wednesday:
		return models.Wednesday
	case time.Thursday:
		return models.Thursday
	case time.Friday:
		return models.Friday
	case time.Saturday:
		return models.Saturday
	default:
		return models.Sunday
	}
}

// atClock pins an "HH:MM" wall-clock time onto a date.
func atClock(date time.Time, hm string) time.Time {
	parsed, err := time.Parse("15:04", hm)
	if err != nil {
		parsed, _ = time.Parse("15:04", defaultCustomStart)
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, date.Location())
}
