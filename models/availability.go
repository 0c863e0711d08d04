package models

// Weekday identifies one of the seven calendar days, lowercase.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// WeekDays is the canonical day ordering; every normalized availability
// carries exactly these seven days in this order.
var WeekDays = [7]Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

func (w Weekday) Valid() bool {
	for _, d := range WeekDays {
		if w == d {
			return true
		}
	}
	return false
}

// ParseWeekday resolves a day identifier from a route or payload.
func ParseWeekday(s string) (Weekday, bool) {
	w := Weekday(s)
	if w.Valid() {
		return w, true
	}
	return "", false
}

// Priority ranks how urgent deliveries for a sale are.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// SlotPeriod names a delivery window within a day.
type SlotPeriod string

const (
	PeriodMorning   SlotPeriod = "morning"
	PeriodAfternoon SlotPeriod = "afternoon"
	PeriodEvening   SlotPeriod = "evening"
	PeriodCustom    SlotPeriod = "custom"
)

func (p SlotPeriod) Valid() bool {
	switch p {
	case PeriodMorning, PeriodAfternoon, PeriodEvening, PeriodCustom:
		return true
	}
	return false
}

// Wall-clock bounds of the named periods ("HH:MM", 24h).
const (
	MorningStart   = "08:00"
	MorningEnd     = "12:00"
	AfternoonStart = "12:00"
	AfternoonEnd   = "18:00"
	EveningStart   = "18:00"
	EveningEnd     = "22:00"
)

// TimeSlot is one acceptable delivery window on a given day. CustomStart and
// CustomEnd are present only when Period is custom.
type TimeSlot struct {
	Period      SlotPeriod `json:"period"`
	CustomStart string     `json:"customStart,omitempty"`
	CustomEnd   string     `json:"customEnd,omitempty"`
}

// Window returns the wall-clock bounds of the slot.
func (s TimeSlot) Window() (start, end string) {
	switch s.Period {
	case PeriodAfternoon:
		return AfternoonStart, AfternoonEnd
	case PeriodEvening:
		return EveningStart, EveningEnd
	case PeriodCustom:
		return s.CustomStart, s.CustomEnd
	default:
		return MorningStart, MorningEnd
	}
}

// TimeSlotPatch carries a partial slot edit; nil fields are left untouched.
type TimeSlotPatch struct {
	Period      *SlotPeriod `json:"period,omitempty"`
	CustomStart *string     `json:"customStart,omitempty"`
	CustomEnd   *string     `json:"customEnd,omitempty"`
}

// DayAvailability holds one day's windows. Slot order is insertion order, not
// sorted by time. Enabled=false implies no slots.
type DayAvailability struct {
	Day       Weekday    `json:"day"`
	Enabled   bool       `json:"enabled"`
	TimeSlots []TimeSlot `json:"timeSlots"`
}

// WeeklyAvailability is the root availability value persisted per sale and
// replaced wholesale on every edit.
type WeeklyAvailability struct {
	Days     []DayAvailability `json:"days"`
	Priority Priority          `json:"priority"`
	Notes    string            `json:"notes"`
}
