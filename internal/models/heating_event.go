package models

import "time"

// Event types recorded in the operation journal.
const (
	EventConnect          = "CONNECT"
	EventDisconnect       = "DISCONNECT"
	EventPowerOn          = "POWER_ON"
	EventPowerOff         = "POWER_OFF"
	EventBoostOn          = "BOOST_ON"
	EventBoostOff         = "BOOST_OFF"
	EventTemperatureSet   = "TEMPERATURE_SET"
	EventHolidayOn        = "HOLIDAY_ON"
	EventHolidayOff       = "HOLIDAY_OFF"
	EventScheduleSet      = "SCHEDULE_SET"
	EventScheduleCleared  = "SCHEDULE_CLEARED"
	EventScheduleApplied  = "SCHEDULE_APPLIED"
	EventScheduleRejected = "SCHEDULE_REJECTED"
	EventWelcomeSet       = "WELCOME_SET"
	EventFault            = "FAULT"
)

// HeatingEvent is a single journal entry.
type HeatingEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`        // POWER_ON | BOOST_ON | TEMPERATURE_SET | FAULT | ...
	Description string    `json:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}
