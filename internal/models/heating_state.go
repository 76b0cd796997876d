package models

import "time"

// ScheduleEntry maps a time-of-day range to a temperature override.
// Start and End are compared as plain strings ("HH:MM").
type ScheduleEntry struct {
	Start       string `json:"start"`
	End         string `json:"end"`
	Temperature int    `json:"temperature"`
}

// HeatingState is a read-only snapshot of the controller.
type HeatingState struct {
	ID                 int64           `json:"id,omitempty"`
	PowerOn            bool            `json:"power_on"`
	BoostMode          bool            `json:"boost_mode"`
	PowerWarning       string          `json:"power_warning,omitempty"`
	Temperature        int             `json:"temperature"`
	RoomTemperature    int             `json:"room_temperature"`
	Display            string          `json:"display"`
	HolidayMode        bool            `json:"holiday_mode"`
	HolidayStart       string          `json:"holiday_start,omitempty"`
	HolidayEnd         string          `json:"holiday_end,omitempty"`
	Mode               string          `json:"mode"` // Normal | Holiday Mode
	DefaultTemperature int             `json:"default_temperature"`
	Schedules          []ScheduleEntry `json:"schedules"`
	ErrorMessage       string          `json:"error_message,omitempty"`
	WelcomeMessage     string          `json:"welcome_message"`
	UpdatedAt          time.Time       `json:"updated_at"`
}
