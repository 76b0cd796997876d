package service

import "time"

// HolidayParams configures holiday mode. Start and End are stored verbatim.
type HolidayParams struct {
	Temperature int
	Start       string
	End         string
}

// ScheduleParams configures one schedule range.
type ScheduleParams struct {
	Start       string // "HH:MM", zero-padded
	End         string // "HH:MM", zero-padded
	Temperature int
}

// Fault identifies an injectable fault.
type Fault string

const (
	FaultRTDisconnect  Fault = "rt-disconnect"
	FaultSensorFailure Fault = "sensor-failure"
	FaultLANDisconnect Fault = "lan-disconnect"
)

// LogFilter supports journal filtering by time range and type.
type LogFilter struct {
	From time.Time // inclusive; zero means no lower bound
	To   time.Time // inclusive; zero means no upper bound
	Type string    // "" or one of the models.Event* constants
}
