// Package heating models the state of a home heating controller: power,
// boost and holiday modes, a temperature setpoint, time-of-day schedules and
// the last reported fault.
//
// A System is not safe for concurrent use; callers that share one across
// goroutines must serialize access.
package heating

import (
	"fmt"

	"heating_controller/internal/logger"
	"heating_controller/internal/models"
)

// Temperature limits, inclusive.
const (
	MinTemperature = 14
	MaxTemperature = 30

	// DefaultTemperature is the fallback for schedule lookups.
	DefaultTemperature = 20

	// holidayExitTemperature is written back when holiday mode ends. It is a
	// literal on purpose and does not follow DefaultTemperature.
	holidayExitTemperature = 20
)

// System mode labels.
const (
	ModeNormal  = "Normal"
	ModeHoliday = "Holiday Mode"
)

// Fixed user-facing messages.
const (
	PowerWarningHigh     = "high power consumption"
	ErrMsgRTDisconnected = "RT disconnected"
	ErrMsgSensorFailure  = "Temperature sensor malfunction"
	ErrMsgLANDisconnect  = "Communication lost with APP"

	DefaultWelcomeMessage = "Hi Admin"
)

// System holds the controller state. The zero value is not usable; use NewSystem.
type System struct {
	log *logger.Logger

	powerOn      bool
	boostMode    bool
	powerWarning string
	temperature  int

	holidayMode  bool
	holidayStart string
	holidayEnd   string
	mode         string

	schedules []models.ScheduleEntry

	errorMessage   string
	welcomeMessage string
}

// NewSystem returns a controller with factory defaults: power off,
// temperature 20, normal mode, no schedules and no fault. log may be nil.
func NewSystem(log *logger.Logger) *System {
	return &System{
		log:            log,
		temperature:    DefaultTemperature,
		mode:           ModeNormal,
		welcomeMessage: DefaultWelcomeMessage,
	}
}

func (s *System) info(msg string, kv ...interface{}) {
	if s.log != nil {
		s.log.Infow(msg, kv...)
	}
}

// Connect and Disconnect only emit a log line.
func (s *System) Connect()    { s.info("heating_connected") }
func (s *System) Disconnect() { s.info("heating_disconnected") }

// TurnOn powers the unit. Calling it again has no further effect.
func (s *System) TurnOn() {
	s.powerOn = true
	s.info("heating_turned_on")
}

// TurnOff powers the unit down.
func (s *System) TurnOff() {
	s.powerOn = false
	s.info("heating_turned_off")
}

// IsOn reports whether the unit is powered.
func (s *System) IsOn() bool { return s.powerOn }

// TurnOnBoostMode engages boost and raises the power consumption warning.
func (s *System) TurnOnBoostMode() {
	s.boostMode = true
	s.powerWarning = PowerWarningHigh
	s.info("heating_boost_on")
}

// TurnOffBoostMode disengages boost and clears the warning.
func (s *System) TurnOffBoostMode() {
	s.boostMode = false
	s.powerWarning = ""
	s.info("heating_boost_off")
}

func (s *System) IsBoostModeOn() bool { return s.boostMode }

// PowerConsumptionWarning returns the warning and true while boost is on.
func (s *System) PowerConsumptionWarning() (string, bool) {
	return s.powerWarning, s.boostMode
}

// SetTemperature changes the setpoint. Values outside
// [MinTemperature, MaxTemperature] are rejected with a *RangeError and the
// previous setpoint is kept.
func (s *System) SetTemperature(t int) error {
	if err := validateTemperature(t); err != nil {
		return err
	}
	s.temperature = t
	s.info("heating_temperature_set", "temperature", t)
	return nil
}

func (s *System) Temperature() int { return s.temperature }

// ReadRoomTemperature returns the room sensor reading, which this model
// reports as the setpoint itself.
func (s *System) ReadRoomTemperature() int { return s.temperature }

// DisplayValue renders the display line, e.g. "Temperature: 22".
func (s *System) DisplayValue() string {
	return fmt.Sprintf("Temperature: %d", s.temperature)
}

// SetHolidayMode switches to holiday mode for the given period at temp.
// start and end are stored as given. An invalid temp fails like
// SetTemperature and leaves every holiday field untouched.
func (s *System) SetHolidayMode(temp int, start, end string) error {
	if err := validateTemperature(temp); err != nil {
		return fmt.Errorf("set holiday mode: %w", err)
	}
	s.holidayMode = true
	s.holidayStart = start
	s.holidayEnd = end
	s.temperature = temp
	s.mode = ModeHoliday
	s.info("heating_holiday_on", "temperature", temp, "start", start, "end", end)
	return nil
}

// TurnOffHolidayMode returns to normal mode and resets the setpoint to 20.
// The stored period is kept.
func (s *System) TurnOffHolidayMode() {
	s.holidayMode = false
	s.mode = ModeNormal
	s.temperature = holidayExitTemperature
	s.info("heating_holiday_off")
}

func (s *System) IsHolidayModeOn() bool { return s.holidayMode }

// HolidayPeriod returns the last configured holiday dates.
func (s *System) HolidayPeriod() (start, end string) {
	return s.holidayStart, s.holidayEnd
}

func (s *System) DefaultTemperature() int { return DefaultTemperature }

// SystemMode returns ModeHoliday or ModeNormal.
func (s *System) SystemMode() string { return s.mode }

// ConfigureWelcomeMessage replaces the welcome message.
func (s *System) ConfigureWelcomeMessage(msg string) {
	s.welcomeMessage = msg
	s.info("heating_welcome_set", "message", msg)
}

func (s *System) WelcomeMessage() string { return s.welcomeMessage }

// DisconnectRT records a lost room thermostat.
func (s *System) DisconnectRT() { s.fault(ErrMsgRTDisconnected) }

// SimulateSensorFailure records a temperature sensor malfunction.
func (s *System) SimulateSensorFailure() { s.fault(ErrMsgSensorFailure) }

// DisconnectLAN records lost communication with the app.
func (s *System) DisconnectLAN() { s.fault(ErrMsgLANDisconnect) }

// ErrorMessage returns the last fault and true, or false if none was ever
// recorded. Faults are never cleared.
func (s *System) ErrorMessage() (string, bool) {
	return s.errorMessage, s.errorMessage != ""
}

func (s *System) fault(msg string) {
	s.errorMessage = msg
	if s.log != nil {
		s.log.Warnw("heating_fault", "error", msg)
	}
}

// Snapshot copies the current state. UpdatedAt is left to the caller.
func (s *System) Snapshot() models.HeatingState {
	return models.HeatingState{
		PowerOn:            s.powerOn,
		BoostMode:          s.boostMode,
		PowerWarning:       s.powerWarning,
		Temperature:        s.temperature,
		RoomTemperature:    s.ReadRoomTemperature(),
		Display:            s.DisplayValue(),
		HolidayMode:        s.holidayMode,
		HolidayStart:       s.holidayStart,
		HolidayEnd:         s.holidayEnd,
		Mode:               s.mode,
		DefaultTemperature: DefaultTemperature,
		Schedules:          s.Schedules(),
		ErrorMessage:       s.errorMessage,
		WelcomeMessage:     s.welcomeMessage,
	}
}
