package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"heating_controller/internal/heating"
	"heating_controller/internal/models"
	"heating_controller/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	statusOK                = "ok"
	statusConnected         = "connected"
	statusDisconnected      = "disconnected"
	statusPoweredOn         = "powered_on"
	statusPoweredOff        = "powered_off"
	statusBoostOn           = "boost_on"
	statusBoostOff          = "boost_off"
	statusTemperatureSet    = "temperature_set"
	statusHolidayOn         = "holiday_on"
	statusHolidayOff        = "holiday_off"
	statusScheduleSet       = "schedule_set"
	statusSchedulesCleared  = "schedules_cleared"
	statusWelcomeSet        = "welcome_set"
	statusFaultInjected     = "fault_injected"
	errGetState             = "failed to load state"
	errGetHistory           = "failed to load history"
	errUpdateController     = "failed to update controller"
	errInvalidBodyPref      = "invalid body: "
	errInvalidLimit         = "invalid 'limit'; use a positive integer"
	errScheduledTemperature = "failed to look up scheduled temperature"
)

// logAndJSONError logs err under logKey and writes {"error": userMsg}.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// controllerError maps a failed controller call to a response. A rejected
// setpoint is the caller's fault and answers 422 with the reason.
func (h *Handler) controllerError(c *gin.Context, logKey string, err error) {
	switch {
	case errors.Is(err, heating.ErrTemperatureOutOfRange):
		if h.log != nil {
			h.log.Infow(logKey, "err", err)
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUnknownFault):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, errUpdateController, logKey, err)
	}
}

// respondWithStatusAndState writes the status and, when available, the live state.
func (h *Handler) respondWithStatusAndState(c *gin.Context, status string, extra gin.H) {
	resp := gin.H{"status": status}
	for k, v := range extra {
		resp[k] = v
	}
	st, err := h.services.Monitoring.GetState(c.Request.Context())
	if err == nil {
		resp["state"] = st
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) bindOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return false
	}
	return true
}

// TemperatureRequest sets the setpoint.
type TemperatureRequest struct {
	Temperature *int `json:"temperature" binding:"required" example:"22"`
}

// HolidayRequest enables holiday mode. Dates are stored as given.
type HolidayRequest struct {
	Temperature *int   `json:"temperature" binding:"required" example:"18"`
	Start       string `json:"start" example:"01/08/2024"`
	End         string `json:"end" example:"31/08/2024"`
}

// ScheduleRequest adds or replaces one schedule range.
type ScheduleRequest struct {
	Start       string `json:"start" binding:"required" example:"14:00"`
	End         string `json:"end" binding:"required" example:"17:00"`
	Temperature *int   `json:"temperature" binding:"required" example:"22"`
}

// WelcomeRequest replaces the welcome message.
type WelcomeRequest struct {
	Message string `json:"message" binding:"required" example:"Hi Manoel"`
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": statusOK})
}

// @Summary      Connect to the controller
// @Tags         heating
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/heating/connect [post]
// @Security     BearerAuth
func (h *Handler) connect(c *gin.Context) {
	if err := h.services.Controller.Connect(c.Request.Context()); err != nil {
		h.controllerError(c, "heating_connect_failed", err)
		return
	}
	h.respondWithStatusAndState(c, statusConnected, nil)
}

// @Summary      Disconnect from the controller
// @Tags         heating
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/heating/disconnect [post]
// @Security     BearerAuth
func (h *Handler) disconnect(c *gin.Context) {
	if err := h.services.Controller.Disconnect(c.Request.Context()); err != nil {
		h.controllerError(c, "heating_disconnect_failed", err)
		return
	}
	h.respondWithStatusAndState(c, statusDisconnected, nil)
}

// @Summary      Turn the unit on
// @Tags         heating
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "status, state"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/heating/power/on [post]
// @Security     BearerAuth
func (h *Handler) turnOn(c *gin.Context) {
	if err := h.services.Controller.TurnOn(c.Request.Context()); err != nil {
		h.controllerError(c, "heating_turn_on_failed", err)
		return
	}
	h.respondWithStatusAndState(c, statusPoweredOn, nil)
}

// @Summary      Turn the unit off
// @Tags         heating
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/heating/power/off [post]
// @Security     BearerAuth
func (h *Handler) turnOff(c *gin.Context) {
	if err := h.services.Controller.TurnOff(c.Request.Context()); err != nil {
		h.controllerError(c, "heating_turn_off_failed", err)
		return
	}
	h.respondWithStatusAndState(c, statusPoweredOff, nil)
}

// @Summary      Turn boost mode on
// @Description  Raises the high power consumption warning.
// @Tags         heating
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/heating/boost/on [post]
// @Security     BearerAuth
func (h *Handler) boostOn(c *gin.Context) {
	if err := h.services.Controller.TurnOnBoostMode(c.Request.Context()); err != nil {
		h.controllerError(c, "heating_boost_on_failed", err)
		return
	}
	h.respondWithStatusAndState(c, statusBoostOn, nil)
}

// @Summary      Turn boost mode off
// @Tags         heating
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/heating/boost/off [post]
// @Security     BearerAuth
func (h *Handler) boostOff(c *gin.Context) {
	if err := h.services.Controller.TurnOffBoostMode(c.Request.Context()); err != nil {
		h.controllerError(c, "heating_boost_off_failed", err)
		return
	}
	h.respondWithStatusAndState(c, statusBoostOff, nil)
}

// @Summary      Boost mode and power warning
// @Description  warning is null while boost is off.
// @Tags         heating
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/heating/boost [get]
// @Security     BearerAuth
func (h *Handler) getBoost(c *gin.Context) {
	st, ok := h.loadState(c)
	if !ok {
		return
	}
	var warning *string
	if st.BoostMode {
		warning = &st.PowerWarning
	}
	c.JSON(http.StatusOK, gin.H{"boost_mode": st.BoostMode, "warning": warning})
}

// @Summary      Set temperature
// @Description  Accepts 14..30 inclusive; anything else is rejected with 422 and the setpoint is kept.
// @Tags         heating
// @Accept       json
// @Produce      json
// @Param        body  body      TemperatureRequest  true  "Setpoint"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /api/v1/heating/temperature [put]
// @Security     BearerAuth
func (h *Handler) setTemperature(c *gin.Context) {
	var req TemperatureRequest
	if !h.bindOrBadRequest(c, &req) {
		return
	}
	if err := h.services.Controller.SetTemperature(c.Request.Context(), *req.Temperature); err != nil {
		h.controllerError(c, "heating_set_temperature_failed", err)
		return
	}
	h.respondWithStatusAndState(c, statusTemperatureSet, gin.H{"temperature": *req.Temperature})
}

// @Summary      Setpoint and room temperature
// @Tags         heating
// @Produce      json
// @Success      200  {object}  map[string]int
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/heating/temperature [get]
// @Security     BearerAuth
func (h *Handler) getTemperature(c *gin.Context) {
	st, ok := h.loadState(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"temperature":         st.Temperature,
		"room_temperature":    st.RoomTemperature,
		"default_temperature": st.DefaultTemperature,
	})
}

// @Summary      Display line
// @Tags         heating
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/v1/heating/display [get]
// @Security     BearerAuth
func (h *Handler) getDisplay(c *gin.Context) {
	st, ok := h.loadState(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"display": st.Display})
}

// @Summary      Enable holiday mode
// @Tags         heating
// @Accept       json
// @Produce      json
// @Param        body  body      HolidayRequest  true  "Holiday period"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /api/v1/heating/holiday [post]
// @Security     BearerAuth
func (h *Handler) setHoliday(c *gin.Context) {
	var req HolidayRequest
	if !h.bindOrBadRequest(c, &req) {
		return
	}
	p := service.HolidayParams{Temperature: *req.Temperature, Start: req.Start, End: req.End}
	if err := h.services.Controller.SetHolidayMode(c.Request.Context(), p); err != nil {
		h.controllerError(c, "heating_set_holiday_failed", err)
		return
	}
	h.respondWithStatusAndState(c, statusHolidayOn, nil)
}

// @Summary      Disable holiday mode
// @Description  The setpoint returns to 20.
// @Tags         heating
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/v1/heating/holiday [delete]
// @Security     BearerAuth
func (h *Handler) clearHoliday(c *gin.Context) {
	if err := h.services.Controller.TurnOffHolidayMode(c.Request.Context()); err != nil {
		h.controllerError(c, "heating_clear_holiday_failed", err)
		return
	}
	h.respondWithStatusAndState(c, statusHolidayOff, nil)
}

// @Summary      System mode
// @Tags         heating
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/v1/heating/mode [get]
// @Security     BearerAuth
func (h *Handler) getMode(c *gin.Context) {
	st, ok := h.loadState(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"mode":          st.Mode,
		"holiday_mode":  st.HolidayMode,
		"holiday_start": st.HolidayStart,
		"holiday_end":   st.HolidayEnd,
	})
}

// @Summary      Add a schedule range
// @Description  Times are zero-padded HH:MM. Re-adding the same range replaces its temperature.
// @Tags         schedules
// @Accept       json
// @Produce      json
// @Param        body  body      ScheduleRequest  true  "Schedule range"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/heating/schedules [post]
// @Security     BearerAuth
func (h *Handler) addSchedule(c *gin.Context) {
	var req ScheduleRequest
	if !h.bindOrBadRequest(c, &req) {
		return
	}
	p := service.ScheduleParams{Start: req.Start, End: req.End, Temperature: *req.Temperature}
	if err := h.services.Controller.ConfigureSchedule(c.Request.Context(), p); err != nil {
		h.controllerError(c, "heating_add_schedule_failed", err)
		return
	}
	h.respondWithStatusAndState(c, statusScheduleSet, nil)
}

// @Summary      Remove all schedules
// @Tags         schedules
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/v1/heating/schedules [delete]
// @Security     BearerAuth
func (h *Handler) clearSchedules(c *gin.Context) {
	if err := h.services.Controller.ClearSchedules(c.Request.Context()); err != nil {
		h.controllerError(c, "heating_clear_schedules_failed", err)
		return
	}
	h.respondWithStatusAndState(c, statusSchedulesCleared, nil)
}

// @Summary      List schedules or look one up
// @Description  With ?time=HH:MM returns the scheduled temperature for that time (20 when nothing matches).
// @Tags         schedules
// @Produce      json
// @Param        time  query     string  false  "Time of day, zero-padded HH:MM"  example(16:00)
// @Success      200   {object}  map[string]interface{}
// @Router       /api/v1/heating/schedules [get]
// @Security     BearerAuth
func (h *Handler) getSchedules(c *gin.Context) {
	if at, ok := c.GetQuery("time"); ok {
		t, err := h.services.Controller.ScheduledTemperature(c.Request.Context(), at)
		if err != nil {
			h.logAndJSONError(c, http.StatusInternalServerError, errScheduledTemperature, "heating_scheduled_temperature_failed", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"time": at, "temperature": t})
		return
	}
	st, ok := h.loadState(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(st.Schedules), "schedules": st.Schedules})
}

// @Summary      Set welcome message
// @Tags         heating
// @Accept       json
// @Produce      json
// @Param        body  body      WelcomeRequest  true  "Message"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/heating/welcome [put]
// @Security     BearerAuth
func (h *Handler) setWelcome(c *gin.Context) {
	var req WelcomeRequest
	if !h.bindOrBadRequest(c, &req) {
		return
	}
	if err := h.services.Controller.ConfigureWelcomeMessage(c.Request.Context(), req.Message); err != nil {
		h.controllerError(c, "heating_set_welcome_failed", err)
		return
	}
	h.respondWithStatusAndState(c, statusWelcomeSet, nil)
}

// @Summary      Welcome message
// @Tags         heating
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/v1/heating/welcome [get]
// @Security     BearerAuth
func (h *Handler) getWelcome(c *gin.Context) {
	st, ok := h.loadState(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": st.WelcomeMessage})
}

// @Summary      Inject a fault
// @Tags         faults
// @Produce      json
// @Param        fault  path      string  true  "Fault"  Enums(rt-disconnect,sensor-failure,lan-disconnect)
// @Success      200    {object}  map[string]interface{}
// @Failure      400    {object}  map[string]string
// @Router       /api/v1/heating/faults/{fault} [post]
// @Security     BearerAuth
func (h *Handler) injectFault(c *gin.Context) {
	f := service.Fault(c.Param("fault"))
	if err := h.services.Controller.InjectFault(c.Request.Context(), f); err != nil {
		h.controllerError(c, "heating_inject_fault_failed", err)
		return
	}
	h.respondWithStatusAndState(c, statusFaultInjected, gin.H{"fault": string(f)})
}

// @Summary      Last fault
// @Description  message is null when no fault was ever recorded.
// @Tags         faults
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/v1/heating/error [get]
// @Security     BearerAuth
func (h *Handler) getError(c *gin.Context) {
	st, ok := h.loadState(c)
	if !ok {
		return
	}
	var msg *string
	if st.ErrorMessage != "" {
		msg = &st.ErrorMessage
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

// @Summary      Full controller state
// @Tags         heating
// @Produce      json
// @Success      200  {object}  models.HeatingState
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/heating/state [get]
// @Security     BearerAuth
func (h *Handler) getState(c *gin.Context) {
	st, ok := h.loadState(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, st)
}

// @Summary      Snapshot history
// @Description  Newest first. Defaults to 50 entries.
// @Tags         heating
// @Produce      json
// @Param        limit  query     int  false  "Maximum number of snapshots"  example(20)
// @Success      200    {object}  map[string]interface{}  "count, snapshots"
// @Failure      400    {object}  map[string]string
// @Failure      500    {object}  map[string]string
// @Router       /api/v1/heating/history [get]
// @Security     BearerAuth
func (h *Handler) getHistory(c *gin.Context) {
	limit := 0
	if qs := c.Query("limit"); qs != "" {
		n, err := strconv.Atoi(qs)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidLimit})
			return
		}
		limit = n
	}
	snaps, err := h.services.Monitoring.History(c.Request.Context(), limit)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errGetHistory, "heating_history_failed", err, "limit", limit)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(snaps), "snapshots": snaps})
}

// loadState fetches the live state, answering 500 itself on failure.
func (h *Handler) loadState(c *gin.Context) (models.HeatingState, bool) {
	st, err := h.services.Monitoring.GetState(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errGetState, "heating_get_state_failed", err)
		return models.HeatingState{}, false
	}
	return st, true
}
