package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"heating_controller/internal/models"
	"heating_controller/internal/service"

	"github.com/gin-gonic/gin"
)

type mockAuth struct {
	signUpID  int
	signUpErr error
	token     string
	tokenErr  error
	parseID   int
	parseErr  error

	lastUsername string
	lastPassword string
	lastToken    string
}

func (m *mockAuth) SignUp(username, password string) (int, error) {
	m.lastUsername, m.lastPassword = username, password
	return m.signUpID, m.signUpErr
}

func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	m.lastUsername, m.lastPassword = username, password
	return m.token, m.tokenErr
}

func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastToken = token
	return m.parseID, m.parseErr
}

// mockController records the last call and returns err for every mutation.
type mockController struct {
	err      error
	calls    []string
	lastTemp int
	holiday  service.HolidayParams
	schedule service.ScheduleParams
	welcome  string
	fault    service.Fault
	lookupAt string
	lookup   int
}

func (m *mockController) record(name string) error {
	m.calls = append(m.calls, name)
	return m.err
}

func (m *mockController) Connect(context.Context) error { return m.record("Connect") }
func (m *mockController) Disconnect(context.Context) error { return m.record("Disconnect") }
func (m *mockController) TurnOn(context.Context) error { return m.record("TurnOn") }
func (m *mockController) TurnOff(context.Context) error { return m.record("TurnOff") }
func (m *mockController) TurnOnBoostMode(context.Context) error { return m.record("TurnOnBoostMode") }
func (m *mockController) TurnOffBoostMode(context.Context) error { return m.record("TurnOffBoostMode") }
func (m *mockController) TurnOffHolidayMode(context.Context) error {
	return m.record("TurnOffHolidayMode")
}
func (m *mockController) ClearSchedules(context.Context) error { return m.record("ClearSchedules") }

func (m *mockController) SetTemperature(_ context.Context, t int) error {
	m.lastTemp = t
	return m.record("SetTemperature")
}

func (m *mockController) SetHolidayMode(_ context.Context, p service.HolidayParams) error {
	m.holiday = p
	return m.record("SetHolidayMode")
}

func (m *mockController) ConfigureSchedule(_ context.Context, p service.ScheduleParams) error {
	m.schedule = p
	return m.record("ConfigureSchedule")
}

func (m *mockController) ScheduledTemperature(_ context.Context, at string) (int, error) {
	m.lookupAt = at
	return m.lookup, nil
}

func (m *mockController) ConfigureWelcomeMessage(_ context.Context, msg string) error {
	m.welcome = msg
	return m.record("ConfigureWelcomeMessage")
}

func (m *mockController) InjectFault(_ context.Context, f service.Fault) error {
	m.fault = f
	return m.record("InjectFault")
}

type mockMonitoring struct {
	state     models.HeatingState
	err       error
	history   []models.HeatingState
	histErr   error
	lastLimit int
}

func (m *mockMonitoring) GetState(context.Context) (models.HeatingState, error) {
	return m.state, m.err
}

func (m *mockMonitoring) History(_ context.Context, limit int) ([]models.HeatingState, error) {
	m.lastLimit = limit
	return m.history, m.histErr
}

type mockEventLog struct {
	resp []models.HeatingEvent
	err  error
	last service.LogFilter
}

func (m *mockEventLog) List(_ context.Context, f service.LogFilter) ([]models.HeatingEvent, error) {
	m.last = f
	return m.resp, m.err
}

func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewHandler(s, nil).InitRoutes()
}

// do sends an authenticated request when token is non-empty.
func do(r http.Handler, method, target, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}
