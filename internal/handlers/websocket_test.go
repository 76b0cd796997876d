package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"heating_controller/internal/models"
	"heating_controller/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInterval(t *testing.T) {
	h := NewHandler(&service.Service{}, nil)

	cases := []struct {
		query string
		want  time.Duration
	}{
		{"", defaultInterval},
		{"interval=200ms", 200 * time.Millisecond},
		{"interval_ms=150", 150 * time.Millisecond},
		{"interval=20s", defaultInterval},
		{"interval_ms=20000", defaultInterval},
		{"interval=-1s", defaultInterval},
		{"interval=bogus", defaultInterval},
		{"interval_ms=NaN", defaultInterval},
		{"interval=2s&interval_ms=150", 2 * time.Second},
		{"interval=bogus&interval_ms=250", 250 * time.Millisecond},
	}
	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/ws?"+tc.query, nil)
			assert.Equal(t, tc.want, h.parseInterval(c))
		})
	}
}

type wsFrame struct {
	Type  string          `json:"type"`
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

func dialStream(t *testing.T, mon *mockMonitoring, query string) *websocket.Conn {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ws", NewHandler(&service.Service{Monitoring: mon}, nil).wsConnect)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	u.Scheme = "ws"
	u.Path = "/ws"
	u.RawQuery = query

	dialer := websocket.Dialer{HandshakeTimeout: 2 * time.Second}
	conn, _, err := dialer.Dial(u.String(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestWebSocket_StreamsState(t *testing.T) {
	mon := &mockMonitoring{state: models.HeatingState{
		PowerOn:     true,
		Temperature: 23,
		Display:     "Temperature: 23",
		Mode:        "Normal",
	}}
	conn := dialStream(t, mon, "interval_ms=20")

	for i := 0; i < 2; i++ {
		_ = conn.SetReadDeadline(time.Now().Add(time.Second))
		var f wsFrame
		require.NoError(t, conn.ReadJSON(&f), "frame %d", i)
		require.Equal(t, wsTypeState, f.Type)

		var st models.HeatingState
		require.NoError(t, json.Unmarshal(f.Data, &st))
		assert.True(t, st.PowerOn)
		assert.Equal(t, 23, st.Temperature)
		assert.Equal(t, "Temperature: 23", st.Display)
	}
}

func TestWebSocket_StateErrorSendsErrorFrameAndCloses(t *testing.T) {
	conn := dialStream(t, &mockMonitoring{err: errors.New("boom")}, "")

	_ = conn.SetReadDeadline(time.Now().Add(time.Second))
	var f wsFrame
	require.NoError(t, conn.ReadJSON(&f))
	assert.Equal(t, wsTypeError, f.Type)
	assert.Equal(t, errGetState, f.Error)

	_ = conn.SetReadDeadline(time.Now().Add(500 * time.Millisecond))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err, "connection should be closed")
}
