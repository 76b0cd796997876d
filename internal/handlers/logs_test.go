package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"heating_controller/internal/models"
	"heating_controller/internal/service"
)

func newLogsRouter(el *mockEventLog) http.Handler {
	return newTestRouter(&service.Service{
		Authorization: &mockAuth{parseID: 1},
		EventLog:      el,
	})
}

func TestGetLogs_ParsesFilter(t *testing.T) {
	cases := []struct {
		name     string
		query    string
		wantFrom time.Time
		wantTo   time.Time
		wantType string
	}{
		{"no filter", "", time.Time{}, time.Time{}, ""},
		{"date only to is end of day", "?from=2024-08-01&to=2024-08-01",
			mustTime("2024-08-01T00:00:00Z"), mustTime("2024-08-01T23:59:59.999999999Z"), ""},
		{"rfc3339 with offset", "?from=2024-08-01T12:00:00%2B02:00",
			mustTime("2024-08-01T10:00:00Z"), time.Time{}, ""},
		{"datetime", "?to=2024-08-01%2010:30:00", time.Time{}, mustTime("2024-08-01T10:30:00Z"), ""},
		{"type passed through", "?type=fault", time.Time{}, time.Time{}, "fault"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			el := &mockEventLog{}
			w := do(newLogsRouter(el), http.MethodGet, "/api/v1/logs/"+tc.query, "valid", "")
			if w.Code != http.StatusOK {
				t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
			}
			if !el.last.From.Equal(tc.wantFrom) || !el.last.To.Equal(tc.wantTo) || el.last.Type != tc.wantType {
				t.Fatalf("filter = %+v", el.last)
			}
		})
	}
}

func TestGetLogs_BadQuery(t *testing.T) {
	for _, q := range []string{"?from=yesterday", "?to=31/08/2024", "?from=2024-08-02&to=2024-08-01"} {
		el := &mockEventLog{}
		w := do(newLogsRouter(el), http.MethodGet, "/api/v1/logs/"+q, "valid", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: status=%d", q, w.Code)
		}
	}
}

func TestGetLogs_Response(t *testing.T) {
	el := &mockEventLog{resp: []models.HeatingEvent{
		{EventID: "a", OccurredAt: mustTime("2024-08-01T10:00:00Z"), Type: models.EventPowerOn, Description: "System turned on"},
		{EventID: "b", OccurredAt: mustTime("2024-08-01T10:01:00Z"), Type: models.EventFault, Description: "RT disconnected"},
	}}
	w := do(newLogsRouter(el), http.MethodGet, "/api/v1/logs/", "valid", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	var out struct {
		Count  int                   `json:"count"`
		Events []models.HeatingEvent `json:"events"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out.Count != 2 || out.Events[1].Type != models.EventFault {
		t.Fatalf("unexpected body: %+v", out)
	}
}

func TestGetLogs_ServiceError(t *testing.T) {
	w := do(newLogsRouter(&mockEventLog{err: errors.New("boom")}), http.MethodGet, "/api/v1/logs/", "valid", "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d", w.Code)
	}
}
