package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"heating_controller/internal/service"

	"github.com/gin-gonic/gin"
)

func newSecureRouter(auth *mockAuth) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(&service.Service{Authorization: auth}, nil)
	r.GET("/secure", h.userIdMiddleware, func(c *gin.Context) {
		uid, _ := c.Get(userIDKey)
		c.JSON(http.StatusOK, gin.H{"user_id": uid})
	})
	return r
}

func TestUserIDMiddleware_Rejects(t *testing.T) {
	cases := []struct {
		name     string
		header   string
		parseErr error
		wantMsg  string
	}{
		{"missing header", "", nil, "missing Authorization header"},
		{"wrong scheme", "Token abc", nil, "invalid Authorization header format"},
		{"bearer without token", "Bearer", nil, "invalid Authorization header format"},
		{"bearer with empty token", "Bearer ", nil, "invalid Authorization header format"},
		{"lowercase scheme", "bearer abc", nil, "invalid Authorization header format"},
		{"token rejected", "Bearer expired", errors.New("expired"), "invalid or expired token"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newSecureRouter(&mockAuth{parseErr: tc.parseErr})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/secure", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			r.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
			}
			var out map[string]string
			_ = json.Unmarshal(w.Body.Bytes(), &out)
			if out["error"] != tc.wantMsg {
				t.Fatalf("error=%q want %q", out["error"], tc.wantMsg)
			}
		})
	}
}

func TestUserIDMiddleware_StoresUserID(t *testing.T) {
	auth := &mockAuth{parseID: 123}
	r := newSecureRouter(auth)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if auth.lastToken != "good-token" {
		t.Fatalf("ParseToken got %q", auth.lastToken)
	}
	var out struct {
		UserID int `json:"user_id"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out.UserID != 123 {
		t.Fatalf("user_id=%d", out.UserID)
	}
}
