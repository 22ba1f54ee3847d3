package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestGetClientIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name       string
		forwarded  string
		realIP     string
		remoteAddr string
		want       string
	}{
		{"forwarded chain wins", "203.0.113.7, 10.0.0.1", "198.51.100.2", "192.0.2.1:4321", "203.0.113.7"},
		{"real ip next", "", "198.51.100.2", "192.0.2.1:4321", "198.51.100.2"},
		{"remote addr port stripped", "", "", "192.0.2.1:4321", "192.0.2.1"},
		{"remote addr without port", "", "", "192.0.2.1", "192.0.2.1"},
	}

	for _, tc := range cases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/", nil)
		c.Request.RemoteAddr = tc.remoteAddr
		if tc.forwarded != "" {
			c.Request.Header.Set("X-Forwarded-For", tc.forwarded)
		}
		if tc.realIP != "" {
			c.Request.Header.Set("X-Real-IP", tc.realIP)
		}

		if got := getClientIP(c); got != tc.want {
			t.Errorf("%s: getClientIP = %q, want %q", tc.name, got, tc.want)
		}
	}
}
