package ratelimit

import (
	"net/http/httptest"
	"testing"
	"time"
)

func TestLimiter_AllowUpToLimit(t *testing.T) {
	l := New(2, time.Minute)
	defer l.Stop()

	if !l.Allow("a") || !l.Allow("a") {
		t.Fatal("first two requests must pass")
	}
	if l.Allow("a") {
		t.Error("third request must be limited")
	}
	if !l.Allow("b") {
		t.Error("keys are limited independently")
	}
	if l.Remaining("a") != 0 {
		t.Errorf("Remaining(a) = %d, want 0", l.Remaining("a"))
	}
}

func TestLimiter_WindowExpires(t *testing.T) {
	l := New(1, time.Minute)
	defer l.Stop()

	now := time.Date(2024, 8, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	if !l.Allow("a") {
		t.Fatal("first request must pass")
	}
	if l.Allow("a") {
		t.Fatal("second request must be limited")
	}

	now = now.Add(61 * time.Second)
	if !l.Allow("a") {
		t.Error("request after window must pass")
	}
}

func TestLimiter_Reset(t *testing.T) {
	l := New(1, time.Minute)
	defer l.Stop()

	l.Allow("a")
	l.Reset("a")
	if !l.Allow("a") {
		t.Error("expected reset key to be allowed")
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name   string
		header map[string]string
		remote string
		want   string
	}{
		{"remote addr", nil, "10.0.0.1:5555", "10.0.0.1"},
		{"remote without port", nil, "10.0.0.1", "10.0.0.1"},
		{"forwarded for", map[string]string{"X-Forwarded-For": "203.0.113.9, 10.0.0.2"}, "10.0.0.1:1", "203.0.113.9"},
		{"real ip", map[string]string{"X-Real-IP": " 198.51.100.4 "}, "10.0.0.1:1", "198.51.100.4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tt.remote
			for k, v := range tt.header {
				r.Header.Set(k, v)
			}
			if got := ClientIP(r); got != tt.want {
				t.Errorf("ClientIP = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoginLimiter_PerUsername(t *testing.T) {
	ll := &LoginLimiter{ip: New(100, time.Minute), user: New(2, time.Minute)}
	defer ll.Stop()

	r := httptest.NewRequest("POST", "/api/auth/login", nil)
	for i := 0; i < 2; i++ {
		if ok, _ := ll.Check(r, "Admin"); !ok {
			t.Fatalf("attempt %d must pass", i+1)
		}
	}
	if ok, reason := ll.Check(r, " admin "); ok || reason == "" {
		t.Error("third attempt for same account must be limited with a reason")
	}

	ll.ResetUser("ADMIN")
	if ok, _ := ll.Check(r, "admin"); !ok {
		t.Error("expected attempts to reset after success")
	}
}

func TestLoginLimiter_PerIP(t *testing.T) {
	ll := &LoginLimiter{ip: New(1, time.Minute), user: New(100, time.Minute)}
	defer ll.Stop()

	r := httptest.NewRequest("POST", "/api/auth/login", nil)
	ll.Check(r, "a")
	if ok, _ := ll.Check(r, "b"); ok {
		t.Error("second attempt from same IP must be limited")
	}
}
