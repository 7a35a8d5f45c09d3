package core

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIPRateLimiterBurstThenReject(t *testing.T) {
	rl := NewIPRateLimiter(RateLimitConfig{RequestsPerSecond: 0.001, Burst: 2})
	defer rl.Stop()

	assert.True(t, rl.Allow("1.2.3.4"))
	assert.True(t, rl.Allow("1.2.3.4"))
	assert.False(t, rl.Allow("1.2.3.4"))
	// Other IPs have their own bucket
	assert.True(t, rl.Allow("5.6.7.8"))
}

func TestIPRateLimiterCleanupDropsIdle(t *testing.T) {
	rl := NewIPRateLimiter(RateLimitConfig{RequestsPerSecond: 0.001, Burst: 1, CleanupInterval: time.Minute})
	defer rl.Stop()

	assert.True(t, rl.Allow("1.2.3.4"))
	assert.False(t, rl.Allow("1.2.3.4"))

	rl.cleanup(time.Now().Add(3 * time.Minute))
	assert.True(t, rl.Allow("1.2.3.4"))
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"remote addr", nil, "10.0.0.1:5555", "10.0.0.1"},
		{"forwarded list", map[string]string{"X-Forwarded-For": "1.1.1.1, 2.2.2.2"}, "10.0.0.1:5555", "1.1.1.1"},
		{"forwarded single", map[string]string{"X-Forwarded-For": " 3.3.3.3 "}, "10.0.0.1:5555", "3.3.3.3"},
		{"real ip", map[string]string{"X-Real-IP": "4.4.4.4"}, "10.0.0.1:5555", "4.4.4.4"},
		{"no port", nil, "10.0.0.2", "10.0.0.2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, GetClientIP(r))
		})
	}
}
