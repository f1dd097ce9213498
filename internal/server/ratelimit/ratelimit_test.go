package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		Whitelist:     make(map[string]bool),
		Blacklist:     make(map[string]bool),
		EndpointConfigs: []EndpointConfig{
			{Path: "/match/llm", Method: "POST", Limit: 2, Window: time.Hour, Burst: 2},
		},
	}
}

func TestLimiter_AllowsWithinBurst(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	allowed, info := limiter.Allow("1.2.3.4", "/match/llm", "POST")
	assert.True(t, allowed)
	assert.Equal(t, 2, info.Limit)

	allowed, _ = limiter.Allow("1.2.3.4", "/match/llm", "POST")
	assert.True(t, allowed)
}

func TestLimiter_BlocksOverBurst(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	limiter.Allow("1.2.3.4", "/match/llm", "POST")
	limiter.Allow("1.2.3.4", "/match/llm", "POST")

	allowed, info := limiter.Allow("1.2.3.4", "/match/llm", "POST")
	assert.False(t, allowed)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	limiter.Allow("1.2.3.4", "/match/llm", "POST")
	limiter.Allow("1.2.3.4", "/match/llm", "POST")

	allowed, _ := limiter.Allow("5.6.7.8", "/match/llm", "POST")
	assert.True(t, allowed)
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := limiter.Allow("1.2.3.4", "/match/llm", "POST")
		require.True(t, allowed)
	}
}

func TestLimiter_Whitelist(t *testing.T) {
	config := testConfig()
	config.Whitelist["9.9.9.9"] = true
	limiter := NewLimiter(config)
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		allowed, _ := limiter.Allow("9.9.9.9", "/match/llm", "POST")
		require.True(t, allowed)
	}
}

func TestLimiter_Blacklist(t *testing.T) {
	config := testConfig()
	config.Blacklist["6.6.6.6"] = true
	limiter := NewLimiter(config)
	defer limiter.Stop()

	allowed, _ := limiter.Allow("6.6.6.6", "/health", "POST")
	assert.False(t, allowed)
}

func TestMatchEndpoint_HealthUnlimited(t *testing.T) {
	config := MatchEndpoint("/health", "GET", DefaultEndpointConfigs())
	require.NotNil(t, config)
	assert.Equal(t, 0, config.Limit)
}

func TestMatchEndpoint_ExactMatch(t *testing.T) {
	config := MatchEndpoint("/match/llm", "POST", DefaultEndpointConfigs())
	require.NotNil(t, config)
	assert.Equal(t, 30, config.Limit)
}

func TestMatchEndpoint_NoMatch(t *testing.T) {
	assert.Nil(t, MatchEndpoint("/matches", "GET", DefaultEndpointConfigs()))
}

func TestLoadConfig_Defaults(t *testing.T) {
	config := LoadConfig()
	assert.True(t, config.Enabled)
	assert.Equal(t, 1000, config.DefaultLimit)
	assert.NotEmpty(t, config.EndpointConfigs)
}

func TestParseIPList(t *testing.T) {
	list := parseIPList("1.2.3.4, 5.6.7.8 ,")
	assert.True(t, list["1.2.3.4"])
	assert.True(t, list["5.6.7.8"])
	assert.Len(t, list, 2)
}
