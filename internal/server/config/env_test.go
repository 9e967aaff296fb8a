package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseEnv_OverridesSetValues(t *testing.T) {
	t.Setenv("ADDRESS", ":9999")
	t.Setenv("DATABASE_URL", "postgres://env/db")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("TOKEN_VALIDITY", "12h")

	c := &Config{}
	c.LoadDefaults()
	parseEnv(c)

	assert.Equal(t, ":9999", c.Address)
	assert.Equal(t, "postgres://env/db", c.DatabaseDSN)
	assert.Equal(t, "env-secret", c.SecretKey)
	assert.Equal(t, 12*time.Hour, c.TokenValidityDuration)
}

func TestParseEnv_UnsetVariablesKeepDefaults(t *testing.T) {
	c := &Config{}
	c.LoadDefaults()
	parseEnv(c)

	assert.Equal(t, ":3000", c.Address)
	assert.Equal(t, 24*time.Hour, c.TokenValidityDuration)
}

func TestParseEnv_InvalidDurationIgnored(t *testing.T) {
	t.Setenv("TOKEN_VALIDITY", "soon")

	c := &Config{}
	c.LoadDefaults()
	parseEnv(c)

	assert.Equal(t, 24*time.Hour, c.TokenValidityDuration)
}
