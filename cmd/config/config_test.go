package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PENDAFTARAN_API_URL", "")
	t.Setenv("REDIRECT_DELAY", "")
	t.Setenv("REDIS_PORT", "not-a-number")
	t.Setenv("DISPLAY_TIMEZONE", "")

	cfg := Load()

	assert.Equal(t, "https://gin-connect-production-pkpl.up.railway.app", cfg.API.PendaftaranURL)
	assert.Equal(t, 2*time.Second, cfg.Form.RedirectDelay)
	assert.Equal(t, 6379, cfg.Redis.Port)
	assert.Equal(t, "Asia/Jakarta", cfg.Form.DisplayLocation.String())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("NILAI_API_URL", "http://localhost:9000")
	t.Setenv("REDIRECT_DELAY", "500ms")
	t.Setenv("RABBITMQ_HOST", "mq")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "http://localhost:9000", cfg.API.NilaiURL)
	assert.Equal(t, 500*time.Millisecond, cfg.Form.RedirectDelay)
	assert.Equal(t, "mq", cfg.RabbitMQ.Host)
}

func TestLoad_DisplayTimezone(t *testing.T) {
	t.Setenv("DISPLAY_TIMEZONE", "Asia/Makassar")
	assert.Equal(t, "Asia/Makassar", Load().Form.DisplayLocation.String())

	t.Setenv("DISPLAY_TIMEZONE", "Not/AZone")
	assert.Equal(t, "Asia/Jakarta", Load().Form.DisplayLocation.String())
}
