package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestLoadConfig_DefaultsAndEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("JWT_SECRET_KEY", testSecret)
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("STATS_CACHE_TTL", "30s")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, 6543, cfg.DB.Port)
	assert.Equal(t, 8090, cfg.Server.Port)
	assert.Equal(t, 20*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Stats.CacheTTL)
	assert.Equal(t, 24*time.Hour, cfg.JWT.TTL)
	assert.Equal(t, "session", cfg.JWT.CookieName)
	assert.Equal(t, "admin@example.com", cfg.Admin.Username)
	assert.Empty(t, cfg.Admin.Password)
	assert.True(t, cfg.DB.AutoMigrate)
}

func TestLoadConfig_RejectsShortSecret(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("JWT_SECRET_KEY", "short")

	cfg, err := LoadConfig()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "jwt.secret_key")
}

func TestConfig_GetDSN(t *testing.T) {
	cfg := &Config{DB: DBConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "quiz",
		Password: "p@ss word",
		DBName:   "quizmaster",
		SSLMode:  "disable",
	}}

	dsn := cfg.GetDSN()
	assert.True(t, strings.HasPrefix(dsn, "postgres://quiz:"))
	assert.Contains(t, dsn, "@localhost:5432/quizmaster?sslmode=disable")
	assert.NotContains(t, dsn, "p@ss word")
}
