package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestParse_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
jwt:
  secret: test-secret
server:
  port: 8081
rate_limit:
  window: 1m
`)
	conf, err := parse(koanf.New("."), path)
	require.NoError(t, err)

	assert.Equal(t, 8081, conf.Server.Port)
	assert.Equal(t, time.Minute, conf.RateLimit.Window)
	assert.Equal(t, "test-secret", conf.JWT.Secret)
	// untouched keys keep their defaults
	assert.Equal(t, 60, conf.JWT.ExpireMinutes)
	assert.Equal(t, "jwt", conf.JWT.CookieName)
	assert.Equal(t, int64(5<<20), conf.Upload.MaxSize)
	assert.Equal(t, []string{"student.belgiumcampus.ac.za"}, conf.Auth.StudentDomains)
}

func TestParse_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
jwt:
  secret: from-file
`)
	t.Setenv("CL_JWT__SECRET", "from-env")
	t.Setenv("CL_RATE_LIMIT__AUTH_REQUESTS", "5")
	t.Setenv("CL_CORS__ALLOWED_ORIGINS", "https://a.example, https://b.example")

	conf, err := parse(koanf.New("."), path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", conf.JWT.Secret)
	assert.Equal(t, 5, conf.RateLimit.AuthRequests)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, conf.CORS.AllowedOrigins)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *AppConfig)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(c *AppConfig) {},
		},
		{
			name:    "missing secret",
			mutate:  func(c *AppConfig) { c.JWT.Secret = "" },
			wantErr: "jwt.secret",
		},
		{
			name:    "weak bcrypt cost",
			mutate:  func(c *AppConfig) { c.Auth.BcryptCost = 10 },
			wantErr: "bcrypt_cost",
		},
		{
			name:    "unknown driver",
			mutate:  func(c *AppConfig) { c.Database.Driver = "mongo" },
			wantErr: "database.driver",
		},
		{
			name:    "unknown upload backend",
			mutate:  func(c *AppConfig) { c.Upload.Backend = "ftp" },
			wantErr: "upload.backend",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			c.JWT.Secret = "secret"
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
