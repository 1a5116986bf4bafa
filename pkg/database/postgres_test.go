package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDSN(t *testing.T) {
	tests := []struct {
		name string
		cfg  PostgresConfig
		want string
	}{
		{
			name: "ssl disabled",
			cfg:  PostgresConfig{Host: "db", Port: 5432, Username: "u", Password: "p", Database: "campus"},
			want: "host=db user=u password=p dbname=campus port=5432 sslmode=disable",
		},
		{
			name: "ssl required",
			cfg:  PostgresConfig{Host: "db", Port: 6543, Username: "u", Password: "p", Database: "campus", SSLMode: true},
			want: "host=db user=u password=p dbname=campus port=6543 sslmode=require",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, buildDSN(&tt.cfg))
		})
	}
}

func TestSetDefaults(t *testing.T) {
	cfg := &PostgresConfig{}
	setDefaults(cfg)

	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 5432, cfg.Port)
	assert.Equal(t, 100, cfg.MaxOpenConns)
	assert.Equal(t, time.Hour, cfg.ConnMaxLifetime)
}

func TestInitSQLite(t *testing.T) {
	db, err := InitSQLite(&SQLiteConfig{DSN: "file:pkgdb?mode=memory&cache=shared", LogLevel: "silent"})
	require.NoError(t, err)

	var one int
	require.NoError(t, db.Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)

	_, err = InitSQLite(&SQLiteConfig{})
	assert.Error(t, err)
}
