// Package apptest builds application dependencies backed by a private sqlite
// database, a temp upload dir and the simulated assistant.
package apptest

import (
	"context"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/config"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/app"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/logger"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/middleware"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/testutils"
)

const TestSecret = "test-secret-do-not-use-in-production"

// Config defaults suitable for tests; mutate before calling NewDeps
func Config(t *testing.T) *config.AppConfig {
	t.Helper()
	cfg := config.Default()
	cfg.Server.Mode = gin.TestMode
	cfg.JWT.Secret = TestSecret
	cfg.Upload.Backend = "disk"
	cfg.Upload.Dir = t.TempDir()
	cfg.RateLimit.Requests = 10000
	cfg.RateLimit.AuthRequests = 10000
	cfg.Assistant.APIKey = ""
	cfg.Assistant.Timeout = time.Second
	cfg.Kafka.Enabled = false
	cfg.Smtp.Enabled = false
	return cfg
}

// NewDeps builds deps over a fresh database. Pending notifications are
// drained on cleanup.
func NewDeps(t *testing.T, cfg *config.AppConfig) *app.Deps {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if cfg == nil {
		cfg = Config(t)
	}

	db := testutils.SetupTestDB(t)
	deps, closeFn, err := app.Build(context.Background(), cfg, db, nil, logger.Nop())
	if err != nil {
		t.Fatalf("Failed to build deps: %v", err)
	}
	t.Cleanup(closeFn)
	return deps
}

// Token issues a session token for userID, for use as a cookie or bearer header
func Token(t *testing.T, deps *app.Deps, userID uint, role string) string {
	t.Helper()
	tok, _, err := deps.Tokens.Issue(userID, role)
	if err != nil {
		t.Fatalf("Failed to issue token: %v", err)
	}
	return tok
}

// Router mounts one route module under /api the way the main router does
func Router(deps *app.Deps, register func(*gin.RouterGroup, *app.Deps)) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery())
	register(r.Group("/api"), deps)
	return r
}
