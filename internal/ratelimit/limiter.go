// Package ratelimit provides best-effort per-key request budgets
package ratelimit

// Limiter decides whether the caller identified by key may proceed
type Limiter interface {
	Allow(key string) bool
}

// Unlimited allows everything; used when limiting is disabled
type Unlimited struct{}

func (Unlimited) Allow(string) bool { return true }
