package main

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type envKey struct{}

// env keeps what every subcommand needs in a single place.
type env struct {
	log      *zap.Logger
	closeLog func() error
	start    time.Time
}

func envFromContext(ctx context.Context) *env {
	if e, ok := ctx.Value(envKey{}).(*env); ok {
		return e
	}
	// this should never happen
	panic("env not found in context")
}

func contextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, &env{log: zap.NewNop(), start: time.Now()})
}

func (e *env) uptime() time.Duration {
	return time.Since(e.start)
}
