package state_test

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"cssel/state"
)

func TestEnvRoundTrip(t *testing.T) {
	ctx := state.ContextWithEnv(context.Background())

	env := state.EnvFromContext(ctx)
	if env == nil {
		t.Fatal("expected env in context")
	}

	// the same instance is visible through derived contexts
	env.Log = zap.NewNop()
	derived, cancel := context.WithCancel(ctx)
	defer cancel()
	if state.EnvFromContext(derived) != env {
		t.Error("expected the same env instance in derived context")
	}
}

func TestEnvFromContext_PanicsWithoutEnv(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for context without env")
		}
	}()
	state.EnvFromContext(context.Background())
}

func TestEnvUptime(t *testing.T) {
	env := state.EnvFromContext(state.ContextWithEnv(context.Background()))
	if env.Uptime() < 0 {
		t.Error("expected non-negative uptime")
	}
}

func TestRedirectStdLog(t *testing.T) {
	env := state.EnvFromContext(state.ContextWithEnv(context.Background()))

	// nil logger - both calls are no-ops
	env.RedirectStdLog()
	env.RestoreStdLog()

	env.Log = zap.NewNop()
	env.RedirectStdLog()
	env.RestoreStdLog()
}
