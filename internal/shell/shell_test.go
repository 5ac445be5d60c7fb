package shell_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/fx"
	"go.uber.org/zap/zaptest"

	"github.com/lambda-feedback/sampleapp/internal/shell"
)

type resource struct {
	ctx context.Context
}

func shutdownOnStart(code int) fx.Option {
	return fx.Invoke(func(lc fx.Lifecycle, shutdowner fx.Shutdowner) {
		lc.Append(fx.Hook{
			OnStart: func(context.Context) error {
				go shutdowner.Shutdown(fx.ExitCode(code))
				return nil
			},
		})
	})
}

func TestShell_Run_CleanExit(t *testing.T) {
	s := shell.New(zaptest.NewLogger(t))

	err := s.Run(context.Background(), shutdownOnStart(0))
	assert.NoError(t, err)
}

func TestShell_Run_ExitCode(t *testing.T) {
	s := shell.New(zaptest.NewLogger(t))

	err := s.Run(context.Background(), shutdownOnStart(3))
	assert.True(t, shell.IsExitError(err))
	assert.Equal(t, 3, shell.ExitCode(err))
}

func TestShell_Run_StartFails(t *testing.T) {
	s := shell.New(zaptest.NewLogger(t))

	failing := fx.Invoke(func(lc fx.Lifecycle) {
		lc.Append(fx.Hook{
			OnStart: func(context.Context) error {
				return assert.AnError
			},
		})
	})

	err := s.Run(context.Background(), failing)
	assert.Equal(t, 1, shell.ExitCode(err))
}

func TestShell_Run_InvalidGraph(t *testing.T) {
	s := shell.New(zaptest.NewLogger(t))

	// nothing provides the resource
	err := s.Run(context.Background(), fx.Invoke(func(*resource) {}))
	assert.Equal(t, 1, shell.ExitCode(err))
}

func TestShell_Run_SuppliesContextAndOptions(t *testing.T) {
	var got *resource

	s := shell.New(zaptest.NewLogger(t),
		fx.Provide(func(ctx context.Context) *resource {
			return &resource{ctx: ctx}
		}),
	)

	err := s.Run(context.Background(),
		fx.Populate(&got),
		shutdownOnStart(0),
	)
	assert.NoError(t, err)
	if assert.NotNil(t, got) {
		assert.NotNil(t, got.ctx)
	}
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, shell.ExitCode(nil))
	assert.Equal(t, 4, shell.ExitCode(shell.NewExitError(4)))
	assert.Equal(t, 1, shell.ExitCode(assert.AnError))
	assert.False(t, shell.IsExitError(assert.AnError))
	assert.False(t, shell.IsExitError(nil))
}
