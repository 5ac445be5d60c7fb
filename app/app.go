package app

import (
	"context"

	"github.com/urfave/cli/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/lambda-feedback/sampleapp/config"
	"github.com/lambda-feedback/sampleapp/internal/shell"
	"github.com/lambda-feedback/sampleapp/util/conf"
	"github.com/lambda-feedback/sampleapp/util/logging"
)

func New(ctx *cli.Context) (*shell.Shell, error) {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return nil, err
	}

	config, err := conf.GetConfigFromContext[config.Config](ctx.Context)
	if err != nil {
		return nil, err
	}

	return shell.New(log, SharedModule(config)), nil
}

// SharedModule provides the dependencies common to every front
// door: the global config and the stdout access logger.
func SharedModule(config config.Config) fx.Option {
	return fx.Module(
		"shared",
		// provide global config
		fx.Supply(config),
		// provide access logger, flushed on stop
		fx.Provide(NewLifecycleAccessLogger),
	)
}

func NewLifecycleAccessLogger(lc fx.Lifecycle, log *zap.Logger) *logging.AccessLogger {
	access := logging.NewStdoutAccessLogger()
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			if err := access.Sync(); err != nil {
				log.Debug("failed to sync access log", zap.Error(err))
			}
			return nil
		},
	})
	return access
}
