package standalone

import (
	"go.uber.org/fx"

	"github.com/lambda-feedback/sampleapp/handler"
	"github.com/lambda-feedback/sampleapp/internal/server"
	"github.com/lambda-feedback/sampleapp/util/logging"
)

func Module(config Config) fx.Option {
	return module(config.HttpConfig())
}

func module(httpConfig server.HttpConfig) fx.Option {
	return fx.Module(
		"serve",
		// rename logger for module
		logging.DecorateLogger("serve"),
		// provide handlers
		handler.Module(),
		// provide server
		server.Module(httpConfig),
	)
}
