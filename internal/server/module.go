package server

import "go.uber.org/fx"

// Module provides the http server for the handlers group and
// binds its listener to the application lifecycle.
func Module(config HttpConfig) fx.Option {
	return fx.Module("server",
		// provide listener config
		fx.Supply(config),
		// provide server, listening on start
		fx.Provide(NewLifecycleServer),
		// force construction, nothing else depends on the server
		fx.Invoke(func(*HttpServer) {}),
	)
}
