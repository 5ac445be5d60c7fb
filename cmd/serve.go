package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/lambda-feedback/sampleapp/app"
	"github.com/lambda-feedback/sampleapp/app/standalone"
	"github.com/lambda-feedback/sampleapp/util/conf"
	"github.com/lambda-feedback/sampleapp/util/logging"
)

var (
	serveCmdDescription = `The serve command binds port 8080 on all interfaces and
answers every request with an empty 200 response, logging
the address of each peer to stdout.

The command blocks until the process receives SIGINT or
SIGTERM, then closes the listener.`
	serveCmd = &cli.Command{
		Name:        "serve",
		Usage:       "Start the http server on port 8080.",
		Description: serveCmdDescription,
		Action:      serveAction,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:     "h2c",
				Usage:    "Enable HTTP/2 cleartext upgrade.",
				Value:    false,
				Category: "http",
				EnvVars:  []string{envPrefix + "H2C"},
			},
		},
	}
)

func serveAction(ctx *cli.Context) error {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return err
	}

	app, err := app.New(ctx)
	if err != nil {
		return err
	}

	cfg, err := conf.Parse[standalone.Config](conf.ParseOptions{
		Log:       log,
		Cli:       ctx,
		EnvPrefix: envPrefix,
		FileName:  ctx.Path("config"),
	})
	if err != nil {
		return err
	}

	log.Info("starting http server")

	return app.Run(ctx.Context, standalone.Module(cfg))
}

func init() {
	// the root app serves when invoked without a command
	rootApp.Flags = append(rootApp.Flags, serveCmd.Flags...)

	rootApp.Commands = append(rootApp.Commands, serveCmd)
}
