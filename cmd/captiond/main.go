// Command captiond renders live captions in the terminal from a JSON-lines
// stream of session, settings and transcription envelopes read on stdin.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/kbukum/captionkit/bootstrap"
	"github.com/kbukum/captionkit/caption"
	"github.com/kbukum/captionkit/config"
	"github.com/kbukum/captionkit/display"
	"github.com/kbukum/captionkit/logger"
	"github.com/kbukum/captionkit/observability"
	"github.com/kbukum/captionkit/version"
)

const serviceName = "captiond"

func main() {
	configFile := flag.String("config", "", "path to config.yml (searched when empty)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(serviceName, version.Get())
		return
	}

	if err := run(context.Background(), *configFile); err != nil {
		logger.Error("captiond failed", logger.Fields(logger.FieldError, err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, configFile string) error {
	opts := []config.LoaderOption{config.WithEnvPrefix("CAPTIOND")}
	if configFile != "" {
		opts = append(opts, config.WithConfigFile(configFile))
	}
	cfg, err := config.Load[Config](serviceName, opts...)
	if err != nil {
		return err
	}
	if cfg.Version == "" {
		cfg.Version = version.Get().Short()
	}

	app, err := bootstrap.NewApp(cfg)
	if err != nil {
		return err
	}
	app.Logger.Debug("build info", version.Get().Fields())

	// Instruments created on the global meter follow the provider that
	// telemetry installs on Start.
	metrics, err := observability.NewMetrics(observability.Meter("github.com/kbukum/captionkit/caption"))
	if err != nil {
		return err
	}
	reg, err := caption.NewRegistry(cfg.Caption, display.NewTerminalSink(os.Stdout),
		caption.WithLogger(app.Logger),
		caption.WithMetrics(metrics),
	)
	if err != nil {
		return err
	}

	if err := app.RegisterComponent(observability.NewTelemetry(cfg.Telemetry)); err != nil {
		return err
	}
	if err := app.RegisterComponent(reg); err != nil {
		return err
	}

	d := &dispatcher{reg: reg, log: app.Logger.WithComponent("input")}
	return app.RunTask(ctx, func(ctx context.Context) error {
		return d.run(ctx, os.Stdin)
	})
}
