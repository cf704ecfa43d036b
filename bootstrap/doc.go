// Package bootstrap runs a captionkit binary through a uniform lifecycle:
// validate config, initialize logging, start components, run hooks, execute
// the task, then shut everything down in reverse order.
//
//	app, err := bootstrap.NewApp(cfg)
//	app.RegisterComponent(observability.NewTelemetry(cfg.Telemetry))
//	app.RegisterComponent(registry)
//	err = app.RunTask(ctx, func(ctx context.Context) error {
//	    return feed(ctx, registry, os.Stdin)
//	})
//
// SIGINT and SIGTERM cancel the task context.
package bootstrap
