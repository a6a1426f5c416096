// Command pastebin is a minimal paste-sharing application built on the
// wafer request core: handlers registered by name, arguments bound from
// path segments and form fields, pastes persisted in SQLite.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/waferhq/wafer/core/config"
	"github.com/waferhq/wafer/core/dispatch"
	"github.com/waferhq/wafer/core/logger"
	"github.com/waferhq/wafer/core/route"
	"github.com/waferhq/wafer/core/server"
	"github.com/waferhq/wafer/core/session"
	"github.com/waferhq/wafer/core/static"
	"github.com/waferhq/wafer/core/view"
)

// CLI holds the command-line flags. Server timeouts and session tuning come
// from the environment (see core/server.Config and core/session.Config);
// the flags cover what differs between local runs.
type CLI struct {
	Addr      string `kong:"default=':8080',help='Listen address.'"`
	Templates string `kong:"default='templates',help='Directory holding *.html templates.'"`
	Static    string `kong:"default='static',help='Directory served under /static.'"`
	DB        string `kong:"default='pastes.db',help='Path to the SQLite paste database.'"`
	Debug     bool   `kong:"help='Enable debug logging with the development handler.'"`
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("pastebin"),
		kong.UsageOnError(),
		kong.DefaultEnvars("PASTEBIN"),
	)

	logOpts := []logger.Option{logger.WithApp("pastebin")}
	if cli.Debug {
		logOpts = append(logOpts, logger.WithDevelopment(), logger.WithLevel(slog.LevelDebug))
	}
	log := logger.New(logOpts...)

	if err := run(cli, log); err != nil {
		log.Error("fatal", logger.Error(err))
		os.Exit(1)
	}
}

func run(cli CLI, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	renderer, err := view.New(cli.Templates)
	if err != nil {
		return fmt.Errorf("loading templates: %w", err)
	}

	pastes, err := openPasteStore(ctx, cli.DB)
	if err != nil {
		return fmt.Errorf("opening paste store: %w", err)
	}
	defer pastes.Close()

	var sessCfg session.Config
	if err := config.Load(&sessCfg); err != nil {
		return err
	}
	sessions := session.NewStoreFromConfig(sessCfg)
	go sessions.StartSweeper(ctx, sessCfg.SweepInterval)

	app := &pastebin{
		pastes: pastes,
		views:  renderer,
		files:  static.NewDir(cli.Static),
	}

	registry := route.NewRegistry()
	app.register(registry)

	d := dispatch.New(registry, sessions, dispatch.WithLogger(log))

	var srvCfg server.Config
	if err := config.Load(&srvCfg); err != nil {
		return err
	}
	srvCfg.Addr = cli.Addr
	srv, err := server.NewFromConfig(srvCfg, server.WithLogger(log))
	if err != nil {
		return err
	}

	return srv.Run(ctx, d)
}
