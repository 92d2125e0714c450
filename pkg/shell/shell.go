// Package shell bootstraps the Jell Machine desktop application: it builds
// the native menu, wires the menu-event handler and the UI procedures into
// the host runtime, and runs the host event loop.
package shell

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/mchmarny/jellmachine/frontend"
	"github.com/mchmarny/jellmachine/pkg/host"
	"github.com/mchmarny/jellmachine/pkg/metric"
	"github.com/mchmarny/jellmachine/pkg/server"
)

// Config holds the runtime settings for the shell.
type Config struct {
	// Version is shown in the About dialog and the menu description.
	Version string

	// AssetDir serves the UI from disk instead of the embedded assets.
	AssetDir string

	// LiveReload reloads the window when files under AssetDir change.
	LiveReload bool

	// DiagnosticsPort enables the loopback diagnostics server when positive.
	DiagnosticsPort int

	// Width and Height set the initial window size.
	Width  int
	Height int
}

// Runtime is the host the shell runs on.
type Runtime interface {
	host.Builder
	host.ProcessController

	// Window returns the main window.
	Window() host.Window

	// ExitCode returns the code requested through Exit.
	ExitCode() int
}

// Start runs the application on the Wails host and returns the process
// exit code: the code requested on quit, or 1 when the host fails to start.
func Start(ctx context.Context, cfg Config) int {
	assets, err := cfg.assets()
	if err != nil {
		slog.Error("failed to load assets", "dir", cfg.AssetDir, "error", err)
		return 1
	}

	rt := host.NewWails(
		host.WithTitle(AppName),
		host.WithVersion(cfg.Version),
		host.WithSize(cfg.Width, cfg.Height),
		host.WithAssets(assets),
		host.WithLogger(slog.Default()),
	)

	return Run(ctx, cfg, rt)
}

// Run wires the menu, handler and procedures into rt, starts background
// services, and blocks in the host loop.
func Run(ctx context.Context, cfg Config, rt Runtime) int {
	reg := prometheus.NewRegistry()
	events := metric.NewCounterWithRegistry(reg, "menu_events_total",
		"Menu selections by item id.", "id")
	invocations := metric.NewCounterWithRegistry(reg, "procedure_invocations_total",
		"UI procedure calls by name.", "name")

	m := NewMenu(AppName, cfg.Version)
	handler := NewHandler(rt, events)
	commands := NewCommands(rt, invocations)

	rt.Menu(m).OnMenuEvent(handler).Bind(commands)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gCtx := errgroup.WithContext(ctx)

	if cfg.DiagnosticsPort > 0 {
		srv := server.New(
			server.WithPort(cfg.DiagnosticsPort),
			server.WithSimpleHealth(),
			server.WithMetrics(reg),
			server.WithHandler("/menu", m.Handler()),
		)
		g.Go(func() error {
			return srv.Serve(gCtx)
		})
	}

	if cfg.LiveReload && cfg.AssetDir != "" {
		watcher := NewAssetWatcher(cfg.AssetDir, DefaultDebounce, func() {
			err := handler.OnMenuEvent(host.MenuEvent{ID: ReloadID, Window: rt.Window()})
			if err != nil {
				slog.Warn("live reload failed", "error", err)
			}
		})
		g.Go(func() error {
			return watcher.Run(gCtx)
		})
	}

	slog.Info("starting application", "name", AppName, "procedures", host.ProcedureNames(commands))

	runErr := rt.Run()

	cancel()
	if err := g.Wait(); err != nil {
		slog.Error("background service failed", "error", err)
	}

	if runErr != nil {
		slog.Error("error while running application", "error", runErr)
		return 1
	}

	code := rt.ExitCode()
	slog.Info("application exited", "code", code)

	return code
}

func (c Config) assets() (fs.FS, error) {
	if c.AssetDir == "" {
		return frontend.FS()
	}

	info, err := os.Stat(c.AssetDir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", c.AssetDir)
	}

	return os.DirFS(c.AssetDir), nil
}
