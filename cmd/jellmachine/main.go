package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mchmarny/jellmachine/pkg/host"
	"github.com/mchmarny/jellmachine/pkg/logger"
	"github.com/mchmarny/jellmachine/pkg/shell"
)

var (
	version = "v0.0.0"  // Set at build time via -ldflags "-X main.version=version"
	commit  = "none"    // Set at build time via -ldflags "-X main.commit=commit"
	date    = "unknown" // Set at build time via -ldflags "-X main.date=date"
)

const envPrefix = "JELL"

func main() {
	os.Exit(execute(context.Background(), os.Args[1:]))
}

func execute(ctx context.Context, args []string) int {
	code := 0

	cmd := newRootCmd(viper.New(), func(ctx context.Context, cfg shell.Config) int {
		return shell.Start(ctx, cfg)
	}, &code)
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	return code
}

// newRootCmd builds the root command. run is invoked with the resolved
// configuration and its result is stored in code.
func newRootCmd(v *viper.Viper, run func(context.Context, shell.Config) int, code *int) *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:           "jellmachine",
		Short:         "Jell Machine desktop application",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(v, configFile); err != nil {
				return err
			}

			logger.SetDefaultLoggerWithLevel("jellmachine", version, v.GetString("log_level"))

			cfg := shell.Config{
				Version:         version,
				AssetDir:        v.GetString("assets_dir"),
				LiveReload:      v.GetBool("live_reload"),
				DiagnosticsPort: v.GetInt("diagnostics_port"),
				Width:           v.GetInt("width"),
				Height:          v.GetInt("height"),
			}

			*code = run(cmd.Context(), cfg)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&configFile, "config", "", "Path to a YAML config file")
	f.String("log-level", "info", "Log level (debug, info, warn, error)")
	f.String("assets", "", "Serve the UI from this directory instead of the embedded assets")
	f.Bool("live-reload", false, "Reload the window when files under --assets change")
	f.Int("diagnostics-port", 0, "Serve /healthz, /metrics and /menu on 127.0.0.1 at this port (0 disables)")
	f.Int("width", host.DefaultWidth, "Initial window width")
	f.Int("height", host.DefaultHeight, "Initial window height")

	for key, flag := range map[string]string{
		"log_level":        "log-level",
		"assets_dir":       "assets",
		"live_reload":      "live-reload",
		"diagnostics_port": "diagnostics-port",
		"width":            "width",
		"height":           "height",
	} {
		_ = v.BindPFlag(key, f.Lookup(flag))
	}

	cmd.SetVersionTemplate(fmt.Sprintf("jellmachine {{.Version}} (commit %s, built %s)\n", commit, date))

	return cmd
}

// loadConfig layers env vars (JELL_*) and an optional config file over flags.
func loadConfig(v *viper.Viper, file string) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if _, ok := os.LookupEnv(logger.EnvVarLogLevel); ok && !v.IsSet("log_level") {
		v.SetDefault("log_level", os.Getenv(logger.EnvVarLogLevel))
	}

	if file == "" {
		return nil
	}

	v.SetConfigFile(file)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config %s: %w", file, err)
	}

	return nil
}
