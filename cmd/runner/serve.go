package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/metrics"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/ratelimit"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagMetricsAddr string
	flagRate        float64
	flagBurst       int
	flagServeConfig string
	flagVerbose     bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the runner SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own game. Scores are stored per-server
(all users share the same leaderboard). New connections are rate limited
per remote IP.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.arcade/host_key

With --metrics set, Prometheus metrics are served on /metrics and a
health check on /healthz.

Examples:
  runner serve                           # Listen on :23234 with auto-generated key
  runner serve --ssh :2222               # Listen on port 2222
  runner serve --metrics :9090           # Also expose metrics
  runner serve --rate 1 --burst 5        # Allow more frequent reconnects

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	defaults := ratelimit.DefaultConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagMetricsAddr, "metrics", "", "Metrics HTTP address, e.g. :9090 (disabled if empty)")
	serveCmd.Flags().Float64Var(&flagRate, "rate", defaults.PerSecond, "New connections per second allowed per IP")
	serveCmd.Flags().IntVar(&flagBurst, "burst", defaults.Burst, "Connection burst allowed per IP")
	serveCmd.Flags().StringVar(&flagServeConfig, "config", "", "Path to custom runner config YAML")
	serveCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Log every session at debug level")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "runner-ssh",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	runnerCfg, err := config.LoadRunner(flagServeConfig)
	if err != nil {
		return err
	}

	limitCfg := ratelimit.DefaultConfig()
	limitCfg.PerSecond = flagRate
	limitCfg.Burst = flagBurst
	sshLimiter := ratelimit.New(limitCfg)
	defer sshLimiter.Stop()

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Runner:      runnerCfg,
		TickRate:    flagFPS,
		Limiter:     sshLimiter,
		Logger:      logger,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.ListenAndServe(ctx)
	})

	if flagMetricsAddr != "" {
		// Scrapers poll often, so they get their own, looser limiter.
		httpLimiter := ratelimit.New(ratelimit.Config{PerSecond: 20, Burst: 40, CleanupInterval: limitCfg.CleanupInterval})
		defer httpLimiter.Stop()

		router := metrics.NewRouter(metrics.RouterConfig{Limiter: httpLimiter, DisableLogging: !flagVerbose})
		g.Go(func() error {
			return metrics.Serve(ctx, flagMetricsAddr, router, logger.WithPrefix("runner-metrics"))
		})
	}

	logger.Info("Connect with: ssh localhost -p <port>", "address", server.Addr())
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
