package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/philipp01105/avlog/config"
	"github.com/philipp01105/avlog/core"
)

type options struct {
	configPath   string
	level        string
	lineLevel    string
	tag          string
	skipRepeated bool
	color        string
	metricsAddr  string
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "avlog",
		Short: "Pipe stdin through a level-gated logger",
		Long: "avlog reads lines from stdin and logs each one as a completed line,\n" +
			"with an optional [tag @ id] prefix, repeat collapsing and color.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, &opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "yaml config file (AVLOG_* variables override it)")
	f.StringVar(&opts.level, "loglevel", "info", "threshold: quiet, panic, fatal, error, warning, info, verbose, debug, trace or a number")
	f.StringVar(&opts.lineLevel, "line-level", "info", "level each input line is logged at")
	f.StringVar(&opts.tag, "tag", "", "component name printed as [tag @ id]")
	f.BoolVar(&opts.skipRepeated, "skip-repeated", false, "collapse runs of identical lines")
	f.StringVar(&opts.color, "color", "auto", "auto, always or never")
	f.StringVar(&opts.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address, e.g. :9100")

	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("loglevel") {
		cfg.Level = opts.level
	}
	if flags.Changed("skip-repeated") {
		cfg.SkipRepeated = opts.skipRepeated
	}
	if flags.Changed("color") {
		cfg.Color = opts.color
	}

	lineLevel, err := core.ParseLevel(opts.lineLevel)
	if err != nil {
		return fmt.Errorf("--line-level: %w", err)
	}

	var reg prometheus.Registerer
	var srv *http.Server
	if opts.metricsAddr != "" {
		r := prometheus.NewRegistry()
		reg = r
		srv, err = serveMetrics(opts.metricsAddr, r)
		if err != nil {
			return err
		}
	}

	log, err := config.NewLogger(cfg, reg)
	if err != nil {
		return multierr.Append(err, shutdown(srv))
	}

	var tag core.Loggable
	if opts.tag != "" {
		tag = &core.Class{Name: opts.tag}
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		log.Log(tag, lineLevel, "%s\n", scanner.Text())
	}

	err = scanner.Err()
	if err != nil {
		err = fmt.Errorf("read stdin: %w", err)
	}
	return multierr.Combine(err, log.Close(), shutdown(srv))
}

func serveMetrics(addr string, reg *prometheus.Registry) (*http.Server, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			// The listener is gone; metrics stop but logging continues.
			_ = ln.Close()
		}
	}()
	return srv, nil
}

func shutdown(srv *http.Server) error {
	if srv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
