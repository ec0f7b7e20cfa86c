package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hkbb/bnb"
	"github.com/katalvlaran/hkbb/config"
	"github.com/katalvlaran/hkbb/metrics"
	"github.com/katalvlaran/hkbb/tsplib"
)

type solveFlags struct {
	tour        string
	config      string
	nodeLimit   int
	workers     int
	seed        bool
	timeout     time.Duration
	logLevel    string
	metricsAddr string
}

func newSolveCmd() *cobra.Command {
	var f solveFlags
	cmd := &cobra.Command{
		Use:   "solve <file.tsp>",
		Short: "Solve a TSPLIB instance and report the optimal tour length",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.resolve(cmd)
			if err != nil {
				return err
			}

			return runSolve(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], f.tour, cfg)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.tour, "tour", "", "write the tour in TSPLIB format to this file (- for stdout)")
	fl.StringVar(&f.config, "config", "", "YAML config file")
	fl.IntVar(&f.nodeLimit, "node-limit", 0, "stop after this many nodes (0 = unlimited)")
	fl.IntVar(&f.workers, "workers", 0, "bound sibling subproblems concurrently")
	fl.BoolVar(&f.seed, "seed-tour", false, "start from a nearest-neighbour + 2-opt tour")
	fl.DurationVar(&f.timeout, "timeout", 0, "stop after this long (0 = no limit)")
	fl.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")
	fl.StringVar(&f.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")

	return cmd
}

// resolve loads the config file and applies explicitly set flags on top.
func (f *solveFlags) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if f.config != "" {
		var err error
		if cfg, err = config.Load(f.config); err != nil {
			return cfg, err
		}
	}
	fl := cmd.Flags()
	if fl.Changed("node-limit") {
		cfg.Search.NodeLimit = f.nodeLimit
	}
	if fl.Changed("workers") {
		cfg.Search.Workers = f.workers
	}
	if fl.Changed("seed-tour") {
		cfg.Search.SeedTour = f.seed
	}
	if fl.Changed("timeout") {
		cfg.Search.Timeout = f.timeout
	}
	if fl.Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if fl.Changed("metrics-addr") {
		cfg.Metrics.Addr = f.metricsAddr
	}

	return cfg, cfg.Validate()
}

func runSolve(ctx context.Context, stdout, stderr io.Writer, path, tourPath string, cfg config.Config) error {
	log := cfg.Log.Logger(stderr)

	prob, err := tsplib.ParseFile(path)
	if err != nil {
		return err
	}
	in, err := prob.Instance()
	if err != nil {
		return err
	}
	log.Info("instance loaded", slog.String("name", prob.Name), slog.Int("dimension", in.Size()))

	reg := prometheus.NewRegistry()
	opts := cfg.SearchOptions()
	opts.Logger = log
	opts.Observer = metrics.NewSearchMetrics(reg)
	if cfg.Metrics.Addr != "" {
		stop, err := serveMetrics(cfg.Metrics.Addr, reg, log)
		if err != nil {
			return err
		}
		defer stop()
	}

	if cfg.Search.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Search.Timeout)
		defer cancel()
	}
	res, solveErr := bnb.Solve(ctx, in, opts)
	if res.Tour == nil {
		return solveErr
	}
	if solveErr != nil {
		log.Warn("search stopped early, tour not proven optimal",
			slog.String("reason", solveErr.Error()),
			slog.Int64("length", res.Length),
			slog.Int64("root_bound", res.RootBound))
	}

	if err = tsplib.WriteLength(stdout, res.Length); err != nil {
		return err
	}
	if tourPath != "" {
		if err = writeTour(stdout, tourPath, tourName(prob.Name, path), res.Tour); err != nil {
			return err
		}
	}

	return solveErr
}

func writeTour(stdout io.Writer, path, name string, tour []int) error {
	if path == "-" {
		return tsplib.WriteTour(stdout, name, tour)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = tsplib.WriteTour(f, name, tour); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func tourName(name, path string) string {
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return name + ".tour"
}

// serveMetrics exposes reg on addr/metrics until the returned stop is called.
func serveMetrics(addr string, reg *prometheus.Registry, log *slog.Logger) (func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("metrics listener: %w", err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server", slog.String("error", err.Error()))
		}
	}()
	log.Info("serving metrics", slog.String("addr", ln.Addr().String()))

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}
