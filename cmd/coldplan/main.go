// Command coldplan plans a cold/hot layout for a weight sequence and prints the
// spans, the plan table and one optimal layout.
//
// Usage:
//
//	coldplan [-config coldplan.yaml] [-weights weights.txt|-] [-format text|json]
//	         [-table=false] [-log-level debug] [-metrics]
//
// Without -weights the workload from the configuration is planned; without
// -config the built-in defaults are used.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/big"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/arloliu/coldplan"
	"github.com/arloliu/coldplan/internal/logging"
	"github.com/arloliu/coldplan/internal/report"
	"github.com/arloliu/coldplan/source"
)

var errUsage = errors.New("usage error")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "coldplan: %v\n", err)
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("coldplan", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "Path to YAML configuration file (defaults when empty)")
	weightsPath := fs.String("weights", "", "Path to a weights file, or - for stdin (overrides the configured workload)")
	format := fs.String("format", "text", "Output format: text or json")
	withTable := fs.Bool("table", true, "Include the full plan table in the output")
	logLevel := fs.String("log-level", "warn", "Log level: debug, info, warn or error")
	dumpMetrics := fs.Bool("metrics", false, "Print planner metrics in Prometheus text format after the report")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	if *format != "text" && *format != "json" {
		return fmt.Errorf("%w: unknown format %q", errUsage, *format)
	}

	level, err := logging.ParseLevel(*logLevel)
	if err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	logger := logging.NewSlogText(stderr, level)

	// Load config
	cfg := coldplan.DefaultConfig()
	if *configPath != "" {
		loaded, err := coldplan.LoadConfig(*configPath)
		if err != nil {
			return err
		}
		cfg = *loaded
	}

	registry := prometheus.NewRegistry()
	opt, err := coldplan.NewOptimizer(&cfg,
		coldplan.WithLogger(logger),
		coldplan.WithMetrics(coldplan.NewPrometheusMetrics(registry, "")),
	)
	if err != nil {
		return err
	}

	var res *coldplan.Result
	if *weightsPath != "" {
		weights, err := readWeights(*weightsPath, stdin)
		if err != nil {
			return err
		}
		res, err = opt.RunSource(ctx, source.NewStatic(weights))
		if err != nil {
			return err
		}
	} else {
		res, err = opt.RunWorkload(ctx)
		if err != nil {
			return err
		}
	}

	if *format == "json" {
		err = report.WriteJSON(stdout, res, *withTable)
	} else {
		err = report.WriteText(stdout, res, *withTable)
	}
	if err != nil {
		return err
	}

	if *dumpMetrics {
		return writeMetrics(stdout, registry)
	}

	return nil
}

func readWeights(path string, stdin io.Reader) ([]*big.Rat, error) {
	if path == "-" {
		return source.ParseWeights(stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open weights: %w", err)
	}
	defer f.Close()

	return source.ParseWeights(f)
}

func writeMetrics(w io.Writer, gatherer prometheus.Gatherer) error {
	families, err := gatherer.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}

	return nil
}
