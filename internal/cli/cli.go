// ============================================================================
// mw2parquet CLI - Command Line Interface
// ============================================================================
//
// Package: internal/cli
// File: cli.go
// Purpose: Provides the command line interface for the mw2parquet dump
// converter, built on the Cobra framework.
//
// Command Structure:
//   mw                              # Root command
//   └── convert <SRC> <DST>         # Convert a dump (or directory of
//       │                            dumps) to Parquet
//       ├── --compression-codec    # Output codec (zstd recognized)
//       ├── --compression-level    # Codec-specific level
//       ├── --filetype             # Override type sniffing (bzip2|xml)
//       ├── --threads              # Worker count; 0 = hardware concurrency
//       ├── --config               # Optional YAML defaults file
//       └── --metrics-addr         # Optional Prometheus HTTP listen addr
//
// Argument handling:
//   <SRC> is a file or a directory of files; <DST> is a file if <SRC> is
//   a single file, a directory otherwise. Every regular file directly
//   inside a directory <SRC> becomes one job.
//
// Error handling:
//   Any argument or setup error (bad flag value, missing positional,
//   nonexistent <SRC>, failure to create the output directory) prints
//   the usage banner to stderr and exits 1. Per-job failures are logged
//   and do not affect the exit code of other jobs; the process still
//   exits 0 as long as argument parsing and setup succeeded.
// ============================================================================

package cli

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/mediawiki2parquet/mw2parquet/internal/config"
	"github.com/mediawiki2parquet/mw2parquet/internal/convert"
	"github.com/mediawiki2parquet/mw2parquet/internal/metrics"
	"github.com/mediawiki2parquet/mw2parquet/internal/parquetrow"
	"github.com/mediawiki2parquet/mw2parquet/internal/sniff"
	"github.com/mediawiki2parquet/mw2parquet/internal/worker"
)

// usageBanner is printed by --help and by any argument error, matching
// the original command-line tool's exact text.
const usageBanner = `Usage: mw convert [OPTIONS] <SRC> <DST>

Arguments
  <SRC>     Either Wikipedia dump or directory with dumps.
  <DST>     Either name of output file or directory to store processed dumps.

Options
  --compression-codec <zstd>    Compression codec for output files.
  --compression-level <uint>    Compression level for output files.
  --filetype <bzip2|xml>        How to interpret source files.
  --help                        Show this message.
  --threads                     Number of threads.
`

// fail prints an ArgumentError in the original tool's style: a one-line
// "ERR failed to parse argument options: <reason>" followed by the usage
// banner, to stderr.
func fail(err error) {
	fmt.Fprintf(os.Stderr, "ERR failed to parse argument options: %v\n", err)
	fmt.Fprint(os.Stderr, usageBanner)
}

// BuildCLI assembles the mw root command and its convert sub-command.
func BuildCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mw",
		Short: "mw2parquet: convert MediaWiki XML dumps to Parquet",
		Long:  "mw converts MediaWiki XML dump files, optionally bzip2-compressed, into flat Parquet files with one row per revision.",
	}

	rootCmd.AddCommand(buildConvertCommand())
	return rootCmd
}

type convertFlags struct {
	configFile       string
	compressionCodec string
	compressionLevel int
	filetype         string
	threads          int
	metricsAddr      string
}

func buildConvertCommand() *cobra.Command {
	var flags convertFlags

	cmd := &cobra.Command{
		Use:           "convert <SRC> <DST>",
		Short:         "Convert a MediaWiki dump (or directory of dumps) to Parquet",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				err := fmt.Errorf("expected 2 positional arguments, got %d", len(args))
				fail(err)
				return err
			}
			if err := runConvert(args[0], args[1], flags); err != nil {
				fail(err)
				return err
			}
			return nil
		},
	}

	cmd.SetUsageTemplate(usageBanner)
	cmd.SetHelpTemplate(usageBanner)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		fail(err)
		return err
	})

	cmd.Flags().StringVar(&flags.compressionCodec, "compression-codec", "zstd", "Compression codec for output files")
	cmd.Flags().IntVar(&flags.compressionLevel, "compression-level", 0, "Compression level for output files")
	cmd.Flags().StringVar(&flags.filetype, "filetype", "", "How to interpret source files (bzip2|xml)")
	cmd.Flags().IntVar(&flags.threads, "threads", 0, "Number of worker threads; 0 means hardware concurrency")
	cmd.Flags().StringVar(&flags.configFile, "config", "", "Optional YAML file of flag defaults")
	cmd.Flags().StringVar(&flags.metricsAddr, "metrics-addr", "", "Address to serve Prometheus metrics on, e.g. :9090 (disabled if empty)")

	return cmd
}

// runConvert resolves SRC/DST into jobs, applies config-file defaults
// under CLI flags, and drives the worker pool.
func runConvert(src, dst string, flags convertFlags) error {
	log := slog.Default()

	defaults, err := config.Load(flags.configFile)
	if err != nil {
		return err
	}
	if flags.threads == 0 && defaults.Threads != 0 {
		flags.threads = defaults.Threads
	}
	if flags.compressionCodec == "zstd" && defaults.CompressionCodec != "" {
		flags.compressionCodec = defaults.CompressionCodec
	}
	if flags.compressionLevel == 0 && defaults.CompressionLevel != 0 {
		flags.compressionLevel = defaults.CompressionLevel
	}
	if flags.metricsAddr == "" && defaults.MetricsAddr != "" {
		flags.metricsAddr = defaults.MetricsAddr
	}

	ft := sniff.Unknown
	if flags.filetype != "" {
		ft = sniff.Parse(flags.filetype)
		if ft == sniff.Unknown {
			return fmt.Errorf("failed to parse option value: --filetype %q", flags.filetype)
		}
	}

	srcInfo, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("there is no such path: %s", src)
	}

	var jobs []worker.Job
	if srcInfo.IsDir() {
		srcs, err := convert.GatherSourceFiles(src)
		if err != nil {
			return err
		}
		if len(srcs) == 0 {
			return fmt.Errorf("failed to gather list of source files")
		}
		if err := os.MkdirAll(dst, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dst, err)
		}
		dsts := convert.MakeTargetFiles(dst, srcs)
		for i := range srcs {
			jobs = append(jobs, worker.Job{Src: srcs[i], Dst: dsts[i]})
		}
	} else {
		// Single-file source: DST is the output file path verbatim, not
		// a directory; only its parent directory is created.
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", filepath.Dir(dst), err)
		}
		jobs = []worker.Job{{Src: src, Dst: dst}}
	}

	reg := prometheus.NewRegistry()
	coll := metrics.NewCollector(reg)
	if flags.metricsAddr != "" {
		startMetricsServer(flags.metricsAddr, reg, log)
	}

	proc := convert.NewProcessor(convert.Options{
		FileType: ft,
		Compression: parquetrow.WriterConfig{
			Codec: flags.compressionCodec,
			Level: flags.compressionLevel,
		},
		Logger: log,
		OnPage: coll.RecordPage,
	})

	log.Info("starting conversion", "partitions", len(jobs), "threads", flags.threads)

	results := worker.Run(jobs, flags.threads, instrumented(proc.Process, coll))

	var failed int
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	log.Info("conversion finished", "jobs", len(results), "failed", failed)

	return nil
}

// instrumented wraps a worker.Process so every job's outcome is
// reflected in coll, without internal/convert needing to know about
// Prometheus.
func instrumented(p worker.Process, coll *metrics.Collector) worker.Process {
	return func(job worker.Job) (int, error) {
		coll.RecordJobStart()
		start := time.Now()
		rows, err := p(job)
		coll.RecordJobDone(err, time.Since(start).Seconds(), rows)
		return rows, err
	}
}

func startMetricsServer(addr string, reg *prometheus.Registry, log *slog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	go func() {
		log.Info("starting metrics server", "addr", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Error("metrics server stopped", "error", err)
		}
	}()
}
