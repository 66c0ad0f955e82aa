package convert

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mediawiki2parquet/mw2parquet/internal/bzstream"
	"github.com/mediawiki2parquet/mw2parquet/internal/pageiter"
	"github.com/mediawiki2parquet/mw2parquet/internal/parquetrow"
	"github.com/mediawiki2parquet/mw2parquet/internal/sniff"
	"github.com/mediawiki2parquet/mw2parquet/internal/worker"
)

// Options configures every job run by a single invocation of the
// converter: the sniffing override and the writer's compression
// settings.
type Options struct {
	FileType    sniff.FileType // Unknown means "sniff it"
	Compression parquetrow.WriterConfig
	Logger      *slog.Logger

	// OnPage, if set, is called once for every <page> element drive
	// extracts, regardless of how many rows (possibly zero) it yielded.
	OnPage func()
}

// Processor binds Options to a worker.Process function.
type Processor struct {
	opts Options
}

// NewProcessor creates a Processor with opts, defaulting Logger to
// slog.Default() if unset.
func NewProcessor(opts Options) *Processor {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Processor{opts: opts}
}

// Process implements worker.Process: run one Job to completion or local
// failure, writing whatever rows were extracted before a failure, and
// never letting that failure escape to affect any other job.
func (p *Processor) Process(job worker.Job) (rows int, err error) {
	log := p.opts.Logger.With("src", job.Src, "dst", job.Dst)

	f, err := os.Open(job.Src)
	if err != nil {
		log.Error("open source failed", "error", err)
		return 0, fmt.Errorf("open %q: %w", job.Src, err)
	}
	defer f.Close()

	src, err := p.decompressedSource(f)
	if err != nil {
		log.Warn("could not sniff file type, skipping", "error", err)
		return 0, err
	}

	if err := os.MkdirAll(filepath.Dir(job.Dst), 0o755); err != nil {
		log.Error("create output directory failed", "error", err)
		return 0, fmt.Errorf("mkdir for %q: %w", job.Dst, err)
	}

	out, err := os.Create(job.Dst)
	if err != nil {
		log.Error("create output file failed", "error", err)
		return 0, fmt.Errorf("create %q: %w", job.Dst, err)
	}
	defer out.Close()

	writer := parquetrow.NewWriter(out, p.opts.Compression)

	rows, writeErr := drive(src, writer, p.opts.OnPage)
	closeErr := writer.Close()
	if writeErr != nil {
		log.Error("conversion failed partway through", "error", writeErr, "rows_written", rows)
		return rows, writeErr
	}
	if closeErr != nil {
		log.Error("finalize output failed", "error", closeErr, "rows_written", rows)
		return rows, fmt.Errorf("close writer for %q: %w", job.Dst, closeErr)
	}

	log.Info("job complete", "rows_written", rows)
	return rows, nil
}

// decompressedSource sniffs f's type (respecting the --filetype
// override) and wraps it in the bzip2 adapter when needed. An Unknown
// override means "sniff it"; an Unknown sniffing result (I/O error, or
// fewer than 3 bytes in the source) is treated as skip-with-log, per
// §4.5.
func (p *Processor) decompressedSource(f *os.File) (io.Reader, error) {
	ft := p.opts.FileType
	var r io.Reader = f
	if ft == sniff.Unknown {
		ft, r = sniff.GuessReader(f)
	}

	switch ft {
	case sniff.BZip2:
		return bzstream.New(r), nil
	case sniff.XML:
		return r, nil
	default:
		return nil, fmt.Errorf("could not determine file type")
	}
}

// drive runs a Page iterator over src to exhaustion, writing one row per
// revision and calling onPage (if non-nil) once per page, including
// pages that yielded zero rows. A ParseError stops the iteration; rows
// already handed to w stay written, and the count written so far is
// returned alongside the error.
func drive(src io.Reader, w parquetrow.RowWriter, onPage func()) (int, error) {
	it := pageiter.New(src)
	total := 0

	for it.Next() {
		if onPage != nil {
			onPage()
		}
		rows := parquetrow.FromPage(it.Current())
		if len(rows) == 0 {
			continue
		}
		n, err := w.Write(rows)
		total += n
		if err != nil {
			return total, fmt.Errorf("write rows: %w", err)
		}
	}
	if err := it.Err(); err != nil {
		return total, fmt.Errorf("parse: %w", err)
	}
	return total, nil
}
