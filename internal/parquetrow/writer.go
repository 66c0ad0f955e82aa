package parquetrow

import (
	"io"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
)

// maxRowGroupLength, writeBatchBytes, and defaultZstdLevel are the writer
// defaults from the row contract: Parquet v2.0, data-page v1, ZSTD level
// 9, statistics enabled, 1000-row row groups, 16 MiB write batches. The
// zstd encoder has four speed settings rather than numbered levels, so a
// level is mapped onto them the way the encoder's own EncoderLevelFromZstd
// does: below 3 fastest, below 6 default, below 10 better (level 9 lands
// here), otherwise best.
const (
	maxRowGroupLength = 1000
	writeBatchBytes   = 16 << 20
	defaultZstdLevel  = 9
	createdBy         = "mediawiki2parquet"
)

// WriterConfig carries the --compression-codec / --compression-level CLI
// flags through to the writer. Only "zstd" is a recognized codec; any
// other value (or none) still gets zstd, since it's the only codec the
// row contract specifies.
type WriterConfig struct {
	Codec string
	Level int
}

// RowWriter is the narrow contract internal/convert needs from the
// Parquet binding: append rows, flush and close once at EOF.
type RowWriter interface {
	Write(rows []Row) (int, error)
	Close() error
}

// NewWriter opens a RowWriter over w using cfg, falling back to the
// writer defaults when cfg's fields are zero.
func NewWriter(w io.Writer, cfg WriterConfig) RowWriter {
	level := cfg.Level
	if level <= 0 {
		level = defaultZstdLevel
	}

	var speed zstd.Level
	switch {
	case level < 3:
		speed = zstd.SpeedFastest
	case level < 6:
		speed = zstd.SpeedDefault
	case level < 10:
		speed = zstd.SpeedBetterCompression
	default:
		speed = zstd.SpeedBestCompression
	}
	codec := &zstd.Codec{Level: speed}

	pw := parquet.NewGenericWriter[Row](w,
		parquet.Compression(codec),
		parquet.DataPageStatistics(true),
		parquet.MaxRowsPerRowGroup(maxRowGroupLength),
		parquet.PageBufferSize(writeBatchBytes),
		parquet.CreatedBy(createdBy, "", ""),
		parquet.DataPageVersion(1),
	)
	return &genericRowWriter{w: pw}
}

type genericRowWriter struct {
	w *parquet.GenericWriter[Row]
}

func (g *genericRowWriter) Write(rows []Row) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	return g.w.Write(rows)
}

func (g *genericRowWriter) Close() error {
	return g.w.Close()
}
