// Package sniff detects whether a byte source is a bzip2 stream or plain
// XML by its leading magic bytes, matching the sniffer behavior specified
// for the source's on-disk dump files.
package sniff

import (
	"bytes"
	"io"
)

// FileType names the result of sniffing a source.
type FileType int

const (
	// Unknown is returned when the source is too short to sniff or an
	// I/O error occurs while reading the magic bytes; callers treat it
	// as skip-with-log.
	Unknown FileType = iota
	BZip2
	XML
)

func (f FileType) String() string {
	switch f {
	case BZip2:
		return "bzip2"
	case XML:
		return "xml"
	default:
		return "unknown"
	}
}

// Parse maps a --filetype flag value to a FileType, or Unknown if
// unrecognized.
func Parse(s string) FileType {
	switch s {
	case "bzip2":
		return BZip2
	case "xml":
		return XML
	default:
		return Unknown
	}
}

// bzip2Magic is the 3-byte signature "BZh" (0x42 0x5A 0x68) every bzip2
// stream begins with.
var bzip2Magic = [3]byte{'B', 'Z', 'h'}

// Guess reads up to 4 bytes from r and classifies the stream. Any I/O
// error, including a short read on an empty or tiny file, yields Unknown
// rather than an error — callers are expected to treat Unknown as a
// skip-with-log condition rather than abort.
func Guess(r io.Reader) FileType {
	var buf [4]byte
	n, err := io.ReadFull(r, buf[:])
	if err != nil && n < 3 {
		return Unknown
	}
	if buf[0] == bzip2Magic[0] && buf[1] == bzip2Magic[1] && buf[2] == bzip2Magic[2] {
		return BZip2
	}
	return XML
}

// GuessReader classifies r by its leading bytes and returns a reader that
// still yields the full, untouched stream — the bytes consumed while
// sniffing are prepended back in front of whatever remains of r.
func GuessReader(r io.Reader) (FileType, io.Reader) {
	var buf [4]byte
	n, err := io.ReadFull(r, buf[:])
	prefix := bytes.NewReader(buf[:n])
	full := io.MultiReader(prefix, r)

	if err != nil && n < 3 {
		return Unknown, full
	}
	if buf[0] == bzip2Magic[0] && buf[1] == bzip2Magic[1] && buf[2] == bzip2Magic[2] {
		return BZip2, full
	}
	return XML, full
}
