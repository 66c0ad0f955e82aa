// Package convert is the driver layer: it turns a CLI invocation's
// <SRC> <DST> pair into a list of worker.Job values with fully resolved
// output paths, and supplies the per-job pipeline (sniff -> optionally
// decompress -> scan -> write) that internal/worker.Run drives.
package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// GatherSourceFiles lists every regular file directly inside dir. Any
// stat or readdir error aborts with an error rather than silently
// skipping — this runs once at setup, before any worker starts, and a
// directory the program can't enumerate is a setup error (§7
// PathError), not a per-job failure.
func GatherSourceFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %q: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %q: %w", filepath.Join(dir, e.Name()), err)
		}
		if !info.Mode().IsRegular() {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	return files, nil
}

// MakeTargetFiles derives one output path per source under dstDir,
// stripping a trailing .bz2/.bzip2 extension and then the file's
// remaining extension (e.g. .xml), and appending
// ".part-<k>.parquet" where <k> is a zero-based counter of how many
// earlier sources in srcs shared the same stem.
func MakeTargetFiles(dstDir string, srcs []string) []string {
	dups := make(map[string]int)
	dsts := make([]string, len(srcs))

	for i, src := range srcs {
		stem := stripCompressionExt(filepath.Base(src))
		stem = stripExt(stem)

		k := dups[stem]
		dups[stem] = k + 1

		name := fmt.Sprintf("%s.part-%d.parquet", stem, k)
		dsts[i] = filepath.Join(dstDir, name)
	}
	return dsts
}

func stripCompressionExt(name string) string {
	for _, ext := range []string{".bz2", ".bzip2"} {
		if strings.HasSuffix(name, ext) {
			return strings.TrimSuffix(name, ext)
		}
	}
	return name
}

func stripExt(name string) string {
	ext := filepath.Ext(name)
	if ext == "" {
		return name
	}
	return strings.TrimSuffix(name, ext)
}
