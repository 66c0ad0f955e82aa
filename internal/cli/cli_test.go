package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCLI(t *testing.T) {
	cmd := BuildCLI()

	assert.NotNil(t, cmd)
	assert.Equal(t, "mw", cmd.Use)

	commands := cmd.Commands()
	require.Len(t, commands, 1)
	assert.Equal(t, "convert <SRC> <DST>", commands[0].Use)
}

func TestBuildConvertCommandFlags(t *testing.T) {
	cmd := buildConvertCommand()

	for _, name := range []string{"compression-codec", "compression-level", "filetype", "threads", "config", "metrics-addr"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag --%s", name)
	}
}

const sampleDoc = `<mediawiki>` +
	`<page><title>A</title><ns>0</ns><id>1</id>` +
	`<revision><id>1</id><timestamp>20240101000000</timestamp>` +
	`<contributor><ip>1.2.3.4</ip></contributor>` +
	`<model>m</model><format>f</format><text bytes="1">x</text><sha1>s</sha1></revision></page>` +
	`</mediawiki>`

func TestRunConvertSingleFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "dump.xml")
	require.NoError(t, os.WriteFile(src, []byte(sampleDoc), 0o644))

	dst := filepath.Join(dir, "out", "dump.parquet")

	err := runConvert(src, dst, convertFlags{compressionCodec: "zstd"})
	require.NoError(t, err)

	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.False(t, info.IsDir())
}

func TestRunConvertDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.xml"), []byte(sampleDoc), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.xml"), []byte(sampleDoc), 0o644))

	outDir := filepath.Join(dir, "out")
	err := runConvert(dir, outDir, convertFlags{compressionCodec: "zstd", threads: 2})
	require.NoError(t, err)

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestRunConvertNonexistentSource(t *testing.T) {
	err := runConvert("/no/such/path", "/tmp/out.parquet", convertFlags{})
	assert.Error(t, err)
}

func TestRunConvertBadFiletype(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "dump.xml")
	require.NoError(t, os.WriteFile(src, []byte(sampleDoc), 0o644))

	err := runConvert(src, filepath.Join(dir, "out.parquet"), convertFlags{filetype: "json"})
	assert.Error(t, err)
}
