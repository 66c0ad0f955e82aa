package bzstream

import (
	"bytes"
	"compress/bzip2"
	"io"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/require"
)

// compress shells out to bzip2 if available; otherwise the test is
// skipped rather than hand-rolling a bzip2 encoder (the standard library
// only ships a decoder).
func compress(t *testing.T, data []byte) []byte {
	t.Helper()
	path, err := exec.LookPath("bzip2")
	if err != nil {
		t.Skip("bzip2 binary not available")
	}
	cmd := exec.Command(path, "-z", "-c")
	cmd.Stdin = bytes.NewReader(data)
	var out bytes.Buffer
	cmd.Stdout = &out
	require.NoError(t, cmd.Run())
	return out.Bytes()
}

func TestReaderRoundTrip(t *testing.T) {
	want := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog\n"), 500)
	compressed := compress(t, want)

	r := New(bytes.NewReader(compressed))
	got, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestReaderCorruptInputBecomesEOF(t *testing.T) {
	r := New(bytes.NewReader([]byte("not a bzip2 stream at all")))
	buf := make([]byte, 32)
	n, err := r.Read(buf)
	require.Equal(t, 0, n)
	require.ErrorIs(t, err, io.EOF)
}

func TestBzip2MagicSanity(t *testing.T) {
	// guards the assumption the sniffer in internal/sniff relies on:
	// real bzip2 streams begin with the 3-byte magic "BZh".
	want := bytes.Repeat([]byte("x"), 10)
	t.Run("decoder-accepts-real-stream", func(t *testing.T) {
		compressed := compress(t, want)
		require.True(t, len(compressed) >= 3)
		require.Equal(t, "BZh", string(compressed[:3]))
		_, err := io.ReadAll(bzip2.NewReader(bytes.NewReader(compressed)))
		require.NoError(t, err)
	})
}
