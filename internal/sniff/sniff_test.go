package sniff

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGuessBZip2Magic(t *testing.T) {
	ft := Guess(strings.NewReader("BZh91AY&SY..."))
	require.Equal(t, BZip2, ft)
}

func TestGuessXML(t *testing.T) {
	ft := Guess(strings.NewReader("<mediawiki>"))
	require.Equal(t, XML, ft)
}

func TestGuessEmptyIsUnknown(t *testing.T) {
	ft := Guess(strings.NewReader(""))
	require.Equal(t, Unknown, ft)
}

func TestGuessReaderPreservesBytes(t *testing.T) {
	ft, r := GuessReader(strings.NewReader("<mediawiki><page/></mediawiki>"))
	require.Equal(t, XML, ft)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, "<mediawiki><page/></mediawiki>", string(got))
}

func TestParse(t *testing.T) {
	require.Equal(t, BZip2, Parse("bzip2"))
	require.Equal(t, XML, Parse("xml"))
	require.Equal(t, Unknown, Parse("huh"))
}
