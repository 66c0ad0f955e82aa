package parquetrow

import (
	"bytes"
	"testing"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/require"
)

// columnOrder is the §6 row contract: the exact, ordered list of leaf
// columns every output file must carry, and which ones are optional.
var columnOrder = []struct {
	name     string
	optional bool
}{
	{"title", false},
	{"ns", false},
	{"id", false},
	{"redirect", true},
	{"restrictions", true},
	{"rev_id", false},
	{"rev_parent_id", true},
	{"rev_timestamp", false},
	{"rev_contrib_username", true},
	{"rev_contrib_id", true},
	{"rev_contrib_ip", true},
	{"rev_minor", false},
	{"rev_comment", true},
	{"rev_model", false},
	{"rev_format", false},
	{"rev_text", false},
	{"rev_sha1", false},
}

func writeRows(t *testing.T, rows []Row) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := NewWriter(&buf, WriterConfig{})
	n, err := w.Write(rows)
	require.NoError(t, err)
	require.Equal(t, len(rows), n)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestWriterSchemaColumnOrderAndNullability(t *testing.T) {
	data := writeRows(t, []Row{s1Row()})

	r := parquet.NewGenericReader[Row](bytes.NewReader(data))
	defer r.Close()

	fields := r.Schema().Fields()
	require.Len(t, fields, len(columnOrder))
	for i, want := range columnOrder {
		got := fields[i]
		require.Equal(t, want.name, got.Name(), "column %d name", i)
		require.Equal(t, want.optional, got.Optional(), "column %q optionality", want.name)
	}
}

// s1Row carries the single-revision-page scenario's (S1) values, with
// every optional field except rev_contrib_ip also set, so the round trip
// can be checked against non-nil expectations as well as a nil one.
func s1Row() Row {
	redirect := "B"
	restrictions := "edit=sysop"
	parentID := uint64(9)
	comment := "hi"
	username := "u"
	contribID := uint64(5)
	return Row{
		Title:              "A",
		NS:                 0,
		ID:                 1,
		Redirect:           &redirect,
		Restrictions:       &restrictions,
		RevID:              10,
		RevParentID:        &parentID,
		RevTimestamp:       1705311000000,
		RevContribUsername: &username,
		RevContribID:       &contribID,
		RevContribIP:       nil,
		RevMinor:           true,
		RevComment:         &comment,
		RevModel:           "wikitext",
		RevFormat:          "text/x-wiki",
		RevText:            "hello",
		RevSHA1:            "abc",
	}
}

func TestWriterRoundTripsS1Row(t *testing.T) {
	want := s1Row()
	data := writeRows(t, []Row{want})

	r := parquet.NewGenericReader[Row](bytes.NewReader(data))
	defer r.Close()

	require.Equal(t, int64(1), r.NumRows())

	got := make([]Row, 1)
	n, err := r.Read(got)
	require.True(t, err == nil || err.Error() == "EOF")
	require.Equal(t, 1, n)

	row := got[0]
	require.Equal(t, want.Title, row.Title)
	require.Equal(t, want.NS, row.NS)
	require.Equal(t, want.ID, row.ID)
	require.Equal(t, *want.Redirect, *row.Redirect)
	require.Equal(t, *want.Restrictions, *row.Restrictions)
	require.Equal(t, want.RevID, row.RevID)
	require.Equal(t, *want.RevParentID, *row.RevParentID)
	require.Equal(t, want.RevTimestamp, row.RevTimestamp)
	require.Equal(t, *want.RevContribUsername, *row.RevContribUsername)
	require.Equal(t, *want.RevContribID, *row.RevContribID)
	require.Nil(t, row.RevContribIP)
	require.Equal(t, want.RevMinor, row.RevMinor)
	require.Equal(t, *want.RevComment, *row.RevComment)
	require.Equal(t, want.RevModel, row.RevModel)
	require.Equal(t, want.RevFormat, row.RevFormat)
	require.Equal(t, want.RevText, row.RevText)
	require.Equal(t, want.RevSHA1, row.RevSHA1)
}

func TestWriterRoundTripsOptionalFieldsAsNull(t *testing.T) {
	row := Row{
		Title:        "A",
		RevID:        1,
		RevTimestamp: 0,
		RevModel:     "m",
		RevFormat:    "f",
		RevText:      "x",
		RevSHA1:      "s",
	}
	data := writeRows(t, []Row{row})

	r := parquet.NewGenericReader[Row](bytes.NewReader(data))
	defer r.Close()

	got := make([]Row, 1)
	n, err := r.Read(got)
	require.True(t, err == nil || err.Error() == "EOF")
	require.Equal(t, 1, n)

	require.Nil(t, got[0].Redirect)
	require.Nil(t, got[0].Restrictions)
	require.Nil(t, got[0].RevParentID)
	require.Nil(t, got[0].RevComment)
	require.Nil(t, got[0].RevContribUsername)
	require.Nil(t, got[0].RevContribID)
	require.Nil(t, got[0].RevContribIP)
}

func TestWriterRoundTripsMultipleRowsInOrder(t *testing.T) {
	rows := []Row{
		{Title: "A", RevID: 1, RevModel: "m", RevFormat: "f", RevText: "x", RevSHA1: "s"},
		{Title: "B", RevID: 2, RevModel: "m", RevFormat: "f", RevText: "y", RevSHA1: "s"},
	}
	data := writeRows(t, rows)

	r := parquet.NewGenericReader[Row](bytes.NewReader(data))
	defer r.Close()

	got := make([]Row, 2)
	n, err := r.Read(got)
	require.True(t, err == nil || err.Error() == "EOF")
	require.Equal(t, 2, n)
	require.Equal(t, "A", got[0].Title)
	require.Equal(t, "B", got[1].Title)
	require.Equal(t, uint64(1), got[0].RevID)
	require.Equal(t, uint64(2), got[1].RevID)
}
