package parquetrow

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mediawiki2parquet/mw2parquet/internal/dumpmodel"
)

func TestFromPageEmptyRevisionsYieldsNoRows(t *testing.T) {
	page := dumpmodel.Page{Title: "A"}
	require.Empty(t, FromPage(page))
}

func TestFromPageFlattensOneRowPerRevision(t *testing.T) {
	page := dumpmodel.Page{
		Title: "A",
		NS:    0,
		ID:    1,
		Revisions: []dumpmodel.Revision{
			{ID: 1, Model: "m", Format: "f", Text: "x", SHA1: "s"},
			{ID: 2, Model: "m", Format: "f", Text: "y", SHA1: "s"},
		},
	}
	rows := FromPage(page)
	require.Len(t, rows, 2)
	require.Equal(t, uint64(1), rows[0].RevID)
	require.Equal(t, uint64(2), rows[1].RevID)
	require.Equal(t, "x", rows[0].RevText)
	require.Equal(t, "y", rows[1].RevText)
}

func TestFromPageOptionalColumnsNilWhenAbsent(t *testing.T) {
	page := dumpmodel.Page{
		Title: "A",
		Revisions: []dumpmodel.Revision{
			{ID: 1, Model: "m", Format: "f", Text: "x", SHA1: "s"},
		},
	}
	row := FromPage(page)[0]
	require.Nil(t, row.Redirect)
	require.Nil(t, row.Restrictions)
	require.Nil(t, row.RevParentID)
	require.Nil(t, row.RevComment)
	require.Nil(t, row.RevContribUsername)
	require.Nil(t, row.RevContribID)
	require.Nil(t, row.RevContribIP)
}

func TestFromPageOptionalColumnsSetWhenPresent(t *testing.T) {
	page := dumpmodel.Page{
		Title:           "A",
		HasRedirect:     true,
		Redirect:        "B",
		HasRestrictions: true,
		Restrictions:    "edit=sysop",
		Revisions: []dumpmodel.Revision{{
			ID:          1,
			HasParentID: true,
			ParentID:    9,
			HasComment:  true,
			Comment:     "hi",
			Model:       "m",
			Format:      "f",
			Text:        "x",
			SHA1:        "s",
			Contributor: dumpmodel.Contributor{
				HasUsername: true,
				Username:    "u",
				HasID:       true,
				ID:          5,
			},
		}},
	}
	row := FromPage(page)[0]
	require.Equal(t, "B", *row.Redirect)
	require.Equal(t, "edit=sysop", *row.Restrictions)
	require.Equal(t, uint64(9), *row.RevParentID)
	require.Equal(t, "hi", *row.RevComment)
	require.Equal(t, "u", *row.RevContribUsername)
	require.Equal(t, uint64(5), *row.RevContribID)
	require.Nil(t, row.RevContribIP)
}
