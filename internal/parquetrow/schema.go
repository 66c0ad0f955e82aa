// Package parquetrow defines the boundary between the extraction core
// and the Parquet writer: a flat row type mirroring the one-row-per-
// revision schema, the logic that flattens a dumpmodel.Page into that
// type, and a thin RowWriter binding to github.com/parquet-go/parquet-go.
//
// Everything upstream of this package is library-agnostic; only this
// package imports the Parquet library, keeping the writer a pluggable
// boundary concern, not a core one.
package parquetrow

import "github.com/mediawiki2parquet/mw2parquet/internal/dumpmodel"

// Row is the flat, one-row-per-revision schema written to every output
// file. Field order and nullability mirror the column table exactly:
// required fields use plain Go types, optional fields use pointers so a
// nil value serializes as a Parquet null rather than a zero value.
type Row struct {
	Title        string  `parquet:"title"`
	NS           uint64  `parquet:"ns"`
	ID           uint64  `parquet:"id"`
	Redirect     *string `parquet:"redirect,optional"`
	Restrictions *string `parquet:"restrictions,optional"`

	RevID               uint64  `parquet:"rev_id"`
	RevParentID         *uint64 `parquet:"rev_parent_id,optional"`
	RevTimestamp        int64   `parquet:"rev_timestamp,timestamp(millisecond)"`
	RevContribUsername  *string `parquet:"rev_contrib_username,optional"`
	RevContribID        *uint64 `parquet:"rev_contrib_id,optional"`
	RevContribIP        *string `parquet:"rev_contrib_ip,optional"`
	RevMinor            bool    `parquet:"rev_minor"`
	RevComment          *string `parquet:"rev_comment,optional"`
	RevModel            string  `parquet:"rev_model"`
	RevFormat           string  `parquet:"rev_format"`
	RevText             string  `parquet:"rev_text"`
	RevSHA1             string  `parquet:"rev_sha1"`
}

// FromPage flattens one Page into one Row per Revision, in Revision
// order. A page with zero revisions yields zero rows (B2) — callers must
// not treat that as an error.
func FromPage(page dumpmodel.Page) []Row {
	if len(page.Revisions) == 0 {
		return nil
	}
	rows := make([]Row, len(page.Revisions))
	for i, rev := range page.Revisions {
		rows[i] = rowFromRevision(page, rev)
	}
	return rows
}

func rowFromRevision(page dumpmodel.Page, rev dumpmodel.Revision) Row {
	row := Row{
		Title:        page.Title,
		NS:           page.NS,
		ID:           page.ID,
		RevID:        rev.ID,
		RevTimestamp: int64(rev.TimestampMS),
		RevMinor:     rev.Minor,
		RevModel:     rev.Model,
		RevFormat:    rev.Format,
		RevText:      rev.Text,
		RevSHA1:      rev.SHA1,
	}
	if page.HasRedirect {
		row.Redirect = &page.Redirect
	}
	if page.HasRestrictions {
		row.Restrictions = &page.Restrictions
	}
	if rev.HasParentID {
		row.RevParentID = &rev.ParentID
	}
	if rev.HasComment {
		row.RevComment = &rev.Comment
	}
	c := rev.Contributor
	if c.HasUsername {
		row.RevContribUsername = &c.Username
	}
	if c.HasID {
		row.RevContribID = &c.ID
	}
	if c.HasIP {
		row.RevContribIP = &c.IP
	}
	return row
}
