// Package pageiter exposes a pull-style iterator over the pages of a
// MediaWiki dump, built on top of internal/xmlscan and
// internal/dumpmodel. It is the one place in this module where the
// cooperative suspend/resume control flow of the scanner is turned back
// into an ordinary Next/Current loop a worker can drive synchronously.
package pageiter

import (
	"io"

	"github.com/mediawiki2parquet/mw2parquet/internal/dumpmodel"
	"github.com/mediawiki2parquet/mw2parquet/internal/xmlscan"
)

type iterState int

const (
	stateInit iterState = iota
	stateNext
	stateTerm
)

// Iterator yields Pages from a byte source in document order. No page is
// yielded twice; after the source is exhausted or a parse error occurs,
// Next always returns false.
type Iterator struct {
	state   iterState
	scanner *xmlscan.Scanner
	doc     *dumpmodel.DocumentMachine
	err     error
}

// New creates an Iterator reading from r.
func New(r io.Reader) *Iterator {
	sc := xmlscan.New(r)
	return &Iterator{
		scanner: sc,
		doc:     dumpmodel.NewDocumentMachine(sc),
	}
}

// Next advances to the next page and reports whether one was produced.
// Once it returns false, further calls are idempotent and keep returning
// false without touching the underlying scanner again.
func (it *Iterator) Next() bool {
	switch it.state {
	case stateTerm:
		return false
	case stateInit:
		ok, err := it.scanner.Walk(it.doc)
		return it.advance(ok, err)
	default: // stateNext
		ok, err := it.scanner.Resume()
		return it.advance(ok, err)
	}
}

// advance interprets one Walk/Resume outcome. ok=true covers two distinct
// cases the scanner folds together: the listener suspended at a genuine
// page boundary, or the input simply ran out with no further suspension.
// Only the first one produced a fresh page.
func (it *Iterator) advance(ok bool, err error) bool {
	if err != nil {
		it.err = err
		it.state = stateTerm
		return false
	}
	if !ok || !it.scanner.Suspended() {
		it.state = stateTerm
		return false
	}
	it.state = stateNext
	return true
}

// Current returns a snapshot of the most recently produced page. Valid
// only after a call to Next returned true.
func (it *Iterator) Current() dumpmodel.Page {
	return it.doc.Page()
}

// Err returns the parse error, if any, that caused Next to return false.
func (it *Iterator) Err() error {
	return it.err
}
