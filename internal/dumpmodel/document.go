package dumpmodel

import "github.com/mediawiki2parquet/mw2parquet/internal/xmlscan"

// documentState tracks what DocumentMachine is currently forwarding
// events to, at the level of direct children of <mediawiki>.
type documentState int

const (
	documentDispatch documentState = iota
	documentInSiteInfo
	documentInPage
)

// DocumentMachine is the root xmlscan.Listener for a whole dump: it
// recognizes the two element kinds that can appear as a direct child of
// <mediawiki> — <siteinfo> and <page> — and delegates to SiteInfoMachine
// or PageMachine accordingly. It is what internal/pageiter drives.
//
// Unlike PageMachine's internal depth counter (which spans the whole
// <page> subtree to skip unmodeled elements), DocumentMachine only needs
// enough depth tracking to know when the currently delegated child's own
// closing tag has gone by, since both SiteInfoMachine and PageMachine
// fully understand everything nested inside their own subtree.
type DocumentMachine struct {
	state     documentState
	depth     int
	siteInfo  SiteInfoMachine
	page      *PageMachine
}

// NewDocumentMachine creates a DocumentMachine whose PageMachine suspends
// s whenever a page finishes.
func NewDocumentMachine(s xmlscan.Suspender) *DocumentMachine {
	return &DocumentMachine{page: NewPageMachine(s)}
}

// SiteInfo returns the most recently completed <siteinfo> snapshot, or
// the zero value if none has been seen yet.
func (m *DocumentMachine) SiteInfo() SiteInfo {
	return m.siteInfo.Value()
}

// Page returns a snapshot of the most recently completed page.
func (m *DocumentMachine) Page() Page {
	return m.page.Value()
}

func (m *DocumentMachine) Begin(name string, attrs []string) {
	switch m.state {
	case documentDispatch:
		switch name {
		case "siteinfo":
			m.state = documentInSiteInfo
			m.depth = 1
			m.siteInfo.Begin(name, attrs)
		case "page":
			m.state = documentInPage
			m.depth = 1
			m.page.Begin(name, attrs)
		}
	case documentInSiteInfo:
		m.depth++
		m.siteInfo.Begin(name, attrs)
	case documentInPage:
		m.depth++
		m.page.Begin(name, attrs)
	}
}

func (m *DocumentMachine) CharData(data []byte) {
	switch m.state {
	case documentInSiteInfo:
		m.siteInfo.CharData(data)
	case documentInPage:
		m.page.CharData(data)
	}
}

func (m *DocumentMachine) End(name string) {
	switch m.state {
	case documentInSiteInfo:
		m.siteInfo.End(name)
		m.depth--
		if m.depth == 0 {
			m.state = documentDispatch
		}
	case documentInPage:
		m.page.End(name)
		m.depth--
		if m.depth == 0 {
			m.state = documentDispatch
		}
	}
}
