package dumpmodel

import "github.com/mediawiki2parquet/mw2parquet/internal/xmlscan"

type pageState int

const (
	pageBegin pageState = iota
	pageTitle
	pageNS
	pageID
	pageRedirect
	pageRestrictions
	pageAltRevisionUpload
	pageInRevision
	pageInOpaque // inside <upload> or <discussionthreadinginfo>, contents unmodeled
)

// PageMachine extracts one <page> element at a time and suspends the
// scanner that drives it whenever a </page> is observed, handing control
// back to whatever is pulling pages (internal/pageiter).
//
// depth starts at a baseline of 1 and is incremented on every Begin,
// decremented on every End, with no exception for <page>'s own tags —
// when an End brings depth back to 1, the element that just closed must
// be </page>, since every nested element (including unmodeled ones like
// <upload>) nets back to the depth it was opened at before the next
// sibling of <page> can close it. This lets upload/discussionthreadinginfo
// subtrees of unknown shape be skipped by depth alone, with no need to
// understand their internal structure.
type PageMachine struct {
	state     pageState
	depth     int
	text      []byte
	revision  RevisionMachine
	value     Page
	suspender xmlscan.Suspender
}

// NewPageMachine creates a PageMachine that suspends s whenever it
// finishes materializing a page.
func NewPageMachine(s xmlscan.Suspender) *PageMachine {
	return &PageMachine{depth: 1, suspender: s}
}

// Value returns a snapshot of the most recently completed Page.
func (m *PageMachine) Value() Page {
	return m.value
}

func (m *PageMachine) Begin(name string, attrs []string) {
	m.depth++

	switch m.state {
	case pageBegin:
		if name == "page" {
			m.value.reset()
			m.state = pageTitle
		}
		return
	case pageInRevision:
		m.revision.Begin(name, attrs)
		return
	case pageInOpaque:
		return
	}

	switch m.state {
	case pageTitle:
		if name == "title" {
			m.text = m.text[:0]
			return
		}
		m.state = pageNS
		fallthrough
	case pageNS:
		if name == "ns" {
			m.text = m.text[:0]
			return
		}
		m.state = pageID
		fallthrough
	case pageID:
		if name == "id" {
			m.text = m.text[:0]
			return
		}
		m.state = pageRedirect
		fallthrough
	case pageRedirect:
		if name == "redirect" {
			if title, ok := xmlscan.Attr(attrs, "title"); ok {
				m.value.Redirect = title
				m.value.HasRedirect = true
			}
			return
		}
		m.state = pageRestrictions
		fallthrough
	case pageRestrictions:
		if name == "restrictions" {
			m.text = m.text[:0]
			return
		}
		m.state = pageAltRevisionUpload
		fallthrough
	case pageAltRevisionUpload:
		switch name {
		case "revision":
			m.revision.Begin(name, attrs)
			m.state = pageInRevision
		case "upload", "discussionthreadinginfo":
			m.state = pageInOpaque
		}
	}
}

func (m *PageMachine) CharData(data []byte) {
	switch m.state {
	case pageInRevision:
		m.revision.CharData(data)
	case pageTitle, pageNS, pageID, pageRestrictions:
		m.text = append(m.text, data...)
	}
}

func (m *PageMachine) End(name string) {
	switch m.state {
	case pageInRevision:
		m.revision.End(name)
		if name == "revision" {
			m.value.Revisions = append(m.value.Revisions, m.revision.Value())
			m.state = pageAltRevisionUpload
		}
	case pageInOpaque:
		switch name {
		case "upload":
			m.value.Uploads = append(m.value.Uploads, Upload{})
			m.state = pageAltRevisionUpload
		case "discussionthreadinginfo":
			m.value.DiscussionThreads = append(m.value.DiscussionThreads, DiscussionThreadingInfo{})
			m.state = pageAltRevisionUpload
		}
	default:
		switch name {
		case "title":
			m.value.Title = string(m.text)
		case "ns":
			if v, ok := ParseUint64(string(m.text)); ok {
				m.value.NS = v
			}
		case "id":
			if v, ok := ParseUint64(string(m.text)); ok {
				m.value.ID = v
			}
		case "restrictions":
			m.value.Restrictions = string(m.text)
			m.value.HasRestrictions = true
		}
	}

	m.depth--
	if m.depth == 1 {
		m.state = pageBegin
		m.suspender.Suspend()
	}
}
