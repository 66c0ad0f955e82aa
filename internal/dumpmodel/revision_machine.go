package dumpmodel

import "github.com/mediawiki2parquet/mw2parquet/internal/xmlscan"

type revisionState int

const (
	revisionBeforeBegin revisionState = iota
	revisionID
	revisionParentID
	revisionTimestamp
	revisionContributorBegin
	revisionContributor // delegated to ContributorMachine
	revisionMinor
	revisionComment
	revisionModel
	revisionFormat
	revisionText
	revisionSHA1
	revisionAfterEnd
)

// RevisionMachine extracts one <revision>. Contributor is required (§3),
// but a missing <contributor> does not stop extraction: the fall-through
// chain passes over it like any optional leaf and the revision keeps a
// zero Contributor.
//
// textBuf is the reusable accumulator backing Revision.Text across every
// revision this machine instance ever processes. It is never replaced —
// only reset to zero length and, when a larger <text bytes="N"> demands
// it, grown — so the multi-megabyte allocation a large revision forces is
// not repeated on the next, smaller revision.
type RevisionMachine struct {
	state       revisionState
	text        []byte
	textBuf     []byte
	contributor ContributorMachine
	value       Revision
}

func (m *RevisionMachine) Value() Revision {
	return m.value
}

func (m *RevisionMachine) Begin(name string, attrs []string) {
	if m.state == revisionContributor {
		m.contributor.Begin(name, attrs)
		return
	}

	switch m.state {
	case revisionBeforeBegin:
		if name != "revision" {
			return
		}
		// Move the buffer out, reset the value, move it back empty —
		// the Go rendering of the source's "take ownership, clear,
		// reinstall" buffer-reuse discipline (§3).
		buf := m.textBuf
		m.value = Revision{}
		m.textBuf = buf[:0]
		m.state = revisionID
		return
	case revisionID:
		if name == "id" {
			m.text = m.text[:0]
			return
		}
		m.state = revisionParentID
		fallthrough
	case revisionParentID:
		if name == "parentid" {
			m.text = m.text[:0]
			return
		}
		m.state = revisionTimestamp
		fallthrough
	case revisionTimestamp:
		if name == "timestamp" {
			m.text = m.text[:0]
			return
		}
		m.state = revisionContributorBegin
		fallthrough
	case revisionContributorBegin:
		if name == "contributor" {
			m.contributor.Begin(name, attrs)
			m.state = revisionContributor
			return
		}
		// contributor is required; if it's absent the dump is
		// malformed relative to §3, but we don't abort the file for
		// it — fall through and keep matching the remaining leaves.
		m.state = revisionMinor
		fallthrough
	case revisionMinor:
		if name == "minor" {
			return
		}
		m.state = revisionComment
		fallthrough
	case revisionComment:
		if name == "comment" {
			m.text = m.text[:0]
			return
		}
		m.state = revisionModel
		fallthrough
	case revisionModel:
		if name == "model" {
			m.text = m.text[:0]
			return
		}
		m.state = revisionFormat
		fallthrough
	case revisionFormat:
		if name == "format" {
			m.text = m.text[:0]
			return
		}
		m.state = revisionText
		fallthrough
	case revisionText:
		if name == "text" {
			m.textBuf = m.textBuf[:0]
			if raw, ok := xmlscan.Attr(attrs, "bytes"); ok {
				if n, ok := ParseUint64(raw); ok && uint64(cap(m.textBuf)) < n {
					m.textBuf = make([]byte, 0, n)
				}
			}
			return
		}
		m.state = revisionSHA1
		fallthrough
	case revisionSHA1:
		if name == "sha1" {
			m.text = m.text[:0]
			return
		}
		// No leaves left; wait for </revision>.
	}
}

func (m *RevisionMachine) CharData(data []byte) {
	if m.state == revisionContributor {
		m.contributor.CharData(data)
		return
	}
	if m.state == revisionText {
		m.textBuf = append(m.textBuf, data...)
		return
	}
	m.text = append(m.text, data...)
}

func (m *RevisionMachine) End(name string) {
	if m.state == revisionContributor {
		m.contributor.End(name)
		if name == "contributor" {
			m.value.Contributor = m.contributor.Value()
			m.state = revisionMinor
		}
		return
	}

	switch name {
	case "id":
		if v, ok := ParseUint64(string(m.text)); ok {
			m.value.ID = v
		}
	case "parentid":
		if v, ok := ParseUint64(string(m.text)); ok {
			m.value.ParentID = v
			m.value.HasParentID = true
		}
	case "timestamp":
		if v, ok := ParseTimestampMS(string(m.text)); ok {
			m.value.TimestampMS = v
		}
	case "minor":
		m.value.Minor = true
	case "comment":
		m.value.Comment = string(m.text)
		m.value.HasComment = true
	case "model":
		m.value.Model = string(m.text)
	case "format":
		m.value.Format = string(m.text)
	case "text":
		m.value.Text = string(m.textBuf)
	case "sha1":
		m.value.SHA1 = string(m.text)
		m.state = revisionAfterEnd
	case "revision":
		m.state = revisionBeforeBegin
	}
}
