package dumpmodel

import "github.com/mediawiki2parquet/mw2parquet/internal/xmlscan"

type contributorState int

const (
	contributorBeforeBegin contributorState = iota
	contributorUsername
	contributorID
	contributorIP
	contributorAfterEnd
)

// ContributorMachine extracts <contributor>. A deleted contributor (the
// `deleted` attribute present, value ignored per §3) has no children at
// all, so no leaf Begin ever arrives: the machine stays in its Username
// state until </contributor> returns it to before-begin with all three
// leaves unset.
//
// The transition on leaving ID is to IP, not back to ID — the source's
// self-loop there is a bug (see the design ledger); this machine ships
// the corrected transition.
type ContributorMachine struct {
	state contributorState
	text  []byte
	value Contributor
}

func (m *ContributorMachine) Value() Contributor {
	return m.value
}

func (m *ContributorMachine) Begin(name string, attrs []string) {
	switch m.state {
	case contributorBeforeBegin:
		if name != "contributor" {
			return
		}
		m.value = Contributor{}
		if _, ok := xmlscan.Attr(attrs, "deleted"); ok {
			m.value.Deleted = true
		}
		m.state = contributorUsername
		return
	case contributorUsername:
		if name == "username" {
			m.text = m.text[:0]
			return
		}
		m.state = contributorID
		fallthrough
	case contributorID:
		if name == "id" {
			m.text = m.text[:0]
			return
		}
		m.state = contributorIP
		fallthrough
	case contributorIP:
		if name == "ip" {
			m.text = m.text[:0]
			return
		}
		// Unexpected tag with no leaves left: stay put until
		// </contributor> arrives.
	}
}

func (m *ContributorMachine) CharData(data []byte) {
	m.text = append(m.text, data...)
}

func (m *ContributorMachine) End(name string) {
	switch name {
	case "username":
		m.value.Username = string(m.text)
		m.value.HasUsername = true
	case "id":
		if v, ok := ParseUint64(string(m.text)); ok {
			m.value.ID = v
			m.value.HasID = true
		}
	case "ip":
		m.value.IP = string(m.text)
		m.value.HasIP = true
		m.state = contributorAfterEnd
	case "contributor":
		m.state = contributorBeforeBegin
	}
}
