package dumpmodel

// siteInfoState names SiteInfoMachine's position in its fixed child
// sequence.
type siteInfoState int

const (
	siteInfoBeforeBegin siteInfoState = iota
	siteInfoSiteName
	siteInfoDBName
	siteInfoBase
	siteInfoGenerator
	siteInfoCase
	siteInfoAfterEnd
)

// SiteInfoMachine extracts the single <siteinfo> block. Namespaces are
// reserved and never populated, per §3.
type SiteInfoMachine struct {
	state siteInfoState
	text  []byte
	value SiteInfo
}

// Value returns a snapshot of the most recently completed SiteInfo.
func (m *SiteInfoMachine) Value() SiteInfo {
	return m.value
}

func (m *SiteInfoMachine) Begin(name string, attrs []string) {
	switch m.state {
	case siteInfoBeforeBegin:
		if name == "siteinfo" {
			m.value = SiteInfo{}
			m.state = siteInfoSiteName
		}
		return
	case siteInfoSiteName:
		if name == "sitename" {
			m.text = m.text[:0]
			return
		}
		m.state = siteInfoDBName
		fallthrough
	case siteInfoDBName:
		if name == "dbname" {
			m.text = m.text[:0]
			return
		}
		m.state = siteInfoBase
		fallthrough
	case siteInfoBase:
		if name == "base" {
			m.text = m.text[:0]
			return
		}
		m.state = siteInfoGenerator
		fallthrough
	case siteInfoGenerator:
		if name == "generator" {
			m.text = m.text[:0]
			return
		}
		m.state = siteInfoCase
		fallthrough
	case siteInfoCase:
		if name == `case` {
			m.text = m.text[:0]
			return
		}
		// Unexpected child (e.g. <namespaces>, reserved) — ignore; we
		// remain in siteInfoCase until </case> or </siteinfo> arrives.
	}
}

func (m *SiteInfoMachine) CharData(data []byte) {
	m.text = append(m.text, data...)
}

func (m *SiteInfoMachine) End(name string) {
	switch name {
	case "sitename":
		m.value.SiteName = string(m.text)
	case "dbname":
		m.value.DBName = string(m.text)
	case "base":
		m.value.Base = string(m.text)
	case "generator":
		m.value.Generator = string(m.text)
	case `case`:
		m.value.Case = string(m.text)
		m.state = siteInfoAfterEnd
	case "siteinfo":
		m.state = siteInfoBeforeBegin
	}
}
