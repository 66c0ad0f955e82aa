package dumpmodel

import "github.com/mediawiki2parquet/mw2parquet/internal/xmlscan"

// machine is the capability set every element-scoped state machine in
// this package satisfies: begin, end, chars. Delegation is just a parent
// routing events through these three methods to a child instead of
// handling them itself — no inheritance hierarchy is needed.
type machine interface {
	Begin(name string, attrs []string)
	End(name string)
	CharData(data []byte)
}

var _ machine = (*SiteInfoMachine)(nil)
var _ machine = (*ContributorMachine)(nil)
var _ machine = (*RevisionMachine)(nil)
var _ xmlscan.Listener = (*PageMachine)(nil)
var _ xmlscan.Listener = (*DocumentMachine)(nil)
