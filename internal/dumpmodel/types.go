// Package dumpmodel holds the value types extracted from a MediaWiki XML
// dump and the element-scoped state machines that materialize them.
//
// Each machine owns exactly one element subtree: SiteInfoMachine the
// <siteinfo> block, ContributorMachine <contributor>, RevisionMachine
// <revision>, PageMachine <page>. Machines compose by delegation rather
// than inheritance: a parent in a "delegated" state forwards every event
// to the child machine until the child observes its own closing tag.
package dumpmodel

// Namespace is a single <namespace> entry of <siteinfo>. Extraction is
// reserved; SiteInfoMachine never populates this today.
type Namespace struct {
	Key  int64
	Case string
	Name string
}

// SiteInfo is the single <siteinfo> block that precedes every <page> in a
// well-formed dump.
type SiteInfo struct {
	SiteName  string
	DBName    string
	Base      string
	Generator string
	Case      string
	Namespace []Namespace
}

// Contributor identifies the author of a Revision, either by account
// (Username + ID) or by IP address. A deleted contributor carries none of
// the three.
type Contributor struct {
	Username  string
	HasID     bool
	ID        uint64
	IP        string
	HasIP     bool
	HasUsername bool
	Deleted   bool
}

// Revision is one edit state of a Page.
type Revision struct {
	ID            uint64
	HasParentID   bool
	ParentID      uint64
	TimestampMS   uint64
	Contributor   Contributor
	Minor         bool
	HasComment    bool
	Comment       string
	Model         string
	Format        string
	Text          string
	SHA1          string
}

// Upload is reserved: the field set is intentionally empty. PageMachine
// still consumes the element's events so depth tracking stays correct,
// and appends one Upload per <upload> seen to Page.Uploads so the
// element is consumed rather than silently skipped.
type Upload struct{}

// DiscussionThreadingInfo is reserved, mirroring Upload.
type DiscussionThreadingInfo struct{}

// Page is one <page> element: its metadata plus every <revision> found
// inside it, in document order.
type Page struct {
	Title            string
	NS               uint64
	ID               uint64
	HasRedirect      bool
	Redirect         string
	HasRestrictions  bool
	Restrictions     string
	Revisions        []Revision
	Uploads          []Upload
	DiscussionThreads []DiscussionThreadingInfo
}

// reset clears p for reuse by a fresh PageBegin. Revisions is set to nil
// rather than sliced to zero length: a caller holding a Page snapshot
// from Value() keeps a slice pointing at the old backing array, and
// reusing that array here would silently corrupt an already-returned
// snapshot. Only the large text buffer (§3) is mandated to survive reuse;
// the revisions slice is not.
func (p *Page) reset() {
	p.Title = ""
	p.NS = 0
	p.ID = 0
	p.HasRedirect = false
	p.Redirect = ""
	p.HasRestrictions = false
	p.Restrictions = ""
	p.Revisions = nil
	p.Uploads = nil
	p.DiscussionThreads = nil
}
