package outline

import "github.com/pagemill/outliner/model"

// TocEntry is one entry of a builtin (author-supplied) outline as reported
// by the page source. Level is a 1-based depth.
type TocEntry struct {
	Level int
	Title string
	Page  int
}

// PageData is everything the pipeline needs from a single page: the plain
// rendered text, the page height, and the positioned fragments in natural
// reading emission order. Fragment sequence indices are not yet assigned.
type PageData struct {
	PlainText string
	Height    float64
	Fragments []model.Fragment
}

// Source supplies parsed page content to the builder. Implementations wrap
// an actual PDF parsing library; the builder performs no recovery on source
// errors, since it cannot safely interpret a document it cannot read.
type Source interface {
	// BuiltinOutline returns the document's author-supplied outline, or an
	// empty slice when there is none and heuristics should run.
	BuiltinOutline() ([]TocEntry, error)

	// PageCount returns the number of pages in the document.
	PageCount() int

	// Page returns the content of the 1-based page n.
	Page(n int) (PageData, error)
}
