// Package pdfsource supplies parsed PDF page content to the outline builder.
//
// It implements [github.com/pagemill/outliner/outline.Source] on top of two
// libraries, each doing what it does well:
//
//   - github.com/ledongthuc/pdf (pure Go) extracts positioned text runs with
//     font name and size, page plain text, and page geometry.
//   - github.com/pdfcpu/pdfcpu reads the document's bookmark tree, which is
//     the authoritative builtin outline when present.
//
// A [Document] extracts all pages on Open. Extraction runs pages in
// parallel, but results land in a slice indexed by page number, so fragment
// order (page order first, intra-page emission order second) does not depend
// on worker completion order.
//
// Raw text runs are assembled into line-level fragments before they leave
// this package: consecutive runs sharing a baseline and font are merged,
// with spaces inserted across significant horizontal gaps. Coordinates are
// converted from PDF bottom-left origin to the top-left origin the
// detection bands expect.
package pdfsource
