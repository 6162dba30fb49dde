// Package outline assembles a document outline from a page source.
//
// The [Builder] orchestrates the whole inference pipeline over a [Source]:
// validity filtering, header/footer accumulation and confirmation, title
// determination, font-size ranking, and final assembly in document order.
//
//	src := // a Source, e.g. pdfsource.Open(...)
//	b := outline.NewBuilder(src, "report")
//	result, err := b.Build()
//
// Processing one document is a single linear pass. When the source reports a
// builtin outline, it is trusted unconditionally and reformatted directly;
// none of the heuristics run. Otherwise the builder scans every page,
// finalizes the boilerplate detector (confirmation needs whole-document
// counts), and only then classifies.
//
// A document with zero pages or zero surviving fragments is not an error: it
// produces an outline with no entries and a title derived from the document
// name.
//
// With debug enabled, the builder collects a [Report] of accepted and
// rejected fragments with per-fragment rejection reasons.
package outline
