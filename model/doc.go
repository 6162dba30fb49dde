// Package model provides the shared data types for outline inference.
//
// This package defines the value types that flow through the inference
// pipeline, from raw positioned text to the final document outline.
//
// # Fragments
//
// A [Fragment] is one positioned run of text with font and style metadata,
// as reported by the PDF source for a single page:
//
//	frag := model.Fragment{
//	    Text:     "1. Overview",
//	    FontSize: 16,
//	    Page:     1,
//	    BBox:     model.NewBBox(72, 100, 200, 16),
//	}
//
// Fragments are immutable value records. Once a fragment's SequenceIndex is
// assigned it is never changed; it is the sole ordering key for final output.
//
// # Outline
//
// The [Outline] type is the final artifact: a document title plus an ordered
// list of [OutlineEntry] values. Heading levels are represented by
// [HeadingLevel], which serializes as "H1", "H2" or "H3".
//
// # Geometry
//
// [BBox] is a minimal bounding box with a top-left origin: Y grows downward,
// so a fragment near the top of the page has a small Y. This matches the
// band arithmetic used for header/footer detection.
//
// # Normalization
//
// [NormalizeText] produces the canonical form used for title matching and
// de-duplication: Unicode NFC, whitespace collapsed to single spaces, and
// leading/trailing whitespace removed. It is idempotent.
package model
