package model

// Style flag bits for Fragment.StyleFlags.
const (
	StyleBold = 1 << iota
	StyleItalic
)

// Fragment represents one positioned run of text extracted from a page,
// together with the font and style metadata needed for heading inference.
type Fragment struct {
	// Text is the raw text content of the run
	Text string

	// FontSize is the rendered font size in points
	FontSize float64

	// Page is the 1-based page number the fragment appears on
	Page int

	// BBox is the fragment's bounding box (top-left origin)
	BBox BBox

	// FontName is the PDF font name, e.g. "Helvetica-Bold"
	FontName string

	// StyleFlags carries style bits (StyleBold, StyleItalic)
	StyleFlags int

	// Color is a luminance-like value in [0,1]; values near 1 are
	// close to white
	Color float64

	// PageHeight is the height of the page the fragment belongs to
	PageHeight float64

	// SequenceIndex is the fragment's position in the global emission
	// order across all pages. It is assigned once, monotonically, and is
	// the sole basis for final outline ordering.
	SequenceIndex int
}
