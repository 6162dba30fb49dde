package model

import "fmt"

// HeadingLevel represents the hierarchical level of an inferred heading.
type HeadingLevel int

const (
	LevelUnknown HeadingLevel = iota
	LevelTitle
	LevelH1
	LevelH2
	LevelH3
)

// MaxOutlineLevel is the deepest heading level emitted in an outline.
const MaxOutlineLevel = 3

// String returns a string representation of the heading level
func (l HeadingLevel) String() string {
	switch l {
	case LevelTitle:
		return "Title"
	case LevelH1:
		return "H1"
	case LevelH2:
		return "H2"
	case LevelH3:
		return "H3"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so heading levels serialize
// as "H1", "H2", "H3".
func (l HeadingLevel) MarshalText() ([]byte, error) {
	if l < LevelTitle || l > LevelH3 {
		return nil, fmt.Errorf("model: cannot marshal heading level %d", int(l))
	}
	return []byte(l.String()), nil
}

// LevelForDepth maps a 1-based outline depth to a heading level, clamping
// depths beyond MaxOutlineLevel to H3. Depths below 1 are treated as 1.
func LevelForDepth(depth int) HeadingLevel {
	if depth < 1 {
		depth = 1
	}
	if depth > MaxOutlineLevel {
		depth = MaxOutlineLevel
	}
	return LevelH1 + HeadingLevel(depth-1)
}

// HeadingEntry is a classified heading candidate with the metadata needed
// to order and de-duplicate it.
type HeadingEntry struct {
	// Level is the assigned heading level
	Level HeadingLevel

	// Text is the whitespace-normalized heading text
	Text string

	// Page is the 1-based page number
	Page int

	// FontSize is the font size the level was derived from
	FontSize float64

	// SequenceIndex is the source fragment's global emission position
	SequenceIndex int
}

// OutlineEntry is one entry of the final outline artifact.
type OutlineEntry struct {
	Level HeadingLevel `json:"level"`
	Text  string       `json:"text"`
	Page  int          `json:"page"`
}

// Outline is the final artifact: a synthesized document title plus the
// ordered heading entries. The title is a separate field, never an entry.
type Outline struct {
	Title   string         `json:"title"`
	Entries []OutlineEntry `json:"outline"`
}
