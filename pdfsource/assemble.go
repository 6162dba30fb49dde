package pdfsource

import (
	"math"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/pagemill/outliner/model"
)

// gapRatio is the horizontal gap, as a fraction of the font size, beyond
// which two adjacent runs get a space inserted between them.
const gapRatio = 0.3

// baselineTolerance is the vertical slack, in points, within which two runs
// count as sitting on the same line.
const baselineTolerance = 0.5

// minFragmentLen drops stray one-character runs that carry no heading signal
const minFragmentLen = 2

// assembleRuns merges the page's raw text runs into line-level fragments.
// Runs are grouped while they share a baseline, font name, and font size;
// any change starts a new fragment. Fragments whose trimmed text is shorter
// than two characters are dropped.
func assembleRuns(runs []pdf.Text, page int, pageHeight float64) []model.Fragment {
	var fragments []model.Fragment

	var (
		sb    strings.Builder
		cur   pdf.Text
		left  float64
		right float64
		open  bool
	)

	flush := func() {
		if !open {
			return
		}
		open = false
		if frag, ok := buildFragment(sb.String(), cur, left, right, page, pageHeight); ok {
			fragments = append(fragments, frag)
		}
		sb.Reset()
	}

	for _, run := range runs {
		if run.S == "" {
			continue
		}
		if open && sameRun(cur, run) {
			if run.X-right > gapRatio*cur.FontSize {
				sb.WriteString(" ")
			}
			sb.WriteString(run.S)
			if end := run.X + run.W; end > right {
				right = end
			}
			continue
		}
		flush()
		cur = run
		left = run.X
		right = run.X + run.W
		sb.WriteString(run.S)
		open = true
	}
	flush()

	return fragments
}

// sameRun reports whether b continues the line started by a
func sameRun(a, b pdf.Text) bool {
	return a.Font == b.Font &&
		a.FontSize == b.FontSize &&
		math.Abs(a.Y-b.Y) <= baselineTolerance
}

// buildFragment converts an assembled run into a model fragment, translating
// the bottom-left baseline coordinates into the top-left origin box the
// detection bands expect.
func buildFragment(text string, run pdf.Text, left, right float64, page int, pageHeight float64) (model.Fragment, bool) {
	if len(strings.TrimSpace(text)) < minFragmentLen {
		return model.Fragment{}, false
	}

	width := right - left
	if width < 0 {
		width = 0
	}

	top := pageHeight - run.Y - run.FontSize

	return model.Fragment{
		Text:       text,
		FontSize:   run.FontSize,
		Page:       page,
		BBox:       model.NewBBox(left, top, width, run.FontSize),
		FontName:   run.Font,
		StyleFlags: styleFlags(run.Font),
		PageHeight: pageHeight,
	}, true
}

// styleFlags infers bold and italic from conventional font-name suffixes
func styleFlags(fontName string) int {
	name := strings.ToLower(fontName)
	var flags int
	if strings.Contains(name, "bold") {
		flags |= model.StyleBold
	}
	if strings.Contains(name, "italic") || strings.Contains(name, "oblique") {
		flags |= model.StyleItalic
	}
	return flags
}
