package heading

import (
	"strings"
	"testing"

	"github.com/pagemill/outliner/boilerplate"
	"github.com/pagemill/outliner/model"
)

// finalizedDetector returns a detector with no confirmed entries, finalized
// so queries are legal.
func finalizedDetector() *boilerplate.Detector {
	d := boilerplate.New()
	d.Finalize(1)
	return d
}

// headingFragment builds a fragment at the given size and emission position
func headingFragment(text string, size float64, page, seq int) model.Fragment {
	return model.Fragment{
		Text:          text,
		FontSize:      size,
		Page:          page,
		BBox:          model.NewBBox(72, 100, 300, size),
		PageHeight:    792,
		SequenceIndex: seq,
	}
}

func TestClassifier_IsHeadingShaped(t *testing.T) {
	c := NewClassifier(finalizedDetector())

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"numbered section", "1. Overview", true},
		{"plain heading", "Executive Summary", true},
		{"too short", "Ab", false},
		{"too long", strings.Repeat("x", 151), false},
		{"toc leader", "Overview..............12", false},
		{"pure digits", "42", false},
		{"dots only", ". . .", false},
		{"url www", "see www.example.com", false},
		{"url http", "https://example.com/doc", false},
		{"email", "author@example.com", false},
		{"no letters", "12-34 (56)", false},
		{"short word", "Hi", false},
		{"single capital", "A", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.IsHeadingShaped(tt.text); got != tt.want {
				t.Errorf("IsHeadingShaped(%q) = %v, expected %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestClassifier_BoilerplateIsNotHeadingShaped(t *testing.T) {
	d := boilerplate.New()
	for page := 1; page <= 3; page++ {
		d.Record(model.Fragment{
			Text:       "Acme Quarterly",
			Page:       page,
			BBox:       model.NewBBox(72, 20, 200, 12),
			PageHeight: 792,
		})
	}
	d.Finalize(3)
	c := NewClassifier(d)

	if c.IsHeadingShaped("Acme Quarterly") {
		t.Error("expected confirmed header text to fail the shape test")
	}
	if !c.IsHeadingShaped("Quarterly Results") {
		t.Error("expected unrelated text to pass the shape test")
	}
}

func TestClassifier_RankLevelsDeterminism(t *testing.T) {
	// Sizes {18, 14, 14, 10, 8}: H1=18, H2=14, H3=10, size 8 dropped.
	c := NewClassifier(finalizedDetector())
	fragments := []model.Fragment{
		headingFragment("Chapter One", 18, 1, 0),
		headingFragment("First Section", 14, 1, 1),
		headingFragment("Second Section", 14, 2, 2),
		headingFragment("A Subsection", 10, 2, 3),
		headingFragment("Fine Print Note", 8, 3, 4),
	}

	groups := c.RankLevels(fragments, "")

	if len(groups.H1) != 1 || groups.H1[0].Text != "Chapter One" {
		t.Errorf("unexpected H1 group: %+v", groups.H1)
	}
	if len(groups.H2) != 2 {
		t.Fatalf("expected 2 H2 entries, got %d", len(groups.H2))
	}
	if groups.H2[0].Text != "First Section" || groups.H2[1].Text != "Second Section" {
		t.Errorf("unexpected H2 group: %+v", groups.H2)
	}
	if len(groups.H3) != 1 || groups.H3[0].Text != "A Subsection" {
		t.Errorf("unexpected H3 group: %+v", groups.H3)
	}
	if groups.Total() != 4 {
		t.Errorf("expected size-8 fragment to be dropped, total %d", groups.Total())
	}
}

func TestClassifier_TitleExclusion(t *testing.T) {
	c := NewClassifier(finalizedDetector())
	fragments := []model.Fragment{
		headingFragment("Executive  Summary", 20, 1, 0),
		headingFragment("1. Overview", 16, 1, 1),
		headingFragment("1.1 Background", 13, 2, 2),
	}

	groups := c.RankLevels(fragments, "Executive Summary")

	// With the title excluded, size 16 ranks H1 and size 13 ranks H2.
	if len(groups.H1) != 1 || groups.H1[0].Text != "1. Overview" {
		t.Errorf("unexpected H1 group: %+v", groups.H1)
	}
	if len(groups.H2) != 1 || groups.H2[0].Text != "1.1 Background" {
		t.Errorf("unexpected H2 group: %+v", groups.H2)
	}
	if len(groups.H3) != 0 {
		t.Errorf("expected empty H3 group, got %+v", groups.H3)
	}
}

func TestClassifier_TitleSizeSharedByOtherHeadings(t *testing.T) {
	// Only the title's exact text is excluded. Another fragment at the
	// title's font size keeps that size in the ranking.
	c := NewClassifier(finalizedDetector())
	fragments := []model.Fragment{
		headingFragment("Executive Summary", 20, 1, 0),
		headingFragment("Closing Remarks", 20, 9, 1),
		headingFragment("1. Overview", 16, 1, 2),
	}

	groups := c.RankLevels(fragments, "Executive Summary")

	if len(groups.H1) != 1 || groups.H1[0].Text != "Closing Remarks" {
		t.Errorf("expected title-sized heading to rank H1, got %+v", groups.H1)
	}
	if len(groups.H2) != 1 || groups.H2[0].Text != "1. Overview" {
		t.Errorf("unexpected H2 group: %+v", groups.H2)
	}
}

func TestClassifier_DeduplicationFirstWins(t *testing.T) {
	c := NewClassifier(finalizedDetector())
	fragments := []model.Fragment{
		headingFragment("Methods", 14, 2, 5),
		headingFragment("Methods", 14, 7, 9),
		headingFragment("Methods  ", 10, 8, 11), // same normalized text, lower rank
	}

	groups := c.RankLevels(fragments, "")

	if groups.Total() != 1 {
		t.Fatalf("expected a single entry after de-duplication, got %d", groups.Total())
	}
	if len(groups.H1) != 1 || groups.H1[0].SequenceIndex != 5 {
		t.Errorf("expected first occurrence to win, got %+v", groups.H1)
	}
}

func TestClassifier_UnrankedWithoutShapedFragments(t *testing.T) {
	c := NewClassifier(finalizedDetector())
	fragments := []model.Fragment{
		headingFragment("42", 18, 1, 0),
		headingFragment("...", 14, 1, 1),
	}

	groups := c.RankLevels(fragments, "")

	if groups.Total() != 0 {
		t.Errorf("expected no entries, got %+v", groups)
	}
}
