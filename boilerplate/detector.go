package boilerplate

import (
	"regexp"
	"strings"

	"github.com/pagemill/outliner/model"
)

// Config holds configuration for header/footer detection
type Config struct {
	// TopBandRatio is the fraction of page height from the top within which
	// a fragment's vertical center marks it as a header candidate
	// Default: 0.10
	TopBandRatio float64

	// BottomBandRatio is the fraction of page height from the top at or
	// beyond which a fragment's vertical center marks it as a footer
	// candidate. Default: 0.90
	BottomBandRatio float64

	// MaxCandidateLen is the maximum text length (in runes) for a
	// header/footer candidate; longer fragments are body text
	// Default: 100
	MaxCandidateLen int

	// RepeatDivisor sets the repetition threshold: a candidate is confirmed
	// when seen on at least max(2, totalPages/RepeatDivisor) distinct pages
	// Default: 3
	RepeatDivisor int

	// PatternMinPages is the relaxed threshold for bottom-band candidates
	// matching a footer-signal pattern. Default: 2
	PatternMinPages int
}

// DefaultConfig returns sensible default configuration
func DefaultConfig() Config {
	return Config{
		TopBandRatio:    0.10,
		BottomBandRatio: 0.90,
		MaxCandidateLen: 100,
		RepeatDivisor:   3,
		PatternMinPages: 2,
	}
}

// footerSignalPatterns match footer text whose embedded numbers vary per
// page and would never repeat verbatim. Matched against lowercased text.
var footerSignalPatterns = []struct {
	re    *regexp.Regexp
	label string
}{
	{regexp.MustCompile(`page \d+`), "page number"},
	{regexp.MustCompile(`\d+ of \d+`), "n of m"},
	{regexp.MustCompile(`©`), "copyright mark"},
	{regexp.MustCompile(`copyright`), "copyright word"},
	{regexp.MustCompile(`version \d+`), "version"},
	{regexp.MustCompile(`\d{4}`), "year"},
}

// structuralPatterns match text that is boilerplate by shape alone,
// independent of the confirmed sets. Matched against lowercased text.
var structuralPatterns = []struct {
	re    *regexp.Regexp
	label string
}{
	{regexp.MustCompile(`page \d+`), "page number"},
	{regexp.MustCompile(`\d+ of \d+`), "n of m"},
	{regexp.MustCompile(`chapter \d+`), "chapter marker"},
	{regexp.MustCompile(`section \d+`), "section marker"},
	{regexp.MustCompile(`©.*\d{4}`), "copyright with year"},
	{regexp.MustCompile(`copyright.*\d{4}`), "copyright with year"},
	{regexp.MustCompile(`version \d+`), "version"},
	{regexp.MustCompile(`^[.\s]+$`), "punctuation only"},
}

var digitRuns = regexp.MustCompile(`\d+`)

// Detector accumulates header and footer candidates across pages and, once
// finalized, answers boilerplate queries for the rest of the document's
// processing. It is not safe for concurrent use.
type Detector struct {
	config Config

	// candidate text -> pages seen on, keyed by raw trimmed text
	headerPages map[string][]int
	footerPages map[string][]int

	confirmedHeaders map[string]struct{}
	confirmedFooters map[string]struct{}

	finalized bool
}

// New creates a detector with default configuration
func New() *Detector {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates a detector with custom configuration
func NewWithConfig(config Config) *Detector {
	return &Detector{
		config:      config,
		headerPages: make(map[string][]int),
		footerPages: make(map[string][]int),
	}
}

// Record accumulates a fragment as a header or footer candidate based on
// where its vertical center falls on the page. Fragments in the middle band,
// and fragments too long to be boilerplate, are ignored.
func (d *Detector) Record(frag model.Fragment) {
	if d.finalized {
		panic("boilerplate: Record called after Finalize")
	}

	text := strings.TrimSpace(frag.Text)
	if len([]rune(text)) > d.config.MaxCandidateLen {
		return
	}

	center := frag.BBox.VerticalCenter()
	switch {
	case center <= frag.PageHeight*d.config.TopBandRatio:
		d.headerPages[text] = append(d.headerPages[text], frag.Page)
	case center >= frag.PageHeight*d.config.BottomBandRatio:
		d.footerPages[text] = append(d.footerPages[text], frag.Page)
	}
}

// Finalize confirms the accumulated candidates against the whole-document
// repetition threshold. It must be called exactly once, after all pages have
// been recorded and before any query.
func (d *Detector) Finalize(totalPages int) {
	if d.finalized {
		panic("boilerplate: Finalize called twice")
	}
	d.finalized = true

	minRepeats := totalPages / d.config.RepeatDivisor
	if minRepeats < 2 {
		minRepeats = 2
	}

	d.confirmedHeaders = make(map[string]struct{})
	d.confirmedFooters = make(map[string]struct{})

	for text, pages := range d.headerPages {
		if distinctPages(pages) >= minRepeats {
			d.confirmedHeaders[text] = struct{}{}
		}
	}
	for text, pages := range d.footerPages {
		if distinctPages(pages) >= minRepeats {
			d.confirmedFooters[text] = struct{}{}
		}
	}

	// Footers with embedded page numbers vary per page and never reach the
	// repeat threshold as identical strings. A footer-signal match on a
	// couple of pages is enough.
	for text, pages := range d.footerPages {
		if _, ok := d.confirmedFooters[text]; ok {
			continue
		}
		if distinctPages(pages) < d.config.PatternMinPages {
			continue
		}
		lower := strings.ToLower(text)
		for _, p := range footerSignalPatterns {
			if p.re.MatchString(lower) {
				d.confirmedFooters[text] = struct{}{}
				break
			}
		}
	}
}

// Finalized reports whether Finalize has been called
func (d *Detector) Finalized() bool {
	return d.finalized
}

// IsBoilerplate reports whether text is confirmed header/footer content, is
// digit-similar to a confirmed entry, or matches a generic structural
// pattern. It panics if the detector has not been finalized.
func (d *Detector) IsBoilerplate(text string) bool {
	if !d.finalized {
		panic("boilerplate: IsBoilerplate called before Finalize")
	}

	text = strings.TrimSpace(text)

	if _, ok := d.confirmedHeaders[text]; ok {
		return true
	}
	if _, ok := d.confirmedFooters[text]; ok {
		return true
	}

	for confirmed := range d.confirmedHeaders {
		if similarText(text, confirmed) {
			return true
		}
	}
	for confirmed := range d.confirmedFooters {
		if similarText(text, confirmed) {
			return true
		}
	}

	lower := strings.ToLower(text)
	for _, p := range structuralPatterns {
		if p.re.MatchString(lower) {
			return true
		}
	}

	return false
}

// ConfirmedHeaders returns the confirmed header texts. It panics if the
// detector has not been finalized.
func (d *Detector) ConfirmedHeaders() []string {
	return d.confirmedSet(d.confirmedHeaders)
}

// ConfirmedFooters returns the confirmed footer texts. It panics if the
// detector has not been finalized.
func (d *Detector) ConfirmedFooters() []string {
	return d.confirmedSet(d.confirmedFooters)
}

func (d *Detector) confirmedSet(set map[string]struct{}) []string {
	if !d.finalized {
		panic("boilerplate: confirmed sets read before Finalize")
	}
	var texts []string
	for text := range set {
		texts = append(texts, text)
	}
	return texts
}

// similarText reports whether two strings are equal after lowercasing,
// trimming, and collapsing every digit run to a placeholder. The normalized
// form must be longer than 3 runes, so bare numbers never match each other.
func similarText(a, b string) bool {
	na := normalizeForComparison(a)
	nb := normalizeForComparison(b)
	return na == nb && len([]rune(na)) > 3
}

// normalizeForComparison lowercases, trims, and replaces digit runs with "#"
func normalizeForComparison(text string) string {
	return digitRuns.ReplaceAllString(strings.ToLower(strings.TrimSpace(text)), "#")
}

// distinctPages counts the distinct page numbers in a seen-on list
func distinctPages(pages []int) int {
	seen := make(map[int]struct{}, len(pages))
	for _, p := range pages {
		seen[p] = struct{}{}
	}
	return len(seen)
}
