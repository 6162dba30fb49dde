package heading

import (
	"regexp"
	"sort"
	"strings"

	"github.com/pagemill/outliner/boilerplate"
	"github.com/pagemill/outliner/model"
)

// Config holds configuration for heading classification
type Config struct {
	// MinLen is the minimum trimmed text length (in runes) for a heading
	// Default: 3
	MinLen int

	// MaxLen is the maximum trimmed text length (in runes) for a heading
	// Default: 150
	MaxLen int

	// MaxPeriods is the maximum number of literal periods before text is
	// treated as a TOC leader line or run-on sentence. Default: 10
	MaxPeriods int
}

// DefaultConfig returns sensible default configuration
func DefaultConfig() Config {
	return Config{
		MinLen:     3,
		MaxLen:     150,
		MaxPeriods: 10,
	}
}

// skipPatterns disqualify text from being a heading regardless of font size.
// Matched against the raw trimmed text; case-insensitive where the signal is
// case-free.
var skipPatterns = []struct {
	re    *regexp.Regexp
	label string
}{
	{regexp.MustCompile(`^\d+$`), "pure digits"},
	{regexp.MustCompile(`^[.\s]+$`), "punctuation only"},
	{regexp.MustCompile(`(?i)www\.`), "URL"},
	{regexp.MustCompile(`(?i)http`), "URL"},
	{regexp.MustCompile(`@`), "email"},
	{regexp.MustCompile(`^[^a-zA-Z]*$`), "no letters"},
	{regexp.MustCompile(`^\w{1,2}$`), "short word"},
	{regexp.MustCompile(`^[A-Z]\s*$`), "single capital"},
}

// Classifier decides which fragments are heading-shaped and ranks their
// font sizes into outline levels.
type Classifier struct {
	config   Config
	detector *boilerplate.Detector
}

// NewClassifier creates a classifier with default configuration. The
// detector must be finalized before classification runs.
func NewClassifier(detector *boilerplate.Detector) *Classifier {
	return NewClassifierWithConfig(detector, DefaultConfig())
}

// NewClassifierWithConfig creates a classifier with custom configuration
func NewClassifierWithConfig(detector *boilerplate.Detector, config Config) *Classifier {
	return &Classifier{
		config:   config,
		detector: detector,
	}
}

// IsHeadingShaped reports whether text qualifies as a structural heading
// candidate, independent of font size.
func (c *Classifier) IsHeadingShaped(text string) bool {
	text = strings.TrimSpace(text)

	n := len([]rune(text))
	if n < c.config.MinLen || n > c.config.MaxLen {
		return false
	}
	if strings.Count(text, ".") > c.config.MaxPeriods {
		return false
	}
	if c.detector.IsBoilerplate(text) {
		return false
	}
	for _, p := range skipPatterns {
		if p.re.MatchString(text) {
			return false
		}
	}
	return true
}

// LevelGroups holds ranked heading entries grouped by level.
type LevelGroups struct {
	H1 []model.HeadingEntry
	H2 []model.HeadingEntry
	H3 []model.HeadingEntry
}

// Total returns the number of entries across all levels
func (g LevelGroups) Total() int {
	return len(g.H1) + len(g.H2) + len(g.H3)
}

// RankLevels classifies fragments into H1-H3 by font-size rank. Fragments
// are first restricted to heading-shaped text; any fragment whose normalized
// text equals titleText is then dropped. The distinct font sizes of the
// survivors, sorted descending, map to H1, H2 and H3; further sizes are
// unranked and dropped. A normalized text produces at most one entry across
// all levels, first occurrence in emission order winning.
func (c *Classifier) RankLevels(fragments []model.Fragment, titleText string) LevelGroups {
	var shaped []model.Fragment
	for _, frag := range fragments {
		if !c.IsHeadingShaped(frag.Text) {
			continue
		}
		if titleText != "" && model.NormalizeText(frag.Text) == titleText {
			continue
		}
		shaped = append(shaped, frag)
	}

	levelBySize := rankSizes(shaped)

	var groups LevelGroups
	seen := make(map[string]struct{})
	for _, frag := range shaped {
		level, ok := levelBySize[frag.FontSize]
		if !ok {
			continue
		}
		text := model.NormalizeText(frag.Text)
		if text == "" {
			continue
		}
		if _, dup := seen[text]; dup {
			continue
		}
		seen[text] = struct{}{}

		entry := model.HeadingEntry{
			Level:         level,
			Text:          text,
			Page:          frag.Page,
			FontSize:      frag.FontSize,
			SequenceIndex: frag.SequenceIndex,
		}
		switch level {
		case model.LevelH1:
			groups.H1 = append(groups.H1, entry)
		case model.LevelH2:
			groups.H2 = append(groups.H2, entry)
		case model.LevelH3:
			groups.H3 = append(groups.H3, entry)
		}
	}

	return groups
}

// rankSizes maps the distinct font sizes present, sorted descending, onto
// the outline levels: largest to H1, second to H2, third to H3.
func rankSizes(fragments []model.Fragment) map[float64]model.HeadingLevel {
	distinct := make(map[float64]struct{})
	for _, frag := range fragments {
		distinct[frag.FontSize] = struct{}{}
	}

	sizes := make([]float64, 0, len(distinct))
	for size := range distinct {
		sizes = append(sizes, size)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(sizes)))

	levels := make(map[float64]model.HeadingLevel, model.MaxOutlineLevel)
	for i, size := range sizes {
		if i >= model.MaxOutlineLevel {
			break
		}
		levels[size] = model.LevelH1 + model.HeadingLevel(i)
	}
	return levels
}
