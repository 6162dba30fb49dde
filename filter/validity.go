package filter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pagemill/outliner/model"
)

// Config holds configuration for fragment validity filtering
type Config struct {
	// MinFontSize is the smallest font size treated as visible text
	// Default: 4 points
	MinFontSize float64

	// MinBoxWidth is the minimum bounding-box width for a real glyph run
	// Default: 5 points
	MinBoxWidth float64

	// MinBoxHeight is the minimum bounding-box height for a real glyph run
	// Default: 3 points
	MinBoxHeight float64

	// MaxColor is the luminance above which text is considered near-white
	// (hidden). Default: 0.95
	MaxColor float64

	// CrossCheckMinLen is the minimum normalized fragment length (in runes)
	// before the fragment is cross-validated against the page's plain text
	// Default: 10
	CrossCheckMinLen int

	// MinWordLen is the word length (in runes) above which a word counts
	// toward the word-match ratio. Default: 2
	MinWordLen int

	// WordMatchRatio is the minimum fraction of a fragment's words that must
	// appear in the page plain text when the fragment itself does not
	// Default: 0.70
	WordMatchRatio float64
}

// DefaultConfig returns sensible default configuration
func DefaultConfig() Config {
	return Config{
		MinFontSize:      4.0,
		MinBoxWidth:      5.0,
		MinBoxHeight:     3.0,
		MaxColor:         0.95,
		CrossCheckMinLen: 10,
		MinWordLen:       2,
		WordMatchRatio:   0.70,
	}
}

// suspiciousPatterns flag text shapes that indicate hidden or generated
// content. Patterns are anchored at the start and matched against the raw
// trimmed fragment text.
var suspiciousPatterns = []struct {
	re    *regexp.Regexp
	label string
}{
	{regexp.MustCompile(`^[a-zA-Z]\s[a-zA-Z]\s[a-zA-Z]`), "single letters separated by spaces"},
	{regexp.MustCompile(`^\s*[^\w\s]*\s*$`), "only non-word characters"},
	{regexp.MustCompile(`^.{1,2}$`), "very short text"},
	{regexp.MustCompile(`^[A-Z]{2,}\s*$`), "short all-caps text"},
	{regexp.MustCompile(`^\d+\s*$`), "numbers only"},
}

// Validator decides whether a text fragment is visible, well-formed, and
// present in the page's rendered content.
type Validator struct {
	config Config
}

// NewValidator creates a validator with default configuration
func NewValidator() *Validator {
	return &Validator{config: DefaultConfig()}
}

// NewValidatorWithConfig creates a validator with custom configuration
func NewValidatorWithConfig(config Config) *Validator {
	return &Validator{config: config}
}

// Validate checks a fragment against the page's plain text and reports
// whether it should enter the inference pipeline. The returned reason is a
// human-readable diagnostic for the first failed check, empty on acceptance.
func (v *Validator) Validate(frag model.Fragment, pagePlainText string) (bool, string) {
	text := strings.TrimSpace(frag.Text)

	if frag.FontSize < v.config.MinFontSize {
		return false, fmt.Sprintf("font size too small: %.1f", frag.FontSize)
	}

	if frag.BBox.X < 0 || frag.BBox.Y < 0 {
		return false, fmt.Sprintf("negative origin: (%.1f, %.1f)", frag.BBox.X, frag.BBox.Y)
	}

	if frag.BBox.Width < v.config.MinBoxWidth || frag.BBox.Height < v.config.MinBoxHeight {
		return false, fmt.Sprintf("degenerate box: %.1fx%.1f", frag.BBox.Width, frag.BBox.Height)
	}

	if frag.Color > v.config.MaxColor {
		return false, fmt.Sprintf("near-white text color: %.2f", frag.Color)
	}

	if ok, reason := v.crossValidate(text, pagePlainText); !ok {
		return false, reason
	}

	for _, p := range suspiciousPatterns {
		if p.re.MatchString(text) {
			return false, fmt.Sprintf("suspicious pattern (%s): %q", p.label, text)
		}
	}

	return true, ""
}

// crossValidate checks that the fragment corresponds to content actually
// present in the page's rendered text. Short fragments pass unchecked.
func (v *Validator) crossValidate(text, pagePlainText string) (bool, string) {
	normalized := collapseLower(text)
	if len([]rune(normalized)) <= v.config.CrossCheckMinLen {
		return true, ""
	}

	normalizedPage := collapseLower(pagePlainText)
	if strings.Contains(normalizedPage, normalized) {
		return true, ""
	}

	var words []string
	for _, w := range strings.Fields(normalized) {
		if len([]rune(w)) > v.config.MinWordLen {
			words = append(words, w)
		}
	}
	if len(words) == 0 {
		return true, ""
	}

	found := 0
	for _, w := range words {
		if strings.Contains(normalizedPage, w) {
			found++
		}
	}
	ratio := float64(found) / float64(len(words))
	if ratio < v.config.WordMatchRatio {
		return false, fmt.Sprintf("low word match ratio: %.2f for %q", ratio, preview(text, 50))
	}

	return true, ""
}

// collapseLower lowercases and collapses all whitespace runs to single spaces
func collapseLower(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// preview truncates a string to at most n runes for diagnostics
func preview(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
