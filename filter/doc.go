// Package filter rejects text fragments that are hidden, malformed, or not
// actually present in a page's rendered text.
//
// PDF layout engines routinely emit text that a reader never sees: white-on-
// white spans, off-canvas artifacts, degenerate glyph boxes, and injected
// content that does not correspond to anything rendered. The [Validator]
// gates fragments before they reach outline inference:
//
//	v := filter.NewValidator()
//	ok, reason := v.Validate(frag, pagePlainText)
//	if !ok {
//	    // reason is a human-readable diagnostic, e.g. "font size too small: 2.0"
//	}
//
// Validation is a total function: it never fails, it only accepts or rejects.
// The rejection reason is for diagnostics only and carries no control flow.
package filter
