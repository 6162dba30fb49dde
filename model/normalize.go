package model

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeText returns the canonical form of a text run: Unicode NFC,
// interior whitespace collapsed to single spaces, and surrounding whitespace
// trimmed. Normalizing an already-normalized string is a no-op.
//
// This form is used for title matching, de-duplication, and the text of
// emitted outline entries.
func NormalizeText(s string) string {
	return strings.Join(strings.Fields(norm.NFC.String(s)), " ")
}
