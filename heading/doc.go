// Package heading classifies surviving text fragments into heading levels.
//
// Classification has two parts. The shape test decides whether a fragment
// could be a heading at all: sensible length, not boilerplate, and none of
// the skip patterns (URLs, emails, bare numbers, TOC leader lines). Ranking
// then maps the distinct font sizes among heading-shaped fragments, sorted
// descending, onto H1, H2 and H3; sizes beyond the third are dropped.
//
//	c := heading.NewClassifier(detector)
//	groups := c.RankLevels(fragments, normalizedTitle)
//
// The title is excluded by normalized-text match after shape filtering, so a
// title candidate still has to look heading-shaped to be excluded. A
// normalized text that has produced an entry is never added again at any
// level; the first occurrence in document emission order wins.
//
// Ranking is a pure function of its inputs and requires a finalized
// boilerplate detector.
package heading
