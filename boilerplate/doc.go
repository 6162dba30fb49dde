// Package boilerplate detects repeating headers and footers across the pages
// of a document.
//
// Headers and footers are confirmed by repetition: text near the top or
// bottom of the page that recurs on enough pages is boilerplate, as is
// bottom-band text matching common footer signals (page numbers, copyright
// marks, version strings) on as few as two pages.
//
// The [Detector] has a strict three-phase lifecycle:
//
//	d := boilerplate.New()
//	for each page {
//	    for each fragment {
//	        d.Record(frag)        // accumulation
//	    }
//	}
//	d.Finalize(totalPages)        // exactly once
//	d.IsBoilerplate("Page 3")     // queries, read-only from here on
//
// Confirmation needs global page counts, so querying before Finalize is a
// programming error and panics. Finalize may be called exactly once.
//
// Matching is tolerant of embedded page numbers: "Page 3" matches a confirmed
// "Page 12" because both collapse to "page #" under digit normalization.
package boilerplate
