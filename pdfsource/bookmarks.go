package pdfsource

import (
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/pagemill/outliner/outline"
)

// readBookmarks loads the document's bookmark tree. Bookmarks are optional
// metadata, so every failure here means the same thing as their absence:
// the heuristic pipeline takes over, and genuinely corrupt documents are
// reported by the content parser instead.
func readBookmarks(path string) []outline.TocEntry {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	bms, err := api.Bookmarks(f, model.NewDefaultConfiguration())
	if err != nil {
		return nil
	}

	return flattenBookmarks(bms, 1, nil)
}

// crossCheckPageCount asks pdfcpu for the page count, for documents whose
// page tree confuses the content parser. Returns 0 when it cannot tell.
func crossCheckPageCount(path string) int {
	f, err := os.Open(path)
	if err != nil {
		return 0
	}
	defer f.Close()

	n, err := api.PageCount(f, model.NewDefaultConfiguration())
	if err != nil {
		return 0
	}
	return n
}

// flattenBookmarks walks the bookmark tree depth-first, recording each node's
// nesting depth. Depth clamping happens later, at outline assembly.
func flattenBookmarks(bms []pdfcpu.Bookmark, depth int, out []outline.TocEntry) []outline.TocEntry {
	for _, bm := range bms {
		out = append(out, outline.TocEntry{
			Level: depth,
			Title: bm.Title,
			Page:  bm.PageFrom,
		})
		if len(bm.Kids) > 0 {
			out = flattenBookmarks(bm.Kids, depth+1, out)
		}
	}
	return out
}
