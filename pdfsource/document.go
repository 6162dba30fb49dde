package pdfsource

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/ledongthuc/pdf"

	"github.com/pagemill/outliner/outline"
)

// defaultPageHeight is US Letter in points, used when a page carries no
// usable MediaBox.
const defaultPageHeight = 792.0

// Document is an opened PDF with all page content extracted, ready to serve
// as an outline.Source.
type Document struct {
	path      string
	file      *os.File
	reader    *pdf.Reader
	pageCount int
	builtin   []outline.TocEntry
	pages     []outline.PageData
}

// Open opens and fully extracts a PDF. The returned Document must be closed.
// A missing input file is reported before any parsing runs.
func Open(path string) (*Document, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("input file: %w", err)
	}

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("parse pdf %s: %w", filepath.Base(path), err)
	}

	pageCount := r.NumPage()
	if pageCount == 0 {
		pageCount = crossCheckPageCount(path)
	}

	d := &Document{
		path:      path,
		file:      f,
		reader:    r,
		pageCount: pageCount,
		builtin:   readBookmarks(path),
	}

	if err := d.extractAll(); err != nil {
		f.Close()
		return nil, err
	}
	return d, nil
}

// Close releases the underlying file
func (d *Document) Close() error {
	return d.file.Close()
}

// Path returns the path the document was opened from
func (d *Document) Path() string {
	return d.path
}

// BuiltinOutline returns the document's bookmark tree flattened to TOC
// entries, or an empty slice when the document has no bookmarks.
func (d *Document) BuiltinOutline() ([]outline.TocEntry, error) {
	return d.builtin, nil
}

// PageCount returns the number of pages
func (d *Document) PageCount() int {
	return d.pageCount
}

// Page returns the extracted content of the 1-based page n
func (d *Document) Page(n int) (outline.PageData, error) {
	if n < 1 || n > d.pageCount {
		return outline.PageData{}, fmt.Errorf("page %d out of range [1,%d]", n, d.pageCount)
	}
	return d.pages[n-1], nil
}

// extractAll extracts every page on a bounded worker pool. Pages are
// independent; determinism comes from indexing results by page number, not
// from worker scheduling.
func (d *Document) extractAll() error {
	d.pages = make([]outline.PageData, d.pageCount)
	errs := make([]error, d.pageCount)

	workers := runtime.NumCPU()
	if workers > d.pageCount {
		workers = d.pageCount
	}
	if workers < 1 {
		workers = 1
	}

	pageCh := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := range pageCh {
				d.pages[n-1], errs[n-1] = d.extractPage(n)
			}
		}()
	}
	for n := 1; n <= d.pageCount; n++ {
		pageCh <- n
	}
	close(pageCh)
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return fmt.Errorf("extract page %d: %w", i+1, err)
		}
	}
	return nil
}

// extractPage pulls one page's plain text and assembled fragments. The
// underlying content-stream reader signals malformed streams by panicking;
// that surfaces here as a parsing error.
func (d *Document) extractPage(n int) (page outline.PageData, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("page content: %v", r)
		}
	}()

	p := d.reader.Page(n)
	if p.V.IsNull() {
		return outline.PageData{Height: defaultPageHeight}, nil
	}

	height := pageHeight(p)

	plain, err := p.GetPlainText(nil)
	if err != nil {
		return outline.PageData{}, fmt.Errorf("plain text: %w", err)
	}

	return outline.PageData{
		PlainText: plain,
		Height:    height,
		Fragments: assembleRuns(p.Content().Text, n, height),
	}, nil
}

// pageHeight resolves the page's MediaBox height, walking up the page tree
// for inherited boxes. The walk is bounded in case of malformed parent
// cycles.
func pageHeight(p pdf.Page) float64 {
	v := p.V
	for depth := 0; depth < 32 && !v.IsNull(); depth++ {
		if mb := v.Key("MediaBox"); !mb.IsNull() && mb.Len() == 4 {
			if h := mb.Index(3).Float64() - mb.Index(1).Float64(); h > 0 {
				return h
			}
		}
		v = v.Key("Parent")
	}
	return defaultPageHeight
}
