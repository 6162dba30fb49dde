// Package outliner provides a fluent API for inferring a document outline
// (title plus up to three heading levels) from a PDF file.
//
// Basic usage:
//
//	result, _, err := outliner.Open("document.pdf").Outline()
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(result.Title)
//
// With options:
//
//	result, report, err := outliner.Open("report.pdf").
//	    Debug().
//	    Outline()
//
// When the document carries an author-supplied bookmark tree, it is used
// directly. Otherwise headings are inferred from text layout: fragments are
// validity-filtered, repeated headers and footers are dropped, and the
// surviving font sizes rank the heading levels. Heuristic inference never
// fails on odd content; it omits what it cannot classify.
//
// For advanced use cases, the lower-level outline and pdfsource packages are
// also available.
package outliner

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pagemill/outliner/export"
	"github.com/pagemill/outliner/model"
	"github.com/pagemill/outliner/outline"
	"github.com/pagemill/outliner/pdfsource"
)

// Job holds a pending outline inference for one document. Each configuration
// method returns a new Job instance, making chains safe to fork and reuse.
type Job struct {
	filename string
	docName  string
	config   outline.BuilderConfig
}

// Open prepares an outline job for a PDF file. Nothing is read until a
// terminal operation like Outline runs.
//
// Example:
//
//	result, _, err := outliner.Open("document.pdf").Outline()
func Open(filename string) *Job {
	return &Job{
		filename: filename,
		docName:  baseName(filename),
		config:   outline.DefaultBuilderConfig(),
	}
}

// clone creates a copy of the Job so chain methods stay immutable
func (j *Job) clone() *Job {
	return &Job{
		filename: j.filename,
		docName:  j.docName,
		config:   j.config,
	}
}

// Debug enables diagnostics collection. The populated report is returned by
// Outline alongside the result.
func (j *Job) Debug() *Job {
	next := j.clone()
	next.config.Debug = true
	return next
}

// WithConfig replaces the pipeline configuration wholesale
func (j *Job) WithConfig(config outline.BuilderConfig) *Job {
	next := j.clone()
	next.config = config
	return next
}

// DocName overrides the fallback title, which otherwise derives from the
// input filename.
func (j *Job) DocName(name string) *Job {
	next := j.clone()
	next.docName = name
	return next
}

// Outline opens the document, runs the pipeline, and returns the result with
// the diagnostics report. The report is only populated when Debug was set.
func (j *Job) Outline() (*model.Outline, *outline.Report, error) {
	doc, err := pdfsource.Open(j.filename)
	if err != nil {
		return nil, nil, err
	}
	defer doc.Close()

	builder := outline.NewBuilderWithConfig(doc, j.docName, j.config)
	result, err := builder.Build()
	if err != nil {
		return nil, nil, err
	}
	return result, builder.Report(), nil
}

// Process runs the full pipeline end to end: infer the outline for input and
// write it as JSON to output. An empty output path defaults to
// <input basename>_outline.json in the current directory.
func Process(input, output string, debug bool) error {
	job := Open(input)
	if debug {
		job = job.Debug()
	}

	result, _, err := job.Outline()
	if err != nil {
		return err
	}

	if output == "" {
		output = baseName(input) + "_outline.json"
	}
	if err := export.WriteOutlineFile(output, result); err != nil {
		return fmt.Errorf("write outline: %w", err)
	}
	return nil
}

// baseName strips the directory and extension from a path
func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
