package outline

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pagemill/outliner/boilerplate"
	"github.com/pagemill/outliner/filter"
	"github.com/pagemill/outliner/heading"
	"github.com/pagemill/outliner/model"
)

// BuilderConfig bundles the per-component configurations plus the debug
// toggle.
type BuilderConfig struct {
	Filter      filter.Config
	Boilerplate boilerplate.Config
	Heading     heading.Config
	Debug       bool
}

// DefaultBuilderConfig returns the default configuration for every component
func DefaultBuilderConfig() BuilderConfig {
	return BuilderConfig{
		Filter:      filter.DefaultConfig(),
		Boilerplate: boilerplate.DefaultConfig(),
		Heading:     heading.DefaultConfig(),
	}
}

// Builder runs the outline inference pipeline over a single document.
// A Builder processes one document and is not reusable.
type Builder struct {
	source  Source
	docName string
	config  BuilderConfig

	validator *filter.Validator
	detector  *boilerplate.Detector

	report Report
	built  bool
}

// NewBuilder creates a builder with default configuration. docName is the
// input's base name without extension, used as the fallback title.
func NewBuilder(source Source, docName string) *Builder {
	return NewBuilderWithConfig(source, docName, DefaultBuilderConfig())
}

// NewBuilderWithConfig creates a builder with custom configuration
func NewBuilderWithConfig(source Source, docName string, config BuilderConfig) *Builder {
	return &Builder{
		source:    source,
		docName:   docName,
		config:    config,
		validator: filter.NewValidatorWithConfig(config.Filter),
		detector:  boilerplate.NewWithConfig(config.Boilerplate),
	}
}

// Report returns the debug diagnostics collected during Build. It is only
// meaningful after Build and when the builder was configured with Debug.
func (b *Builder) Report() *Report {
	return &b.report
}

// Build runs the pipeline and returns the assembled outline. Source errors
// propagate wrapped as parsing failures; heuristic stages never fail.
func (b *Builder) Build() (*model.Outline, error) {
	if b.built {
		panic("outline: Build called twice on one builder")
	}
	b.built = true

	toc, err := b.source.BuiltinOutline()
	if err != nil {
		return nil, fmt.Errorf("read builtin outline: %w", err)
	}
	if len(toc) > 0 {
		b.report.UsedBuiltinOutline = true
		return fromBuiltin(toc, b.docName), nil
	}

	fragments, err := b.scan()
	if err != nil {
		return nil, err
	}

	b.detector.Finalize(b.source.PageCount())
	if b.config.Debug {
		b.report.ConfirmedHeaders = b.detector.ConfirmedHeaders()
		b.report.ConfirmedFooters = b.detector.ConfirmedFooters()
	}

	if len(fragments) == 0 {
		return &model.Outline{
			Title:   b.docName,
			Entries: []model.OutlineEntry{},
		}, nil
	}

	classifier := heading.NewClassifierWithConfig(b.detector, b.config.Heading)
	title := b.determineTitle(classifier, fragments)
	groups := classifier.RankLevels(fragments, title)

	return &model.Outline{
		Title:   title,
		Entries: assemble(groups),
	}, nil
}

// scan walks every page, gates fragments through the validity filter, feeds
// survivors to the boilerplate detector, and assigns global sequence indices
// in emission order.
func (b *Builder) scan() ([]model.Fragment, error) {
	var fragments []model.Fragment
	seq := 0

	for n := 1; n <= b.source.PageCount(); n++ {
		page, err := b.source.Page(n)
		if err != nil {
			return nil, fmt.Errorf("read page %d: %w", n, err)
		}

		for _, frag := range page.Fragments {
			b.report.TotalFragments++

			ok, reason := b.validator.Validate(frag, page.PlainText)
			if !ok {
				if b.config.Debug {
					b.report.Rejected = append(b.report.Rejected, RejectedFragment{
						Fragment: frag,
						Reason:   reason,
					})
				}
				continue
			}

			frag.SequenceIndex = seq
			seq++
			fragments = append(fragments, frag)
			b.detector.Record(frag)
		}
	}

	b.report.AcceptedFragments = len(fragments)
	return fragments, nil
}

// determineTitle picks the largest heading-shaped fragment on page 1. When
// page 1 has no heading-shaped fragment, the document name stands in.
func (b *Builder) determineTitle(classifier *heading.Classifier, fragments []model.Fragment) string {
	var best *model.Fragment
	for i := range fragments {
		frag := &fragments[i]
		if frag.Page != 1 {
			continue
		}
		if !classifier.IsHeadingShaped(frag.Text) {
			continue
		}
		if best == nil || frag.FontSize > best.FontSize {
			best = frag
		}
	}

	if best == nil {
		return b.docName
	}
	if title := model.NormalizeText(best.Text); title != "" {
		return title
	}
	return b.docName
}

// fromBuiltin reformats an author-supplied outline directly, clamping depths
// to the supported levels. Builtin metadata is always trusted over
// heuristics, and the title comes from the document name.
func fromBuiltin(toc []TocEntry, docName string) *model.Outline {
	entries := make([]model.OutlineEntry, 0, len(toc))
	for _, item := range toc {
		text := strings.TrimSpace(item.Title)
		if text == "" {
			continue
		}
		entries = append(entries, model.OutlineEntry{
			Level: model.LevelForDepth(item.Level),
			Text:  text,
			Page:  item.Page,
		})
	}
	return &model.Outline{
		Title:   docName,
		Entries: entries,
	}
}

// assemble concatenates the level groups and restores true document order by
// sequence index. Ranking is per level, but presentation order is always by
// position in the document.
func assemble(groups heading.LevelGroups) []model.OutlineEntry {
	combined := make([]model.HeadingEntry, 0, groups.Total())
	combined = append(combined, groups.H1...)
	combined = append(combined, groups.H2...)
	combined = append(combined, groups.H3...)

	sort.Slice(combined, func(i, j int) bool {
		return combined[i].SequenceIndex < combined[j].SequenceIndex
	})

	entries := make([]model.OutlineEntry, 0, len(combined))
	for _, h := range combined {
		entries = append(entries, model.OutlineEntry{
			Level: h.Level,
			Text:  h.Text,
			Page:  h.Page,
		})
	}
	return entries
}
