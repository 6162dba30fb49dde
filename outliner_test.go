package outliner

import (
	"testing"

	"github.com/pagemill/outliner/outline"
)

func TestOpen_DerivesDocName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"document.pdf", "document"},
		{"/tmp/reports/annual_report.pdf", "annual_report"},
		{"no_extension", "no_extension"},
		{"archive.tar.pdf", "archive.tar"},
	}
	for _, tt := range tests {
		if got := Open(tt.path).docName; got != tt.want {
			t.Errorf("Open(%q).docName = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestJob_ChainMethodsAreImmutable(t *testing.T) {
	base := Open("document.pdf")
	debugged := base.Debug()

	if base.config.Debug {
		t.Error("Debug mutated the original job")
	}
	if !debugged.config.Debug {
		t.Error("Debug did not apply to the new job")
	}

	custom := outline.DefaultBuilderConfig()
	custom.Heading.MaxLen = 80
	configured := base.WithConfig(custom)
	if base.config.Heading.MaxLen == 80 {
		t.Error("WithConfig mutated the original job")
	}
	if configured.config.Heading.MaxLen != 80 {
		t.Error("WithConfig did not apply")
	}

	renamed := base.DocName("override")
	if base.docName != "document" || renamed.docName != "override" {
		t.Errorf("DocName chain broken: base %q, renamed %q", base.docName, renamed.docName)
	}
}

func TestJob_MissingFile(t *testing.T) {
	_, _, err := Open("/nonexistent/input.pdf").Outline()
	if err == nil {
		t.Fatal("expected an error for a missing input file")
	}
}
