package markdown_test

import (
	"testing"

	"timearena/internal/platform/markdown"
)

type rulesMeta struct {
	Title   string `yaml:"title"`
	Version int    `yaml:"version"`
}

func TestSplitFrontmatterDecodesMeta(t *testing.T) {
	t.Parallel()
	meta := rulesMeta{}
	body, err := markdown.SplitFrontmatter("---\ntitle: Arena Rules\nversion: 2\n---\n\n# Rules\n", &meta)
	if err != nil {
		t.Fatalf("split frontmatter: %v", err)
	}
	if meta.Title != "Arena Rules" || meta.Version != 2 {
		t.Fatalf("unexpected meta: %+v", meta)
	}
	if body != "# Rules\n" {
		t.Fatalf("unexpected body: %q", body)
	}
}

func TestSplitFrontmatterWithoutBlockReturnsBody(t *testing.T) {
	t.Parallel()
	meta := rulesMeta{Title: "kept"}
	body, err := markdown.SplitFrontmatter("plain text", &meta)
	if err != nil {
		t.Fatalf("split frontmatter: %v", err)
	}
	if body != "plain text" || meta.Title != "kept" {
		t.Fatalf("expected untouched body and meta, got %q %+v", body, meta)
	}
}

func TestSplitFrontmatterRejectsUnclosedBlock(t *testing.T) {
	t.Parallel()
	if _, err := markdown.SplitFrontmatter("---\ntitle: x\n", &rulesMeta{}); err == nil {
		t.Fatalf("expected missing separator error")
	}
}
