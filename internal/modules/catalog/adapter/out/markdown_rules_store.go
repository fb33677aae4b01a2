package out

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"timearena/internal/modules/catalog/domain"
	catalogout "timearena/internal/modules/catalog/port/out"
	"timearena/internal/platform/markdown"
)

//go:embed default_rules.md
var defaultRules string

type rulesMeta struct {
	Title string `yaml:"title"`
}

// MarkdownRulesStore reads rules text with a title in its frontmatter.
type MarkdownRulesStore struct {
	path string
}

func NewMarkdownRulesStore(path string) catalogout.RulesStore {
	return &MarkdownRulesStore{path: path}
}

func (s *MarkdownRulesStore) LoadRules(_ context.Context) (domain.Rules, error) {
	content := defaultRules
	if s.path != "" {
		b, err := os.ReadFile(s.path)
		switch {
		case err == nil:
			content = string(b)
		case !os.IsNotExist(err):
			return domain.Rules{}, fmt.Errorf("read rules: %w", err)
		}
	}
	meta := rulesMeta{Title: "Rules"}
	body, err := markdown.SplitFrontmatter(content, &meta)
	if err != nil {
		return domain.Rules{}, fmt.Errorf("parse rules: %w", err)
	}
	return domain.Rules{Title: meta.Title, Body: strings.TrimSpace(body)}, nil
}
