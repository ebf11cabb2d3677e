package template

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aldsworth/ssot/internal/memory"
)

var fixedNow = time.Date(2026, 1, 20, 15, 30, 0, 0, time.UTC)

func TestRender_AllCategoriesResolve(t *testing.T) {
	for _, category := range Categories() {
		t.Run(string(category), func(t *testing.T) {
			out, err := Render(category, nil, fixedNow)
			if err != nil {
				t.Fatalf("Render(%q) error: %v", category, err)
			}
			if strings.Contains(out, "{{") {
				t.Errorf("output contains unresolved placeholder markers:\n%s", out)
			}
			if !strings.HasPrefix(out, "---\n") {
				t.Errorf("output should start with a frontmatter fence")
			}
		})
	}
}

func TestRender_Deterministic(t *testing.T) {
	overrides := map[string]string{"title": "Caching Strategy", "domain": "performance"}

	first, err := Render(memory.CategoryPattern, overrides, fixedNow)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	second, err := Render(memory.CategoryPattern, overrides, fixedNow)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if first != second {
		t.Error("identical overrides and clock should produce byte-identical output")
	}
}

func TestRender_OverridesWin(t *testing.T) {
	out, err := Render(memory.CategorySSOT, map[string]string{
		"title": "Analytics SSOT",
		"scope": "analytics",
	}, fixedNow)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !strings.Contains(out, "title: Analytics SSOT") {
		t.Error("title override not applied")
	}
	if !strings.Contains(out, "scope: analytics") {
		t.Error("scope override not applied")
	}
	if !strings.Contains(out, "subcategory: general") {
		t.Error("default subcategory should survive unrelated overrides")
	}
}

func TestRender_TimestampAndDate(t *testing.T) {
	out, err := Render(memory.CategorySSOT, nil, fixedNow)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !strings.Contains(out, "updated: 2026-01-20T15:30:00.000000+00:00") {
		t.Errorf("expected ISO-8601 timestamp with offset in output:\n%s", out)
	}
	if !strings.Contains(out, "(2026-01-20): Initial creation.") {
		t.Errorf("expected changelog date in output:\n%s", out)
	}
}

func TestRender_UnknownCategory(t *testing.T) {
	_, err := Render(memory.CategoryArchive, nil, fixedNow)
	var unknown *ErrUnknownCategory
	if !errors.As(err, &unknown) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
	if unknown.Category != "archive" {
		t.Errorf("Category = %q, want archive", unknown.Category)
	}
}

func TestRender_FailsOnUnresolvedPlaceholder(t *testing.T) {
	const bogus = memory.Category("bogus")
	Templates[bogus] = "# {{title}}\n\n{{no_such_placeholder}}\n"
	defer delete(Templates, bogus)

	_, err := Render(bogus, nil, fixedNow)
	var unresolved *ErrUnresolved
	if !errors.As(err, &unresolved) {
		t.Fatalf("expected ErrUnresolved, got %v", err)
	}
	if len(unresolved.Names) != 1 || unresolved.Names[0] != "no_such_placeholder" {
		t.Errorf("unresolved names = %v, want [no_such_placeholder]", unresolved.Names)
	}
}

func TestDefaults_CategoryAndDomain(t *testing.T) {
	values := Defaults(memory.CategorySSOT, fixedNow)
	if values["category"] != "ssot" {
		t.Errorf("category default = %q, want ssot", values["category"])
	}
	if values["title"] != "New Memory" {
		t.Errorf("title default = %q, want New Memory", values["title"])
	}
	if values["date"] != "2026-01-20" {
		t.Errorf("date default = %q, want 2026-01-20", values["date"])
	}
}
