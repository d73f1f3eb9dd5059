package lint_test

import (
	"testing"

	"go.uber.org/zap"

	"cssel/lint"
	"cssel/selector"
)

func TestChecker_CleanSelectors(t *testing.T) {
	c := lint.NewChecker(zap.NewNop())

	for _, sel := range []string{
		"div#main.container",
		`a[href$=".png"]:focus`,
		"p::before",
		"div#a + span#b",
		"ul > li:first-child",
	} {
		warnings, err := c.Check(sel)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", sel, err)
		}
		if len(warnings) != 0 {
			t.Errorf("%q: unexpected warnings: %v", sel, warnings)
		}
	}
}

func TestChecker_BuilderOutput(t *testing.T) {
	c := lint.NewChecker(nil)

	sel, err := selector.New().Element("a").Attr(`href$=".png"`).PseudoClass("focus").Result()
	if err != nil {
		t.Fatalf("unexpected builder error: %v", err)
	}
	if _, err := c.Check(sel); err != nil {
		t.Errorf("builder output failed check: %v", err)
	}
}

func TestChecker_Empty(t *testing.T) {
	c := lint.NewChecker(nil)
	if _, err := c.Check("   "); err == nil {
		t.Error("expected error for empty selector")
	}
}

func TestChecker_UnbalancedBrackets(t *testing.T) {
	c := lint.NewChecker(nil)
	if _, err := c.Check("a[href"); err == nil {
		t.Error("expected error for unbalanced brackets")
	}
	if _, err := c.Check("a]b"); err == nil {
		t.Error("expected error for stray closing bracket")
	}
}

func TestChecker_InvalidTokens(t *testing.T) {
	c := lint.NewChecker(nil)
	for _, sel := range []string{
		"div { color: red }",
		"a;b",
		"@media p",
	} {
		if _, err := c.Check(sel); err == nil {
			t.Errorf("%q: expected error", sel)
		}
	}
}

func TestChecker_UnterminatedString(t *testing.T) {
	c := lint.NewChecker(nil)
	if _, err := c.Check(`a[href="x]`); err == nil {
		t.Error("expected error for unterminated string")
	}
}

func TestChecker_Warnings(t *testing.T) {
	c := lint.NewChecker(nil)

	warnings, err := c.Check("div, span")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %v", warnings)
	}

	warnings, err = c.Check("div /* x */ span")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %v", warnings)
	}
}
