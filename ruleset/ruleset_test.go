package ruleset_test

import (
	"testing"

	"cssel/ruleset"
	"cssel/selector"
)

func TestStylesheet_String(t *testing.T) {
	var sheet ruleset.Stylesheet
	sheet.Add(selector.New().Element("p").Class("epigraph"), map[string]string{
		"font-style":  "italic",
		"text-indent": "1em",
	})
	sheet.Add(selector.New().Element("a").PseudoClass("hover"), map[string]string{
		"color": "#333",
	})

	want := `p.epigraph {
  font-style: italic;
  text-indent: 1em;
}

a:hover {
  color: #333;
}
`
	if got := sheet.String(); got != want {
		t.Errorf("expected:\n%s\ngot:\n%s", want, got)
	}
}

func TestStylesheet_PropertyOrderStable(t *testing.T) {
	var sheet ruleset.Stylesheet
	sheet.Add(selector.New().Element("div"), map[string]string{
		"z-index": "1",
		"border":  "none",
		"margin":  "0",
	})

	want := `div {
  border: none;
  margin: 0;
  z-index: 1;
}
`
	if got := sheet.String(); got != want {
		t.Errorf("expected:\n%s\ngot:\n%s", want, got)
	}
}

func TestStylesheet_RefusesFailedSelector(t *testing.T) {
	var sheet ruleset.Stylesheet
	sheet.Add(selector.New().Class("c").ID("x"), map[string]string{"color": "red"}) // out of order
	sheet.Add(selector.New().Element("p"), map[string]string{"margin": "0"})

	if sheet.Err() == nil {
		t.Fatal("expected aggregated selector error")
	}
	if got := sheet.String(); got != "" {
		t.Errorf("expected empty output for failed stylesheet, got %q", got)
	}
}

func TestStylesheet_Empty(t *testing.T) {
	var sheet ruleset.Stylesheet
	if sheet.Err() != nil {
		t.Errorf("unexpected error: %v", sheet.Err())
	}
	if sheet.String() != "" {
		t.Errorf("expected empty output, got %q", sheet.String())
	}
}
