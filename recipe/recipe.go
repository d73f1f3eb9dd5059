// Package recipe loads declarative YAML descriptions of selectors and turns
// them into selector.Builder chains. A recipe mirrors the builder surface:
//
//	element: a
//	attrs: ['href$=".png"']
//	pseudo_classes: [focus]
//
// or a combined form, nesting recipes on both sides:
//
//	combine:
//	  left: {element: div, id: a}
//	  combinator: "+"
//	  right: {element: span, id: b}
package recipe

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	yaml "gopkg.in/yaml.v3"

	"cssel/selector"
)

// Recipe describes a single selector. When Combine is set the combined
// selector is built first and any plain parts are appended to the combined
// result.
type Recipe struct {
	Element       string   `yaml:"element,omitempty"`
	ID            string   `yaml:"id,omitempty"`
	Classes       []string `yaml:"classes,omitempty"`
	Attrs         []string `yaml:"attrs,omitempty"`
	PseudoClasses []string `yaml:"pseudo_classes,omitempty"`
	PseudoElement string   `yaml:"pseudo_element,omitempty"`
	Combine       *Combine `yaml:"combine,omitempty"`
}

// Combine joins two nested recipes with a combinator token. The token is
// embedded verbatim, same as selector.Combine.
type Combine struct {
	Left       Recipe `yaml:"left"`
	Combinator string `yaml:"combinator"`
	Right      Recipe `yaml:"right"`
}

// Load decodes a single recipe document. Unknown fields are rejected.
func Load(data []byte) (*Recipe, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var r Recipe
	if err := dec.Decode(&r); err != nil {
		return nil, fmt.Errorf("failed to decode recipe: %w", err)
	}
	return &r, nil
}

// Decode reads every YAML document from r as a recipe, in stream order.
func Decode(r io.Reader) ([]Recipe, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var recipes []Recipe
	for {
		var rec Recipe
		if err := dec.Decode(&rec); err != nil {
			if errors.Is(err, io.EOF) {
				return recipes, nil
			}
			return nil, fmt.Errorf("failed to decode recipe %d: %w", len(recipes), err)
		}
		recipes = append(recipes, rec)
	}
}

// Build chains the selector builder for this recipe. Parts are applied in
// selector kind order, so a recipe never trips ordering rules on its own -
// only genuinely illegal content does (say, appending an element to a
// combined selector that already carries ids).
func (r Recipe) Build() (selector.Builder, error) {
	b := selector.New()

	if r.Combine != nil {
		left, err := r.Combine.Left.Build()
		if err != nil {
			return left, fmt.Errorf("combine.left: %w", err)
		}
		right, err := r.Combine.Right.Build()
		if err != nil {
			return right, fmt.Errorf("combine.right: %w", err)
		}
		b = selector.Combine(left, selector.Combinator(r.Combine.Combinator), right)
	}

	if r.Element != "" {
		b = b.Element(r.Element)
	}
	if r.ID != "" {
		b = b.ID(r.ID)
	}
	for _, c := range r.Classes {
		b = b.Class(c)
	}
	for _, a := range r.Attrs {
		b = b.Attr(a)
	}
	for _, p := range r.PseudoClasses {
		b = b.PseudoClass(p)
	}
	if r.PseudoElement != "" {
		b = b.PseudoElement(r.PseudoElement)
	}

	return b, b.Err()
}
