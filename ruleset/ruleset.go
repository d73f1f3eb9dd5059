// Package ruleset renders rules built around selector.Builder values into
// stylesheet text.
package ruleset

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"go.uber.org/multierr"

	"cssel/selector"
)

// Rule is a single rule: a built selector plus property declarations.
type Rule struct {
	Selector   selector.Builder
	Properties map[string]string
}

// Err reports the selector build error, if any.
func (r Rule) Err() error {
	return r.Selector.Err()
}

// Stylesheet is an ordered collection of rules.
type Stylesheet struct {
	Rules []Rule
}

// Add appends a rule and returns the stylesheet for chaining.
func (s *Stylesheet) Add(sel selector.Builder, props map[string]string) *Stylesheet {
	s.Rules = append(s.Rules, Rule{Selector: sel, Properties: props})
	return s
}

// Err aggregates build errors from all rule selectors.
func (s *Stylesheet) Err() error {
	var err error
	for i, r := range s.Rules {
		if e := r.Err(); e != nil {
			err = multierr.Append(err, fmt.Errorf("rule %d (%q): %w", i, r.Selector.String(), e))
		}
	}
	return err
}

// WriteTo writes the stylesheet to w in rule order, implementing io.WriterTo.
// Property order within a rule is sorted alphabetically for deterministic
// output. A stylesheet holding failed selectors is refused whole.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	if err := s.Err(); err != nil {
		return 0, err
	}

	var total int64
	for i, r := range s.Rules {
		n, err := writeRule(w, r)
		total += int64(n)
		if err != nil {
			return total, err
		}

		// Blank line between rules (except after last)
		if i < len(s.Rules)-1 {
			n, err = fmt.Fprint(w, "\n")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
	}
	return total, nil
}

// String returns the stylesheet text, empty when any selector failed.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	if _, err := s.WriteTo(&sb); err != nil {
		return ""
	}
	return sb.String()
}

// writeRule writes a single rule to w.
func writeRule(w io.Writer, r Rule) (int, error) {
	var total int
	n, err := fmt.Fprintf(w, "%s {\n", r.Selector.String())
	total += n
	if err != nil {
		return total, err
	}
	n, err = writeProperties(w, r.Properties)
	total += n
	if err != nil {
		return total, err
	}
	n, err = fmt.Fprint(w, "}\n")
	total += n
	return total, err
}

// writeProperties writes property declarations sorted alphabetically.
func writeProperties(w io.Writer, props map[string]string) (int, error) {
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)

	var total int
	for _, name := range names {
		n, err := fmt.Fprintf(w, "  %s: %s;\n", name, props[name])
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
