// Package lint checks selector strings for token-level problems. It does not
// parse selector grammar - the builder already enforces part ordering - it
// verifies that the final string tokenizes as legal CSS and flags constructs
// that have no place inside a selector.
package lint

import (
	"errors"
	"fmt"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Checker tokenizes selector strings and reports problems.
type Checker struct {
	log *zap.Logger
}

// NewChecker creates a new selector checker.
func NewChecker(log *zap.Logger) *Checker {
	if log == nil {
		log = zap.NewNop()
	}
	return &Checker{log: log.Named("selector-lint")}
}

// Check tokenizes sel and returns advisory warnings plus a hard error for
// strings that cannot be a selector at all: empty input, tokenizer failures,
// unterminated strings or unbalanced attribute brackets.
func (c *Checker) Check(sel string) ([]string, error) {
	if strings.TrimSpace(sel) == "" {
		return nil, errors.New("empty selector")
	}

	c.log.Debug("Checking selector", zap.String("selector", sel))

	var (
		warnings []string
		brackets int
		parens   int
	)

	lexer := css.NewLexer(parse.NewInput(strings.NewReader(sel)))
	for {
		tt, data := lexer.Next()

		switch tt {
		case css.ErrorToken:
			if err := lexer.Err(); err != nil && !errors.Is(err, io.EOF) {
				return warnings, fmt.Errorf("selector does not tokenize: %w", err)
			}
			if brackets != 0 {
				return warnings, fmt.Errorf("unbalanced attribute brackets in %q", sel)
			}
			if parens != 0 {
				return warnings, fmt.Errorf("unbalanced parentheses in %q", sel)
			}
			c.log.Debug("Selector checked", zap.Int("warnings", len(warnings)))
			return warnings, nil

		case css.BadStringToken, css.BadURLToken:
			return warnings, fmt.Errorf("unterminated string in %q", sel)

		case css.LeftBraceToken, css.RightBraceToken, css.SemicolonToken, css.AtKeywordToken:
			return warnings, fmt.Errorf("token %q is not valid inside a selector", string(data))

		case css.LeftBracketToken:
			brackets++
		case css.RightBracketToken:
			brackets--
			if brackets < 0 {
				return warnings, fmt.Errorf("unbalanced attribute brackets in %q", sel)
			}

		case css.LeftParenthesisToken, css.FunctionToken:
			parens++
		case css.RightParenthesisToken:
			parens--
			if parens < 0 {
				return warnings, fmt.Errorf("unbalanced parentheses in %q", sel)
			}

		case css.CommaToken:
			warnings = append(warnings, "selector group (comma) - expected a single selector")
		case css.CommentToken:
			warnings = append(warnings, "comment inside selector")
		case css.URLToken:
			warnings = append(warnings, "url() inside selector")
		}
	}
}
