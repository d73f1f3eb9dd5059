package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"cssel/lint"
	"cssel/recipe"
	"cssel/state"
)

func runBuild(ctx context.Context, cmd *cli.Command) error {

	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() == 0 {
		return errors.New("no recipe sources specified")
	}

	checking := env.Cfg.Linting.Enable && !cmd.Bool("no-check")
	checker := lint.NewChecker(env.Log)

	var err error
	for _, source := range cmd.Args().Slice() {
		var recipes []recipe.Recipe

		if source == "-" {
			recipes, err = recipe.Decode(os.Stdin)
			source = "STDIN"
		} else {
			var f *os.File
			if f, err = os.Open(source); err != nil {
				return fmt.Errorf("unable to open recipe source '%s': %w", source, err)
			}
			recipes, err = recipe.Decode(f)
			f.Close()
		}
		if err != nil {
			return fmt.Errorf("unable to read recipes from '%s': %w", source, err)
		}
		if len(recipes) == 0 {
			env.Log.Warn("No recipes found", zap.String("source", source))
			continue
		}
		env.Log.Debug("Processing recipes", zap.String("source", source), zap.Int("count", len(recipes)))

		for i, r := range recipes {
			b, err := r.Build()
			if err != nil {
				return fmt.Errorf("recipe %d in '%s': %w", i, source, err)
			}
			sel := b.String()

			if checking {
				if err := checkSelector(env, checker, sel); err != nil {
					return fmt.Errorf("recipe %d in '%s': %w", i, source, err)
				}
			}
			fmt.Fprintln(os.Stdout, sel)
		}
	}
	return nil
}

func runCheck(ctx context.Context, cmd *cli.Command) error {

	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() == 0 {
		return errors.New("no selectors specified")
	}

	checker := lint.NewChecker(env.Log)

	var err error
	for _, sel := range cmd.Args().Slice() {
		if er := checkSelector(env, checker, sel); er != nil {
			err = multierr.Append(err, er)
			continue
		}
		env.Log.Info("Selector is good", zap.String("selector", sel))
	}
	return err
}

func checkSelector(env *state.LocalEnv, checker *lint.Checker, sel string) error {
	warnings, err := checker.Check(sel)
	if err != nil {
		return fmt.Errorf("bad selector %q: %w", sel, err)
	}
	for _, w := range warnings {
		env.Log.Warn("Suspicious selector", zap.String("selector", sel), zap.String("problem", w))
	}
	if len(warnings) > 0 && env.Cfg.Linting.WarningsAsErrors {
		return fmt.Errorf("selector %q has %d warning(s)", sel, len(warnings))
	}
	return nil
}
