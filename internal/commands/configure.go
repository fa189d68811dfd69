package commands

import (
	"context"
	"fmt"
	"strings"

	"alpacacli/internal/cli"
	"alpacacli/internal/config"
)

const configureUsage = "alpaca configure [--id=<key>] [--secret=<key>] [--mode=paper|live] [--base-url=<url>]"

// Flag-to-store-key mapping. Only flags present in the invocation are
// written; credential correctness is not checked here.
var configureKeys = []struct {
	flag string
	key  string
}{
	{"id", config.KeyID},
	{"secret", config.KeySecret},
	{"mode", config.KeyMode},
	{"base-url", config.KeyBaseURL},
}

func configureOptions() []cli.OptionDecl {
	return []cli.OptionDecl{
		{Name: "id", Type: cli.TypeString},
		{Name: "secret", Type: cli.TypeString},
		{Name: "mode", Type: cli.TypeString},
		{Name: "base-url", Type: cli.TypeString},
	}
}

func configureRules() []cli.Rule {
	return []cli.Rule{
		{Field: "id", Kind: cli.RuleOptional},
		{Field: "secret", Kind: cli.RuleOptional},
		{Field: "mode", Kind: cli.RuleOneOf, Allowed: []string{"paper", "live"}},
		{Field: "base-url", Kind: cli.RuleOptional},
	}
}

func (a *App) runConfigure(_ context.Context, inv *cli.Invocation) error {
	var saved []string
	for _, m := range configureKeys {
		if !inv.Has(m.flag) {
			continue
		}
		if err := a.Store.Set(m.key, inv.String(m.flag)); err != nil {
			return err
		}
		saved = append(saved, m.key)
	}

	if len(saved) == 0 {
		fmt.Fprintf(a.Out, "Nothing to save.\nusage: %s\n", configureUsage)
		return nil
	}

	fmt.Fprintf(a.Out, "Saved %s to %s\n", strings.Join(saved, ", "), a.Store.Path())
	return nil
}
