package main

import (
	"fmt"

	"github.com/mwalkiewicz/corpscan"
)

// Run executes the analyze command.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	results, err := deps.Analysis.AnalyzeDomains(deps.Ctx, c.Domains)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", corpscan.ErrorMessage(err))
		return err
	}

	for _, a := range results {
		printAnalysis(deps, a)
	}
	return nil
}

func printAnalysis(deps *Dependencies, a *corpscan.Analysis) {
	name := a.CompanyName
	if name == "" {
		name = "(not found)"
	}
	fmt.Fprintf(deps.Stdout, "%s  %s  %s", a.Domain, a.Status, name)
	if a.ContactURL != "" {
		fmt.Fprintf(deps.Stdout, "  %s", a.ContactURL)
	}
	fmt.Fprintln(deps.Stdout)
}
