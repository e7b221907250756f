package main

import (
	"fmt"

	"github.com/mwalkiewicz/corpscan"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	domains, err := deps.Domains.FindDomains(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", corpscan.ErrorMessage(err))
		return err
	}

	if len(domains) == 0 {
		fmt.Fprintln(deps.Stdout, "No domains tracked. Use 'corpscan add' to register one.")
		return nil
	}

	for _, a := range domains {
		printAnalysis(deps, a)
	}

	return nil
}
