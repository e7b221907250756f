package main

import (
	"fmt"

	"github.com/mwalkiewicz/corpscan"
)

// Run executes the add command.
func (c *AddCmd) Run(deps *Dependencies) error {
	analysis := &corpscan.Analysis{
		Domain: c.Domain,
		Status: corpscan.StatusPending,
	}

	if err := deps.Domains.CreateDomain(deps.Ctx, analysis); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", corpscan.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Added domain %q (%s)\n", c.Domain, analysis.ID)
	return nil
}
