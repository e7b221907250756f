package main

import (
	"fmt"

	"github.com/mwalkiewicz/corpscan"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return corpscan.Errorf(corpscan.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Domains.DeleteDomain(deps.Ctx, c.Domain); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", corpscan.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted domain %q\n", c.Domain)
	return nil
}
