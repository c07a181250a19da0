package main

import (
	"fmt"

	"github.com/fwojciec/htmlstore"
	"github.com/fwojciec/htmlstore/reconcile"
)

// Run executes the purge command.
func (c *PurgeCmd) Run(deps *Dependencies) error {
	r := &reconcile.Reconciler{Files: deps.Files}

	result, err := r.Purge(deps.Ctx, c.DryRun)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", htmlstore.ErrorMessage(err))
		return err
	}

	for _, ref := range result.Missing {
		if c.DryRun {
			fmt.Fprintf(deps.Stdout, "Entry %s %s would be removed.\n", ref.ID, ref.Path)
		} else {
			fmt.Fprintf(deps.Stdout, "Removed entry %s %s.\n", ref.ID, ref.Path)
		}
	}

	if len(result.Missing) == 0 {
		fmt.Fprintln(deps.Stdout, "All files were accessible!")
	} else {
		fmt.Fprintf(deps.Stdout, "%d file(s) were not accessible!\n", len(result.Missing))
	}

	return nil
}
