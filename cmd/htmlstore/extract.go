package main

import (
	"fmt"

	"github.com/fwojciec/htmlstore"
	"github.com/fwojciec/htmlstore/reconcile"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	r := &reconcile.Reconciler{Files: deps.Files}

	result, err := r.Extract(deps.Ctx, c.Output, c.DryRun)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", htmlstore.ErrorMessage(err))
		return err
	}

	if result.AlreadyPresent > 0 {
		fmt.Fprintf(deps.Stdout, "%d file(s) were already found on their destinations.\n", result.AlreadyPresent)
	}

	if result.Aborted() {
		fmt.Fprintf(deps.Stdout, "%d output directories do not exist! Nothing was extracted.\n", len(result.MissingDirs))
		for _, dir := range result.MissingDirs {
			fmt.Fprintf(deps.Stdout, " - %s\n", dir)
		}
		return nil
	}

	if c.DryRun {
		fmt.Fprintf(deps.Stdout, "%d file(s) would be extracted.\n", result.Extracted)
	} else {
		fmt.Fprintf(deps.Stdout, "%d file(s) were extracted.\n", result.Extracted)
	}

	return nil
}
