package main

import (
	"fmt"

	"github.com/fwojciec/htmlstore"
	"github.com/fwojciec/htmlstore/crawl"
)

// Run executes the index command.
func (c *IndexCmd) Run(deps *Dependencies) error {
	ix := &crawl.Indexer{
		Files:       deps.Files,
		Converter:   deps.Converter,
		StoreBinary: c.StoreBinary,
		Recursive:   c.Recursive,
		Progress: func(event crawl.ProgressEvent) {
			if event.Type == crawl.ProgressStarted && event.Total > 0 {
				fmt.Fprintf(deps.Stdout, "Indexing %d file(s) in %q...\n", event.Total, event.Dir)
			}
		},
	}

	var stats htmlstore.IndexStats
	for _, dir := range c.Dirs {
		if err := ix.IndexDir(deps.Ctx, dir, &stats); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", htmlstore.ErrorMessage(err))
			return err
		}
	}

	if stats.AlreadyIndexed > 0 {
		fmt.Fprintf(deps.Stdout, "%d file(s) were already indexed!\n", stats.AlreadyIndexed)
	}
	if stats.Indexed > 0 {
		fmt.Fprintf(deps.Stdout, "%d file(s) were indexed.\n", stats.Indexed)
	}

	return nil
}
