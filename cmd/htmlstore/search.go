package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/htmlstore"
	"github.com/fwojciec/htmlstore/render"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	query := strings.Join(c.Query, " ")

	results, err := deps.Files.SearchFiles(deps.Ctx, query)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", htmlstore.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Search %q\n", query)
	for _, res := range results {
		fmt.Fprintf(deps.Stdout, "  - %s\n", res.Path)
		if c.Links {
			fmt.Fprintf(deps.Stdout, "    %s\n", render.LinkHTMLFile(htmlstore.Identify(res.Path), res.Name))
		}
	}

	return nil
}
