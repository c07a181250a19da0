package main

import (
	"context"
	"io"

	"github.com/fwojciec/htmlstore"
	"github.com/fwojciec/htmlstore/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Files     htmlstore.FileService
	Converter htmlstore.Converter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Database string `short:"d" default:"htmlstore.db" env:"HTMLSTORE_DB" help:"The index database to update."`
	Verbose  bool   `help:"Enable debug logging."`

	Index   IndexCmd   `cmd:"" help:"Index HTML files so they can be searched."`
	Purge   PurgeCmd   `cmd:"" help:"Remove entries whose files are no longer accessible."`
	Extract ExtractCmd `cmd:"" help:"Write stored binary content back out to files."`
	Search  SearchCmd  `cmd:"" help:"Perform a full text search over the indexed HTML files."`
}

// IndexCmd is the "index" subcommand.
type IndexCmd struct {
	Dirs        []string `arg:"" type:"existingdir" help:"Directories to index."`
	StoreBinary bool     `short:"b" help:"Insert the file's contents into the database as binary."`
	Recursive   bool     `short:"r" help:"Index also files in all subdirectories."`
}

// PurgeCmd is the "purge" subcommand.
type PurgeCmd struct {
	DryRun bool `help:"Do not perform any actions."`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Output string `short:"o" type:"existingdir" help:"Write extracted files into this directory instead of their original paths."`
	DryRun bool   `help:"Do not perform any actions."`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query []string `arg:"" help:"Query terms."`
	Links bool     `help:"Also print tagged HTML link strings for the results."`
}
