// Package htmlstore provides a local, CLI-based full-text index over
// directories of HTML files. It crawls directory trees, extracts plain
// text from each HTML file, stores records in an embedded SQLite
// database with an FTS index, and supports search, purge and extract
// operations that reconcile database state with filesystem state.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, htmltomarkdown/).
package htmlstore
