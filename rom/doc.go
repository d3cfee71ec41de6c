// Package rom indexes a collection of CHIP-8 ROM files for the web build.
//
// A collection is described by an ordered list of Sources. Each Source names a
// directory, relative to the collection root, and the provenance metadata that
// is attached to every ROM found in that directory.
//
// Indexing happens in three steps. Scan() walks the sources in order and
// assigns each ROM an identifier of the form:
//
//	001-invaders
//
// The numeric prefix counts every ROM found so far, across all sources, and
// the token is the lowercased first word of the filename. Export() copies each
// ROM into the output directory using the identifier as the filename. Finally
// the Manifest, mapping identifiers to entries, is written as JSON next to the
// copied files.
//
// Run() performs all three steps for the romindex command.
package rom
