// Package file provides IndexGenerators which derive an index from a directory
// structure: every file matching a glob becomes one row, with column values taken
// from the named capture groups of a regular expression applied to its path.
package file
