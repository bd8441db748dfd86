// Package report summarises the largest files or directories under a folder.
//
// The tree is walked in parallel with fastwalk without following symbolic
// links. Totals are kept by extension, and the largest entries are listed
// largest first with paths relative to the walked folder.
package report
