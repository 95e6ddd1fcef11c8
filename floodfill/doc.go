// Package floodfill recolors the 4-connected region of equal characters
// around a seed cell.
//
// Fill builds a graph whose edges join adjacent cells holding the same
// character, then runs a breadth-first traversal from the seed whose
// visitor rewrites each reached cell. The graph is built before any cell
// changes, so the region is the one present when Fill was called.
//
// DecodeRequest reads the command-line text format: a grid followed by
// the seed row, seed column and fill character.
//
// Errors (sentinel):
//
//	– ErrGridNil          if the grid pointer is nil.
//	– ErrSeedOutOfRange   if the seed lies outside the grid.
//	– ErrBadSeed          if the seed tokens are missing or malformed.
//	– ErrOptionViolation  if an Option carries an invalid value.
package floodfill
