// Package triple recovers (x, character, y) records from a flat line stream.
//
// Published documents lay the coordinate table out as one cell per line with
// no delimiter between rows:
//
//	x-coordinate
//	Character
//	y-coordinate
//	0
//	█
//	0
//	...
//
// [Extract] locates the three-line header, then walks the remaining lines in
// windows of three. A window that does not parse is skipped one line at a
// time until three consecutive lines line up again, so a single stray line
// costs at most the records it overlaps instead of aborting the scan.
package triple
