// Package musicscan counts music files beneath a directory tree.
//
// A scan walks each top-level subfolder of the root one at a time,
// classifies every file against a fixed extension catalog, and reports
// counts per subfolder and per extension. Symbolic links are not followed,
// and link cycles are not detected.
package musicscan
