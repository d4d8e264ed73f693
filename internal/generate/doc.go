// Package generate implements the pagegen pipeline: clearing previously
// generated pages and building fresh ones from descriptor files.
//
// The Cleaner deletes only files whose first line carries the ownership
// marker, so hand-authored files in the pages directory survive every run.
// The Builder invokes the Cleaner, walks the assets tree for descriptors,
// merges each descriptor's properties with its referenced content, and
// writes one page per descriptor under a name derived from the descriptor's
// relative directory. Per-descriptor problems are recorded as outcomes and
// logged; they never abort the run. Only conditions that prevent the run
// from starting (an unreadable pages directory, a missing assets root, a
// pages directory that cannot be created) surface as errors.
//
// Both components take their configuration and logger explicitly, so tests
// drive them against temporary directories.
package generate
