// Package preflight provides readiness checks for the directories and
// descriptor inventory a build depends on.
//
// The CLI "pagegen check" command runs RunAll and renders one line per
// result so path and permission problems surface before a build clears
// the pages directory.
package preflight
