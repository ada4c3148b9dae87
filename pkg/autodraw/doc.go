// Package autodraw keeps a project's automation state in sync with the backend.
//
// A project is driven by an ordered workflow configuration, a progress cursor over that
// workflow and a flat record of tagged geometry items. The Synchronizer establishes the
// state with a start fetch and refreshes it with continue fetches. The configuration is
// only ever taken from the start fetch: a continue fetch replaces the progress, the record
// and the passthrough attributes, and never the configuration, whatever its payload holds.
//
// Fetches are all-or-nothing. A payload is fully decoded before the cached state is
// touched, so a failed, cancelled or malformed fetch leaves the previous state exactly as it
// was.
//
// The resulting state is rendered with the layout package, which projects it into an
// ordered list of draw commands, and the drawer package, which executes those commands
// against a concrete output.
package autodraw
