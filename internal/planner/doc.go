// Package planner decides what happens to each bundle and resolves every
// path the compositor will touch.
//
// A complete albedo/parameter/normal set is composited. An unclassified file
// is converted on its own. A bundle holding both gets both actions; a bundle
// holding a partial set next to an unclassified file converts the file and
// carries a note naming the orphaned roles.
package planner
