// Package pipeline walks the input tree and processes one directory at a
// time: list the texture sources, group them into bundles, plan each bundle,
// and run the plans across the worker pool.
//
// Directories are strictly sequential. Inside a directory every bundle is
// independent: a failing bundle is logged and counted, never fatal, and the
// walk always runs to the end.
package pipeline
