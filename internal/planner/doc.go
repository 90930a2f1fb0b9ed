// Package planner decides how the binding generator is invoked for a target.
//
// The planner turns a platform class, a handful of paths and the compiled-in
// output catalogs into a PlannedCommand: the executable, its ordered
// arguments, the build mode and the exact set of files the invocation will
// write. The build graph relies on that set for incremental rebuilds, so it
// must never under- or over-declare.
//
// Key responsibilities:
//   - Choose combined (prebuild) or per-file (incremental) invocation
//   - Build the generator argument list
//   - Declare every output path the generator will produce
//   - Reject configurations that would yield a malformed plan
//
// Planning is pure: it never touches the filesystem or starts a process, and
// it is safe to call concurrently.
package planner
