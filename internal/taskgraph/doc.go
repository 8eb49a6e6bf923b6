// Package taskgraph holds the task graph consumed by the labeler: a set of
// unit-time tasks and their immediate-successor relation.
//
// A Graph is built once, either incrementally with AddTask and AddSuccessor
// or in one step with Build, and is then treated as read-only input. It has
// no internal synchronization; callers that share a Graph across goroutines
// must coordinate the build-then-rank sequence themselves.
//
// AddSuccessor creates unknown endpoints implicitly. Duplicate edges are kept
// verbatim and show up twice in the successor list.
package taskgraph
