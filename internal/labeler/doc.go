// Package labeler computes Coffman–Graham priority labels for task graphs.
//
// Given a DAG of unit-time tasks, Label assigns every task a distinct rank
// in 1..r so that greedily scheduling the two highest-ranked ready tasks on
// two identical processors yields a minimum makespan. Sinks are ranked
// first; every later rank goes to the ready task whose successor ranks,
// sorted in decreasing order, form the lexicographically smallest sequence.
//
// The labeler does not verify acyclicity. A cyclic graph surfaces as an
// InvalidGraphError once no task becomes ready.
package labeler
