// Package trace records the intermediate states of a container
// computation as an append-only journal. Each recorded step is stamped
// with a unique id and a UTC timestamp, so a chain of combinator calls
// can be replayed or reported after the fact without giving the
// containers themselves any identity beyond their structure.
//
// A Journal is a value: Note returns a new Journal and never mutates
// the receiver, matching the construction discipline of opt and res.
package trace
