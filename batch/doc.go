// Package batch drives the multi-pass autorouter: for each pass it orders
// the outstanding connections (multi-pad nets by ascending minimum-spanning-
// tree edge count, then single edges by ascending airline length), routes
// each one with an escalating ripup budget, re-enqueues connections whose
// items were ripped up along the way, and runs tail/via cleanup and a
// straightening pass between passes.
//
// Grounded on original_source/include/autoroute/BatchAutorouter.h for the
// pass/budget/cleanup loop shape, and on the teacher's
// prim_kruskal/kruskal.go (via internal/unionfind) for the per-net MST
// ordering step.
package batch

import "errors"

// ErrNoNetClass names the case of a connection whose net has no registered
// net class. Run does not return it; such a connection ends with
// OutcomeInsertError.
var ErrNoNetClass = errors.New("batch: connection references a net with no registered net class")
