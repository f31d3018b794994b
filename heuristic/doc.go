// Package heuristic computes an admissible lower-bound distance from a
// (point, layer) pair to a set of destination boxes, used by the maze
// search as its A* h-value. The bound considers routing on the current
// layer directly, or via one or two intermediate layer changes, always
// taking the minimum (cheapest, therefore safest to under-estimate) of the
// candidate paths.
//
// Grounded on original_source/include/autoroute/{DestinationDistance.h,
// LayerCostAnalyzer.h}.
package heuristic
