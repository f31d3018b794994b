// Package router drives one source-to-destination connection: it builds
// just enough of a room graph to span the two items, runs maze.Search over
// it, snaps the winning path to the active angle policy, and realizes the
// path as trace/via items on the board.
//
// Grounded on original_source/include/autoroute/AutorouteEngine.h, which
// plays the same role relative to ExpansionRoomGenerator and the maze
// search that this package plays relative to room and maze: it owns one
// connection's attempt, not the whole board's routing order (that is
// batch's job).
package router

import "errors"

// ErrNetClassRequired is returned when Config.NetClass is nil.
var ErrNetClassRequired = errors.New("router: net class is required")

// ErrCrossNetConnection is returned when source and dest do not share Net.
var ErrCrossNetConnection = errors.New("router: source and destination do not share the routed net")

// ErrNoViaAvailable is returned when realizing a layer change in a found
// path but the net class's via rule has no entry spanning it - this
// indicates the room graph offered a drill door the via rule cannot
// actually satisfy, which should not happen if addDrillDoors and the via
// rule agree.
var ErrNoViaAvailable = errors.New("router: no via spans the required layer change")
