// Package room builds the expansion-room graph a maze search explores: free
// space around a net's source and destination items is represented as
// convex rooms, linked by doors where two rooms' shapes meet. Rooms start
// incomplete (their final convex shape is unknown) and are completed by
// repeatedly cutting away the overlap with any obstacle of the net, then
// doors are generated between the finished room and its neighbours.
//
// Grounded on original_source/include/autoroute/{ExpansionRoom*.h,
// FreeSpaceExpansionRoom.h,ExpansionDoor.h,ExpansionDrill.h,DrillPage*.h,
// ExpansionRoomGenerator.h}. Room and door ownership uses an arena of slices
// addressed by a monotonic id, the same shape github.com/katalvlaran/lvlath's
// core.Graph uses for vertices/edges stored in maps keyed by a generated id
// - here a slice suffices since ids are dense and never reused within a
// session.
//
// Errors:
//
//	ErrRoomNotFound - a RoomID or DoorID outside the graph's current range.
package room

import "errors"

// ErrRoomNotFound indicates a RoomID or DoorID that the graph never issued
// or that was already released.
var ErrRoomNotFound = errors.New("room: id not found")

// ErrNoSpaceForRequired indicates an incomplete room's obstacle cuts ate
// into the shape it was required to keep (the source/destination item's own
// footprint), leaving no valid completion.
var ErrNoSpaceForRequired = errors.New("room: obstacles leave no space for the required shape")

// maxCompletionIterations bounds the cut/shrink loop in CompleteRoom so a
// pathological obstacle layout cannot spin forever.
const maxCompletionIterations = 64
