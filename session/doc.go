// Package session ties a board, its rules, and a sequence of batch runs
// together into one autoroute session, and fans out a read-only Observer
// notification for every trace, via, ripup, and routing failure in each
// run's final result.
//
// Grounded on original_source/include/visualization/BoardRenderer.h, which
// the original calls out as "a read-only observer notified by events" - no
// rendering is implemented here, only the notification hook it describes.
package session

import "errors"

// ErrNoConnections is returned by Run when asked to route an empty
// connection list.
var ErrNoConnections = errors.New("session: Run: no connections given")
