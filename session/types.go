package session

import "github.com/tracequest/tracequest/batch"

// Observer receives synchronous notifications built from a batch run's
// final per-connection results. Session.Run calls them after batch.Run
// returns, connection by connection in input order, not in the order the
// board was changed; items added and later ripped up or replaced within the
// run are not reported. Implementations must not block; a session has
// exactly one routing goroutine and a slow Observer stalls it.
type Observer interface {
	// TraceAdded is called for each trace id recorded on a routed connection.
	TraceAdded(conn batch.Connection, traceID uint32)
	// ViaAdded is called for each via id recorded on a routed connection.
	ViaAdded(conn batch.Connection, viaID uint32)
	// Ripup is called for each item id the connection's result lists as
	// ripped up to make room for conn.
	Ripup(conn batch.Connection, itemID uint32)
	// RoutingFailed is called once for a connection whose final outcome is
	// failed or an insert error, with the pass recorded in its result.
	RoutingFailed(conn batch.Connection, pass int)
}
