package boardmodel

// Source supplies a fully constructed Board along with the net numbers
// that should be routed, keeping board-format ingestion (and any eventual
// egress) out of the core engine: a test or a cmd/tracequest front end
// implements Source however it likes - parsing a design file, building one
// in memory, or replaying a fixture - and the engine never needs to know
// which.
type Source interface {
	// Load returns the board to route and the net numbers to connect, in
	// the order they should be offered to the batch driver.
	Load() (*Board, []int, error)
}
