package batch

import (
	"github.com/tracequest/tracequest/boardmodel"
	"github.com/tracequest/tracequest/maze"
	"github.com/tracequest/tracequest/router"
	"github.com/tracequest/tracequest/rules"
)

// Run drives the full multi-pass autorouter over connections. Each pass
// orders the outstanding connections, attempts each with a ripup budget
// that grows with the pass number, and re-enqueues any connection whose
// trace or via items were ripped up to make room for a later one in the
// same pass. The run ends early once nothing is outstanding or cfg.Stop
// reports true; otherwise connections that stay unrouted are retried in
// every pass up to cfg.MaxPasses. Tail and via cleanup, then
// straightening, run once per touched net between passes.
func Run(board *boardmodel.Board, connections []Connection, cfg Config) Result {
	if cfg.MaxPasses <= 0 {
		cfg.MaxPasses = DefaultConfig().MaxPasses
	}
	if cfg.StartRipupCost <= 0 {
		cfg.StartRipupCost = DefaultConfig().StartRipupCost
	}

	owner := make(map[uint32]int) // trace/via item id -> index into results
	results := make([]ConnectionResult, len(connections))
	for i, c := range connections {
		results[i] = ConnectionResult{Connection: c, Outcome: OutcomeFailed}
	}

	pending := make([]int, len(connections))
	for i := range connections {
		pending[i] = i
	}

	passesRun := 0

	for pass := 1; cfg.MaxPasses <= 0 || pass <= cfg.MaxPasses; pass++ {
		if cfg.Stop != nil && cfg.Stop() {
			break
		}
		if len(pending) == 0 {
			break
		}

		passesRun = pass
		budget := int64(pass) * cfg.StartRipupCost

		ordered := Order(board, indicesToConnections(connections, pending))
		touchedNets := make(map[int]bool)
		var next []int

		for _, conn := range ordered {
			idx := indexOf(connections, conn)

			nc, ok := netClassFor(board, conn.Net)
			if !ok {
				results[idx] = ConnectionResult{Connection: conn, Outcome: OutcomeInsertError, Pass: pass}

				continue
			}

			from, fromOK := board.Item(conn.FromItemID)
			to, toOK := board.Item(conn.ToItemID)
			if !fromOK || !toOK {
				results[idx] = ConnectionResult{Connection: conn, Outcome: OutcomeInsertError, Pass: pass}

				continue
			}

			if sameComponent(board, conn.Net, conn.FromItemID, conn.ToItemID) {
				results[idx] = ConnectionResult{Connection: conn, Outcome: OutcomeAlreadyConnected, Pass: pass}

				continue
			}

			touchedNets[conn.Net] = true

			routerCfg := router.Config{
				Net:           conn.Net,
				PassNumber:    pass,
				RipupBudget:   budget,
				MaxIterations: cfg.MaxIterationsPerConn,
				AnglePolicy:   cfg.AnglePolicy,
				NetClass:      nc,
				LayerCosts:    cfg.LayerCosts,
				RipupConfig:   maze.DefaultRipupConfig(),
			}

			res, err := router.Connect(board, from, to, routerCfg)
			if err != nil {
				results[idx] = ConnectionResult{Connection: conn, Outcome: OutcomeInsertError, Pass: pass}

				continue
			}

			requeueRippedOwners(owner, results, res.RippedItemIDs, &next)

			if !res.Routed {
				results[idx] = ConnectionResult{Connection: conn, Outcome: OutcomeFailed, Pass: pass, RippedItemIDs: res.RippedItemIDs}
				next = append(next, idx)

				continue
			}

			results[idx] = ConnectionResult{
				Connection:    conn,
				Outcome:       OutcomeRouted,
				Pass:          pass,
				TraceIDs:      res.TraceIDs,
				ViaIDs:        res.ViaIDs,
				RippedItemIDs: res.RippedItemIDs,
			}
			for _, id := range res.TraceIDs {
				owner[id] = idx
			}
			for _, id := range res.ViaIDs {
				owner[id] = idx
			}
		}

		for net := range touchedNets {
			RemoveTails(board, net, cfg.RemoveUnconnectedVias)
			Optimize(board, net, cfg.PullTightAccuracy)
		}

		pending = dedupInts(next)
	}

	return Result{Connections: results, PassesRun: passesRun}
}

// requeueRippedOwners marks every connection that owned one of rippedIDs as
// pending again, dropping its ids from owner so a later owner of the same
// physical item does not double-count it.
func requeueRippedOwners(owner map[uint32]int, results []ConnectionResult, rippedIDs []uint32, next *[]int) {
	for _, id := range rippedIDs {
		idx, ok := owner[id]
		if !ok {
			continue
		}
		delete(owner, id)
		if results[idx].Outcome == OutcomeRouted {
			results[idx] = ConnectionResult{Connection: results[idx].Connection, Outcome: OutcomeFailed}
			*next = append(*next, idx)
		}
	}
}

// sameComponent reports whether a and b already sit in the same physically
// connected group of net's items, so routing them would only add a
// redundant segment.
func sameComponent(board *boardmodel.Board, net int, a, b uint32) bool {
	for _, comp := range board.ConnectedComponents(net) {
		hasA, hasB := false, false
		for _, it := range comp {
			switch it.ID {
			case a:
				hasA = true
			case b:
				hasB = true
			}
		}
		if hasA && hasB {
			return true
		}
	}

	return false
}

func netClassFor(board *boardmodel.Board, net int) (*rules.NetClass, bool) {
	n, ok := board.Net(net)
	if !ok {
		return nil, false
	}

	return board.NetClass(n.ClassName)
}

func indexOf(connections []Connection, c Connection) int {
	for i, cand := range connections {
		if cand == c {
			return i
		}
	}

	return -1
}

func indicesToConnections(connections []Connection, indices []int) []Connection {
	out := make([]Connection, 0, len(indices))
	for _, i := range indices {
		out = append(out, connections[i])
	}

	return out
}

func dedupInts(in []int) []int {
	seen := make(map[int]bool, len(in))
	out := in[:0:0]
	for _, v := range in {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}

	return out
}
