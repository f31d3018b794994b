package session

import (
	"github.com/tracequest/tracequest/batch"
	"github.com/tracequest/tracequest/boardmodel"
)

// Session owns one board for the lifetime of a sequence of batch runs and
// fans out Observer notifications for each.
type Session struct {
	board     *boardmodel.Board
	observers []Observer
}

// New returns a Session over board. The board must already carry its layer
// structure, clearance matrix, and registered nets/net classes.
func New(board *boardmodel.Board) *Session {
	return &Session{board: board}
}

// Board returns the session's board.
func (s *Session) Board() *boardmodel.Board {
	return s.board
}

// Observe registers o to receive notifications from every subsequent Run.
func (s *Session) Observe(o Observer) {
	s.observers = append(s.observers, o)
}

// Run routes connections to completion (or exhaustion of cfg.MaxPasses),
// then notifies every registered Observer of each trace, via, ripup, and
// failure that batch.Run's returned result reports.
func (s *Session) Run(connections []batch.Connection, cfg batch.Config) (batch.Result, error) {
	if len(connections) == 0 {
		return batch.Result{}, ErrNoConnections
	}

	result := batch.Run(s.board, connections, cfg)

	for _, cr := range result.Connections {
		for _, id := range cr.RippedItemIDs {
			s.notifyRipup(cr.Connection, id)
		}

		switch cr.Outcome {
		case batch.OutcomeRouted:
			for _, id := range cr.TraceIDs {
				s.notifyTraceAdded(cr.Connection, id)
			}
			for _, id := range cr.ViaIDs {
				s.notifyViaAdded(cr.Connection, id)
			}
		case batch.OutcomeFailed, batch.OutcomeInsertError:
			s.notifyRoutingFailed(cr.Connection, cr.Pass)
		}
	}

	return result, nil
}

func (s *Session) notifyTraceAdded(conn batch.Connection, id uint32) {
	for _, o := range s.observers {
		o.TraceAdded(conn, id)
	}
}

func (s *Session) notifyViaAdded(conn batch.Connection, id uint32) {
	for _, o := range s.observers {
		o.ViaAdded(conn, id)
	}
}

func (s *Session) notifyRipup(conn batch.Connection, id uint32) {
	for _, o := range s.observers {
		o.Ripup(conn, id)
	}
}

func (s *Session) notifyRoutingFailed(conn batch.Connection, pass int) {
	for _, o := range s.observers {
		o.RoutingFailed(conn, pass)
	}
}
