// Command tracequest drives a single autoroute session end to end: build a
// board (via a boardmodel.Source), batch-route every net it names, run DRC,
// and report what happened. File-format ingestion is out of core scope, so
// this command ships one in-memory Source (a small two-layer demo board)
// rather than a file reader; a real front end supplies its own Source.
package main

import (
	"fmt"
	"log"

	"github.com/tracequest/tracequest/batch"
	"github.com/tracequest/tracequest/boardmodel"
	"github.com/tracequest/tracequest/drc"
	"github.com/tracequest/tracequest/geom"
	"github.com/tracequest/tracequest/heuristic"
	"github.com/tracequest/tracequest/rules"
	"github.com/tracequest/tracequest/session"
	"github.com/tracequest/tracequest/tileshape"
)

// demoSource builds a two-layer board with one net class and three pads on
// net 1, so the command runs without any external input.
type demoSource struct{}

func (demoSource) Load() (*boardmodel.Board, []int, error) {
	layers := []boardmodel.Layer{{Name: "F.Cu", Signal: true}, {Name: "B.Cu", Signal: true}}
	board := boardmodel.New(layers, rules.NewClearanceMatrix(1, 2))

	nc := rules.NewNetClass("default")
	nc.SetTraceHalfWidth(0, 500)
	nc.SetTraceHalfWidth(1, 500)
	nc.ActiveLayers = nc.ActiveLayers.WithLayer(0).WithLayer(1)
	via := rules.NewViaRule("default-via")
	via.Add(rules.ViaInfo{PadstackName: "v0", FirstLayer: 0, LastLayer: 1, DrillDiameter: 300, PadDiameter: 600, Cost: 1000})
	nc.Via = via
	board.RegisterNetClass(nc)
	board.RegisterNet(rules.Net{NetNumber: 1, Name: "NET1", ClassName: "default"})

	centers := []geom.Point{
		{X: 0, Y: 0},
		{X: 5 * geom.UnitsPerMM, Y: 0},
		{X: 10 * geom.UnitsPerMM, Y: 3 * geom.UnitsPerMM},
	}
	for _, c := range centers {
		box := geom.Box{Lo: geom.Point{X: c.X - 500, Y: c.Y - 500}, Hi: geom.Point{X: c.X + 500, Y: c.Y + 500}}
		pad := &boardmodel.Item{
			Kind:      boardmodel.KindPad,
			PadCenter: c,
			PadShape:  tileshape.FromBox(box),
			Nets:      map[int]struct{}{1: {}},
		}
		if _, err := board.AddItem(pad); err != nil {
			return nil, nil, err
		}
	}

	return board, []int{1}, nil
}

// observer logs every committed item to stdout.
type observer struct{}

func (observer) TraceAdded(conn batch.Connection, id uint32) {
	fmt.Printf("trace %d added for net %d (%d -> %d)\n", id, conn.Net, conn.FromItemID, conn.ToItemID)
}

func (observer) ViaAdded(conn batch.Connection, id uint32) {
	fmt.Printf("via %d added for net %d (%d -> %d)\n", id, conn.Net, conn.FromItemID, conn.ToItemID)
}

func (observer) Ripup(conn batch.Connection, id uint32) {
	fmt.Printf("item %d ripped up to make room for net %d\n", id, conn.Net)
}

func (observer) RoutingFailed(conn batch.Connection, pass int) {
	fmt.Printf("net %d: %d -> %d failed at pass %d\n", conn.Net, conn.FromItemID, conn.ToItemID, pass)
}

func main() {
	board, nets, err := demoSource{}.Load()
	if err != nil {
		log.Fatalf("tracequest: load board: %v", err)
	}

	sess := session.New(board)
	sess.Observe(observer{})

	connections := connectionsForNets(board, nets)

	cfg := batch.DefaultConfig()
	cfg.LayerCosts = []heuristic.LayerCost{{H: 1, V: 1}, {H: 1, V: 1}}

	result, err := sess.Run(connections, cfg)
	if err != nil {
		log.Fatalf("tracequest: run: %v", err)
	}

	fmt.Printf("\n%d passes run, fully routed: %v\n", result.PassesRun, result.Routed())

	violations := drc.Check(board)
	fmt.Printf("%d DRC violations\n", len(violations))
	for _, v := range violations {
		fmt.Printf("  %s (%s): %s\n", v.Kind, v.Severity, v.Message)
	}
}

// connectionsForNets builds one connection per consecutive pad pair on
// each named net - a simple daisy-chain, since the demo source carries no
// richer connectivity list of its own.
func connectionsForNets(board *boardmodel.Board, nets []int) []batch.Connection {
	var out []batch.Connection
	for _, net := range nets {
		items := board.ItemsByNet(net)
		for i := 0; i+1 < len(items); i++ {
			out = append(out, batch.Connection{Net: net, FromItemID: items[i].ID, ToItemID: items[i+1].ID})
		}
	}

	return out
}
