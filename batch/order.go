package batch

import (
	"sort"

	"github.com/tracequest/tracequest/boardmodel"
	"github.com/tracequest/tracequest/geom"
	"github.com/tracequest/tracequest/internal/unionfind"
)

// Order returns conns sorted the way one batch pass wants them: multi-pad
// nets first (ascending minimum-spanning-tree edge count), then single
// edges (ascending airline length), ties broken by (net, from, to). Within
// a multi-pad net, edges are emitted in the Kruskal scan order that built
// its MST - cheapest sub-edges first - and any input edge redundant with an
// already-connected pair is dropped rather than routed twice.
func Order(board *boardmodel.Board, conns []Connection) []Connection {
	byNet := make(map[int][]Connection)
	for _, c := range conns {
		byNet[c.Net] = append(byNet[c.Net], c)
	}

	type group struct {
		net       int
		edges     []Connection
		edgeCount int
	}

	var multi, single []group
	for net, cs := range byNet {
		ordered, count := mstOrder(board, cs)
		g := group{net: net, edges: ordered, edgeCount: count}
		if count > 1 {
			multi = append(multi, g)
		} else {
			single = append(single, g)
		}
	}

	sort.Slice(multi, func(i, j int) bool {
		if multi[i].edgeCount != multi[j].edgeCount {
			return multi[i].edgeCount < multi[j].edgeCount
		}

		return multi[i].net < multi[j].net
	})

	sort.Slice(single, func(i, j int) bool {
		wi, wj := edgeWeight(board, single[i].edges[0]), edgeWeight(board, single[j].edges[0])
		if wi != wj {
			return wi < wj
		}
		if single[i].net != single[j].net {
			return single[i].net < single[j].net
		}
		ei, ej := single[i].edges[0], single[j].edges[0]
		if ei.FromItemID != ej.FromItemID {
			return ei.FromItemID < ej.FromItemID
		}

		return ei.ToItemID < ej.ToItemID
	})

	var out []Connection
	for _, g := range multi {
		out = append(out, g.edges...)
	}
	for _, g := range single {
		out = append(out, g.edges...)
	}

	return out
}

// mstOrder runs Kruskal over cs (candidate edges of one net, weighted by
// airline distance between item centers), returning the kept edges in scan
// order and their count - the net's MST edge count.
func mstOrder(board *boardmodel.Board, cs []Connection) ([]Connection, int) {
	type weighted struct {
		c Connection
		w int64
	}

	edges := make([]weighted, 0, len(cs))
	for _, c := range cs {
		edges = append(edges, weighted{c: c, w: edgeWeight(board, c)})
	}

	sort.Slice(edges, func(i, j int) bool {
		if edges[i].w != edges[j].w {
			return edges[i].w < edges[j].w
		}
		if edges[i].c.FromItemID != edges[j].c.FromItemID {
			return edges[i].c.FromItemID < edges[j].c.FromItemID
		}

		return edges[i].c.ToItemID < edges[j].c.ToItemID
	})

	dsu := unionfind.New()
	var ordered []Connection
	for _, e := range edges {
		dsu.Add(e.c.FromItemID)
		dsu.Add(e.c.ToItemID)
		if dsu.Connected(e.c.FromItemID, e.c.ToItemID) {
			continue // redundant given already-kept edges
		}
		dsu.Union(e.c.FromItemID, e.c.ToItemID)
		ordered = append(ordered, e.c)
	}

	return ordered, len(ordered)
}

func edgeWeight(board *boardmodel.Board, c Connection) int64 {
	from, ok := board.Item(c.FromItemID)
	if !ok {
		return 0
	}
	to, ok := board.Item(c.ToItemID)
	if !ok {
		return 0
	}

	return int64(geom.EuclideanDistance(from.BoundingBox().Center(), to.BoundingBox().Center()))
}
