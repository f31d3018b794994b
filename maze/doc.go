// Package maze runs the A* search that finds a path through a room.Graph
// from a net's start-side target doors to any of its destination-side
// target doors, producing an ordered sequence of entry points and layer
// tags that the connection router turns into trace segments and vias.
//
// The priority-queue element and its pooling strategy are grounded on
// github.com/katalvlaran/lvlath's dijkstra package (internal/pqueue widens
// its nodeItem from a single (id, dist) pair to the (door, section, g,
// back-pointer) tuple this search needs). The ripup cost formula and the
// angle-snapping post-process are grounded on
// original_source/include/autoroute/{AutorouteEngine.h,BatchAutorouter.h}.
package maze
