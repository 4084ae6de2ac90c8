package game

import (
	"fmt"
	"sort"
)

// NoPlayer marks an unowned crossroad or road, or an absent title holder.
const NoPlayer = -1

// Unreachable is the distance of a crossroad a player cannot reach.
const Unreachable = 1 << 20

type Building int

const (
	Empty Building = iota
	Settlement
	City
)

// Location identifies a crossroad by its line on the board and its index on the line.
type Location struct {
	Line  int
	Index int
}

func (l Location) String() string {
	return fmt.Sprintf("(%d,%d)", l.Line, l.Index)
}

// Terrain is a hex production tile.
type Terrain struct {
	ID         int
	Resource   Resource
	Number     int // roll that triggers production, 7 for the desert
	Bandit     bool
	Crossroads []*Crossroad
}

// Neighbor is an adjacent crossroad together with the road leading to it.
type Neighbor struct {
	Crossroad *Crossroad
	Road      *Road
}

// Crossroad is a settlement intersection.
type Crossroad struct {
	Location  Location
	Owner     int
	Building  Building
	Neighbors []Neighbor
	Terrains  []*Terrain
	Port      Resource // NoResource without a port, Desert for a generic 3:1 port
	Legal     bool     // false once this or an adjacent crossroad is built
	Distance  []int    // graph distance to the closest building of each player
	Value     Bundle   // dice combinations per resource over adjacent terrains
}

// ValueSum returns the dice combinations over all adjacent producing terrains.
func (c *Crossroad) ValueSum() int {
	return c.Value.Total()
}

// TmpBuild places (or upgrades) a building for player and returns the legality
// flags it overwrote, self first then neighbors, for Unbuild.
func (c *Crossroad) TmpBuild(player int) []bool {
	legals := make([]bool, 0, len(c.Neighbors)+1)
	legals = append(legals, c.Legal)
	c.Legal = false
	for _, n := range c.Neighbors {
		legals = append(legals, n.Crossroad.Legal)
		n.Crossroad.Legal = false
	}
	c.Owner = player
	c.Building++
	return legals
}

// Unbuild reverts the matching TmpBuild.
func (c *Crossroad) Unbuild(legals []bool) {
	c.Building--
	if c.Building == Empty {
		c.Owner = NoPlayer
	}
	c.Legal = legals[0]
	for i, n := range c.Neighbors {
		n.Crossroad.Legal = legals[i+1]
	}
}

func (c *Crossroad) build(player int) {
	c.TmpBuild(player)
}

// hasRoadOf reports whether one of the roads leaving c belongs to player.
func (c *Crossroad) hasRoadOf(player int) bool {
	for _, n := range c.Neighbors {
		if n.Road.Owner == player {
			return true
		}
	}
	return false
}

// passable reports whether a road chain of player may continue through c.
func (c *Crossroad) passable(player int) bool {
	return c.Owner == NoPlayer || c.Owner == player
}

// Road is an edge between two crossroads.
type Road struct {
	ID    int
	Ends  [2]*Crossroad
	Owner int
}

// Other returns the end of r that is not c.
func (r *Road) Other(c *Crossroad) *Crossroad {
	if r.Ends[0] == c {
		return r.Ends[1]
	}
	return r.Ends[0]
}

// Board geometry: terrains sit in hex rows of 3,4,5,4,3. Corners are placed on a
// half-hex grid where x counts half widths and the level counts vertex lines.
var (
	terrainRows = []int{3, 4, 5, 4, 3}
	rowOffsets  = []int{2, 1, 0, 1, 2}
	// positions along the coast (in coastal edges, clockwise from (0,0)) that hold a port
	portEdges = []int{0, 3, 7, 10, 13, 17, 20, 23, 27}
)

// NumTerrains is the number of hexes on the standard board.
const NumTerrains = 19

type point struct {
	x, level int
}

func hexCorners(row, col int) [6]point {
	left := rowOffsets[row] + 2*col
	top := 2 * row
	return [6]point{
		{left + 1, top},     // top
		{left + 2, top + 1}, // upper right
		{left + 2, top + 2}, // lower right
		{left + 1, top + 3}, // bottom
		{left, top + 2},     // lower left
		{left, top + 1},     // upper left
	}
}

type edgeKey struct {
	a, b *Crossroad
}

// buildGraph creates terrains, crossroads and roads of the standard board with
// their fixed adjacency. Ownership and layout are applied separately.
func buildGraph(players int) ([]*Terrain, [][]*Crossroad, []*Road) {
	// Collect corner points per level
	levels := map[int][]int{}
	seen := map[point]bool{}
	for row, count := range terrainRows {
		for col := 0; col < count; col++ {
			for _, p := range hexCorners(row, col) {
				if !seen[p] {
					seen[p] = true
					levels[p.level] = append(levels[p.level], p.x)
				}
			}
		}
	}

	crossroads := make([][]*Crossroad, len(levels))
	byPoint := map[point]*Crossroad{}
	for level := range crossroads {
		xs := levels[level]
		sort.Ints(xs)
		line := make([]*Crossroad, len(xs))
		for i, x := range xs {
			cr := &Crossroad{
				Location: Location{Line: level, Index: i},
				Owner:    NoPlayer,
				Port:     NoResource,
				Legal:    true,
				Distance: make([]int, players),
			}
			for p := range cr.Distance {
				cr.Distance[p] = Unreachable
			}
			line[i] = cr
			byPoint[point{x, level}] = cr
		}
		crossroads[level] = line
	}

	terrains := []*Terrain{}
	roads := []*Road{}
	edges := map[edgeKey]*Road{}
	for row, count := range terrainRows {
		for col := 0; col < count; col++ {
			t := &Terrain{ID: len(terrains), Resource: Desert, Number: 7}
			corners := hexCorners(row, col)
			for i, p := range corners {
				cr := byPoint[p]
				t.Crossroads = append(t.Crossroads, cr)
				cr.Terrains = append(cr.Terrains, t)

				next := byPoint[corners[(i+1)%6]]
				if edges[edgeKey{cr, next}] != nil || edges[edgeKey{next, cr}] != nil {
					continue
				}
				road := &Road{ID: len(roads), Ends: [2]*Crossroad{cr, next}, Owner: NoPlayer}
				edges[edgeKey{cr, next}] = road
				roads = append(roads, road)
				cr.Neighbors = append(cr.Neighbors, Neighbor{Crossroad: next, Road: road})
				next.Neighbors = append(next.Neighbors, Neighbor{Crossroad: cr, Road: road})
			}
			terrains = append(terrains, t)
		}
	}
	return terrains, crossroads, roads
}

// coast returns the coastal roads in clockwise order starting at crossroad (0,0).
func coast(crossroads [][]*Crossroad) []*Road {
	isCoastal := func(r *Road) bool {
		shared := 0
		for _, t := range r.Ends[0].Terrains {
			for _, u := range r.Ends[1].Terrains {
				if t == u {
					shared++
				}
			}
		}
		return shared == 1
	}

	start := crossroads[0][0]
	var path []*Road
	var prev *Road
	cr := start
	for {
		var next *Road
		for _, n := range cr.Neighbors {
			if n.Road != prev && isCoastal(n.Road) {
				next = n.Road
				break
			}
		}
		path = append(path, next)
		prev = next
		cr = next.Other(cr)
		if cr == start {
			return path
		}
	}
}
