package game

// LongestRoadThrough returns the length of the longest trail of r's owner that
// uses r. A trail never reuses a road and never passes through a crossroad
// owned by another player.
func LongestRoadThrough(r *Road) int {
	if r.Owner == NoPlayer {
		return 0
	}
	t := trail{player: r.Owner, visited: map[*Road]bool{r: true}}
	return t.left(r.Ends[0], 0, r.Ends[1])
}

// trail holds the roads used by the walk in progress. It lives for a single
// LongestRoadThrough call, so no mark survives the traversal.
type trail struct {
	player  int
	visited map[*Road]bool
}

// left extends the trail from cr and, wherever it stops, completes it with the
// best extension from the other end of the new road.
func (t *trail) left(cr *Crossroad, roads int, right *Crossroad) int {
	best := roads + t.right(right, 0) + 1
	if !cr.passable(t.player) {
		return best
	}
	for _, n := range cr.Neighbors {
		if n.Road.Owner != t.player || t.visited[n.Road] {
			continue
		}
		t.visited[n.Road] = true
		best = max(best, t.left(n.Crossroad, roads+1, right))
		delete(t.visited, n.Road)
	}
	return best
}

func (t *trail) right(cr *Crossroad, roads int) int {
	best := roads
	if !cr.passable(t.player) {
		return best
	}
	for _, n := range cr.Neighbors {
		if n.Road.Owner != t.player || t.visited[n.Road] {
			continue
		}
		t.visited[n.Road] = true
		best = max(best, t.right(n.Crossroad, roads+1))
		delete(t.visited, n.Road)
	}
	return best
}
