package game

import (
	"fmt"

	"catan/meta"
)

// Board owns the whole game state: the graph, the hands, the bank and the
// development stack. The graph topology is fixed once the board is created.
type Board struct {
	Terrains   []*Terrain
	Crossroads [][]*Crossroad // indexed by Location.Line then Location.Index
	Roads      []*Road
	Hands      []Hand
	Bank       Bundle
	Stack      *DevStack
	Bandit     *Terrain

	LongestRoadOwner int
	LargestArmyOwner int

	Opening   bool // true while the opening placements are being made
	WinPoints int

	rng Rand
}

// NewBoard builds the standard board for players using layout.
func NewBoard(players int, layout Layout, rng Rand) (*Board, error) {
	if players < 2 || players > 4 {
		return nil, fmt.Errorf("need 2 to 4 players, got %d", players)
	}
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	terrains, crossroads, roads := buildGraph(players)
	b := &Board{
		Terrains:         terrains,
		Crossroads:       crossroads,
		Roads:            roads,
		Hands:            make([]Hand, players),
		Stack:            NewDevStack(rng),
		LongestRoadOwner: NoPlayer,
		LargestArmyOwner: NoPlayer,
		Opening:          true,
		WinPoints:        meta.WinPoints,
		rng:              rng,
	}
	for r := range b.Bank {
		b.Bank[r] = meta.BankSize
	}
	for i := range b.Hands {
		b.Hands[i] = NewHand(i)
	}

	for i, t := range terrains {
		t.Resource = layout.Resources[i]
		t.Number = layout.Numbers[i]
		if t.Resource == Desert {
			t.Bandit = true
			b.Bandit = t
		}
		for _, cr := range t.Crossroads {
			if t.Resource.Producible() {
				cr.Value[t.Resource] += pips(t.Number)
			}
		}
	}

	shore := coast(crossroads)
	for i, pos := range portEdges {
		for _, cr := range shore[pos].Ends {
			cr.Port = layout.Ports[i]
		}
	}
	return b, nil
}

// Players returns the number of hands.
func (b *Board) Players() int {
	return len(b.Hands)
}

// Hand returns the hand of player.
func (b *Board) Hand(player int) *Hand {
	return &b.Hands[player]
}

// Crossroad returns the crossroad at, or nil when at is off the board.
func (b *Board) Crossroad(at Location) *Crossroad {
	if at.Line < 0 || at.Line >= len(b.Crossroads) {
		return nil
	}
	line := b.Crossroads[at.Line]
	if at.Index < 0 || at.Index >= len(line) {
		return nil
	}
	return line[at.Index]
}

// Road returns the road with id, or nil.
func (b *Board) Road(id int) *Road {
	if id < 0 || id >= len(b.Roads) {
		return nil
	}
	return b.Roads[id]
}

// RoadBetween returns the road joining two crossroads, or nil if they are not adjacent.
func (b *Board) RoadBetween(from, to Location) *Road {
	cr := b.Crossroad(from)
	if cr == nil {
		return nil
	}
	for _, n := range cr.Neighbors {
		if n.Crossroad.Location == to {
			return n.Road
		}
	}
	return nil
}

// Terrain returns the terrain with id, or nil.
func (b *Board) Terrain(id int) *Terrain {
	if id < 0 || id >= len(b.Terrains) {
		return nil
	}
	return b.Terrains[id]
}

// EachCrossroad calls fn for every crossroad, line by line.
func (b *Board) EachCrossroad(fn func(cr *Crossroad)) {
	for _, line := range b.Crossroads {
		for _, cr := range line {
			fn(cr)
		}
	}
}

// Winner returns the first player at or above the win threshold, NoPlayer otherwise.
func (b *Board) Winner() int {
	for i := range b.Hands {
		if b.Hands[i].Points >= b.WinPoints {
			return i
		}
	}
	return NoPlayer
}

// StartTurn makes the cards bought by player during their last turn playable.
func (b *Board) StartTurn(player int) {
	b.Hands[player].wakeCards()
}

// Produce distributes the production of roll from the bank and returns what
// each player received. A resource the bank cannot cover goes to nobody,
// unless a single player is owed it, who then takes what is left.
func (b *Board) Produce(roll int) []Bundle {
	owed := make([]Bundle, len(b.Hands))
	for _, t := range b.Terrains {
		if t.Number != roll || t.Bandit || !t.Resource.Producible() {
			continue
		}
		for _, cr := range t.Crossroads {
			if cr.Owner != NoPlayer {
				owed[cr.Owner][t.Resource] += int(cr.Building)
			}
		}
	}

	for _, r := range Resources {
		total, players := 0, 0
		for p := range owed {
			if owed[p][r] > 0 {
				total += owed[p][r]
				players++
			}
		}
		if total <= b.Bank[r] {
			continue
		}
		for p := range owed {
			if owed[p][r] == 0 {
				continue
			}
			if players > 1 {
				owed[p][r] = 0
			} else {
				owed[p][r] = b.Bank[r]
			}
		}
	}

	for p := range owed {
		b.Hands[p].Receive(owed[p])
		b.Bank = b.Bank.Sub(owed[p])
	}
	return owed
}

// produceAround gives player one token per producing terrain around cr.
func (b *Board) produceAround(cr *Crossroad, player int) Bundle {
	var got Bundle
	for _, t := range cr.Terrains {
		if t.Resource.Producible() && b.Bank[t.Resource] > got[t.Resource] {
			got[t.Resource]++
		}
	}
	b.Hands[player].Receive(got)
	b.Bank = b.Bank.Sub(got)
	return got
}

// SetDistances recomputes, for every crossroad and player, the graph distance
// to that player's closest building by relaxing edges from every owned crossroad.
func (b *Board) SetDistances() {
	var stack []*Crossroad
	queued := map[*Crossroad]bool{}
	push := func(cr *Crossroad) {
		for _, n := range cr.Neighbors {
			if !queued[n.Crossroad] {
				queued[n.Crossroad] = true
				stack = append(stack, n.Crossroad)
			}
		}
	}

	b.EachCrossroad(func(cr *Crossroad) {
		for p := range cr.Distance {
			cr.Distance[p] = Unreachable
		}
	})
	b.EachCrossroad(func(cr *Crossroad) {
		if cr.Owner != NoPlayer {
			cr.Distance[cr.Owner] = 0
			push(cr)
		}
	})

	for len(stack) > 0 {
		cr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		queued[cr] = false

		changed := false
		for _, n := range cr.Neighbors {
			for p := range cr.Distance {
				if cr.Distance[p] > n.Crossroad.Distance[p]+1 {
					cr.Distance[p] = n.Crossroad.Distance[p] + 1
					changed = true
				}
			}
		}
		if changed {
			push(cr)
		}
	}
}

// refresh recomputes the derived state of player after a build.
func (b *Board) refresh(player int) {
	h := &b.Hands[player]
	h.Production = Bundle{}
	h.Ports = [NumResources + 1]bool{}
	b.EachCrossroad(func(cr *Crossroad) {
		if cr.Owner != player {
			return
		}
		for _, r := range Resources {
			h.Production[r] += cr.Value[r] * int(cr.Building)
		}
		if cr.Port != NoResource {
			h.Ports[cr.Port] = true
		}
	})
	h.ProductionAll = float64(h.Production.Total()) / 36
	h.UpdateResourceValues()
	b.SetDistances()
}

// recordLongestRoad raises player's longest road to length and hands over the title
// when player now strictly beats the holder and meets the minimum.
func (b *Board) recordLongestRoad(player, length int) {
	h := &b.Hands[player]
	h.LongestRoad = max(h.LongestRoad, length)
	if h.LongestRoad < meta.LongestRoadMin || b.LongestRoadOwner == player {
		return
	}
	if b.LongestRoadOwner != NoPlayer {
		holder := &b.Hands[b.LongestRoadOwner]
		if holder.LongestRoad >= h.LongestRoad {
			return
		}
		holder.Points -= meta.TitlePoints
	}
	b.LongestRoadOwner = player
	h.Points += meta.TitlePoints
}

// recountLongestRoad sets player's longest road to the longest trail over the
// roads it still owns.
func (b *Board) recountLongestRoad(player int) {
	longest := 0
	for _, r := range b.Roads {
		if r.Owner == player {
			longest = max(longest, LongestRoadThrough(r))
		}
	}
	b.Hands[player].LongestRoad = longest
}

// reassignLongestRoad settles the title after a chain was cut. The holder keeps
// it while still at the minimum and tied for the longest road; otherwise it goes
// to the single longest road at the minimum, or to nobody.
func (b *Board) reassignLongestRoad() {
	best, leaders := 0, 0
	for i := range b.Hands {
		switch l := b.Hands[i].LongestRoad; {
		case l > best:
			best, leaders = l, 1
		case l == best:
			leaders++
		}
	}
	if holder := b.LongestRoadOwner; holder != NoPlayer {
		if l := b.Hands[holder].LongestRoad; l >= meta.LongestRoadMin && l == best {
			return
		}
		b.Hands[holder].Points -= meta.TitlePoints
		b.LongestRoadOwner = NoPlayer
	}
	if best < meta.LongestRoadMin || leaders != 1 {
		return
	}
	for i := range b.Hands {
		if b.Hands[i].LongestRoad == best {
			b.LongestRoadOwner = i
			b.Hands[i].Points += meta.TitlePoints
			return
		}
	}
}

// recordArmy hands over the largest army title after player played a knight.
func (b *Board) recordArmy(player int) {
	h := &b.Hands[player]
	if h.Army < meta.LargestArmyMin || b.LargestArmyOwner == player {
		return
	}
	if b.LargestArmyOwner != NoPlayer {
		holder := &b.Hands[b.LargestArmyOwner]
		if holder.Army >= h.Army {
			return
		}
		holder.Points -= meta.TitlePoints
	}
	b.LargestArmyOwner = player
	h.Points += meta.TitlePoints
}

// Victims returns, in ascending order, the players other than player with a
// building next to t.
func (b *Board) Victims(t *Terrain, player int) []int {
	seen := make([]bool, len(b.Hands))
	for _, cr := range t.Crossroads {
		if cr.Owner != NoPlayer && cr.Owner != player {
			seen[cr.Owner] = true
		}
	}
	var victims []int
	for p, ok := range seen {
		if ok {
			victims = append(victims, p)
		}
	}
	return victims
}

// banditValue returns the production player and the other players lose while the
// bandit sits on t.
func (t *Terrain) banditValue(player int) (own, others int) {
	if !t.Resource.Producible() {
		return 0, 0
	}
	for _, cr := range t.Crossroads {
		if cr.Owner == NoPlayer {
			continue
		}
		lost := pips(t.Number) * int(cr.Building)
		if cr.Owner == player {
			own += lost
		} else {
			others += lost
		}
	}
	return own, others
}
