package game

// Do checks a against b and applies it. On success the renderer, sink and
// statistics of env see the action; on failure b is left untouched.
func Do(b *Board, a Action, env Env) (Record, error) {
	if err := Check(b, a); err != nil {
		return Record{}, err
	}
	keys := Keys(b, a)
	rec := apply(b, a)
	aftermath(b, a, rec, keys, env)
	return rec, nil
}

// Snapshot holds the state a temporarily applied action may touch.
type Snapshot struct {
	hands            []Hand
	bank             Bundle
	stack            []DevCard
	bandit           *Terrain
	longestRoadOwner int
	largestArmyOwner int
	crossroads       []crossroadState
	roads            []roadState
}

type crossroadState struct {
	cr       *Crossroad
	owner    int
	building Building
	legal    bool
}

type roadState struct {
	road  *Road
	owner int
}

// TmpDo applies a without reporting it anywhere and returns what Undo needs to
// restore b exactly.
func TmpDo(b *Board, a Action) (*Snapshot, error) {
	if err := Check(b, a); err != nil {
		return nil, err
	}
	s := snapshot(b, a)
	apply(b, a)
	return s, nil
}

// Undo restores the state saved by the matching TmpDo.
func Undo(b *Board, s *Snapshot) {
	copy(b.Hands, s.hands)
	b.Bank = s.bank
	b.Stack.cards = s.stack
	b.Bandit.Bandit = false
	b.Bandit = s.bandit
	b.Bandit.Bandit = true
	b.LongestRoadOwner = s.longestRoadOwner
	b.LargestArmyOwner = s.largestArmyOwner
	for _, r := range s.roads {
		r.road.Owner = r.owner
	}
	for _, c := range s.crossroads {
		c.cr.Owner = c.owner
		c.cr.Building = c.building
		c.cr.Legal = c.legal
	}
	if len(s.crossroads) > 0 {
		b.SetDistances()
	}
}

// Probe returns how much a would change eval for the acting player, leaving b unchanged.
func Probe(b *Board, a Action, eval Evaluate) (float64, error) {
	p := a.Actor()
	before := eval(b, p)
	s, err := TmpDo(b, a)
	if err != nil {
		return 0, err
	}
	after := eval(b, p)
	Undo(b, s)
	return after - before, nil
}

func snapshot(b *Board, a Action) *Snapshot {
	s := &Snapshot{
		hands:            append([]Hand(nil), b.Hands...),
		bank:             b.Bank,
		stack:            b.Stack.cards,
		bandit:           b.Bandit,
		longestRoadOwner: b.LongestRoadOwner,
		largestArmyOwner: b.LargestArmyOwner,
	}
	saveCrossroad := func(at Location) {
		cr := b.Crossroad(at)
		for _, c := range append([]*Crossroad{cr}, neighborsOf(cr)...) {
			s.crossroads = append(s.crossroads, crossroadState{cr: c, owner: c.Owner, building: c.Building, legal: c.Legal})
		}
	}
	saveRoad := func(id int) {
		r := b.Road(id)
		s.roads = append(s.roads, roadState{road: r, owner: r.Owner})
	}

	switch a := a.(type) {
	case BuildSettlement:
		saveCrossroad(a.At)
	case BuildFirstSettlement:
		saveCrossroad(a.At)
	case BuildSecondSettlement:
		saveCrossroad(a.At)
	case BuildCity:
		saveCrossroad(a.At)
	case BuildRoad:
		saveRoad(a.Road)
	case BuildFreeRoad:
		saveRoad(a.Road)
	case UseRoadBuilding:
		saveRoad(a.First)
		saveRoad(a.Second)
	}
	return s
}

func neighborsOf(cr *Crossroad) []*Crossroad {
	out := make([]*Crossroad, len(cr.Neighbors))
	for i, n := range cr.Neighbors {
		out[i] = n.Crossroad
	}
	return out
}

// apply mutates b for a legal action and returns its record.
func apply(b *Board, a Action) Record {
	p := a.Actor()
	h := &b.Hands[p]
	rec := Record{Name: a.Kind().String(), Player: p, Fields: map[string]any{}}

	switch a := a.(type) {
	case DoNothing:

	case UseKnight:
		h.Ready[Knight]--
		h.Army++
		stolen := b.moveBandit(p, a.Terrain, a.Victim)
		b.recordArmy(p)
		rec.Fields["terrain"] = a.Terrain
		rec.Fields["victim"] = a.Victim
		rec.Fields["stolen"] = stolen.String()
		rec.Fields["army"] = h.Army

	case MoveBandit:
		stolen := b.moveBandit(p, a.Terrain, a.Victim)
		rec.Fields["terrain"] = a.Terrain
		rec.Fields["victim"] = a.Victim
		rec.Fields["stolen"] = stolen.String()

	case UseMonopoly:
		h.Ready[Monopoly]--
		take := 0
		for i := range b.Hands {
			if i == p {
				continue
			}
			take += b.Hands[i].Resources[a.Resource]
			b.Hands[i].Resources[a.Resource] = 0
		}
		h.Resources[a.Resource] += take
		rec.Fields["resource"] = a.Resource.String()
		rec.Fields["take"] = take

	case UseYearOfPlenty:
		h.Ready[YearOfPlenty]--
		var got Bundle
		got[a.First]++
		got[a.Second]++
		h.Receive(got)
		b.Bank = b.Bank.Sub(got)
		rec.Fields["resources"] = got.Log()

	case UseRoadBuilding:
		h.Ready[RoadBuilding]--
		b.placeRoad(p, b.Roads[a.First])
		b.placeRoad(p, b.Roads[a.Second])
		rec.Fields["roads"] = []string{roadLog(b.Roads[a.First]), roadLog(b.Roads[a.Second])}
		rec.Fields["longest"] = h.LongestRoad

	case UseVictoryPoint:
		h.Ready[VictoryPoint]--
		h.Points++
		rec.Fields["points"] = h.Points

	case BuildSettlement:
		b.charge(p, SettlementPrice)
		b.placeSettlement(p, b.Crossroad(a.At))
		rec.Fields["location"] = a.At.String()

	case BuildFirstSettlement:
		b.placeSettlement(p, b.Crossroad(a.At))
		rec.Fields["location"] = a.At.String()

	case BuildSecondSettlement:
		cr := b.Crossroad(a.At)
		b.placeSettlement(p, cr)
		got := b.produceAround(cr, p)
		rec.Fields["location"] = a.At.String()
		rec.Fields["resources"] = got.Log()

	case BuildCity:
		b.charge(p, CityPrice)
		b.Crossroad(a.At).build(p)
		h.SettlementPieces++
		h.CityPieces--
		h.Points++
		b.refresh(p)
		rec.Fields["location"] = a.At.String()

	case BuildRoad:
		b.charge(p, RoadPrice)
		length := b.placeRoad(p, b.Roads[a.Road])
		rec.Fields["location"] = roadLog(b.Roads[a.Road])
		rec.Fields["longest"] = length

	case BuildFreeRoad:
		length := b.placeRoad(p, b.Roads[a.Road])
		rec.Fields["location"] = roadLog(b.Roads[a.Road])
		rec.Fields["longest"] = length

	case Trade:
		var give, take Bundle
		give[a.Src] = a.Give()
		take[a.Dst] = a.Take
		b.charge(p, give)
		h.Receive(take)
		b.Bank = b.Bank.Sub(take)
		rec.Fields["source"] = a.Src.String()
		rec.Fields["destination"] = a.Dst.String()
		rec.Fields["take"] = a.Take
		rec.Fields["give"] = a.Give()

	case BuyDevCard:
		card, _ := b.Stack.draw()
		b.charge(p, DevCardPrice)
		h.Fresh[card]++
		rec.Fields["card"] = card.String()

	case ThrowCards:
		b.charge(p, a.Cards)
		rec.Fields["resources"] = a.Cards.Log()
	}
	return rec
}

// aftermath reports an applied action to the collaborators of env.
func aftermath(b *Board, a Action, rec Record, keys []any, env Env) {
	p := a.Actor()
	if r := env.Renderer; r != nil {
		r.Action(rec.Name)
		switch a := a.(type) {
		case BuildSettlement:
			renderSettlement(r, p, a.At)
		case BuildFirstSettlement:
			renderSettlement(r, p, a.At)
		case BuildSecondSettlement:
			renderSettlement(r, p, a.At)
		case BuildCity:
			r.City(p, a.At)
			r.Highlight(a.At)
		case BuildRoad:
			renderRoad(r, b.Roads[a.Road])
		case BuildFreeRoad:
			renderRoad(r, b.Roads[a.Road])
		case UseRoadBuilding:
			renderRoad(r, b.Roads[a.First])
			renderRoad(r, b.Roads[a.Second])
		}
		r.Resources(p, b.Hands[p].Resources)
	}
	if env.Sink != nil {
		env.Sink.Action(rec)
	}
	if env.Statistics != nil {
		env.Statistics.Save(keys, p)
	}
}

func renderSettlement(r Renderer, player int, at Location) {
	r.Settlement(player, at)
	r.Highlight(at)
}

func renderRoad(r Renderer, road *Road) {
	r.Road(road.Owner, road.Ends[0].Location, road.Ends[1].Location)
}

func roadLog(r *Road) string {
	return r.Ends[0].Location.String() + "-" + r.Ends[1].Location.String()
}

// charge moves price from player's hand to the bank.
func (b *Board) charge(player int, price Bundle) {
	if b.Hands[player].Pay(price) {
		b.Bank = b.Bank.Add(price)
	}
}

func (b *Board) placeSettlement(player int, cr *Crossroad) {
	h := &b.Hands[player]
	cr.build(player)
	h.SettlementPieces--
	h.Points++
	b.refresh(player)

	cut := false
	for _, n := range cr.Neighbors {
		if o := n.Road.Owner; o != NoPlayer && o != player {
			b.recountLongestRoad(o)
			cut = true
		}
	}
	if cut {
		b.reassignLongestRoad()
	}
}

// placeRoad gives r to player and returns the longest trail through it.
func (b *Board) placeRoad(player int, r *Road) int {
	r.Owner = player
	b.Hands[player].RoadPieces--
	length := LongestRoadThrough(r)
	b.recordLongestRoad(player, length)
	return length
}

// moveBandit puts the bandit on terrain and steals one random token from victim.
func (b *Board) moveBandit(player, terrain, victim int) Resource {
	b.Bandit.Bandit = false
	b.Bandit = b.Terrains[terrain]
	b.Bandit.Bandit = true
	if victim == NoPlayer {
		return NoResource
	}
	return b.steal(player, victim)
}

// steal draws one token uniformly from the victim's resources. An empty hand
// yields NoResource.
func (b *Board) steal(player, victim int) Resource {
	v := &b.Hands[victim]
	n := v.ResourceCount()
	if n == 0 {
		return NoResource
	}
	idx := b.rng.Intn(n)
	for _, r := range Resources {
		if idx < v.Resources[r] {
			v.Resources[r]--
			b.Hands[player].Resources[r]++
			return r
		}
		idx -= v.Resources[r]
	}
	return NoResource
}
