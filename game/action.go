package game

// Kind tags the variant of an Action.
type Kind int

const (
	KindDoNothing Kind = iota
	KindUseKnight
	KindUseMonopoly
	KindUseYearOfPlenty
	KindUseRoadBuilding
	KindUseVictoryPoint
	KindBuildSettlement
	KindBuildFirstSettlement
	KindBuildSecondSettlement
	KindBuildCity
	KindBuildRoad
	KindBuildFreeRoad
	KindTrade
	KindBuyDevCard
	KindThrowCards
	KindMoveBandit
)

var kindNames = map[Kind]string{
	KindDoNothing:             "do nothing",
	KindUseKnight:             "use knight",
	KindUseMonopoly:           "use monopoly",
	KindUseYearOfPlenty:       "use year of plenty",
	KindUseRoadBuilding:       "use build roads",
	KindUseVictoryPoint:       "use victory point",
	KindBuildSettlement:       "build settlement",
	KindBuildFirstSettlement:  "build first settlement",
	KindBuildSecondSettlement: "build second settlement",
	KindBuildCity:             "build city",
	KindBuildRoad:             "build road",
	KindBuildFreeRoad:         "build free road",
	KindTrade:                 "trade",
	KindBuyDevCard:            "buy devCard",
	KindThrowCards:            "throw cards",
	KindMoveBandit:            "move bandit",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Action is one move of a player. The set of variants is closed: every
// implementation lives in this file and is dispatched with a type switch.
type Action interface {
	Kind() Kind
	Actor() int
	isAction()
}

// DoNothing ends the player's turn.
type DoNothing struct {
	Player int
}

// UseKnight plays a knight card: the bandit moves to Terrain and one random
// resource is stolen from Victim (NoPlayer when nobody is next to Terrain).
type UseKnight struct {
	Player  int
	Terrain int
	Victim  int
}

// MoveBandit is the bandit move forced by a roll of 7, without a card.
type MoveBandit struct {
	Player  int
	Terrain int
	Victim  int
}

// UseMonopoly takes every Resource token from the other players.
type UseMonopoly struct {
	Player   int
	Resource Resource
}

// UseYearOfPlenty takes two tokens from the bank.
type UseYearOfPlenty struct {
	Player        int
	First, Second Resource
}

// UseRoadBuilding builds two roads for free. Either both are built or none.
type UseRoadBuilding struct {
	Player        int
	First, Second int // road ids
}

type UseVictoryPoint struct {
	Player int
}

type BuildSettlement struct {
	Player int
	At     Location
}

// BuildFirstSettlement is the free settlement of the first opening round.
type BuildFirstSettlement struct {
	Player int
	At     Location
}

// BuildSecondSettlement is the free settlement of the second opening round,
// which immediately produces from its terrains.
type BuildSecondSettlement struct {
	Player int
	At     Location
}

type BuildCity struct {
	Player int
	At     Location
}

type BuildRoad struct {
	Player int
	Road   int
}

// BuildFreeRoad is the road placed with each opening settlement.
type BuildFreeRoad struct {
	Player int
	Road   int
}

// Trade gives Take*Rate of Src to the bank for Take of Dst.
type Trade struct {
	Player int
	Src    Resource
	Dst    Resource
	Take   int
	Rate   int
}

// Give returns the number of Src tokens paid.
func (t Trade) Give() int {
	return t.Take * t.Rate
}

type BuyDevCard struct {
	Player int
}

// ThrowCards discards Cards after a 7.
type ThrowCards struct {
	Player int
	Cards  Bundle
}

func (DoNothing) Kind() Kind { return KindDoNothing }
func (UseKnight) Kind() Kind { return KindUseKnight }
func (MoveBandit) Kind() Kind { return KindMoveBandit }
func (UseMonopoly) Kind() Kind { return KindUseMonopoly }
func (UseYearOfPlenty) Kind() Kind { return KindUseYearOfPlenty }
func (UseRoadBuilding) Kind() Kind { return KindUseRoadBuilding }
func (UseVictoryPoint) Kind() Kind { return KindUseVictoryPoint }
func (BuildSettlement) Kind() Kind { return KindBuildSettlement }
func (BuildFirstSettlement) Kind() Kind { return KindBuildFirstSettlement }
func (BuildSecondSettlement) Kind() Kind { return KindBuildSecondSettlement }
func (BuildCity) Kind() Kind { return KindBuildCity }
func (BuildRoad) Kind() Kind { return KindBuildRoad }
func (BuildFreeRoad) Kind() Kind { return KindBuildFreeRoad }
func (Trade) Kind() Kind { return KindTrade }
func (BuyDevCard) Kind() Kind { return KindBuyDevCard }
func (ThrowCards) Kind() Kind { return KindThrowCards }

func (a DoNothing) Actor() int { return a.Player }
func (a UseKnight) Actor() int { return a.Player }
func (a MoveBandit) Actor() int { return a.Player }
func (a UseMonopoly) Actor() int { return a.Player }
func (a UseYearOfPlenty) Actor() int { return a.Player }
func (a UseRoadBuilding) Actor() int { return a.Player }
func (a UseVictoryPoint) Actor() int { return a.Player }
func (a BuildSettlement) Actor() int { return a.Player }
func (a BuildFirstSettlement) Actor() int { return a.Player }
func (a BuildSecondSettlement) Actor() int { return a.Player }
func (a BuildCity) Actor() int { return a.Player }
func (a BuildRoad) Actor() int { return a.Player }
func (a BuildFreeRoad) Actor() int { return a.Player }
func (a Trade) Actor() int { return a.Player }
func (a BuyDevCard) Actor() int { return a.Player }
func (a ThrowCards) Actor() int { return a.Player }

func (DoNothing) isAction() {}
func (UseKnight) isAction() {}
func (MoveBandit) isAction() {}
func (UseMonopoly) isAction() {}
func (UseYearOfPlenty) isAction() {}
func (UseRoadBuilding) isAction() {}
func (UseVictoryPoint) isAction() {}
func (BuildSettlement) isAction() {}
func (BuildFirstSettlement) isAction() {}
func (BuildSecondSettlement) isAction() {}
func (BuildCity) isAction() {}
func (BuildRoad) isAction() {}
func (BuildFreeRoad) isAction() {}
func (Trade) isAction() {}
func (BuyDevCard) isAction() {}
func (ThrowCards) isAction() {}
