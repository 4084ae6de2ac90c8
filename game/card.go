package game

type DevCard int

const (
	Knight       DevCard = iota // 0
	VictoryPoint                // 1
	Monopoly                    // 2
	RoadBuilding                // 3
	YearOfPlenty                // 4
)

const NumDevCards = 5

var devCardNames = [NumDevCards]string{
	Knight:       "knight",
	VictoryPoint: "victory points",
	Monopoly:     "monopoly",
	RoadBuilding: "road building",
	YearOfPlenty: "year of plenty",
}

func (c DevCard) String() string {
	if c < 0 || int(c) >= NumDevCards {
		return "unknown"
	}
	return devCardNames[c]
}

// deck composition of a standard development stack
var deck = [NumDevCards]int{
	Knight:       14,
	VictoryPoint: 5,
	Monopoly:     2,
	RoadBuilding: 2,
	YearOfPlenty: 2,
}

// DevStack is the shared face-down development card stack. Cards are drawn from the end.
type DevStack struct {
	cards []DevCard
}

// NewDevStack returns a shuffled standard stack.
func NewDevStack(rng Rand) *DevStack {
	s := &DevStack{}
	for card, n := range deck {
		for i := 0; i < n; i++ {
			s.cards = append(s.cards, DevCard(card))
		}
	}
	shuffle(rng, s.cards)
	return s
}

// NewDevStackOf returns a stack holding cards; the last card is drawn first.
func NewDevStackOf(cards ...DevCard) *DevStack {
	return &DevStack{cards: append([]DevCard(nil), cards...)}
}

func (s *DevStack) Len() int {
	return len(s.cards)
}

// draw pops the top card. It never overwrites the backing array, so a saved
// slice header restores the stack exactly.
func (s *DevStack) draw() (DevCard, bool) {
	if len(s.cards) == 0 {
		return 0, false
	}
	card := s.cards[len(s.cards)-1]
	s.cards = s.cards[:len(s.cards)-1]
	return card, true
}
