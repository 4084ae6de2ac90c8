// meta/meta.go
package meta

// WinPoints is the number of victory points that ends the game.
const WinPoints = 10

// MaxRounds caps a game that nobody manages to win.
const MaxRounds = 300

// MaxActionsPerTurn caps the actions one player may take in a single turn.
const MaxActionsPerTurn = 30

// Pieces each player starts with.
const (
	RoadPieces       = 15
	SettlementPieces = 5
	CityPieces       = 4
)

// BankSize is the number of tokens of each resource in the bank.
const BankSize = 19

// DiscardLimit is the hand size above which a 7 forces a discard.
const DiscardLimit = 7

// Title thresholds and rewards.
const (
	LongestRoadMin = 5
	LargestArmyMin = 3
	TitlePoints    = 2
)
