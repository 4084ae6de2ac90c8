package game

import "golang.org/x/exp/rand"

// Rand is the source of every random draw: dice and steals use Intn, the
// layout and the development stack use Shuffle. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// NewRand returns a seeded Rand.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Dice is a pair of six-sided dice.
type Dice struct {
	rng    Rand
	First  int
	Second int
}

func NewDice(rng Rand) *Dice {
	return &Dice{rng: rng}
}

// Roll throws both dice and returns their sum.
func (d *Dice) Roll() int {
	d.First = d.rng.Intn(6) + 1
	d.Second = d.rng.Intn(6) + 1
	return d.Sum()
}

func (d *Dice) Sum() int {
	return d.First + d.Second
}

func shuffle[T any](rng Rand, s []T) {
	rng.Shuffle(len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
	})
}
