package stats

// Source draws the uniform ratio returned for actions nothing is known about.
type Source interface {
	Float64() float64
}

// node counts the events and wins of one key prefix.
type node struct {
	Events   int
	Wins     int
	Children map[any]*node
}

func newNode() *node {
	return &node{Children: make(map[any]*node)}
}

type saved struct {
	player int
	keys   []any
}

// Table is a win-rate trie over action comparison keys. Actions are saved
// during a game and folded in once the winner is known.
type Table struct {
	root    *node
	pending []saved
	src     Source
}

func NewTable(src Source) *Table {
	return &Table{root: newNode(), src: src}
}

// Save queues the keys of an action applied by player.
func (t *Table) Save(keys []any, player int) {
	t.pending = append(t.pending, saved{player: player, keys: append([]any(nil), keys...)})
}

// Pending returns the number of actions waiting for Analyze.
func (t *Table) Pending() int {
	return len(t.pending)
}

// Analyze counts every queued action as an event along its key path, and as a
// win when its player is winner. The queue is emptied.
func (t *Table) Analyze(winner int) {
	for _, s := range t.pending {
		win := 0
		if s.player == winner {
			win = 1
		}
		n := t.root
		for _, key := range s.keys {
			child, ok := n.Children[key]
			if !ok {
				child = newNode()
				n.Children[key] = child
			}
			child.Events++
			child.Wins += win
			n = child
		}
	}
	t.pending = nil
}

// Ratio returns wins over events of the deepest known prefix of keys. When not
// even the first key is known it returns a uniform draw in [0, 1).
func (t *Table) Ratio(keys []any) float64 {
	n := t.root
	for _, key := range keys {
		child, ok := n.Children[key]
		if !ok {
			break
		}
		n = child
	}
	if n == t.root {
		return t.src.Float64()
	}
	return float64(n.Wins) / float64(n.Events)
}

// Events returns the number of events recorded for the exact key path.
func (t *Table) Events(keys []any) (events, wins int) {
	n := t.root
	for _, key := range keys {
		child, ok := n.Children[key]
		if !ok {
			return 0, 0
		}
		n = child
	}
	return n.Events, n.Wins
}
