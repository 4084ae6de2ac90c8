package game

// Resource is the kind of good a terrain produces.
type Resource int

const (
	Wood Resource = iota
	Clay
	Sheep
	Wheat
	Iron
	Desert // produces nothing, also marks a generic 3:1 port

	NoResource Resource = -1
)

// NumResources is the number of producible resources (Desert excluded).
const NumResources = 5

// Resources lists the producible resources in index order.
var Resources = [NumResources]Resource{Wood, Clay, Sheep, Wheat, Iron}

var resourceNames = map[Resource]string{
	Wood:   "wood",
	Clay:   "clay",
	Sheep:  "sheep",
	Wheat:  "wheat",
	Iron:   "iron",
	Desert: "desert",
}

func (r Resource) String() string {
	if name, ok := resourceNames[r]; ok {
		return name
	}
	return "none"
}

// ParseResource maps a resource name back to its Resource, NoResource if unknown.
func ParseResource(name string) Resource {
	for r, n := range resourceNames {
		if n == name {
			return r
		}
	}
	return NoResource
}

// Producible reports whether r is one of the five tradable resources.
func (r Resource) Producible() bool {
	return r >= Wood && r <= Iron
}

// Bundle counts resources, indexed by Resource.
type Bundle [NumResources]int

// Prices of purchasable items
var (
	RoadPrice       = Bundle{Wood: 1, Clay: 1}
	SettlementPrice = Bundle{Wood: 1, Clay: 1, Sheep: 1, Wheat: 1}
	CityPrice       = Bundle{Wheat: 2, Iron: 3}
	DevCardPrice    = Bundle{Sheep: 1, Wheat: 1, Iron: 1}
)

// Total returns the number of tokens in the bundle.
func (b Bundle) Total() int {
	total := 0
	for _, n := range b {
		total += n
	}
	return total
}

// Covers reports whether every count of b is at least the matching count of price.
func (b Bundle) Covers(price Bundle) bool {
	for r, n := range price {
		if b[r] < n {
			return false
		}
	}
	return true
}

func (b Bundle) Add(o Bundle) Bundle {
	for r := range b {
		b[r] += o[r]
	}
	return b
}

func (b Bundle) Sub(o Bundle) Bundle {
	for r := range b {
		b[r] -= o[r]
	}
	return b
}

// Log returns the bundle keyed by resource name, the shape used by action records.
func (b Bundle) Log() map[string]int {
	out := make(map[string]int, NumResources)
	for _, r := range Resources {
		out[r.String()] = b[r]
	}
	return out
}

// pips returns the number of dice combinations out of 36 that roll n.
func pips(n int) int {
	if n < 2 || n > 12 || n == 7 {
		return 0
	}
	if n < 7 {
		return n - 1
	}
	return 13 - n
}
