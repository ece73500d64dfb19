package entities

// Resource is a token kind: five gem colors plus gold.
type Resource string

const (
	White Resource = "white"
	Blue  Resource = "blue"
	Green Resource = "green"
	Red   Resource = "red"
	Black Resource = "black"
	Gold  Resource = "gold" // wildcard, never part of a card cost
)

// GemColors lists the five card colors in display order.
var GemColors = []Resource{White, Blue, Green, Red, Black}

// AllResources is GemColors followed by Gold.
var AllResources = []Resource{White, Blue, Green, Red, Black, Gold}

func (r Resource) IsGem() bool {
	switch r {
	case White, Blue, Green, Red, Black:
		return true
	}
	return false
}

func (r Resource) Valid() bool {
	return r == Gold || r.IsGem()
}

// Tokens counts tokens per resource. Missing keys read as zero.
type Tokens map[Resource]int

func NewTokens() Tokens {
	t := make(Tokens, len(AllResources))
	for _, r := range AllResources {
		t[r] = 0
	}
	return t
}

func (t Tokens) Total() int {
	total := 0
	for _, n := range t {
		total += n
	}
	return total
}

func (t Tokens) Clone() Tokens {
	out := make(Tokens, len(t))
	for r, n := range t {
		out[r] = n
	}
	return out
}

type NormalCard struct {
	ID     string           `json:"id"`     // e.g. "1_4_0"
	Level  int              `json:"level"`  // 1/2/3
	Bonus  Resource         `json:"bonus"`  // discount color
	Points int              `json:"points"` // prestige
	Cost   map[Resource]int `json:"cost"`   // gem colors only
}

type NobleCard struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Points      int              `json:"points"` // always 3
	Requirement map[Resource]int `json:"requirement"`
}
