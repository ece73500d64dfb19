package game

// Config holds the per-game rule parameters. It is copied into every GameState so a running
// game keeps the rules it started with.
type Config struct {
	MinSeats     int         `json:"minSeats"`
	MaxSeats     int         `json:"maxSeats"`
	TokenSupply  map[int]int `json:"tokenSupply"` // seat count -> tokens per gem color
	GoldSupply   int         `json:"goldSupply"`
	WinningScore int         `json:"winningScore"`
	TokenCap     int         `json:"tokenCap"`
	ReserveLimit int         `json:"reserveLimit"`
	BoardSize    int         `json:"boardSize"`
}

func DefaultConfig() Config {
	return Config{
		MinSeats:     2,
		MaxSeats:     4,
		TokenSupply:  map[int]int{2: 4, 3: 5, 4: 7},
		GoldSupply:   5,
		WinningScore: 15,
		TokenCap:     10,
		ReserveLimit: 3,
		BoardSize:    4,
	}
}

func (c Config) clone() Config {
	supply := make(map[int]int, len(c.TokenSupply))
	for k, v := range c.TokenSupply {
		supply[k] = v
	}
	c.TokenSupply = supply
	return c
}
