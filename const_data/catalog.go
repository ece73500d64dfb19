// Package const_data holds the static card and noble reference data.
package const_data

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"

	"go-splendor/entities"
)

//go:embed cards.json
var cardsJSON []byte

//go:embed nobles.json
var noblesJSON []byte

const (
	MinLevel    = 1
	MaxLevel    = 3
	NoblePoints = 3
)

// Catalog is read-only after LoadCatalog returns and is shared by every game.
type Catalog struct {
	cards   map[string]entities.NormalCard
	nobles  map[string]entities.NobleCard
	byLevel [MaxLevel + 1][]string
	nobleID []string
}

// LoadCatalog parses and validates the embedded reference data.
func LoadCatalog() (*Catalog, error) {
	return parseCatalog(cardsJSON, noblesJSON)
}

func parseCatalog(cardData, nobleData []byte) (*Catalog, error) {
	var cards []entities.NormalCard
	if err := json.Unmarshal(cardData, &cards); err != nil {
		return nil, fmt.Errorf("decode cards: %w", err)
	}
	var nobles []entities.NobleCard
	if err := json.Unmarshal(nobleData, &nobles); err != nil {
		return nil, fmt.Errorf("decode nobles: %w", err)
	}

	c := &Catalog{
		cards:  make(map[string]entities.NormalCard, len(cards)),
		nobles: make(map[string]entities.NobleCard, len(nobles)),
	}
	for _, card := range cards {
		if err := validateCard(card); err != nil {
			return nil, err
		}
		if _, dup := c.cards[card.ID]; dup {
			return nil, fmt.Errorf("duplicate card id %q", card.ID)
		}
		c.cards[card.ID] = card
		c.byLevel[card.Level] = append(c.byLevel[card.Level], card.ID)
	}
	for level := MinLevel; level <= MaxLevel; level++ {
		if len(c.byLevel[level]) == 0 {
			return nil, fmt.Errorf("no cards for level %d", level)
		}
		sort.Strings(c.byLevel[level])
	}

	for _, noble := range nobles {
		if err := validateNoble(noble); err != nil {
			return nil, err
		}
		if _, dup := c.nobles[noble.ID]; dup {
			return nil, fmt.Errorf("duplicate noble id %q", noble.ID)
		}
		c.nobles[noble.ID] = noble
		c.nobleID = append(c.nobleID, noble.ID)
	}
	sort.Strings(c.nobleID)
	return c, nil
}

func validateCard(card entities.NormalCard) error {
	if card.ID == "" {
		return fmt.Errorf("card with empty id")
	}
	if card.Level < MinLevel || card.Level > MaxLevel {
		return fmt.Errorf("card %s: level %d out of range", card.ID, card.Level)
	}
	if !card.Bonus.IsGem() {
		return fmt.Errorf("card %s: invalid bonus color %q", card.ID, card.Bonus)
	}
	if card.Points < 0 {
		return fmt.Errorf("card %s: negative points", card.ID)
	}
	return validateCost(card.ID, card.Cost)
}

func validateNoble(noble entities.NobleCard) error {
	if noble.ID == "" {
		return fmt.Errorf("noble with empty id")
	}
	if noble.Points != NoblePoints {
		return fmt.Errorf("noble %s: points must be %d, got %d", noble.ID, NoblePoints, noble.Points)
	}
	return validateCost(noble.ID, noble.Requirement)
}

func validateCost(id string, cost map[entities.Resource]int) error {
	for color, n := range cost {
		if !color.IsGem() {
			return fmt.Errorf("%s: cost color %q is not a gem color", id, color)
		}
		if n < 0 {
			return fmt.Errorf("%s: negative cost for %s", id, color)
		}
	}
	return nil
}

func (c *Catalog) Card(id string) (entities.NormalCard, bool) {
	card, ok := c.cards[id]
	return card, ok
}

func (c *Catalog) Noble(id string) (entities.NobleCard, bool) {
	noble, ok := c.nobles[id]
	return noble, ok
}

// CardsByLevel returns the card ids of a level sorted by id. The slice is a copy.
func (c *Catalog) CardsByLevel(level int) []string {
	if level < MinLevel || level > MaxLevel {
		return nil
	}
	return append([]string(nil), c.byLevel[level]...)
}

// NobleIDs returns every noble id sorted. The slice is a copy.
func (c *Catalog) NobleIDs() []string {
	return append([]string(nil), c.nobleID...)
}

func (c *Catalog) CardCount() int {
	return len(c.cards)
}
