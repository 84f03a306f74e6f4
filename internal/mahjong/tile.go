package mahjong

import "fmt"

// Suit classifies a tile kind.
type Suit int

const (
	SuitMan Suit = iota
	SuitPin
	SuitSou
	SuitWind
	SuitDragon
)

func (s Suit) String() string {
	switch s {
	case SuitMan:
		return "Man"
	case SuitPin:
		return "Pin"
	case SuitSou:
		return "Sou"
	case SuitWind:
		return "Wind"
	case SuitDragon:
		return "Dragon"
	default:
		return "Unknown"
	}
}

// Tile is an immutable catalog entry. Red marks the red-five variant of a
// simple 5; there is exactly one such tile per suit in a physical set.
type Tile struct {
	ID   string
	Name string
	Suit Suit
	Rank int // 1-9 for numbered suits, 0 for honors
	Red  bool
}

// IsHonor reports whether the tile is a wind or a dragon.
func (t Tile) IsHonor() bool {
	return t.Suit == SuitWind || t.Suit == SuitDragon
}

// IsSimple reports whether the tile is a numbered 2-8.
func (t Tile) IsSimple() bool {
	return !t.IsHonor() && t.Rank >= 2 && t.Rank <= 8
}

// IsTerminalOrHonor reports whether the tile is a 1, a 9, a wind or a dragon.
func (t Tile) IsTerminalOrHonor() bool {
	return !t.IsSimple()
}

// catalog is the single source of truth for tile ids. Built once, never
// mutated. 34 distinct kinds plus the three red fives.
var catalog = buildCatalog()

func buildCatalog() map[string]Tile {
	c := make(map[string]Tile, 37)

	suited := []struct {
		prefix string
		suit   Suit
		name   string
	}{
		{"M", SuitMan, "Man"},
		{"P", SuitPin, "Pin"},
		{"S", SuitSou, "Sou"},
	}
	for _, s := range suited {
		for rank := 1; rank <= 9; rank++ {
			id := fmt.Sprintf("%s%d", s.prefix, rank)
			c[id] = Tile{
				ID:   id,
				Name: fmt.Sprintf("%s %d", s.name, rank),
				Suit: s.suit,
				Rank: rank,
			}
		}
		redID := s.prefix + "5R"
		c[redID] = Tile{
			ID:   redID,
			Name: "Red " + s.name + " 5",
			Suit: s.suit,
			Rank: 5,
			Red:  true,
		}
	}

	winds := []struct{ id, name string }{
		{"E", "East"},
		{"S", "South"},
		{"W", "West"},
		{"N", "North"},
	}
	for _, w := range winds {
		c[w.id] = Tile{ID: w.id, Name: w.name, Suit: SuitWind}
	}

	// Dragons are lowercase so "W" the wind and "w" the white dragon stay
	// distinct ids.
	dragons := []struct{ id, name string }{
		{"w", "White Dragon"},
		{"g", "Green Dragon"},
		{"r", "Red Dragon"},
	}
	for _, d := range dragons {
		c[d.id] = Tile{ID: d.id, Name: d.name, Suit: SuitDragon}
	}

	return c
}

// Resolve looks a tile id up in the catalog.
func Resolve(id string) (Tile, error) {
	t, ok := catalog[id]
	if !ok {
		return Tile{}, &ValidationError{
			Code:   CodeInvalidTileReference,
			TileID: id,
			Detail: "unknown tile id",
		}
	}
	return t, nil
}

// CatalogSize returns the number of distinct tile entries.
func CatalogSize() int {
	return len(catalog)
}

// seatOrder is the canonical E/S/W/N ordering used for seats and winds.
var seatOrder = []string{"E", "S", "W", "N"}

// ValidSeat reports whether code names one of the four seats.
func ValidSeat(code string) bool {
	for _, s := range seatOrder {
		if s == code {
			return true
		}
	}
	return false
}
