package model

// Game is a directed fixture: Home plays Away at home. Value semantics —
// Game is cheap to copy and compare, and order matters (Game{1,2} is a
// different fixture than Game{2,1}).
type Game struct {
	Home int
	Away int
}

// Reverse returns the away-at-home mirror of g.
func (g Game) Reverse() Game {
	return Game{Home: g.Away, Away: g.Home}
}
