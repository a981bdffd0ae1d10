// Package model holds the immutable data types shared by every package in
// the draw engine: Team and Game.
package model

// Team is an immutable record of a single club. Teams are loaded in pot
// order, teamsPerPot per pot; a team's position in the backing slice
// implicitly encodes its pot (see Pot below), so the slice order is load
// bearing and must never be re-sorted after load.
type Team struct {
	Pot         int // 1-based
	Abbrev      string
	Country     string
	Name        string
	Coefficient float64 // optional UEFA club coefficient, display-only
}

// Pot returns the 1-based pot of the team at the given 0-based index,
// given how many teams each pot holds.
func Pot(index, teamsPerPot int) int {
	return 1 + index/teamsPerPot
}

// PairedPot returns the pot UECL pairs with p for home/away accounting:
// {1,2}, {3,4}, {5,6}.
func PairedPot(p int) int {
	if p%2 == 0 {
		return p - 1
	}
	return p + 1
}
