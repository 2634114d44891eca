package main

//
// A player moves through the world and carries things.
//
type Player struct {
	location  int
	inventory []string
}

func NewPlayer(location *Room) *Player {
	p := &Player{location: Nowhere}
	if location != nil {
		p.location = location.key
	}
	return p
}

func (p *Player) Dead() bool {
	return p.location == Nowhere
}

// Inventory returns a copy of what the player carries, in the order it
// was picked up.
func (p *Player) Inventory() []string {
	out := make([]string, len(p.inventory))
	copy(out, p.inventory)
	return out
}
