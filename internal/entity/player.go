package entity

// Player is a participant in the player cycle. Color is a presentation hint and is never interpreted here.
type Player struct {
	Label string `yaml:"label" json:"label"`
	Color string `yaml:"color" json:"color"`
}

// DefaultPlayers returns the conventional X/O pair.
func DefaultPlayers() []Player {
	return []Player{
		{Label: PlayerX, Color: "orange"},
		{Label: PlayerO, Color: "yellow"},
	}
}
