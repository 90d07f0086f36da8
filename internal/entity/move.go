package entity

const (
	PlayerX = "X"
	PlayerO = "O"

	EmptyCell = ""

	DefaultBoardSize = 3
)

// Move is a board coordinate together with the label occupying it. An EmptyCell label means the cell is unplayed.
type Move struct {
	Row   int    `json:"row"`
	Col   int    `json:"col"`
	Label string `json:"label"`
}

func (that Move) IsBlank() bool {
	return that.Label == EmptyCell
}

func (that Move) Coord() Coord {
	return Coord{Row: that.Row, Col: that.Col}
}

type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Combo is a set of coordinates that wins the game when uniformly occupied by one label.
type Combo []Coord

func (that Combo) Contains(row, col int) bool {
	for _, coord := range that {
		if coord.Row == row && coord.Col == col {
			return true
		}
	}

	return false
}
