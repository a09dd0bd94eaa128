package game

// Status classifies a position as undecided, won, or drawn.
type Status int

const (
	Ongoing Status = iota
	Won
	Drawn
)

// Outcome is the result of a game. Winner is Nobody unless Status is Won.
type Outcome struct {
	Status Status
	Winner Player
}

var (
	StillOngoing = Outcome{Status: Ongoing}
	Draw         = Outcome{Status: Drawn}
)

// WonBy returns the outcome of a game won by p.
func WonBy(p Player) Outcome {
	return Outcome{Status: Won, Winner: p}
}

// Decided reports whether the game is over.
func (o Outcome) Decided() bool {
	return o.Status != Ongoing
}

func (o Outcome) String() string {
	switch o.Status {
	case Won:
		return o.Winner.String() + " wins"
	case Drawn:
		return "draw"
	default:
		return "ongoing"
	}
}
