package game

// Player identifies one of the two sides. The zero value marks an empty
// cell or an undecided winner. The sides negate each other, which keeps
// evaluation symmetry a matter of flipping a sign.
type Player int8

const (
	Nobody    Player = 0
	PlayerOne Player = 1
	PlayerTwo Player = -1
)

// Other returns the opposing side. Nobody is its own opposite.
func (p Player) Other() Player {
	return -p
}

func (p Player) String() string {
	switch p {
	case PlayerOne:
		return "player1"
	case PlayerTwo:
		return "player2"
	default:
		return "nobody"
	}
}
