// Package metrics defines the experiment result records and their CSV
// serialization.
package metrics

import "time"

// AgentConfig describes one agent configuration under test.
type AgentConfig struct {
	ID    int
	Kind  string // "minimax" or "random"
	Depth int    // minimax only
	Seed  uint64 // random only
}

// GameRecord summarizes one finished game.
type GameRecord struct {
	ID        string // short unique game ID
	Agent1    int    // AgentConfig.ID playing PlayerOne
	Agent2    int    // AgentConfig.ID playing PlayerTwo
	Winner    string // "player1", "player2" or "draw"
	TurnLimit bool   // game was cut off by the engine's turn limit
	StartTime time.Time
	Duration  time.Duration
	Moves     int
}

// MoveRecord holds the search statistics behind one move of one game.
type MoveRecord struct {
	Game     string // GameRecord.ID
	Step     int
	Player   string
	Move     string
	Duration time.Duration
	Nodes    int64
	Cutoffs  int64
	Prunes   int64
}
