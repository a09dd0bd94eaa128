// Package experiments pits agent configurations against each other and
// records the results as CSV files for offline analysis.
package experiments

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"gambit/engine"
	"gambit/experiments/metrics"
	"gambit/game"
	"gambit/game/chess"
	"gambit/game/tictactoe"
	"gambit/player"
	"gambit/searcher"
)

// Params configures an experiment run.
type Params struct {
	Game      string // "tictactoe" or "chess"
	Games     int    // games per matchup
	Depths    []int  // minimax depths under test
	Baseline  int    // depth of the baseline minimax opponent
	Seed      uint64 // base seed for the random agent
	MaxTurns  int
	OutputDir string
}

// Run plays every matchup and writes the collected records under
// OutputDir/name/<timestamp>/. Each configuration meets the baseline in
// both seat orders so neither side benefits from always moving first.
func Run(name string, p Params) error {
	if p.Games < 1 {
		return fmt.Errorf("games per matchup must be at least 1, got %d", p.Games)
	}
	if p.Baseline < 1 {
		return fmt.Errorf("baseline depth must be at least 1, got %d", p.Baseline)
	}

	configs, matchups := buildMatchups(p)

	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord

	log.Info().Str("experiment", name).Int("matchups", len(matchups)).Int("games_each", p.Games).Msg("starting experiment")

	for mi, matchup := range matchups {
		for i := 0; i < p.Games; i++ {
			record, moves, err := runGame(p, matchup[0], matchup[1], i)
			if err != nil {
				return fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			gameRecords = append(gameRecords, record)
			moveRecords = append(moveRecords, moves...)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchups))
	}

	writer, err := metrics.NewWriter(p.OutputDir, name)
	if err != nil {
		return err
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return err
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return err
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return err
	}

	log.Info().Str("dir", writer.Dir()).Int("games", len(gameRecords)).Msg("experiment results stored")
	return nil
}

// buildMatchups pairs the baseline minimax agent against the random agent
// and against minimax at every depth under test, in both seat orders.
func buildMatchups(p Params) ([]metrics.AgentConfig, [][2]metrics.AgentConfig) {
	baseline := metrics.AgentConfig{ID: 0, Kind: "minimax", Depth: p.Baseline}
	configs := []metrics.AgentConfig{
		baseline,
		{ID: 1, Kind: "random", Seed: p.Seed},
	}
	for i, depth := range p.Depths {
		configs = append(configs, metrics.AgentConfig{ID: 2 + i, Kind: "minimax", Depth: depth})
	}

	var matchups [][2]metrics.AgentConfig
	for _, config := range configs[1:] {
		matchups = append(matchups, [2]metrics.AgentConfig{baseline, config}, [2]metrics.AgentConfig{config, baseline})
	}
	return configs, matchups
}

func runGame(p Params, config1, config2 metrics.AgentConfig, round int) (metrics.GameRecord, []metrics.MoveRecord, error) {
	state, err := newState(p.Game)
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}

	e := engine.New(state,
		newAgent(config1, round),
		newAgent(config2, round),
		engine.WithMaxTurns(p.MaxTurns),
	)

	start := time.Now()
	outcome, moves, err := e.Run()
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}

	id := uuid.New().String()[:8]
	record := metrics.GameRecord{
		ID:        id,
		Agent1:    config1.ID,
		Agent2:    config2.ID,
		Winner:    winnerLabel(outcome),
		TurnLimit: outcome.Status == game.Drawn && !e.State().Terminal(),
		StartTime: start,
		Duration:  time.Since(start),
		Moves:     len(moves),
	}

	moveRecords := make([]metrics.MoveRecord, 0, len(moves))
	for _, move := range moves {
		moveRecords = append(moveRecords, metrics.MoveRecord{
			Game:     id,
			Step:     move.Step,
			Player:   move.Player.String(),
			Move:     move.Move.String(),
			Duration: move.Metrics.Duration,
			Nodes:    move.Metrics.Nodes,
			Cutoffs:  move.Metrics.Cutoffs,
			Prunes:   move.Metrics.Prunes,
		})
	}
	return record, moveRecords, nil
}

// newAgent builds the agent for one game. Random agents get a per-round
// seed offset so successive games against a deterministic opponent do not
// repeat each other.
func newAgent(config metrics.AgentConfig, round int) engine.Agent {
	if config.Kind == "random" {
		return player.NewRandom(config.Seed + uint64(round))
	}
	return searcher.NewMinimax(config.Depth, searcher.WithMetrics())
}

func newState(name string) (game.State, error) {
	switch name {
	case "tictactoe":
		return tictactoe.NewState(tictactoe.Config{}), nil
	case "chess":
		return chess.NewState(chess.Config{}), nil
	default:
		return nil, fmt.Errorf("unknown game %q", name)
	}
}

func winnerLabel(outcome game.Outcome) string {
	if outcome.Status == game.Won {
		return outcome.Winner.String()
	}
	return "draw"
}
