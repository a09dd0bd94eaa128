package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"gambit/config"
	"gambit/engine"
	"gambit/experiments"
	"gambit/game"
	"gambit/game/chess"
	"gambit/game/tictactoe"
	"gambit/player"
	"gambit/searcher"
)

func main() {
	configPath := flag.String("config", "config.yml", "path to the optional YAML config file")
	gameName := flag.String("game", "", "game to play: tictactoe or chess")
	depth := flag.Int("depth", 0, "maximum search depth for the agent")
	second := flag.Bool("second", false, "let the agent move first")
	experiment := flag.String("experiment", "", "run the named experiment instead of playing")
	flag.Parse()

	conf, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	initLogger(conf.LogLevel)

	if *experiment != "" {
		if err := runExperiment(*experiment, conf.Experiment); err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		return
	}

	play := conf.Play
	if *gameName != "" {
		play.Game = *gameName
	}
	if *depth != 0 {
		play.Depth = *depth
	}
	if *second {
		play.HumanFirst = false
	}
	if play.Depth < 1 {
		fmt.Fprintf(os.Stderr, "search depth must be at least 1, got %d\n", play.Depth)
		os.Exit(1)
	}

	if err := playGame(play); err != nil {
		log.Fatal().Err(err).Msg("game failed")
	}
}

func initLogger(level string) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

func runExperiment(name string, conf config.Experiment) error {
	return experiments.Run(name, experiments.Params{
		Game:      conf.Game,
		Games:     conf.Games,
		Depths:    conf.Depths,
		Baseline:  conf.Baseline,
		Seed:      conf.Seed,
		MaxTurns:  conf.MaxTurns,
		OutputDir: conf.OutputDir,
	})
}

func playGame(play config.Play) error {
	state, err := newState(play.Game)
	if err != nil {
		return err
	}

	human := player.NewTerminal(os.Stdin, os.Stdout)
	agent := searcher.NewMinimax(play.Depth, searcher.WithMetrics())

	var first, second engine.Agent = human, agent
	humanSide := game.PlayerOne
	if !play.HumanFirst {
		first, second = agent, human
		humanSide = game.PlayerTwo
	}

	fmt.Printf("playing %s, you are %s, agent depth %d\n", play.Game, humanSide, play.Depth)

	e := engine.New(state, first, second, engine.WithObserver(func(u engine.Update) {
		if u.State.Player().Other() != humanSide { // the agent just moved
			fmt.Printf("\nagent played %s\n", u.Move)
		}
	}))

	outcome, _, err := e.Run()
	if err != nil {
		return err
	}

	fmt.Printf("\n%v\n", e.State())
	switch {
	case outcome.Status == game.Drawn:
		fmt.Println("it's a draw")
	case outcome.Winner == humanSide:
		fmt.Println("you win!")
	default:
		fmt.Println("the agent wins")
	}
	return nil
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
