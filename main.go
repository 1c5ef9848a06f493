package main

import (
	"flag"
	"os"
	"time"

	"splendor/experiments"
	"splendor/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	experiment := flag.String("experiment", "all", "Experiment to run: strength, mirror or all")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	cfg, err := meta.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	level, _ := cfg.Level()
	zerolog.SetGlobalLevel(level)

	var runs []experiments.Experiment
	switch *experiment {
	case "strength":
		runs = append(runs, experiments.Strength(cfg.Strategies))
	case "mirror":
		runs = append(runs, experiments.Mirror(cfg.Strategies))
	case "all":
		runs = append(runs, experiments.Strength(cfg.Strategies), experiments.Mirror(cfg.Strategies))
	default:
		log.Fatal().Msgf("unknown experiment %q", *experiment)
	}

	for _, e := range runs {
		results, err := experiments.Run(e, cfg)
		if err != nil {
			log.Fatal().Err(err).Msgf("%s experiment failed", e.Name)
		}
		log.Info().Str("dir", results.Dir).Int("games", len(results.Games)).Msgf("finished %s experiment", e.Name)
	}
}
