package experiments

import (
	"fmt"

	"splendor/agent"
	"splendor/engine"
	"splendor/experiments/metrics"
	"splendor/game"
	"splendor/meta"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Experiment is a list of match-ups, each played for a number of games.
// Seats at a table alternate between the two agents of a match-up.
type Experiment struct {
	Name     string
	Configs  []metrics.AgentConfig
	MatchUps [][2]metrics.AgentConfig
}

type Results struct {
	Games []metrics.GameRecord
	Moves []metrics.MoveRecord
	Dir   string // where the records were written
}

// Wins counts games won per AgentConfig.ID. Ties are not counted.
func (r *Results) Wins() map[int]int {
	wins := map[int]int{}
	for _, record := range r.Games {
		if record.WinningAgent != game.NoWinner {
			wins[record.WinningAgent]++
		}
	}
	return wins
}

// Strength pairs every strategy against a random baseline.
func Strength(strategies []string) Experiment {
	baseline := metrics.AgentConfig{ID: 0, Strategy: agent.RandomStrategy}
	e := Experiment{Name: "strength", Configs: []metrics.AgentConfig{baseline}}
	for i, strategy := range strategies {
		config := metrics.AgentConfig{ID: i + 1, Strategy: strategy}
		e.Configs = append(e.Configs, config)
		e.MatchUps = append(e.MatchUps, [2]metrics.AgentConfig{baseline, config})
	}
	return e
}

// Mirror plays every strategy against itself, for game length and move
// throughput at the same playing strength.
func Mirror(strategies []string) Experiment {
	e := Experiment{Name: "mirror"}
	for i, strategy := range strategies {
		config := metrics.AgentConfig{ID: i + 1, Strategy: strategy}
		e.Configs = append(e.Configs, config)
		e.MatchUps = append(e.MatchUps, [2]metrics.AgentConfig{config, config})
	}
	return e
}

// Run plays cfg.Games games per match-up and writes agent configs, game
// records and move records as CSV under cfg.OutputDir.
func Run(e Experiment, cfg meta.Config) (*Results, error) {
	results := &Results{}
	count := 0

	log.Info().Msgf("starting %s experiment...", e.Name)

	for mi, matchUp := range e.MatchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(e.MatchUps), matchUp[0], matchUp[1])

		seed := cfg.Seed + uint64(mi)
		agents, err := seat(matchUp, cfg.Players, rand.New(rand.NewSource(seed)))
		if err != nil {
			return nil, err
		}
		eng, err := engine.Local(agents, engine.WithMetrics(), engine.WithGameOptions(game.WithSeed(seed)))
		if err != nil {
			return nil, err
		}

		for i := 0; i < cfg.Games; i++ {
			if i > 0 {
				eng.Reset()
			}
			outcome, gameMetric, moveMetrics, err := eng.Run()
			if err != nil {
				return nil, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			count++

			if outcome.Winner != game.NoWinner {
				gameMetric.WinningAgent = matchUp[outcome.Winner%2].ID
			}
			results.Games = append(results.Games, metrics.GameRecord{
				ID:         count,
				Agent1:     matchUp[0].ID,
				Agent2:     matchUp[1].ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				results.Moves = append(results.Moves, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Debug().Msgf("completed matchup %d of %d game %d with winner: %d", mi+1, len(e.MatchUps), i+1, outcome.Winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(e.MatchUps))
	}

	log.Info().Interface("wins", results.Wins()).Msgf("completed %s experiment", e.Name)

	dir, err := write(e, cfg.OutputDir, results)
	if err != nil {
		return nil, err
	}
	results.Dir = dir
	return results, nil
}

// seat builds one agent per seat; player id i is played by matchUp[i%2].
func seat(matchUp [2]metrics.AgentConfig, players int, rng *rand.Rand) ([]game.Agent, error) {
	agents := make([]game.Agent, players)
	for i := range agents {
		a, err := agent.New(matchUp[i%2].Strategy, rng)
		if err != nil {
			return nil, err
		}
		agents[i] = a
	}
	return agents, nil
}

func write(e Experiment, root string, results *Results) (string, error) {
	writer, err := metrics.NewWriter(root, e.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(e.Configs)
	if err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(results.Games)
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(results.Moves)
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}
