package genetic

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jnederlo/linecruncher/internal/roster"
	"github.com/jnederlo/linecruncher/pkg/logger"
)

// Per-round shape of the search: generate batchSize fresh lineups, keep the
// eliteCount best, mate them pairwise, then add freshPerRound more. Exactly
// lineupsPerRound lineups join the population every round.
const (
	batchSize       = 10
	eliteCount      = 3
	freshPerRound   = 4
	lineupsPerRound = eliteCount + eliteCount + freshPerRound
)

// Options configures a search run.
type Options struct {
	NumLineups  int           // final population size after truncation
	Duration    time.Duration // wall-clock budget; rounds in progress complete
	SalaryCap   int
	MinTeams    int
	MaxAttempts int
	Seed        int64 // 0 seeds from the wall clock
}

// RoundStats is emitted to the progress callback after every completed round.
type RoundStats struct {
	Round          int     `json:"round"`
	PopulationSize int     `json:"population_size"`
	BestProjection float64 `json:"best_projection"`
	ElapsedMs      int64   `json:"elapsed_ms"`
}

// Result carries the final lineups and run metadata.
type Result struct {
	Lineups []Lineup      `json:"lineups"`
	Rounds  int           `json:"rounds"`
	Elapsed time.Duration `json:"elapsed"`
	Summary Summary       `json:"summary"`
}

// Engine orchestrates the evolutionary search. The population is local to a
// Run invocation; the engine itself holds only the pool, the operators, and
// configuration, so a single engine can run repeatedly.
type Engine struct {
	pool      *roster.Pool
	opts      Options
	generator *Generator
	crossover *Crossover
	log       *logrus.Entry
	progress  func(RoundStats)
}

// NewEngine builds an engine over a loaded pool, applying contest defaults
// for any unset option.
func NewEngine(pool *roster.Pool, opts Options) *Engine {
	if opts.NumLineups <= 0 {
		opts.NumLineups = 100
	}
	if opts.Duration <= 0 {
		opts.Duration = 60 * time.Second
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	validator := NewValidator(opts.SalaryCap, opts.MinTeams)

	return &Engine{
		pool:      pool,
		opts:      opts,
		generator: NewGenerator(pool, validator, rng, opts.MaxAttempts),
		crossover: NewCrossover(pool, validator, rng, opts.MaxAttempts),
		log:       logger.WithComponent("evolution"),
	}
}

// OnProgress registers a callback invoked after every completed round. The
// callback runs on the search goroutine and should return quickly.
func (e *Engine) OnProgress(fn func(RoundStats)) {
	e.progress = fn
}

// Run searches until the wall-clock deadline, then sorts the accumulated
// population by projection and truncates it to NumLineups. The population
// only grows during the search: lineups from early rounds stay eligible for
// final selection. Context cancellation ends the search early with whatever
// has accumulated so far.
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	runID := uuid.New().String()
	log := e.log.WithField("run_id", runID)
	log.WithFields(logrus.Fields{
		"num_lineups":      e.opts.NumLineups,
		"duration_seconds": e.opts.Duration.Seconds(),
		"position_counts":  e.pool.Counts(),
	}).Info("Starting evolutionary search")

	start := time.Now()
	deadline := start.Add(e.opts.Duration)
	population := make([]Lineup, 0, e.opts.NumLineups)
	rounds := 0
	best := 0.0

	for time.Now().Before(deadline) && ctx.Err() == nil {
		batch, err := e.round()
		if err != nil {
			return nil, fmt.Errorf("round %d: %w", rounds+1, err)
		}
		population = append(population, batch...)
		rounds++

		for _, l := range batch {
			if l.Projection > best {
				best = l.Projection
			}
		}
		stats := RoundStats{
			Round:          rounds,
			PopulationSize: len(population),
			BestProjection: best,
			ElapsedMs:      time.Since(start).Milliseconds(),
		}
		if e.progress != nil {
			e.progress(stats)
		}
		log.WithFields(logrus.Fields{
			"round":           stats.Round,
			"population_size": stats.PopulationSize,
			"best_projection": stats.BestProjection,
		}).Debug("Round completed")
	}

	if err := ctx.Err(); err != nil {
		log.WithField("rounds", rounds).Warn("Search cancelled before deadline")
	}

	sort.SliceStable(population, func(i, j int) bool {
		return population[i].Projection > population[j].Projection
	})
	if len(population) > e.opts.NumLineups {
		population = population[:e.opts.NumLineups]
	}
	for i := range population {
		population[i].ID = fmt.Sprintf("lineup_%d_%s", i+1, uuid.New().String()[:8])
	}

	result := &Result{
		Lineups: population,
		Rounds:  rounds,
		Elapsed: time.Since(start),
		Summary: Summarize(population, rounds),
	}
	log.WithFields(logrus.Fields{
		"rounds":          rounds,
		"lineups":         len(population),
		"best_projection": result.Summary.BestProjection,
		"mean_projection": result.Summary.MeanProjection,
		"elapsed_ms":      result.Elapsed.Milliseconds(),
	}).Info("Evolutionary search completed")

	return result, nil
}

// round produces the fixed per-round batch: batchSize fresh lineups ranked by
// projection, the top eliteCount of them, their three pairwise children, and
// freshPerRound more independent lineups.
func (e *Engine) round() ([]Lineup, error) {
	fresh := make([]Lineup, 0, batchSize)
	for i := 0; i < batchSize; i++ {
		lineup, err := e.generator.Generate()
		if err != nil {
			return nil, err
		}
		fresh = append(fresh, lineup)
	}

	sort.SliceStable(fresh, func(i, j int) bool {
		return fresh[i].Projection > fresh[j].Projection
	})

	batch := make([]Lineup, 0, lineupsPerRound)
	batch = append(batch, fresh[:eliteCount]...)

	pairs := [3][2]int{{0, 1}, {0, 2}, {1, 2}}
	for _, pair := range pairs {
		child, err := e.crossover.Mate(fresh[pair[0]], fresh[pair[1]])
		if err != nil {
			return nil, err
		}
		batch = append(batch, child)
	}

	for i := 0; i < freshPerRound; i++ {
		lineup, err := e.generator.Generate()
		if err != nil {
			return nil, err
		}
		batch = append(batch, lineup)
	}

	return batch, nil
}
