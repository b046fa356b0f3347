package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jnederlo/linecruncher/internal/config"
	"github.com/jnederlo/linecruncher/internal/export"
	"github.com/jnederlo/linecruncher/internal/genetic"
	"github.com/jnederlo/linecruncher/internal/roster"
	"github.com/jnederlo/linecruncher/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	logger.InitLogger(cfg.LogLevel, cfg.IsDevelopment())
	log := logger.WithComponent("linecruncher")
	log.WithFields(logrus.Fields{
		"roster_path":      cfg.RosterPath,
		"num_lineups":      cfg.NumLineups,
		"duration_seconds": cfg.DurationSeconds,
	}).Info("Starting LineCruncher")

	pool, err := roster.LoadRoster(cfg.RosterPath)
	if err != nil {
		log.Fatalf("Failed to load roster: %v", err)
	}

	engine := genetic.NewEngine(pool, genetic.Options{
		NumLineups:  cfg.NumLineups,
		Duration:    time.Duration(cfg.DurationSeconds) * time.Second,
		SalaryCap:   cfg.SalaryCap,
		MinTeams:    cfg.MinTeams,
		MaxAttempts: cfg.MaxAttempts,
		Seed:        cfg.RandomSeed,
	})

	result, err := engine.Run(context.Background())
	if err != nil {
		log.Fatalf("Search failed: %v", err)
	}

	if err := export.WriteLineups(cfg.LineupsPath, result.Lineups); err != nil {
		log.Fatalf("Failed to write lineups: %v", err)
	}
	if err := export.WriteUploadLineups(cfg.UploadPath, result.Lineups); err != nil {
		log.Fatalf("Failed to write upload lineups: %v", err)
	}

	log.WithFields(logrus.Fields{
		"lineups":         len(result.Lineups),
		"rounds":          result.Rounds,
		"best_projection": result.Summary.BestProjection,
	}).Info("Done")
}
