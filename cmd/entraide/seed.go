package main

import (
	"context"
	"fmt"

	"entraide/internal/db"
	"entraide/internal/seed"
	"entraide/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var seedCommand = &cli.Command{
	Name:  "seed",
	Usage: "Seed the database with demo users and needs",
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		ctx := context.Background()

		pool, err := db.Connect(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pool.Close()

		logrus.Info("Connected to database")

		userRepo := store.NewUserRepository(pool)
		needsRepo := store.NewNeedRepository(pool)

		logrus.Info("Seeding users...")
		if err := seed.SeedFakeUsers(ctx, userRepo); err != nil {
			return fmt.Errorf("failed to seed users: %w", err)
		}

		logrus.Info("Seeding needs...")
		if err := seed.SeedFakeNeeds(ctx, needsRepo); err != nil {
			return fmt.Errorf("failed to seed needs: %w", err)
		}

		logrus.Info("Seed data created successfully")

		return nil
	},
}
