package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/meikuraledutech/skillgraph"
	"github.com/meikuraledutech/skillgraph/api"
	"github.com/meikuraledutech/skillgraph/config"
	"github.com/meikuraledutech/skillgraph/neo4jstore"
	"github.com/meikuraledutech/skillgraph/postgres"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "skillgraph",
		Short:         "Skills and jobs knowledge graph service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to YAML config file")

	root.AddCommand(
		newServeCmd(&configPath),
		newMigrateCmd(&configPath),
		newSeedCmd(&configPath),
	)
	return root
}

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(*configPath)
			if err != nil {
				return err
			}
			defer log.Sync()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			graph, err := neo4jstore.Open(ctx, cfg.Neo4j.URI, cfg.Neo4j.Username, cfg.Neo4j.Password, cfg.Neo4j.Database)
			if err != nil {
				return err
			}
			defer graph.Close(context.Background())

			opts := api.Options{
				Graph:          graph,
				Logger:         log,
				UploadDir:      cfg.UploadDir,
				MaxUploadBytes: cfg.MaxUploadBytes,
				AllowOrigins:   cfg.AllowOrigins,
			}

			if cfg.DatabaseURL != "" {
				pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
				if err != nil {
					return fmt.Errorf("connect: %w", err)
				}
				defer pool.Close()
				opts.Profiles = postgres.New(pool)

				if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
					return fmt.Errorf("upload dir: %w", err)
				}
			} else {
				log.Warn("DATABASE_URL is not set, profile routes disabled")
			}

			app := api.New(opts)

			errc := make(chan error, 1)
			go func() {
				log.Info("listening", zap.String("addr", cfg.ServerAddress), zap.String("neo4jDatabase", graph.Database()))
				errc <- app.Listen(cfg.ServerAddress)
			}()

			select {
			case err := <-errc:
				return err
			case <-ctx.Done():
				log.Info("shutting down")
				return app.Shutdown()
			}
		},
	}
}

func newMigrateCmd(configPath *string) *cobra.Command {
	var drop bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create (or drop) the profile store schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(*configPath)
			if err != nil {
				return err
			}
			defer log.Sync()

			if cfg.DatabaseURL == "" {
				return errors.New("DATABASE_URL is not set")
			}
			pool, err := pgxpool.New(cmd.Context(), cfg.DatabaseURL)
			if err != nil {
				return fmt.Errorf("connect: %w", err)
			}
			defer pool.Close()

			var store skillgraph.ProfileStore = postgres.New(pool)
			if drop {
				if err := store.DropSchema(cmd.Context()); err != nil {
					return fmt.Errorf("drop schema: %w", err)
				}
				log.Info("schema dropped")
				return nil
			}
			if err := store.CreateSchema(cmd.Context()); err != nil {
				return fmt.Errorf("create schema: %w", err)
			}
			log.Info("schema created")
			return nil
		},
	}
	cmd.Flags().BoolVar(&drop, "drop", false, "drop the schema instead of creating it")
	return cmd
}

func newSeedCmd(configPath *string) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Merge a knowledge graph description into Neo4j",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(*configPath)
			if err != nil {
				return err
			}
			defer log.Sync()

			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("open knowledge file: %w", err)
			}
			defer f.Close()

			k, err := skillgraph.LoadKnowledge(f)
			if err != nil {
				return err
			}

			graph, err := neo4jstore.Open(cmd.Context(), cfg.Neo4j.URI, cfg.Neo4j.Username, cfg.Neo4j.Password, cfg.Neo4j.Database)
			if err != nil {
				return err
			}
			defer graph.Close(context.Background())

			var seeder skillgraph.GraphSeeder = graph
			if err := seeder.Seed(cmd.Context(), k); err != nil {
				return err
			}
			log.Info("knowledge graph seeded",
				zap.Int("domains", len(k.Domains)),
				zap.Int("professions", len(k.Professions)))
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "data/knowledge.yaml", "knowledge graph YAML file")
	return cmd
}

func setup(configPath string) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	log, err := cfg.NewLogger()
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}
