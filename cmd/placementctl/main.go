// Command placementctl runs operator tasks against the placement database:
// schema migrations, demo data seeding and password hashing.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/adithi-k-max/FSAD-project/internal/app/migrations"
	"github.com/adithi-k-max/FSAD-project/internal/bootstrap"
	"github.com/adithi-k-max/FSAD-project/internal/config"
	"github.com/adithi-k-max/FSAD-project/internal/pkg/auth"
	"github.com/adithi-k-max/FSAD-project/internal/pkg/logger"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Error().Err(err).Msg("placementctl failed")
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "placementctl",
		Usage: "operate the campus placement database",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to the YAML config file",
				Value:   bootstrap.ConfigPath(),
				EnvVars: []string{"CONFIG_PATH"},
			},
		},
		Commands: []*cli.Command{
			migrateCommand(),
			seedCommand(),
			hashPasswordCommand(),
		},
	}
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, err
	}
	bootstrap.SetupLogger(cfg)
	return cfg, nil
}

func withMigrator(c *cli.Context, fn func(*migrations.Migrator) error) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	if cfg.Database.Driver != config.DriverPostgres {
		return fmt.Errorf("migrations need the postgres driver, got %q", cfg.Database.Driver)
	}

	m, err := migrations.NewMigrator(cfg.GetPostgresConnectionString())
	if err != nil {
		return err
	}
	defer m.Close()
	return fn(m)
}

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "manage the database schema",
		Subcommands: []*cli.Command{
			{
				Name:  "up",
				Usage: "apply all pending migrations",
				Action: func(c *cli.Context) error {
					return withMigrator(c, func(m *migrations.Migrator) error {
						if err := m.Up(); err != nil {
							return err
						}
						logger.Info().Msg("Migrations applied")
						return nil
					})
				},
			},
			{
				Name:  "down",
				Usage: "roll back migrations",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "steps", Value: 1, Usage: "number of migrations to roll back"},
				},
				Action: func(c *cli.Context) error {
					return withMigrator(c, func(m *migrations.Migrator) error {
						if err := m.Down(c.Int("steps")); err != nil {
							return err
						}
						logger.Info().Int("steps", c.Int("steps")).Msg("Migrations rolled back")
						return nil
					})
				},
			},
			{
				Name:  "version",
				Usage: "print the applied schema version",
				Action: func(c *cli.Context) error {
					return withMigrator(c, func(m *migrations.Migrator) error {
						v, dirty, err := m.Version()
						if err != nil {
							return err
						}
						fmt.Fprintf(c.App.Writer, "version: %d  dirty: %v\n", v, dirty)
						return nil
					})
				},
			},
			{
				Name:      "force",
				Usage:     "set the recorded version after a failed migration",
				ArgsUsage: "VERSION",
				Action: func(c *cli.Context) error {
					var v int
					if _, err := fmt.Sscanf(c.Args().First(), "%d", &v); err != nil {
						return cli.Exit("force: VERSION must be an integer", 2)
					}
					return withMigrator(c, func(m *migrations.Migrator) error {
						return m.Force(v)
					})
				},
			},
		},
	}
}

func seedCommand() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "load the demo data unless an admin user exists",
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			if cfg.Database.Driver == config.DriverMemory {
				return cli.Exit("seed: nothing to do for the memory driver", 2)
			}

			lgr := logger.Get()
			store, pool, err := bootstrap.SetupStore(cfg, lgr)
			if err != nil {
				return err
			}
			defer pool.Close()

			cfg.Seed.Enabled = true
			if creds := bootstrap.SeedData(context.Background(), cfg, store, lgr); creds == nil {
				fmt.Fprintln(c.App.Writer, "database already seeded")
			}
			return nil
		},
	}
}

func hashPasswordCommand() *cli.Command {
	return &cli.Command{
		Name:      "hash-password",
		Usage:     "print the stored form of a password",
		ArgsUsage: "PASSWORD",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("hash-password: exactly one PASSWORD argument required", 2)
			}
			hash, err := auth.HashPassword(c.Args().First())
			if err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, hash)
			return nil
		},
	}
}
