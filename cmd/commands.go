package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/dtroode/recipe-server/database"
	"github.com/dtroode/recipe-server/internal/config"
	"github.com/dtroode/recipe-server/internal/logger"
	"github.com/dtroode/recipe-server/internal/password"
	"github.com/dtroode/recipe-server/internal/repository/postgres"
	"github.com/dtroode/recipe-server/internal/service"
)

func newApp() *cli.Command {
	return &cli.Command{
		Name:    "recipe-server",
		Usage:   "Recipe management REST API",
		Version: buildVersion,
		Action:  withEnv(serve),
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Wait for the database, apply migrations and run the API (default)",
				Action: withEnv(serve),
			},
			{
				Name:   "migrate",
				Usage:  "Apply pending database migrations and exit",
				Action: withEnv(migrate),
			},
			{
				Name:   "wait-for-db",
				Usage:  "Block until the database accepts connections",
				Action: withEnv(waitForDB),
			},
			createSuperuserCmd(),
		},
	}
}

func createSuperuserCmd() *cli.Command {
	return &cli.Command{
		Name:  "create-superuser",
		Usage: "Create an active staff superuser",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "email",
				Usage:    "superuser email address",
				Required: true,
				Sources:  cli.EnvVars("SUPERUSER_EMAIL"),
			},
			&cli.StringFlag{
				Name:     "password",
				Usage:    "superuser password",
				Required: true,
				Sources:  cli.EnvVars("SUPERUSER_PASSWORD"),
			},
		},
		Action: withEnv(func(ctx context.Context, cmd *cli.Command, env *environment) error {
			return createSuperuser(ctx, env, cmd.String("email"), cmd.String("password"))
		}),
	}
}

// environment is what every command needs before touching the database.
type environment struct {
	cfg    *config.Config
	logger *logger.Logger
}

type envAction func(ctx context.Context, cmd *cli.Command, env *environment) error

func withEnv(action envAction) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		cfg, err := config.NewConfig()
		if err != nil {
			return err
		}

		return action(ctx, cmd, &environment{
			cfg:    cfg,
			logger: logger.New(cfg.LogLevel),
		})
	}
}

// openDatabase creates the pool and blocks until the database answers.
func openDatabase(ctx context.Context, env *environment) (*postgres.Connection, error) {
	db, err := postgres.NewConnection(ctx, env.cfg.Database.DSN)
	if err != nil {
		return nil, err
	}

	if err := database.WaitForConnection(ctx, db.SQLDB(), env.cfg.Database.WaitInterval, env.logger); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

func waitForDB(ctx context.Context, _ *cli.Command, env *environment) error {
	db, err := openDatabase(ctx, env)
	if err != nil {
		return err
	}
	return db.Close()
}

func migrate(ctx context.Context, _ *cli.Command, env *environment) error {
	db, err := openDatabase(ctx, env)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := database.Migrate(ctx, db.SQLDB()); err != nil {
		return err
	}

	env.logger.Info("migrations applied")
	return nil
}

func createSuperuser(ctx context.Context, env *environment, email, plain string) error {
	db, err := openDatabase(ctx, env)
	if err != nil {
		return err
	}
	defer db.Close()

	users := service.NewUser(
		postgres.NewUserRepository(db),
		password.NewHasher(env.cfg.Auth.PasswordCost),
		env.logger,
	)

	user, err := users.CreateSuperuser(ctx, email, plain)
	if err != nil {
		return fmt.Errorf("failed to create superuser: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Superuser %s created.\n", user.Email)
	return nil
}
