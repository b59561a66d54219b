package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/dtroode/recipe-server/database"
	"github.com/dtroode/recipe-server/internal/api/grpc/health"
	grpcrouter "github.com/dtroode/recipe-server/internal/api/grpc/router"
	grpcserver "github.com/dtroode/recipe-server/internal/api/grpc/server"
	"github.com/dtroode/recipe-server/internal/api/http/router"
	httpserver "github.com/dtroode/recipe-server/internal/api/http/server"
	"github.com/dtroode/recipe-server/internal/model"
	"github.com/dtroode/recipe-server/internal/password"
	"github.com/dtroode/recipe-server/internal/repository/postgres"
	"github.com/dtroode/recipe-server/internal/server"
	"github.com/dtroode/recipe-server/internal/service"
	"github.com/dtroode/recipe-server/internal/storage/minio"
	"github.com/dtroode/recipe-server/internal/token"
)

func serve(ctx context.Context, _ *cli.Command, env *environment) error {
	cfg, log := env.cfg, env.logger
	logAppVersion(os.Stdout)

	db, err := openDatabase(ctx, env)
	if err != nil {
		return err
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(ctx, db.SQLDB()); err != nil {
			return err
		}
	}

	storage, err := newStorage(ctx, env)
	if err != nil {
		return err
	}

	userRepo := postgres.NewUserRepository(db)
	tokenRepo := postgres.NewAuthTokenRepository(db)
	tagRepo := postgres.NewTagRepository(db)
	ingredientRepo := postgres.NewIngredientRepository(db)
	recipeRepo := postgres.NewRecipeRepository(db)

	hasher := password.NewHasher(cfg.Auth.PasswordCost)
	tokenManager := token.NewJWT(cfg.Auth.Secret)

	engine := router.New(router.Services{
		Users:         service.NewUser(userRepo, hasher, log),
		Auth:          service.NewAuth(userRepo, tokenRepo, tokenManager, hasher, cfg.Auth.TokenTTL, log),
		Tags:          service.NewAttributes[model.Tag](tagRepo, log),
		Ingredients:   service.NewAttributes[model.Ingredient](ingredientRepo, log),
		Recipes:       service.NewRecipe(recipeRepo, tagRepo, ingredientRepo, storage, log),
		ImagesEnabled: storage != nil,
	}, log).Register()

	servers := []model.Server{
		httpserver.NewHTTPServer(engine, ":"+cfg.HTTP.Port, cfg.HTTP.ReadTimeout, cfg.HTTP.WriteTimeout),
	}

	var checker *health.Checker
	if cfg.GRPC.Enabled {
		checker = health.NewChecker(db, cfg.GRPC.ProbeInterval, log)
		gs := grpcrouter.New(checker.Server(), log).Register()
		servers = append(servers, grpcserver.NewGRPCServer(gs, ":"+cfg.GRPC.Port))
	}

	sl := server.NewSecurityLayer(cfg.TLS.Enabled, cfg.TLS.CertFileName, cfg.TLS.PrivateKeyFileName)

	g, gctx := errgroup.WithContext(ctx)

	for _, s := range servers {
		g.Go(func() error {
			log.Info("starting server", "address", s.Address(), "tls", cfg.TLS.Enabled)
			return s.Start(sl)
		})
	}

	if checker != nil {
		g.Go(func() error {
			return checker.Run(gctx)
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		log.Info("received interruption signal, shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()

		var errs []error
		for _, s := range servers {
			if err := s.Stop(shutdownCtx); err != nil {
				log.Error("error during server shutdown", "error", err, "address", s.Address())
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	log.Info("shutdown complete")
	return nil
}

// newStorage returns nil when image storage is disabled. The nil is an
// untyped interface so the recipe service can detect it.
func newStorage(ctx context.Context, env *environment) (model.Storage, error) {
	cfg := env.cfg.Storage
	if !cfg.Enabled {
		env.logger.Info("image storage disabled")
		return nil, nil
	}

	client, err := minio.NewClient(ctx, minio.Options{
		Endpoint:  cfg.Endpoint,
		AccessKey: cfg.AccessKey,
		SecretKey: cfg.SecretKey,
		Bucket:    cfg.Bucket,
		UseSSL:    cfg.UseSSL,
		PublicURL: cfg.PublicURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize image storage: %w", err)
	}
	return client, nil
}
