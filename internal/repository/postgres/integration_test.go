//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/sync/errgroup"

	"github.com/dtroode/recipe-server/database"
	"github.com/dtroode/recipe-server/internal/model"
	repo "github.com/dtroode/recipe-server/internal/repository/postgres"
	"github.com/dtroode/recipe-server/internal/testutil"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "recipe_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/recipe_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func connect(t *testing.T) *repo.Connection {
	t.Helper()
	ctx := context.Background()

	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.NoError(t, database.WaitForConnection(ctx, conn.SQLDB(), 100*time.Millisecond, testutil.MakeNoopLogger()))
	require.NoError(t, database.Migrate(ctx, conn.SQLDB()))
	return conn
}

func createUser(t *testing.T, conn *repo.Connection, email string) model.User {
	t.Helper()
	now := time.Now()
	u, err := repo.NewUserRepository(conn).Create(context.Background(), model.User{
		ID:        uuid.Must(uuid.NewV7()),
		Email:     email,
		Password:  "hash",
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)
	return u
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	conn := connect(t)
	ur := repo.NewUserRepository(conn)

	u := createUser(t, conn, "user@example.com")

	byEmail, err := ur.GetByEmail(ctx, "user@example.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, byEmail.ID)

	_, err = ur.GetByEmail(ctx, "missing@example.com")
	require.ErrorIs(t, err, model.ErrNotFound)

	u.Name = "Renamed"
	updated, err := ur.Update(ctx, u)
	require.NoError(t, err)
	require.Equal(t, "Renamed", updated.Name)

	_, err = ur.Create(ctx, model.User{ID: uuid.New(), Email: "user@example.com", Password: "x"})
	require.ErrorIs(t, err, model.ErrAlreadyExists)
}

func TestAuthTokenRepository_OnePerUser(t *testing.T) {
	ctx := context.Background()
	conn := connect(t)
	tr := repo.NewAuthTokenRepository(conn)
	u := createUser(t, conn, "token@example.com")

	first, err := tr.Create(ctx, model.AuthToken{Key: "key-1", UserID: u.ID, CreatedAt: time.Now()})
	require.NoError(t, err)
	require.Equal(t, "key-1", first.Key)

	second, err := tr.Create(ctx, model.AuthToken{Key: "key-2", UserID: u.ID, CreatedAt: time.Now()})
	require.NoError(t, err)
	require.Equal(t, "key-1", second.Key)

	byKey, err := tr.GetByKey(ctx, "key-1")
	require.NoError(t, err)
	require.Equal(t, u.ID, byKey.UserID)

	require.NoError(t, tr.DeleteByUserID(ctx, u.ID))
	_, err = tr.GetByUserID(ctx, u.ID)
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestAuthTokenRepository_ConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	conn := connect(t)
	tr := repo.NewAuthTokenRepository(conn)
	u := createUser(t, conn, "race@example.com")

	const logins = 8
	keys := make([]string, logins)
	g, gctx := errgroup.WithContext(ctx)
	for i := range logins {
		g.Go(func() error {
			saved, err := tr.Create(gctx, model.AuthToken{Key: fmt.Sprintf("race-%d", i), UserID: u.ID, CreatedAt: time.Now()})
			keys[i] = saved.Key
			return err
		})
	}
	require.NoError(t, g.Wait())

	stored, err := tr.GetByUserID(ctx, u.ID)
	require.NoError(t, err)
	for _, k := range keys {
		assert.Equal(t, stored.Key, k)
	}
}

func TestRecipeRepository_OwnershipAndAssociations(t *testing.T) {
	ctx := context.Background()
	conn := connect(t)
	tags := repo.NewTagRepository(conn)
	ingredients := repo.NewIngredientRepository(conn)
	recipes := repo.NewRecipeRepository(conn)

	owner := createUser(t, conn, "owner@example.com")
	other := createUser(t, conn, "other@example.com")

	vegan, err := tags.Create(ctx, model.Tag{ID: uuid.Must(uuid.NewV7()), UserID: owner.ID, Name: "Vegan", CreatedAt: time.Now()})
	require.NoError(t, err)
	dessert, err := tags.Create(ctx, model.Tag{ID: uuid.Must(uuid.NewV7()), UserID: owner.ID, Name: "Dessert", CreatedAt: time.Now()})
	require.NoError(t, err)
	foreign, err := tags.Create(ctx, model.Tag{ID: uuid.Must(uuid.NewV7()), UserID: other.ID, Name: "Foreign", CreatedAt: time.Now()})
	require.NoError(t, err)
	salt, err := ingredients.Create(ctx, model.Ingredient{ID: uuid.Must(uuid.NewV7()), UserID: owner.ID, Name: "Salt", CreatedAt: time.Now()})
	require.NoError(t, err)

	now := time.Now()
	created, err := recipes.Create(ctx, model.Recipe{
		ID:            uuid.Must(uuid.NewV7()),
		UserID:        owner.ID,
		Title:         "Cake",
		TimeMinutes:   30,
		Price:         decimal.RequireFromString("5.50"),
		TagIDs:        []uuid.UUID{vegan.ID, foreign.ID},
		IngredientIDs: []uuid.UUID{salt.ID},
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{vegan.ID}, created.TagIDs)
	assert.Equal(t, []uuid.UUID{salt.ID}, created.IngredientIDs)
	assert.True(t, decimal.RequireFromString("5.5").Equal(created.Price))

	_, err = recipes.Get(ctx, other.ID, created.ID)
	require.ErrorIs(t, err, model.ErrNotFound)

	list, err := tags.List(ctx, owner.ID, false)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Vegan", list[0].Name)

	assigned, err := tags.List(ctx, owner.ID, true)
	require.NoError(t, err)
	require.Len(t, assigned, 1)
	assert.Equal(t, vegan.ID, assigned[0].ID)

	// A second recipe sharing the same tag and ingredient must not duplicate
	// them in the assigned lists.
	second, err := recipes.Create(ctx, model.Recipe{
		ID:            uuid.Must(uuid.NewV7()),
		UserID:        owner.ID,
		Title:         "Vegan bread",
		TimeMinutes:   60,
		Price:         decimal.RequireFromString("2.00"),
		TagIDs:        []uuid.UUID{vegan.ID},
		IngredientIDs: []uuid.UUID{salt.ID},
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	require.NoError(t, err)

	assigned, err = tags.List(ctx, owner.ID, true)
	require.NoError(t, err)
	require.Len(t, assigned, 1)
	assert.Equal(t, vegan.ID, assigned[0].ID)

	assignedIngredients, err := ingredients.List(ctx, owner.ID, true)
	require.NoError(t, err)
	require.Len(t, assignedIngredients, 1)
	assert.Equal(t, salt.ID, assignedIngredients[0].ID)

	require.NoError(t, recipes.Delete(ctx, owner.ID, second.ID))

	created.Title = "Chocolate cake"
	created.TagIDs = []uuid.UUID{dessert.ID}
	updated, err := recipes.Update(ctx, model.RecipeUpdate{Recipe: created, ReplaceTags: true})
	require.NoError(t, err)
	assert.Equal(t, "Chocolate cake", updated.Title)
	assert.Equal(t, []uuid.UUID{dessert.ID}, updated.TagIDs)
	assert.Equal(t, []uuid.UUID{salt.ID}, updated.IngredientIDs)

	stolen := updated
	stolen.UserID = other.ID
	_, err = recipes.Update(ctx, model.RecipeUpdate{Recipe: stolen})
	require.ErrorIs(t, err, model.ErrNotFound)

	require.ErrorIs(t, recipes.Delete(ctx, other.ID, created.ID), model.ErrNotFound)
	require.NoError(t, recipes.Delete(ctx, owner.ID, created.ID))

	owned, err := recipes.List(ctx, owner.ID)
	require.NoError(t, err)
	assert.Empty(t, owned)

	byIDs, err := tags.GetByIDs(ctx, owner.ID, []uuid.UUID{vegan.ID, foreign.ID})
	require.NoError(t, err)
	require.Len(t, byIDs, 1)
}
